package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/safecheck/safecheck/internal/client/format"
	"github.com/safecheck/safecheck/internal/client/models"
)

// badgeMark is the terminal rendering of an answer badge.
func badgeMark(value string) string {
	switch format.BadgeForValue(value) {
	case format.BadgeGood:
		return "[O]"
	case format.BadgeAlert:
		return "[!]"
	default:
		return "[-]"
	}
}

// statusTag labels the raw server status. Labeling before normalization
// keeps the distinct approved label, which NormalizeStatus would collapse
// into submitted.
func statusTag(status string) string {
	return format.StatusLabel(status)
}

func printMySummary(w io.Writer, i int, r models.RecordSummary) {
	fmt.Fprintf(w, "%2d. %s  %s / %s  %s  %s\n",
		i+1, r.Date, r.Hospital, r.EquipmentName, r.WorkType, statusTag(r.Status))
}

func printRecordRow(w io.Writer, i int, r models.InspectionRecord) {
	name := r.Name
	if name == "" {
		name = r.UserName
	}
	fmt.Fprintf(w, "%2d. %s  %s  %s / %s  %s  %s\n",
		i+1, r.Date, name, r.Hospital, r.EquipmentName, r.WorkType, statusTag(r.Status))
}

func printAnswers(w io.Writer, answers []models.Answer) {
	for i, ans := range answers {
		fmt.Fprintf(w, "%2d. %s %s %s\n", i+1, badgeMark(ans.Value), ans.Question, ans.Value)
		if ans.Comment != "" {
			fmt.Fprintf(w, "      조치사항: %s\n", ans.Comment)
		}
	}
}

// parseIndex converts a 1-based menu selection into a slice index.
func parseIndex(s string, length int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > length {
		return 0, false
	}
	return n - 1, true
}
