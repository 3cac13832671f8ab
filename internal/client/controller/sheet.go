package controller

import (
	"strings"

	"github.com/safecheck/safecheck/internal/client/format"
	"github.com/safecheck/safecheck/internal/client/models"
)

// Sheet is the in-progress answer set for one checklist. It enforces the
// comment invariant: a comment exists only while the value is 점검필요, and
// is cleared the moment the value moves elsewhere.
type Sheet struct {
	items   []models.ChecklistItem
	answers []sheetAnswer
}

type sheetAnswer struct {
	value   string // "" means unanswered
	comment string
}

func NewSheet(items []models.ChecklistItem) *Sheet {
	return &Sheet{items: items, answers: make([]sheetAnswer, len(items))}
}

func (s *Sheet) Len() int { return len(s.items) }

func (s *Sheet) Item(i int) models.ChecklistItem { return s.items[i] }

func (s *Sheet) Value(i int) string { return s.answers[i].value }

func (s *Sheet) Comment(i int) string { return s.answers[i].comment }

// SetValue records the answer for item i. Moving the value off 점검필요
// discards any comment.
func (s *Sheet) SetValue(i int, value string) {
	if i < 0 || i >= len(s.answers) {
		return
	}
	s.answers[i].value = value
	if value != models.AnswerNeedsAttention {
		s.answers[i].comment = ""
	}
}

func (s *Sheet) SetComment(i int, comment string) {
	if i < 0 || i >= len(s.answers) {
		return
	}
	s.answers[i].comment = comment
}

// Prefill loads a prior submission's answers, matching by item id and
// normalizing legacy vocabulary. Items absent from the prior answers stay
// unanswered.
func (s *Sheet) Prefill(answers []models.Answer) {
	byID := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		byID[a.ItemID] = a
	}
	for i, it := range s.items {
		a, ok := byID[it.ID]
		if !ok {
			continue
		}
		s.answers[i] = sheetAnswer{value: format.NormalizeAnswerValue(a.Value), comment: a.Comment}
		if s.answers[i].value != models.AnswerNeedsAttention {
			s.answers[i].comment = ""
		}
	}
}

// CanProceed reports whether every item has an answer.
func (s *Sheet) CanProceed() bool {
	for _, a := range s.answers {
		if a.value == "" {
			return false
		}
	}
	return true
}

// Validate returns the index of the first 점검필요 answer lacking a
// non-blank comment, or -1 when the sheet is submittable.
func (s *Sheet) Validate() int {
	for i, a := range s.answers {
		if a.value == models.AnswerNeedsAttention && strings.TrimSpace(a.comment) == "" {
			return i
		}
	}
	return -1
}

// Answers materializes the sheet into the submission payload.
func (s *Sheet) Answers() []models.Answer {
	out := make([]models.Answer, len(s.items))
	for i, it := range s.items {
		out[i] = models.Answer{
			ItemID:   it.ID,
			Question: it.Text,
			Value:    s.answers[i].value,
			Comment:  s.answers[i].comment,
		}
	}
	return out
}
