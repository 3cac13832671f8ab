// Package format holds the pure normalization helpers the screens and the
// controller rely on: translating legacy answer/status vocabularies into the
// canonical one, labeling statuses, and normalizing signature artifacts.
// All functions are total; unrecognized input passes through unchanged.
package format

import (
	"regexp"
	"strings"

	"github.com/safecheck/safecheck/internal/client/models"
)

// NormalizeAnswerValue maps the legacy boolean-like vocabulary onto the
// canonical answer values: YES -> 양호, NO -> 점검필요 (case-insensitive).
// Already-canonical and unknown values are returned trimmed but otherwise
// verbatim, which makes the function idempotent.
func NormalizeAnswerValue(raw string) string {
	v := strings.TrimSpace(raw)
	switch strings.ToUpper(v) {
	case "YES":
		return models.AnswerOK
	case "NO":
		return models.AnswerNeedsAttention
	}
	return v
}

// NormalizeStatus maps status synonyms onto the closed status set,
// case-insensitively: SUBMIT/APPROVED -> SUBMITTED, REJECT -> REJECTED.
// Empty input stays empty; unknown input is returned trimmed, unchanged.
func NormalizeStatus(raw string) string {
	v := strings.TrimSpace(raw)
	switch strings.ToUpper(v) {
	case "SUBMIT", "SUBMITTED", "APPROVED":
		return models.StatusSubmitted
	case "REJECT", "REJECTED":
		return models.StatusRejected
	case "PENDING":
		return models.StatusPending
	case "CANCELLED", "CANCELED":
		return models.StatusCancelled
	case "":
		return ""
	}
	return v
}

// StatusLabel returns the display label for a record status. Unknown values
// pass through as-is, an explicit fallback so new server statuses never
// render as an error.
func StatusLabel(status string) string {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "CANCELLED", "CANCELED":
		return "취소됨"
	case "PENDING":
		return "승인대기"
	case "REJECTED", "REJECT":
		return "반려"
	case "APPROVED":
		return "승인완료"
	case "SUBMITTED", "SUBMIT", "":
		return "제출완료"
	}
	return status
}

// Badge is the three-way presentation class of an answer value.
type Badge string

const (
	BadgeGood    Badge = "good"
	BadgeAlert   Badge = "alert"
	BadgeNeutral Badge = "neutral"
)

// BadgeForValue classifies an answer value for display. 보통 and unknown
// values share the neutral badge, matching the original UI.
func BadgeForValue(value string) Badge {
	switch NormalizeAnswerValue(value) {
	case models.AnswerOK:
		return BadgeGood
	case models.AnswerNeedsAttention:
		return BadgeAlert
	}
	return BadgeNeutral
}

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// SignatureSrc normalizes a captured-signature artifact into a displayable
// data URL. Three encodings are accepted: an already-prefixed data URL
// (returned as-is), a bare "base64,"-prefixed payload, and a raw base64
// payload. Empty input yields "". Idempotent.
func SignatureSrc(signatureBase64 string) string {
	raw := strings.TrimSpace(signatureBase64)
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "data:image/") {
		return raw
	}

	if rest, ok := strings.CutPrefix(raw, "base64,"); ok {
		return "data:image/png;base64," + rest
	}

	// A partially pasted data-URL prefix still yields a clean payload.
	cleaned := dataURLPrefix.ReplaceAllString(raw, "")
	return "data:image/png;base64," + cleaned
}

// CompareDateDesc orders YYYY-MM-DD strings newest-first; it is meant for
// slices.SortFunc. Dates are compared digit-wise with separators stripped,
// which relies on all dates being zero-padded ISO calendar dates.
func CompareDateDesc(a, b string) int {
	ad := strings.ReplaceAll(a, "-", "")
	bd := strings.ReplaceAll(b, "-", "")
	return strings.Compare(bd, ad)
}
