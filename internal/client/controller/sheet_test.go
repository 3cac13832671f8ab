package controller

import (
	"testing"

	"github.com/safecheck/safecheck/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func newTestSheet() *Sheet {
	return NewSheet(testChecklist)
}

func TestSheet_CommentClearedWhenValueMovesOff(t *testing.T) {
	s := newTestSheet()
	s.SetValue(0, models.AnswerNeedsAttention)
	s.SetComment(0, "벨트 마모")
	assert.Equal(t, "벨트 마모", s.Comment(0))

	s.SetValue(0, models.AnswerOK)
	assert.Equal(t, "", s.Comment(0), "comment must not outlive 점검필요")

	// Returning to 점검필요 does not resurrect the old comment.
	s.SetValue(0, models.AnswerNeedsAttention)
	assert.Equal(t, "", s.Comment(0))
}

func TestSheet_OutOfRangeIndexIgnored(t *testing.T) {
	s := newTestSheet()
	s.SetValue(-1, models.AnswerOK)
	s.SetValue(99, models.AnswerOK)
	s.SetComment(99, "x")
	assert.False(t, s.CanProceed())
}

func TestSheet_CanProceedRequiresEveryAnswer(t *testing.T) {
	s := newTestSheet()
	assert.False(t, s.CanProceed())

	s.SetValue(0, models.AnswerOK)
	s.SetValue(1, models.AnswerNormal)
	assert.False(t, s.CanProceed())

	s.SetValue(2, models.AnswerOK)
	assert.True(t, s.CanProceed())
}

func TestSheet_ValidateFindsFirstUncommentedNeedsAttention(t *testing.T) {
	s := newTestSheet()
	s.SetValue(0, models.AnswerNeedsAttention)
	s.SetValue(1, models.AnswerNeedsAttention)
	s.SetValue(2, models.AnswerOK)
	s.SetComment(0, "   ") // blank-only comment does not count

	assert.Equal(t, 0, s.Validate())

	s.SetComment(0, "펌프 누유")
	assert.Equal(t, 1, s.Validate())

	s.SetComment(1, "배선 피복 손상")
	assert.Equal(t, -1, s.Validate())
}

func TestSheet_PrefillNormalizesAndSkipsUnknownItems(t *testing.T) {
	s := newTestSheet()
	s.Prefill([]models.Answer{
		{ItemID: "1", Value: "yes"},
		{ItemID: "3", Value: "NO", Comment: "교체 필요"},
		{ItemID: "999", Value: models.AnswerOK},
	})

	assert.Equal(t, models.AnswerOK, s.Value(0))
	assert.Equal(t, "", s.Value(1), "item without a prior answer stays unanswered")
	assert.Equal(t, models.AnswerNeedsAttention, s.Value(2))
	assert.Equal(t, "교체 필요", s.Comment(2))
}

func TestSheet_PrefillDropsCommentWhenNormalizedValueIsNotNeedsAttention(t *testing.T) {
	s := newTestSheet()
	s.Prefill([]models.Answer{{ItemID: "1", Value: "YES", Comment: "stale"}})
	assert.Equal(t, "", s.Comment(0))
}

func TestSheet_AnswersCarryItemIdentity(t *testing.T) {
	s := newTestSheet()
	s.SetValue(0, models.AnswerOK)
	s.SetValue(1, models.AnswerNormal)
	s.SetValue(2, models.AnswerNeedsAttention)
	s.SetComment(2, "소음 발생")

	got := s.Answers()
	assert.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ItemID)
	assert.Equal(t, "보호구를 착용하였는가?", got[0].Question)
	assert.Equal(t, "소음 발생", got[2].Comment)
}
