package controller

import (
	"context"
	"slices"
	"strings"

	"github.com/safecheck/safecheck/internal/client/api"
	"github.com/safecheck/safecheck/internal/client/format"
	"github.com/safecheck/safecheck/internal/client/models"
)

// refreshMyRecords re-fetches the worker's own record list, newest first.
func (c *Controller) refreshMyRecords(ctx context.Context) {
	records := c.api.MyInspections(ctx, c.session.Name)
	slices.SortFunc(records, func(a, b models.RecordSummary) int {
		return format.CompareDateDesc(a.Date, b.Date)
	})
	c.myRecords = records
}

// StartInspection begins a fresh create-flow: any leftover edit context or
// pending answers are dropped and the draft starts with today's date.
func (c *Controller) StartInspection() {
	c.edit = nil
	c.pending = nil
	c.sheet = nil
	c.draft = models.SetupDraft{Date: c.today()}
	c.screen = ScreenSetup
}

// ConfirmSetup fixes the inspection context and loads the checklist for
// the chosen work type into a fresh answer sheet.
func (c *Controller) ConfirmSetup(ctx context.Context, draft models.SetupDraft) {
	c.draft = draft
	c.edit = nil
	c.pending = nil

	_ = c.withLoading(func() error {
		c.sheet = NewSheet(c.api.GetChecklist(ctx, draft.WorkType))
		return nil
	})
	c.screen = ScreenInspect
}

// BackFromSetup returns to the worker home.
func (c *Controller) BackFromSetup() {
	c.screen = ScreenHome
}

// BackFromInspect distinguishes edit-flow from create-flow navigation:
// revising a record leads back to its detail, a fresh inspection to setup.
func (c *Controller) BackFromInspect() {
	if c.edit != nil {
		c.screen = ScreenMyRecordDetail
		return
	}
	c.screen = ScreenSetup
}

// FinishInspection validates the sheet and, when complete, carries the
// answer payload forward to the signature screen. ErrIncomplete means an
// unanswered item; *MissingCommentError points at the first 점검필요 item
// lacking a comment.
func (c *Controller) FinishInspection() error {
	if c.sheet == nil || !c.sheet.CanProceed() {
		return ErrIncomplete
	}
	if idx := c.sheet.Validate(); idx >= 0 {
		return &MissingCommentError{Index: idx}
	}
	c.pending = c.sheet.Answers()
	c.screen = ScreenSignature
	return nil
}

func (c *Controller) BackFromSignature() {
	c.screen = ScreenInspect
}

// Submit sends the pending answers with the signature artifact. Edit mode
// resubmits onto the existing record; otherwise a new record is created.
// On success all transient flow state is cleared and the complete screen
// is shown; on failure the caller surfaces the error and the user stays
// here to retry.
func (c *Controller) Submit(ctx context.Context, signatureBase64 string) error {
	return c.withLoading(func() error {
		var err error
		if c.edit != nil {
			err = c.api.ResubmitInspection(ctx, api.ResubmitRequest{
				UserName:        c.session.Name,
				Date:            c.draft.Date,
				Hospital:        c.draft.Hospital,
				EquipmentName:   c.draft.EquipmentName,
				Answers:         c.pending,
				SignatureBase64: signatureBase64,
			})
		} else {
			err = c.api.SubmitInspection(ctx, api.SubmitRequest{
				UserName:         c.session.Name,
				Date:             c.draft.Date,
				Hospital:         c.draft.Hospital,
				EquipmentName:    c.draft.EquipmentName,
				WorkType:         c.draft.WorkType,
				ChecklistVersion: 1,
				Answers:          c.pending,
				SignatureBase64:  signatureBase64,
			})
		}
		if err != nil {
			return err
		}

		c.edit = nil
		c.pending = nil
		c.sheet = nil
		c.screen = ScreenComplete
		return nil
	})
}

// CompleteDone returns to home and refreshes the worker's record list so
// the just-submitted inspection shows up.
func (c *Controller) CompleteDone(ctx context.Context) {
	_ = c.withLoading(func() error {
		c.refreshMyRecords(ctx)
		return nil
	})
	c.screen = ScreenHome
}

// OpenMyRecords fetches and shows the worker's own record list.
func (c *Controller) OpenMyRecords(ctx context.Context) {
	_ = c.withLoading(func() error {
		c.refreshMyRecords(ctx)
		return nil
	})
	c.screen = ScreenMyRecords
}

func (c *Controller) BackFromMyRecords() {
	c.screen = ScreenHome
}

// OpenMyDetail fetches one record's latest revision. Failure keeps the
// user on the list.
func (c *Controller) OpenMyDetail(ctx context.Context, rec models.RecordSummary) error {
	return c.withLoading(func() error {
		detail, err := c.api.MyInspectionDetail(ctx, api.DetailQuery{
			UserName:      c.session.Name,
			Date:          rec.Date,
			Hospital:      rec.Hospital,
			EquipmentName: rec.EquipmentName,
		})
		if err != nil {
			return err
		}
		c.mySelected = detail
		c.screen = ScreenMyRecordDetail
		return nil
	})
}

func (c *Controller) BackFromMyDetail() {
	c.screen = ScreenMyRecords
}

// StartEdit re-enters the inspect flow for the selected record: the setup
// draft is rebuilt from the record's context and the sheet is prefilled
// from its latest revision, with legacy answer vocabulary normalized.
func (c *Controller) StartEdit(ctx context.Context) error {
	if c.mySelected == nil || c.mySelected.LatestRevision == nil {
		return ErrNoRevisionForEdit
	}

	latest := c.mySelected.LatestRevision
	initial := make([]models.Answer, 0, len(latest.Answers))
	for _, a := range latest.Answers {
		initial = append(initial, models.Answer{
			ItemID:   a.ItemID,
			Question: a.Question,
			Value:    format.NormalizeAnswerValue(a.Value),
			Comment:  a.Comment,
		})
	}
	c.edit = &EditContext{InitialAnswers: initial}

	c.draft = models.SetupDraft{
		Hospital:      c.mySelected.Hospital,
		EquipmentName: c.mySelected.EquipmentName,
		WorkType:      c.mySelected.WorkType,
		Date:          c.mySelected.Date,
	}

	_ = c.withLoading(func() error {
		c.sheet = NewSheet(c.api.GetChecklist(ctx, c.draft.WorkType))
		c.sheet.Prefill(initial)
		return nil
	})
	c.screen = ScreenInspect
	return nil
}

// CancelMyInspection flips the selected record to CANCELLED, then returns
// to the refreshed record list.
func (c *Controller) CancelMyInspection(ctx context.Context) error {
	if c.mySelected == nil {
		return ErrNoSelectedRecord
	}
	return c.withLoading(func() error {
		err := c.api.CancelMyInspection(ctx, api.DetailQuery{
			UserName:      c.session.Name,
			Date:          c.mySelected.Date,
			Hospital:      c.mySelected.Hospital,
			EquipmentName: c.mySelected.EquipmentName,
		})
		if err != nil {
			return err
		}
		c.mySelected = nil
		c.refreshMyRecords(ctx)
		c.screen = ScreenMyRecords
		return nil
	})
}

// HomeStats summarizes the worker's records for the home screen.
type HomeStats struct {
	Total   int
	Today   int
	Pending int
}

func (c *Controller) Stats() HomeStats {
	s := HomeStats{Total: len(c.myRecords)}
	today := c.today()
	for _, r := range c.myRecords {
		if r.Date == today {
			s.Today++
		}
		if strings.EqualFold(strings.TrimSpace(r.Status), models.StatusPending) {
			s.Pending++
		}
	}
	return s
}
