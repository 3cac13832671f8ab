package controller

import (
	"context"
	"slices"
	"strings"

	"github.com/safecheck/safecheck/internal/client/api"
	"github.com/safecheck/safecheck/internal/client/format"
	"github.com/safecheck/safecheck/internal/client/models"
)

// recordsScreen and homeScreen pick the role's variant of the shared
// admin/sub-admin flow.
func (c *Controller) recordsScreen() Screen {
	if c.session.IsSubAdmin() {
		return ScreenSubadminRecords
	}
	return ScreenAdminRecords
}

func (c *Controller) homeScreen() Screen {
	if c.session.IsSubAdmin() {
		return ScreenSubadminHome
	}
	return ScreenAdminHome
}

// monthWindow is the default record-list scope: the rolling month ending
// today.
func (c *Controller) monthWindow() (start, end string) {
	now := c.now()
	return now.AddDate(0, -1, 0).Format("2006-01-02"), now.Format("2006-01-02")
}

// refreshRecords re-fetches the scoped record list. Failure empties the
// list rather than erroring; the screens always have something to render.
func (c *Controller) refreshRecords(ctx context.Context) {
	start, end := c.monthWindow()
	records, err := c.api.ListInspections(ctx, api.ListQuery{
		AdminName:           c.session.Name,
		StartDate:           start,
		EndDate:             end,
		RequesterRole:       c.session.Role,
		RequesterCategories: c.session.Categories,
	})
	if err != nil {
		c.log.Warn(ctx, "record list refresh failed", "error", err)
		c.records = []models.InspectionRecord{}
		return
	}
	slices.SortFunc(records, func(a, b models.InspectionRecord) int {
		return format.CompareDateDesc(a.Date, b.Date)
	})
	c.records = records
}

// OpenRecords enters the role's record list, re-fetching the rolling
// month window.
func (c *Controller) OpenRecords(ctx context.Context) {
	_ = c.withLoading(func() error {
		c.refreshRecords(ctx)
		return nil
	})
	c.screen = c.recordsScreen()
}

// BackToAdminHome returns to the role's home screen with fresh records,
// mirroring the list refresh that entering any admin-like screen does.
func (c *Controller) BackToAdminHome(ctx context.Context) {
	_ = c.withLoading(func() error {
		c.refreshRecords(ctx)
		return nil
	})
	c.screen = c.homeScreen()
}

// OpenRecordDetail selects one record and shows the role's detail screen.
func (c *Controller) OpenRecordDetail(rec models.InspectionRecord) {
	c.selected = &rec
	if c.session.IsSubAdmin() {
		c.screen = ScreenSubadminRecordDetail
		return
	}
	c.screen = ScreenAdminRecordDetail
}

func (c *Controller) BackFromRecordDetail() {
	c.selected = nil
	c.screen = c.recordsScreen()
}

// approvalCategories is the category scope sent with approve/reject: the
// master admin is unscoped, a sub-admin is limited to their categories.
func (c *Controller) approvalCategories() []string {
	if c.session.IsMasterAdmin() {
		return []string{}
	}
	return c.session.Categories
}

// Approve signs off the selected record. Preconditions are checked before
// any network call — a missing or implausibly short signature or a blank
// approver name aborts locally with the screen unchanged. On success the
// selection is cleared and the refreshed record list is shown, so the same
// record cannot be approved twice from a stale detail view.
func (c *Controller) Approve(ctx context.Context, signatureBase64 string) error {
	if c.selected == nil {
		return ErrNoSelectedRecord
	}
	if len(strings.TrimSpace(signatureBase64)) < minSignatureLen {
		return ErrSignatureMissing
	}
	if strings.TrimSpace(c.session.Name) == "" {
		return ErrApproverMissing
	}

	return c.withLoading(func() error {
		err := c.api.ApproveInspection(ctx, c.selected.ID, api.ApprovalRequest{
			SubadminName:       c.session.Name,
			SignatureBase64:    signatureBase64,
			SubadminCategories: c.approvalCategories(),
		})
		if err != nil {
			return err
		}
		c.refreshRecords(ctx)
		c.selected = nil
		c.screen = c.recordsScreen()
		return nil
	})
}

// Reject returns the selected record to its author. The reason is free
// text and may be empty; only the approver name is required.
func (c *Controller) Reject(ctx context.Context, reason string) error {
	if c.selected == nil {
		return ErrNoSelectedRecord
	}
	if strings.TrimSpace(c.session.Name) == "" {
		return ErrApproverMissing
	}

	return c.withLoading(func() error {
		err := c.api.RejectInspection(ctx, c.selected.ID, api.RejectRequest{
			SubadminName:       c.session.Name,
			Reason:             reason,
			SubadminCategories: c.approvalCategories(),
		})
		if err != nil {
			return err
		}
		c.refreshRecords(ctx)
		c.selected = nil
		c.screen = c.recordsScreen()
		return nil
	})
}

// Export downloads the rolling-month report in the requested format and
// returns the saved path.
func (c *Controller) Export(ctx context.Context, format api.ExportFormat) (string, error) {
	var path string
	err := c.withLoading(func() error {
		start, end := c.monthWindow()
		var err error
		path, err = c.api.ExportInspections(ctx, api.ListQuery{
			AdminName:           c.session.Name,
			StartDate:           start,
			EndDate:             end,
			RequesterRole:       c.session.Role,
			RequesterCategories: c.session.Categories,
		}, format)
		return err
	})
	return path, err
}

// --- sub-admin account management (master admin only) ---

// OpenSubadmins shows the sub-admin manager. Only the master admin may
// enter; the fetch failure case renders an empty list.
func (c *Controller) OpenSubadmins(ctx context.Context) {
	if !c.session.IsMasterAdmin() {
		return
	}
	_ = c.withLoading(func() error {
		subs, err := c.api.ListSubadmins(ctx)
		if err != nil {
			c.log.Warn(ctx, "subadmin list fetch failed", "error", err)
			subs = []models.Subadmin{}
		}
		c.subadmins = subs
		return nil
	})
	c.screen = ScreenAdminSubadmins
}

func (c *Controller) refreshSubadmins(ctx context.Context) {
	subs, err := c.api.ListSubadmins(ctx)
	if err != nil {
		c.log.Warn(ctx, "subadmin list refresh failed", "error", err)
		return
	}
	c.subadmins = subs
}

func (c *Controller) CreateSubadmin(ctx context.Context, req api.SubadminRequest) error {
	return c.withLoading(func() error {
		if err := c.api.CreateSubadmin(ctx, req); err != nil {
			return err
		}
		c.refreshSubadmins(ctx)
		return nil
	})
}

func (c *Controller) UpdateSubadmin(ctx context.Context, id string, req api.SubadminRequest) error {
	return c.withLoading(func() error {
		if err := c.api.UpdateSubadmin(ctx, id, req); err != nil {
			return err
		}
		c.refreshSubadmins(ctx)
		return nil
	})
}

func (c *Controller) DeleteSubadmin(ctx context.Context, id string) error {
	return c.withLoading(func() error {
		if err := c.api.DeleteSubadmin(ctx, id); err != nil {
			return err
		}
		c.refreshSubadmins(ctx)
		return nil
	})
}

// --- reference data management (master admin) ---

func (c *Controller) OpenChecklistManager() { c.screen = ScreenAdminChecklist }
func (c *Controller) OpenLocationManager()  { c.screen = ScreenAdminLocations }
func (c *Controller) OpenWorkTypeManager()  { c.screen = ScreenAdminWorkTypes }

// SaveHospitals replaces the hospital list server-side and mirrors the
// accepted list locally.
func (c *Controller) SaveHospitals(ctx context.Context, hospitals []string) error {
	return c.withLoading(func() error {
		if err := c.api.UpdateHospitals(ctx, c.session.Name, hospitals); err != nil {
			return err
		}
		c.hospitals = hospitals
		return nil
	})
}

func (c *Controller) SaveWorkTypes(ctx context.Context, workTypes []string) error {
	return c.withLoading(func() error {
		if err := c.api.UpdateWorkTypes(ctx, c.session.Name, workTypes); err != nil {
			return err
		}
		c.workTypes = workTypes
		return nil
	})
}

func (c *Controller) SaveChecklist(ctx context.Context, workType string, items []models.ChecklistItem) error {
	return c.withLoading(func() error {
		return c.api.UpdateChecklist(ctx, c.session.Name, workType, items)
	})
}
