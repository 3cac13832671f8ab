// Package controller holds the client's entire mutable state and the
// transition functions between screens. Screens read snapshots and call
// transitions; every remote side effect goes through the façade, and the
// loading flag brackets each façade call so the UI can block input while a
// request is in flight.
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safecheck/safecheck/internal/client/api"
	"github.com/safecheck/safecheck/internal/client/models"
	"github.com/safecheck/safecheck/internal/logging"
)

// Local precondition failures, surfaced to the user before any network
// call is made.
var (
	ErrIncomplete        = errors.New("모든 항목을 점검해주세요")
	ErrSignatureMissing  = errors.New("서명이 누락되었습니다. 서명을 다시 입력해주세요")
	ErrApproverMissing   = errors.New("서브관리자 이름이 누락되었습니다")
	ErrNoSelectedRecord  = errors.New("선택된 점검 기록이 없습니다")
	ErrNoRevisionForEdit = errors.New("수정할 제출 내역이 없습니다")
)

// MissingCommentError points at the first 점검필요 item whose remediation
// comment is blank.
type MissingCommentError struct {
	Index int
}

func (e *MissingCommentError) Error() string {
	return fmt.Sprintf("점검 필요 내용을 기재해주세요 (항목 %d)", e.Index+1)
}

// minSignatureLen filters out accidental one-dot signatures; anything
// shorter than this cannot be a real captured image payload.
const minSignatureLen = 50

// API is the façade surface the controller drives. *api.Client satisfies
// it; tests substitute a fake.
type API interface {
	Login(ctx context.Context, name, phoneLast4 string) (*models.Session, error)
	ResetCache(ctx context.Context) error

	ListHospitals(ctx context.Context) []string
	ListWorkTypes(ctx context.Context) []string
	GetChecklist(ctx context.Context, workType string) []models.ChecklistItem

	SubmitInspection(ctx context.Context, req api.SubmitRequest) error
	ResubmitInspection(ctx context.Context, req api.ResubmitRequest) error
	MyInspections(ctx context.Context, userName string) []models.RecordSummary
	MyInspectionDetail(ctx context.Context, q api.DetailQuery) (*models.RecordDetail, error)
	CancelMyInspection(ctx context.Context, q api.DetailQuery) error

	ListInspections(ctx context.Context, q api.ListQuery) ([]models.InspectionRecord, error)
	ApproveInspection(ctx context.Context, id string, req api.ApprovalRequest) error
	RejectInspection(ctx context.Context, id string, req api.RejectRequest) error
	ExportInspections(ctx context.Context, q api.ListQuery, format api.ExportFormat) (string, error)

	ListSubadmins(ctx context.Context) ([]models.Subadmin, error)
	CreateSubadmin(ctx context.Context, req api.SubadminRequest) error
	UpdateSubadmin(ctx context.Context, id string, req api.SubadminRequest) error
	DeleteSubadmin(ctx context.Context, id string) error

	UpdateChecklist(ctx context.Context, adminName, workType string, items []models.ChecklistItem) error
	UpdateHospitals(ctx context.Context, adminName string, hospitals []string) error
	UpdateWorkTypes(ctx context.Context, adminName string, workTypes []string) error
}

// EditContext marks the current flow as revising a prior submission. Its
// presence selects resubmit over create and changes where "back" leads.
type EditContext struct {
	InitialAnswers []models.Answer
}

type Controller struct {
	api API
	log logging.Logger
	now func() time.Time

	screen  Screen
	session *models.Session
	loading bool

	hospitals []string
	workTypes []string

	records   []models.InspectionRecord
	subadmins []models.Subadmin
	selected  *models.InspectionRecord

	myRecords  []models.RecordSummary
	mySelected *models.RecordDetail

	draft   models.SetupDraft
	edit    *EditContext
	sheet   *Sheet
	pending []models.Answer
}

func New(a API, log logging.Logger) *Controller {
	return &Controller{api: a, log: log, now: time.Now, screen: ScreenLogin}
}

// --- read-only snapshots for screens ---

func (c *Controller) Screen() Screen                       { return c.screen }
func (c *Controller) Session() *models.Session             { return c.session }
func (c *Controller) Loading() bool                        { return c.loading }
func (c *Controller) Hospitals() []string                  { return c.hospitals }
func (c *Controller) WorkTypes() []string                  { return c.workTypes }
func (c *Controller) Records() []models.InspectionRecord   { return c.records }
func (c *Controller) Subadmins() []models.Subadmin         { return c.subadmins }
func (c *Controller) Selected() *models.InspectionRecord   { return c.selected }
func (c *Controller) MyRecords() []models.RecordSummary    { return c.myRecords }
func (c *Controller) MySelected() *models.RecordDetail     { return c.mySelected }
func (c *Controller) Draft() models.SetupDraft             { return c.draft }
func (c *Controller) Sheet() *Sheet                        { return c.sheet }
func (c *Controller) EditMode() bool                       { return c.edit != nil }

func (c *Controller) today() string {
	return c.now().Format("2006-01-02")
}

// withLoading brackets a façade call; the flag is always lowered, whatever
// the outcome.
func (c *Controller) withLoading(fn func() error) error {
	c.loading = true
	defer func() { c.loading = false }()
	return fn()
}

// Init loads the reference lists once at startup. These reads never fail.
func (c *Controller) Init(ctx context.Context) {
	c.hospitals = c.api.ListHospitals(ctx)
	c.workTypes = c.api.ListWorkTypes(ctx)
}

// Login authenticates and routes by role: workers land on home with their
// record list prefetched, admins and sub-admins land on their home screen
// with the scoped record list loaded. The destination is decided here,
// once, and never re-evaluated.
func (c *Controller) Login(ctx context.Context, name, phoneLast4 string) error {
	return c.withLoading(func() error {
		sess, err := c.api.Login(ctx, name, phoneLast4)
		if err != nil {
			return err
		}
		c.session = sess

		switch sess.Role {
		case models.RoleMasterAdmin:
			c.refreshRecords(ctx)
			c.screen = ScreenAdminHome
		case models.RoleSubAdmin:
			c.refreshRecords(ctx)
			c.screen = ScreenSubadminHome
		default:
			c.refreshMyRecords(ctx)
			c.screen = ScreenHome
		}
		return nil
	})
}

// Logout destroys the session and every accumulated collection and
// selection, clears the local cache, and returns to the login screen.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.ResetCache(ctx); err != nil {
		c.log.Warn(ctx, "cache reset on logout failed", "error", err)
	}

	c.session = nil
	c.records = nil
	c.subadmins = nil
	c.selected = nil
	c.myRecords = nil
	c.mySelected = nil
	c.draft = models.SetupDraft{}
	c.edit = nil
	c.sheet = nil
	c.pending = nil
	c.screen = ScreenLogin
}
