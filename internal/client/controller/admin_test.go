package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/safecheck/safecheck/internal/client/api"
	"github.com/safecheck/safecheck/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var longSignature = "data:image/png;base64," + strings.Repeat("A", 80)

func subadminSession() *models.Session {
	return &models.Session{Name: "김부관", Role: models.RoleSubAdmin, Categories: []string{"CT 작업"}}
}

func masterSession() *models.Session {
	return &models.Session{Name: "총관리자", Role: models.RoleMasterAdmin}
}

func loggedInAdmin(t *testing.T, f *fakeAPI) *Controller {
	t.Helper()
	c := newController(f)
	require.NoError(t, c.Login(context.Background(), f.session.Name, "1234"))
	return c
}

func TestApprove_ShortSignatureNeverReachesNetwork(t *testing.T) {
	f := &fakeAPI{session: subadminSession(),
		records: []models.InspectionRecord{{ID: "r1", Status: "PENDING"}}}
	c := loggedInAdmin(t, f)
	c.OpenRecords(context.Background())
	c.OpenRecordDetail(f.records[0])
	require.Equal(t, ScreenSubadminRecordDetail, c.Screen())
	before := f.count("approve")

	for _, sig := range []string{"", "   ", "data:,"} {
		err := c.Approve(context.Background(), sig)
		require.ErrorIs(t, err, ErrSignatureMissing)
	}

	assert.Equal(t, before, f.count("approve"), "no approval request may be sent")
	assert.Equal(t, ScreenSubadminRecordDetail, c.Screen(), "screen unchanged")
	assert.NotNil(t, c.Selected(), "selection unchanged")
}

func TestApprove_WithoutSelection(t *testing.T) {
	f := &fakeAPI{session: subadminSession()}
	c := loggedInAdmin(t, f)

	err := c.Approve(context.Background(), longSignature)
	require.ErrorIs(t, err, ErrNoSelectedRecord)
	assert.Zero(t, f.count("approve"))
}

func TestApprove_SubadminSendsCategoriesAndReturnsToList(t *testing.T) {
	f := &fakeAPI{session: subadminSession(),
		records: []models.InspectionRecord{{ID: "r1", Status: "PENDING"}}}
	c := loggedInAdmin(t, f)
	c.OpenRecords(context.Background())
	c.OpenRecordDetail(f.records[0])

	require.NoError(t, c.Approve(context.Background(), longSignature))

	assert.Equal(t, "김부관", f.lastApprove.SubadminName)
	assert.Equal(t, []string{"CT 작업"}, f.lastApprove.SubadminCategories)
	assert.Equal(t, ScreenSubadminRecords, c.Screen())
	assert.Nil(t, c.Selected())
	assert.GreaterOrEqual(t, f.count("listInspections"), 2, "list refreshed after approval")
}

func TestApprove_MasterSendsEmptyCategoriesAndRoutesToAdminList(t *testing.T) {
	f := &fakeAPI{session: masterSession(),
		records: []models.InspectionRecord{{ID: "r1", Status: "PENDING"}}}
	c := loggedInAdmin(t, f)
	c.OpenRecords(context.Background())
	c.OpenRecordDetail(f.records[0])
	require.Equal(t, ScreenAdminRecordDetail, c.Screen())

	require.NoError(t, c.Approve(context.Background(), longSignature))

	assert.NotNil(t, f.lastApprove.SubadminCategories)
	assert.Empty(t, f.lastApprove.SubadminCategories)
	assert.Equal(t, ScreenAdminRecords, c.Screen())
}

func TestApprove_ServerErrorKeepsSelection(t *testing.T) {
	f := &fakeAPI{session: subadminSession(),
		records:    []models.InspectionRecord{{ID: "r1"}},
		approveErr: &api.APIError{StatusCode: 409, Detail: "이미 승인된 기록입니다"}}
	c := loggedInAdmin(t, f)
	c.OpenRecords(context.Background())
	c.OpenRecordDetail(f.records[0])

	err := c.Approve(context.Background(), longSignature)
	require.Error(t, err)
	assert.Equal(t, "이미 승인된 기록입니다", api.UserMessage(err, "승인에 실패했습니다"))
	assert.NotNil(t, c.Selected())
	assert.Equal(t, ScreenSubadminRecordDetail, c.Screen())
}

func TestReject_EmptyReasonAllowed(t *testing.T) {
	f := &fakeAPI{session: subadminSession(),
		records: []models.InspectionRecord{{ID: "r1"}}}
	c := loggedInAdmin(t, f)
	c.OpenRecords(context.Background())
	c.OpenRecordDetail(f.records[0])

	require.NoError(t, c.Reject(context.Background(), ""))
	assert.Equal(t, 1, f.count("reject"))
	assert.Equal(t, "", f.lastReject.Reason)
	assert.Equal(t, ScreenSubadminRecords, c.Screen())
}

func TestRefreshRecords_FailureLeavesEmptyList(t *testing.T) {
	f := &fakeAPI{session: masterSession(), listErr: errors.New("down")}
	c := loggedInAdmin(t, f)

	c.OpenRecords(context.Background())
	assert.Equal(t, ScreenAdminRecords, c.Screen())
	assert.Empty(t, c.Records())
}

func TestExport_UsesMonthWindowAndReturnsPath(t *testing.T) {
	f := &fakeAPI{session: masterSession(), exportPath: "/tmp/downloads/safety_report.xlsx"}
	c := loggedInAdmin(t, f)

	path, err := c.Export(context.Background(), api.ExportXLSX)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/downloads/safety_report.xlsx", path)
	assert.Equal(t, "2026-08-01", f.lastListQuery.StartDate)
	assert.Equal(t, "2026-09-01", f.lastListQuery.EndDate)
}

func TestOpenSubadmins_MasterOnly(t *testing.T) {
	f := &fakeAPI{session: subadminSession()}
	c := loggedInAdmin(t, f)

	c.OpenSubadmins(context.Background())
	assert.Zero(t, f.count("listSubadmins"))
	assert.Equal(t, ScreenSubadminHome, c.Screen())

	fm := &fakeAPI{session: masterSession(),
		subadmins: []models.Subadmin{{ID: "s1", Name: "김부관"}}}
	cm := loggedInAdmin(t, fm)
	cm.OpenSubadmins(context.Background())
	assert.Equal(t, ScreenAdminSubadmins, cm.Screen())
	assert.Len(t, cm.Subadmins(), 1)
}

func TestSubadminCRUD_RefreshesList(t *testing.T) {
	f := &fakeAPI{session: masterSession()}
	c := loggedInAdmin(t, f)
	c.OpenSubadmins(context.Background())

	require.NoError(t, c.CreateSubadmin(context.Background(), api.SubadminRequest{Name: "신규"}))
	require.NoError(t, c.UpdateSubadmin(context.Background(), "s1", api.SubadminRequest{Name: "개명"}))
	require.NoError(t, c.DeleteSubadmin(context.Background(), "s1"))

	// One list per open plus one per mutation.
	assert.Equal(t, 4, f.count("listSubadmins"))
}

func TestSaveHospitals_MirrorsLocalStateOnSuccess(t *testing.T) {
	f := &fakeAPI{session: masterSession()}
	c := loggedInAdmin(t, f)
	c.Init(context.Background())

	updated := []string{"서울대병원", "아산병원"}
	require.NoError(t, c.SaveHospitals(context.Background(), updated))
	assert.Equal(t, updated, c.Hospitals())
}
