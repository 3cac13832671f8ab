// Package api is the data-access façade: one method per remote capability,
// each issuing a single HTTP call against the configured base URL.
//
// The error policy is asymmetric on purpose. Read-heavy operations
// (reference lists, checklists, the worker's own record list) never fail:
// on any transport or server error they log, then degrade to the local
// cache and finally to built-in fallback data. Write operations always
// return the failure so the caller can surface it and let the user retry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/safecheck/safecheck/internal/client/models"
	"github.com/safecheck/safecheck/internal/client/store"
	"github.com/safecheck/safecheck/internal/logging"
)

// Options configures a Client beyond its base URL.
type Options struct {
	// Timeout bounds every request; zero means 10s.
	Timeout time.Duration
	// DownloadDir receives exported report files; empty means ./downloads.
	DownloadDir string
	// Cache, when non-nil, mirrors successful reference reads for offline
	// fallback.
	Cache *store.Store
	// Logger is required.
	Logger logging.Logger
}

type Client struct {
	baseURL     string
	http        *http.Client
	log         logging.Logger
	cache       *store.Store
	downloadDir string

	mu             sync.Mutex
	downloadCounts map[string]int
}

func New(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		log:            opts.Logger,
		cache:          opts.Cache,
		downloadDir:    opts.DownloadDir,
		downloadCounts: make(map[string]int),
	}
}

// do performs one JSON round trip. A nil body sends no payload; a non-nil
// out receives the decoded response. Transport failures wrap
// ErrUnavailable; non-2xx responses come back as *APIError with the
// server's detail text when it sent one.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

// ResetCache empties the local reference-data mirror. Called on logout.
func (c *Client) ResetCache(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Reset(ctx)
}

// --- authentication ---

// Login authenticates by name and phone suffix. Fails loudly; the caller
// shows the server-provided detail if present.
func (c *Client) Login(ctx context.Context, name, phoneLast4 string) (*models.Session, error) {
	body := map[string]string{"name": name, "phoneLast4": phoneLast4}
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Session(), nil
}

// --- reference data (reads: degrade, never fail) ---

func (c *Client) ListHospitals(ctx context.Context) []string {
	var resp struct {
		Hospitals []string `json:"hospitals"`
	}
	if err := c.do(ctx, http.MethodGet, "/settings/hospitals", nil, nil, &resp); err != nil {
		c.log.Warn(ctx, "hospital list fetch failed, degrading", "error", err)
		return c.listFallback(ctx, store.ListHospitals, fallbackHospitals)
	}
	c.saveList(ctx, store.ListHospitals, resp.Hospitals)
	return resp.Hospitals
}

func (c *Client) ListWorkTypes(ctx context.Context) []string {
	var resp struct {
		WorkTypes []string `json:"workTypes"`
	}
	if err := c.do(ctx, http.MethodGet, "/settings/work-types", nil, nil, &resp); err != nil {
		c.log.Warn(ctx, "work type list fetch failed, degrading", "error", err)
		return c.listFallback(ctx, store.ListWorkTypes, fallbackWorkTypes)
	}
	c.saveList(ctx, store.ListWorkTypes, resp.WorkTypes)
	return resp.WorkTypes
}

func (c *Client) GetChecklist(ctx context.Context, workType string) []models.ChecklistItem {
	var resp struct {
		Items []models.ChecklistItem `json:"items"`
	}
	path := "/checklists/" + url.PathEscape(workType)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		c.log.Warn(ctx, "checklist fetch failed, degrading", "workType", workType, "error", err)
		if c.cache != nil {
			if items, cerr := c.cache.Checklist(ctx, workType); cerr == nil && len(items) > 0 {
				return items
			}
		}
		return slices.Clone(fallbackChecklist)
	}
	if c.cache != nil {
		if err := c.cache.SaveChecklist(ctx, workType, resp.Items); err != nil {
			c.log.Warn(ctx, "checklist cache write failed", "error", err)
		}
	}
	return resp.Items
}

func (c *Client) listFallback(ctx context.Context, name string, builtin []string) []string {
	if c.cache != nil {
		if cached, err := c.cache.List(ctx, name); err == nil && len(cached) > 0 {
			return cached
		}
	}
	return slices.Clone(builtin)
}

func (c *Client) saveList(ctx context.Context, name string, values []string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.SaveList(ctx, name, values); err != nil {
		c.log.Warn(ctx, "reference cache write failed", "list", name, "error", err)
	}
}

// --- inspections (worker) ---

// SubmitRequest is the payload of a first-time inspection submission.
type SubmitRequest struct {
	UserName         string          `json:"userName"`
	Date             string          `json:"date"`
	Hospital         string          `json:"hospital"`
	EquipmentName    string          `json:"equipmentName,omitempty"`
	WorkType         string          `json:"workType"`
	ChecklistVersion int             `json:"checklistVersion"`
	Answers          []models.Answer `json:"answers"`
	SignatureBase64  string          `json:"signatureBase64,omitempty"`
}

func (c *Client) SubmitInspection(ctx context.Context, req SubmitRequest) error {
	if req.ChecklistVersion == 0 {
		req.ChecklistVersion = 1
	}
	return c.do(ctx, http.MethodPost, "/inspections", nil, req, nil)
}

// ResubmitRequest adds a revision to an existing record, keyed by the
// record's identifying fields rather than an id.
type ResubmitRequest struct {
	UserName        string          `json:"userName"`
	Date            string          `json:"date"`
	Hospital        string          `json:"hospital"`
	EquipmentName   string          `json:"equipmentName,omitempty"`
	Answers         []models.Answer `json:"answers"`
	SignatureBase64 string          `json:"signatureBase64,omitempty"`
}

func (c *Client) ResubmitInspection(ctx context.Context, req ResubmitRequest) error {
	return c.do(ctx, http.MethodPost, "/me/inspections/resubmit", nil, req, nil)
}

// MyInspections lists the worker's own records. Never fails: a failed
// fetch logs and returns an empty list.
func (c *Client) MyInspections(ctx context.Context, userName string) []models.RecordSummary {
	q := url.Values{"userName": {userName}}
	var out []models.RecordSummary
	if err := c.do(ctx, http.MethodGet, "/me/inspections", q, nil, &out); err != nil {
		c.log.Warn(ctx, "my inspections fetch failed", "error", err)
		return []models.RecordSummary{}
	}
	if out == nil {
		out = []models.RecordSummary{}
	}
	return out
}

// DetailQuery identifies one of the worker's records.
type DetailQuery struct {
	UserName      string
	Date          string
	Hospital      string
	EquipmentName string
}

func (q DetailQuery) values() url.Values {
	v := url.Values{
		"userName": {q.UserName},
		"date":     {q.Date},
		"hospital": {q.Hospital},
	}
	if q.EquipmentName != "" {
		v.Set("equipmentName", q.EquipmentName)
	}
	return v
}

func (c *Client) MyInspectionDetail(ctx context.Context, q DetailQuery) (*models.RecordDetail, error) {
	var out models.RecordDetail
	if err := c.do(ctx, http.MethodGet, "/me/inspections/detail", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelMyInspection flips a record's status to CANCELLED; the record
// itself is kept server-side.
func (c *Client) CancelMyInspection(ctx context.Context, q DetailQuery) error {
	body := map[string]string{
		"userName": q.UserName,
		"date":     q.Date,
		"hospital": q.Hospital,
	}
	if q.EquipmentName != "" {
		body["equipmentName"] = q.EquipmentName
	}
	return c.do(ctx, http.MethodPost, "/me/inspections/cancel", nil, body, nil)
}

// --- inspections (admin / sub-admin) ---

// ListQuery scopes the admin record list.
type ListQuery struct {
	AdminName           string
	StartDate           string
	EndDate             string
	RequesterRole       models.Role
	RequesterCategories []string
}

func (q ListQuery) values() url.Values {
	return url.Values{
		"admin_name":           {q.AdminName},
		"start_date":           {q.StartDate},
		"end_date":             {q.EndDate},
		"requester_role":       {string(q.RequesterRole)},
		"requester_categories": {strings.Join(q.RequesterCategories, ",")},
	}
}

// ListInspections fetches the scoped record list. A 403 is surfaced as
// ErrForbidden; any other failure logs and returns an empty list so the
// records screens still render.
func (c *Client) ListInspections(ctx context.Context, q ListQuery) ([]models.InspectionRecord, error) {
	var out []models.InspectionRecord
	if err := c.do(ctx, http.MethodGet, "/inspections", q.values(), nil, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
			return nil, ErrForbidden
		}
		c.log.Warn(ctx, "inspection list fetch failed", "error", err)
		return []models.InspectionRecord{}, nil
	}
	if out == nil {
		out = []models.InspectionRecord{}
	}
	return out, nil
}

// ApprovalRequest carries the approver identity, signature artifact, and
// category scope for an approval.
type ApprovalRequest struct {
	SubadminName       string   `json:"subadminName"`
	SignatureBase64    string   `json:"signatureBase64"`
	SubadminCategories []string `json:"subadminCategories"`
}

func (c *Client) ApproveInspection(ctx context.Context, id string, req ApprovalRequest) error {
	return c.do(ctx, http.MethodPost, "/inspections/"+url.PathEscape(id)+"/approve", nil, req, nil)
}

// RejectRequest carries the approver identity and a free-text reason,
// which may be empty.
type RejectRequest struct {
	SubadminName       string   `json:"subadminName"`
	Reason             string   `json:"reason"`
	SubadminCategories []string `json:"subadminCategories"`
}

func (c *Client) RejectInspection(ctx context.Context, id string, req RejectRequest) error {
	return c.do(ctx, http.MethodPost, "/inspections/"+url.PathEscape(id)+"/reject", nil, req, nil)
}

// --- sub-admin accounts (master admin only) ---

func (c *Client) ListSubadmins(ctx context.Context) ([]models.Subadmin, error) {
	var resp struct {
		Subadmins []models.Subadmin `json:"subadmins"`
	}
	if err := c.do(ctx, http.MethodGet, "/subadmins", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Subadmins, nil
}

// SubadminRequest creates or updates a sub-admin account.
type SubadminRequest struct {
	Name       string   `json:"name"`
	PhoneLast4 string   `json:"phoneLast4"`
	Categories []string `json:"categories"`
}

func (c *Client) CreateSubadmin(ctx context.Context, req SubadminRequest) error {
	return c.do(ctx, http.MethodPost, "/subadmins", nil, req, nil)
}

func (c *Client) UpdateSubadmin(ctx context.Context, id string, req SubadminRequest) error {
	return c.do(ctx, http.MethodPut, "/subadmins/"+url.PathEscape(id), nil, req, nil)
}

func (c *Client) DeleteSubadmin(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/subadmins/"+url.PathEscape(id), nil, nil, nil)
}

// --- reference data management (master admin) ---

// UpdateChecklist replaces a work type's checklist. Items are renumbered
// 1..N before sending so ordering survives edits and deletions.
func (c *Client) UpdateChecklist(ctx context.Context, adminName, workType string, items []models.ChecklistItem) error {
	renumbered := make([]models.ChecklistItem, len(items))
	for i, it := range items {
		it.Order = i + 1
		renumbered[i] = it
	}
	body := map[string]any{
		"adminName": adminName,
		"workType":  workType,
		"items":     renumbered,
	}
	return c.do(ctx, http.MethodPost, "/checklists", nil, body, nil)
}

func (c *Client) UpdateHospitals(ctx context.Context, adminName string, hospitals []string) error {
	body := map[string]any{"adminName": adminName, "hospitals": hospitals}
	return c.do(ctx, http.MethodPost, "/settings/hospitals", nil, body, nil)
}

func (c *Client) UpdateWorkTypes(ctx context.Context, adminName string, workTypes []string) error {
	body := map[string]any{"adminName": adminName, "workTypes": workTypes}
	return c.do(ctx, http.MethodPost, "/settings/work-types", nil, body, nil)
}
