package models

// Canonical answer vocabulary. The UI reasons only in these three values;
// legacy YES/NO payloads are translated at the façade boundary.
const (
	AnswerOK             = "양호"
	AnswerNormal         = "보통"
	AnswerNeedsAttention = "점검필요"
)

// Canonical record statuses.
const (
	StatusPending   = "PENDING"
	StatusSubmitted = "SUBMITTED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// SetupDraft is the user-entered inspection context. It stays mutable until
// submission, when it is copied into the submitted record.
type SetupDraft struct {
	Hospital      string
	EquipmentName string
	WorkType      string
	Date          string // YYYY-MM-DD
}

// ChecklistItem is one question of a work-type checklist.
type ChecklistItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
	Code  string `json:"code,omitempty"`
}

// Answer is one checklist item's recorded value and optional remediation
// comment. A comment is required exactly when Value is AnswerNeedsAttention.
type Answer struct {
	ItemID   string `json:"itemId"`
	Question string `json:"question"`
	Value    string `json:"value"`
	Comment  string `json:"comment"`
}

// Revision is one submitted answer set of a record; resubmission appends a
// new revision server-side and the latest one is what the screens show.
type Revision struct {
	Answers         []Answer `json:"answers"`
	SignatureBase64 string   `json:"signatureBase64"`
	ResultCount     int      `json:"resultCount"`
	ImproveCount    int      `json:"improveCount"`
	CreatedAt       string   `json:"createdAt"`
}

// RecordSummary is one row of the worker's own inspection list.
type RecordSummary struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Hospital      string `json:"hospital"`
	EquipmentName string `json:"equipmentName"`
	WorkType      string `json:"workType"`
	Status        string `json:"status"`
	ImproveCount  int    `json:"improveCount"`
}

// RecordDetail is the worker's own record with its latest revision.
type RecordDetail struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Hospital       string    `json:"hospital"`
	EquipmentName  string    `json:"equipmentName"`
	WorkType       string    `json:"workType"`
	Status         string    `json:"status"`
	LatestRevision *Revision `json:"latestRevision"`
}

// InspectionRecord is one row of the admin/sub-admin record list, a
// read-only mirror of the server-owned record.
type InspectionRecord struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	UserName                string   `json:"userName"`
	Date                    string   `json:"date"`
	Hospital                string   `json:"hospital"`
	EquipmentName           string   `json:"equipmentName"`
	WorkType                string   `json:"workType"`
	Status                  string   `json:"status"`
	ResultCount             int      `json:"resultCount"`
	ImproveCount            int      `json:"improveCount"`
	Results                 []Answer `json:"results"`
	SignatureBase64         string   `json:"signatureBase64"`
	SubadminName            string   `json:"subadminName"`
	SubadminSignatureBase64 string   `json:"subadminSignatureBase64"`
	RejectReason            string   `json:"rejectReason,omitempty"`
	CreatedAt               string   `json:"createdAt"`
	UpdatedAt               string   `json:"updatedAt"`
}
