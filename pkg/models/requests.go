package models

import "time"

// RunInvestigationRequest is the body of POST /investigations/run.
type RunInvestigationRequest struct {
	TransactionID           string `json:"transaction_id" binding:"required"`
	Mode                    string `json:"mode" binding:"omitempty,oneof=FULL QUICK"`
	CaseID                  string `json:"case_id"`
	IncludeRuleDraftPreview bool   `json:"include_rule_draft_preview"`
}

// AcknowledgeRequest is the body of POST /worklist/recommendations/{id}/acknowledge.
type AcknowledgeRequest struct {
	Action  string `json:"action" binding:"required,oneof=ACKNOWLEDGED REJECTED"`
	Comment string `json:"comment"`
}

// WorklistFilters filter the recommendation worklist.
type WorklistFilters struct {
	Status   string `form:"status"`
	Severity string `form:"severity"`
	Type     string `form:"type"`
	// Keyset cursor: items strictly older than (CursorStatus, CursorTS).
	CursorStatus string     `form:"cursor_status"`
	CursorTS     *time.Time `form:"cursor_ts" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit        int        `form:"limit"`
}

// WorklistItem is one row in the recommendation worklist response.
type WorklistItem struct {
	RecommendationID string         `json:"recommendation_id"`
	InsightID        string         `json:"insight_id"`
	TransactionID    string         `json:"transaction_id,omitempty"`
	Type             string         `json:"type"`
	Status           string         `json:"status"`
	Priority         int            `json:"priority"`
	Severity         string         `json:"severity"`
	Title            string         `json:"title"`
	Impact           string         `json:"impact,omitempty"`
	Payload          map[string]any `json:"payload,omitempty"`
	CreatedAt        string         `json:"created_at"`
}

// WorklistResponse is a keyset-paginated worklist page.
type WorklistResponse struct {
	Items      []WorklistItem `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// InsightView is the persisted-insight response shape.
type InsightView struct {
	InsightID       string           `json:"insight_id"`
	InvestigationID string           `json:"investigation_id"`
	TransactionID   string           `json:"transaction_id"`
	Severity        string           `json:"severity"`
	Summary         string           `json:"summary"`
	EvidenceKind    string           `json:"evidence_kind"`
	ModelMode       string           `json:"model_mode"`
	Evidence        []map[string]any `json:"evidence,omitempty"`
	CreatedAt       string           `json:"created_at"`
}
