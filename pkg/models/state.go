// Package models defines the shared in-process contracts: the
// InvestigationState that flows through every graph node, the audit
// records appended during a run, and the API request/response types.
//
// State is strict JSON — no native time or binary values. Timestamps are
// ISO-8601 strings so a snapshot round-trips bit-identically through the
// JSONB store.
package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// Investigation status values. Mirrors the investigations table enum.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusTimedOut   = "timed_out"
)

// Investigation modes.
const (
	ModeFull  = "FULL"
	ModeQuick = "QUICK"
)

// Severity levels, ordered.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
)

// Tool execution status values.
const (
	ToolStatusSuccess  = "SUCCESS"
	ToolStatusFailed   = "FAILED"
	ToolStatusTimedOut = "TIMED_OUT"
)

// ActionComplete is the planner's terminal action (not a tool name).
const ActionComplete = "COMPLETE"

// severityRank orders severities for max-escalation. Higher is worse.
var severityRank = map[string]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// SeverityRank returns the ordering rank of a severity (0 for unknown).
func SeverityRank(s string) int { return severityRank[s] }

// MaxSeverity returns the worse of two severities.
func MaxSeverity(a, b string) string {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}

// Timestamp returns t formatted the way state snapshots store time.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp parses a state timestamp. Returns the zero time on failure.
func ParseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PlannerDecision records one planner step for the audit trail.
type PlannerDecision struct {
	Step         int     `json:"step"`
	SelectedTool string  `json:"selected_tool"`
	Reason       string  `json:"reason"`
	Confidence   float64 `json:"confidence"`
	UsedFallback bool    `json:"used_fallback"`
	Timestamp    string  `json:"timestamp"`
}

// ToolExecutionRecord records one tool execution outcome.
type ToolExecutionRecord struct {
	ToolName        string `json:"tool_name"`
	StepNumber      int    `json:"step_number"`
	Status          string `json:"status"`
	InputSummary    string `json:"input_summary,omitempty"`
	OutputSummary   string `json:"output_summary,omitempty"`
	ExecutionTimeMs int64  `json:"execution_time_ms"`
	ErrorMessage    string `json:"error_message,omitempty"`
	Timestamp       string `json:"timestamp"`
}

// EvidenceEnvelope is one tool-authored evidence record in state.
type EvidenceEnvelope struct {
	Category    string         `json:"category"`
	Tool        string         `json:"tool"`
	Description string         `json:"description,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// Safeguards is the frozen runtime safeguard snapshot, captured at the
// start of a run for audit replay.
type Safeguards struct {
	InvestigationTimeoutSeconds int `json:"investigation_timeout_seconds"`
	ToolTimeoutSeconds          int `json:"tool_timeout_seconds"`
	PlannerTimeoutSeconds       int `json:"planner_timeout_seconds"`
	MaxSteps                    int `json:"max_steps"`
}

// LLMUsage aggregates LLM consumption across planner and reasoning calls.
type LLMUsage struct {
	PlannerCalls          int    `json:"planner_calls"`
	ReasoningCalls        int    `json:"reasoning_calls"`
	TotalPromptTokens     int    `json:"total_prompt_tokens"`
	TotalCompletionTokens int    `json:"total_completion_tokens"`
	FallbackCount         int    `json:"fallback_count"`
	Model                 string `json:"model,omitempty"`
}

// TMAPIUsage aggregates calls to the Transaction Management collaborator.
type TMAPIUsage struct {
	TotalCalls      int      `json:"total_calls"`
	EndpointsCalled []string `json:"endpoints_called,omitempty"`
}

// RecordCall counts a TM call and tracks the distinct endpoint set.
func (u *TMAPIUsage) RecordCall(endpoint string) {
	u.TotalCalls++
	if !slices.Contains(u.EndpointsCalled, endpoint) {
		u.EndpointsCalled = append(u.EndpointsCalled, endpoint)
	}
}

// InvestigationState is the working memory that flows through every node.
// Nodes treat it as copy-on-write: they Clone() before mutating and return
// the new value, so resumption from any snapshot is deterministic.
type InvestigationState struct {
	InvestigationID string `json:"investigation_id"`
	TransactionID   string `json:"transaction_id"`
	Mode            string `json:"mode"`

	Context *TransactionContext `json:"context,omitempty"`

	PatternResults    *PatternResults    `json:"pattern_results,omitempty"`
	SimilarityResults *SimilarityResult  `json:"similarity_results,omitempty"`
	Reasoning         *Reasoning         `json:"reasoning,omitempty"`
	Recommendations   []Recommendation   `json:"recommendations,omitempty"`
	RuleDraft         *RuleDraftPayload  `json:"rule_draft,omitempty"`
	Evidence          []EvidenceEnvelope `json:"evidence,omitempty"`

	ConfidenceScore float64  `json:"confidence_score"`
	Severity        string   `json:"severity,omitempty"`
	Hypotheses      []string `json:"hypotheses,omitempty"`

	Status         string   `json:"status"`
	CompletedSteps []string `json:"completed_steps"`
	NextAction     string   `json:"next_action,omitempty"`
	StepCount      int      `json:"step_count"`
	MaxSteps       int      `json:"max_steps"`
	StartedAt      string   `json:"started_at,omitempty"`
	CompletedAt    string   `json:"completed_at,omitempty"`
	Error          string   `json:"error,omitempty"`

	PlannerDecisions []PlannerDecision     `json:"planner_decisions,omitempty"`
	ToolExecutions   []ToolExecutionRecord `json:"tool_executions,omitempty"`

	FeatureFlags map[string]bool `json:"feature_flags,omitempty"`
	Safeguards   Safeguards      `json:"safeguards"`

	LLMUsage   LLMUsage   `json:"llm_usage"`
	TMAPIUsage TMAPIUsage `json:"tm_api_usage"`
}

// Clone returns a deep copy via a JSON round-trip. The state is strict
// JSON by construction, so the round-trip is lossless.
func (s *InvestigationState) Clone() *InvestigationState {
	raw, err := json.Marshal(s)
	if err != nil {
		// State is built exclusively from JSON-safe types; a marshal
		// failure is a programming error.
		panic(fmt.Sprintf("state not JSON-serializable: %v", err))
	}
	var out InvestigationState
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("state round-trip failed: %v", err))
	}
	return &out
}

// HasStep reports whether toolName already ran in this investigation.
func (s *InvestigationState) HasStep(toolName string) bool {
	return slices.Contains(s.CompletedSteps, toolName)
}

// SetEvidence records an evidence envelope, replacing any prior envelope
// from the same tool. Tools are idempotent: re-running replaces, never
// appends.
func (s *InvestigationState) SetEvidence(env EvidenceEnvelope) {
	for i := range s.Evidence {
		if s.Evidence[i].Tool == env.Tool {
			s.Evidence[i] = env
			return
		}
	}
	s.Evidence = append(s.Evidence, env)
}

// ToMap converts the state to a generic map for JSONB persistence.
func (s *InvestigationState) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert state: %w", err)
	}
	return out, nil
}

// StateFromMap reconstructs an InvestigationState from a persisted JSONB map.
func StateFromMap(m map[string]interface{}) (*InvestigationState, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	var out InvestigationState
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &out, nil
}
