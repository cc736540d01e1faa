package models

// AgenticTrace is the audit envelope returned with every investigation
// response. Flag and safeguard snapshots reflect the values in effect at
// run start, frozen for audit replay.
type AgenticTrace struct {
	LLMUsage     LLMUsage        `json:"llm_usage"`
	TMAPIUsage   TMAPIUsage      `json:"tm_api_usage"`
	FeatureFlags map[string]bool `json:"feature_flags_snapshot"`
	Safeguards   Safeguards      `json:"safeguards_snapshot"`
	EvidenceGaps []string        `json:"evidence_gaps"`
	ActionPlan   []string        `json:"action_plan"`
}

// InvestigationEnvelope is the full response payload for run/get/resume.
type InvestigationEnvelope struct {
	InvestigationID  string                `json:"investigation_id"`
	TransactionID    string                `json:"transaction_id"`
	Status           string                `json:"status"`
	Severity         string                `json:"severity,omitempty"`
	ConfidenceScore  float64               `json:"confidence_score"`
	StepCount        int                   `json:"step_count"`
	MaxSteps         int                   `json:"max_steps"`
	PlannerDecisions []PlannerDecision     `json:"planner_decisions"`
	ToolExecutions   []ToolExecutionRecord `json:"tool_executions"`
	Recommendations  []Recommendation      `json:"recommendations"`
	RuleDraft        *RuleDraftPayload     `json:"rule_draft,omitempty"`
	StartedAt        string                `json:"started_at,omitempty"`
	CompletedAt      string                `json:"completed_at,omitempty"`
	TotalDurationMs  int64                 `json:"total_duration_ms"`
	AgenticTrace     AgenticTrace          `json:"agentic_trace"`
}

// BuildEnvelope assembles the response envelope from a final (or current)
// state. Evidence gaps name the buckets that stayed empty; the action plan
// is the ordered list of open recommendation titles.
func BuildEnvelope(state *InvestigationState) *InvestigationEnvelope {
	var gaps []string
	if state.Context == nil || state.Context.Transaction == nil {
		gaps = append(gaps, "context")
	}
	if state.PatternResults == nil {
		gaps = append(gaps, "pattern_results")
	}
	if state.SimilarityResults == nil || state.SimilarityResults.Skipped {
		gaps = append(gaps, "similarity_results")
	}
	if state.Reasoning == nil {
		gaps = append(gaps, "reasoning")
	}
	if gaps == nil {
		gaps = []string{}
	}

	plan := make([]string, 0, len(state.Recommendations))
	for _, rec := range state.Recommendations {
		plan = append(plan, rec.Title)
	}

	var durationMs int64
	if state.StartedAt != "" && state.CompletedAt != "" {
		start := ParseTimestamp(state.StartedAt)
		end := ParseTimestamp(state.CompletedAt)
		if !start.IsZero() && !end.IsZero() {
			durationMs = end.Sub(start).Milliseconds()
		}
	}

	decisions := state.PlannerDecisions
	if decisions == nil {
		decisions = []PlannerDecision{}
	}
	executions := state.ToolExecutions
	if executions == nil {
		executions = []ToolExecutionRecord{}
	}
	recs := state.Recommendations
	if recs == nil {
		recs = []Recommendation{}
	}
	flags := state.FeatureFlags
	if flags == nil {
		flags = map[string]bool{}
	}

	return &InvestigationEnvelope{
		InvestigationID:  state.InvestigationID,
		TransactionID:    state.TransactionID,
		Status:           state.Status,
		Severity:         state.Severity,
		ConfidenceScore:  state.ConfidenceScore,
		StepCount:        state.StepCount,
		MaxSteps:         state.MaxSteps,
		PlannerDecisions: decisions,
		ToolExecutions:   executions,
		Recommendations:  recs,
		RuleDraft:        state.RuleDraft,
		StartedAt:        state.StartedAt,
		CompletedAt:      state.CompletedAt,
		TotalDurationMs:  durationMs,
		AgenticTrace: AgenticTrace{
			LLMUsage:     state.LLMUsage,
			TMAPIUsage:   state.TMAPIUsage,
			FeatureFlags: flags,
			Safeguards:   state.Safeguards,
			EvidenceGaps: gaps,
			ActionPlan:   plan,
		},
	}
}
