// Package tools implements the evidence-producing tools invoked by the
// agent runtime. Every tool is deterministic, idempotent (re-running
// replaces its own fields), non-planning, and non-persisting: the only
// side effects are calls to pre-declared collaborators and mutation of
// the returned state copy.
package tools

import (
	"context"

	"github.com/fraudops/opsagent/pkg/models"
)

// Canonical tool names. These are planner vocabulary and appear in
// completed_steps, tool execution logs, and evidence envelopes.
const (
	NameContext        = "context_tool"
	NamePattern        = "pattern_tool"
	NameSimilarity     = "similarity_tool"
	NameReasoning      = "reasoning_tool"
	NameRecommendation = "recommendation_tool"
	NameRuleDraft      = "rule_draft_tool"
)

// FallbackSequence is the canonical deterministic tool order used when
// the planner LLM is unavailable or its output is rejected.
var FallbackSequence = []string{
	NameContext,
	NamePattern,
	NameSimilarity,
	NameReasoning,
	NameRecommendation,
	NameRuleDraft,
}

// Tool is the uniform contract all tools implement. Execute receives the
// current state and returns a new state; it must not mutate its input.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error)
}
