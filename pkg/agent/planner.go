package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/fraudops/opsagent/pkg/agent/tools"
	"github.com/fraudops/opsagent/pkg/llm"
	"github.com/fraudops/opsagent/pkg/metrics"
	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/redact"
)

// plannerSchema validates the LLM's tool selection before it is trusted.
const plannerSchema = `{
	"type": "object",
	"required": ["tool", "reasoning"],
	"properties": {
		"tool": {"type": "string"},
		"reasoning": {"type": "string"},
		"confidence": {"type": "number"}
	}
}`

// PlannerConfig carries the planner knobs.
type PlannerConfig struct {
	LLMEnabled  bool
	Model       string
	Temperature float32
	Timeout     time.Duration
	MaxTokens   int
}

// Completer is the slice of the LLM client the planner consumes.
type Completer interface {
	CompleteJSON(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error)
}

// Planner selects the next tool or COMPLETE. It never fails: any LLM
// problem degrades to the deterministic fallback sequence, and code
// constraints always win over model output.
type Planner struct {
	completer Completer
	guard     *redact.Guard
	registry  *Registry
	cfg       PlannerConfig
	schema    *jsonschema.Schema
	logger    *slog.Logger
}

// NewPlanner creates a planner over the registry.
func NewPlanner(completer Completer, guard *redact.Guard, registry *Registry, cfg PlannerConfig) *Planner {
	return &Planner{
		completer: completer,
		guard:     guard,
		registry:  registry,
		cfg:       cfg,
		schema:    mustCompileSchema("planner.json", plannerSchema),
		logger:    slog.Default().With("component", "planner"),
	}
}

// Decide sets state.next_action and appends a PlannerDecision. The step
// counter advances only for tool selections; COMPLETE is free so the
// terminal decision can never breach the step budget.
func (p *Planner) Decide(ctx context.Context, state *models.InvestigationState) *models.InvestigationState {
	next := state.Clone()

	allowed := p.allowedTools(next)

	var decision models.PlannerDecision
	switch {
	case next.StepCount >= next.MaxSteps:
		decision = models.PlannerDecision{
			SelectedTool: models.ActionComplete,
			Reason:       fmt.Sprintf("step budget exhausted (%d/%d)", next.StepCount, next.MaxSteps),
			Confidence:   1,
		}
	case len(allowed) == 0:
		decision = models.PlannerDecision{
			SelectedTool: models.ActionComplete,
			Reason:       "no eligible tools remain",
			Confidence:   1,
		}
	case p.cfg.LLMEnabled:
		decision = p.decideLLM(ctx, next, allowed)
	default:
		decision = p.fallbackDecision(next, "planner LLM disabled by configuration")
	}

	decision.Timestamp = models.Timestamp(time.Now())
	if decision.SelectedTool != models.ActionComplete {
		next.StepCount++
	}
	decision.Step = next.StepCount
	if decision.UsedFallback {
		next.LLMUsage.FallbackCount++
		metrics.LLMFallbacks.WithLabelValues("planner").Inc()
	}

	next.NextAction = decision.SelectedTool
	next.PlannerDecisions = append(next.PlannerDecisions, decision)
	return next
}

// allowedTools applies the code constraints: context first, no repeats,
// reasoning before recommendations, recommendations before rule draft.
func (p *Planner) allowedTools(state *models.InvestigationState) []string {
	if !state.HasStep(tools.NameContext) {
		return []string{tools.NameContext}
	}
	var allowed []string
	for _, name := range p.registry.Names() {
		if state.HasStep(name) {
			continue
		}
		switch name {
		case tools.NameRecommendation:
			if state.Reasoning == nil {
				continue
			}
		case tools.NameRuleDraft:
			if len(state.Recommendations) == 0 {
				continue
			}
		}
		allowed = append(allowed, name)
	}
	return allowed
}

// decideLLM consults the model and degrades to the fallback sequence on
// guard rejection, transport failure, malformed output, or a selection
// the constraints reject.
func (p *Planner) decideLLM(ctx context.Context, state *models.InvestigationState, allowed []string) models.PlannerDecision {
	payload, err := p.buildPayload(state, allowed)
	if err != nil {
		return p.fallbackDecision(state, fmt.Sprintf("planner payload construction failed: %v", err))
	}
	if err := p.guard.Check(payload); err != nil {
		p.logger.Warn("prompt guard rejected planner payload",
			"investigation_id", state.InvestigationID, "error", err)
		return p.fallbackDecision(state, "prompt guard rejected payload")
	}

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	result, err := p.completer.CompleteJSON(callCtx, llm.CompletionRequest{
		Model:       p.cfg.Model,
		System:      p.systemPrompt(),
		User:        payload,
		Temperature: p.cfg.Temperature,
		MaxTokens:   p.cfg.MaxTokens,
	})
	state.LLMUsage.PlannerCalls++
	if result != nil {
		state.LLMUsage.TotalPromptTokens += result.PromptTokens
		state.LLMUsage.TotalCompletionTokens += result.CompletionTokens
	}
	if err != nil {
		p.logger.Warn("planner LLM call failed",
			"investigation_id", state.InvestigationID, "error", err)
		return p.fallbackDecision(state, "planner LLM call failed")
	}

	selection, err := p.parseSelection(result.Raw)
	if err != nil {
		p.logger.Warn("planner LLM output rejected",
			"investigation_id", state.InvestigationID, "error", err)
		return p.fallbackDecision(state, "planner LLM returned invalid output")
	}

	if selection.Tool == models.ActionComplete {
		return models.PlannerDecision{
			SelectedTool: models.ActionComplete,
			Reason:       selection.Reasoning,
			Confidence:   selection.Confidence,
		}
	}
	for _, name := range allowed {
		if name == selection.Tool {
			return models.PlannerDecision{
				SelectedTool: selection.Tool,
				Reason:       selection.Reasoning,
				Confidence:   selection.Confidence,
			}
		}
	}
	return p.fallbackDecision(state, fmt.Sprintf("planner selected ineligible tool %q", selection.Tool))
}

// fallbackDecision picks the first tool of the canonical sequence not yet
// completed, else COMPLETE.
func (p *Planner) fallbackDecision(state *models.InvestigationState, reason string) models.PlannerDecision {
	for _, name := range tools.FallbackSequence {
		if _, registered := p.registry.Get(name); !registered {
			continue
		}
		if !state.HasStep(name) {
			return models.PlannerDecision{
				SelectedTool: name,
				Reason:       reason,
				Confidence:   1,
				UsedFallback: true,
			}
		}
	}
	return models.PlannerDecision{
		SelectedTool: models.ActionComplete,
		Reason:       reason,
		Confidence:   1,
		UsedFallback: true,
	}
}

type plannerSelection struct {
	Tool       string
	Reasoning  string
	Confidence float64
}

func (p *Planner) parseSelection(raw string) (*plannerSelection, error) {
	value, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("planner output is not valid JSON: %w", err)
	}
	if err := p.schema.Validate(value); err != nil {
		return nil, fmt.Errorf("planner output failed schema validation: %w", err)
	}
	obj := value.(map[string]any)

	selection := &plannerSelection{Confidence: 0.5}
	selection.Tool, _ = obj["tool"].(string)
	selection.Reasoning, _ = obj["reasoning"].(string)
	if c, ok := obj["confidence"].(float64); ok {
		selection.Confidence = clampConfidence(c)
	}
	return selection, nil
}

// clampConfidence bounds a model-reported confidence to [0,1].
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func (p *Planner) systemPrompt() string {
	var b strings.Builder
	b.WriteString("You are the planner of a fraud investigation agent. Select the single next tool to run, or COMPLETE when enough evidence is gathered.\n")
	b.WriteString("Available tools:\n")
	for _, name := range p.registry.Names() {
		tool, _ := p.registry.Get(name)
		fmt.Fprintf(&b, "- %s: %s\n", name, tool.Description())
	}
	b.WriteString(`Respond with a single JSON object: {"tool": string, "reasoning": string, "confidence": number between 0 and 1}. The tool must be one of the eligible tools listed in the request, or "COMPLETE".`)
	return b.String()
}

// buildPayload summarizes investigation progress for the model. Evidence
// is summarized, never inlined raw, so prompts stay small and PII-free.
func (p *Planner) buildPayload(state *models.InvestigationState, allowed []string) (string, error) {
	summary := map[string]any{
		"step":            state.StepCount,
		"max_steps":       state.MaxSteps,
		"completed_steps": state.CompletedSteps,
		"eligible_tools":  allowed,
		"has_context":     state.Context != nil,
		"has_reasoning":   state.Reasoning != nil,
	}
	if state.PatternResults != nil {
		summary["pattern_overall_score"] = state.PatternResults.OverallScore
		summary["patterns_detected"] = state.PatternResults.PatternsDetected
	}
	if state.SimilarityResults != nil {
		summary["similarity_overall_score"] = state.SimilarityResults.OverallScore
		summary["similarity_skipped"] = state.SimilarityResults.Skipped
	}
	if len(state.Recommendations) > 0 {
		summary["recommendation_count"] = len(state.Recommendations)
	}
	if len(state.Hypotheses) > 0 {
		summary["hypotheses"] = state.Hypotheses
	}
	if len(state.ToolExecutions) > 0 {
		last := state.ToolExecutions[len(state.ToolExecutions)-1]
		summary["last_tool"] = map[string]any{"name": last.ToolName, "status": last.Status}
	}

	buf, err := json.Marshal(redact.StateDigest(summary))
	if err != nil {
		return "", fmt.Errorf("failed to marshal planner payload: %w", err)
	}
	return string(buf), nil
}

func mustCompileSchema(name, text string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(text))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to register schema %s: %v", name, err))
	}
	return compiler.MustCompile(name)
}
