package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/fraudops/opsagent/pkg/llm"
	"github.com/fraudops/opsagent/pkg/metrics"
	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/redact"
)

// Sanitization limits on LLM reasoning output.
const (
	maxExplanationChars = 2000
	maxHypotheses       = 10
)

// Completer is the slice of the LLM client the reasoning tool consumes.
type Completer interface {
	CompleteJSON(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error)
}

// reasoningSchema validates the LLM's structured output before any field
// is trusted.
const reasoningSchema = `{
	"type": "object",
	"required": ["risk_level", "explanation", "confidence"],
	"properties": {
		"risk_level": {"type": "string"},
		"explanation": {"type": "string"},
		"hypotheses": {"type": "array", "items": {"type": "string"}},
		"confidence": {"type": "number"}
	}
}`

const reasoningSystemPrompt = `You are a fraud operations analyst. Assess the fraud risk of the transaction described by the evidence payload.
Respond with a single JSON object: {"risk_level": "CRITICAL"|"HIGH"|"MEDIUM"|"LOW", "explanation": string, "hypotheses": [string], "confidence": number between 0 and 1}.
Base your assessment only on the provided evidence.`

// ReasoningConfig carries the LLM knobs for the reasoning call. With
// LLMEnabled false the tool goes straight to the deterministic fallback
// without issuing a call.
type ReasoningConfig struct {
	LLMEnabled          bool
	Model               string
	Temperature         float32
	MaxCompletionTokens int
}

// ReasoningTool asks the LLM for a narrative risk assessment over the
// accumulated evidence. The LLM is advisory: its output is schema
// validated and sanitized, and any failure degrades to a deterministic
// assessment derived from the pattern score.
type ReasoningTool struct {
	completer Completer
	guard     *redact.Guard
	cfg       ReasoningConfig
	schema    *jsonschema.Schema
	logger    *slog.Logger
}

// NewReasoningTool creates the reasoning tool. Panics if the embedded
// output schema does not compile.
func NewReasoningTool(completer Completer, guard *redact.Guard, cfg ReasoningConfig) *ReasoningTool {
	return &ReasoningTool{
		completer: completer,
		guard:     guard,
		cfg:       cfg,
		schema:    mustCompileSchema("reasoning.json", reasoningSchema),
		logger:    slog.Default().With("component", "reasoning_tool"),
	}
}

func (t *ReasoningTool) Name() string { return NameReasoning }

func (t *ReasoningTool) Description() string {
	return "Produces a narrative risk assessment from the accumulated evidence, with a deterministic fallback when the LLM is unavailable."
}

// Execute implements Tool. Never fails on LLM problems; the fallback
// path always yields a usable assessment.
func (t *ReasoningTool) Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	next := state.Clone()

	reasoning, usage := t.assess(ctx, next)
	if usage != nil {
		next.LLMUsage.TotalPromptTokens += usage.PromptTokens
		next.LLMUsage.TotalCompletionTokens += usage.CompletionTokens
	}
	if reasoning.LLMStatus == models.ReasoningStatusFallback {
		next.LLMUsage.FallbackCount++
		metrics.LLMFallbacks.WithLabelValues("reasoning").Inc()
	}

	next.Reasoning = reasoning
	for _, h := range reasoning.Hypotheses {
		if !containsString(next.Hypotheses, h) {
			next.Hypotheses = append(next.Hypotheses, h)
		}
	}
	next.Severity = models.MaxSeverity(next.Severity, reasoning.RiskLevel)
	next.ConfidenceScore = reasoning.Confidence
	next.SetEvidence(models.EvidenceEnvelope{
		Category:    "risk_reasoning",
		Tool:        NameReasoning,
		Description: fmt.Sprintf("Risk assessed %s at %.2f confidence (%s)", reasoning.RiskLevel, reasoning.Confidence, reasoning.LLMStatus),
		Data: map[string]any{
			"risk_level": reasoning.RiskLevel,
			"confidence": reasoning.Confidence,
			"llm_status": reasoning.LLMStatus,
		},
	})
	return next, nil
}

// assess runs the LLM path and degrades to the deterministic fallback on
// any failure: guard rejection, transport error, malformed or
// schema-invalid output. reasoning_calls counts only issued calls, so
// guard rejections and a disabled LLM leave it untouched.
func (t *ReasoningTool) assess(ctx context.Context, state *models.InvestigationState) (*models.Reasoning, *llm.CompletionResult) {
	if !t.cfg.LLMEnabled {
		return t.fallback(state), nil
	}

	payload, err := t.buildPayload(state)
	if err != nil {
		t.logger.Warn("reasoning payload construction failed, using fallback", "error", err)
		return t.fallback(state), nil
	}

	if err := t.guard.Check(payload); err != nil {
		t.logger.Warn("prompt guard rejected reasoning payload", "error", err)
		return t.fallback(state), nil
	}

	state.LLMUsage.ReasoningCalls++
	result, err := t.completer.CompleteJSON(ctx, llm.CompletionRequest{
		Model:       t.cfg.Model,
		System:      reasoningSystemPrompt,
		User:        payload,
		Temperature: t.cfg.Temperature,
		MaxTokens:   t.cfg.MaxCompletionTokens,
	})
	if err != nil {
		t.logger.Warn("reasoning LLM call failed, using fallback", "error", err)
		return t.fallback(state), nil
	}

	reasoning, err := t.parseOutput(result.Raw)
	if err != nil {
		t.logger.Warn("reasoning LLM output rejected, using fallback", "error", err)
		return t.fallback(state), result
	}
	return reasoning, result
}

// buildPayload assembles the redacted evidence JSON sent to the LLM.
func (t *ReasoningTool) buildPayload(state *models.InvestigationState) (string, error) {
	fragment := map[string]any{
		"hypotheses": state.Hypotheses,
	}
	if state.Context != nil {
		raw, err := toMap(state.Context)
		if err != nil {
			return "", err
		}
		fragment["context"] = redact.StateDigest(raw)
	}
	if state.PatternResults != nil {
		raw, err := toMap(state.PatternResults)
		if err != nil {
			return "", err
		}
		fragment["pattern_results"] = raw
	}
	if state.SimilarityResults != nil {
		raw, err := toMap(state.SimilarityResults)
		if err != nil {
			return "", err
		}
		fragment["similarity_results"] = raw
	}

	buf, err := json.Marshal(fragment)
	if err != nil {
		return "", fmt.Errorf("failed to marshal reasoning payload: %w", err)
	}
	return string(buf), nil
}

// parseOutput validates and sanitizes the raw LLM response.
func (t *ReasoningTool) parseOutput(raw string) (*models.Reasoning, error) {
	value, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("reasoning output is not valid JSON: %w", err)
	}
	if err := t.schema.Validate(value); err != nil {
		return nil, fmt.Errorf("reasoning output failed schema validation: %w", err)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("reasoning output is not a JSON object")
	}
	obj = redact.SanitizeOutputKeys(obj)

	reasoning := &models.Reasoning{
		RiskLevel:   normalizeRiskLevel(stringField(obj, "risk_level")),
		Explanation: redact.Truncate(stringField(obj, "explanation"), maxExplanationChars),
		Confidence:  clamp01(numberField(obj, "confidence")),
		LLMStatus:   models.ReasoningStatusLLM,
	}
	if list, ok := obj["hypotheses"].([]any); ok {
		for _, h := range list {
			if s, ok := h.(string); ok && s != "" {
				reasoning.Hypotheses = append(reasoning.Hypotheses, s)
			}
			if len(reasoning.Hypotheses) == maxHypotheses {
				break
			}
		}
	}
	return reasoning, nil
}

// fallback maps the deterministic pattern score to a risk band. Detected
// patterns floor the band at MEDIUM so a single maxed heuristic is never
// diluted below review threshold by the aggregate weighting.
func (t *ReasoningTool) fallback(state *models.InvestigationState) *models.Reasoning {
	score := 0.0
	detected := 0
	if state.PatternResults != nil {
		score = state.PatternResults.OverallScore
		detected = len(state.PatternResults.PatternsDetected)
	}
	risk := models.SeverityLow
	switch {
	case score >= 0.7:
		risk = models.SeverityHigh
	case score >= 0.4 || detected > 0:
		risk = models.SeverityMedium
	}
	return &models.Reasoning{
		RiskLevel:   risk,
		Explanation: fmt.Sprintf("Deterministic assessment from pattern analysis (overall score %.2f); narrative reasoning unavailable.", score),
		Confidence:  score,
		LLMStatus:   models.ReasoningStatusFallback,
	}
}

func normalizeRiskLevel(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case models.SeverityCritical:
		return models.SeverityCritical
	case models.SeverityHigh:
		return models.SeverityHigh
	case models.SeverityLow:
		return models.SeverityLow
	case models.SeverityMedium:
		return models.SeverityMedium
	default:
		return models.SeverityMedium
	}
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

func toMap(v any) (map[string]any, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fragment: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("failed to decode fragment: %w", err)
	}
	return out, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func numberField(m map[string]any, key string) float64 {
	switch n := m[key].(type) {
	case float64:
		return n
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
