package agent

import (
	"context"
	"sync"
	"time"

	"github.com/fraudops/opsagent/pkg/agent/tools"
	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/llm"
	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/redact"
)

// stubTool is a scriptable tool for runtime tests.
type stubTool struct {
	name    string
	execute func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error)
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub " + s.name }

func (s *stubTool) Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	return s.execute(ctx, state)
}

// succeedingTool marks its evidence and populates the state fields later
// tools and the planner gate on.
func succeedingTool(name string) tools.Tool {
	return &stubTool{name: name, execute: func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
		next := state.Clone()
		switch name {
		case tools.NameContext:
			next.Context = &models.TransactionContext{
				Transaction: &models.Transaction{
					TransactionID: state.TransactionID,
					CardID:        "card-1",
					MerchantID:    "m-1",
					Amount:        100,
					Timestamp:     models.Timestamp(time.Now()),
				},
			}
		case tools.NamePattern:
			next.PatternResults = &models.PatternResults{OverallScore: 0.6, PatternsDetected: []string{"velocity"}}
		case tools.NameSimilarity:
			next.SimilarityResults = &models.SimilarityResult{OverallScore: 0.4}
		case tools.NameReasoning:
			next.Reasoning = &models.Reasoning{RiskLevel: models.SeverityMedium, Confidence: 0.7, LLMStatus: models.ReasoningStatusFallback}
		case tools.NameRecommendation:
			next.Recommendations = []models.Recommendation{{Type: models.RecTypeVelocityReview, Priority: 1, Severity: models.SeverityMedium}}
		case tools.NameRuleDraft:
			next.RuleDraft = &models.RuleDraftPayload{RuleName: "auto_velocity_review_txn-1"}
		}
		next.SetEvidence(models.EvidenceEnvelope{Category: name, Tool: name, Description: name + " ok"})
		return next, nil
	}}
}

func fullRegistry() *Registry {
	toolSet := make([]tools.Tool, 0, len(tools.FallbackSequence))
	for _, name := range tools.FallbackSequence {
		toolSet = append(toolSet, succeedingTool(name))
	}
	return NewRegistry(toolSet...)
}

// fakePlannerLLM returns canned planner responses in order.
type fakePlannerLLM struct {
	responses []string
	err       error
	calls     int
}

func (f *fakePlannerLLM) CompleteJSON(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	raw := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return &llm.CompletionResult{Raw: raw, PromptTokens: 10, CompletionTokens: 5}, nil
}

// memorySaver collects snapshots and assigns increasing versions.
type memorySaver struct {
	mu       sync.Mutex
	versions map[string]int
	saved    []*models.InvestigationState
}

func newMemorySaver() *memorySaver {
	return &memorySaver{versions: make(map[string]int)}
}

func (m *memorySaver) SaveState(ctx context.Context, investigationID string, state *models.InvestigationState) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.versions[investigationID]++
	m.saved = append(m.saved, state.Clone())
	return m.versions[investigationID], nil
}

// capturePersister records the finalized state handed to persistence.
type capturePersister struct {
	state         *models.InvestigationState
	escalatedFrom string
	err           error
}

func (c *capturePersister) PersistCompletion(ctx context.Context, state *models.InvestigationState, escalatedFrom string) error {
	c.state = state
	c.escalatedFrom = escalatedFrom
	return c.err
}

func disabledPlanner(registry *Registry) *Planner {
	return NewPlanner(nil, redact.NewGuard(true), registry, PlannerConfig{
		LLMEnabled: false,
		Timeout:    time.Second,
	})
}

func llmPlanner(completer Completer, registry *Registry) *Planner {
	return NewPlanner(completer, redact.NewGuard(true), registry, PlannerConfig{
		LLMEnabled:  true,
		Model:       "test-model",
		Temperature: 0.2,
		Timeout:     time.Second,
		MaxTokens:   256,
	})
}

func testState() *models.InvestigationState {
	return &models.InvestigationState{
		InvestigationID: "inv-1",
		TransactionID:   "txn-1",
		Mode:            models.ModeFull,
		Status:          models.StatusPending,
		MaxSteps:        20,
	}
}

func testThresholds() config.ScoringThresholds {
	return config.ScoringThresholds{
		SeverityCritical: 0.7,
		SeverityHigh:     0.5,
		SeverityMedium:   0.3,
	}
}
