package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/models"
)

func detectedState(patterns ...string) *models.InvestigationState {
	txn := seedTxn("txn-1", 0, 100, "m-1", "approved")
	state := stateWithContext(txn, nil)
	state.PatternResults = &models.PatternResults{
		OverallScore:     0.6,
		PatternsDetected: patterns,
	}
	state.Reasoning = &models.Reasoning{RiskLevel: models.SeverityMedium, Confidence: 0.5, LLMStatus: models.ReasoningStatusFallback}
	return state
}

func TestRecommendationToolCardTesting(t *testing.T) {
	tool := NewRecommendationTool(testThresholds())
	next, err := tool.Execute(context.Background(), detectedState("card_testing"))
	require.NoError(t, err)

	types := recTypes(next.Recommendations)
	assert.Contains(t, types, models.RecTypeBlockCard)
	assert.Contains(t, types, models.RecTypeCardTestingCase)
	assert.Equal(t, 1, next.Recommendations[0].Priority)
	for i, rec := range next.Recommendations {
		assert.Equal(t, i+1, rec.Priority, "priorities must be dense from 1")
	}
}

func TestRecommendationToolVelocity(t *testing.T) {
	tool := NewRecommendationTool(testThresholds())
	next, err := tool.Execute(context.Background(), detectedState("velocity"))
	require.NoError(t, err)

	require.NotEmpty(t, next.Recommendations)
	assert.Contains(t, recTypes(next.Recommendations), models.RecTypeVelocityReview)
	top := next.Recommendations[0]
	assert.Contains(t, top.Payload, "transaction_count_1h", "payload must carry the window statistic")
	assert.Contains(t, top.Payload, "merchant_id")
}

func TestRecommendationToolQuietFallsBackToStandardReview(t *testing.T) {
	state := detectedState()
	state.PatternResults.OverallScore = 0.1

	tool := NewRecommendationTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	require.Len(t, next.Recommendations, 1)
	assert.Equal(t, models.RecTypeStandardReview, next.Recommendations[0].Type)
	assert.Equal(t, models.SeverityLow, next.Recommendations[0].Severity)
}

func TestRecommendationToolRuleTuning(t *testing.T) {
	state := detectedState()
	state.PatternResults.OverallScore = 0.1
	state.Context.MatchedRules = []models.MatchedRule{{RuleID: "r-2"}, {RuleID: "r-1"}}

	tool := NewRecommendationTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	require.NotEmpty(t, next.Recommendations)
	assert.Contains(t, recTypes(next.Recommendations), models.RecTypeRuleTuningReview)
}

func TestRecommendationToolDeterministicOrdering(t *testing.T) {
	tool := NewRecommendationTool(testThresholds())
	state := detectedState("card_testing", "velocity", "cross_merchant")

	first, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)
	second, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, first.Recommendations, second.Recommendations)
	// Severity descending: the HIGH card-testing actions precede the
	// MEDIUM reviews.
	assert.Equal(t, models.SeverityHigh, first.Recommendations[0].Severity)
	// Equal severities tie-break on type ascending; both card-testing
	// actions are HIGH.
	assert.Equal(t, models.RecTypeBlockCard, first.Recommendations[0].Type)
	assert.Equal(t, models.RecTypeCardTestingCase, first.Recommendations[1].Type)
}

func recTypes(recs []models.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Type)
	}
	return out
}
