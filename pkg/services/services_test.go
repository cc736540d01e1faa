package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/pkg/models"
)

func TestIdempotencyKey(t *testing.T) {
	state := &models.InvestigationState{TransactionID: "txn-42", Mode: models.ModeFull}
	assert.Equal(t, "txn-42:FULL", IdempotencyKey(state))

	state.Mode = models.ModeQuick
	assert.Equal(t, "txn-42:QUICK", IdempotencyKey(state))

	// Re-running the same transaction and mode converges on one key.
	again := &models.InvestigationState{TransactionID: "txn-42", Mode: models.ModeQuick}
	assert.Equal(t, IdempotencyKey(state), IdempotencyKey(again))
}

func TestTransitionAllowed(t *testing.T) {
	allowed := []struct {
		from, to recommendation.Status
	}{
		{recommendation.StatusOPEN, recommendation.StatusACKNOWLEDGED},
		{recommendation.StatusOPEN, recommendation.StatusREJECTED},
		{recommendation.StatusACKNOWLEDGED, recommendation.StatusEXPORTED},
	}
	for _, tc := range allowed {
		assert.True(t, transitionAllowed(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to recommendation.Status
	}{
		{recommendation.StatusOPEN, recommendation.StatusEXPORTED},
		{recommendation.StatusACKNOWLEDGED, recommendation.StatusREJECTED},
		{recommendation.StatusREJECTED, recommendation.StatusOPEN},
		{recommendation.StatusREJECTED, recommendation.StatusACKNOWLEDGED},
		{recommendation.StatusEXPORTED, recommendation.StatusOPEN},
		{recommendation.StatusOPEN, recommendation.StatusOPEN},
	}
	for _, tc := range forbidden {
		assert.False(t, transitionAllowed(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestWorklistPredicatesValidation(t *testing.T) {
	_, err := worklistPredicates(models.WorklistFilters{Status: "SHIPPED"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = worklistPredicates(models.WorklistFilters{Severity: "EXTREME"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	preds, err := worklistPredicates(models.WorklistFilters{
		Status:   "OPEN",
		Severity: "HIGH",
		Type:     "velocity_review",
	})
	require.NoError(t, err)
	assert.Len(t, preds, 3)
}

func TestInsightSummaryPrefersReasoning(t *testing.T) {
	state := &models.InvestigationState{
		InvestigationID: "inv-1",
		Status:          models.StatusCompleted,
		Reasoning: &models.Reasoning{
			Explanation: "Sustained burst of small declined authorizations on one card.",
		},
	}
	assert.Equal(t, state.Reasoning.Explanation, insightSummary(state))

	state.Reasoning = nil
	summary := insightSummary(state)
	assert.Contains(t, summary, "inv-1")
	assert.Contains(t, summary, models.StatusCompleted)
}

func TestInsightSummaryTruncatesLongExplanation(t *testing.T) {
	state := &models.InvestigationState{
		Reasoning: &models.Reasoning{Explanation: strings.Repeat("x", 5000)},
	}
	assert.LessOrEqual(t, len(insightSummary(state)), insightSummaryLimit)
}

func TestEvidenceKind(t *testing.T) {
	state := &models.InvestigationState{}
	assert.Equal(t, "risk_reasoning", evidenceKind(state))

	state.SimilarityResults = &models.SimilarityResult{
		Matches: []models.SimilarityMatch{{TransactionID: "txn-2"}},
	}
	assert.Equal(t, "similarity_analysis", evidenceKind(state))

	// Detected patterns dominate similarity matches.
	state.PatternResults = &models.PatternResults{PatternsDetected: []string{"velocity"}}
	assert.Equal(t, "pattern_analysis", evidenceKind(state))
}

func TestModelMode(t *testing.T) {
	state := &models.InvestigationState{}
	assert.Equal(t, models.ReasoningStatusFallback, modelMode(state))

	state.Reasoning = &models.Reasoning{LLMStatus: models.ReasoningStatusLLM}
	assert.Equal(t, models.ReasoningStatusLLM, modelMode(state))
}

func TestHasFindings(t *testing.T) {
	assert.False(t, hasFindings(&models.InvestigationState{}),
		"a run that timed out before the first tool has no findings")

	assert.True(t, hasFindings(&models.InvestigationState{
		Evidence: []models.EvidenceEnvelope{{Tool: "pattern_tool"}},
	}))
	assert.True(t, hasFindings(&models.InvestigationState{
		Reasoning: &models.Reasoning{RiskLevel: models.SeverityLow},
	}))
	assert.True(t, hasFindings(&models.InvestigationState{
		Recommendations: []models.Recommendation{{Type: "standard_review"}},
	}))
}
