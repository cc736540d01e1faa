package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/models"
)

func TestFinalConfidenceAllComponents(t *testing.T) {
	state := testState()
	state.Reasoning = &models.Reasoning{Confidence: 0.8}
	state.PatternResults = &models.PatternResults{OverallScore: 0.6}
	state.SimilarityResults = &models.SimilarityResult{OverallScore: 0.5}

	// 0.5*0.8 + 0.3*0.6 + 0.2*0.5 = 0.68
	assert.InDelta(t, 0.68, FinalConfidence(state), 1e-9)
}

func TestFinalConfidenceRedistributesMissingWeights(t *testing.T) {
	state := testState()
	state.Reasoning = &models.Reasoning{Confidence: 0.8}
	state.PatternResults = &models.PatternResults{OverallScore: 0.6}

	// (0.5*0.8 + 0.3*0.6) / 0.8 = 0.725
	assert.InDelta(t, 0.725, FinalConfidence(state), 1e-9)
}

func TestFinalConfidenceSkippedSimilarityIsMissing(t *testing.T) {
	state := testState()
	state.Reasoning = &models.Reasoning{Confidence: 0.8}
	state.PatternResults = &models.PatternResults{OverallScore: 0.6}
	state.SimilarityResults = &models.SimilarityResult{Skipped: true, OverallScore: 0}

	assert.InDelta(t, 0.725, FinalConfidence(state), 1e-9)
}

func TestFinalConfidenceNoComponents(t *testing.T) {
	assert.Zero(t, FinalConfidence(testState()))
}

func TestFinalSeverityEscalation(t *testing.T) {
	state := testState()
	state.PatternResults = &models.PatternResults{OverallScore: 0.35} // MEDIUM band
	state.Reasoning = &models.Reasoning{RiskLevel: models.SeverityCritical}

	severity, escalatedFrom := FinalSeverity(state, testThresholds())
	assert.Equal(t, models.SeverityCritical, severity)
	assert.Equal(t, models.SeverityMedium, escalatedFrom)
}

func TestFinalSeverityNoEscalation(t *testing.T) {
	state := testState()
	state.PatternResults = &models.PatternResults{OverallScore: 0.75} // CRITICAL band
	state.Reasoning = &models.Reasoning{RiskLevel: models.SeverityLow}

	severity, escalatedFrom := FinalSeverity(state, testThresholds())
	assert.Equal(t, models.SeverityCritical, severity)
	assert.Empty(t, escalatedFrom)
}

func TestFinalSeverityDetectedPatternFloorsMedium(t *testing.T) {
	state := testState()
	// A lone velocity burst maxes its heuristic yet scores below the
	// MEDIUM band after weighting.
	state.PatternResults = &models.PatternResults{OverallScore: 0.27, PatternsDetected: []string{"velocity"}}
	state.Reasoning = &models.Reasoning{RiskLevel: models.SeverityLow}

	severity, escalatedFrom := FinalSeverity(state, testThresholds())
	assert.Equal(t, models.SeverityMedium, severity)
	assert.Empty(t, escalatedFrom, "the floor is part of the deterministic band, not an escalation")
}

func TestFinalSeverityNoDetectionsNoFloor(t *testing.T) {
	state := testState()
	state.PatternResults = &models.PatternResults{OverallScore: 0.1}

	severity, _ := FinalSeverity(state, testThresholds())
	assert.Equal(t, models.SeverityLow, severity)
}

func TestCompletionFinalizeStampsAndPersists(t *testing.T) {
	persister := &capturePersister{}
	completion := NewCompletion(testThresholds(), persister)

	state := testState()
	state.PatternResults = &models.PatternResults{OverallScore: 0.6}
	state.Reasoning = &models.Reasoning{RiskLevel: models.SeverityHigh, Confidence: 0.7}
	state.NextAction = models.ActionComplete

	final, err := completion.Finalize(context.Background(), state, models.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.NotEmpty(t, final.CompletedAt)
	assert.Empty(t, final.NextAction)
	assert.Equal(t, models.SeverityHigh, final.Severity)
	require.NotNil(t, persister.state)
	assert.Equal(t, final.Severity, persister.state.Severity)
}

func TestCompletionFinalizeSurfacesPersistError(t *testing.T) {
	persister := &capturePersister{err: errors.New("row update failed")}
	completion := NewCompletion(testThresholds(), persister)

	final, err := completion.Finalize(context.Background(), testState(), models.StatusFailed)
	require.Error(t, err)
	assert.Equal(t, models.StatusFailed, final.Status, "state is finalized even when persistence fails")
}
