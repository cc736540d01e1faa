package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/agent/tools"
	"github.com/fraudops/opsagent/pkg/models"
)

func newRunner(registry *Registry, saver StateSaver, persister Persister, timeout time.Duration) *Runner {
	planner := disabledPlanner(registry)
	executor := NewExecutor(registry, time.Second)
	completion := NewCompletion(testThresholds(), persister)
	return NewRunner(planner, executor, completion, saver, timeout)
}

func TestRunnerFullInvestigation(t *testing.T) {
	saver := newMemorySaver()
	persister := &capturePersister{}
	runner := newRunner(fullRegistry(), saver, persister, 30*time.Second)

	final, err := runner.Run(context.Background(), testState())
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.Equal(t, tools.FallbackSequence, final.CompletedSteps)
	assert.Equal(t, 6, final.StepCount)
	assert.Len(t, final.ToolExecutions, 6)
	for i, record := range final.ToolExecutions {
		assert.Equal(t, i+1, record.StepNumber, "step numbers must be dense and ordered")
		assert.Equal(t, models.ToolStatusSuccess, record.Status)
	}
	assert.NotEmpty(t, final.StartedAt)
	assert.NotEmpty(t, final.CompletedAt)
	assert.Greater(t, final.ConfidenceScore, 0.0)
	assert.NotEmpty(t, final.Severity)
	require.NotNil(t, persister.state)
	assert.Equal(t, models.StatusCompleted, persister.state.Status)

	// Snapshots were taken and versions advanced monotonically.
	assert.Greater(t, saver.versions["inv-1"], 6)
}

func TestRunnerMaxStepsOne(t *testing.T) {
	persister := &capturePersister{}
	runner := newRunner(fullRegistry(), newMemorySaver(), persister, 30*time.Second)

	state := testState()
	state.MaxSteps = 1

	final, err := runner.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.Len(t, final.ToolExecutions, 1, "exactly one tool execution plus completion")
	assert.Equal(t, []string{tools.NameContext}, final.CompletedSteps)
	assert.Equal(t, 1, final.StepCount)
}

func TestRunnerDeadlineBeforeFirstTool(t *testing.T) {
	persister := &capturePersister{}
	// A non-positive budget expires the run context before the first
	// planner call.
	runner := newRunner(fullRegistry(), newMemorySaver(), persister, -time.Millisecond)

	final, err := runner.Run(context.Background(), testState())
	require.NoError(t, err)

	assert.Equal(t, models.StatusTimedOut, final.Status)
	assert.Empty(t, final.CompletedSteps)
	require.NotNil(t, persister.state, "completion must persist even on timeout")
	assert.Equal(t, models.StatusTimedOut, persister.state.Status)
}

func TestRunnerContextFailureTerminatesFailed(t *testing.T) {
	failingContext := &stubTool{name: tools.NameContext, execute: func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
		return nil, errors.New("TM API circuit breaker is open")
	}}
	registry := NewRegistry(failingContext, succeedingTool(tools.NamePattern))
	persister := &capturePersister{}
	runner := newRunner(registry, newMemorySaver(), persister, 30*time.Second)

	final, err := runner.Run(context.Background(), testState())
	require.NoError(t, err)

	assert.Equal(t, models.StatusFailed, final.Status)
	assert.Contains(t, final.Error, "transaction context unavailable")
	assert.Equal(t, []string{tools.NameContext}, final.CompletedSteps,
		"no further tools run without context")
}

func TestRunnerAbsorbsMidRunToolFailure(t *testing.T) {
	failingSimilarity := &stubTool{name: tools.NameSimilarity, execute: func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
		return nil, errors.New("embedding provider down")
	}}
	toolSet := []tools.Tool{
		succeedingTool(tools.NameContext),
		succeedingTool(tools.NamePattern),
		failingSimilarity,
		succeedingTool(tools.NameReasoning),
		succeedingTool(tools.NameRecommendation),
		succeedingTool(tools.NameRuleDraft),
	}
	persister := &capturePersister{}
	runner := newRunner(NewRegistry(toolSet...), newMemorySaver(), persister, 30*time.Second)

	final, err := runner.Run(context.Background(), testState())
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, final.Status,
		"one failed tool is absorbed, not fatal")
	assert.Equal(t, tools.FallbackSequence, final.CompletedSteps)

	statuses := make(map[string]string)
	for _, record := range final.ToolExecutions {
		statuses[record.ToolName] = record.Status
	}
	assert.Equal(t, models.ToolStatusFailed, statuses[tools.NameSimilarity])
	assert.Equal(t, models.ToolStatusSuccess, statuses[tools.NameRuleDraft])
}

func TestRunnerResumeSkipsCompletedSteps(t *testing.T) {
	persister := &capturePersister{}
	runner := newRunner(fullRegistry(), newMemorySaver(), persister, 30*time.Second)

	// Simulate a snapshot taken after context and pattern ran.
	state := testState()
	state.Status = models.StatusInProgress
	state.StartedAt = models.Timestamp(time.Now().Add(-time.Minute))
	state.CompletedSteps = []string{tools.NameContext, tools.NamePattern}
	state.StepCount = 2
	state.Context = &models.TransactionContext{Transaction: &models.Transaction{TransactionID: "txn-1"}}
	state.PatternResults = &models.PatternResults{OverallScore: 0.6}
	state.ToolExecutions = []models.ToolExecutionRecord{
		{ToolName: tools.NameContext, StepNumber: 1, Status: models.ToolStatusSuccess},
		{ToolName: tools.NamePattern, StepNumber: 2, Status: models.ToolStatusSuccess},
	}

	final, err := runner.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.Equal(t, tools.FallbackSequence, final.CompletedSteps)
	assert.Len(t, final.ToolExecutions, 6)
	seen := make(map[int]bool)
	for _, record := range final.ToolExecutions {
		assert.False(t, seen[record.StepNumber], "step numbers must not repeat")
		seen[record.StepNumber] = true
	}
}
