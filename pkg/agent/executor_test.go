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

func TestExecutorSuccess(t *testing.T) {
	executor := NewExecutor(fullRegistry(), time.Second)

	state := testState()
	state.NextAction = tools.NameContext
	state.StepCount = 1

	next := executor.Execute(context.Background(), state)

	require.Len(t, next.ToolExecutions, 1)
	record := next.ToolExecutions[0]
	assert.Equal(t, tools.NameContext, record.ToolName)
	assert.Equal(t, models.ToolStatusSuccess, record.Status)
	assert.Equal(t, 1, record.StepNumber)
	assert.Equal(t, "transaction_id=txn-1", record.InputSummary)
	assert.Equal(t, "context_tool ok", record.OutputSummary)
	assert.Equal(t, []string{tools.NameContext}, next.CompletedSteps)
	assert.Empty(t, next.NextAction)
	assert.NotNil(t, next.Context, "successful tool output must be adopted")
}

func TestExecutorToolFailure(t *testing.T) {
	failing := &stubTool{name: tools.NamePattern, execute: func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
		return nil, errors.New("no context available")
	}}
	executor := NewExecutor(NewRegistry(failing), time.Second)

	state := testState()
	state.NextAction = tools.NamePattern
	state.StepCount = 1

	next := executor.Execute(context.Background(), state)

	require.Len(t, next.ToolExecutions, 1)
	assert.Equal(t, models.ToolStatusFailed, next.ToolExecutions[0].Status)
	assert.Equal(t, "no context available", next.ToolExecutions[0].ErrorMessage)
	assert.Equal(t, []string{tools.NamePattern}, next.CompletedSteps,
		"failed tool is still marked completed so it is never retried")
	assert.Nil(t, next.PatternResults)
}

func TestExecutorToolTimeout(t *testing.T) {
	slow := &stubTool{name: tools.NameSimilarity, execute: func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	executor := NewExecutor(NewRegistry(slow), 20*time.Millisecond)

	state := testState()
	state.NextAction = tools.NameSimilarity
	state.StepCount = 1

	next := executor.Execute(context.Background(), state)

	require.Len(t, next.ToolExecutions, 1)
	assert.Equal(t, models.ToolStatusTimedOut, next.ToolExecutions[0].Status)
	assert.Contains(t, next.ToolExecutions[0].ErrorMessage, "20ms")
}

func TestExecutorUnknownTool(t *testing.T) {
	executor := NewExecutor(NewRegistry(), time.Second)

	state := testState()
	state.NextAction = "made_up_tool"
	state.StepCount = 1

	next := executor.Execute(context.Background(), state)

	require.Len(t, next.ToolExecutions, 1)
	assert.Equal(t, models.ToolStatusFailed, next.ToolExecutions[0].Status)
	assert.Contains(t, next.CompletedSteps, "made_up_tool",
		"unknown names are marked completed to prevent re-selection")
}

func TestExecutorDoesNotMutateInput(t *testing.T) {
	executor := NewExecutor(fullRegistry(), time.Second)

	state := testState()
	state.NextAction = tools.NameContext
	state.StepCount = 1

	_ = executor.Execute(context.Background(), state)

	assert.Empty(t, state.ToolExecutions)
	assert.Empty(t, state.CompletedSteps)
	assert.Equal(t, tools.NameContext, state.NextAction)
}
