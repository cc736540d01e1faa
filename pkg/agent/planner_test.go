package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/agent/tools"
	"github.com/fraudops/opsagent/pkg/models"
)

func TestPlannerDisabledFollowsFallbackSequence(t *testing.T) {
	planner := disabledPlanner(fullRegistry())
	state := testState()

	next := planner.Decide(context.Background(), state)

	require.Len(t, next.PlannerDecisions, 1)
	decision := next.PlannerDecisions[0]
	assert.Equal(t, tools.NameContext, decision.SelectedTool)
	assert.True(t, decision.UsedFallback)
	assert.Equal(t, 1, decision.Step)
	assert.Equal(t, 1, next.StepCount)
	assert.Zero(t, next.LLMUsage.PlannerCalls, "disabled planner must not call the LLM")
	assert.Equal(t, 1, next.LLMUsage.FallbackCount)
}

func TestPlannerContextAlwaysFirst(t *testing.T) {
	completer := &fakePlannerLLM{responses: []string{`{"tool": "pattern_tool", "reasoning": "skip ahead", "confidence": 0.9}`}}
	planner := llmPlanner(completer, fullRegistry())

	next := planner.Decide(context.Background(), testState())

	decision := next.PlannerDecisions[0]
	assert.Equal(t, tools.NameContext, decision.SelectedTool, "code constraints win over LLM output")
	assert.True(t, decision.UsedFallback)
}

func TestPlannerAcceptsValidLLMSelection(t *testing.T) {
	completer := &fakePlannerLLM{responses: []string{`{"tool": "pattern_tool", "reasoning": "context done, analyze patterns", "confidence": 0.9}`}}
	planner := llmPlanner(completer, fullRegistry())

	state := testState()
	state.CompletedSteps = []string{tools.NameContext}
	state.Context = &models.TransactionContext{Transaction: &models.Transaction{TransactionID: "txn-1"}}
	state.StepCount = 1

	next := planner.Decide(context.Background(), state)

	decision := next.PlannerDecisions[0]
	assert.Equal(t, tools.NamePattern, decision.SelectedTool)
	assert.False(t, decision.UsedFallback)
	assert.Equal(t, 0.9, decision.Confidence)
	assert.Equal(t, 1, next.LLMUsage.PlannerCalls)
	assert.Equal(t, 2, next.StepCount)
}

func TestPlannerClampsReportedConfidence(t *testing.T) {
	completer := &fakePlannerLLM{responses: []string{`{"tool": "pattern_tool", "reasoning": "overconfident", "confidence": 7}`}}
	planner := llmPlanner(completer, fullRegistry())

	state := testState()
	state.CompletedSteps = []string{tools.NameContext}
	state.Context = &models.TransactionContext{Transaction: &models.Transaction{TransactionID: "txn-1"}}
	state.StepCount = 1

	next := planner.Decide(context.Background(), state)

	decision := next.PlannerDecisions[0]
	assert.Equal(t, tools.NamePattern, decision.SelectedTool)
	assert.Equal(t, 1.0, decision.Confidence, "confidence above 1 is clamped, not trusted")

	completer = &fakePlannerLLM{responses: []string{`{"tool": "pattern_tool", "reasoning": "anticonfident", "confidence": -2}`}}
	planner = llmPlanner(completer, fullRegistry())

	state = testState()
	state.CompletedSteps = []string{tools.NameContext}
	state.Context = &models.TransactionContext{Transaction: &models.Transaction{TransactionID: "txn-1"}}
	state.StepCount = 1

	next = planner.Decide(context.Background(), state)
	assert.Equal(t, 0.0, next.PlannerDecisions[0].Confidence)
}

func TestPlannerNeverRepeatsTool(t *testing.T) {
	completer := &fakePlannerLLM{responses: []string{`{"tool": "context_tool", "reasoning": "fetch again", "confidence": 0.9}`}}
	planner := llmPlanner(completer, fullRegistry())

	state := testState()
	state.CompletedSteps = []string{tools.NameContext}
	state.Context = &models.TransactionContext{Transaction: &models.Transaction{TransactionID: "txn-1"}}
	state.StepCount = 1

	next := planner.Decide(context.Background(), state)

	decision := next.PlannerDecisions[0]
	assert.NotEqual(t, tools.NameContext, decision.SelectedTool)
	assert.True(t, decision.UsedFallback)
	assert.Equal(t, tools.NamePattern, decision.SelectedTool)
}

func TestPlannerGatesRecommendationOnReasoning(t *testing.T) {
	completer := &fakePlannerLLM{responses: []string{`{"tool": "recommendation_tool", "reasoning": "recommend now", "confidence": 0.9}`}}
	planner := llmPlanner(completer, fullRegistry())

	state := testState()
	state.CompletedSteps = []string{tools.NameContext, tools.NamePattern}
	state.Context = &models.TransactionContext{Transaction: &models.Transaction{TransactionID: "txn-1"}}
	state.StepCount = 2

	next := planner.Decide(context.Background(), state)

	assert.NotEqual(t, tools.NameRecommendation, next.PlannerDecisions[0].SelectedTool,
		"recommendation_tool requires reasoning populated")
}

func TestPlannerLLMFailureFallsBack(t *testing.T) {
	completer := &fakePlannerLLM{err: errors.New("llm down")}
	planner := llmPlanner(completer, fullRegistry())

	next := planner.Decide(context.Background(), testState())

	decision := next.PlannerDecisions[0]
	assert.True(t, decision.UsedFallback)
	assert.Equal(t, tools.NameContext, decision.SelectedTool)
	assert.Equal(t, 1, next.LLMUsage.FallbackCount)
}

func TestPlannerMalformedOutputFallsBack(t *testing.T) {
	completer := &fakePlannerLLM{responses: []string{`run the pattern tool next`}}
	planner := llmPlanner(completer, fullRegistry())

	next := planner.Decide(context.Background(), testState())

	assert.True(t, next.PlannerDecisions[0].UsedFallback)
}

func TestPlannerCompletesWhenAllToolsRan(t *testing.T) {
	planner := disabledPlanner(fullRegistry())

	state := testState()
	state.CompletedSteps = append([]string{}, tools.FallbackSequence...)
	state.StepCount = 6

	next := planner.Decide(context.Background(), state)

	decision := next.PlannerDecisions[0]
	assert.Equal(t, models.ActionComplete, decision.SelectedTool)
	assert.Equal(t, 6, next.StepCount, "COMPLETE must not consume a step")
}

func TestPlannerCompletesAtStepBudget(t *testing.T) {
	planner := disabledPlanner(fullRegistry())

	state := testState()
	state.MaxSteps = 1
	state.StepCount = 1
	state.CompletedSteps = []string{tools.NameContext}

	next := planner.Decide(context.Background(), state)

	assert.Equal(t, models.ActionComplete, next.PlannerDecisions[0].SelectedTool)
	assert.LessOrEqual(t, next.StepCount, next.MaxSteps)
}
