package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, s.Environment)
	assert.True(t, s.IsLocal())
	assert.Equal(t, 20, s.MaxSteps)
	assert.True(t, s.PlannerLLMEnabled)
	assert.True(t, s.ReasoningLLMEnabled)
	assert.True(t, s.PromptGuardEnabled)
	assert.True(t, s.EnforceHumanApproval)
	assert.False(t, s.EnableRuleDraftExport)
}

func TestLoadProductionDefaultsAreValid(t *testing.T) {
	t.Setenv("ENVIRONMENT", EnvProduction)

	s, err := Load()
	require.NoError(t, err)
	assert.False(t, s.IsLocal())
}

func TestLoadRejectsDisabledPromptGuardInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", EnvProduction)
	t.Setenv("LLM_PROMPT_GUARD_ENABLED", "false")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_PROMPT_GUARD_ENABLED")
}

func TestLoadAllowsDisabledPromptGuardLocally(t *testing.T) {
	t.Setenv("ENVIRONMENT", EnvLocal)
	t.Setenv("LLM_PROMPT_GUARD_ENABLED", "false")

	s, err := Load()
	require.NoError(t, err)
	assert.False(t, s.PromptGuardEnabled)
}

func TestLoadRejectsSkippedJWTInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", EnvProduction)
	t.Setenv("SKIP_JWT_VALIDATION", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SKIP_JWT_VALIDATION")
}

func TestLoadRejectsDisabledHumanApprovalInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", EnvProduction)
	t.Setenv("ENFORCE_HUMAN_APPROVAL", "false")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENFORCE_HUMAN_APPROVAL")
}

func TestLoadRuleDraftExportRequiresHumanApproval(t *testing.T) {
	t.Setenv("ENVIRONMENT", EnvLocal)
	t.Setenv("ENFORCE_HUMAN_APPROVAL", "false")
	t.Setenv("ENABLE_RULE_DRAFT_EXPORT", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENABLE_RULE_DRAFT_EXPORT")
}

func TestLoadRejectsBadSafeguards(t *testing.T) {
	t.Run("zero steps", func(t *testing.T) {
		t.Setenv("MAX_STEPS", "0")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("hot planner", func(t *testing.T) {
		t.Setenv("PLANNER_TEMPERATURE", "0.5")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("out-of-range similarity floor", func(t *testing.T) {
		t.Setenv("VECTOR_MIN_SIMILARITY", "1.5")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestFeatureFlagsSnapshot(t *testing.T) {
	t.Setenv("REASONING_LLM_ENABLED", "false")

	s, err := Load()
	require.NoError(t, err)

	flags := s.FeatureFlags()
	assert.False(t, flags["reasoning_llm_enabled"])
	assert.True(t, flags["planner_llm_enabled"])
}
