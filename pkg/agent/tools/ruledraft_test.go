package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/models"
)

func TestRuleDraftToolNoRecommendations(t *testing.T) {
	txn := seedTxn("txn-1", 0, 100, "m-1", "approved")
	state := stateWithContext(txn, nil)

	tool := NewRuleDraftTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	assert.Nil(t, next.RuleDraft)
}

func TestRuleDraftToolSkipsStandardReview(t *testing.T) {
	txn := seedTxn("txn-1", 0, 50, "m-1", "approved")
	state := stateWithContext(txn, nil)
	state.Recommendations = []models.Recommendation{
		{Type: models.RecTypeStandardReview, Priority: 1, Severity: models.SeverityLow},
	}

	tool := NewRuleDraftTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	assert.Nil(t, next.RuleDraft, "a routine standard review must not produce a rule")
}

func TestRuleDraftToolCardTesting(t *testing.T) {
	txn := seedTxn("txn-1", 0, 1.50, "m-1", "declined")
	state := stateWithContext(txn, nil)
	state.Recommendations = []models.Recommendation{
		{Type: models.RecTypeCardTestingCase, Priority: 1, Severity: models.SeverityHigh},
	}

	tool := NewRuleDraftTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	require.NotNil(t, next.RuleDraft)
	assert.Equal(t, "auto_card_testing_case_txn-1", next.RuleDraft.RuleName)
	require.Len(t, next.RuleDraft.Conditions, 2)
	assert.Equal(t, "amount", next.RuleDraft.Conditions[0].FieldName)
	assert.Equal(t, "AND", next.RuleDraft.Conditions[0].LogicalOp)
	assert.Equal(t, 3.0, next.RuleDraft.Thresholds["consecutive_declines"])
	assert.Equal(t, "ops-agent", next.RuleDraft.Metadata["source"])
	assert.Equal(t, "inv-1", next.RuleDraft.Metadata["investigation_id"])
}

func TestRuleDraftToolVelocity(t *testing.T) {
	txn := seedTxn("txn-1", 0, 100, "m-1", "approved")
	state := stateWithContext(txn, nil)
	state.Recommendations = []models.Recommendation{
		{Type: models.RecTypeVelocityReview, Priority: 1, Severity: models.SeverityMedium},
	}

	tool := NewRuleDraftTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	require.NotNil(t, next.RuleDraft)
	require.Len(t, next.RuleDraft.Conditions, 1)
	assert.Equal(t, "card_transaction_count_1h", next.RuleDraft.Conditions[0].FieldName)
	assert.Equal(t, 10.0, next.RuleDraft.Thresholds["velocity_1h"])
}

func TestRuleDraftToolUsesTopPriority(t *testing.T) {
	txn := seedTxn("txn-1", 0, 100, "m-1", "approved")
	state := stateWithContext(txn, nil)
	state.Recommendations = []models.Recommendation{
		{Type: models.RecTypeMerchantReview, Priority: 1, Severity: models.SeverityMedium},
		{Type: models.RecTypeStandardReview, Priority: 2, Severity: models.SeverityLow},
	}

	tool := NewRuleDraftTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	require.NotNil(t, next.RuleDraft)
	assert.Equal(t, "merchant_review", next.RuleDraft.Metadata["recommendation_type"])
}
