package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/models"
)

func TestPatternToolRequiresContext(t *testing.T) {
	tool := NewPatternTool(testThresholds())
	_, err := tool.Execute(context.Background(), baseState())
	require.Error(t, err)
}

func TestPatternToolVelocityBurst(t *testing.T) {
	// 12 transactions inside the hour, same merchant.
	var history []models.Transaction
	for i := 0; i < 12; i++ {
		history = append(history, seedTxn("h", i*5, 20, "m-1", "approved"))
	}
	txn := seedTxn("txn-1", 0, 20, "m-1", "approved")
	state := stateWithContext(txn, history)

	tool := NewPatternTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	require.NotNil(t, next.PatternResults)
	assert.Contains(t, next.PatternResults.PatternsDetected, "velocity")
	assert.Equal(t, 12, next.Context.Window1h.TransactionCount)
	assert.Nil(t, state.PatternResults, "input state must not be mutated")
}

func TestPatternToolCrossMerchantSpread(t *testing.T) {
	var history []models.Transaction
	for i := 0; i < 11; i++ {
		history = append(history, seedTxn("h", i*100, 30, string(rune('a'+i)), "approved"))
	}
	txn := seedTxn("txn-1", 0, 30, "m-1", "approved")
	state := stateWithContext(txn, history)

	tool := NewPatternTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	assert.Contains(t, next.PatternResults.PatternsDetected, "cross_merchant")
	assert.Equal(t, 11, next.Context.Window24h.UniqueMerchants)
}

func TestPatternToolCardTestingRun(t *testing.T) {
	history := []models.Transaction{
		seedTxn("h1", 40, 1.50, "m-1", "declined"),
		seedTxn("h2", 30, 2.00, "m-1", "declined"),
		seedTxn("h3", 20, 0.99, "m-1", "declined"),
		seedTxn("h4", 10, 1.25, "m-1", "declined"),
	}
	txn := seedTxn("txn-1", 0, 1.00, "m-1", "declined")
	state := stateWithContext(txn, history)

	tool := NewPatternTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	assert.Contains(t, next.PatternResults.PatternsDetected, "card_testing")
}

func TestPatternToolQuietTransaction(t *testing.T) {
	history := []models.Transaction{
		seedTxn("h1", 600, 45, "m-1", "approved"),
		seedTxn("h2", 1200, 55, "m-1", "approved"),
		seedTxn("h3", 1800, 50, "m-1", "approved"),
	}
	txn := seedTxn("txn-1", 0, 50, "m-1", "approved")
	state := stateWithContext(txn, history)

	tool := NewPatternTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	assert.Empty(t, next.PatternResults.PatternsDetected)
	assert.Less(t, next.PatternResults.OverallScore, 0.3)
}

func TestPatternToolHighAmountAtUnusualHour(t *testing.T) {
	txn := seedTxn("txn-1", 0, 1500, "m-1", "approved")
	txn.Timestamp = models.Timestamp(anchorTime.Add(-11 * time.Hour)) // 03:00 UTC
	state := stateWithContext(txn, nil)

	tool := NewPatternTool(testThresholds())
	next, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)

	assert.Contains(t, next.PatternResults.PatternsDetected, "amount_anomaly")
	assert.Contains(t, next.PatternResults.PatternsDetected, "time_anomaly")
}

func TestPatternToolEvidenceIdempotent(t *testing.T) {
	txn := seedTxn("txn-1", 0, 50, "m-1", "approved")
	state := stateWithContext(txn, nil)

	tool := NewPatternTool(testThresholds())
	first, err := tool.Execute(context.Background(), state)
	require.NoError(t, err)
	second, err := tool.Execute(context.Background(), first)
	require.NoError(t, err)

	count := 0
	for _, env := range second.Evidence {
		if env.Tool == NamePattern {
			count++
		}
	}
	assert.Equal(t, 1, count, "re-running must replace the envelope, not append")
}
