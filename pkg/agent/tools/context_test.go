package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/tmapi"
)

type fakeTM struct {
	overview        *tmapi.Overview
	cardHistory     []models.Transaction
	merchantHistory []models.Transaction
	overviewErr     error
	historyErr      error
}

func (f *fakeTM) TransactionOverview(ctx context.Context, transactionID string, includeRules bool) (*tmapi.Overview, error) {
	if f.overviewErr != nil {
		return nil, f.overviewErr
	}
	return f.overview, nil
}

func (f *fakeTM) CardHistory(ctx context.Context, cardID string, hoursBack int) ([]models.Transaction, error) {
	return f.cardHistory, f.historyErr
}

func (f *fakeTM) MerchantHistory(ctx context.Context, merchantID string, hoursBack int) ([]models.Transaction, error) {
	return f.merchantHistory, f.historyErr
}

func TestContextToolPopulatesWindows(t *testing.T) {
	anchor := seedTxn("txn-1", 0, 100, "m-1", "approved")
	history := []models.Transaction{
		seedTxn("h1", 30, 10, "m-1", "approved"),
		seedTxn("h2", 45, 20, "m-2", "declined"),
		seedTxn("h3", 300, 30, "m-3", "approved"),  // 5h back
		seedTxn("h4", 3000, 40, "m-4", "approved"), // 50h back
	}
	tm := &fakeTM{
		overview: &tmapi.Overview{
			Transaction:  anchor,
			MatchedRules: []models.MatchedRule{{RuleID: "r-1"}},
		},
		cardHistory:     history,
		merchantHistory: []models.Transaction{seedTxn("m1", 10, 5, "m-1", "approved")},
	}

	tool := NewContextTool(tm)
	next, err := tool.Execute(context.Background(), baseState())
	require.NoError(t, err)

	require.NotNil(t, next.Context)
	assert.Equal(t, "txn-1", next.Context.Transaction.TransactionID)
	assert.Len(t, next.Context.CardHistory, 4)
	assert.Len(t, next.Context.MerchantHistory, 1)
	assert.Len(t, next.Context.MatchedRules, 1)

	assert.Equal(t, 2, next.Context.Window1h.TransactionCount)
	assert.Equal(t, 1, next.Context.Window1h.DeclineCount)
	assert.Equal(t, 30.0, next.Context.Window1h.TotalAmount)
	assert.Equal(t, 2, next.Context.Window1h.UniqueMerchants)
	assert.Equal(t, 3, next.Context.Window6h.TransactionCount)
	assert.Equal(t, 3, next.Context.Window24h.TransactionCount)
	assert.Equal(t, 4, next.Context.Window72h.TransactionCount)
}

func TestContextToolRecordsTMUsage(t *testing.T) {
	tm := &fakeTM{
		overview: &tmapi.Overview{Transaction: seedTxn("txn-1", 0, 10, "m-1", "approved")},
	}
	tool := NewContextTool(tm)
	next, err := tool.Execute(context.Background(), baseState())
	require.NoError(t, err)

	assert.Equal(t, 3, next.TMAPIUsage.TotalCalls)
	assert.ElementsMatch(t, []string{"overview", "card_history", "merchant_history"}, next.TMAPIUsage.EndpointsCalled)
}

func TestContextToolOverviewFailure(t *testing.T) {
	tm := &fakeTM{overviewErr: errors.New("tm down")}
	tool := NewContextTool(tm)
	_, err := tool.Execute(context.Background(), baseState())
	require.Error(t, err)
}

func TestContextToolHistoryFailure(t *testing.T) {
	tm := &fakeTM{
		overview:   &tmapi.Overview{Transaction: seedTxn("txn-1", 0, 10, "m-1", "approved")},
		historyErr: errors.New("tm down"),
	}
	tool := NewContextTool(tm)
	_, err := tool.Execute(context.Background(), baseState())
	require.Error(t, err)
}
