package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/vector"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vec, f.err
}

type fakeSearcher struct {
	matches []vector.Match
	err     error

	upsertErr     error
	upsertCalls   int
	upsertTxnID   string
	upsertVec     []float32
	upsertSummary string
}

func (f *fakeSearcher) Search(ctx context.Context, embedding []float32, excludeID string, limit, maxAgeDays int) ([]vector.Match, error) {
	return f.matches, f.err
}

func (f *fakeSearcher) Upsert(ctx context.Context, txn *models.Transaction, embedding []float32, summary string) error {
	f.upsertCalls++
	f.upsertTxnID = txn.TransactionID
	f.upsertVec = embedding
	f.upsertSummary = summary
	return f.upsertErr
}

func enabledSimilarityConfig() SimilarityConfig {
	return SimilarityConfig{Enabled: true, SearchLimit: 20, MinSimilarity: 0.3, WindowDays: 90}
}

func TestSimilarityToolDisabled(t *testing.T) {
	tool := NewSimilarityTool(nil, nil, SimilarityConfig{Enabled: false})
	txn := seedTxn("txn-1", 0, 10, "m-1", "approved")
	next, err := tool.Execute(context.Background(), stateWithContext(txn, nil))
	require.NoError(t, err)

	require.NotNil(t, next.SimilarityResults)
	assert.True(t, next.SimilarityResults.Skipped)
	assert.Empty(t, next.SimilarityResults.Matches)
	assert.Zero(t, next.SimilarityResults.OverallScore)
}

func TestSimilarityToolWeightsAndFilters(t *testing.T) {
	searcher := &fakeSearcher{matches: []vector.Match{
		{TransactionID: "old-strong", Similarity: 0.9, AgeDays: 90},
		{TransactionID: "fresh-strong", Similarity: 0.8, AgeDays: 0},
		{TransactionID: "weak", Similarity: 0.2, AgeDays: 1},
	}}
	tool := NewSimilarityTool(&fakeEmbedder{vec: []float32{0.1}}, searcher, enabledSimilarityConfig())

	txn := seedTxn("txn-1", 0, 10, "m-1", "approved")
	next, err := tool.Execute(context.Background(), stateWithContext(txn, nil))
	require.NoError(t, err)

	require.NotNil(t, next.SimilarityResults)
	assert.False(t, next.SimilarityResults.Skipped)
	require.Len(t, next.SimilarityResults.Matches, 2, "below-floor similarity must be dropped")

	// 90-day-old match decays to half weight; the fresh one keeps full.
	assert.InDelta(t, 0.45, next.SimilarityResults.Matches[0].WeightedScore, 1e-9)
	assert.InDelta(t, 0.8, next.SimilarityResults.Matches[1].WeightedScore, 1e-9)
	assert.InDelta(t, 0.8, next.SimilarityResults.OverallScore, 1e-9)
}

func TestSimilarityToolStoresAnchorEmbedding(t *testing.T) {
	searcher := &fakeSearcher{}
	tool := NewSimilarityTool(&fakeEmbedder{vec: []float32{0.1, 0.2}}, searcher, enabledSimilarityConfig())

	txn := seedTxn("txn-1", 0, 10, "m-1", "approved")
	_, err := tool.Execute(context.Background(), stateWithContext(txn, nil))
	require.NoError(t, err)

	assert.Equal(t, 1, searcher.upsertCalls, "anchor embedding must be written back after the search")
	assert.Equal(t, "txn-1", searcher.upsertTxnID)
	assert.Equal(t, []float32{0.1, 0.2}, searcher.upsertVec)
	assert.Equal(t, CanonicalSummary(&txn), searcher.upsertSummary)
}

func TestSimilarityToolUpsertFailureDoesNotFailSearch(t *testing.T) {
	searcher := &fakeSearcher{
		matches:   []vector.Match{{TransactionID: "fresh", Similarity: 0.8, AgeDays: 0}},
		upsertErr: errors.New("insert failed"),
	}
	tool := NewSimilarityTool(&fakeEmbedder{vec: []float32{0.1}}, searcher, enabledSimilarityConfig())

	txn := seedTxn("txn-1", 0, 10, "m-1", "approved")
	next, err := tool.Execute(context.Background(), stateWithContext(txn, nil))
	require.NoError(t, err, "a storage hiccup must not discard the results in hand")
	require.Len(t, next.SimilarityResults.Matches, 1)
}

func TestSimilarityToolEmbedderFailurePropagates(t *testing.T) {
	tool := NewSimilarityTool(&fakeEmbedder{err: errors.New("provider down")}, &fakeSearcher{}, enabledSimilarityConfig())
	txn := seedTxn("txn-1", 0, 10, "m-1", "approved")
	_, err := tool.Execute(context.Background(), stateWithContext(txn, nil))
	require.Error(t, err)
}

func TestSimilarityToolSearchFailurePropagates(t *testing.T) {
	tool := NewSimilarityTool(&fakeEmbedder{vec: []float32{0.1}}, &fakeSearcher{err: errors.New("query failed")}, enabledSimilarityConfig())
	txn := seedTxn("txn-1", 0, 10, "m-1", "approved")
	_, err := tool.Execute(context.Background(), stateWithContext(txn, nil))
	require.Error(t, err)
}

func TestCanonicalSummaryDeterministic(t *testing.T) {
	txn := models.Transaction{
		TransactionID: "txn-1",
		Amount:        42.5,
		Currency:      "EUR",
		MerchantID:    "m-1",
		MCC:           "5411",
		Country:       "DE",
		Status:        "approved",
		Timestamp:     models.Timestamp(anchorTime),
	}
	assert.Equal(t, CanonicalSummary(&txn), CanonicalSummary(&txn))
	assert.Contains(t, CanonicalSummary(&txn), "amount=42.50")
	assert.Contains(t, CanonicalSummary(&txn), "hour=14")
}
