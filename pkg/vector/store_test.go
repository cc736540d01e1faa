package vector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/pkg/models"
)

func TestUpsertRejectsUnparseableTimestamp(t *testing.T) {
	store := NewStore(nil)
	txn := &models.Transaction{TransactionID: "txn-1", Timestamp: "not-a-timestamp"}

	err := store.Upsert(context.Background(), txn, []float32{0.1}, "summary")
	require.Error(t, err, "the guard must fire before any database access")
	assert.Contains(t, err.Error(), "txn-1")
}

func TestUpsertRejectsMissingTimestamp(t *testing.T) {
	store := NewStore(nil)
	txn := &models.Transaction{TransactionID: "txn-2"}

	err := store.Upsert(context.Background(), txn, []float32{0.1}, "summary")
	require.Error(t, err)
}
