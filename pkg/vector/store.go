// Package vector stores transaction embeddings in Postgres (pgvector) and
// serves cosine nearest-neighbor queries for the similarity tool.
package vector

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/fraudops/opsagent/pkg/models"
)

// Match is one nearest neighbor returned by Search, before freshness
// weighting.
type Match struct {
	TransactionID string
	Similarity    float64
	AgeDays       float64
}

// Store queries the transaction_embeddings table.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on an existing database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Upsert writes or replaces the embedding row for a transaction.
func (s *Store) Upsert(ctx context.Context, txn *models.Transaction, embedding []float32, summary string) error {
	transactionAt := models.ParseTimestamp(txn.Timestamp)
	if transactionAt.IsZero() {
		return fmt.Errorf("transaction %s has no parseable timestamp", txn.TransactionID)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transaction_embeddings
			(transaction_id, embedding, summary, amount, merchant_id, transaction_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (transaction_id) DO UPDATE SET
			embedding = EXCLUDED.embedding,
			summary = EXCLUDED.summary,
			amount = EXCLUDED.amount,
			merchant_id = EXCLUDED.merchant_id,
			transaction_at = EXCLUDED.transaction_at`,
		txn.TransactionID, pgvector.NewVector(embedding), summary,
		txn.Amount, txn.MerchantID, transactionAt)
	if err != nil {
		return fmt.Errorf("failed to upsert embedding: %w", err)
	}
	return nil
}

// Search returns up to limit neighbors by cosine similarity, excluding
// the anchor transaction and anything older than maxAgeDays. Results
// arrive ordered by distance; the similarity floor is applied by the
// caller after freshness weighting.
func (s *Store) Search(ctx context.Context, embedding []float32, excludeID string, limit, maxAgeDays int) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_id,
		       1 - (embedding <=> $1) AS similarity,
		       EXTRACT(EPOCH FROM (now() - transaction_at)) / 86400 AS age_days
		FROM transaction_embeddings
		WHERE transaction_id <> $2
		  AND transaction_at >= now() - make_interval(days => $3)
		ORDER BY embedding <=> $1
		LIMIT $4`,
		pgvector.NewVector(embedding), excludeID, maxAgeDays, limit)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.TransactionID, &m.Similarity, &m.AgeDays); err != nil {
			return nil, fmt.Errorf("failed to scan vector match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vector search iteration failed: %w", err)
	}
	return matches, nil
}

// DeleteOlderThan removes embeddings whose transaction is older than the
// retention cutoff. Used by the cleanup service.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM transaction_embeddings WHERE transaction_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune embeddings: %w", err)
	}
	return res.RowsAffected()
}
