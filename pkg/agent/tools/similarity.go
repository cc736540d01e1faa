package tools

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/vector"
)

// Embedder is the slice of the LLM client the similarity tool consumes.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NeighborStore is the slice of the vector store the similarity tool
// consumes: neighbor lookup plus the write-through of the anchor
// embedding that keeps the corpus growing with every investigation.
type NeighborStore interface {
	Search(ctx context.Context, embedding []float32, excludeID string, limit, maxAgeDays int) ([]vector.Match, error)
	Upsert(ctx context.Context, txn *models.Transaction, embedding []float32, summary string) error
}

// SimilarityConfig carries the vector-search knobs.
type SimilarityConfig struct {
	Enabled       bool
	SearchLimit   int
	MinSimilarity float64
	WindowDays    int
}

// SimilarityTool finds historical transactions that look like this one.
// When vector search is disabled it records an explicit skip; when
// enabled, collaborator failures propagate as tool failures rather than
// degrading silently.
type SimilarityTool struct {
	embedder Embedder
	store    NeighborStore
	cfg      SimilarityConfig
	logger   *slog.Logger
}

// NewSimilarityTool creates the similarity tool.
func NewSimilarityTool(embedder Embedder, store NeighborStore, cfg SimilarityConfig) *SimilarityTool {
	return &SimilarityTool{
		embedder: embedder,
		store:    store,
		cfg:      cfg,
		logger:   slog.Default().With("component", "similarity_tool"),
	}
}

func (t *SimilarityTool) Name() string { return NameSimilarity }

func (t *SimilarityTool) Description() string {
	return "Embeds the transaction and retrieves cosine nearest neighbors from the last 90 days, weighted by freshness."
}

// Execute implements Tool.
func (t *SimilarityTool) Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	next := state.Clone()

	if !t.cfg.Enabled {
		next.SimilarityResults = &models.SimilarityResult{
			Matches:      []models.SimilarityMatch{},
			OverallScore: 0,
			Skipped:      true,
		}
		next.SetEvidence(models.EvidenceEnvelope{
			Category:    "similarity_analysis",
			Tool:        NameSimilarity,
			Description: "Vector search disabled by configuration",
			Data:        map[string]any{"skipped": true},
		})
		return next, nil
	}

	if state.Context == nil || state.Context.Transaction == nil {
		return nil, fmt.Errorf("similarity search requires transaction context")
	}
	txn := state.Context.Transaction
	summary := CanonicalSummary(txn)

	embedding, err := t.embedder.Embed(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	raw, err := t.store.Search(ctx, embedding, txn.TransactionID, t.cfg.SearchLimit, t.cfg.WindowDays)
	if err != nil {
		return nil, fmt.Errorf("neighbor search failed: %w", err)
	}

	// Write the anchor's embedding back so future investigations can
	// match against this transaction. Best effort: a storage hiccup must
	// not discard the search results already in hand.
	if err := t.store.Upsert(ctx, txn, embedding, summary); err != nil {
		t.logger.Warn("failed to store anchor embedding",
			"transaction_id", txn.TransactionID, "error", err)
	}

	matches := make([]models.SimilarityMatch, 0, len(raw))
	overall := 0.0
	for _, m := range raw {
		if m.Similarity < t.cfg.MinSimilarity {
			continue
		}
		weighted := m.Similarity * freshness(m.AgeDays, t.cfg.WindowDays)
		matches = append(matches, models.SimilarityMatch{
			TransactionID: m.TransactionID,
			Similarity:    m.Similarity,
			AgeDays:       m.AgeDays,
			WeightedScore: weighted,
		})
		overall = math.Max(overall, weighted)
	}

	next.SimilarityResults = &models.SimilarityResult{
		Matches:      matches,
		OverallScore: overall,
	}
	next.SetEvidence(models.EvidenceEnvelope{
		Category:    "similarity_analysis",
		Tool:        NameSimilarity,
		Description: fmt.Sprintf("Found %d similar transactions, overall %.2f", len(matches), overall),
		Data: map[string]any{
			"match_count":   len(matches),
			"overall_score": overall,
		},
	})
	return next, nil
}

// CanonicalSummary serializes a transaction into the deterministic text
// fed to the embedding model. Field order is fixed; changing it would
// invalidate stored embeddings.
func CanonicalSummary(txn *models.Transaction) string {
	hour := models.ParseTimestamp(txn.Timestamp).UTC().Hour()
	return fmt.Sprintf(
		"card transaction amount=%.2f currency=%s merchant=%s mcc=%s country=%s status=%s hour=%d 3ds=%t trusted_device=%t",
		txn.Amount, txn.Currency, txn.MerchantID, txn.MCC, txn.Country,
		txn.Status, hour, txn.ThreeDSVerified, txn.DeviceTrusted)
}

// freshness decays linearly from 1.0 (today) to 0.5 at the edge of the
// retention window.
func freshness(ageDays float64, windowDays int) float64 {
	if windowDays <= 0 {
		return 1
	}
	f := 1 - 0.5*(ageDays/float64(windowDays))
	return math.Max(math.Min(f, 1), 0.5)
}
