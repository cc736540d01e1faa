package tools

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/tmapi"
)

// historyHoursBack is the trailing window fetched for card and merchant
// history. The 72h window is the widest one scored.
const historyHoursBack = 72

// TMClient is the slice of the TM API client the context tool consumes.
type TMClient interface {
	TransactionOverview(ctx context.Context, transactionID string, includeRules bool) (*tmapi.Overview, error)
	CardHistory(ctx context.Context, cardID string, hoursBack int) ([]models.Transaction, error)
	MerchantHistory(ctx context.Context, merchantID string, hoursBack int) ([]models.Transaction, error)
}

// ContextTool fetches the transaction, its surroundings, and recent card
// and merchant activity from the TM API, then derives the windowed
// statistics every downstream heuristic is anchored on.
type ContextTool struct {
	tm TMClient
}

// NewContextTool creates the context tool.
func NewContextTool(tm TMClient) *ContextTool {
	return &ContextTool{tm: tm}
}

func (t *ContextTool) Name() string { return NameContext }

func (t *ContextTool) Description() string {
	return "Fetches the transaction, matched rules, review context, and 72h card/merchant history, and computes windowed activity statistics."
}

// Execute implements Tool.
func (t *ContextTool) Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	next := state.Clone()

	overview, err := t.tm.TransactionOverview(ctx, state.TransactionID, true)
	next.TMAPIUsage.RecordCall("overview")
	if err != nil {
		return nil, fmt.Errorf("transaction overview fetch failed: %w", err)
	}
	txn := overview.Transaction

	// Card and merchant history are independent fetches.
	var cardHistory, merchantHistory []models.Transaction
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		cardHistory, err = t.tm.CardHistory(groupCtx, txn.CardID, historyHoursBack)
		if err != nil {
			return fmt.Errorf("card history fetch failed: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		merchantHistory, err = t.tm.MerchantHistory(groupCtx, txn.MerchantID, historyHoursBack)
		if err != nil {
			return fmt.Errorf("merchant history fetch failed: %w", err)
		}
		return nil
	})
	err = group.Wait()
	next.TMAPIUsage.RecordCall("card_history")
	next.TMAPIUsage.RecordCall("merchant_history")
	if err != nil {
		return nil, err
	}

	anchor := models.ParseTimestamp(txn.Timestamp)
	if anchor.IsZero() {
		return nil, fmt.Errorf("transaction %s has no parseable timestamp", txn.TransactionID)
	}

	next.Context = &models.TransactionContext{
		Transaction:     &txn,
		CardHistory:     cardHistory,
		MerchantHistory: merchantHistory,
		MatchedRules:    overview.MatchedRules,
		Review:          overview.Review,
		Notes:           overview.Notes,
		Case:            overview.Case,
		Window1h:        windowStats(cardHistory, anchor, time.Hour),
		Window6h:        windowStats(cardHistory, anchor, 6*time.Hour),
		Window24h:       windowStats(cardHistory, anchor, 24*time.Hour),
		Window72h:       windowStats(cardHistory, anchor, 72*time.Hour),
	}
	next.SetEvidence(models.EvidenceEnvelope{
		Category:    "transaction_context",
		Tool:        NameContext,
		Description: fmt.Sprintf("Fetched transaction context with %d card and %d merchant history entries", len(cardHistory), len(merchantHistory)),
		Data: map[string]any{
			"card_history_count":     len(cardHistory),
			"merchant_history_count": len(merchantHistory),
			"matched_rule_count":     len(overview.MatchedRules),
		},
	})
	return next, nil
}

// windowStats summarizes card activity inside (anchor-window, anchor].
// Windows are anchored to the target transaction's timestamp, never wall
// clock, so re-running an investigation is reproducible.
func windowStats(history []models.Transaction, anchor time.Time, window time.Duration) models.WindowStats {
	start := anchor.Add(-window)
	merchants := make(map[string]bool)
	var stats models.WindowStats
	for i := range history {
		ts := models.ParseTimestamp(history[i].Timestamp)
		if ts.IsZero() || ts.After(anchor) || !ts.After(start) {
			continue
		}
		stats.TransactionCount++
		stats.TotalAmount += history[i].Amount
		merchants[history[i].MerchantID] = true
		if history[i].Declined() {
			stats.DeclineCount++
		}
	}
	stats.UniqueMerchants = len(merchants)
	return stats
}
