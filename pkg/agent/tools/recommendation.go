package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
)

// RecommendationTool derives analyst-facing actions from the accumulated
// evidence. Pure computation with deterministic ordering: severity
// descending, then type ascending, then priority assigned 1..N.
type RecommendationTool struct {
	thresholds config.ScoringThresholds
}

// NewRecommendationTool creates the recommendation tool.
func NewRecommendationTool(thresholds config.ScoringThresholds) *RecommendationTool {
	return &RecommendationTool{thresholds: thresholds}
}

func (t *RecommendationTool) Name() string { return NameRecommendation }

func (t *RecommendationTool) Description() string {
	return "Derives prioritized analyst actions from the pattern, similarity, and reasoning evidence."
}

// Execute implements Tool. Each recommendation carries enough context
// (amount, merchant, window statistics) to be actionable without
// re-querying the TM API.
func (t *RecommendationTool) Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	if state.Context == nil || state.Context.Transaction == nil {
		return nil, fmt.Errorf("recommendations require transaction context")
	}
	next := state.Clone()
	tc := next.Context
	txn := tc.Transaction

	detected := make(map[string]bool)
	if next.PatternResults != nil {
		for _, name := range next.PatternResults.PatternsDetected {
			detected[name] = true
		}
	}

	var recs []models.Recommendation

	if detected["card_testing"] {
		recs = append(recs,
			models.Recommendation{
				Type:     models.RecTypeBlockCard,
				Title:    "Block card pending card-testing review",
				Impact:   "Stops further probe attempts on the card immediately",
				Severity: models.MaxSeverity(models.SeverityHigh, next.Severity),
				Payload: map[string]any{
					"transaction_id":    txn.TransactionID,
					"amount":            txn.Amount,
					"merchant_id":       txn.MerchantID,
					"decline_count_72h": tc.Window72h.DeclineCount,
				},
			},
			models.Recommendation{
				Type:     models.RecTypeCardTestingCase,
				Title:    "Open card-testing case",
				Impact:   "Routes the card to the card-testing workflow for BIN-level analysis",
				Severity: models.SeverityHigh,
				Payload: map[string]any{
					"transaction_id":    txn.TransactionID,
					"amount":            txn.Amount,
					"merchant_id":       txn.MerchantID,
					"decline_count_72h": tc.Window72h.DeclineCount,
				},
			})
	}

	if detected["velocity"] {
		recs = append(recs, models.Recommendation{
			Type:     models.RecTypeVelocityReview,
			Title:    "Review card velocity burst",
			Impact:   "Confirms whether the burst is account takeover or legitimate usage",
			Severity: models.MaxSeverity(models.SeverityMedium, next.Severity),
			Payload: map[string]any{
				"transaction_id":       txn.TransactionID,
				"amount":               txn.Amount,
				"merchant_id":          txn.MerchantID,
				"transaction_count_1h": tc.Window1h.TransactionCount,
				"transaction_count_6h": tc.Window6h.TransactionCount,
			},
		})
	}

	if detected["cross_merchant"] {
		recs = append(recs, models.Recommendation{
			Type:     models.RecTypeMerchantReview,
			Title:    "Review cross-merchant spending spread",
			Impact:   "Identifies whether the card is cycling through merchants",
			Severity: models.SeverityMedium,
			Payload: map[string]any{
				"transaction_id":       txn.TransactionID,
				"amount":               txn.Amount,
				"merchant_id":          txn.MerchantID,
				"mcc":                  txn.MCC,
				"unique_merchants_24h": tc.Window24h.UniqueMerchants,
			},
		})
	}

	// Rules fired upstream but the deterministic evidence stayed quiet:
	// candidate for rule tuning rather than card action.
	if len(tc.MatchedRules) > 0 && next.PatternResults != nil &&
		next.PatternResults.OverallScore < t.thresholds.SeverityMedium {
		ruleIDs := make([]string, 0, len(tc.MatchedRules))
		for _, r := range tc.MatchedRules {
			ruleIDs = append(ruleIDs, r.RuleID)
		}
		sort.Strings(ruleIDs)
		recs = append(recs, models.Recommendation{
			Type:     models.RecTypeRuleTuningReview,
			Title:    "Review matched rules for tuning",
			Impact:   "Matched rules fired on a transaction with low deterministic risk",
			Severity: models.SeverityLow,
			Payload: map[string]any{
				"transaction_id": txn.TransactionID,
				"matched_rules":  ruleIDs,
				"overall_score":  next.PatternResults.OverallScore,
			},
		})
	}

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Type:     models.RecTypeStandardReview,
			Title:    "Standard review",
			Impact:   "No elevated signals; routine confirmation only",
			Severity: models.SeverityLow,
			Payload: map[string]any{
				"transaction_id": txn.TransactionID,
				"amount":         txn.Amount,
				"merchant_id":    txn.MerchantID,
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		ri, rj := models.SeverityRank(recs[i].Severity), models.SeverityRank(recs[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return recs[i].Type < recs[j].Type
	})
	for i := range recs {
		recs[i].Priority = i + 1
	}

	next.Recommendations = recs
	next.SetEvidence(models.EvidenceEnvelope{
		Category:    "recommendations",
		Tool:        NameRecommendation,
		Description: fmt.Sprintf("Derived %d recommendations", len(recs)),
		Data:        map[string]any{"count": len(recs), "top_type": recs[0].Type},
	})
	return next, nil
}
