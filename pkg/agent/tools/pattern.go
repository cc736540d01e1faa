package tools

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
)

// Heuristic weights used in the aggregate score. Velocity and card
// testing dominate because they are the strongest fraud signals.
const (
	weightAmount        = 0.20
	weightVelocity      = 0.25
	weightTime          = 0.10
	weightCrossMerchant = 0.20
	weightCardTesting   = 0.25
)

// patternDetectedFloor is the score above which a heuristic counts as a
// detected pattern.
const patternDetectedFloor = 0.5

// PatternTool runs the deterministic fraud heuristics over the fetched
// context. Pure computation, no I/O.
type PatternTool struct {
	thresholds config.ScoringThresholds
}

// NewPatternTool creates the pattern tool.
func NewPatternTool(thresholds config.ScoringThresholds) *PatternTool {
	return &PatternTool{thresholds: thresholds}
}

func (t *PatternTool) Name() string { return NamePattern }

func (t *PatternTool) Description() string {
	return "Scores deterministic fraud heuristics: amount anomalies, velocity, time anomalies, cross-merchant spread, and card testing."
}

// Execute implements Tool. Requires context to be populated; without it
// the tool fails so the planner can re-route.
func (t *PatternTool) Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	if state.Context == nil || state.Context.Transaction == nil {
		return nil, fmt.Errorf("pattern analysis requires transaction context")
	}
	next := state.Clone()
	tc := next.Context

	scores := []models.PatternScore{
		t.scoreAmount(tc),
		t.scoreVelocity(tc),
		t.scoreTime(tc),
		t.scoreCrossMerchant(tc),
		t.scoreCardTesting(tc),
	}

	var weightedSum, weightSum float64
	var detected []string
	for _, s := range scores {
		weightedSum += s.Score * s.Weight
		weightSum += s.Weight
		if s.Score > patternDetectedFloor {
			detected = append(detected, s.Name)
		}
	}
	sort.Strings(detected)

	overall := 0.0
	if weightSum > 0 {
		overall = weightedSum / weightSum
	}

	next.PatternResults = &models.PatternResults{
		Scores:           scores,
		OverallScore:     overall,
		PatternsDetected: detected,
	}
	next.SetEvidence(models.EvidenceEnvelope{
		Category:    "pattern_analysis",
		Tool:        NamePattern,
		Description: fmt.Sprintf("Scored %d heuristics, overall %.2f", len(scores), overall),
		Data: map[string]any{
			"scores":            scores,
			"overall_score":     overall,
			"patterns_detected": detected,
		},
	})
	return next, nil
}

// scoreAmount combines an absolute threshold with a z-score against the
// card's 72h baseline, nudged for round-number amounts.
func (t *PatternTool) scoreAmount(tc *models.TransactionContext) models.PatternScore {
	amount := tc.Transaction.Amount
	details := map[string]any{"amount": amount}

	var score float64
	switch {
	case amount >= t.thresholds.AmountHigh:
		score = 1.0
	case amount >= t.thresholds.AmountElevated:
		score = 0.6
	}

	if mean, stddev, n := cardBaseline(tc.CardHistory); n >= 3 && stddev > 0 {
		z := (amount - mean) / stddev
		details["z_score"] = z
		details["baseline_mean"] = mean
		switch {
		case z >= t.thresholds.ZScoreOutlier:
			score = math.Max(score, 1.0)
		case z >= t.thresholds.ZScoreWarning:
			score = math.Max(score, 0.5)
		}
	}

	if t.thresholds.RoundAmounts[amount] {
		details["round_amount"] = true
		score = math.Min(score+0.1, 1.0)
	}

	return models.PatternScore{Name: "amount_anomaly", Score: score, Weight: weightAmount, Details: details}
}

func (t *PatternTool) scoreVelocity(tc *models.TransactionContext) models.PatternScore {
	score1h := ratioScore(tc.Window1h.TransactionCount, t.thresholds.Velocity1hThreshold)
	score6h := ratioScore(tc.Window6h.TransactionCount, t.thresholds.Velocity6hThreshold)
	return models.PatternScore{
		Name:   "velocity",
		Score:  math.Max(score1h, score6h),
		Weight: weightVelocity,
		Details: map[string]any{
			"count_1h": tc.Window1h.TransactionCount,
			"count_6h": tc.Window6h.TransactionCount,
		},
	}
}

func (t *PatternTool) scoreTime(tc *models.TransactionContext) models.PatternScore {
	ts := models.ParseTimestamp(tc.Transaction.Timestamp)
	hour := ts.UTC().Hour()
	score := 0.0
	if t.thresholds.UnusualHours[hour] {
		score = 1.0
	}
	return models.PatternScore{
		Name:    "time_anomaly",
		Score:   score,
		Weight:  weightTime,
		Details: map[string]any{"hour": hour},
	}
}

func (t *PatternTool) scoreCrossMerchant(tc *models.TransactionContext) models.PatternScore {
	return models.PatternScore{
		Name:   "cross_merchant",
		Score:  ratioScore(tc.Window24h.UniqueMerchants, t.thresholds.CrossMerchantThreshold),
		Weight: weightCrossMerchant,
		Details: map[string]any{
			"unique_merchants_24h": tc.Window24h.UniqueMerchants,
		},
	}
}

// scoreCardTesting detects runs of consecutive small-amount declines on
// the card, the classic probe pattern before a real charge.
func (t *PatternTool) scoreCardTesting(tc *models.TransactionContext) models.PatternScore {
	history := make([]models.Transaction, len(tc.CardHistory))
	copy(history, tc.CardHistory)
	sort.Slice(history, func(i, j int) bool {
		return history[i].Timestamp < history[j].Timestamp
	})

	maxRun, run := 0, 0
	for i := range history {
		if history[i].Declined() && history[i].Amount <= t.thresholds.CardTestingMaxAmount {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}

	return models.PatternScore{
		Name:   "card_testing",
		Score:  ratioScore(maxRun, t.thresholds.CardTestingDeclineThreshold),
		Weight: weightCardTesting,
		Details: map[string]any{
			"max_consecutive_small_declines": maxRun,
			"decline_count_72h":              tc.Window72h.DeclineCount,
		},
	}
}

// ratioScore maps count/threshold to [0,1], saturating at the threshold.
func ratioScore(count, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	return math.Min(float64(count)/float64(threshold), 1.0)
}

// cardBaseline returns the mean and population stddev of historical
// amounts, and the sample size.
func cardBaseline(history []models.Transaction) (mean, stddev float64, n int) {
	n = len(history)
	if n == 0 {
		return 0, 0, 0
	}
	var sum float64
	for i := range history {
		sum += history[i].Amount
	}
	mean = sum / float64(n)
	var variance float64
	for i := range history {
		d := history[i].Amount - mean
		variance += d * d
	}
	stddev = math.Sqrt(variance / float64(n))
	return mean, stddev, n
}
