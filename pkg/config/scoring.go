package config

import (
	"strconv"
	"strings"
)

// ScoringThresholds are the deterministic fraud-scoring knobs consumed by
// the pattern tool and the completion node. All values are env-overridable
// and frozen at startup.
type ScoringThresholds struct {
	// Velocity: transaction counts that score 1.0 in the 1h/6h windows.
	Velocity1hThreshold int
	Velocity6hThreshold int

	// Decline ratio bands.
	DeclineRatioHigh   float64
	DeclineRatioMedium float64

	// Amount anomalies.
	AmountHigh     float64
	AmountElevated float64
	ZScoreOutlier  float64
	ZScoreWarning  float64

	// Time anomalies: hours (0-23, transaction-local UTC) considered unusual.
	UnusualHours map[int]bool

	// Card testing: small-amount ceiling and consecutive-decline trigger.
	CardTestingMaxAmount        float64
	CardTestingDeclineThreshold int

	// Cross-merchant spread: distinct merchants in 24h that score 1.0.
	CrossMerchantThreshold int

	// Round-number amounts that nudge the amount score.
	RoundAmounts map[float64]bool

	// Severity bands over the aggregate pattern score.
	SeverityCritical float64
	SeverityHigh     float64
	SeverityMedium   float64
}

func loadScoringThresholds() ScoringThresholds {
	return ScoringThresholds{
		Velocity1hThreshold: getInt("SCORING_VELOCITY_1H_THRESHOLD", 10),
		Velocity6hThreshold: getInt("SCORING_VELOCITY_6H_THRESHOLD", 25),

		DeclineRatioHigh:   getFloat("SCORING_DECLINE_RATIO_HIGH", 0.5),
		DeclineRatioMedium: getFloat("SCORING_DECLINE_RATIO_MEDIUM", 0.25),

		AmountHigh:     getFloat("SCORING_AMOUNT_HIGH", 1000),
		AmountElevated: getFloat("SCORING_AMOUNT_ELEVATED", 500),
		ZScoreOutlier:  getFloat("SCORING_ZSCORE_OUTLIER", 3.0),
		ZScoreWarning:  getFloat("SCORING_ZSCORE_WARNING", 2.0),

		UnusualHours: parseHourSet(getEnv("SCORING_UNUSUAL_HOURS", "0,1,2,3,4,5")),

		CardTestingMaxAmount:        getFloat("SCORING_CARD_TESTING_MAX_AMOUNT", 5),
		CardTestingDeclineThreshold: getInt("SCORING_CARD_TESTING_DECLINES", 3),

		CrossMerchantThreshold: getInt("SCORING_CROSS_MERCHANT_THRESHOLD", 10),

		RoundAmounts: parseAmountSet(getEnv("SCORING_ROUND_AMOUNTS", "100,200,500,1000")),

		SeverityCritical: getFloat("SCORING_SEVERITY_CRITICAL", 0.7),
		SeverityHigh:     getFloat("SCORING_SEVERITY_HIGH", 0.5),
		SeverityMedium:   getFloat("SCORING_SEVERITY_MEDIUM", 0.3),
	}
}

// SeverityForScore maps an aggregate pattern score to a severity band.
func (t ScoringThresholds) SeverityForScore(score float64) string {
	switch {
	case score >= t.SeverityCritical:
		return "CRITICAL"
	case score >= t.SeverityHigh:
		return "HIGH"
	case score >= t.SeverityMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func parseHourSet(raw string) map[int]bool {
	out := make(map[int]bool)
	for _, part := range strings.Split(raw, ",") {
		h, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || h < 0 || h > 23 {
			continue
		}
		out[h] = true
	}
	return out
}

func parseAmountSet(raw string) map[float64]bool {
	out := make(map[float64]bool)
	for _, part := range strings.Split(raw, ",") {
		a, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue
		}
		out[a] = true
	}
	return out
}
