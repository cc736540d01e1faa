package tools

import (
	"time"

	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
)

var anchorTime = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func testThresholds() config.ScoringThresholds {
	return config.ScoringThresholds{
		Velocity1hThreshold:         10,
		Velocity6hThreshold:         25,
		DeclineRatioHigh:            0.5,
		DeclineRatioMedium:          0.25,
		AmountHigh:                  1000,
		AmountElevated:              500,
		ZScoreOutlier:               3.0,
		ZScoreWarning:               2.0,
		UnusualHours:                map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true},
		CardTestingMaxAmount:        5,
		CardTestingDeclineThreshold: 3,
		CrossMerchantThreshold:      10,
		RoundAmounts:                map[float64]bool{100: true, 500: true, 1000: true},
		SeverityCritical:            0.7,
		SeverityHigh:                0.5,
		SeverityMedium:              0.3,
	}
}

func baseState() *models.InvestigationState {
	return &models.InvestigationState{
		InvestigationID: "inv-1",
		TransactionID:   "txn-1",
		Mode:            models.ModeFull,
		Status:          models.StatusInProgress,
		MaxSteps:        20,
	}
}

// seedTxn builds one historical card transaction offset from the anchor.
func seedTxn(id string, minutesBefore int, amount float64, merchantID, status string) models.Transaction {
	return models.Transaction{
		TransactionID: id,
		CardID:        "card-1",
		MerchantID:    merchantID,
		Amount:        amount,
		Status:        status,
		Timestamp:     models.Timestamp(anchorTime.Add(-time.Duration(minutesBefore) * time.Minute)),
	}
}

func stateWithContext(txn models.Transaction, history []models.Transaction) *models.InvestigationState {
	state := baseState()
	state.Context = &models.TransactionContext{
		Transaction: &txn,
		CardHistory: history,
		Window1h:    testWindow(history, time.Hour),
		Window6h:    testWindow(history, 6*time.Hour),
		Window24h:   testWindow(history, 24*time.Hour),
		Window72h:   testWindow(history, 72*time.Hour),
	}
	return state
}

func testWindow(history []models.Transaction, window time.Duration) models.WindowStats {
	return windowStats(history, anchorTime, window)
}
