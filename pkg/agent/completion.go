package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
)

// Confidence aggregation weights. When a component is missing its weight
// is redistributed proportionally across the present ones.
const (
	confidenceWeightReasoning  = 0.5
	confidenceWeightPattern    = 0.3
	confidenceWeightSimilarity = 0.2
)

// Persister performs the ordered best-effort persistence of a finished
// investigation: row update, snapshot, tool log, insight with evidence,
// recommendations, rule draft, lifecycle audit. Only a failed
// investigation row update returns an error; every other step degrades
// into audit entries.
type Persister interface {
	PersistCompletion(ctx context.Context, state *models.InvestigationState, escalatedFrom string) error
}

// Completion finalizes an investigation: terminal status, aggregate
// confidence and severity, persistence.
type Completion struct {
	thresholds config.ScoringThresholds
	persister  Persister
	logger     *slog.Logger
}

// NewCompletion creates the completion node.
func NewCompletion(thresholds config.ScoringThresholds, persister Persister) *Completion {
	return &Completion{
		thresholds: thresholds,
		persister:  persister,
		logger:     slog.Default().With("component", "completion"),
	}
}

// Finalize aggregates scores, stamps the terminal status, and persists.
// It runs on every path out of the graph, including timeout.
func (c *Completion) Finalize(ctx context.Context, state *models.InvestigationState, terminalStatus string) (*models.InvestigationState, error) {
	next := state.Clone()
	next.Status = terminalStatus
	next.CompletedAt = models.Timestamp(time.Now())
	next.NextAction = ""
	next.ConfidenceScore = FinalConfidence(next)

	severity, escalatedFrom := FinalSeverity(next, c.thresholds)
	next.Severity = severity
	if escalatedFrom != "" {
		c.logger.Info("severity escalated by reasoning",
			"investigation_id", next.InvestigationID,
			"from", escalatedFrom, "to", severity)
	}

	if c.persister != nil {
		if err := c.persister.PersistCompletion(ctx, next, escalatedFrom); err != nil {
			return next, err
		}
	}
	return next, nil
}

// FinalConfidence is the weighted mean of reasoning confidence, pattern
// overall score, and similarity overall score, clamped to [0,1]. A
// skipped similarity result counts as missing.
func FinalConfidence(state *models.InvestigationState) float64 {
	var sum, weight float64
	if state.Reasoning != nil {
		sum += confidenceWeightReasoning * state.Reasoning.Confidence
		weight += confidenceWeightReasoning
	}
	if state.PatternResults != nil {
		sum += confidenceWeightPattern * state.PatternResults.OverallScore
		weight += confidenceWeightPattern
	}
	if state.SimilarityResults != nil && !state.SimilarityResults.Skipped {
		sum += confidenceWeightSimilarity * state.SimilarityResults.OverallScore
		weight += confidenceWeightSimilarity
	}
	if weight == 0 {
		return 0
	}
	v := sum / weight
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FinalSeverity is the worse of the reasoning risk level and the severity
// band derived from the pattern score. Any detected pattern floors the
// deterministic band at MEDIUM: a single maxed heuristic carries at most
// its own weight in the aggregate, so the weighted score alone can sit
// below the MEDIUM threshold while the evidence clearly warrants review.
// When the reasoning escalated past the deterministic band, escalatedFrom
// names the band it overrode so the caller can write a severity_escalated
// audit entry.
func FinalSeverity(state *models.InvestigationState, thresholds config.ScoringThresholds) (severity, escalatedFrom string) {
	patternSeverity := models.SeverityLow
	if state.PatternResults != nil {
		patternSeverity = thresholds.SeverityForScore(state.PatternResults.OverallScore)
		if len(state.PatternResults.PatternsDetected) > 0 {
			patternSeverity = models.MaxSeverity(patternSeverity, models.SeverityMedium)
		}
	}

	severity = patternSeverity
	if state.Reasoning != nil {
		severity = models.MaxSeverity(patternSeverity, state.Reasoning.RiskLevel)
		if models.SeverityRank(state.Reasoning.RiskLevel) > models.SeverityRank(patternSeverity) {
			escalatedFrom = patternSeverity
		}
	}
	return severity, escalatedFrom
}
