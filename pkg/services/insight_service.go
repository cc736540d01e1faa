package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/redact"
)

// insightSummaryLimit caps the persisted summary length.
const insightSummaryLimit = 2000

// InsightService owns the insight/evidence/recommendation persistence.
// Insights upsert by idempotency key: re-running the same investigation
// replaces the content instead of duplicating rows.
type InsightService struct {
	client *ent.Client
}

// NewInsightService creates an InsightService.
func NewInsightService(client *ent.Client) *InsightService {
	return &InsightService{client: client}
}

// IdempotencyKey derives the stable key for an investigation's insight.
// Two runs over the same transaction and mode converge on one row.
func IdempotencyKey(state *models.InvestigationState) string {
	return fmt.Sprintf("%s:%s", state.TransactionID, state.Mode)
}

// UpsertFromState writes the insight and replaces its evidence and
// recommendation rows from the final state. Runs in one transaction.
func (s *InsightService) UpsertFromState(ctx context.Context, state *models.InvestigationState) (*ent.Insight, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ins, err := s.upsertInsight(ctx, tx, state)
	if err != nil {
		return nil, err
	}

	// Replace, never append: clear prior evidence and recommendations.
	if _, err := tx.Evidence.Delete().Where(evidence.InsightID(ins.ID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear prior evidence: %w", err)
	}
	if _, err := tx.Recommendation.Delete().Where(recommendation.InsightID(ins.ID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear prior recommendations: %w", err)
	}

	if len(state.Evidence) > 0 {
		builders := make([]*ent.EvidenceCreate, 0, len(state.Evidence))
		for _, env := range state.Evidence {
			payload := env.Data
			if payload == nil {
				payload = map[string]any{}
			}
			builders = append(builders, tx.Evidence.Create().
				SetID(uuid.New().String()).
				SetInsightID(ins.ID).
				SetCategory(env.Category).
				SetSourceTool(env.Tool).
				SetPayload(payload))
		}
		if err := tx.Evidence.CreateBulk(builders...).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to insert evidence: %w", err)
		}
	}

	if len(state.Recommendations) > 0 {
		builders := make([]*ent.RecommendationCreate, 0, len(state.Recommendations))
		for _, rec := range state.Recommendations {
			payload := rec.Payload
			if payload == nil {
				payload = map[string]any{}
			}
			builders = append(builders, tx.Recommendation.Create().
				SetID(uuid.New().String()).
				SetInsightID(ins.ID).
				SetRecType(rec.Type).
				SetStatus(recommendation.StatusOPEN).
				SetPriority(rec.Priority).
				SetTitle(rec.Title).
				SetImpact(rec.Impact).
				SetPayload(payload).
				SetSeverity(recommendation.Severity(rec.Severity)))
		}
		if err := tx.Recommendation.CreateBulk(builders...).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to insert recommendations: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit insight upsert: %w", err)
	}
	return ins, nil
}

func (s *InsightService) upsertInsight(ctx context.Context, tx *ent.Tx, state *models.InvestigationState) (*ent.Insight, error) {
	key := IdempotencyKey(state)
	severity := state.Severity
	if severity == "" {
		severity = models.SeverityLow
	}

	existing, err := tx.Insight.Query().Where(insight.IdempotencyKey(key)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query insight: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetSeverity(insight.Severity(severity)).
			SetSummary(insightSummary(state)).
			SetEvidenceKind(evidenceKind(state)).
			SetModelMode(modelMode(state)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update insight: %w", err)
		}
		return updated, nil
	}

	created, err := tx.Insight.Create().
		SetID(uuid.New().String()).
		SetInvestigationID(state.InvestigationID).
		SetTransactionID(state.TransactionID).
		SetIdempotencyKey(key).
		SetSeverity(insight.Severity(severity)).
		SetSummary(insightSummary(state)).
		SetEvidenceKind(evidenceKind(state)).
		SetModelMode(modelMode(state)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}
	return created, nil
}

// InsightsForTransaction returns persisted insights, newest first, with
// their evidence inlined.
func (s *InsightService) InsightsForTransaction(ctx context.Context, transactionID string) ([]models.InsightView, error) {
	rows, err := s.client.Insight.Query().
		Where(insight.TransactionID(transactionID)).
		WithEvidence(func(q *ent.EvidenceQuery) {
			q.Order(ent.Asc(evidence.FieldCreatedAt))
		}).
		Order(ent.Desc(insight.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}

	views := make([]models.InsightView, 0, len(rows))
	for _, row := range rows {
		view := models.InsightView{
			InsightID:       row.ID,
			InvestigationID: row.InvestigationID,
			TransactionID:   row.TransactionID,
			Severity:        string(row.Severity),
			Summary:         row.Summary,
			EvidenceKind:    row.EvidenceKind,
			ModelMode:       row.ModelMode,
			CreatedAt:       models.Timestamp(row.CreatedAt),
		}
		for _, ev := range row.Edges.Evidence {
			view.Evidence = append(view.Evidence, map[string]any{
				"evidence_id": ev.ID,
				"category":    ev.Category,
				"source_tool": ev.SourceTool,
				"payload":     ev.Payload,
				"created_at":  models.Timestamp(ev.CreatedAt),
			})
		}
		views = append(views, view)
	}
	return views, nil
}

func insightSummary(state *models.InvestigationState) string {
	if state.Reasoning != nil && state.Reasoning.Explanation != "" {
		return redact.Truncate(state.Reasoning.Explanation, insightSummaryLimit)
	}
	return fmt.Sprintf("Investigation %s finished with status %s", state.InvestigationID, state.Status)
}

// evidenceKind names the dominant evidence category backing the insight.
func evidenceKind(state *models.InvestigationState) string {
	if state.PatternResults != nil && len(state.PatternResults.PatternsDetected) > 0 {
		return "pattern_analysis"
	}
	if state.SimilarityResults != nil && len(state.SimilarityResults.Matches) > 0 {
		return "similarity_analysis"
	}
	return "risk_reasoning"
}

func modelMode(state *models.InvestigationState) string {
	if state.Reasoning != nil {
		return state.Reasoning.LLMStatus
	}
	return models.ReasoningStatusFallback
}
