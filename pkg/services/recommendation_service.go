package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/pkg/models"
)

const (
	defaultWorklistLimit = 50
	maxWorklistLimit     = 200
)

// validTransitions enumerates the allowed recommendation status moves.
// REJECTED and EXPORTED are terminal.
var validTransitions = map[recommendation.Status][]recommendation.Status{
	recommendation.StatusOPEN:         {recommendation.StatusACKNOWLEDGED, recommendation.StatusREJECTED},
	recommendation.StatusACKNOWLEDGED: {recommendation.StatusEXPORTED},
}

// RecommendationService manages the analyst worklist.
type RecommendationService struct {
	client *ent.Client
	audit  *AuditService
	logger *slog.Logger
}

// NewRecommendationService creates a RecommendationService.
func NewRecommendationService(client *ent.Client, audit *AuditService, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		client: client,
		audit:  audit,
		logger: logger,
	}
}

// UpdateStatusWithGuard moves a recommendation from expected to next
// using a compare-and-swap update. Concurrent updaters race on the
// WHERE clause; the loser gets ErrGuardedUpdateNotApplied and the row
// keeps the winner's status.
func (s *RecommendationService) UpdateStatusWithGuard(ctx context.Context, id string, next, expected recommendation.Status, comment, performedBy string) (*ent.Recommendation, error) {
	if !transitionAllowed(expected, next) {
		return nil, fmt.Errorf("%w: %s -> %s is not a valid transition", ErrGuardedUpdateNotApplied, expected, next)
	}

	update := s.client.Recommendation.Update().
		Where(recommendation.ID(id), recommendation.StatusEQ(expected)).
		SetStatus(next)
	if comment != "" {
		update.SetComment(comment)
	}

	affected, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update recommendation status: %w", err)
	}
	if affected == 0 {
		exists, err := s.client.Recommendation.Query().Where(recommendation.ID(id)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check recommendation existence: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: recommendation %s was not in status %s", ErrGuardedUpdateNotApplied, id, expected)
	}

	row, err := s.client.Recommendation.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back recommendation: %w", err)
	}

	action := AuditActionStatusChanged
	if next == recommendation.StatusEXPORTED {
		action = AuditActionExported
	}
	newValue := map[string]any{
		"from": string(expected),
		"to":   string(next),
	}
	if comment != "" {
		newValue["comment"] = comment
	}
	if err := s.audit.Append(ctx, AuditEntityRecommendation, id, action, performedBy, newValue); err != nil {
		s.logger.ErrorContext(ctx, "Failed to audit recommendation status change",
			slog.String("recommendation_id", id),
			slog.String("error", err.Error()))
	}
	return row, nil
}

// Worklist returns a keyset-paginated page of recommendations ordered
// by (status DESC, created_at DESC). The cursor encodes the sort key of
// the last item on the previous page.
func (s *RecommendationService) Worklist(ctx context.Context, filters models.WorklistFilters) (*models.WorklistResponse, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultWorklistLimit
	}
	if limit > maxWorklistLimit {
		limit = maxWorklistLimit
	}

	preds, err := worklistPredicates(filters)
	if err != nil {
		return nil, err
	}

	rows, err := s.client.Recommendation.Query().
		Where(preds...).
		WithInsight(func(q *ent.InsightQuery) {
			q.Select(insight.FieldID, insight.FieldTransactionID)
		}).
		Order(ent.Desc(recommendation.FieldStatus), ent.Desc(recommendation.FieldCreatedAt)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query worklist: %w", err)
	}

	resp := &models.WorklistResponse{Items: []models.WorklistItem{}}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	for _, row := range rows {
		item := models.WorklistItem{
			RecommendationID: row.ID,
			InsightID:        row.InsightID,
			Type:             row.RecType,
			Status:           string(row.Status),
			Priority:         row.Priority,
			Severity:         string(row.Severity),
			Title:            row.Title,
			Impact:           row.Impact,
			Payload:          row.Payload,
			CreatedAt:        models.Timestamp(row.CreatedAt),
		}
		if row.Edges.Insight != nil {
			item.TransactionID = row.Edges.Insight.TransactionID
		}
		resp.Items = append(resp.Items, item)
	}
	if hasMore {
		last := rows[len(rows)-1]
		resp.NextCursor = fmt.Sprintf("%s,%s", last.Status, last.CreatedAt.UTC().Format(time.RFC3339Nano))
	}
	return resp, nil
}

func worklistPredicates(filters models.WorklistFilters) ([]predicate.Recommendation, error) {
	var preds []predicate.Recommendation
	if filters.Status != "" {
		status := recommendation.Status(filters.Status)
		if err := recommendation.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		preds = append(preds, recommendation.StatusEQ(status))
	}
	if filters.Severity != "" {
		severity := recommendation.Severity(filters.Severity)
		if err := recommendation.SeverityValidator(severity); err != nil {
			return nil, NewValidationError("severity", fmt.Sprintf("unknown severity %q", filters.Severity))
		}
		preds = append(preds, recommendation.SeverityEQ(severity))
	}
	if filters.Type != "" {
		preds = append(preds, recommendation.RecType(filters.Type))
	}
	if filters.CursorStatus != "" && filters.CursorTS != nil {
		cursorStatus := filters.CursorStatus
		cursorTS := *filters.CursorTS
		preds = append(preds, predicate.Recommendation(func(s *sql.Selector) {
			s.Where(sql.CompositeLT(
				[]string{s.C(recommendation.FieldStatus), s.C(recommendation.FieldCreatedAt)},
				cursorStatus, cursorTS,
			))
		}))
	}
	return preds, nil
}

func transitionAllowed(from, to recommendation.Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
