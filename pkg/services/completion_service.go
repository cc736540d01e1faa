package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
	"github.com/fraudops/opsagent/pkg/agent"
	"github.com/fraudops/opsagent/pkg/models"
)

var _ agent.Persister = (*CompletionService)(nil)

// CompletionService persists a finished investigation. Steps run in a
// fixed order; only the investigation row update is load-bearing, every
// later step degrades into a dependency_failure audit entry so a flaky
// write never loses the terminal status.
type CompletionService struct {
	client     *ent.Client
	stateStore *StateStore
	insights   *InsightService
	audit      *AuditService
	logger     *slog.Logger
}

// NewCompletionService creates a CompletionService.
func NewCompletionService(client *ent.Client, stateStore *StateStore, insights *InsightService, audit *AuditService, logger *slog.Logger) *CompletionService {
	return &CompletionService{
		client:     client,
		stateStore: stateStore,
		insights:   insights,
		audit:      audit,
		logger:     logger,
	}
}

// PersistCompletion writes the terminal investigation row, the final
// snapshot, the tool execution log, the insight with its evidence and
// recommendations, the rule draft, and the lifecycle audit entries.
func (s *CompletionService) PersistCompletion(ctx context.Context, state *models.InvestigationState, escalatedFrom string) error {
	if err := s.updateInvestigationRow(ctx, state); err != nil {
		return err
	}

	if _, err := s.stateStore.SaveState(ctx, state.InvestigationID, state); err != nil {
		s.degrade(ctx, state, "state_snapshot", err)
	}

	if err := s.replaceToolLog(ctx, state); err != nil {
		s.degrade(ctx, state, "tool_execution_log", err)
	}

	var insightID string
	if hasFindings(state) {
		ins, err := s.insights.UpsertFromState(ctx, state)
		if err != nil {
			s.degrade(ctx, state, "insight", err)
		} else {
			insightID = ins.ID
		}
	}

	if err := s.replaceRuleDraft(ctx, state, insightID); err != nil {
		s.degrade(ctx, state, "rule_draft", err)
	}

	s.appendLifecycleAudit(ctx, state, escalatedFrom)
	return nil
}

func (s *CompletionService) updateInvestigationRow(ctx context.Context, state *models.InvestigationState) error {
	update := s.client.Investigation.UpdateOneID(state.InvestigationID).
		SetStatus(investigation.Status(state.Status)).
		SetStepCount(state.StepCount).
		SetFinalConfidence(state.ConfidenceScore)
	if state.Severity != "" {
		update.SetSeverity(investigation.Severity(state.Severity))
	}
	if completedAt := models.ParseTimestamp(state.CompletedAt); !completedAt.IsZero() {
		update.SetCompletedAt(completedAt)
	}
	if state.Error != "" {
		update.SetErrorMessage(state.Error)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize investigation row: %w", err)
	}
	return nil
}

// replaceToolLog rewrites the tool execution rows from the state trace.
// Re-persisting after a resume replaces the rows rather than appending
// duplicates.
func (s *CompletionService) replaceToolLog(ctx context.Context, state *models.InvestigationState) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ToolExecutionLog.Delete().
		Where(toolexecutionlog.InvestigationID(state.InvestigationID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear tool log: %w", err)
	}

	if len(state.ToolExecutions) > 0 {
		builders := make([]*ent.ToolExecutionLogCreate, 0, len(state.ToolExecutions))
		for _, record := range state.ToolExecutions {
			builder := tx.ToolExecutionLog.Create().
				SetID(uuid.New().String()).
				SetInvestigationID(state.InvestigationID).
				SetToolName(record.ToolName).
				SetStepNumber(record.StepNumber).
				SetStatus(toolexecutionlog.Status(strings.ToLower(record.Status))).
				SetInputSummary(record.InputSummary).
				SetOutputSummary(record.OutputSummary).
				SetExecutionTimeMs(int(record.ExecutionTimeMs))
			if record.ErrorMessage != "" {
				builder.SetErrorMessage(record.ErrorMessage)
			}
			if ts := models.ParseTimestamp(record.Timestamp); !ts.IsZero() {
				builder.SetCreatedAt(ts)
			}
			builders = append(builders, builder)
		}
		if err := tx.ToolExecutionLog.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert tool log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tool log: %w", err)
	}
	return nil
}

func (s *CompletionService) replaceRuleDraft(ctx context.Context, state *models.InvestigationState, insightID string) error {
	if _, err := s.client.RuleDraft.Delete().
		Where(ruledraft.InvestigationID(state.InvestigationID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear rule draft: %w", err)
	}
	if state.RuleDraft == nil {
		return nil
	}

	draft := *state.RuleDraft
	if insightID != "" {
		metadata := make(map[string]string, len(draft.Metadata)+1)
		for k, v := range draft.Metadata {
			metadata[k] = v
		}
		metadata["insight_id"] = insightID
		draft.Metadata = metadata
	}
	payload := map[string]interface{}{
		"conditions": draft.Conditions,
		"thresholds": draft.Thresholds,
		"metadata":   draft.Metadata,
	}

	err := s.client.RuleDraft.Create().
		SetID(uuid.New().String()).
		SetInvestigationID(state.InvestigationID).
		SetStatus(ruledraft.StatusPENDING).
		SetRuleName(draft.RuleName).
		SetRuleDescription(draft.RuleDescription).
		SetPayload(payload).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert rule draft: %w", err)
	}
	return nil
}

func (s *CompletionService) appendLifecycleAudit(ctx context.Context, state *models.InvestigationState, escalatedFrom string) {
	var action string
	switch state.Status {
	case models.StatusCompleted:
		action = AuditActionCompleted
	case models.StatusFailed:
		action = AuditActionFailed
	case models.StatusTimedOut:
		action = AuditActionTimedOut
	default:
		return
	}

	value := map[string]any{
		"status":     state.Status,
		"severity":   state.Severity,
		"confidence": state.ConfidenceScore,
		"step_count": state.StepCount,
	}
	if state.Error != "" {
		value["error"] = state.Error
	}
	if err := s.audit.Append(ctx, AuditEntityInvestigation, state.InvestigationID, action, AuditPerformerAgent, value); err != nil {
		s.logger.ErrorContext(ctx, "Failed to append lifecycle audit entry",
			slog.String("investigation_id", state.InvestigationID),
			slog.String("error", err.Error()))
	}

	if escalatedFrom != "" {
		escalation := map[string]any{
			"from": escalatedFrom,
			"to":   state.Severity,
		}
		if err := s.audit.Append(ctx, AuditEntityInvestigation, state.InvestigationID, AuditActionSeverityEscalated, AuditPerformerAgent, escalation); err != nil {
			s.logger.ErrorContext(ctx, "Failed to append severity escalation audit entry",
				slog.String("investigation_id", state.InvestigationID),
				slog.String("error", err.Error()))
		}
	}
}

// degrade records a non-fatal persistence failure as an audit entry.
func (s *CompletionService) degrade(ctx context.Context, state *models.InvestigationState, step string, cause error) {
	s.logger.ErrorContext(ctx, "Completion persistence step failed",
		slog.String("investigation_id", state.InvestigationID),
		slog.String("step", step),
		slog.String("error", cause.Error()))
	err := s.audit.Append(ctx, AuditEntityInvestigation, state.InvestigationID, AuditActionDependencyFailure, AuditPerformerAgent, map[string]any{
		"step":  step,
		"error": cause.Error(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to audit persistence degradation",
			slog.String("investigation_id", state.InvestigationID),
			slog.String("error", err.Error()))
	}
}

// hasFindings reports whether the run produced anything worth an insight
// row. A run that timed out before the first tool has nothing to persist
// beyond its terminal status.
func hasFindings(state *models.InvestigationState) bool {
	return len(state.Evidence) > 0 || state.Reasoning != nil || len(state.Recommendations) > 0
}
