package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/auditlog"
)

// Audit entity types.
const (
	AuditEntityInvestigation  = "investigation"
	AuditEntityRecommendation = "recommendation"
	AuditEntityRuleDraft      = "rule_draft"
)

// Audit actions.
const (
	AuditActionCompleted         = "completed"
	AuditActionFailed            = "failed"
	AuditActionTimedOut          = "timed_out"
	AuditActionSeverityEscalated = "severity_escalated"
	AuditActionDependencyFailure = "dependency_failure"
	AuditActionStatusChanged     = "status_changed"
	AuditActionExported          = "exported"
)

// AuditPerformerAgent identifies system-initiated audit entries.
const AuditPerformerAgent = "ops-agent"

// AuditService appends to the append-only audit log.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates an AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// Append writes one audit entry.
func (s *AuditService) Append(ctx context.Context, entityType, entityID, action, performedBy string, newValue map[string]any) error {
	builder := s.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetAction(action).
		SetPerformedBy(performedBy)
	if newValue != nil {
		builder.SetNewValue(newValue)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// ListForEntity returns audit entries for one entity, oldest first.
func (s *AuditService) ListForEntity(ctx context.Context, entityType, entityID string) ([]*ent.AuditLog, error) {
	entries, err := s.client.AuditLog.Query().
		Where(auditlog.EntityType(entityType), auditlog.EntityID(entityID)).
		Order(ent.Asc(auditlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
