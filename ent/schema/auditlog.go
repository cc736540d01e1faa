package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds append-only audit entries. Rows are never updated.
// No FK edge: entity_type/entity_id reference arbitrary entities.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("entity_type").
			Immutable().
			Comment("'investigation', 'recommendation', 'rule_draft'"),
		field.String("entity_id").
			Immutable(),
		field.String("action").
			Immutable().
			Comment("'completed', 'failed', 'timed_out', 'severity_escalated', 'dependency_failure', ..."),
		field.String("performed_by").
			Immutable().
			Comment("User identity or 'ops-agent'"),
		field.JSON("new_value", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("created_at"),
	}
}
