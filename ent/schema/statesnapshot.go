package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StateSnapshot holds the versioned JSONB InvestigationState.
// Exactly one row per investigation; version increments on every write.
// Keyed by investigation_id directly (no edge — the FK with cascade is
// declared in the SQL migration).
type StateSnapshot struct {
	ent.Schema
}

// Fields of the StateSnapshot.
func (StateSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("investigation_id").
			Unique().
			Immutable(),
		field.JSON("state", map[string]interface{}{}).
			Comment("Full InvestigationState, strict JSON (ISO-8601 timestamps)"),
		field.Int("version").
			Default(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
