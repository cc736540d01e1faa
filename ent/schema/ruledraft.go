package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// RuleDraft holds a normalized, human-reviewable detection-rule proposal.
// Never auto-applied; export to rule management is a separate human-gated
// action.
type RuleDraft struct {
	ent.Schema
}

// Fields of the RuleDraft.
func (RuleDraft) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_draft_id").
			Unique().
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.Enum("status").
			Values("PENDING", "EXPORTED", "FAILED").
			Default("PENDING"),
		field.String("rule_name"),
		field.Text("rule_description"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("conditions[], thresholds{}, metadata{} per RuleDraftPayload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the RuleDraft.
func (RuleDraft) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("rule_drafts").
			Field("investigation_id").
			Unique().
			Required().
			Immutable(),
	}
}
