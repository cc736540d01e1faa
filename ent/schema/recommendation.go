package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Recommendation holds an analyst-facing suggested action.
// Status transitions: OPEN -> ACKNOWLEDGED -> EXPORTED, OPEN -> REJECTED.
// REJECTED and EXPORTED are terminal; updates use compare-and-swap.
type Recommendation struct {
	ent.Schema
}

// Fields of the Recommendation.
func (Recommendation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recommendation_id").
			Unique().
			Immutable(),
		field.String("insight_id").
			Immutable(),
		field.String("rec_type").
			Comment("e.g. 'block_card', 'velocity_review', 'standard_review'"),
		field.Enum("status").
			Values("OPEN", "ACKNOWLEDGED", "REJECTED", "EXPORTED").
			Default("OPEN"),
		field.Int("priority").
			Comment("1 is highest"),
		field.String("title"),
		field.Text("impact").
			Optional(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Actionable context: amount, merchant, MCC, window stats"),
		field.String("comment").
			Optional().
			Nillable().
			Comment("Analyst comment recorded on acknowledge/reject"),
		field.Enum("severity").
			Values("CRITICAL", "HIGH", "MEDIUM", "LOW"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Recommendation.
func (Recommendation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("insight", Insight.Type).
			Ref("recommendations").
			Field("insight_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Recommendation.
func (Recommendation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("severity"),
	}
}
