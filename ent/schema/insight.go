package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Insight holds the schema definition for the Insight entity.
// One per investigation, upserted by idempotency key so re-runs replace
// content without duplicating rows.
type Insight struct {
	ent.Schema
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("insight_id").
			Unique().
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.String("transaction_id"),
		field.String("idempotency_key").
			Unique(),
		field.Enum("severity").
			Values("CRITICAL", "HIGH", "MEDIUM", "LOW"),
		field.Text("summary"),
		field.String("evidence_kind").
			Comment("Dominant evidence category backing the insight"),
		field.String("model_mode").
			Comment("'llm' or 'fallback' depending on how reasoning was produced"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Insight.
func (Insight) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("insights").
			Field("investigation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("evidence", Evidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("recommendations", Recommendation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transaction_id"),
	}
}
