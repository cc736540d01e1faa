package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds one tool-authored evidence envelope backing an insight.
// Append-only; ordered by created_at.
type Evidence struct {
	ent.Schema
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("insight_id").
			Immutable(),
		field.String("category").
			Immutable().
			Comment("e.g. 'pattern_analysis', 'similarity_search'"),
		field.String("source_tool").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evidence.
func (Evidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("insight", Insight.Type).
			Ref("evidence").
			Field("insight_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("insight_id", "created_at"),
	}
}
