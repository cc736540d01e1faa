package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Investigation holds the schema definition for the Investigation entity.
// One row per agentic investigation run for a card transaction.
type Investigation struct {
	ent.Schema
}

// Fields of the Investigation.
func (Investigation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("investigation_id").
			Unique().
			Immutable(),
		field.String("transaction_id").
			Immutable().
			Comment("External transaction identifier being investigated"),
		field.Enum("mode").
			Values("FULL", "QUICK").
			Default("FULL"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "timed_out").
			Default("pending"),
		field.Enum("severity").
			Values("CRITICAL", "HIGH", "MEDIUM", "LOW").
			Optional().
			Nillable().
			Comment("Final aggregated severity, set by the completion node"),
		field.Float("final_confidence").
			Optional().
			Nillable().
			Comment("Weighted confidence in [0,1]"),
		field.Int("step_count").
			Default(0),
		field.Int("max_steps").
			Default(20),
		field.String("planner_model").
			Optional().
			Nillable(),
		field.String("case_id").
			Optional().
			Nillable().
			Comment("Optional upstream case reference from the run request"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("First planner invocation (pending -> in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Investigation.
func (Investigation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tool_executions", ToolExecutionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("insights", Insight.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rule_drafts", RuleDraft.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Investigation.
func (Investigation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transaction_id"),
		index.Fields("status", "created_at"),
	}
}
