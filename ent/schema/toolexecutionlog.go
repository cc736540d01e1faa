package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolExecutionLog holds append-only records of tool executions.
// Rows are never updated after insert.
type ToolExecutionLog struct {
	ent.Schema
}

// Fields of the ToolExecutionLog.
func (ToolExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_execution_id").
			Unique().
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.Int("step_number").
			Immutable().
			Comment("Execution order within the investigation, 1-based"),
		field.Enum("status").
			Values("success", "failed", "timed_out").
			Immutable(),
		field.Text("input_summary").
			Optional().
			Immutable(),
		field.Text("output_summary").
			Optional().
			Immutable(),
		field.String("error_message").
			Optional().
			Nillable().
			Immutable(),
		field.Int("execution_time_ms").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolExecutionLog.
func (ToolExecutionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("tool_executions").
			Field("investigation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolExecutionLog.
func (ToolExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("investigation_id", "step_number"),
	}
}
