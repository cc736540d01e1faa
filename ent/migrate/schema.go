// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "performed_by", Type: field.TypeString},
		{Name: "new_value", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6]},
			},
		},
	}
	// EvidencesColumns holds the columns for the "evidences" table.
	EvidencesColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "source_tool", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "insight_id", Type: field.TypeString},
	}
	// EvidencesTable holds the schema information for the "evidences" table.
	EvidencesTable = &schema.Table{
		Name:       "evidences",
		Columns:    EvidencesColumns,
		PrimaryKey: []*schema.Column{EvidencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidences_insights_evidence",
				Columns:    []*schema.Column{EvidencesColumns[5]},
				RefColumns: []*schema.Column{InsightsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_insight_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[5], EvidencesColumns[4]},
			},
		},
	}
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "transaction_id", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "evidence_kind", Type: field.TypeString},
		{Name: "model_mode", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "insights_investigations_insights",
				Columns:    []*schema.Column{InsightsColumns[9]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "insight_transaction_id",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[1]},
			},
		},
	}
	// InvestigationsColumns holds the columns for the "investigations" table.
	InvestigationsColumns = []*schema.Column{
		{Name: "investigation_id", Type: field.TypeString, Unique: true},
		{Name: "transaction_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"FULL", "QUICK"}, Default: "FULL"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "timed_out"}, Default: "pending"},
		{Name: "severity", Type: field.TypeEnum, Nullable: true, Enums: []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}},
		{Name: "final_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "max_steps", Type: field.TypeInt, Default: 20},
		{Name: "planner_model", Type: field.TypeString, Nullable: true},
		{Name: "case_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// InvestigationsTable holds the schema information for the "investigations" table.
	InvestigationsTable = &schema.Table{
		Name:       "investigations",
		Columns:    InvestigationsColumns,
		PrimaryKey: []*schema.Column{InvestigationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "investigation_transaction_id",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[1]},
			},
			{
				Name:    "investigation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[3], InvestigationsColumns[11]},
			},
		},
	}
	// RecommendationsColumns holds the columns for the "recommendations" table.
	RecommendationsColumns = []*schema.Column{
		{Name: "recommendation_id", Type: field.TypeString, Unique: true},
		{Name: "rec_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"OPEN", "ACKNOWLEDGED", "REJECTED", "EXPORTED"}, Default: "OPEN"},
		{Name: "priority", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "impact", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "insight_id", Type: field.TypeString},
	}
	// RecommendationsTable holds the schema information for the "recommendations" table.
	RecommendationsTable = &schema.Table{
		Name:       "recommendations",
		Columns:    RecommendationsColumns,
		PrimaryKey: []*schema.Column{RecommendationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recommendations_insights_recommendations",
				Columns:    []*schema.Column{RecommendationsColumns[11]},
				RefColumns: []*schema.Column{InsightsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recommendation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[2], RecommendationsColumns[9]},
			},
			{
				Name:    "recommendation_severity",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[8]},
			},
		},
	}
	// RuleDraftsColumns holds the columns for the "rule_drafts" table.
	RuleDraftsColumns = []*schema.Column{
		{Name: "rule_draft_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "EXPORTED", "FAILED"}, Default: "PENDING"},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "rule_description", Type: field.TypeString, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// RuleDraftsTable holds the schema information for the "rule_drafts" table.
	RuleDraftsTable = &schema.Table{
		Name:       "rule_drafts",
		Columns:    RuleDraftsColumns,
		PrimaryKey: []*schema.Column{RuleDraftsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rule_drafts_investigations_rule_drafts",
				Columns:    []*schema.Column{RuleDraftsColumns[7]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// StateSnapshotsColumns holds the columns for the "state_snapshots" table.
	StateSnapshotsColumns = []*schema.Column{
		{Name: "investigation_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StateSnapshotsTable holds the schema information for the "state_snapshots" table.
	StateSnapshotsTable = &schema.Table{
		Name:       "state_snapshots",
		Columns:    StateSnapshotsColumns,
		PrimaryKey: []*schema.Column{StateSnapshotsColumns[0]},
	}
	// ToolExecutionLogsColumns holds the columns for the "tool_execution_logs" table.
	ToolExecutionLogsColumns = []*schema.Column{
		{Name: "tool_execution_id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failed", "timed_out"}},
		{Name: "input_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "execution_time_ms", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// ToolExecutionLogsTable holds the schema information for the "tool_execution_logs" table.
	ToolExecutionLogsTable = &schema.Table{
		Name:       "tool_execution_logs",
		Columns:    ToolExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ToolExecutionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_execution_logs_investigations_tool_executions",
				Columns:    []*schema.Column{ToolExecutionLogsColumns[9]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolexecutionlog_investigation_id_step_number",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionLogsColumns[9], ToolExecutionLogsColumns[2]},
			},
		},
	}
	// TransactionEmbeddingsColumns holds the columns for the "transaction_embeddings" table.
	TransactionEmbeddingsColumns = []*schema.Column{
		{Name: "transaction_id", Type: field.TypeString, Unique: true},
		{Name: "embedding", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "vector(1024)"}},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "merchant_id", Type: field.TypeString},
		{Name: "transaction_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TransactionEmbeddingsTable holds the schema information for the "transaction_embeddings" table.
	TransactionEmbeddingsTable = &schema.Table{
		Name:       "transaction_embeddings",
		Columns:    TransactionEmbeddingsColumns,
		PrimaryKey: []*schema.Column{TransactionEmbeddingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transactionembedding_created_at",
				Unique:  false,
				Columns: []*schema.Column{TransactionEmbeddingsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		EvidencesTable,
		InsightsTable,
		InvestigationsTable,
		RecommendationsTable,
		RuleDraftsTable,
		StateSnapshotsTable,
		ToolExecutionLogsTable,
		TransactionEmbeddingsTable,
	}
)

func init() {
	EvidencesTable.ForeignKeys[0].RefTable = InsightsTable
	InsightsTable.ForeignKeys[0].RefTable = InvestigationsTable
	RecommendationsTable.ForeignKeys[0].RefTable = InsightsTable
	RuleDraftsTable.ForeignKeys[0].RefTable = InvestigationsTable
	ToolExecutionLogsTable.ForeignKeys[0].RefTable = InvestigationsTable
}
