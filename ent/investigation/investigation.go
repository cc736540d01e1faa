// Code generated by ent, DO NOT EDIT.

package investigation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the investigation type in the database.
	Label = "investigation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "investigation_id"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldFinalConfidence holds the string denoting the final_confidence field in the database.
	FieldFinalConfidence = "final_confidence"
	// FieldStepCount holds the string denoting the step_count field in the database.
	FieldStepCount = "step_count"
	// FieldMaxSteps holds the string denoting the max_steps field in the database.
	FieldMaxSteps = "max_steps"
	// FieldPlannerModel holds the string denoting the planner_model field in the database.
	FieldPlannerModel = "planner_model"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeToolExecutions holds the string denoting the tool_executions edge name in mutations.
	EdgeToolExecutions = "tool_executions"
	// EdgeInsights holds the string denoting the insights edge name in mutations.
	EdgeInsights = "insights"
	// EdgeRuleDrafts holds the string denoting the rule_drafts edge name in mutations.
	EdgeRuleDrafts = "rule_drafts"
	// ToolExecutionLogFieldID holds the string denoting the ID field of the ToolExecutionLog.
	ToolExecutionLogFieldID = "tool_execution_id"
	// InsightFieldID holds the string denoting the ID field of the Insight.
	InsightFieldID = "insight_id"
	// RuleDraftFieldID holds the string denoting the ID field of the RuleDraft.
	RuleDraftFieldID = "rule_draft_id"
	// Table holds the table name of the investigation in the database.
	Table = "investigations"
	// ToolExecutionsTable is the table that holds the tool_executions relation/edge.
	ToolExecutionsTable = "tool_execution_logs"
	// ToolExecutionsInverseTable is the table name for the ToolExecutionLog entity.
	// It exists in this package in order to avoid circular dependency with the "toolexecutionlog" package.
	ToolExecutionsInverseTable = "tool_execution_logs"
	// ToolExecutionsColumn is the table column denoting the tool_executions relation/edge.
	ToolExecutionsColumn = "investigation_id"
	// InsightsTable is the table that holds the insights relation/edge.
	InsightsTable = "insights"
	// InsightsInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightsInverseTable = "insights"
	// InsightsColumn is the table column denoting the insights relation/edge.
	InsightsColumn = "investigation_id"
	// RuleDraftsTable is the table that holds the rule_drafts relation/edge.
	RuleDraftsTable = "rule_drafts"
	// RuleDraftsInverseTable is the table name for the RuleDraft entity.
	// It exists in this package in order to avoid circular dependency with the "ruledraft" package.
	RuleDraftsInverseTable = "rule_drafts"
	// RuleDraftsColumn is the table column denoting the rule_drafts relation/edge.
	RuleDraftsColumn = "investigation_id"
)

// Columns holds all SQL columns for investigation fields.
var Columns = []string{
	FieldID,
	FieldTransactionID,
	FieldMode,
	FieldStatus,
	FieldSeverity,
	FieldFinalConfidence,
	FieldStepCount,
	FieldMaxSteps,
	FieldPlannerModel,
	FieldCaseID,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStepCount holds the default value on creation for the "step_count" field.
	DefaultStepCount int
	// DefaultMaxSteps holds the default value on creation for the "max_steps" field.
	DefaultMaxSteps int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeFULL is the default value of the Mode enum.
const DefaultMode = ModeFULL

// Mode values.
const (
	ModeFULL  Mode = "FULL"
	ModeQUICK Mode = "QUICK"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeFULL, ModeQUICK:
		return nil
	default:
		return fmt.Errorf("investigation: invalid enum value for mode field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusTimedOut   Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("investigation: invalid enum value for status field: %q", s)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityCRITICAL Severity = "CRITICAL"
	SeverityHIGH     Severity = "HIGH"
	SeverityMEDIUM   Severity = "MEDIUM"
	SeverityLOW      Severity = "LOW"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityCRITICAL, SeverityHIGH, SeverityMEDIUM, SeverityLOW:
		return nil
	default:
		return fmt.Errorf("investigation: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the Investigation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByFinalConfidence orders the results by the final_confidence field.
func ByFinalConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalConfidence, opts...).ToFunc()
}

// ByStepCount orders the results by the step_count field.
func ByStepCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCount, opts...).ToFunc()
}

// ByMaxSteps orders the results by the max_steps field.
func ByMaxSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSteps, opts...).ToFunc()
}

// ByPlannerModel orders the results by the planner_model field.
func ByPlannerModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannerModel, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByToolExecutionsCount orders the results by tool_executions count.
func ByToolExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolExecutionsStep(), opts...)
	}
}

// ByToolExecutions orders the results by tool_executions terms.
func ByToolExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInsightsCount orders the results by insights count.
func ByInsightsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInsightsStep(), opts...)
	}
}

// ByInsights orders the results by insights terms.
func ByInsights(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsightsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRuleDraftsCount orders the results by rule_drafts count.
func ByRuleDraftsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRuleDraftsStep(), opts...)
	}
}

// ByRuleDrafts orders the results by rule_drafts terms.
func ByRuleDrafts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRuleDraftsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newToolExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolExecutionsInverseTable, ToolExecutionLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
	)
}
func newInsightsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsightsInverseTable, InsightFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
	)
}
func newRuleDraftsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RuleDraftsInverseTable, RuleDraftFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RuleDraftsTable, RuleDraftsColumn),
	)
}
