// Code generated by ent, DO NOT EDIT.

package toolexecutionlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the toolexecutionlog type in the database.
	Label = "tool_execution_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tool_execution_id"
	// FieldInvestigationID holds the string denoting the investigation_id field in the database.
	FieldInvestigationID = "investigation_id"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldStepNumber holds the string denoting the step_number field in the database.
	FieldStepNumber = "step_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputSummary holds the string denoting the input_summary field in the database.
	FieldInputSummary = "input_summary"
	// FieldOutputSummary holds the string denoting the output_summary field in the database.
	FieldOutputSummary = "output_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInvestigation holds the string denoting the investigation edge name in mutations.
	EdgeInvestigation = "investigation"
	// InvestigationFieldID holds the string denoting the ID field of the Investigation.
	InvestigationFieldID = "investigation_id"
	// Table holds the table name of the toolexecutionlog in the database.
	Table = "tool_execution_logs"
	// InvestigationTable is the table that holds the investigation relation/edge.
	InvestigationTable = "tool_execution_logs"
	// InvestigationInverseTable is the table name for the Investigation entity.
	// It exists in this package in order to avoid circular dependency with the "investigation" package.
	InvestigationInverseTable = "investigations"
	// InvestigationColumn is the table column denoting the investigation relation/edge.
	InvestigationColumn = "investigation_id"
)

// Columns holds all SQL columns for toolexecutionlog fields.
var Columns = []string{
	FieldID,
	FieldInvestigationID,
	FieldToolName,
	FieldStepNumber,
	FieldStatus,
	FieldInputSummary,
	FieldOutputSummary,
	FieldErrorMessage,
	FieldExecutionTimeMs,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusTimedOut Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusFailed, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("toolexecutionlog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ToolExecutionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvestigationID orders the results by the investigation_id field.
func ByInvestigationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestigationID, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByStepNumber orders the results by the step_number field.
func ByStepNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInputSummary orders the results by the input_summary field.
func ByInputSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputSummary, opts...).ToFunc()
}

// ByOutputSummary orders the results by the output_summary field.
func ByOutputSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInvestigationField orders the results by investigation field.
func ByInvestigationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvestigationStep(), sql.OrderByField(field, opts...))
	}
}
func newInvestigationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvestigationInverseTable, InvestigationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
	)
}
