// Code generated by ent, DO NOT EDIT.

package ruledraft

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ruledraft type in the database.
	Label = "rule_draft"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_draft_id"
	// FieldInvestigationID holds the string denoting the investigation_id field in the database.
	FieldInvestigationID = "investigation_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRuleName holds the string denoting the rule_name field in the database.
	FieldRuleName = "rule_name"
	// FieldRuleDescription holds the string denoting the rule_description field in the database.
	FieldRuleDescription = "rule_description"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInvestigation holds the string denoting the investigation edge name in mutations.
	EdgeInvestigation = "investigation"
	// InvestigationFieldID holds the string denoting the ID field of the Investigation.
	InvestigationFieldID = "investigation_id"
	// Table holds the table name of the ruledraft in the database.
	Table = "rule_drafts"
	// InvestigationTable is the table that holds the investigation relation/edge.
	InvestigationTable = "rule_drafts"
	// InvestigationInverseTable is the table name for the Investigation entity.
	// It exists in this package in order to avoid circular dependency with the "investigation" package.
	InvestigationInverseTable = "investigations"
	// InvestigationColumn is the table column denoting the investigation relation/edge.
	InvestigationColumn = "investigation_id"
)

// Columns holds all SQL columns for ruledraft fields.
var Columns = []string{
	FieldID,
	FieldInvestigationID,
	FieldStatus,
	FieldRuleName,
	FieldRuleDescription,
	FieldPayload,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING  Status = "PENDING"
	StatusEXPORTED Status = "EXPORTED"
	StatusFAILED   Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusEXPORTED, StatusFAILED:
		return nil
	default:
		return fmt.Errorf("ruledraft: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RuleDraft queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvestigationID orders the results by the investigation_id field.
func ByInvestigationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestigationID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRuleName orders the results by the rule_name field.
func ByRuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleName, opts...).ToFunc()
}

// ByRuleDescription orders the results by the rule_description field.
func ByRuleDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
