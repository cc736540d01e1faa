// Code generated by ent, DO NOT EDIT.

package recommendation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recommendation type in the database.
	Label = "recommendation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recommendation_id"
	// FieldInsightID holds the string denoting the insight_id field in the database.
	FieldInsightID = "insight_id"
	// FieldRecType holds the string denoting the rec_type field in the database.
	FieldRecType = "rec_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldImpact holds the string denoting the impact field in the database.
	FieldImpact = "impact"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInsight holds the string denoting the insight edge name in mutations.
	EdgeInsight = "insight"
	// InsightFieldID holds the string denoting the ID field of the Insight.
	InsightFieldID = "insight_id"
	// Table holds the table name of the recommendation in the database.
	Table = "recommendations"
	// InsightTable is the table that holds the insight relation/edge.
	InsightTable = "recommendations"
	// InsightInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightInverseTable = "insights"
	// InsightColumn is the table column denoting the insight relation/edge.
	InsightColumn = "insight_id"
)

// Columns holds all SQL columns for recommendation fields.
var Columns = []string{
	FieldID,
	FieldInsightID,
	FieldRecType,
	FieldStatus,
	FieldPriority,
	FieldTitle,
	FieldImpact,
	FieldPayload,
	FieldComment,
	FieldSeverity,
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

// StatusOPEN is the default value of the Status enum.
const DefaultStatus = StatusOPEN

// Status values.
const (
	StatusOPEN         Status = "OPEN"
	StatusACKNOWLEDGED Status = "ACKNOWLEDGED"
	StatusREJECTED     Status = "REJECTED"
	StatusEXPORTED     Status = "EXPORTED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOPEN, StatusACKNOWLEDGED, StatusREJECTED, StatusEXPORTED:
		return nil
	default:
		return fmt.Errorf("recommendation: invalid enum value for status field: %q", s)
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
		return fmt.Errorf("recommendation: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the Recommendation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInsightID orders the results by the insight_id field.
func ByInsightID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsightID, opts...).ToFunc()
}

// ByRecType orders the results by the rec_type field.
func ByRecType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByImpact orders the results by the impact field.
func ByImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpact, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInsightField orders the results by insight field.
func ByInsightField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsightStep(), sql.OrderByField(field, opts...))
	}
}
func newInsightStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsightInverseTable, InsightFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InsightTable, InsightColumn),
	)
}
