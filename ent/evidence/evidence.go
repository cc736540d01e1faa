// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evidence type in the database.
	Label = "evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "evidence_id"
	// FieldInsightID holds the string denoting the insight_id field in the database.
	FieldInsightID = "insight_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSourceTool holds the string denoting the source_tool field in the database.
	FieldSourceTool = "source_tool"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInsight holds the string denoting the insight edge name in mutations.
	EdgeInsight = "insight"
	// InsightFieldID holds the string denoting the ID field of the Insight.
	InsightFieldID = "insight_id"
	// Table holds the table name of the evidence in the database.
	Table = "evidences"
	// InsightTable is the table that holds the insight relation/edge.
	InsightTable = "evidences"
	// InsightInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightInverseTable = "insights"
	// InsightColumn is the table column denoting the insight relation/edge.
	InsightColumn = "insight_id"
)

// Columns holds all SQL columns for evidence fields.
var Columns = []string{
	FieldID,
	FieldInsightID,
	FieldCategory,
	FieldSourceTool,
	FieldPayload,
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

// OrderOption defines the ordering options for the Evidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInsightID orders the results by the insight_id field.
func ByInsightID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsightID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySourceTool orders the results by the source_tool field.
func BySourceTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTool, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
