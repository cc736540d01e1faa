// Code generated by ent, DO NOT EDIT.

package insight

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the insight type in the database.
	Label = "insight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "insight_id"
	// FieldInvestigationID holds the string denoting the investigation_id field in the database.
	FieldInvestigationID = "investigation_id"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldEvidenceKind holds the string denoting the evidence_kind field in the database.
	FieldEvidenceKind = "evidence_kind"
	// FieldModelMode holds the string denoting the model_mode field in the database.
	FieldModelMode = "model_mode"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInvestigation holds the string denoting the investigation edge name in mutations.
	EdgeInvestigation = "investigation"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// EdgeRecommendations holds the string denoting the recommendations edge name in mutations.
	EdgeRecommendations = "recommendations"
	// InvestigationFieldID holds the string denoting the ID field of the Investigation.
	InvestigationFieldID = "investigation_id"
	// EvidenceFieldID holds the string denoting the ID field of the Evidence.
	EvidenceFieldID = "evidence_id"
	// RecommendationFieldID holds the string denoting the ID field of the Recommendation.
	RecommendationFieldID = "recommendation_id"
	// Table holds the table name of the insight in the database.
	Table = "insights"
	// InvestigationTable is the table that holds the investigation relation/edge.
	InvestigationTable = "insights"
	// InvestigationInverseTable is the table name for the Investigation entity.
	// It exists in this package in order to avoid circular dependency with the "investigation" package.
	InvestigationInverseTable = "investigations"
	// InvestigationColumn is the table column denoting the investigation relation/edge.
	InvestigationColumn = "investigation_id"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "evidences"
	// EvidenceInverseTable is the table name for the Evidence entity.
	// It exists in this package in order to avoid circular dependency with the "evidence" package.
	EvidenceInverseTable = "evidences"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "insight_id"
	// RecommendationsTable is the table that holds the recommendations relation/edge.
	RecommendationsTable = "recommendations"
	// RecommendationsInverseTable is the table name for the Recommendation entity.
	// It exists in this package in order to avoid circular dependency with the "recommendation" package.
	RecommendationsInverseTable = "recommendations"
	// RecommendationsColumn is the table column denoting the recommendations relation/edge.
	RecommendationsColumn = "insight_id"
)

// Columns holds all SQL columns for insight fields.
var Columns = []string{
	FieldID,
	FieldInvestigationID,
	FieldTransactionID,
	FieldIdempotencyKey,
	FieldSeverity,
	FieldSummary,
	FieldEvidenceKind,
	FieldModelMode,
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
		return fmt.Errorf("insight: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the Insight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvestigationID orders the results by the investigation_id field.
func ByInvestigationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestigationID, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByEvidenceKind orders the results by the evidence_kind field.
func ByEvidenceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceKind, opts...).ToFunc()
}

// ByModelMode orders the results by the model_mode field.
func ByModelMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelMode, opts...).ToFunc()
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

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecommendationsCount orders the results by recommendations count.
func ByRecommendationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecommendationsStep(), opts...)
	}
}

// ByRecommendations orders the results by recommendations terms.
func ByRecommendations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecommendationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInvestigationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvestigationInverseTable, InvestigationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
	)
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, EvidenceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
	)
}
func newRecommendationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecommendationsInverseTable, RecommendationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecommendationsTable, RecommendationsColumn),
	)
}
