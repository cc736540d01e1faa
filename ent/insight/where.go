// Code generated by ent, DO NOT EDIT.

package insight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fraudops/opsagent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldID, id))
}

// InvestigationID applies equality check predicate on the "investigation_id" field. It's identical to InvestigationIDEQ.
func InvestigationID(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldInvestigationID, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldTransactionID, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldIdempotencyKey, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldSummary, v))
}

// EvidenceKind applies equality check predicate on the "evidence_kind" field. It's identical to EvidenceKindEQ.
func EvidenceKind(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEvidenceKind, v))
}

// ModelMode applies equality check predicate on the "model_mode" field. It's identical to ModelModeEQ.
func ModelMode(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldModelMode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldUpdatedAt, v))
}

// InvestigationIDEQ applies the EQ predicate on the "investigation_id" field.
func InvestigationIDEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldInvestigationID, v))
}

// InvestigationIDNEQ applies the NEQ predicate on the "investigation_id" field.
func InvestigationIDNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldInvestigationID, v))
}

// InvestigationIDIn applies the In predicate on the "investigation_id" field.
func InvestigationIDIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldInvestigationID, vs...))
}

// InvestigationIDNotIn applies the NotIn predicate on the "investigation_id" field.
func InvestigationIDNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldInvestigationID, vs...))
}

// InvestigationIDGT applies the GT predicate on the "investigation_id" field.
func InvestigationIDGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldInvestigationID, v))
}

// InvestigationIDGTE applies the GTE predicate on the "investigation_id" field.
func InvestigationIDGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldInvestigationID, v))
}

// InvestigationIDLT applies the LT predicate on the "investigation_id" field.
func InvestigationIDLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldInvestigationID, v))
}

// InvestigationIDLTE applies the LTE predicate on the "investigation_id" field.
func InvestigationIDLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldInvestigationID, v))
}

// InvestigationIDContains applies the Contains predicate on the "investigation_id" field.
func InvestigationIDContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldInvestigationID, v))
}

// InvestigationIDHasPrefix applies the HasPrefix predicate on the "investigation_id" field.
func InvestigationIDHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldInvestigationID, v))
}

// InvestigationIDHasSuffix applies the HasSuffix predicate on the "investigation_id" field.
func InvestigationIDHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldInvestigationID, v))
}

// InvestigationIDEqualFold applies the EqualFold predicate on the "investigation_id" field.
func InvestigationIDEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldInvestigationID, v))
}

// InvestigationIDContainsFold applies the ContainsFold predicate on the "investigation_id" field.
func InvestigationIDContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldInvestigationID, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDContains applies the Contains predicate on the "transaction_id" field.
func TransactionIDContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldTransactionID, v))
}

// TransactionIDHasPrefix applies the HasPrefix predicate on the "transaction_id" field.
func TransactionIDHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldTransactionID, v))
}

// TransactionIDHasSuffix applies the HasSuffix predicate on the "transaction_id" field.
func TransactionIDHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldTransactionID, v))
}

// TransactionIDEqualFold applies the EqualFold predicate on the "transaction_id" field.
func TransactionIDEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldTransactionID, v))
}

// TransactionIDContainsFold applies the ContainsFold predicate on the "transaction_id" field.
func TransactionIDContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldTransactionID, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldSeverity, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldSummary, v))
}

// EvidenceKindEQ applies the EQ predicate on the "evidence_kind" field.
func EvidenceKindEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEvidenceKind, v))
}

// EvidenceKindNEQ applies the NEQ predicate on the "evidence_kind" field.
func EvidenceKindNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldEvidenceKind, v))
}

// EvidenceKindIn applies the In predicate on the "evidence_kind" field.
func EvidenceKindIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldEvidenceKind, vs...))
}

// EvidenceKindNotIn applies the NotIn predicate on the "evidence_kind" field.
func EvidenceKindNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldEvidenceKind, vs...))
}

// EvidenceKindGT applies the GT predicate on the "evidence_kind" field.
func EvidenceKindGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldEvidenceKind, v))
}

// EvidenceKindGTE applies the GTE predicate on the "evidence_kind" field.
func EvidenceKindGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldEvidenceKind, v))
}

// EvidenceKindLT applies the LT predicate on the "evidence_kind" field.
func EvidenceKindLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldEvidenceKind, v))
}

// EvidenceKindLTE applies the LTE predicate on the "evidence_kind" field.
func EvidenceKindLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldEvidenceKind, v))
}

// EvidenceKindContains applies the Contains predicate on the "evidence_kind" field.
func EvidenceKindContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldEvidenceKind, v))
}

// EvidenceKindHasPrefix applies the HasPrefix predicate on the "evidence_kind" field.
func EvidenceKindHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldEvidenceKind, v))
}

// EvidenceKindHasSuffix applies the HasSuffix predicate on the "evidence_kind" field.
func EvidenceKindHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldEvidenceKind, v))
}

// EvidenceKindEqualFold applies the EqualFold predicate on the "evidence_kind" field.
func EvidenceKindEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldEvidenceKind, v))
}

// EvidenceKindContainsFold applies the ContainsFold predicate on the "evidence_kind" field.
func EvidenceKindContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldEvidenceKind, v))
}

// ModelModeEQ applies the EQ predicate on the "model_mode" field.
func ModelModeEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldModelMode, v))
}

// ModelModeNEQ applies the NEQ predicate on the "model_mode" field.
func ModelModeNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldModelMode, v))
}

// ModelModeIn applies the In predicate on the "model_mode" field.
func ModelModeIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldModelMode, vs...))
}

// ModelModeNotIn applies the NotIn predicate on the "model_mode" field.
func ModelModeNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldModelMode, vs...))
}

// ModelModeGT applies the GT predicate on the "model_mode" field.
func ModelModeGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldModelMode, v))
}

// ModelModeGTE applies the GTE predicate on the "model_mode" field.
func ModelModeGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldModelMode, v))
}

// ModelModeLT applies the LT predicate on the "model_mode" field.
func ModelModeLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldModelMode, v))
}

// ModelModeLTE applies the LTE predicate on the "model_mode" field.
func ModelModeLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldModelMode, v))
}

// ModelModeContains applies the Contains predicate on the "model_mode" field.
func ModelModeContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldModelMode, v))
}

// ModelModeHasPrefix applies the HasPrefix predicate on the "model_mode" field.
func ModelModeHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldModelMode, v))
}

// ModelModeHasSuffix applies the HasSuffix predicate on the "model_mode" field.
func ModelModeHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldModelMode, v))
}

// ModelModeEqualFold applies the EqualFold predicate on the "model_mode" field.
func ModelModeEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldModelMode, v))
}

// ModelModeContainsFold applies the ContainsFold predicate on the "model_mode" field.
func ModelModeContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldModelMode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInvestigation applies the HasEdge predicate on the "investigation" edge.
func HasInvestigation() predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestigationWith applies the HasEdge predicate on the "investigation" edge with a given conditions (other predicates).
func HasInvestigationWith(preds ...predicate.Investigation) predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := newInvestigationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.Evidence) predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecommendations applies the HasEdge predicate on the "recommendations" edge.
func HasRecommendations() predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecommendationsTable, RecommendationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecommendationsWith applies the HasEdge predicate on the "recommendations" edge with a given conditions (other predicates).
func HasRecommendationsWith(preds ...predicate.Recommendation) predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := newRecommendationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.NotPredicates(p))
}
