// Code generated by ent, DO NOT EDIT.

package transactionembedding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldContainsFold(FieldID, id))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldEmbedding, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldSummary, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldAmount, v))
}

// MerchantID applies equality check predicate on the "merchant_id" field. It's identical to MerchantIDEQ.
func MerchantID(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldMerchantID, v))
}

// TransactionAt applies equality check predicate on the "transaction_at" field. It's identical to TransactionAtEQ.
func TransactionAt(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldTransactionAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldCreatedAt, v))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLTE(FieldEmbedding, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldContainsFold(FieldSummary, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLTE(FieldAmount, v))
}

// MerchantIDEQ applies the EQ predicate on the "merchant_id" field.
func MerchantIDEQ(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldMerchantID, v))
}

// MerchantIDNEQ applies the NEQ predicate on the "merchant_id" field.
func MerchantIDNEQ(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNEQ(FieldMerchantID, v))
}

// MerchantIDIn applies the In predicate on the "merchant_id" field.
func MerchantIDIn(vs ...string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldIn(FieldMerchantID, vs...))
}

// MerchantIDNotIn applies the NotIn predicate on the "merchant_id" field.
func MerchantIDNotIn(vs ...string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNotIn(FieldMerchantID, vs...))
}

// MerchantIDGT applies the GT predicate on the "merchant_id" field.
func MerchantIDGT(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGT(FieldMerchantID, v))
}

// MerchantIDGTE applies the GTE predicate on the "merchant_id" field.
func MerchantIDGTE(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGTE(FieldMerchantID, v))
}

// MerchantIDLT applies the LT predicate on the "merchant_id" field.
func MerchantIDLT(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLT(FieldMerchantID, v))
}

// MerchantIDLTE applies the LTE predicate on the "merchant_id" field.
func MerchantIDLTE(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLTE(FieldMerchantID, v))
}

// MerchantIDContains applies the Contains predicate on the "merchant_id" field.
func MerchantIDContains(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldContains(FieldMerchantID, v))
}

// MerchantIDHasPrefix applies the HasPrefix predicate on the "merchant_id" field.
func MerchantIDHasPrefix(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldHasPrefix(FieldMerchantID, v))
}

// MerchantIDHasSuffix applies the HasSuffix predicate on the "merchant_id" field.
func MerchantIDHasSuffix(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldHasSuffix(FieldMerchantID, v))
}

// MerchantIDEqualFold applies the EqualFold predicate on the "merchant_id" field.
func MerchantIDEqualFold(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEqualFold(FieldMerchantID, v))
}

// MerchantIDContainsFold applies the ContainsFold predicate on the "merchant_id" field.
func MerchantIDContainsFold(v string) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldContainsFold(FieldMerchantID, v))
}

// TransactionAtEQ applies the EQ predicate on the "transaction_at" field.
func TransactionAtEQ(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldTransactionAt, v))
}

// TransactionAtNEQ applies the NEQ predicate on the "transaction_at" field.
func TransactionAtNEQ(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNEQ(FieldTransactionAt, v))
}

// TransactionAtIn applies the In predicate on the "transaction_at" field.
func TransactionAtIn(vs ...time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldIn(FieldTransactionAt, vs...))
}

// TransactionAtNotIn applies the NotIn predicate on the "transaction_at" field.
func TransactionAtNotIn(vs ...time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNotIn(FieldTransactionAt, vs...))
}

// TransactionAtGT applies the GT predicate on the "transaction_at" field.
func TransactionAtGT(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGT(FieldTransactionAt, v))
}

// TransactionAtGTE applies the GTE predicate on the "transaction_at" field.
func TransactionAtGTE(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGTE(FieldTransactionAt, v))
}

// TransactionAtLT applies the LT predicate on the "transaction_at" field.
func TransactionAtLT(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLT(FieldTransactionAt, v))
}

// TransactionAtLTE applies the LTE predicate on the "transaction_at" field.
func TransactionAtLTE(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLTE(FieldTransactionAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TransactionEmbedding) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TransactionEmbedding) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TransactionEmbedding) predicate.TransactionEmbedding {
	return predicate.TransactionEmbedding(sql.NotPredicates(p))
}
