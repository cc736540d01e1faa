// Code generated by ent, DO NOT EDIT.

package recommendation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fraudops/opsagent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldID, id))
}

// InsightID applies equality check predicate on the "insight_id" field. It's identical to InsightIDEQ.
func InsightID(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldInsightID, v))
}

// RecType applies equality check predicate on the "rec_type" field. It's identical to RecTypeEQ.
func RecType(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecType, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPriority, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldTitle, v))
}

// Impact applies equality check predicate on the "impact" field. It's identical to ImpactEQ.
func Impact(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldImpact, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUpdatedAt, v))
}

// InsightIDEQ applies the EQ predicate on the "insight_id" field.
func InsightIDEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldInsightID, v))
}

// InsightIDNEQ applies the NEQ predicate on the "insight_id" field.
func InsightIDNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldInsightID, v))
}

// InsightIDIn applies the In predicate on the "insight_id" field.
func InsightIDIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldInsightID, vs...))
}

// InsightIDNotIn applies the NotIn predicate on the "insight_id" field.
func InsightIDNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldInsightID, vs...))
}

// InsightIDGT applies the GT predicate on the "insight_id" field.
func InsightIDGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldInsightID, v))
}

// InsightIDGTE applies the GTE predicate on the "insight_id" field.
func InsightIDGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldInsightID, v))
}

// InsightIDLT applies the LT predicate on the "insight_id" field.
func InsightIDLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldInsightID, v))
}

// InsightIDLTE applies the LTE predicate on the "insight_id" field.
func InsightIDLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldInsightID, v))
}

// InsightIDContains applies the Contains predicate on the "insight_id" field.
func InsightIDContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldInsightID, v))
}

// InsightIDHasPrefix applies the HasPrefix predicate on the "insight_id" field.
func InsightIDHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldInsightID, v))
}

// InsightIDHasSuffix applies the HasSuffix predicate on the "insight_id" field.
func InsightIDHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldInsightID, v))
}

// InsightIDEqualFold applies the EqualFold predicate on the "insight_id" field.
func InsightIDEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldInsightID, v))
}

// InsightIDContainsFold applies the ContainsFold predicate on the "insight_id" field.
func InsightIDContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldInsightID, v))
}

// RecTypeEQ applies the EQ predicate on the "rec_type" field.
func RecTypeEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecType, v))
}

// RecTypeNEQ applies the NEQ predicate on the "rec_type" field.
func RecTypeNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldRecType, v))
}

// RecTypeIn applies the In predicate on the "rec_type" field.
func RecTypeIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldRecType, vs...))
}

// RecTypeNotIn applies the NotIn predicate on the "rec_type" field.
func RecTypeNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldRecType, vs...))
}

// RecTypeGT applies the GT predicate on the "rec_type" field.
func RecTypeGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldRecType, v))
}

// RecTypeGTE applies the GTE predicate on the "rec_type" field.
func RecTypeGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldRecType, v))
}

// RecTypeLT applies the LT predicate on the "rec_type" field.
func RecTypeLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldRecType, v))
}

// RecTypeLTE applies the LTE predicate on the "rec_type" field.
func RecTypeLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldRecType, v))
}

// RecTypeContains applies the Contains predicate on the "rec_type" field.
func RecTypeContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldRecType, v))
}

// RecTypeHasPrefix applies the HasPrefix predicate on the "rec_type" field.
func RecTypeHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldRecType, v))
}

// RecTypeHasSuffix applies the HasSuffix predicate on the "rec_type" field.
func RecTypeHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldRecType, v))
}

// RecTypeEqualFold applies the EqualFold predicate on the "rec_type" field.
func RecTypeEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldRecType, v))
}

// RecTypeContainsFold applies the ContainsFold predicate on the "rec_type" field.
func RecTypeContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldRecType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldPriority, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldTitle, v))
}

// ImpactEQ applies the EQ predicate on the "impact" field.
func ImpactEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldImpact, v))
}

// ImpactNEQ applies the NEQ predicate on the "impact" field.
func ImpactNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldImpact, v))
}

// ImpactIn applies the In predicate on the "impact" field.
func ImpactIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldImpact, vs...))
}

// ImpactNotIn applies the NotIn predicate on the "impact" field.
func ImpactNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldImpact, vs...))
}

// ImpactGT applies the GT predicate on the "impact" field.
func ImpactGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldImpact, v))
}

// ImpactGTE applies the GTE predicate on the "impact" field.
func ImpactGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldImpact, v))
}

// ImpactLT applies the LT predicate on the "impact" field.
func ImpactLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldImpact, v))
}

// ImpactLTE applies the LTE predicate on the "impact" field.
func ImpactLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldImpact, v))
}

// ImpactContains applies the Contains predicate on the "impact" field.
func ImpactContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldImpact, v))
}

// ImpactHasPrefix applies the HasPrefix predicate on the "impact" field.
func ImpactHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldImpact, v))
}

// ImpactHasSuffix applies the HasSuffix predicate on the "impact" field.
func ImpactHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldImpact, v))
}

// ImpactIsNil applies the IsNil predicate on the "impact" field.
func ImpactIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldImpact))
}

// ImpactNotNil applies the NotNil predicate on the "impact" field.
func ImpactNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldImpact))
}

// ImpactEqualFold applies the EqualFold predicate on the "impact" field.
func ImpactEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldImpact, v))
}

// ImpactContainsFold applies the ContainsFold predicate on the "impact" field.
func ImpactContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldImpact, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldComment, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldSeverity, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInsight applies the HasEdge predicate on the "insight" edge.
func HasInsight() predicate.Recommendation {
	return predicate.Recommendation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InsightTable, InsightColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsightWith applies the HasEdge predicate on the "insight" edge with a given conditions (other predicates).
func HasInsightWith(preds ...predicate.Insight) predicate.Recommendation {
	return predicate.Recommendation(func(s *sql.Selector) {
		step := newInsightStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.NotPredicates(p))
}
