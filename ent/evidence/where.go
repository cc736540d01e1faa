// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fraudops/opsagent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldID, id))
}

// InsightID applies equality check predicate on the "insight_id" field. It's identical to InsightIDEQ.
func InsightID(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldInsightID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCategory, v))
}

// SourceTool applies equality check predicate on the "source_tool" field. It's identical to SourceToolEQ.
func SourceTool(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldSourceTool, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCreatedAt, v))
}

// InsightIDEQ applies the EQ predicate on the "insight_id" field.
func InsightIDEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldInsightID, v))
}

// InsightIDNEQ applies the NEQ predicate on the "insight_id" field.
func InsightIDNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldInsightID, v))
}

// InsightIDIn applies the In predicate on the "insight_id" field.
func InsightIDIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldInsightID, vs...))
}

// InsightIDNotIn applies the NotIn predicate on the "insight_id" field.
func InsightIDNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldInsightID, vs...))
}

// InsightIDGT applies the GT predicate on the "insight_id" field.
func InsightIDGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldInsightID, v))
}

// InsightIDGTE applies the GTE predicate on the "insight_id" field.
func InsightIDGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldInsightID, v))
}

// InsightIDLT applies the LT predicate on the "insight_id" field.
func InsightIDLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldInsightID, v))
}

// InsightIDLTE applies the LTE predicate on the "insight_id" field.
func InsightIDLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldInsightID, v))
}

// InsightIDContains applies the Contains predicate on the "insight_id" field.
func InsightIDContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldInsightID, v))
}

// InsightIDHasPrefix applies the HasPrefix predicate on the "insight_id" field.
func InsightIDHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldInsightID, v))
}

// InsightIDHasSuffix applies the HasSuffix predicate on the "insight_id" field.
func InsightIDHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldInsightID, v))
}

// InsightIDEqualFold applies the EqualFold predicate on the "insight_id" field.
func InsightIDEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldInsightID, v))
}

// InsightIDContainsFold applies the ContainsFold predicate on the "insight_id" field.
func InsightIDContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldInsightID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldCategory, v))
}

// SourceToolEQ applies the EQ predicate on the "source_tool" field.
func SourceToolEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldSourceTool, v))
}

// SourceToolNEQ applies the NEQ predicate on the "source_tool" field.
func SourceToolNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldSourceTool, v))
}

// SourceToolIn applies the In predicate on the "source_tool" field.
func SourceToolIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldSourceTool, vs...))
}

// SourceToolNotIn applies the NotIn predicate on the "source_tool" field.
func SourceToolNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldSourceTool, vs...))
}

// SourceToolGT applies the GT predicate on the "source_tool" field.
func SourceToolGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldSourceTool, v))
}

// SourceToolGTE applies the GTE predicate on the "source_tool" field.
func SourceToolGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldSourceTool, v))
}

// SourceToolLT applies the LT predicate on the "source_tool" field.
func SourceToolLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldSourceTool, v))
}

// SourceToolLTE applies the LTE predicate on the "source_tool" field.
func SourceToolLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldSourceTool, v))
}

// SourceToolContains applies the Contains predicate on the "source_tool" field.
func SourceToolContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldSourceTool, v))
}

// SourceToolHasPrefix applies the HasPrefix predicate on the "source_tool" field.
func SourceToolHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldSourceTool, v))
}

// SourceToolHasSuffix applies the HasSuffix predicate on the "source_tool" field.
func SourceToolHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldSourceTool, v))
}

// SourceToolEqualFold applies the EqualFold predicate on the "source_tool" field.
func SourceToolEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldSourceTool, v))
}

// SourceToolContainsFold applies the ContainsFold predicate on the "source_tool" field.
func SourceToolContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldSourceTool, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInsight applies the HasEdge predicate on the "insight" edge.
func HasInsight() predicate.Evidence {
	return predicate.Evidence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InsightTable, InsightColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsightWith applies the HasEdge predicate on the "insight" edge with a given conditions (other predicates).
func HasInsightWith(preds ...predicate.Insight) predicate.Evidence {
	return predicate.Evidence(func(s *sql.Selector) {
		step := newInsightStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.NotPredicates(p))
}
