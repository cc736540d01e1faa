// Code generated by ent, DO NOT EDIT.

package ruledraft

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fraudops/opsagent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldContainsFold(FieldID, id))
}

// InvestigationID applies equality check predicate on the "investigation_id" field. It's identical to InvestigationIDEQ.
func InvestigationID(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldInvestigationID, v))
}

// RuleName applies equality check predicate on the "rule_name" field. It's identical to RuleNameEQ.
func RuleName(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldRuleName, v))
}

// RuleDescription applies equality check predicate on the "rule_description" field. It's identical to RuleDescriptionEQ.
func RuleDescription(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldRuleDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldUpdatedAt, v))
}

// InvestigationIDEQ applies the EQ predicate on the "investigation_id" field.
func InvestigationIDEQ(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldInvestigationID, v))
}

// InvestigationIDNEQ applies the NEQ predicate on the "investigation_id" field.
func InvestigationIDNEQ(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNEQ(FieldInvestigationID, v))
}

// InvestigationIDIn applies the In predicate on the "investigation_id" field.
func InvestigationIDIn(vs ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldIn(FieldInvestigationID, vs...))
}

// InvestigationIDNotIn applies the NotIn predicate on the "investigation_id" field.
func InvestigationIDNotIn(vs ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNotIn(FieldInvestigationID, vs...))
}

// InvestigationIDGT applies the GT predicate on the "investigation_id" field.
func InvestigationIDGT(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGT(FieldInvestigationID, v))
}

// InvestigationIDGTE applies the GTE predicate on the "investigation_id" field.
func InvestigationIDGTE(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGTE(FieldInvestigationID, v))
}

// InvestigationIDLT applies the LT predicate on the "investigation_id" field.
func InvestigationIDLT(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLT(FieldInvestigationID, v))
}

// InvestigationIDLTE applies the LTE predicate on the "investigation_id" field.
func InvestigationIDLTE(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLTE(FieldInvestigationID, v))
}

// InvestigationIDContains applies the Contains predicate on the "investigation_id" field.
func InvestigationIDContains(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldContains(FieldInvestigationID, v))
}

// InvestigationIDHasPrefix applies the HasPrefix predicate on the "investigation_id" field.
func InvestigationIDHasPrefix(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldHasPrefix(FieldInvestigationID, v))
}

// InvestigationIDHasSuffix applies the HasSuffix predicate on the "investigation_id" field.
func InvestigationIDHasSuffix(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldHasSuffix(FieldInvestigationID, v))
}

// InvestigationIDEqualFold applies the EqualFold predicate on the "investigation_id" field.
func InvestigationIDEqualFold(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEqualFold(FieldInvestigationID, v))
}

// InvestigationIDContainsFold applies the ContainsFold predicate on the "investigation_id" field.
func InvestigationIDContainsFold(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldContainsFold(FieldInvestigationID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNotIn(FieldStatus, vs...))
}

// RuleNameEQ applies the EQ predicate on the "rule_name" field.
func RuleNameEQ(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldRuleName, v))
}

// RuleNameNEQ applies the NEQ predicate on the "rule_name" field.
func RuleNameNEQ(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNEQ(FieldRuleName, v))
}

// RuleNameIn applies the In predicate on the "rule_name" field.
func RuleNameIn(vs ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldIn(FieldRuleName, vs...))
}

// RuleNameNotIn applies the NotIn predicate on the "rule_name" field.
func RuleNameNotIn(vs ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNotIn(FieldRuleName, vs...))
}

// RuleNameGT applies the GT predicate on the "rule_name" field.
func RuleNameGT(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGT(FieldRuleName, v))
}

// RuleNameGTE applies the GTE predicate on the "rule_name" field.
func RuleNameGTE(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGTE(FieldRuleName, v))
}

// RuleNameLT applies the LT predicate on the "rule_name" field.
func RuleNameLT(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLT(FieldRuleName, v))
}

// RuleNameLTE applies the LTE predicate on the "rule_name" field.
func RuleNameLTE(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLTE(FieldRuleName, v))
}

// RuleNameContains applies the Contains predicate on the "rule_name" field.
func RuleNameContains(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldContains(FieldRuleName, v))
}

// RuleNameHasPrefix applies the HasPrefix predicate on the "rule_name" field.
func RuleNameHasPrefix(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldHasPrefix(FieldRuleName, v))
}

// RuleNameHasSuffix applies the HasSuffix predicate on the "rule_name" field.
func RuleNameHasSuffix(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldHasSuffix(FieldRuleName, v))
}

// RuleNameEqualFold applies the EqualFold predicate on the "rule_name" field.
func RuleNameEqualFold(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEqualFold(FieldRuleName, v))
}

// RuleNameContainsFold applies the ContainsFold predicate on the "rule_name" field.
func RuleNameContainsFold(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldContainsFold(FieldRuleName, v))
}

// RuleDescriptionEQ applies the EQ predicate on the "rule_description" field.
func RuleDescriptionEQ(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldRuleDescription, v))
}

// RuleDescriptionNEQ applies the NEQ predicate on the "rule_description" field.
func RuleDescriptionNEQ(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNEQ(FieldRuleDescription, v))
}

// RuleDescriptionIn applies the In predicate on the "rule_description" field.
func RuleDescriptionIn(vs ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldIn(FieldRuleDescription, vs...))
}

// RuleDescriptionNotIn applies the NotIn predicate on the "rule_description" field.
func RuleDescriptionNotIn(vs ...string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNotIn(FieldRuleDescription, vs...))
}

// RuleDescriptionGT applies the GT predicate on the "rule_description" field.
func RuleDescriptionGT(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGT(FieldRuleDescription, v))
}

// RuleDescriptionGTE applies the GTE predicate on the "rule_description" field.
func RuleDescriptionGTE(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGTE(FieldRuleDescription, v))
}

// RuleDescriptionLT applies the LT predicate on the "rule_description" field.
func RuleDescriptionLT(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLT(FieldRuleDescription, v))
}

// RuleDescriptionLTE applies the LTE predicate on the "rule_description" field.
func RuleDescriptionLTE(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLTE(FieldRuleDescription, v))
}

// RuleDescriptionContains applies the Contains predicate on the "rule_description" field.
func RuleDescriptionContains(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldContains(FieldRuleDescription, v))
}

// RuleDescriptionHasPrefix applies the HasPrefix predicate on the "rule_description" field.
func RuleDescriptionHasPrefix(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldHasPrefix(FieldRuleDescription, v))
}

// RuleDescriptionHasSuffix applies the HasSuffix predicate on the "rule_description" field.
func RuleDescriptionHasSuffix(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldHasSuffix(FieldRuleDescription, v))
}

// RuleDescriptionEqualFold applies the EqualFold predicate on the "rule_description" field.
func RuleDescriptionEqualFold(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEqualFold(FieldRuleDescription, v))
}

// RuleDescriptionContainsFold applies the ContainsFold predicate on the "rule_description" field.
func RuleDescriptionContainsFold(v string) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldContainsFold(FieldRuleDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RuleDraft {
	return predicate.RuleDraft(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInvestigation applies the HasEdge predicate on the "investigation" edge.
func HasInvestigation() predicate.RuleDraft {
	return predicate.RuleDraft(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestigationWith applies the HasEdge predicate on the "investigation" edge with a given conditions (other predicates).
func HasInvestigationWith(preds ...predicate.Investigation) predicate.RuleDraft {
	return predicate.RuleDraft(func(s *sql.Selector) {
		step := newInvestigationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RuleDraft) predicate.RuleDraft {
	return predicate.RuleDraft(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RuleDraft) predicate.RuleDraft {
	return predicate.RuleDraft(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RuleDraft) predicate.RuleDraft {
	return predicate.RuleDraft(sql.NotPredicates(p))
}
