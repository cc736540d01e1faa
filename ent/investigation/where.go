// Code generated by ent, DO NOT EDIT.

package investigation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fraudops/opsagent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldID, id))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTransactionID, v))
}

// FinalConfidence applies equality check predicate on the "final_confidence" field. It's identical to FinalConfidenceEQ.
func FinalConfidence(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldFinalConfidence, v))
}

// StepCount applies equality check predicate on the "step_count" field. It's identical to StepCountEQ.
func StepCount(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStepCount, v))
}

// MaxSteps applies equality check predicate on the "max_steps" field. It's identical to MaxStepsEQ.
func MaxSteps(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldMaxSteps, v))
}

// PlannerModel applies equality check predicate on the "planner_model" field. It's identical to PlannerModelEQ.
func PlannerModel(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPlannerModel, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCaseID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDeletedAt, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDContains applies the Contains predicate on the "transaction_id" field.
func TransactionIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldTransactionID, v))
}

// TransactionIDHasPrefix applies the HasPrefix predicate on the "transaction_id" field.
func TransactionIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldTransactionID, v))
}

// TransactionIDHasSuffix applies the HasSuffix predicate on the "transaction_id" field.
func TransactionIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldTransactionID, v))
}

// TransactionIDEqualFold applies the EqualFold predicate on the "transaction_id" field.
func TransactionIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldTransactionID, v))
}

// TransactionIDContainsFold applies the ContainsFold predicate on the "transaction_id" field.
func TransactionIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldTransactionID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStatus, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldSeverity))
}

// FinalConfidenceEQ applies the EQ predicate on the "final_confidence" field.
func FinalConfidenceEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldFinalConfidence, v))
}

// FinalConfidenceNEQ applies the NEQ predicate on the "final_confidence" field.
func FinalConfidenceNEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldFinalConfidence, v))
}

// FinalConfidenceIn applies the In predicate on the "final_confidence" field.
func FinalConfidenceIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldFinalConfidence, vs...))
}

// FinalConfidenceNotIn applies the NotIn predicate on the "final_confidence" field.
func FinalConfidenceNotIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldFinalConfidence, vs...))
}

// FinalConfidenceGT applies the GT predicate on the "final_confidence" field.
func FinalConfidenceGT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldFinalConfidence, v))
}

// FinalConfidenceGTE applies the GTE predicate on the "final_confidence" field.
func FinalConfidenceGTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldFinalConfidence, v))
}

// FinalConfidenceLT applies the LT predicate on the "final_confidence" field.
func FinalConfidenceLT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldFinalConfidence, v))
}

// FinalConfidenceLTE applies the LTE predicate on the "final_confidence" field.
func FinalConfidenceLTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldFinalConfidence, v))
}

// FinalConfidenceIsNil applies the IsNil predicate on the "final_confidence" field.
func FinalConfidenceIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldFinalConfidence))
}

// FinalConfidenceNotNil applies the NotNil predicate on the "final_confidence" field.
func FinalConfidenceNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldFinalConfidence))
}

// StepCountEQ applies the EQ predicate on the "step_count" field.
func StepCountEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStepCount, v))
}

// StepCountNEQ applies the NEQ predicate on the "step_count" field.
func StepCountNEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStepCount, v))
}

// StepCountIn applies the In predicate on the "step_count" field.
func StepCountIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStepCount, vs...))
}

// StepCountNotIn applies the NotIn predicate on the "step_count" field.
func StepCountNotIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStepCount, vs...))
}

// StepCountGT applies the GT predicate on the "step_count" field.
func StepCountGT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldStepCount, v))
}

// StepCountGTE applies the GTE predicate on the "step_count" field.
func StepCountGTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldStepCount, v))
}

// StepCountLT applies the LT predicate on the "step_count" field.
func StepCountLT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldStepCount, v))
}

// StepCountLTE applies the LTE predicate on the "step_count" field.
func StepCountLTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldStepCount, v))
}

// MaxStepsEQ applies the EQ predicate on the "max_steps" field.
func MaxStepsEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldMaxSteps, v))
}

// MaxStepsNEQ applies the NEQ predicate on the "max_steps" field.
func MaxStepsNEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldMaxSteps, v))
}

// MaxStepsIn applies the In predicate on the "max_steps" field.
func MaxStepsIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldMaxSteps, vs...))
}

// MaxStepsNotIn applies the NotIn predicate on the "max_steps" field.
func MaxStepsNotIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldMaxSteps, vs...))
}

// MaxStepsGT applies the GT predicate on the "max_steps" field.
func MaxStepsGT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldMaxSteps, v))
}

// MaxStepsGTE applies the GTE predicate on the "max_steps" field.
func MaxStepsGTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldMaxSteps, v))
}

// MaxStepsLT applies the LT predicate on the "max_steps" field.
func MaxStepsLT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldMaxSteps, v))
}

// MaxStepsLTE applies the LTE predicate on the "max_steps" field.
func MaxStepsLTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldMaxSteps, v))
}

// PlannerModelEQ applies the EQ predicate on the "planner_model" field.
func PlannerModelEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPlannerModel, v))
}

// PlannerModelNEQ applies the NEQ predicate on the "planner_model" field.
func PlannerModelNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldPlannerModel, v))
}

// PlannerModelIn applies the In predicate on the "planner_model" field.
func PlannerModelIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldPlannerModel, vs...))
}

// PlannerModelNotIn applies the NotIn predicate on the "planner_model" field.
func PlannerModelNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldPlannerModel, vs...))
}

// PlannerModelGT applies the GT predicate on the "planner_model" field.
func PlannerModelGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldPlannerModel, v))
}

// PlannerModelGTE applies the GTE predicate on the "planner_model" field.
func PlannerModelGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldPlannerModel, v))
}

// PlannerModelLT applies the LT predicate on the "planner_model" field.
func PlannerModelLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldPlannerModel, v))
}

// PlannerModelLTE applies the LTE predicate on the "planner_model" field.
func PlannerModelLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldPlannerModel, v))
}

// PlannerModelContains applies the Contains predicate on the "planner_model" field.
func PlannerModelContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldPlannerModel, v))
}

// PlannerModelHasPrefix applies the HasPrefix predicate on the "planner_model" field.
func PlannerModelHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldPlannerModel, v))
}

// PlannerModelHasSuffix applies the HasSuffix predicate on the "planner_model" field.
func PlannerModelHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldPlannerModel, v))
}

// PlannerModelIsNil applies the IsNil predicate on the "planner_model" field.
func PlannerModelIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldPlannerModel))
}

// PlannerModelNotNil applies the NotNil predicate on the "planner_model" field.
func PlannerModelNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldPlannerModel))
}

// PlannerModelEqualFold applies the EqualFold predicate on the "planner_model" field.
func PlannerModelEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldPlannerModel, v))
}

// PlannerModelContainsFold applies the ContainsFold predicate on the "planner_model" field.
func PlannerModelContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldPlannerModel, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDIsNil applies the IsNil predicate on the "case_id" field.
func CaseIDIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldCaseID))
}

// CaseIDNotNil applies the NotNil predicate on the "case_id" field.
func CaseIDNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldCaseID))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldCaseID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldDeletedAt))
}

// HasToolExecutions applies the HasEdge predicate on the "tool_executions" edge.
func HasToolExecutions() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolExecutionsWith applies the HasEdge predicate on the "tool_executions" edge with a given conditions (other predicates).
func HasToolExecutionsWith(preds ...predicate.ToolExecutionLog) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newToolExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInsights applies the HasEdge predicate on the "insights" edge.
func HasInsights() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsightsWith applies the HasEdge predicate on the "insights" edge with a given conditions (other predicates).
func HasInsightsWith(preds ...predicate.Insight) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newInsightsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuleDrafts applies the HasEdge predicate on the "rule_drafts" edge.
func HasRuleDrafts() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RuleDraftsTable, RuleDraftsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleDraftsWith applies the HasEdge predicate on the "rule_drafts" edge with a given conditions (other predicates).
func HasRuleDraftsWith(preds ...predicate.RuleDraft) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newRuleDraftsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.NotPredicates(p))
}
