// Code generated by ent, DO NOT EDIT.

package toolexecutionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fraudops/opsagent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContainsFold(FieldID, id))
}

// InvestigationID applies equality check predicate on the "investigation_id" field. It's identical to InvestigationIDEQ.
func InvestigationID(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldInvestigationID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldToolName, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldStepNumber, v))
}

// InputSummary applies equality check predicate on the "input_summary" field. It's identical to InputSummaryEQ.
func InputSummary(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldInputSummary, v))
}

// OutputSummary applies equality check predicate on the "output_summary" field. It's identical to OutputSummaryEQ.
func OutputSummary(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldOutputSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// InvestigationIDEQ applies the EQ predicate on the "investigation_id" field.
func InvestigationIDEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldInvestigationID, v))
}

// InvestigationIDNEQ applies the NEQ predicate on the "investigation_id" field.
func InvestigationIDNEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldInvestigationID, v))
}

// InvestigationIDIn applies the In predicate on the "investigation_id" field.
func InvestigationIDIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldInvestigationID, vs...))
}

// InvestigationIDNotIn applies the NotIn predicate on the "investigation_id" field.
func InvestigationIDNotIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldInvestigationID, vs...))
}

// InvestigationIDGT applies the GT predicate on the "investigation_id" field.
func InvestigationIDGT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldInvestigationID, v))
}

// InvestigationIDGTE applies the GTE predicate on the "investigation_id" field.
func InvestigationIDGTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldInvestigationID, v))
}

// InvestigationIDLT applies the LT predicate on the "investigation_id" field.
func InvestigationIDLT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldInvestigationID, v))
}

// InvestigationIDLTE applies the LTE predicate on the "investigation_id" field.
func InvestigationIDLTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldInvestigationID, v))
}

// InvestigationIDContains applies the Contains predicate on the "investigation_id" field.
func InvestigationIDContains(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContains(FieldInvestigationID, v))
}

// InvestigationIDHasPrefix applies the HasPrefix predicate on the "investigation_id" field.
func InvestigationIDHasPrefix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasPrefix(FieldInvestigationID, v))
}

// InvestigationIDHasSuffix applies the HasSuffix predicate on the "investigation_id" field.
func InvestigationIDHasSuffix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasSuffix(FieldInvestigationID, v))
}

// InvestigationIDEqualFold applies the EqualFold predicate on the "investigation_id" field.
func InvestigationIDEqualFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEqualFold(FieldInvestigationID, v))
}

// InvestigationIDContainsFold applies the ContainsFold predicate on the "investigation_id" field.
func InvestigationIDContainsFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContainsFold(FieldInvestigationID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContainsFold(FieldToolName, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldStepNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldStatus, vs...))
}

// InputSummaryEQ applies the EQ predicate on the "input_summary" field.
func InputSummaryEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldInputSummary, v))
}

// InputSummaryNEQ applies the NEQ predicate on the "input_summary" field.
func InputSummaryNEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldInputSummary, v))
}

// InputSummaryIn applies the In predicate on the "input_summary" field.
func InputSummaryIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldInputSummary, vs...))
}

// InputSummaryNotIn applies the NotIn predicate on the "input_summary" field.
func InputSummaryNotIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldInputSummary, vs...))
}

// InputSummaryGT applies the GT predicate on the "input_summary" field.
func InputSummaryGT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldInputSummary, v))
}

// InputSummaryGTE applies the GTE predicate on the "input_summary" field.
func InputSummaryGTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldInputSummary, v))
}

// InputSummaryLT applies the LT predicate on the "input_summary" field.
func InputSummaryLT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldInputSummary, v))
}

// InputSummaryLTE applies the LTE predicate on the "input_summary" field.
func InputSummaryLTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldInputSummary, v))
}

// InputSummaryContains applies the Contains predicate on the "input_summary" field.
func InputSummaryContains(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContains(FieldInputSummary, v))
}

// InputSummaryHasPrefix applies the HasPrefix predicate on the "input_summary" field.
func InputSummaryHasPrefix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasPrefix(FieldInputSummary, v))
}

// InputSummaryHasSuffix applies the HasSuffix predicate on the "input_summary" field.
func InputSummaryHasSuffix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasSuffix(FieldInputSummary, v))
}

// InputSummaryIsNil applies the IsNil predicate on the "input_summary" field.
func InputSummaryIsNil() predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIsNull(FieldInputSummary))
}

// InputSummaryNotNil applies the NotNil predicate on the "input_summary" field.
func InputSummaryNotNil() predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotNull(FieldInputSummary))
}

// InputSummaryEqualFold applies the EqualFold predicate on the "input_summary" field.
func InputSummaryEqualFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEqualFold(FieldInputSummary, v))
}

// InputSummaryContainsFold applies the ContainsFold predicate on the "input_summary" field.
func InputSummaryContainsFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContainsFold(FieldInputSummary, v))
}

// OutputSummaryEQ applies the EQ predicate on the "output_summary" field.
func OutputSummaryEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldOutputSummary, v))
}

// OutputSummaryNEQ applies the NEQ predicate on the "output_summary" field.
func OutputSummaryNEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldOutputSummary, v))
}

// OutputSummaryIn applies the In predicate on the "output_summary" field.
func OutputSummaryIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldOutputSummary, vs...))
}

// OutputSummaryNotIn applies the NotIn predicate on the "output_summary" field.
func OutputSummaryNotIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldOutputSummary, vs...))
}

// OutputSummaryGT applies the GT predicate on the "output_summary" field.
func OutputSummaryGT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldOutputSummary, v))
}

// OutputSummaryGTE applies the GTE predicate on the "output_summary" field.
func OutputSummaryGTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldOutputSummary, v))
}

// OutputSummaryLT applies the LT predicate on the "output_summary" field.
func OutputSummaryLT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldOutputSummary, v))
}

// OutputSummaryLTE applies the LTE predicate on the "output_summary" field.
func OutputSummaryLTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldOutputSummary, v))
}

// OutputSummaryContains applies the Contains predicate on the "output_summary" field.
func OutputSummaryContains(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContains(FieldOutputSummary, v))
}

// OutputSummaryHasPrefix applies the HasPrefix predicate on the "output_summary" field.
func OutputSummaryHasPrefix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasPrefix(FieldOutputSummary, v))
}

// OutputSummaryHasSuffix applies the HasSuffix predicate on the "output_summary" field.
func OutputSummaryHasSuffix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasSuffix(FieldOutputSummary, v))
}

// OutputSummaryIsNil applies the IsNil predicate on the "output_summary" field.
func OutputSummaryIsNil() predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIsNull(FieldOutputSummary))
}

// OutputSummaryNotNil applies the NotNil predicate on the "output_summary" field.
func OutputSummaryNotNil() predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotNull(FieldOutputSummary))
}

// OutputSummaryEqualFold applies the EqualFold predicate on the "output_summary" field.
func OutputSummaryEqualFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEqualFold(FieldOutputSummary, v))
}

// OutputSummaryContainsFold applies the ContainsFold predicate on the "output_summary" field.
func OutputSummaryContainsFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContainsFold(FieldOutputSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInvestigation applies the HasEdge predicate on the "investigation" edge.
func HasInvestigation() predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestigationWith applies the HasEdge predicate on the "investigation" edge with a given conditions (other predicates).
func HasInvestigationWith(preds ...predicate.Investigation) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(func(s *sql.Selector) {
		step := newInvestigationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolExecutionLog) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolExecutionLog) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolExecutionLog) predicate.ToolExecutionLog {
	return predicate.ToolExecutionLog(sql.NotPredicates(p))
}
