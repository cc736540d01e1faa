// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/investigation"
)

// Investigation is the model entity for the Investigation schema.
type Investigation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// External transaction identifier being investigated
	TransactionID string `json:"transaction_id,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode investigation.Mode `json:"mode,omitempty"`
	// Status holds the value of the "status" field.
	Status investigation.Status `json:"status,omitempty"`
	// Final aggregated severity, set by the completion node
	Severity *investigation.Severity `json:"severity,omitempty"`
	// Weighted confidence in [0,1]
	FinalConfidence *float64 `json:"final_confidence,omitempty"`
	// StepCount holds the value of the "step_count" field.
	StepCount int `json:"step_count,omitempty"`
	// MaxSteps holds the value of the "max_steps" field.
	MaxSteps int `json:"max_steps,omitempty"`
	// PlannerModel holds the value of the "planner_model" field.
	PlannerModel *string `json:"planner_model,omitempty"`
	// Optional upstream case reference from the run request
	CaseID *string `json:"case_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// First planner invocation (pending -> in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvestigationQuery when eager-loading is set.
	Edges        InvestigationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvestigationEdges holds the relations/edges for other nodes in the graph.
type InvestigationEdges struct {
	// ToolExecutions holds the value of the tool_executions edge.
	ToolExecutions []*ToolExecutionLog `json:"tool_executions,omitempty"`
	// Insights holds the value of the insights edge.
	Insights []*Insight `json:"insights,omitempty"`
	// RuleDrafts holds the value of the rule_drafts edge.
	RuleDrafts []*RuleDraft `json:"rule_drafts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ToolExecutionsOrErr returns the ToolExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) ToolExecutionsOrErr() ([]*ToolExecutionLog, error) {
	if e.loadedTypes[0] {
		return e.ToolExecutions, nil
	}
	return nil, &NotLoadedError{edge: "tool_executions"}
}

// InsightsOrErr returns the Insights value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) InsightsOrErr() ([]*Insight, error) {
	if e.loadedTypes[1] {
		return e.Insights, nil
	}
	return nil, &NotLoadedError{edge: "insights"}
}

// RuleDraftsOrErr returns the RuleDrafts value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) RuleDraftsOrErr() ([]*RuleDraft, error) {
	if e.loadedTypes[2] {
		return e.RuleDrafts, nil
	}
	return nil, &NotLoadedError{edge: "rule_drafts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Investigation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case investigation.FieldFinalConfidence:
			values[i] = new(sql.NullFloat64)
		case investigation.FieldStepCount, investigation.FieldMaxSteps:
			values[i] = new(sql.NullInt64)
		case investigation.FieldID, investigation.FieldTransactionID, investigation.FieldMode, investigation.FieldStatus, investigation.FieldSeverity, investigation.FieldPlannerModel, investigation.FieldCaseID, investigation.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case investigation.FieldCreatedAt, investigation.FieldStartedAt, investigation.FieldCompletedAt, investigation.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Investigation fields.
func (_m *Investigation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case investigation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case investigation.FieldTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = value.String
			}
		case investigation.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = investigation.Mode(value.String)
			}
		case investigation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = investigation.Status(value.String)
			}
		case investigation.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = new(investigation.Severity)
				*_m.Severity = investigation.Severity(value.String)
			}
		case investigation.FieldFinalConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_confidence", values[i])
			} else if value.Valid {
				_m.FinalConfidence = new(float64)
				*_m.FinalConfidence = value.Float64
			}
		case investigation.FieldStepCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_count", values[i])
			} else if value.Valid {
				_m.StepCount = int(value.Int64)
			}
		case investigation.FieldMaxSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_steps", values[i])
			} else if value.Valid {
				_m.MaxSteps = int(value.Int64)
			}
		case investigation.FieldPlannerModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field planner_model", values[i])
			} else if value.Valid {
				_m.PlannerModel = new(string)
				*_m.PlannerModel = value.String
			}
		case investigation.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = new(string)
				*_m.CaseID = value.String
			}
		case investigation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case investigation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case investigation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case investigation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case investigation.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Investigation.
// This includes values selected through modifiers, order, etc.
func (_m *Investigation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryToolExecutions queries the "tool_executions" edge of the Investigation entity.
func (_m *Investigation) QueryToolExecutions() *ToolExecutionLogQuery {
	return NewInvestigationClient(_m.config).QueryToolExecutions(_m)
}

// QueryInsights queries the "insights" edge of the Investigation entity.
func (_m *Investigation) QueryInsights() *InsightQuery {
	return NewInvestigationClient(_m.config).QueryInsights(_m)
}

// QueryRuleDrafts queries the "rule_drafts" edge of the Investigation entity.
func (_m *Investigation) QueryRuleDrafts() *RuleDraftQuery {
	return NewInvestigationClient(_m.config).QueryRuleDrafts(_m)
}

// Update returns a builder for updating this Investigation.
// Note that you need to call Investigation.Unwrap() before calling this method if this Investigation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Investigation) Update() *InvestigationUpdateOne {
	return NewInvestigationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Investigation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Investigation) Unwrap() *Investigation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Investigation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Investigation) String() string {
	var builder strings.Builder
	builder.WriteString("Investigation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("transaction_id=")
	builder.WriteString(_m.TransactionID)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Severity; v != nil {
		builder.WriteString("severity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinalConfidence; v != nil {
		builder.WriteString("final_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("step_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepCount))
	builder.WriteString(", ")
	builder.WriteString("max_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxSteps))
	builder.WriteString(", ")
	if v := _m.PlannerModel; v != nil {
		builder.WriteString("planner_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CaseID; v != nil {
		builder.WriteString("case_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Investigations is a parsable slice of Investigation.
type Investigations []*Investigation
