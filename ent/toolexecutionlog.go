// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
)

// ToolExecutionLog is the model entity for the ToolExecutionLog schema.
type ToolExecutionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InvestigationID holds the value of the "investigation_id" field.
	InvestigationID string `json:"investigation_id,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// Execution order within the investigation, 1-based
	StepNumber int `json:"step_number,omitempty"`
	// Status holds the value of the "status" field.
	Status toolexecutionlog.Status `json:"status,omitempty"`
	// InputSummary holds the value of the "input_summary" field.
	InputSummary string `json:"input_summary,omitempty"`
	// OutputSummary holds the value of the "output_summary" field.
	OutputSummary string `json:"output_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs int `json:"execution_time_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ToolExecutionLogQuery when eager-loading is set.
	Edges        ToolExecutionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ToolExecutionLogEdges holds the relations/edges for other nodes in the graph.
type ToolExecutionLogEdges struct {
	// Investigation holds the value of the investigation edge.
	Investigation *Investigation `json:"investigation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvestigationOrErr returns the Investigation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToolExecutionLogEdges) InvestigationOrErr() (*Investigation, error) {
	if e.Investigation != nil {
		return e.Investigation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: investigation.Label}
	}
	return nil, &NotLoadedError{edge: "investigation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolExecutionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolexecutionlog.FieldStepNumber, toolexecutionlog.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case toolexecutionlog.FieldID, toolexecutionlog.FieldInvestigationID, toolexecutionlog.FieldToolName, toolexecutionlog.FieldStatus, toolexecutionlog.FieldInputSummary, toolexecutionlog.FieldOutputSummary, toolexecutionlog.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case toolexecutionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolExecutionLog fields.
func (_m *ToolExecutionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolexecutionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolexecutionlog.FieldInvestigationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investigation_id", values[i])
			} else if value.Valid {
				_m.InvestigationID = value.String
			}
		case toolexecutionlog.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case toolexecutionlog.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case toolexecutionlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = toolexecutionlog.Status(value.String)
			}
		case toolexecutionlog.FieldInputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_summary", values[i])
			} else if value.Valid {
				_m.InputSummary = value.String
			}
		case toolexecutionlog.FieldOutputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_summary", values[i])
			} else if value.Valid {
				_m.OutputSummary = value.String
			}
		case toolexecutionlog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case toolexecutionlog.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = int(value.Int64)
			}
		case toolexecutionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ToolExecutionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ToolExecutionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvestigation queries the "investigation" edge of the ToolExecutionLog entity.
func (_m *ToolExecutionLog) QueryInvestigation() *InvestigationQuery {
	return NewToolExecutionLogClient(_m.config).QueryInvestigation(_m)
}

// Update returns a builder for updating this ToolExecutionLog.
// Note that you need to call ToolExecutionLog.Unwrap() before calling this method if this ToolExecutionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolExecutionLog) Update() *ToolExecutionLogUpdateOne {
	return NewToolExecutionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolExecutionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolExecutionLog) Unwrap() *ToolExecutionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolExecutionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolExecutionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ToolExecutionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("investigation_id=")
	builder.WriteString(_m.InvestigationID)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("step_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNumber))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("input_summary=")
	builder.WriteString(_m.InputSummary)
	builder.WriteString(", ")
	builder.WriteString("output_summary=")
	builder.WriteString(_m.OutputSummary)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("execution_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTimeMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolExecutionLogs is a parsable slice of ToolExecutionLog.
type ToolExecutionLogs []*ToolExecutionLog
