// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/ruledraft"
)

// RuleDraft is the model entity for the RuleDraft schema.
type RuleDraft struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InvestigationID holds the value of the "investigation_id" field.
	InvestigationID string `json:"investigation_id,omitempty"`
	// Status holds the value of the "status" field.
	Status ruledraft.Status `json:"status,omitempty"`
	// RuleName holds the value of the "rule_name" field.
	RuleName string `json:"rule_name,omitempty"`
	// RuleDescription holds the value of the "rule_description" field.
	RuleDescription string `json:"rule_description,omitempty"`
	// conditions[], thresholds{}, metadata{} per RuleDraftPayload
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RuleDraftQuery when eager-loading is set.
	Edges        RuleDraftEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RuleDraftEdges holds the relations/edges for other nodes in the graph.
type RuleDraftEdges struct {
	// Investigation holds the value of the investigation edge.
	Investigation *Investigation `json:"investigation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvestigationOrErr returns the Investigation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RuleDraftEdges) InvestigationOrErr() (*Investigation, error) {
	if e.Investigation != nil {
		return e.Investigation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: investigation.Label}
	}
	return nil, &NotLoadedError{edge: "investigation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RuleDraft) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ruledraft.FieldPayload:
			values[i] = new([]byte)
		case ruledraft.FieldID, ruledraft.FieldInvestigationID, ruledraft.FieldStatus, ruledraft.FieldRuleName, ruledraft.FieldRuleDescription:
			values[i] = new(sql.NullString)
		case ruledraft.FieldCreatedAt, ruledraft.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RuleDraft fields.
func (_m *RuleDraft) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ruledraft.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ruledraft.FieldInvestigationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investigation_id", values[i])
			} else if value.Valid {
				_m.InvestigationID = value.String
			}
		case ruledraft.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ruledraft.Status(value.String)
			}
		case ruledraft.FieldRuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_name", values[i])
			} else if value.Valid {
				_m.RuleName = value.String
			}
		case ruledraft.FieldRuleDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_description", values[i])
			} else if value.Valid {
				_m.RuleDescription = value.String
			}
		case ruledraft.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case ruledraft.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ruledraft.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RuleDraft.
// This includes values selected through modifiers, order, etc.
func (_m *RuleDraft) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvestigation queries the "investigation" edge of the RuleDraft entity.
func (_m *RuleDraft) QueryInvestigation() *InvestigationQuery {
	return NewRuleDraftClient(_m.config).QueryInvestigation(_m)
}

// Update returns a builder for updating this RuleDraft.
// Note that you need to call RuleDraft.Unwrap() before calling this method if this RuleDraft
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RuleDraft) Update() *RuleDraftUpdateOne {
	return NewRuleDraftClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RuleDraft entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RuleDraft) Unwrap() *RuleDraft {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RuleDraft is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RuleDraft) String() string {
	var builder strings.Builder
	builder.WriteString("RuleDraft(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("investigation_id=")
	builder.WriteString(_m.InvestigationID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("rule_name=")
	builder.WriteString(_m.RuleName)
	builder.WriteString(", ")
	builder.WriteString("rule_description=")
	builder.WriteString(_m.RuleDescription)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RuleDrafts is a parsable slice of RuleDraft.
type RuleDrafts []*RuleDraft
