// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
)

// Evidence is the model entity for the Evidence schema.
type Evidence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InsightID holds the value of the "insight_id" field.
	InsightID string `json:"insight_id,omitempty"`
	// e.g. 'pattern_analysis', 'similarity_search'
	Category string `json:"category,omitempty"`
	// SourceTool holds the value of the "source_tool" field.
	SourceTool string `json:"source_tool,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvidenceQuery when eager-loading is set.
	Edges        EvidenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvidenceEdges holds the relations/edges for other nodes in the graph.
type EvidenceEdges struct {
	// Insight holds the value of the insight edge.
	Insight *Insight `json:"insight,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InsightOrErr returns the Insight value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvidenceEdges) InsightOrErr() (*Insight, error) {
	if e.Insight != nil {
		return e.Insight, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: insight.Label}
	}
	return nil, &NotLoadedError{edge: "insight"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidence.FieldPayload:
			values[i] = new([]byte)
		case evidence.FieldID, evidence.FieldInsightID, evidence.FieldCategory, evidence.FieldSourceTool:
			values[i] = new(sql.NullString)
		case evidence.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evidence fields.
func (_m *Evidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidence.FieldInsightID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insight_id", values[i])
			} else if value.Valid {
				_m.InsightID = value.String
			}
		case evidence.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case evidence.FieldSourceTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_tool", values[i])
			} else if value.Valid {
				_m.SourceTool = value.String
			}
		case evidence.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case evidence.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Evidence.
// This includes values selected through modifiers, order, etc.
func (_m *Evidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInsight queries the "insight" edge of the Evidence entity.
func (_m *Evidence) QueryInsight() *InsightQuery {
	return NewEvidenceClient(_m.config).QueryInsight(_m)
}

// Update returns a builder for updating this Evidence.
// Note that you need to call Evidence.Unwrap() before calling this method if this Evidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evidence) Update() *EvidenceUpdateOne {
	return NewEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evidence) Unwrap() *Evidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evidence) String() string {
	var builder strings.Builder
	builder.WriteString("Evidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("insight_id=")
	builder.WriteString(_m.InsightID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("source_tool=")
	builder.WriteString(_m.SourceTool)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evidences is a parsable slice of Evidence.
type Evidences []*Evidence
