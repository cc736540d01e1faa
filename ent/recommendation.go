// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/recommendation"
)

// Recommendation is the model entity for the Recommendation schema.
type Recommendation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InsightID holds the value of the "insight_id" field.
	InsightID string `json:"insight_id,omitempty"`
	// e.g. 'block_card', 'velocity_review', 'standard_review'
	RecType string `json:"rec_type,omitempty"`
	// Status holds the value of the "status" field.
	Status recommendation.Status `json:"status,omitempty"`
	// 1 is highest
	Priority int `json:"priority,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Impact holds the value of the "impact" field.
	Impact string `json:"impact,omitempty"`
	// Actionable context: amount, merchant, MCC, window stats
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Analyst comment recorded on acknowledge/reject
	Comment *string `json:"comment,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity recommendation.Severity `json:"severity,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecommendationQuery when eager-loading is set.
	Edges        RecommendationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecommendationEdges holds the relations/edges for other nodes in the graph.
type RecommendationEdges struct {
	// Insight holds the value of the insight edge.
	Insight *Insight `json:"insight,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InsightOrErr returns the Insight value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecommendationEdges) InsightOrErr() (*Insight, error) {
	if e.Insight != nil {
		return e.Insight, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: insight.Label}
	}
	return nil, &NotLoadedError{edge: "insight"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recommendation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendation.FieldPayload:
			values[i] = new([]byte)
		case recommendation.FieldPriority:
			values[i] = new(sql.NullInt64)
		case recommendation.FieldID, recommendation.FieldInsightID, recommendation.FieldRecType, recommendation.FieldStatus, recommendation.FieldTitle, recommendation.FieldImpact, recommendation.FieldComment, recommendation.FieldSeverity:
			values[i] = new(sql.NullString)
		case recommendation.FieldCreatedAt, recommendation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recommendation fields.
func (_m *Recommendation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recommendation.FieldInsightID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insight_id", values[i])
			} else if value.Valid {
				_m.InsightID = value.String
			}
		case recommendation.FieldRecType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rec_type", values[i])
			} else if value.Valid {
				_m.RecType = value.String
			}
		case recommendation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = recommendation.Status(value.String)
			}
		case recommendation.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case recommendation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case recommendation.FieldImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field impact", values[i])
			} else if value.Valid {
				_m.Impact = value.String
			}
		case recommendation.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case recommendation.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = new(string)
				*_m.Comment = value.String
			}
		case recommendation.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = recommendation.Severity(value.String)
			}
		case recommendation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recommendation.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Recommendation.
// This includes values selected through modifiers, order, etc.
func (_m *Recommendation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInsight queries the "insight" edge of the Recommendation entity.
func (_m *Recommendation) QueryInsight() *InsightQuery {
	return NewRecommendationClient(_m.config).QueryInsight(_m)
}

// Update returns a builder for updating this Recommendation.
// Note that you need to call Recommendation.Unwrap() before calling this method if this Recommendation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recommendation) Update() *RecommendationUpdateOne {
	return NewRecommendationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recommendation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recommendation) Unwrap() *Recommendation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recommendation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recommendation) String() string {
	var builder strings.Builder
	builder.WriteString("Recommendation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("insight_id=")
	builder.WriteString(_m.InsightID)
	builder.WriteString(", ")
	builder.WriteString("rec_type=")
	builder.WriteString(_m.RecType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("impact=")
	builder.WriteString(_m.Impact)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	if v := _m.Comment; v != nil {
		builder.WriteString("comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Recommendations is a parsable slice of Recommendation.
type Recommendations []*Recommendation
