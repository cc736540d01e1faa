// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
)

// Insight is the model entity for the Insight schema.
type Insight struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InvestigationID holds the value of the "investigation_id" field.
	InvestigationID string `json:"investigation_id,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID string `json:"transaction_id,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity insight.Severity `json:"severity,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Dominant evidence category backing the insight
	EvidenceKind string `json:"evidence_kind,omitempty"`
	// 'llm' or 'fallback' depending on how reasoning was produced
	ModelMode string `json:"model_mode,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InsightQuery when eager-loading is set.
	Edges        InsightEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InsightEdges holds the relations/edges for other nodes in the graph.
type InsightEdges struct {
	// Investigation holds the value of the investigation edge.
	Investigation *Investigation `json:"investigation,omitempty"`
	// Evidence holds the value of the evidence edge.
	Evidence []*Evidence `json:"evidence,omitempty"`
	// Recommendations holds the value of the recommendations edge.
	Recommendations []*Recommendation `json:"recommendations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// InvestigationOrErr returns the Investigation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InsightEdges) InvestigationOrErr() (*Investigation, error) {
	if e.Investigation != nil {
		return e.Investigation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: investigation.Label}
	}
	return nil, &NotLoadedError{edge: "investigation"}
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e InsightEdges) EvidenceOrErr() ([]*Evidence, error) {
	if e.loadedTypes[1] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// RecommendationsOrErr returns the Recommendations value or an error if the edge
// was not loaded in eager-loading.
func (e InsightEdges) RecommendationsOrErr() ([]*Recommendation, error) {
	if e.loadedTypes[2] {
		return e.Recommendations, nil
	}
	return nil, &NotLoadedError{edge: "recommendations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Insight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insight.FieldID, insight.FieldInvestigationID, insight.FieldTransactionID, insight.FieldIdempotencyKey, insight.FieldSeverity, insight.FieldSummary, insight.FieldEvidenceKind, insight.FieldModelMode:
			values[i] = new(sql.NullString)
		case insight.FieldCreatedAt, insight.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Insight fields.
func (_m *Insight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insight.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case insight.FieldInvestigationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investigation_id", values[i])
			} else if value.Valid {
				_m.InvestigationID = value.String
			}
		case insight.FieldTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = value.String
			}
		case insight.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = value.String
			}
		case insight.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = insight.Severity(value.String)
			}
		case insight.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case insight.FieldEvidenceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_kind", values[i])
			} else if value.Valid {
				_m.EvidenceKind = value.String
			}
		case insight.FieldModelMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_mode", values[i])
			} else if value.Valid {
				_m.ModelMode = value.String
			}
		case insight.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case insight.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Insight.
// This includes values selected through modifiers, order, etc.
func (_m *Insight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvestigation queries the "investigation" edge of the Insight entity.
func (_m *Insight) QueryInvestigation() *InvestigationQuery {
	return NewInsightClient(_m.config).QueryInvestigation(_m)
}

// QueryEvidence queries the "evidence" edge of the Insight entity.
func (_m *Insight) QueryEvidence() *EvidenceQuery {
	return NewInsightClient(_m.config).QueryEvidence(_m)
}

// QueryRecommendations queries the "recommendations" edge of the Insight entity.
func (_m *Insight) QueryRecommendations() *RecommendationQuery {
	return NewInsightClient(_m.config).QueryRecommendations(_m)
}

// Update returns a builder for updating this Insight.
// Note that you need to call Insight.Unwrap() before calling this method if this Insight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Insight) Update() *InsightUpdateOne {
	return NewInsightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Insight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Insight) Unwrap() *Insight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Insight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Insight) String() string {
	var builder strings.Builder
	builder.WriteString("Insight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("investigation_id=")
	builder.WriteString(_m.InvestigationID)
	builder.WriteString(", ")
	builder.WriteString("transaction_id=")
	builder.WriteString(_m.TransactionID)
	builder.WriteString(", ")
	builder.WriteString("idempotency_key=")
	builder.WriteString(_m.IdempotencyKey)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("evidence_kind=")
	builder.WriteString(_m.EvidenceKind)
	builder.WriteString(", ")
	builder.WriteString("model_mode=")
	builder.WriteString(_m.ModelMode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Insights is a parsable slice of Insight.
type Insights []*Insight
