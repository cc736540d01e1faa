// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/transactionembedding"
	pgvector "github.com/pgvector/pgvector-go"
)

// TransactionEmbedding is the model entity for the TransactionEmbedding schema.
type TransactionEmbedding struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding pgvector.Vector `json:"embedding,omitempty"`
	// Canonical textual summary the embedding was generated from
	Summary string `json:"summary,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// MerchantID holds the value of the "merchant_id" field.
	MerchantID string `json:"merchant_id,omitempty"`
	// TransactionAt holds the value of the "transaction_at" field.
	TransactionAt time.Time `json:"transaction_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TransactionEmbedding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transactionembedding.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case transactionembedding.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case transactionembedding.FieldID, transactionembedding.FieldSummary, transactionembedding.FieldMerchantID:
			values[i] = new(sql.NullString)
		case transactionembedding.FieldTransactionAt, transactionembedding.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TransactionEmbedding fields.
func (_m *TransactionEmbedding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transactionembedding.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transactionembedding.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case transactionembedding.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case transactionembedding.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case transactionembedding.FieldMerchantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_id", values[i])
			} else if value.Valid {
				_m.MerchantID = value.String
			}
		case transactionembedding.FieldTransactionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_at", values[i])
			} else if value.Valid {
				_m.TransactionAt = value.Time
			}
		case transactionembedding.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TransactionEmbedding.
// This includes values selected through modifiers, order, etc.
func (_m *TransactionEmbedding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TransactionEmbedding.
// Note that you need to call TransactionEmbedding.Unwrap() before calling this method if this TransactionEmbedding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TransactionEmbedding) Update() *TransactionEmbeddingUpdateOne {
	return NewTransactionEmbeddingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TransactionEmbedding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TransactionEmbedding) Unwrap() *TransactionEmbedding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TransactionEmbedding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TransactionEmbedding) String() string {
	var builder strings.Builder
	builder.WriteString("TransactionEmbedding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("merchant_id=")
	builder.WriteString(_m.MerchantID)
	builder.WriteString(", ")
	builder.WriteString("transaction_at=")
	builder.WriteString(_m.TransactionAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TransactionEmbeddings is a parsable slice of TransactionEmbedding.
type TransactionEmbeddings []*TransactionEmbedding
