package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// TransactionEmbedding holds one embedding vector per transaction for
// similarity search. Queried with cosine distance via pgvector.
type TransactionEmbedding struct {
	ent.Schema
}

// Fields of the TransactionEmbedding.
func (TransactionEmbedding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transaction_id").
			Unique().
			Immutable(),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(1024)",
			}),
		field.Text("summary").
			Comment("Canonical textual summary the embedding was generated from"),
		field.Float("amount"),
		field.String("merchant_id"),
		field.Time("transaction_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TransactionEmbedding.
func (TransactionEmbedding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
