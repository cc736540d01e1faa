// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// Investigation is the predicate function for investigation builders.
type Investigation func(*sql.Selector)

// Recommendation is the predicate function for recommendation builders.
type Recommendation func(*sql.Selector)

// RuleDraft is the predicate function for ruledraft builders.
type RuleDraft func(*sql.Selector)

// StateSnapshot is the predicate function for statesnapshot builders.
type StateSnapshot func(*sql.Selector)

// ToolExecutionLog is the predicate function for toolexecutionlog builders.
type ToolExecutionLog func(*sql.Selector)

// TransactionEmbedding is the predicate function for transactionembedding builders.
type TransactionEmbedding func(*sql.Selector)
