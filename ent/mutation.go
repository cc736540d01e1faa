// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fraudops/opsagent/ent/auditlog"
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/ent/statesnapshot"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
	"github.com/fraudops/opsagent/ent/transactionembedding"
	pgvector "github.com/pgvector/pgvector-go"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog             = "AuditLog"
	TypeEvidence             = "Evidence"
	TypeInsight              = "Insight"
	TypeInvestigation        = "Investigation"
	TypeRecommendation       = "Recommendation"
	TypeRuleDraft            = "RuleDraft"
	TypeStateSnapshot        = "StateSnapshot"
	TypeToolExecutionLog     = "ToolExecutionLog"
	TypeTransactionEmbedding = "TransactionEmbedding"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	entity_type   *string
	entity_id     *string
	action        *string
	performed_by  *string
	new_value     *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *AuditLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetPerformedBy sets the "performed_by" field.
func (m *AuditLogMutation) SetPerformedBy(s string) {
	m.performed_by = &s
}

// PerformedBy returns the value of the "performed_by" field in the mutation.
func (m *AuditLogMutation) PerformedBy() (r string, exists bool) {
	v := m.performed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformedBy returns the old "performed_by" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldPerformedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformedBy: %w", err)
	}
	return oldValue.PerformedBy, nil
}

// ResetPerformedBy resets all changes to the "performed_by" field.
func (m *AuditLogMutation) ResetPerformedBy() {
	m.performed_by = nil
}

// SetNewValue sets the "new_value" field.
func (m *AuditLogMutation) SetNewValue(value map[string]interface{}) {
	m.new_value = &value
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *AuditLogMutation) NewValue() (r map[string]interface{}, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldNewValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ClearNewValue clears the value of the "new_value" field.
func (m *AuditLogMutation) ClearNewValue() {
	m.new_value = nil
	m.clearedFields[auditlog.FieldNewValue] = struct{}{}
}

// NewValueCleared returns if the "new_value" field was cleared in this mutation.
func (m *AuditLogMutation) NewValueCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldNewValue]
	return ok
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *AuditLogMutation) ResetNewValue() {
	m.new_value = nil
	delete(m.clearedFields, auditlog.FieldNewValue)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entity_type != nil {
		fields = append(fields, auditlog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.performed_by != nil {
		fields = append(fields, auditlog.FieldPerformedBy)
	}
	if m.new_value != nil {
		fields = append(fields, auditlog.FieldNewValue)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldEntityType:
		return m.EntityType()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldPerformedBy:
		return m.PerformedBy()
	case auditlog.FieldNewValue:
		return m.NewValue()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldPerformedBy:
		return m.OldPerformedBy(ctx)
	case auditlog.FieldNewValue:
		return m.OldNewValue(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldPerformedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformedBy(v)
		return nil
	case auditlog.FieldNewValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldNewValue) {
		fields = append(fields, auditlog.FieldNewValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldNewValue:
		m.ClearNewValue()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldPerformedBy:
		m.ResetPerformedBy()
		return nil
	case auditlog.FieldNewValue:
		m.ResetNewValue()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	category       *string
	source_tool    *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	insight        *string
	clearedinsight bool
	done           bool
	oldValue       func(context.Context) (*Evidence, error)
	predicates     []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id string) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInsightID sets the "insight_id" field.
func (m *EvidenceMutation) SetInsightID(s string) {
	m.insight = &s
}

// InsightID returns the value of the "insight_id" field in the mutation.
func (m *EvidenceMutation) InsightID() (r string, exists bool) {
	v := m.insight
	if v == nil {
		return
	}
	return *v, true
}

// OldInsightID returns the old "insight_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldInsightID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsightID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsightID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsightID: %w", err)
	}
	return oldValue.InsightID, nil
}

// ResetInsightID resets all changes to the "insight_id" field.
func (m *EvidenceMutation) ResetInsightID() {
	m.insight = nil
}

// SetCategory sets the "category" field.
func (m *EvidenceMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *EvidenceMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *EvidenceMutation) ResetCategory() {
	m.category = nil
}

// SetSourceTool sets the "source_tool" field.
func (m *EvidenceMutation) SetSourceTool(s string) {
	m.source_tool = &s
}

// SourceTool returns the value of the "source_tool" field in the mutation.
func (m *EvidenceMutation) SourceTool() (r string, exists bool) {
	v := m.source_tool
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTool returns the old "source_tool" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSourceTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTool: %w", err)
	}
	return oldValue.SourceTool, nil
}

// ResetSourceTool resets all changes to the "source_tool" field.
func (m *EvidenceMutation) ResetSourceTool() {
	m.source_tool = nil
}

// SetPayload sets the "payload" field.
func (m *EvidenceMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EvidenceMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EvidenceMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInsight clears the "insight" edge to the Insight entity.
func (m *EvidenceMutation) ClearInsight() {
	m.clearedinsight = true
	m.clearedFields[evidence.FieldInsightID] = struct{}{}
}

// InsightCleared reports if the "insight" edge to the Insight entity was cleared.
func (m *EvidenceMutation) InsightCleared() bool {
	return m.clearedinsight
}

// InsightIDs returns the "insight" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InsightID instead. It exists only for internal usage by the builders.
func (m *EvidenceMutation) InsightIDs() (ids []string) {
	if id := m.insight; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInsight resets all changes to the "insight" edge.
func (m *EvidenceMutation) ResetInsight() {
	m.insight = nil
	m.clearedinsight = false
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.insight != nil {
		fields = append(fields, evidence.FieldInsightID)
	}
	if m.category != nil {
		fields = append(fields, evidence.FieldCategory)
	}
	if m.source_tool != nil {
		fields = append(fields, evidence.FieldSourceTool)
	}
	if m.payload != nil {
		fields = append(fields, evidence.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, evidence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldInsightID:
		return m.InsightID()
	case evidence.FieldCategory:
		return m.Category()
	case evidence.FieldSourceTool:
		return m.SourceTool()
	case evidence.FieldPayload:
		return m.Payload()
	case evidence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldInsightID:
		return m.OldInsightID(ctx)
	case evidence.FieldCategory:
		return m.OldCategory(ctx)
	case evidence.FieldSourceTool:
		return m.OldSourceTool(ctx)
	case evidence.FieldPayload:
		return m.OldPayload(ctx)
	case evidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldInsightID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsightID(v)
		return nil
	case evidence.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case evidence.FieldSourceTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTool(v)
		return nil
	case evidence.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case evidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldInsightID:
		m.ResetInsightID()
		return nil
	case evidence.FieldCategory:
		m.ResetCategory()
		return nil
	case evidence.FieldSourceTool:
		m.ResetSourceTool()
		return nil
	case evidence.FieldPayload:
		m.ResetPayload()
		return nil
	case evidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.insight != nil {
		edges = append(edges, evidence.EdgeInsight)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeInsight:
		if id := m.insight; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinsight {
		edges = append(edges, evidence.EdgeInsight)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case evidence.EdgeInsight:
		return m.clearedinsight
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	switch name {
	case evidence.EdgeInsight:
		m.ClearInsight()
		return nil
	}
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	switch name {
	case evidence.EdgeInsight:
		m.ResetInsight()
		return nil
	}
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// InsightMutation represents an operation that mutates the Insight nodes in the graph.
type InsightMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	transaction_id         *string
	idempotency_key        *string
	severity               *insight.Severity
	summary                *string
	evidence_kind          *string
	model_mode             *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	investigation          *string
	clearedinvestigation   bool
	evidence               map[string]struct{}
	removedevidence        map[string]struct{}
	clearedevidence        bool
	recommendations        map[string]struct{}
	removedrecommendations map[string]struct{}
	clearedrecommendations bool
	done                   bool
	oldValue               func(context.Context) (*Insight, error)
	predicates             []predicate.Insight
}

var _ ent.Mutation = (*InsightMutation)(nil)

// insightOption allows management of the mutation configuration using functional options.
type insightOption func(*InsightMutation)

// newInsightMutation creates new mutation for the Insight entity.
func newInsightMutation(c config, op Op, opts ...insightOption) *InsightMutation {
	m := &InsightMutation{
		config:        c,
		op:            op,
		typ:           TypeInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightID sets the ID field of the mutation.
func withInsightID(id string) insightOption {
	return func(m *InsightMutation) {
		var (
			err   error
			once  sync.Once
			value *Insight
		)
		m.oldValue = func(ctx context.Context) (*Insight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsight sets the old Insight of the mutation.
func withInsight(node *Insight) insightOption {
	return func(m *InsightMutation) {
		m.oldValue = func(context.Context) (*Insight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insight entities.
func (m *InsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvestigationID sets the "investigation_id" field.
func (m *InsightMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *InsightMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *InsightMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetTransactionID sets the "transaction_id" field.
func (m *InsightMutation) SetTransactionID(s string) {
	m.transaction_id = &s
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *InsightMutation) TransactionID() (r string, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldTransactionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *InsightMutation) ResetTransactionID() {
	m.transaction_id = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *InsightMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *InsightMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *InsightMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetSeverity sets the "severity" field.
func (m *InsightMutation) SetSeverity(i insight.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *InsightMutation) Severity() (r insight.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldSeverity(ctx context.Context) (v insight.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *InsightMutation) ResetSeverity() {
	m.severity = nil
}

// SetSummary sets the "summary" field.
func (m *InsightMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *InsightMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *InsightMutation) ResetSummary() {
	m.summary = nil
}

// SetEvidenceKind sets the "evidence_kind" field.
func (m *InsightMutation) SetEvidenceKind(s string) {
	m.evidence_kind = &s
}

// EvidenceKind returns the value of the "evidence_kind" field in the mutation.
func (m *InsightMutation) EvidenceKind() (r string, exists bool) {
	v := m.evidence_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceKind returns the old "evidence_kind" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldEvidenceKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceKind: %w", err)
	}
	return oldValue.EvidenceKind, nil
}

// ResetEvidenceKind resets all changes to the "evidence_kind" field.
func (m *InsightMutation) ResetEvidenceKind() {
	m.evidence_kind = nil
}

// SetModelMode sets the "model_mode" field.
func (m *InsightMutation) SetModelMode(s string) {
	m.model_mode = &s
}

// ModelMode returns the value of the "model_mode" field in the mutation.
func (m *InsightMutation) ModelMode() (r string, exists bool) {
	v := m.model_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldModelMode returns the old "model_mode" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldModelMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelMode: %w", err)
	}
	return oldValue.ModelMode, nil
}

// ResetModelMode resets all changes to the "model_mode" field.
func (m *InsightMutation) ResetModelMode() {
	m.model_mode = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InsightMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InsightMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InsightMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *InsightMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[insight.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *InsightMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *InsightMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *InsightMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by ids.
func (m *InsightMutation) AddEvidenceIDs(ids ...string) {
	if m.evidence == nil {
		m.evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the Evidence entity.
func (m *InsightMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the Evidence entity was cleared.
func (m *InsightMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the Evidence entity by IDs.
func (m *InsightMutation) RemoveEvidenceIDs(ids ...string) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the Evidence entity.
func (m *InsightMutation) RemovedEvidenceIDs() (ids []string) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *InsightMutation) EvidenceIDs() (ids []string) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *InsightMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// AddRecommendationIDs adds the "recommendations" edge to the Recommendation entity by ids.
func (m *InsightMutation) AddRecommendationIDs(ids ...string) {
	if m.recommendations == nil {
		m.recommendations = make(map[string]struct{})
	}
	for i := range ids {
		m.recommendations[ids[i]] = struct{}{}
	}
}

// ClearRecommendations clears the "recommendations" edge to the Recommendation entity.
func (m *InsightMutation) ClearRecommendations() {
	m.clearedrecommendations = true
}

// RecommendationsCleared reports if the "recommendations" edge to the Recommendation entity was cleared.
func (m *InsightMutation) RecommendationsCleared() bool {
	return m.clearedrecommendations
}

// RemoveRecommendationIDs removes the "recommendations" edge to the Recommendation entity by IDs.
func (m *InsightMutation) RemoveRecommendationIDs(ids ...string) {
	if m.removedrecommendations == nil {
		m.removedrecommendations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.recommendations, ids[i])
		m.removedrecommendations[ids[i]] = struct{}{}
	}
}

// RemovedRecommendations returns the removed IDs of the "recommendations" edge to the Recommendation entity.
func (m *InsightMutation) RemovedRecommendationsIDs() (ids []string) {
	for id := range m.removedrecommendations {
		ids = append(ids, id)
	}
	return
}

// RecommendationsIDs returns the "recommendations" edge IDs in the mutation.
func (m *InsightMutation) RecommendationsIDs() (ids []string) {
	for id := range m.recommendations {
		ids = append(ids, id)
	}
	return
}

// ResetRecommendations resets all changes to the "recommendations" edge.
func (m *InsightMutation) ResetRecommendations() {
	m.recommendations = nil
	m.clearedrecommendations = false
	m.removedrecommendations = nil
}

// Where appends a list predicates to the InsightMutation builder.
func (m *InsightMutation) Where(ps ...predicate.Insight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insight).
func (m *InsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.investigation != nil {
		fields = append(fields, insight.FieldInvestigationID)
	}
	if m.transaction_id != nil {
		fields = append(fields, insight.FieldTransactionID)
	}
	if m.idempotency_key != nil {
		fields = append(fields, insight.FieldIdempotencyKey)
	}
	if m.severity != nil {
		fields = append(fields, insight.FieldSeverity)
	}
	if m.summary != nil {
		fields = append(fields, insight.FieldSummary)
	}
	if m.evidence_kind != nil {
		fields = append(fields, insight.FieldEvidenceKind)
	}
	if m.model_mode != nil {
		fields = append(fields, insight.FieldModelMode)
	}
	if m.created_at != nil {
		fields = append(fields, insight.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, insight.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldInvestigationID:
		return m.InvestigationID()
	case insight.FieldTransactionID:
		return m.TransactionID()
	case insight.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case insight.FieldSeverity:
		return m.Severity()
	case insight.FieldSummary:
		return m.Summary()
	case insight.FieldEvidenceKind:
		return m.EvidenceKind()
	case insight.FieldModelMode:
		return m.ModelMode()
	case insight.FieldCreatedAt:
		return m.CreatedAt()
	case insight.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insight.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case insight.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case insight.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case insight.FieldSeverity:
		return m.OldSeverity(ctx)
	case insight.FieldSummary:
		return m.OldSummary(ctx)
	case insight.FieldEvidenceKind:
		return m.OldEvidenceKind(ctx)
	case insight.FieldModelMode:
		return m.OldModelMode(ctx)
	case insight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case insight.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Insight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insight.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case insight.FieldTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case insight.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case insight.FieldSeverity:
		v, ok := value.(insight.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case insight.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case insight.FieldEvidenceKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceKind(v)
		return nil
	case insight.FieldModelMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelMode(v)
		return nil
	case insight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case insight.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Insight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Insight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightMutation) ResetField(name string) error {
	switch name {
	case insight.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case insight.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case insight.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case insight.FieldSeverity:
		m.ResetSeverity()
		return nil
	case insight.FieldSummary:
		m.ResetSummary()
		return nil
	case insight.FieldEvidenceKind:
		m.ResetEvidenceKind()
		return nil
	case insight.FieldModelMode:
		m.ResetModelMode()
		return nil
	case insight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case insight.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.investigation != nil {
		edges = append(edges, insight.EdgeInvestigation)
	}
	if m.evidence != nil {
		edges = append(edges, insight.EdgeEvidence)
	}
	if m.recommendations != nil {
		edges = append(edges, insight.EdgeRecommendations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insight.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	case insight.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	case insight.EdgeRecommendations:
		ids := make([]ent.Value, 0, len(m.recommendations))
		for id := range m.recommendations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevidence != nil {
		edges = append(edges, insight.EdgeEvidence)
	}
	if m.removedrecommendations != nil {
		edges = append(edges, insight.EdgeRecommendations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case insight.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	case insight.EdgeRecommendations:
		ids := make([]ent.Value, 0, len(m.removedrecommendations))
		for id := range m.removedrecommendations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedinvestigation {
		edges = append(edges, insight.EdgeInvestigation)
	}
	if m.clearedevidence {
		edges = append(edges, insight.EdgeEvidence)
	}
	if m.clearedrecommendations {
		edges = append(edges, insight.EdgeRecommendations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightMutation) EdgeCleared(name string) bool {
	switch name {
	case insight.EdgeInvestigation:
		return m.clearedinvestigation
	case insight.EdgeEvidence:
		return m.clearedevidence
	case insight.EdgeRecommendations:
		return m.clearedrecommendations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightMutation) ClearEdge(name string) error {
	switch name {
	case insight.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown Insight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightMutation) ResetEdge(name string) error {
	switch name {
	case insight.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	case insight.EdgeEvidence:
		m.ResetEvidence()
		return nil
	case insight.EdgeRecommendations:
		m.ResetRecommendations()
		return nil
	}
	return fmt.Errorf("unknown Insight edge %s", name)
}

// InvestigationMutation represents an operation that mutates the Investigation nodes in the graph.
type InvestigationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	transaction_id         *string
	mode                   *investigation.Mode
	status                 *investigation.Status
	severity               *investigation.Severity
	final_confidence       *float64
	addfinal_confidence    *float64
	step_count             *int
	addstep_count          *int
	max_steps              *int
	addmax_steps           *int
	planner_model          *string
	case_id                *string
	error_message          *string
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	deleted_at             *time.Time
	clearedFields          map[string]struct{}
	tool_executions        map[string]struct{}
	removedtool_executions map[string]struct{}
	clearedtool_executions bool
	insights               map[string]struct{}
	removedinsights        map[string]struct{}
	clearedinsights        bool
	rule_drafts            map[string]struct{}
	removedrule_drafts     map[string]struct{}
	clearedrule_drafts     bool
	done                   bool
	oldValue               func(context.Context) (*Investigation, error)
	predicates             []predicate.Investigation
}

var _ ent.Mutation = (*InvestigationMutation)(nil)

// investigationOption allows management of the mutation configuration using functional options.
type investigationOption func(*InvestigationMutation)

// newInvestigationMutation creates new mutation for the Investigation entity.
func newInvestigationMutation(c config, op Op, opts ...investigationOption) *InvestigationMutation {
	m := &InvestigationMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestigation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestigationID sets the ID field of the mutation.
func withInvestigationID(id string) investigationOption {
	return func(m *InvestigationMutation) {
		var (
			err   error
			once  sync.Once
			value *Investigation
		)
		m.oldValue = func(ctx context.Context) (*Investigation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Investigation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestigation sets the old Investigation of the mutation.
func withInvestigation(node *Investigation) investigationOption {
	return func(m *InvestigationMutation) {
		m.oldValue = func(context.Context) (*Investigation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestigationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestigationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Investigation entities.
func (m *InvestigationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestigationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestigationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Investigation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTransactionID sets the "transaction_id" field.
func (m *InvestigationMutation) SetTransactionID(s string) {
	m.transaction_id = &s
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *InvestigationMutation) TransactionID() (r string, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldTransactionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *InvestigationMutation) ResetTransactionID() {
	m.transaction_id = nil
}

// SetMode sets the "mode" field.
func (m *InvestigationMutation) SetMode(i investigation.Mode) {
	m.mode = &i
}

// Mode returns the value of the "mode" field in the mutation.
func (m *InvestigationMutation) Mode() (r investigation.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldMode(ctx context.Context) (v investigation.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *InvestigationMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *InvestigationMutation) SetStatus(i investigation.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InvestigationMutation) Status() (r investigation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStatus(ctx context.Context) (v investigation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvestigationMutation) ResetStatus() {
	m.status = nil
}

// SetSeverity sets the "severity" field.
func (m *InvestigationMutation) SetSeverity(i investigation.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *InvestigationMutation) Severity() (r investigation.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldSeverity(ctx context.Context) (v *investigation.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *InvestigationMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[investigation.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *InvestigationMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[investigation.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *InvestigationMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, investigation.FieldSeverity)
}

// SetFinalConfidence sets the "final_confidence" field.
func (m *InvestigationMutation) SetFinalConfidence(f float64) {
	m.final_confidence = &f
	m.addfinal_confidence = nil
}

// FinalConfidence returns the value of the "final_confidence" field in the mutation.
func (m *InvestigationMutation) FinalConfidence() (r float64, exists bool) {
	v := m.final_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalConfidence returns the old "final_confidence" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldFinalConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalConfidence: %w", err)
	}
	return oldValue.FinalConfidence, nil
}

// AddFinalConfidence adds f to the "final_confidence" field.
func (m *InvestigationMutation) AddFinalConfidence(f float64) {
	if m.addfinal_confidence != nil {
		*m.addfinal_confidence += f
	} else {
		m.addfinal_confidence = &f
	}
}

// AddedFinalConfidence returns the value that was added to the "final_confidence" field in this mutation.
func (m *InvestigationMutation) AddedFinalConfidence() (r float64, exists bool) {
	v := m.addfinal_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearFinalConfidence clears the value of the "final_confidence" field.
func (m *InvestigationMutation) ClearFinalConfidence() {
	m.final_confidence = nil
	m.addfinal_confidence = nil
	m.clearedFields[investigation.FieldFinalConfidence] = struct{}{}
}

// FinalConfidenceCleared returns if the "final_confidence" field was cleared in this mutation.
func (m *InvestigationMutation) FinalConfidenceCleared() bool {
	_, ok := m.clearedFields[investigation.FieldFinalConfidence]
	return ok
}

// ResetFinalConfidence resets all changes to the "final_confidence" field.
func (m *InvestigationMutation) ResetFinalConfidence() {
	m.final_confidence = nil
	m.addfinal_confidence = nil
	delete(m.clearedFields, investigation.FieldFinalConfidence)
}

// SetStepCount sets the "step_count" field.
func (m *InvestigationMutation) SetStepCount(i int) {
	m.step_count = &i
	m.addstep_count = nil
}

// StepCount returns the value of the "step_count" field in the mutation.
func (m *InvestigationMutation) StepCount() (r int, exists bool) {
	v := m.step_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStepCount returns the old "step_count" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStepCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepCount: %w", err)
	}
	return oldValue.StepCount, nil
}

// AddStepCount adds i to the "step_count" field.
func (m *InvestigationMutation) AddStepCount(i int) {
	if m.addstep_count != nil {
		*m.addstep_count += i
	} else {
		m.addstep_count = &i
	}
}

// AddedStepCount returns the value that was added to the "step_count" field in this mutation.
func (m *InvestigationMutation) AddedStepCount() (r int, exists bool) {
	v := m.addstep_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepCount resets all changes to the "step_count" field.
func (m *InvestigationMutation) ResetStepCount() {
	m.step_count = nil
	m.addstep_count = nil
}

// SetMaxSteps sets the "max_steps" field.
func (m *InvestigationMutation) SetMaxSteps(i int) {
	m.max_steps = &i
	m.addmax_steps = nil
}

// MaxSteps returns the value of the "max_steps" field in the mutation.
func (m *InvestigationMutation) MaxSteps() (r int, exists bool) {
	v := m.max_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxSteps returns the old "max_steps" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldMaxSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxSteps: %w", err)
	}
	return oldValue.MaxSteps, nil
}

// AddMaxSteps adds i to the "max_steps" field.
func (m *InvestigationMutation) AddMaxSteps(i int) {
	if m.addmax_steps != nil {
		*m.addmax_steps += i
	} else {
		m.addmax_steps = &i
	}
}

// AddedMaxSteps returns the value that was added to the "max_steps" field in this mutation.
func (m *InvestigationMutation) AddedMaxSteps() (r int, exists bool) {
	v := m.addmax_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxSteps resets all changes to the "max_steps" field.
func (m *InvestigationMutation) ResetMaxSteps() {
	m.max_steps = nil
	m.addmax_steps = nil
}

// SetPlannerModel sets the "planner_model" field.
func (m *InvestigationMutation) SetPlannerModel(s string) {
	m.planner_model = &s
}

// PlannerModel returns the value of the "planner_model" field in the mutation.
func (m *InvestigationMutation) PlannerModel() (r string, exists bool) {
	v := m.planner_model
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannerModel returns the old "planner_model" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldPlannerModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannerModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannerModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannerModel: %w", err)
	}
	return oldValue.PlannerModel, nil
}

// ClearPlannerModel clears the value of the "planner_model" field.
func (m *InvestigationMutation) ClearPlannerModel() {
	m.planner_model = nil
	m.clearedFields[investigation.FieldPlannerModel] = struct{}{}
}

// PlannerModelCleared returns if the "planner_model" field was cleared in this mutation.
func (m *InvestigationMutation) PlannerModelCleared() bool {
	_, ok := m.clearedFields[investigation.FieldPlannerModel]
	return ok
}

// ResetPlannerModel resets all changes to the "planner_model" field.
func (m *InvestigationMutation) ResetPlannerModel() {
	m.planner_model = nil
	delete(m.clearedFields, investigation.FieldPlannerModel)
}

// SetCaseID sets the "case_id" field.
func (m *InvestigationMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *InvestigationMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCaseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ClearCaseID clears the value of the "case_id" field.
func (m *InvestigationMutation) ClearCaseID() {
	m.case_id = nil
	m.clearedFields[investigation.FieldCaseID] = struct{}{}
}

// CaseIDCleared returns if the "case_id" field was cleared in this mutation.
func (m *InvestigationMutation) CaseIDCleared() bool {
	_, ok := m.clearedFields[investigation.FieldCaseID]
	return ok
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *InvestigationMutation) ResetCaseID() {
	m.case_id = nil
	delete(m.clearedFields, investigation.FieldCaseID)
}

// SetErrorMessage sets the "error_message" field.
func (m *InvestigationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InvestigationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InvestigationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[investigation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InvestigationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[investigation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InvestigationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, investigation.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvestigationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvestigationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvestigationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InvestigationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InvestigationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *InvestigationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[investigation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InvestigationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InvestigationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, investigation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InvestigationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InvestigationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *InvestigationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[investigation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InvestigationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InvestigationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, investigation.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *InvestigationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *InvestigationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *InvestigationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[investigation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *InvestigationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *InvestigationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, investigation.FieldDeletedAt)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecutionLog entity by ids.
func (m *InvestigationMutation) AddToolExecutionIDs(ids ...string) {
	if m.tool_executions == nil {
		m.tool_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_executions[ids[i]] = struct{}{}
	}
}

// ClearToolExecutions clears the "tool_executions" edge to the ToolExecutionLog entity.
func (m *InvestigationMutation) ClearToolExecutions() {
	m.clearedtool_executions = true
}

// ToolExecutionsCleared reports if the "tool_executions" edge to the ToolExecutionLog entity was cleared.
func (m *InvestigationMutation) ToolExecutionsCleared() bool {
	return m.clearedtool_executions
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to the ToolExecutionLog entity by IDs.
func (m *InvestigationMutation) RemoveToolExecutionIDs(ids ...string) {
	if m.removedtool_executions == nil {
		m.removedtool_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_executions, ids[i])
		m.removedtool_executions[ids[i]] = struct{}{}
	}
}

// RemovedToolExecutions returns the removed IDs of the "tool_executions" edge to the ToolExecutionLog entity.
func (m *InvestigationMutation) RemovedToolExecutionsIDs() (ids []string) {
	for id := range m.removedtool_executions {
		ids = append(ids, id)
	}
	return
}

// ToolExecutionsIDs returns the "tool_executions" edge IDs in the mutation.
func (m *InvestigationMutation) ToolExecutionsIDs() (ids []string) {
	for id := range m.tool_executions {
		ids = append(ids, id)
	}
	return
}

// ResetToolExecutions resets all changes to the "tool_executions" edge.
func (m *InvestigationMutation) ResetToolExecutions() {
	m.tool_executions = nil
	m.clearedtool_executions = false
	m.removedtool_executions = nil
}

// AddInsightIDs adds the "insights" edge to the Insight entity by ids.
func (m *InvestigationMutation) AddInsightIDs(ids ...string) {
	if m.insights == nil {
		m.insights = make(map[string]struct{})
	}
	for i := range ids {
		m.insights[ids[i]] = struct{}{}
	}
}

// ClearInsights clears the "insights" edge to the Insight entity.
func (m *InvestigationMutation) ClearInsights() {
	m.clearedinsights = true
}

// InsightsCleared reports if the "insights" edge to the Insight entity was cleared.
func (m *InvestigationMutation) InsightsCleared() bool {
	return m.clearedinsights
}

// RemoveInsightIDs removes the "insights" edge to the Insight entity by IDs.
func (m *InvestigationMutation) RemoveInsightIDs(ids ...string) {
	if m.removedinsights == nil {
		m.removedinsights = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.insights, ids[i])
		m.removedinsights[ids[i]] = struct{}{}
	}
}

// RemovedInsights returns the removed IDs of the "insights" edge to the Insight entity.
func (m *InvestigationMutation) RemovedInsightsIDs() (ids []string) {
	for id := range m.removedinsights {
		ids = append(ids, id)
	}
	return
}

// InsightsIDs returns the "insights" edge IDs in the mutation.
func (m *InvestigationMutation) InsightsIDs() (ids []string) {
	for id := range m.insights {
		ids = append(ids, id)
	}
	return
}

// ResetInsights resets all changes to the "insights" edge.
func (m *InvestigationMutation) ResetInsights() {
	m.insights = nil
	m.clearedinsights = false
	m.removedinsights = nil
}

// AddRuleDraftIDs adds the "rule_drafts" edge to the RuleDraft entity by ids.
func (m *InvestigationMutation) AddRuleDraftIDs(ids ...string) {
	if m.rule_drafts == nil {
		m.rule_drafts = make(map[string]struct{})
	}
	for i := range ids {
		m.rule_drafts[ids[i]] = struct{}{}
	}
}

// ClearRuleDrafts clears the "rule_drafts" edge to the RuleDraft entity.
func (m *InvestigationMutation) ClearRuleDrafts() {
	m.clearedrule_drafts = true
}

// RuleDraftsCleared reports if the "rule_drafts" edge to the RuleDraft entity was cleared.
func (m *InvestigationMutation) RuleDraftsCleared() bool {
	return m.clearedrule_drafts
}

// RemoveRuleDraftIDs removes the "rule_drafts" edge to the RuleDraft entity by IDs.
func (m *InvestigationMutation) RemoveRuleDraftIDs(ids ...string) {
	if m.removedrule_drafts == nil {
		m.removedrule_drafts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rule_drafts, ids[i])
		m.removedrule_drafts[ids[i]] = struct{}{}
	}
}

// RemovedRuleDrafts returns the removed IDs of the "rule_drafts" edge to the RuleDraft entity.
func (m *InvestigationMutation) RemovedRuleDraftsIDs() (ids []string) {
	for id := range m.removedrule_drafts {
		ids = append(ids, id)
	}
	return
}

// RuleDraftsIDs returns the "rule_drafts" edge IDs in the mutation.
func (m *InvestigationMutation) RuleDraftsIDs() (ids []string) {
	for id := range m.rule_drafts {
		ids = append(ids, id)
	}
	return
}

// ResetRuleDrafts resets all changes to the "rule_drafts" edge.
func (m *InvestigationMutation) ResetRuleDrafts() {
	m.rule_drafts = nil
	m.clearedrule_drafts = false
	m.removedrule_drafts = nil
}

// Where appends a list predicates to the InvestigationMutation builder.
func (m *InvestigationMutation) Where(ps ...predicate.Investigation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestigationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestigationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Investigation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestigationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestigationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Investigation).
func (m *InvestigationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestigationMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.transaction_id != nil {
		fields = append(fields, investigation.FieldTransactionID)
	}
	if m.mode != nil {
		fields = append(fields, investigation.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, investigation.FieldStatus)
	}
	if m.severity != nil {
		fields = append(fields, investigation.FieldSeverity)
	}
	if m.final_confidence != nil {
		fields = append(fields, investigation.FieldFinalConfidence)
	}
	if m.step_count != nil {
		fields = append(fields, investigation.FieldStepCount)
	}
	if m.max_steps != nil {
		fields = append(fields, investigation.FieldMaxSteps)
	}
	if m.planner_model != nil {
		fields = append(fields, investigation.FieldPlannerModel)
	}
	if m.case_id != nil {
		fields = append(fields, investigation.FieldCaseID)
	}
	if m.error_message != nil {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, investigation.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, investigation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestigationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldTransactionID:
		return m.TransactionID()
	case investigation.FieldMode:
		return m.Mode()
	case investigation.FieldStatus:
		return m.Status()
	case investigation.FieldSeverity:
		return m.Severity()
	case investigation.FieldFinalConfidence:
		return m.FinalConfidence()
	case investigation.FieldStepCount:
		return m.StepCount()
	case investigation.FieldMaxSteps:
		return m.MaxSteps()
	case investigation.FieldPlannerModel:
		return m.PlannerModel()
	case investigation.FieldCaseID:
		return m.CaseID()
	case investigation.FieldErrorMessage:
		return m.ErrorMessage()
	case investigation.FieldCreatedAt:
		return m.CreatedAt()
	case investigation.FieldStartedAt:
		return m.StartedAt()
	case investigation.FieldCompletedAt:
		return m.CompletedAt()
	case investigation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestigationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investigation.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case investigation.FieldMode:
		return m.OldMode(ctx)
	case investigation.FieldStatus:
		return m.OldStatus(ctx)
	case investigation.FieldSeverity:
		return m.OldSeverity(ctx)
	case investigation.FieldFinalConfidence:
		return m.OldFinalConfidence(ctx)
	case investigation.FieldStepCount:
		return m.OldStepCount(ctx)
	case investigation.FieldMaxSteps:
		return m.OldMaxSteps(ctx)
	case investigation.FieldPlannerModel:
		return m.OldPlannerModel(ctx)
	case investigation.FieldCaseID:
		return m.OldCaseID(ctx)
	case investigation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case investigation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case investigation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case investigation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case investigation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Investigation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case investigation.FieldMode:
		v, ok := value.(investigation.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case investigation.FieldStatus:
		v, ok := value.(investigation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case investigation.FieldSeverity:
		v, ok := value.(investigation.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case investigation.FieldFinalConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalConfidence(v)
		return nil
	case investigation.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepCount(v)
		return nil
	case investigation.FieldMaxSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxSteps(v)
		return nil
	case investigation.FieldPlannerModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannerModel(v)
		return nil
	case investigation.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case investigation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case investigation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case investigation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case investigation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case investigation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestigationMutation) AddedFields() []string {
	var fields []string
	if m.addfinal_confidence != nil {
		fields = append(fields, investigation.FieldFinalConfidence)
	}
	if m.addstep_count != nil {
		fields = append(fields, investigation.FieldStepCount)
	}
	if m.addmax_steps != nil {
		fields = append(fields, investigation.FieldMaxSteps)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestigationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldFinalConfidence:
		return m.AddedFinalConfidence()
	case investigation.FieldStepCount:
		return m.AddedStepCount()
	case investigation.FieldMaxSteps:
		return m.AddedMaxSteps()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldFinalConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalConfidence(v)
		return nil
	case investigation.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepCount(v)
		return nil
	case investigation.FieldMaxSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxSteps(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestigationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(investigation.FieldSeverity) {
		fields = append(fields, investigation.FieldSeverity)
	}
	if m.FieldCleared(investigation.FieldFinalConfidence) {
		fields = append(fields, investigation.FieldFinalConfidence)
	}
	if m.FieldCleared(investigation.FieldPlannerModel) {
		fields = append(fields, investigation.FieldPlannerModel)
	}
	if m.FieldCleared(investigation.FieldCaseID) {
		fields = append(fields, investigation.FieldCaseID)
	}
	if m.FieldCleared(investigation.FieldErrorMessage) {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.FieldCleared(investigation.FieldStartedAt) {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.FieldCleared(investigation.FieldCompletedAt) {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	if m.FieldCleared(investigation.FieldDeletedAt) {
		fields = append(fields, investigation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestigationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestigationMutation) ClearField(name string) error {
	switch name {
	case investigation.FieldSeverity:
		m.ClearSeverity()
		return nil
	case investigation.FieldFinalConfidence:
		m.ClearFinalConfidence()
		return nil
	case investigation.FieldPlannerModel:
		m.ClearPlannerModel()
		return nil
	case investigation.FieldCaseID:
		m.ClearCaseID()
		return nil
	case investigation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case investigation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case investigation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestigationMutation) ResetField(name string) error {
	switch name {
	case investigation.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case investigation.FieldMode:
		m.ResetMode()
		return nil
	case investigation.FieldStatus:
		m.ResetStatus()
		return nil
	case investigation.FieldSeverity:
		m.ResetSeverity()
		return nil
	case investigation.FieldFinalConfidence:
		m.ResetFinalConfidence()
		return nil
	case investigation.FieldStepCount:
		m.ResetStepCount()
		return nil
	case investigation.FieldMaxSteps:
		m.ResetMaxSteps()
		return nil
	case investigation.FieldPlannerModel:
		m.ResetPlannerModel()
		return nil
	case investigation.FieldCaseID:
		m.ResetCaseID()
		return nil
	case investigation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case investigation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case investigation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case investigation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestigationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tool_executions != nil {
		edges = append(edges, investigation.EdgeToolExecutions)
	}
	if m.insights != nil {
		edges = append(edges, investigation.EdgeInsights)
	}
	if m.rule_drafts != nil {
		edges = append(edges, investigation.EdgeRuleDrafts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestigationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.tool_executions))
		for id := range m.tool_executions {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.insights))
		for id := range m.insights {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeRuleDrafts:
		ids := make([]ent.Value, 0, len(m.rule_drafts))
		for id := range m.rule_drafts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestigationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtool_executions != nil {
		edges = append(edges, investigation.EdgeToolExecutions)
	}
	if m.removedinsights != nil {
		edges = append(edges, investigation.EdgeInsights)
	}
	if m.removedrule_drafts != nil {
		edges = append(edges, investigation.EdgeRuleDrafts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestigationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.removedtool_executions))
		for id := range m.removedtool_executions {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.removedinsights))
		for id := range m.removedinsights {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeRuleDrafts:
		ids := make([]ent.Value, 0, len(m.removedrule_drafts))
		for id := range m.removedrule_drafts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestigationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtool_executions {
		edges = append(edges, investigation.EdgeToolExecutions)
	}
	if m.clearedinsights {
		edges = append(edges, investigation.EdgeInsights)
	}
	if m.clearedrule_drafts {
		edges = append(edges, investigation.EdgeRuleDrafts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestigationMutation) EdgeCleared(name string) bool {
	switch name {
	case investigation.EdgeToolExecutions:
		return m.clearedtool_executions
	case investigation.EdgeInsights:
		return m.clearedinsights
	case investigation.EdgeRuleDrafts:
		return m.clearedrule_drafts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestigationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Investigation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestigationMutation) ResetEdge(name string) error {
	switch name {
	case investigation.EdgeToolExecutions:
		m.ResetToolExecutions()
		return nil
	case investigation.EdgeInsights:
		m.ResetInsights()
		return nil
	case investigation.EdgeRuleDrafts:
		m.ResetRuleDrafts()
		return nil
	}
	return fmt.Errorf("unknown Investigation edge %s", name)
}

// RecommendationMutation represents an operation that mutates the Recommendation nodes in the graph.
type RecommendationMutation struct {
	config
	op             Op
	typ            string
	id             *string
	rec_type       *string
	status         *recommendation.Status
	priority       *int
	addpriority    *int
	title          *string
	impact         *string
	payload        *map[string]interface{}
	comment        *string
	severity       *recommendation.Severity
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	insight        *string
	clearedinsight bool
	done           bool
	oldValue       func(context.Context) (*Recommendation, error)
	predicates     []predicate.Recommendation
}

var _ ent.Mutation = (*RecommendationMutation)(nil)

// recommendationOption allows management of the mutation configuration using functional options.
type recommendationOption func(*RecommendationMutation)

// newRecommendationMutation creates new mutation for the Recommendation entity.
func newRecommendationMutation(c config, op Op, opts ...recommendationOption) *RecommendationMutation {
	m := &RecommendationMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendationID sets the ID field of the mutation.
func withRecommendationID(id string) recommendationOption {
	return func(m *RecommendationMutation) {
		var (
			err   error
			once  sync.Once
			value *Recommendation
		)
		m.oldValue = func(ctx context.Context) (*Recommendation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recommendation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendation sets the old Recommendation of the mutation.
func withRecommendation(node *Recommendation) recommendationOption {
	return func(m *RecommendationMutation) {
		m.oldValue = func(context.Context) (*Recommendation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recommendation entities.
func (m *RecommendationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recommendation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInsightID sets the "insight_id" field.
func (m *RecommendationMutation) SetInsightID(s string) {
	m.insight = &s
}

// InsightID returns the value of the "insight_id" field in the mutation.
func (m *RecommendationMutation) InsightID() (r string, exists bool) {
	v := m.insight
	if v == nil {
		return
	}
	return *v, true
}

// OldInsightID returns the old "insight_id" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldInsightID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsightID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsightID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsightID: %w", err)
	}
	return oldValue.InsightID, nil
}

// ResetInsightID resets all changes to the "insight_id" field.
func (m *RecommendationMutation) ResetInsightID() {
	m.insight = nil
}

// SetRecType sets the "rec_type" field.
func (m *RecommendationMutation) SetRecType(s string) {
	m.rec_type = &s
}

// RecType returns the value of the "rec_type" field in the mutation.
func (m *RecommendationMutation) RecType() (r string, exists bool) {
	v := m.rec_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRecType returns the old "rec_type" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldRecType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecType: %w", err)
	}
	return oldValue.RecType, nil
}

// ResetRecType resets all changes to the "rec_type" field.
func (m *RecommendationMutation) ResetRecType() {
	m.rec_type = nil
}

// SetStatus sets the "status" field.
func (m *RecommendationMutation) SetStatus(r recommendation.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecommendationMutation) Status() (r recommendation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldStatus(ctx context.Context) (v recommendation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecommendationMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *RecommendationMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RecommendationMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *RecommendationMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *RecommendationMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *RecommendationMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetTitle sets the "title" field.
func (m *RecommendationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RecommendationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RecommendationMutation) ResetTitle() {
	m.title = nil
}

// SetImpact sets the "impact" field.
func (m *RecommendationMutation) SetImpact(s string) {
	m.impact = &s
}

// Impact returns the value of the "impact" field in the mutation.
func (m *RecommendationMutation) Impact() (r string, exists bool) {
	v := m.impact
	if v == nil {
		return
	}
	return *v, true
}

// OldImpact returns the old "impact" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldImpact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpact: %w", err)
	}
	return oldValue.Impact, nil
}

// ClearImpact clears the value of the "impact" field.
func (m *RecommendationMutation) ClearImpact() {
	m.impact = nil
	m.clearedFields[recommendation.FieldImpact] = struct{}{}
}

// ImpactCleared returns if the "impact" field was cleared in this mutation.
func (m *RecommendationMutation) ImpactCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldImpact]
	return ok
}

// ResetImpact resets all changes to the "impact" field.
func (m *RecommendationMutation) ResetImpact() {
	m.impact = nil
	delete(m.clearedFields, recommendation.FieldImpact)
}

// SetPayload sets the "payload" field.
func (m *RecommendationMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RecommendationMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *RecommendationMutation) ResetPayload() {
	m.payload = nil
}

// SetComment sets the "comment" field.
func (m *RecommendationMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *RecommendationMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *RecommendationMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[recommendation.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *RecommendationMutation) CommentCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *RecommendationMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, recommendation.FieldComment)
}

// SetSeverity sets the "severity" field.
func (m *RecommendationMutation) SetSeverity(r recommendation.Severity) {
	m.severity = &r
}

// Severity returns the value of the "severity" field in the mutation.
func (m *RecommendationMutation) Severity() (r recommendation.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldSeverity(ctx context.Context) (v recommendation.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *RecommendationMutation) ResetSeverity() {
	m.severity = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecommendationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecommendationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecommendationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecommendationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecommendationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecommendationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInsight clears the "insight" edge to the Insight entity.
func (m *RecommendationMutation) ClearInsight() {
	m.clearedinsight = true
	m.clearedFields[recommendation.FieldInsightID] = struct{}{}
}

// InsightCleared reports if the "insight" edge to the Insight entity was cleared.
func (m *RecommendationMutation) InsightCleared() bool {
	return m.clearedinsight
}

// InsightIDs returns the "insight" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InsightID instead. It exists only for internal usage by the builders.
func (m *RecommendationMutation) InsightIDs() (ids []string) {
	if id := m.insight; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInsight resets all changes to the "insight" edge.
func (m *RecommendationMutation) ResetInsight() {
	m.insight = nil
	m.clearedinsight = false
}

// Where appends a list predicates to the RecommendationMutation builder.
func (m *RecommendationMutation) Where(ps ...predicate.Recommendation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recommendation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recommendation).
func (m *RecommendationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.insight != nil {
		fields = append(fields, recommendation.FieldInsightID)
	}
	if m.rec_type != nil {
		fields = append(fields, recommendation.FieldRecType)
	}
	if m.status != nil {
		fields = append(fields, recommendation.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, recommendation.FieldPriority)
	}
	if m.title != nil {
		fields = append(fields, recommendation.FieldTitle)
	}
	if m.impact != nil {
		fields = append(fields, recommendation.FieldImpact)
	}
	if m.payload != nil {
		fields = append(fields, recommendation.FieldPayload)
	}
	if m.comment != nil {
		fields = append(fields, recommendation.FieldComment)
	}
	if m.severity != nil {
		fields = append(fields, recommendation.FieldSeverity)
	}
	if m.created_at != nil {
		fields = append(fields, recommendation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recommendation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldInsightID:
		return m.InsightID()
	case recommendation.FieldRecType:
		return m.RecType()
	case recommendation.FieldStatus:
		return m.Status()
	case recommendation.FieldPriority:
		return m.Priority()
	case recommendation.FieldTitle:
		return m.Title()
	case recommendation.FieldImpact:
		return m.Impact()
	case recommendation.FieldPayload:
		return m.Payload()
	case recommendation.FieldComment:
		return m.Comment()
	case recommendation.FieldSeverity:
		return m.Severity()
	case recommendation.FieldCreatedAt:
		return m.CreatedAt()
	case recommendation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendation.FieldInsightID:
		return m.OldInsightID(ctx)
	case recommendation.FieldRecType:
		return m.OldRecType(ctx)
	case recommendation.FieldStatus:
		return m.OldStatus(ctx)
	case recommendation.FieldPriority:
		return m.OldPriority(ctx)
	case recommendation.FieldTitle:
		return m.OldTitle(ctx)
	case recommendation.FieldImpact:
		return m.OldImpact(ctx)
	case recommendation.FieldPayload:
		return m.OldPayload(ctx)
	case recommendation.FieldComment:
		return m.OldComment(ctx)
	case recommendation.FieldSeverity:
		return m.OldSeverity(ctx)
	case recommendation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recommendation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recommendation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldInsightID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsightID(v)
		return nil
	case recommendation.FieldRecType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecType(v)
		return nil
	case recommendation.FieldStatus:
		v, ok := value.(recommendation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recommendation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case recommendation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case recommendation.FieldImpact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpact(v)
		return nil
	case recommendation.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case recommendation.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case recommendation.FieldSeverity:
		v, ok := value.(recommendation.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case recommendation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recommendation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendationMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, recommendation.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recommendation.FieldImpact) {
		fields = append(fields, recommendation.FieldImpact)
	}
	if m.FieldCleared(recommendation.FieldComment) {
		fields = append(fields, recommendation.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendationMutation) ClearField(name string) error {
	switch name {
	case recommendation.FieldImpact:
		m.ClearImpact()
		return nil
	case recommendation.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown Recommendation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendationMutation) ResetField(name string) error {
	switch name {
	case recommendation.FieldInsightID:
		m.ResetInsightID()
		return nil
	case recommendation.FieldRecType:
		m.ResetRecType()
		return nil
	case recommendation.FieldStatus:
		m.ResetStatus()
		return nil
	case recommendation.FieldPriority:
		m.ResetPriority()
		return nil
	case recommendation.FieldTitle:
		m.ResetTitle()
		return nil
	case recommendation.FieldImpact:
		m.ResetImpact()
		return nil
	case recommendation.FieldPayload:
		m.ResetPayload()
		return nil
	case recommendation.FieldComment:
		m.ResetComment()
		return nil
	case recommendation.FieldSeverity:
		m.ResetSeverity()
		return nil
	case recommendation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recommendation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.insight != nil {
		edges = append(edges, recommendation.EdgeInsight)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recommendation.EdgeInsight:
		if id := m.insight; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinsight {
		edges = append(edges, recommendation.EdgeInsight)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendationMutation) EdgeCleared(name string) bool {
	switch name {
	case recommendation.EdgeInsight:
		return m.clearedinsight
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendationMutation) ClearEdge(name string) error {
	switch name {
	case recommendation.EdgeInsight:
		m.ClearInsight()
		return nil
	}
	return fmt.Errorf("unknown Recommendation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendationMutation) ResetEdge(name string) error {
	switch name {
	case recommendation.EdgeInsight:
		m.ResetInsight()
		return nil
	}
	return fmt.Errorf("unknown Recommendation edge %s", name)
}

// RuleDraftMutation represents an operation that mutates the RuleDraft nodes in the graph.
type RuleDraftMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	status               *ruledraft.Status
	rule_name            *string
	rule_description     *string
	payload              *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	investigation        *string
	clearedinvestigation bool
	done                 bool
	oldValue             func(context.Context) (*RuleDraft, error)
	predicates           []predicate.RuleDraft
}

var _ ent.Mutation = (*RuleDraftMutation)(nil)

// ruledraftOption allows management of the mutation configuration using functional options.
type ruledraftOption func(*RuleDraftMutation)

// newRuleDraftMutation creates new mutation for the RuleDraft entity.
func newRuleDraftMutation(c config, op Op, opts ...ruledraftOption) *RuleDraftMutation {
	m := &RuleDraftMutation{
		config:        c,
		op:            op,
		typ:           TypeRuleDraft,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleDraftID sets the ID field of the mutation.
func withRuleDraftID(id string) ruledraftOption {
	return func(m *RuleDraftMutation) {
		var (
			err   error
			once  sync.Once
			value *RuleDraft
		)
		m.oldValue = func(ctx context.Context) (*RuleDraft, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RuleDraft.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRuleDraft sets the old RuleDraft of the mutation.
func withRuleDraft(node *RuleDraft) ruledraftOption {
	return func(m *RuleDraftMutation) {
		m.oldValue = func(context.Context) (*RuleDraft, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleDraftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleDraftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RuleDraft entities.
func (m *RuleDraftMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleDraftMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleDraftMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RuleDraft.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvestigationID sets the "investigation_id" field.
func (m *RuleDraftMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *RuleDraftMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the RuleDraft entity.
// If the RuleDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleDraftMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *RuleDraftMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetStatus sets the "status" field.
func (m *RuleDraftMutation) SetStatus(r ruledraft.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RuleDraftMutation) Status() (r ruledraft.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RuleDraft entity.
// If the RuleDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleDraftMutation) OldStatus(ctx context.Context) (v ruledraft.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RuleDraftMutation) ResetStatus() {
	m.status = nil
}

// SetRuleName sets the "rule_name" field.
func (m *RuleDraftMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *RuleDraftMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the RuleDraft entity.
// If the RuleDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleDraftMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *RuleDraftMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetRuleDescription sets the "rule_description" field.
func (m *RuleDraftMutation) SetRuleDescription(s string) {
	m.rule_description = &s
}

// RuleDescription returns the value of the "rule_description" field in the mutation.
func (m *RuleDraftMutation) RuleDescription() (r string, exists bool) {
	v := m.rule_description
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleDescription returns the old "rule_description" field's value of the RuleDraft entity.
// If the RuleDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleDraftMutation) OldRuleDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleDescription: %w", err)
	}
	return oldValue.RuleDescription, nil
}

// ResetRuleDescription resets all changes to the "rule_description" field.
func (m *RuleDraftMutation) ResetRuleDescription() {
	m.rule_description = nil
}

// SetPayload sets the "payload" field.
func (m *RuleDraftMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RuleDraftMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RuleDraft entity.
// If the RuleDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleDraftMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *RuleDraftMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RuleDraftMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RuleDraftMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RuleDraft entity.
// If the RuleDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleDraftMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RuleDraftMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RuleDraftMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RuleDraftMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RuleDraft entity.
// If the RuleDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleDraftMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RuleDraftMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *RuleDraftMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[ruledraft.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *RuleDraftMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *RuleDraftMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *RuleDraftMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the RuleDraftMutation builder.
func (m *RuleDraftMutation) Where(ps ...predicate.RuleDraft) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleDraftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleDraftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RuleDraft, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleDraftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleDraftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RuleDraft).
func (m *RuleDraftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleDraftMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.investigation != nil {
		fields = append(fields, ruledraft.FieldInvestigationID)
	}
	if m.status != nil {
		fields = append(fields, ruledraft.FieldStatus)
	}
	if m.rule_name != nil {
		fields = append(fields, ruledraft.FieldRuleName)
	}
	if m.rule_description != nil {
		fields = append(fields, ruledraft.FieldRuleDescription)
	}
	if m.payload != nil {
		fields = append(fields, ruledraft.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, ruledraft.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ruledraft.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleDraftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ruledraft.FieldInvestigationID:
		return m.InvestigationID()
	case ruledraft.FieldStatus:
		return m.Status()
	case ruledraft.FieldRuleName:
		return m.RuleName()
	case ruledraft.FieldRuleDescription:
		return m.RuleDescription()
	case ruledraft.FieldPayload:
		return m.Payload()
	case ruledraft.FieldCreatedAt:
		return m.CreatedAt()
	case ruledraft.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleDraftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ruledraft.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case ruledraft.FieldStatus:
		return m.OldStatus(ctx)
	case ruledraft.FieldRuleName:
		return m.OldRuleName(ctx)
	case ruledraft.FieldRuleDescription:
		return m.OldRuleDescription(ctx)
	case ruledraft.FieldPayload:
		return m.OldPayload(ctx)
	case ruledraft.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ruledraft.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RuleDraft field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleDraftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ruledraft.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case ruledraft.FieldStatus:
		v, ok := value.(ruledraft.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ruledraft.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case ruledraft.FieldRuleDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleDescription(v)
		return nil
	case ruledraft.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case ruledraft.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ruledraft.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RuleDraft field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleDraftMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleDraftMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleDraftMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RuleDraft numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleDraftMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleDraftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleDraftMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RuleDraft nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleDraftMutation) ResetField(name string) error {
	switch name {
	case ruledraft.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case ruledraft.FieldStatus:
		m.ResetStatus()
		return nil
	case ruledraft.FieldRuleName:
		m.ResetRuleName()
		return nil
	case ruledraft.FieldRuleDescription:
		m.ResetRuleDescription()
		return nil
	case ruledraft.FieldPayload:
		m.ResetPayload()
		return nil
	case ruledraft.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ruledraft.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RuleDraft field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleDraftMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, ruledraft.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleDraftMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ruledraft.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleDraftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleDraftMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleDraftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, ruledraft.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleDraftMutation) EdgeCleared(name string) bool {
	switch name {
	case ruledraft.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleDraftMutation) ClearEdge(name string) error {
	switch name {
	case ruledraft.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown RuleDraft unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleDraftMutation) ResetEdge(name string) error {
	switch name {
	case ruledraft.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown RuleDraft edge %s", name)
}

// StateSnapshotMutation represents an operation that mutates the StateSnapshot nodes in the graph.
type StateSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *string
	state         *map[string]interface{}
	version       *int
	addversion    *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StateSnapshot, error)
	predicates    []predicate.StateSnapshot
}

var _ ent.Mutation = (*StateSnapshotMutation)(nil)

// statesnapshotOption allows management of the mutation configuration using functional options.
type statesnapshotOption func(*StateSnapshotMutation)

// newStateSnapshotMutation creates new mutation for the StateSnapshot entity.
func newStateSnapshotMutation(c config, op Op, opts ...statesnapshotOption) *StateSnapshotMutation {
	m := &StateSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeStateSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStateSnapshotID sets the ID field of the mutation.
func withStateSnapshotID(id string) statesnapshotOption {
	return func(m *StateSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *StateSnapshot
		)
		m.oldValue = func(ctx context.Context) (*StateSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StateSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStateSnapshot sets the old StateSnapshot of the mutation.
func withStateSnapshot(node *StateSnapshot) statesnapshotOption {
	return func(m *StateSnapshotMutation) {
		m.oldValue = func(context.Context) (*StateSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StateSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StateSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StateSnapshot entities.
func (m *StateSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StateSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StateSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StateSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetState sets the "state" field.
func (m *StateSnapshotMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *StateSnapshotMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the StateSnapshot entity.
// If the StateSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSnapshotMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *StateSnapshotMutation) ResetState() {
	m.state = nil
}

// SetVersion sets the "version" field.
func (m *StateSnapshotMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *StateSnapshotMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the StateSnapshot entity.
// If the StateSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSnapshotMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *StateSnapshotMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *StateSnapshotMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *StateSnapshotMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StateSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StateSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StateSnapshot entity.
// If the StateSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StateSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StateSnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StateSnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StateSnapshot entity.
// If the StateSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StateSnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StateSnapshotMutation builder.
func (m *StateSnapshotMutation) Where(ps ...predicate.StateSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StateSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StateSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StateSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StateSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StateSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StateSnapshot).
func (m *StateSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StateSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.state != nil {
		fields = append(fields, statesnapshot.FieldState)
	}
	if m.version != nil {
		fields = append(fields, statesnapshot.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, statesnapshot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, statesnapshot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StateSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statesnapshot.FieldState:
		return m.State()
	case statesnapshot.FieldVersion:
		return m.Version()
	case statesnapshot.FieldCreatedAt:
		return m.CreatedAt()
	case statesnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StateSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statesnapshot.FieldState:
		return m.OldState(ctx)
	case statesnapshot.FieldVersion:
		return m.OldVersion(ctx)
	case statesnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case statesnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StateSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statesnapshot.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case statesnapshot.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case statesnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case statesnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StateSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StateSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, statesnapshot.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StateSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statesnapshot.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statesnapshot.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown StateSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StateSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StateSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StateSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StateSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StateSnapshotMutation) ResetField(name string) error {
	switch name {
	case statesnapshot.FieldState:
		m.ResetState()
		return nil
	case statesnapshot.FieldVersion:
		m.ResetVersion()
		return nil
	case statesnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case statesnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StateSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StateSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StateSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StateSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StateSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StateSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StateSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StateSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StateSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StateSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StateSnapshot edge %s", name)
}

// ToolExecutionLogMutation represents an operation that mutates the ToolExecutionLog nodes in the graph.
type ToolExecutionLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tool_name            *string
	step_number          *int
	addstep_number       *int
	status               *toolexecutionlog.Status
	input_summary        *string
	output_summary       *string
	error_message        *string
	execution_time_ms    *int
	addexecution_time_ms *int
	created_at           *time.Time
	clearedFields        map[string]struct{}
	investigation        *string
	clearedinvestigation bool
	done                 bool
	oldValue             func(context.Context) (*ToolExecutionLog, error)
	predicates           []predicate.ToolExecutionLog
}

var _ ent.Mutation = (*ToolExecutionLogMutation)(nil)

// toolexecutionlogOption allows management of the mutation configuration using functional options.
type toolexecutionlogOption func(*ToolExecutionLogMutation)

// newToolExecutionLogMutation creates new mutation for the ToolExecutionLog entity.
func newToolExecutionLogMutation(c config, op Op, opts ...toolexecutionlogOption) *ToolExecutionLogMutation {
	m := &ToolExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeToolExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolExecutionLogID sets the ID field of the mutation.
func withToolExecutionLogID(id string) toolexecutionlogOption {
	return func(m *ToolExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ToolExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolExecutionLog sets the old ToolExecutionLog of the mutation.
func withToolExecutionLog(node *ToolExecutionLog) toolexecutionlogOption {
	return func(m *ToolExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ToolExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolExecutionLog entities.
func (m *ToolExecutionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolExecutionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolExecutionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvestigationID sets the "investigation_id" field.
func (m *ToolExecutionLogMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *ToolExecutionLogMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *ToolExecutionLogMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolExecutionLogMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolExecutionLogMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolExecutionLogMutation) ResetToolName() {
	m.tool_name = nil
}

// SetStepNumber sets the "step_number" field.
func (m *ToolExecutionLogMutation) SetStepNumber(i int) {
	m.step_number = &i
	m.addstep_number = nil
}

// StepNumber returns the value of the "step_number" field in the mutation.
func (m *ToolExecutionLogMutation) StepNumber() (r int, exists bool) {
	v := m.step_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNumber returns the old "step_number" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldStepNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNumber: %w", err)
	}
	return oldValue.StepNumber, nil
}

// AddStepNumber adds i to the "step_number" field.
func (m *ToolExecutionLogMutation) AddStepNumber(i int) {
	if m.addstep_number != nil {
		*m.addstep_number += i
	} else {
		m.addstep_number = &i
	}
}

// AddedStepNumber returns the value that was added to the "step_number" field in this mutation.
func (m *ToolExecutionLogMutation) AddedStepNumber() (r int, exists bool) {
	v := m.addstep_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNumber resets all changes to the "step_number" field.
func (m *ToolExecutionLogMutation) ResetStepNumber() {
	m.step_number = nil
	m.addstep_number = nil
}

// SetStatus sets the "status" field.
func (m *ToolExecutionLogMutation) SetStatus(t toolexecutionlog.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolExecutionLogMutation) Status() (r toolexecutionlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldStatus(ctx context.Context) (v toolexecutionlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolExecutionLogMutation) ResetStatus() {
	m.status = nil
}

// SetInputSummary sets the "input_summary" field.
func (m *ToolExecutionLogMutation) SetInputSummary(s string) {
	m.input_summary = &s
}

// InputSummary returns the value of the "input_summary" field in the mutation.
func (m *ToolExecutionLogMutation) InputSummary() (r string, exists bool) {
	v := m.input_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSummary returns the old "input_summary" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldInputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSummary: %w", err)
	}
	return oldValue.InputSummary, nil
}

// ClearInputSummary clears the value of the "input_summary" field.
func (m *ToolExecutionLogMutation) ClearInputSummary() {
	m.input_summary = nil
	m.clearedFields[toolexecutionlog.FieldInputSummary] = struct{}{}
}

// InputSummaryCleared returns if the "input_summary" field was cleared in this mutation.
func (m *ToolExecutionLogMutation) InputSummaryCleared() bool {
	_, ok := m.clearedFields[toolexecutionlog.FieldInputSummary]
	return ok
}

// ResetInputSummary resets all changes to the "input_summary" field.
func (m *ToolExecutionLogMutation) ResetInputSummary() {
	m.input_summary = nil
	delete(m.clearedFields, toolexecutionlog.FieldInputSummary)
}

// SetOutputSummary sets the "output_summary" field.
func (m *ToolExecutionLogMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *ToolExecutionLogMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *ToolExecutionLogMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[toolexecutionlog.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *ToolExecutionLogMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[toolexecutionlog.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *ToolExecutionLogMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, toolexecutionlog.FieldOutputSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *ToolExecutionLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ToolExecutionLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ToolExecutionLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[toolexecutionlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ToolExecutionLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[toolexecutionlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ToolExecutionLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, toolexecutionlog.FieldErrorMessage)
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *ToolExecutionLogMutation) SetExecutionTimeMs(i int) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *ToolExecutionLogMutation) ExecutionTimeMs() (r int, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldExecutionTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *ToolExecutionLogMutation) AddExecutionTimeMs(i int) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *ToolExecutionLogMutation) AddedExecutionTimeMs() (r int, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *ToolExecutionLogMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolExecutionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolExecutionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolExecutionLog entity.
// If the ToolExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolExecutionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *ToolExecutionLogMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[toolexecutionlog.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *ToolExecutionLogMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *ToolExecutionLogMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *ToolExecutionLogMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the ToolExecutionLogMutation builder.
func (m *ToolExecutionLogMutation) Where(ps ...predicate.ToolExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolExecutionLog).
func (m *ToolExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.investigation != nil {
		fields = append(fields, toolexecutionlog.FieldInvestigationID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolexecutionlog.FieldToolName)
	}
	if m.step_number != nil {
		fields = append(fields, toolexecutionlog.FieldStepNumber)
	}
	if m.status != nil {
		fields = append(fields, toolexecutionlog.FieldStatus)
	}
	if m.input_summary != nil {
		fields = append(fields, toolexecutionlog.FieldInputSummary)
	}
	if m.output_summary != nil {
		fields = append(fields, toolexecutionlog.FieldOutputSummary)
	}
	if m.error_message != nil {
		fields = append(fields, toolexecutionlog.FieldErrorMessage)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, toolexecutionlog.FieldExecutionTimeMs)
	}
	if m.created_at != nil {
		fields = append(fields, toolexecutionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolexecutionlog.FieldInvestigationID:
		return m.InvestigationID()
	case toolexecutionlog.FieldToolName:
		return m.ToolName()
	case toolexecutionlog.FieldStepNumber:
		return m.StepNumber()
	case toolexecutionlog.FieldStatus:
		return m.Status()
	case toolexecutionlog.FieldInputSummary:
		return m.InputSummary()
	case toolexecutionlog.FieldOutputSummary:
		return m.OutputSummary()
	case toolexecutionlog.FieldErrorMessage:
		return m.ErrorMessage()
	case toolexecutionlog.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case toolexecutionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolexecutionlog.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case toolexecutionlog.FieldToolName:
		return m.OldToolName(ctx)
	case toolexecutionlog.FieldStepNumber:
		return m.OldStepNumber(ctx)
	case toolexecutionlog.FieldStatus:
		return m.OldStatus(ctx)
	case toolexecutionlog.FieldInputSummary:
		return m.OldInputSummary(ctx)
	case toolexecutionlog.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case toolexecutionlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case toolexecutionlog.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case toolexecutionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolexecutionlog.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case toolexecutionlog.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolexecutionlog.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNumber(v)
		return nil
	case toolexecutionlog.FieldStatus:
		v, ok := value.(toolexecutionlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolexecutionlog.FieldInputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSummary(v)
		return nil
	case toolexecutionlog.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case toolexecutionlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case toolexecutionlog.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case toolexecutionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolExecutionLogMutation) AddedFields() []string {
	var fields []string
	if m.addstep_number != nil {
		fields = append(fields, toolexecutionlog.FieldStepNumber)
	}
	if m.addexecution_time_ms != nil {
		fields = append(fields, toolexecutionlog.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolexecutionlog.FieldStepNumber:
		return m.AddedStepNumber()
	case toolexecutionlog.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolexecutionlog.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNumber(v)
		return nil
	case toolexecutionlog.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolExecutionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolexecutionlog.FieldInputSummary) {
		fields = append(fields, toolexecutionlog.FieldInputSummary)
	}
	if m.FieldCleared(toolexecutionlog.FieldOutputSummary) {
		fields = append(fields, toolexecutionlog.FieldOutputSummary)
	}
	if m.FieldCleared(toolexecutionlog.FieldErrorMessage) {
		fields = append(fields, toolexecutionlog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolExecutionLogMutation) ClearField(name string) error {
	switch name {
	case toolexecutionlog.FieldInputSummary:
		m.ClearInputSummary()
		return nil
	case toolexecutionlog.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case toolexecutionlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ToolExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolExecutionLogMutation) ResetField(name string) error {
	switch name {
	case toolexecutionlog.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case toolexecutionlog.FieldToolName:
		m.ResetToolName()
		return nil
	case toolexecutionlog.FieldStepNumber:
		m.ResetStepNumber()
		return nil
	case toolexecutionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case toolexecutionlog.FieldInputSummary:
		m.ResetInputSummary()
		return nil
	case toolexecutionlog.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case toolexecutionlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case toolexecutionlog.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case toolexecutionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, toolexecutionlog.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolExecutionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolexecutionlog.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, toolexecutionlog.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolExecutionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case toolexecutionlog.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolExecutionLogMutation) ClearEdge(name string) error {
	switch name {
	case toolexecutionlog.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown ToolExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolExecutionLogMutation) ResetEdge(name string) error {
	switch name {
	case toolexecutionlog.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown ToolExecutionLog edge %s", name)
}

// TransactionEmbeddingMutation represents an operation that mutates the TransactionEmbedding nodes in the graph.
type TransactionEmbeddingMutation struct {
	config
	op             Op
	typ            string
	id             *string
	embedding      *pgvector.Vector
	summary        *string
	amount         *float64
	addamount      *float64
	merchant_id    *string
	transaction_at *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TransactionEmbedding, error)
	predicates     []predicate.TransactionEmbedding
}

var _ ent.Mutation = (*TransactionEmbeddingMutation)(nil)

// transactionembeddingOption allows management of the mutation configuration using functional options.
type transactionembeddingOption func(*TransactionEmbeddingMutation)

// newTransactionEmbeddingMutation creates new mutation for the TransactionEmbedding entity.
func newTransactionEmbeddingMutation(c config, op Op, opts ...transactionembeddingOption) *TransactionEmbeddingMutation {
	m := &TransactionEmbeddingMutation{
		config:        c,
		op:            op,
		typ:           TypeTransactionEmbedding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionEmbeddingID sets the ID field of the mutation.
func withTransactionEmbeddingID(id string) transactionembeddingOption {
	return func(m *TransactionEmbeddingMutation) {
		var (
			err   error
			once  sync.Once
			value *TransactionEmbedding
		)
		m.oldValue = func(ctx context.Context) (*TransactionEmbedding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TransactionEmbedding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransactionEmbedding sets the old TransactionEmbedding of the mutation.
func withTransactionEmbedding(node *TransactionEmbedding) transactionembeddingOption {
	return func(m *TransactionEmbeddingMutation) {
		m.oldValue = func(context.Context) (*TransactionEmbedding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionEmbeddingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionEmbeddingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TransactionEmbedding entities.
func (m *TransactionEmbeddingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionEmbeddingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionEmbeddingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TransactionEmbedding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmbedding sets the "embedding" field.
func (m *TransactionEmbeddingMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *TransactionEmbeddingMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the TransactionEmbedding entity.
// If the TransactionEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionEmbeddingMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *TransactionEmbeddingMutation) ResetEmbedding() {
	m.embedding = nil
}

// SetSummary sets the "summary" field.
func (m *TransactionEmbeddingMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TransactionEmbeddingMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the TransactionEmbedding entity.
// If the TransactionEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionEmbeddingMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *TransactionEmbeddingMutation) ResetSummary() {
	m.summary = nil
}

// SetAmount sets the "amount" field.
func (m *TransactionEmbeddingMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TransactionEmbeddingMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the TransactionEmbedding entity.
// If the TransactionEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionEmbeddingMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *TransactionEmbeddingMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *TransactionEmbeddingMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *TransactionEmbeddingMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetMerchantID sets the "merchant_id" field.
func (m *TransactionEmbeddingMutation) SetMerchantID(s string) {
	m.merchant_id = &s
}

// MerchantID returns the value of the "merchant_id" field in the mutation.
func (m *TransactionEmbeddingMutation) MerchantID() (r string, exists bool) {
	v := m.merchant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantID returns the old "merchant_id" field's value of the TransactionEmbedding entity.
// If the TransactionEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionEmbeddingMutation) OldMerchantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantID: %w", err)
	}
	return oldValue.MerchantID, nil
}

// ResetMerchantID resets all changes to the "merchant_id" field.
func (m *TransactionEmbeddingMutation) ResetMerchantID() {
	m.merchant_id = nil
}

// SetTransactionAt sets the "transaction_at" field.
func (m *TransactionEmbeddingMutation) SetTransactionAt(t time.Time) {
	m.transaction_at = &t
}

// TransactionAt returns the value of the "transaction_at" field in the mutation.
func (m *TransactionEmbeddingMutation) TransactionAt() (r time.Time, exists bool) {
	v := m.transaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionAt returns the old "transaction_at" field's value of the TransactionEmbedding entity.
// If the TransactionEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionEmbeddingMutation) OldTransactionAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionAt: %w", err)
	}
	return oldValue.TransactionAt, nil
}

// ResetTransactionAt resets all changes to the "transaction_at" field.
func (m *TransactionEmbeddingMutation) ResetTransactionAt() {
	m.transaction_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionEmbeddingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionEmbeddingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TransactionEmbedding entity.
// If the TransactionEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionEmbeddingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionEmbeddingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TransactionEmbeddingMutation builder.
func (m *TransactionEmbeddingMutation) Where(ps ...predicate.TransactionEmbedding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionEmbeddingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionEmbeddingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TransactionEmbedding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionEmbeddingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionEmbeddingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TransactionEmbedding).
func (m *TransactionEmbeddingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionEmbeddingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.embedding != nil {
		fields = append(fields, transactionembedding.FieldEmbedding)
	}
	if m.summary != nil {
		fields = append(fields, transactionembedding.FieldSummary)
	}
	if m.amount != nil {
		fields = append(fields, transactionembedding.FieldAmount)
	}
	if m.merchant_id != nil {
		fields = append(fields, transactionembedding.FieldMerchantID)
	}
	if m.transaction_at != nil {
		fields = append(fields, transactionembedding.FieldTransactionAt)
	}
	if m.created_at != nil {
		fields = append(fields, transactionembedding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionEmbeddingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transactionembedding.FieldEmbedding:
		return m.Embedding()
	case transactionembedding.FieldSummary:
		return m.Summary()
	case transactionembedding.FieldAmount:
		return m.Amount()
	case transactionembedding.FieldMerchantID:
		return m.MerchantID()
	case transactionembedding.FieldTransactionAt:
		return m.TransactionAt()
	case transactionembedding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionEmbeddingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transactionembedding.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case transactionembedding.FieldSummary:
		return m.OldSummary(ctx)
	case transactionembedding.FieldAmount:
		return m.OldAmount(ctx)
	case transactionembedding.FieldMerchantID:
		return m.OldMerchantID(ctx)
	case transactionembedding.FieldTransactionAt:
		return m.OldTransactionAt(ctx)
	case transactionembedding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TransactionEmbedding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionEmbeddingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transactionembedding.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case transactionembedding.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case transactionembedding.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case transactionembedding.FieldMerchantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantID(v)
		return nil
	case transactionembedding.FieldTransactionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionAt(v)
		return nil
	case transactionembedding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TransactionEmbedding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionEmbeddingMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, transactionembedding.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionEmbeddingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transactionembedding.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionEmbeddingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transactionembedding.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown TransactionEmbedding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionEmbeddingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionEmbeddingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionEmbeddingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TransactionEmbedding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionEmbeddingMutation) ResetField(name string) error {
	switch name {
	case transactionembedding.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case transactionembedding.FieldSummary:
		m.ResetSummary()
		return nil
	case transactionembedding.FieldAmount:
		m.ResetAmount()
		return nil
	case transactionembedding.FieldMerchantID:
		m.ResetMerchantID()
		return nil
	case transactionembedding.FieldTransactionAt:
		m.ResetTransactionAt()
		return nil
	case transactionembedding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TransactionEmbedding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionEmbeddingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionEmbeddingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionEmbeddingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionEmbeddingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionEmbeddingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionEmbeddingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionEmbeddingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TransactionEmbedding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionEmbeddingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TransactionEmbedding edge %s", name)
}
