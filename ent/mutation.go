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
	"github.com/bestlessonever/readiness/ent/llmrequestevent"
	"github.com/bestlessonever/readiness/ent/predicate"
	"github.com/bestlessonever/readiness/ent/submission"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeSubmission      = "Submission"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	request_body     *string
	response_body    *string
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	status                      *submission.Status
	email                       *string
	parent_name                 *string
	child_name                  *string
	source                      *string
	variant_id                  *string
	last_step                   *int
	addlast_step                *int
	answers                     *map[string][]string
	score                       *int
	addscore                    *int
	band                        *string
	band_label                  *string
	band_description            *string
	primary_instrument          *string
	secondary_instruments       *[]string
	appendsecondary_instruments []string
	action_plan                 *[]string
	appendaction_plan           []string
	plan_source                 *string
	insights                    *map[string]interface{}
	created_at                  *time.Time
	updated_at                  *time.Time
	digest_sent_at              *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*Submission, error)
	predicates                  []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id string) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *SubmissionMutation) SetStatus(s submission.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionMutation) Status() (r submission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStatus(ctx context.Context) (v submission.Status, err error) {
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
func (m *SubmissionMutation) ResetStatus() {
	m.status = nil
}

// SetEmail sets the "email" field.
func (m *SubmissionMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *SubmissionMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *SubmissionMutation) ResetEmail() {
	m.email = nil
}

// SetParentName sets the "parent_name" field.
func (m *SubmissionMutation) SetParentName(s string) {
	m.parent_name = &s
}

// ParentName returns the value of the "parent_name" field in the mutation.
func (m *SubmissionMutation) ParentName() (r string, exists bool) {
	v := m.parent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldParentName returns the old "parent_name" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldParentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentName: %w", err)
	}
	return oldValue.ParentName, nil
}

// ResetParentName resets all changes to the "parent_name" field.
func (m *SubmissionMutation) ResetParentName() {
	m.parent_name = nil
}

// SetChildName sets the "child_name" field.
func (m *SubmissionMutation) SetChildName(s string) {
	m.child_name = &s
}

// ChildName returns the value of the "child_name" field in the mutation.
func (m *SubmissionMutation) ChildName() (r string, exists bool) {
	v := m.child_name
	if v == nil {
		return
	}
	return *v, true
}

// OldChildName returns the old "child_name" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldChildName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildName: %w", err)
	}
	return oldValue.ChildName, nil
}

// ResetChildName resets all changes to the "child_name" field.
func (m *SubmissionMutation) ResetChildName() {
	m.child_name = nil
}

// SetSource sets the "source" field.
func (m *SubmissionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SubmissionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SubmissionMutation) ResetSource() {
	m.source = nil
}

// SetVariantID sets the "variant_id" field.
func (m *SubmissionMutation) SetVariantID(s string) {
	m.variant_id = &s
}

// VariantID returns the value of the "variant_id" field in the mutation.
func (m *SubmissionMutation) VariantID() (r string, exists bool) {
	v := m.variant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantID returns the old "variant_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldVariantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantID: %w", err)
	}
	return oldValue.VariantID, nil
}

// ResetVariantID resets all changes to the "variant_id" field.
func (m *SubmissionMutation) ResetVariantID() {
	m.variant_id = nil
}

// SetLastStep sets the "last_step" field.
func (m *SubmissionMutation) SetLastStep(i int) {
	m.last_step = &i
	m.addlast_step = nil
}

// LastStep returns the value of the "last_step" field in the mutation.
func (m *SubmissionMutation) LastStep() (r int, exists bool) {
	v := m.last_step
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStep returns the old "last_step" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldLastStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStep: %w", err)
	}
	return oldValue.LastStep, nil
}

// AddLastStep adds i to the "last_step" field.
func (m *SubmissionMutation) AddLastStep(i int) {
	if m.addlast_step != nil {
		*m.addlast_step += i
	} else {
		m.addlast_step = &i
	}
}

// AddedLastStep returns the value that was added to the "last_step" field in this mutation.
func (m *SubmissionMutation) AddedLastStep() (r int, exists bool) {
	v := m.addlast_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastStep resets all changes to the "last_step" field.
func (m *SubmissionMutation) ResetLastStep() {
	m.last_step = nil
	m.addlast_step = nil
}

// SetAnswers sets the "answers" field.
func (m *SubmissionMutation) SetAnswers(value map[string][]string) {
	m.answers = &value
}

// Answers returns the value of the "answers" field in the mutation.
func (m *SubmissionMutation) Answers() (r map[string][]string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldAnswers(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ResetAnswers resets all changes to the "answers" field.
func (m *SubmissionMutation) ResetAnswers() {
	m.answers = nil
}

// SetScore sets the "score" field.
func (m *SubmissionMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SubmissionMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *SubmissionMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SubmissionMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SubmissionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetBand sets the "band" field.
func (m *SubmissionMutation) SetBand(s string) {
	m.band = &s
}

// Band returns the value of the "band" field in the mutation.
func (m *SubmissionMutation) Band() (r string, exists bool) {
	v := m.band
	if v == nil {
		return
	}
	return *v, true
}

// OldBand returns the old "band" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBand: %w", err)
	}
	return oldValue.Band, nil
}

// ResetBand resets all changes to the "band" field.
func (m *SubmissionMutation) ResetBand() {
	m.band = nil
}

// SetBandLabel sets the "band_label" field.
func (m *SubmissionMutation) SetBandLabel(s string) {
	m.band_label = &s
}

// BandLabel returns the value of the "band_label" field in the mutation.
func (m *SubmissionMutation) BandLabel() (r string, exists bool) {
	v := m.band_label
	if v == nil {
		return
	}
	return *v, true
}

// OldBandLabel returns the old "band_label" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBandLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBandLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBandLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBandLabel: %w", err)
	}
	return oldValue.BandLabel, nil
}

// ResetBandLabel resets all changes to the "band_label" field.
func (m *SubmissionMutation) ResetBandLabel() {
	m.band_label = nil
}

// SetBandDescription sets the "band_description" field.
func (m *SubmissionMutation) SetBandDescription(s string) {
	m.band_description = &s
}

// BandDescription returns the value of the "band_description" field in the mutation.
func (m *SubmissionMutation) BandDescription() (r string, exists bool) {
	v := m.band_description
	if v == nil {
		return
	}
	return *v, true
}

// OldBandDescription returns the old "band_description" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBandDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBandDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBandDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBandDescription: %w", err)
	}
	return oldValue.BandDescription, nil
}

// ResetBandDescription resets all changes to the "band_description" field.
func (m *SubmissionMutation) ResetBandDescription() {
	m.band_description = nil
}

// SetPrimaryInstrument sets the "primary_instrument" field.
func (m *SubmissionMutation) SetPrimaryInstrument(s string) {
	m.primary_instrument = &s
}

// PrimaryInstrument returns the value of the "primary_instrument" field in the mutation.
func (m *SubmissionMutation) PrimaryInstrument() (r string, exists bool) {
	v := m.primary_instrument
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryInstrument returns the old "primary_instrument" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldPrimaryInstrument(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryInstrument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryInstrument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryInstrument: %w", err)
	}
	return oldValue.PrimaryInstrument, nil
}

// ResetPrimaryInstrument resets all changes to the "primary_instrument" field.
func (m *SubmissionMutation) ResetPrimaryInstrument() {
	m.primary_instrument = nil
}

// SetSecondaryInstruments sets the "secondary_instruments" field.
func (m *SubmissionMutation) SetSecondaryInstruments(s []string) {
	m.secondary_instruments = &s
	m.appendsecondary_instruments = nil
}

// SecondaryInstruments returns the value of the "secondary_instruments" field in the mutation.
func (m *SubmissionMutation) SecondaryInstruments() (r []string, exists bool) {
	v := m.secondary_instruments
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryInstruments returns the old "secondary_instruments" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSecondaryInstruments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryInstruments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryInstruments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryInstruments: %w", err)
	}
	return oldValue.SecondaryInstruments, nil
}

// AppendSecondaryInstruments adds s to the "secondary_instruments" field.
func (m *SubmissionMutation) AppendSecondaryInstruments(s []string) {
	m.appendsecondary_instruments = append(m.appendsecondary_instruments, s...)
}

// AppendedSecondaryInstruments returns the list of values that were appended to the "secondary_instruments" field in this mutation.
func (m *SubmissionMutation) AppendedSecondaryInstruments() ([]string, bool) {
	if len(m.appendsecondary_instruments) == 0 {
		return nil, false
	}
	return m.appendsecondary_instruments, true
}

// ClearSecondaryInstruments clears the value of the "secondary_instruments" field.
func (m *SubmissionMutation) ClearSecondaryInstruments() {
	m.secondary_instruments = nil
	m.appendsecondary_instruments = nil
	m.clearedFields[submission.FieldSecondaryInstruments] = struct{}{}
}

// SecondaryInstrumentsCleared returns if the "secondary_instruments" field was cleared in this mutation.
func (m *SubmissionMutation) SecondaryInstrumentsCleared() bool {
	_, ok := m.clearedFields[submission.FieldSecondaryInstruments]
	return ok
}

// ResetSecondaryInstruments resets all changes to the "secondary_instruments" field.
func (m *SubmissionMutation) ResetSecondaryInstruments() {
	m.secondary_instruments = nil
	m.appendsecondary_instruments = nil
	delete(m.clearedFields, submission.FieldSecondaryInstruments)
}

// SetActionPlan sets the "action_plan" field.
func (m *SubmissionMutation) SetActionPlan(s []string) {
	m.action_plan = &s
	m.appendaction_plan = nil
}

// ActionPlan returns the value of the "action_plan" field in the mutation.
func (m *SubmissionMutation) ActionPlan() (r []string, exists bool) {
	v := m.action_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldActionPlan returns the old "action_plan" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldActionPlan(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionPlan: %w", err)
	}
	return oldValue.ActionPlan, nil
}

// AppendActionPlan adds s to the "action_plan" field.
func (m *SubmissionMutation) AppendActionPlan(s []string) {
	m.appendaction_plan = append(m.appendaction_plan, s...)
}

// AppendedActionPlan returns the list of values that were appended to the "action_plan" field in this mutation.
func (m *SubmissionMutation) AppendedActionPlan() ([]string, bool) {
	if len(m.appendaction_plan) == 0 {
		return nil, false
	}
	return m.appendaction_plan, true
}

// ClearActionPlan clears the value of the "action_plan" field.
func (m *SubmissionMutation) ClearActionPlan() {
	m.action_plan = nil
	m.appendaction_plan = nil
	m.clearedFields[submission.FieldActionPlan] = struct{}{}
}

// ActionPlanCleared returns if the "action_plan" field was cleared in this mutation.
func (m *SubmissionMutation) ActionPlanCleared() bool {
	_, ok := m.clearedFields[submission.FieldActionPlan]
	return ok
}

// ResetActionPlan resets all changes to the "action_plan" field.
func (m *SubmissionMutation) ResetActionPlan() {
	m.action_plan = nil
	m.appendaction_plan = nil
	delete(m.clearedFields, submission.FieldActionPlan)
}

// SetPlanSource sets the "plan_source" field.
func (m *SubmissionMutation) SetPlanSource(s string) {
	m.plan_source = &s
}

// PlanSource returns the value of the "plan_source" field in the mutation.
func (m *SubmissionMutation) PlanSource() (r string, exists bool) {
	v := m.plan_source
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSource returns the old "plan_source" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldPlanSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSource: %w", err)
	}
	return oldValue.PlanSource, nil
}

// ResetPlanSource resets all changes to the "plan_source" field.
func (m *SubmissionMutation) ResetPlanSource() {
	m.plan_source = nil
}

// SetInsights sets the "insights" field.
func (m *SubmissionMutation) SetInsights(value map[string]interface{}) {
	m.insights = &value
}

// Insights returns the value of the "insights" field in the mutation.
func (m *SubmissionMutation) Insights() (r map[string]interface{}, exists bool) {
	v := m.insights
	if v == nil {
		return
	}
	return *v, true
}

// OldInsights returns the old "insights" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldInsights(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsights: %w", err)
	}
	return oldValue.Insights, nil
}

// ClearInsights clears the value of the "insights" field.
func (m *SubmissionMutation) ClearInsights() {
	m.insights = nil
	m.clearedFields[submission.FieldInsights] = struct{}{}
}

// InsightsCleared returns if the "insights" field was cleared in this mutation.
func (m *SubmissionMutation) InsightsCleared() bool {
	_, ok := m.clearedFields[submission.FieldInsights]
	return ok
}

// ResetInsights resets all changes to the "insights" field.
func (m *SubmissionMutation) ResetInsights() {
	m.insights = nil
	delete(m.clearedFields, submission.FieldInsights)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubmissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubmissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SubmissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDigestSentAt sets the "digest_sent_at" field.
func (m *SubmissionMutation) SetDigestSentAt(t time.Time) {
	m.digest_sent_at = &t
}

// DigestSentAt returns the value of the "digest_sent_at" field in the mutation.
func (m *SubmissionMutation) DigestSentAt() (r time.Time, exists bool) {
	v := m.digest_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDigestSentAt returns the old "digest_sent_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldDigestSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigestSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigestSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigestSentAt: %w", err)
	}
	return oldValue.DigestSentAt, nil
}

// ClearDigestSentAt clears the value of the "digest_sent_at" field.
func (m *SubmissionMutation) ClearDigestSentAt() {
	m.digest_sent_at = nil
	m.clearedFields[submission.FieldDigestSentAt] = struct{}{}
}

// DigestSentAtCleared returns if the "digest_sent_at" field was cleared in this mutation.
func (m *SubmissionMutation) DigestSentAtCleared() bool {
	_, ok := m.clearedFields[submission.FieldDigestSentAt]
	return ok
}

// ResetDigestSentAt resets all changes to the "digest_sent_at" field.
func (m *SubmissionMutation) ResetDigestSentAt() {
	m.digest_sent_at = nil
	delete(m.clearedFields, submission.FieldDigestSentAt)
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.status != nil {
		fields = append(fields, submission.FieldStatus)
	}
	if m.email != nil {
		fields = append(fields, submission.FieldEmail)
	}
	if m.parent_name != nil {
		fields = append(fields, submission.FieldParentName)
	}
	if m.child_name != nil {
		fields = append(fields, submission.FieldChildName)
	}
	if m.source != nil {
		fields = append(fields, submission.FieldSource)
	}
	if m.variant_id != nil {
		fields = append(fields, submission.FieldVariantID)
	}
	if m.last_step != nil {
		fields = append(fields, submission.FieldLastStep)
	}
	if m.answers != nil {
		fields = append(fields, submission.FieldAnswers)
	}
	if m.score != nil {
		fields = append(fields, submission.FieldScore)
	}
	if m.band != nil {
		fields = append(fields, submission.FieldBand)
	}
	if m.band_label != nil {
		fields = append(fields, submission.FieldBandLabel)
	}
	if m.band_description != nil {
		fields = append(fields, submission.FieldBandDescription)
	}
	if m.primary_instrument != nil {
		fields = append(fields, submission.FieldPrimaryInstrument)
	}
	if m.secondary_instruments != nil {
		fields = append(fields, submission.FieldSecondaryInstruments)
	}
	if m.action_plan != nil {
		fields = append(fields, submission.FieldActionPlan)
	}
	if m.plan_source != nil {
		fields = append(fields, submission.FieldPlanSource)
	}
	if m.insights != nil {
		fields = append(fields, submission.FieldInsights)
	}
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, submission.FieldUpdatedAt)
	}
	if m.digest_sent_at != nil {
		fields = append(fields, submission.FieldDigestSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldStatus:
		return m.Status()
	case submission.FieldEmail:
		return m.Email()
	case submission.FieldParentName:
		return m.ParentName()
	case submission.FieldChildName:
		return m.ChildName()
	case submission.FieldSource:
		return m.Source()
	case submission.FieldVariantID:
		return m.VariantID()
	case submission.FieldLastStep:
		return m.LastStep()
	case submission.FieldAnswers:
		return m.Answers()
	case submission.FieldScore:
		return m.Score()
	case submission.FieldBand:
		return m.Band()
	case submission.FieldBandLabel:
		return m.BandLabel()
	case submission.FieldBandDescription:
		return m.BandDescription()
	case submission.FieldPrimaryInstrument:
		return m.PrimaryInstrument()
	case submission.FieldSecondaryInstruments:
		return m.SecondaryInstruments()
	case submission.FieldActionPlan:
		return m.ActionPlan()
	case submission.FieldPlanSource:
		return m.PlanSource()
	case submission.FieldInsights:
		return m.Insights()
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldUpdatedAt:
		return m.UpdatedAt()
	case submission.FieldDigestSentAt:
		return m.DigestSentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldStatus:
		return m.OldStatus(ctx)
	case submission.FieldEmail:
		return m.OldEmail(ctx)
	case submission.FieldParentName:
		return m.OldParentName(ctx)
	case submission.FieldChildName:
		return m.OldChildName(ctx)
	case submission.FieldSource:
		return m.OldSource(ctx)
	case submission.FieldVariantID:
		return m.OldVariantID(ctx)
	case submission.FieldLastStep:
		return m.OldLastStep(ctx)
	case submission.FieldAnswers:
		return m.OldAnswers(ctx)
	case submission.FieldScore:
		return m.OldScore(ctx)
	case submission.FieldBand:
		return m.OldBand(ctx)
	case submission.FieldBandLabel:
		return m.OldBandLabel(ctx)
	case submission.FieldBandDescription:
		return m.OldBandDescription(ctx)
	case submission.FieldPrimaryInstrument:
		return m.OldPrimaryInstrument(ctx)
	case submission.FieldSecondaryInstruments:
		return m.OldSecondaryInstruments(ctx)
	case submission.FieldActionPlan:
		return m.OldActionPlan(ctx)
	case submission.FieldPlanSource:
		return m.OldPlanSource(ctx)
	case submission.FieldInsights:
		return m.OldInsights(ctx)
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case submission.FieldDigestSentAt:
		return m.OldDigestSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldStatus:
		v, ok := value.(submission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submission.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case submission.FieldParentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentName(v)
		return nil
	case submission.FieldChildName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildName(v)
		return nil
	case submission.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case submission.FieldVariantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantID(v)
		return nil
	case submission.FieldLastStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStep(v)
		return nil
	case submission.FieldAnswers:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case submission.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case submission.FieldBand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBand(v)
		return nil
	case submission.FieldBandLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBandLabel(v)
		return nil
	case submission.FieldBandDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBandDescription(v)
		return nil
	case submission.FieldPrimaryInstrument:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryInstrument(v)
		return nil
	case submission.FieldSecondaryInstruments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryInstruments(v)
		return nil
	case submission.FieldActionPlan:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionPlan(v)
		return nil
	case submission.FieldPlanSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSource(v)
		return nil
	case submission.FieldInsights:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsights(v)
		return nil
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case submission.FieldDigestSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigestSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addlast_step != nil {
		fields = append(fields, submission.FieldLastStep)
	}
	if m.addscore != nil {
		fields = append(fields, submission.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldLastStep:
		return m.AddedLastStep()
	case submission.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldLastStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStep(v)
		return nil
	case submission.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldSecondaryInstruments) {
		fields = append(fields, submission.FieldSecondaryInstruments)
	}
	if m.FieldCleared(submission.FieldActionPlan) {
		fields = append(fields, submission.FieldActionPlan)
	}
	if m.FieldCleared(submission.FieldInsights) {
		fields = append(fields, submission.FieldInsights)
	}
	if m.FieldCleared(submission.FieldDigestSentAt) {
		fields = append(fields, submission.FieldDigestSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldSecondaryInstruments:
		m.ClearSecondaryInstruments()
		return nil
	case submission.FieldActionPlan:
		m.ClearActionPlan()
		return nil
	case submission.FieldInsights:
		m.ClearInsights()
		return nil
	case submission.FieldDigestSentAt:
		m.ClearDigestSentAt()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldStatus:
		m.ResetStatus()
		return nil
	case submission.FieldEmail:
		m.ResetEmail()
		return nil
	case submission.FieldParentName:
		m.ResetParentName()
		return nil
	case submission.FieldChildName:
		m.ResetChildName()
		return nil
	case submission.FieldSource:
		m.ResetSource()
		return nil
	case submission.FieldVariantID:
		m.ResetVariantID()
		return nil
	case submission.FieldLastStep:
		m.ResetLastStep()
		return nil
	case submission.FieldAnswers:
		m.ResetAnswers()
		return nil
	case submission.FieldScore:
		m.ResetScore()
		return nil
	case submission.FieldBand:
		m.ResetBand()
		return nil
	case submission.FieldBandLabel:
		m.ResetBandLabel()
		return nil
	case submission.FieldBandDescription:
		m.ResetBandDescription()
		return nil
	case submission.FieldPrimaryInstrument:
		m.ResetPrimaryInstrument()
		return nil
	case submission.FieldSecondaryInstruments:
		m.ResetSecondaryInstruments()
		return nil
	case submission.FieldActionPlan:
		m.ResetActionPlan()
		return nil
	case submission.FieldPlanSource:
		m.ResetPlanSource()
		return nil
	case submission.FieldInsights:
		m.ResetInsights()
		return nil
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case submission.FieldDigestSentAt:
		m.ResetDigestSentAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Submission edge %s", name)
}
