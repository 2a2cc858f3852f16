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
	"github.com/abhisek/caliper/ent/llmrequestevent"
	"github.com/abhisek/caliper/ent/predicate"
	"github.com/abhisek/caliper/ent/session"
	"github.com/abhisek/caliper/ent/turnevent"
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
	TypeSession         = "Session"
	TypeTurnEvent       = "TurnEvent"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
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
	error_message    *string
	request_body     *string
	response_body    *string
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

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
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
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
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
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
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
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
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
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
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
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
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
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
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
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
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
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
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
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
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
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
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

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_tag      *string
	theta_mean    *float64
	addtheta_mean *float64
	theta_var     *float64
	addtheta_var  *float64
	asked         *[]string
	appendasked   []string
	coverage      *map[string]int
	turn_count    *int
	addturn_count *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Session, error)
	predicates    []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserTag sets the "user_tag" field.
func (m *SessionMutation) SetUserTag(s string) {
	m.user_tag = &s
}

// UserTag returns the value of the "user_tag" field in the mutation.
func (m *SessionMutation) UserTag() (r string, exists bool) {
	v := m.user_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldUserTag returns the old "user_tag" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserTag: %w", err)
	}
	return oldValue.UserTag, nil
}

// ResetUserTag resets all changes to the "user_tag" field.
func (m *SessionMutation) ResetUserTag() {
	m.user_tag = nil
}

// SetThetaMean sets the "theta_mean" field.
func (m *SessionMutation) SetThetaMean(f float64) {
	m.theta_mean = &f
	m.addtheta_mean = nil
}

// ThetaMean returns the value of the "theta_mean" field in the mutation.
func (m *SessionMutation) ThetaMean() (r float64, exists bool) {
	v := m.theta_mean
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaMean returns the old "theta_mean" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldThetaMean(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaMean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaMean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaMean: %w", err)
	}
	return oldValue.ThetaMean, nil
}

// AddThetaMean adds f to the "theta_mean" field.
func (m *SessionMutation) AddThetaMean(f float64) {
	if m.addtheta_mean != nil {
		*m.addtheta_mean += f
	} else {
		m.addtheta_mean = &f
	}
}

// AddedThetaMean returns the value that was added to the "theta_mean" field in this mutation.
func (m *SessionMutation) AddedThetaMean() (r float64, exists bool) {
	v := m.addtheta_mean
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaMean resets all changes to the "theta_mean" field.
func (m *SessionMutation) ResetThetaMean() {
	m.theta_mean = nil
	m.addtheta_mean = nil
}

// SetThetaVar sets the "theta_var" field.
func (m *SessionMutation) SetThetaVar(f float64) {
	m.theta_var = &f
	m.addtheta_var = nil
}

// ThetaVar returns the value of the "theta_var" field in the mutation.
func (m *SessionMutation) ThetaVar() (r float64, exists bool) {
	v := m.theta_var
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaVar returns the old "theta_var" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldThetaVar(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaVar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaVar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaVar: %w", err)
	}
	return oldValue.ThetaVar, nil
}

// AddThetaVar adds f to the "theta_var" field.
func (m *SessionMutation) AddThetaVar(f float64) {
	if m.addtheta_var != nil {
		*m.addtheta_var += f
	} else {
		m.addtheta_var = &f
	}
}

// AddedThetaVar returns the value that was added to the "theta_var" field in this mutation.
func (m *SessionMutation) AddedThetaVar() (r float64, exists bool) {
	v := m.addtheta_var
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaVar resets all changes to the "theta_var" field.
func (m *SessionMutation) ResetThetaVar() {
	m.theta_var = nil
	m.addtheta_var = nil
}

// SetAsked sets the "asked" field.
func (m *SessionMutation) SetAsked(s []string) {
	m.asked = &s
	m.appendasked = nil
}

// Asked returns the value of the "asked" field in the mutation.
func (m *SessionMutation) Asked() (r []string, exists bool) {
	v := m.asked
	if v == nil {
		return
	}
	return *v, true
}

// OldAsked returns the old "asked" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAsked(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAsked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAsked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAsked: %w", err)
	}
	return oldValue.Asked, nil
}

// AppendAsked adds s to the "asked" field.
func (m *SessionMutation) AppendAsked(s []string) {
	m.appendasked = append(m.appendasked, s...)
}

// AppendedAsked returns the list of values that were appended to the "asked" field in this mutation.
func (m *SessionMutation) AppendedAsked() ([]string, bool) {
	if len(m.appendasked) == 0 {
		return nil, false
	}
	return m.appendasked, true
}

// ClearAsked clears the value of the "asked" field.
func (m *SessionMutation) ClearAsked() {
	m.asked = nil
	m.appendasked = nil
	m.clearedFields[session.FieldAsked] = struct{}{}
}

// AskedCleared returns if the "asked" field was cleared in this mutation.
func (m *SessionMutation) AskedCleared() bool {
	_, ok := m.clearedFields[session.FieldAsked]
	return ok
}

// ResetAsked resets all changes to the "asked" field.
func (m *SessionMutation) ResetAsked() {
	m.asked = nil
	m.appendasked = nil
	delete(m.clearedFields, session.FieldAsked)
}

// SetCoverage sets the "coverage" field.
func (m *SessionMutation) SetCoverage(value map[string]int) {
	m.coverage = &value
}

// Coverage returns the value of the "coverage" field in the mutation.
func (m *SessionMutation) Coverage() (r map[string]int, exists bool) {
	v := m.coverage
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverage returns the old "coverage" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCoverage(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverage: %w", err)
	}
	return oldValue.Coverage, nil
}

// ClearCoverage clears the value of the "coverage" field.
func (m *SessionMutation) ClearCoverage() {
	m.coverage = nil
	m.clearedFields[session.FieldCoverage] = struct{}{}
}

// CoverageCleared returns if the "coverage" field was cleared in this mutation.
func (m *SessionMutation) CoverageCleared() bool {
	_, ok := m.clearedFields[session.FieldCoverage]
	return ok
}

// ResetCoverage resets all changes to the "coverage" field.
func (m *SessionMutation) ResetCoverage() {
	m.coverage = nil
	delete(m.clearedFields, session.FieldCoverage)
}

// SetTurnCount sets the "turn_count" field.
func (m *SessionMutation) SetTurnCount(i int) {
	m.turn_count = &i
	m.addturn_count = nil
}

// TurnCount returns the value of the "turn_count" field in the mutation.
func (m *SessionMutation) TurnCount() (r int, exists bool) {
	v := m.turn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnCount returns the old "turn_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTurnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnCount: %w", err)
	}
	return oldValue.TurnCount, nil
}

// AddTurnCount adds i to the "turn_count" field.
func (m *SessionMutation) AddTurnCount(i int) {
	if m.addturn_count != nil {
		*m.addturn_count += i
	} else {
		m.addturn_count = &i
	}
}

// AddedTurnCount returns the value that was added to the "turn_count" field in this mutation.
func (m *SessionMutation) AddedTurnCount() (r int, exists bool) {
	v := m.addturn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnCount resets all changes to the "turn_count" field.
func (m *SessionMutation) ResetTurnCount() {
	m.turn_count = nil
	m.addturn_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_tag != nil {
		fields = append(fields, session.FieldUserTag)
	}
	if m.theta_mean != nil {
		fields = append(fields, session.FieldThetaMean)
	}
	if m.theta_var != nil {
		fields = append(fields, session.FieldThetaVar)
	}
	if m.asked != nil {
		fields = append(fields, session.FieldAsked)
	}
	if m.coverage != nil {
		fields = append(fields, session.FieldCoverage)
	}
	if m.turn_count != nil {
		fields = append(fields, session.FieldTurnCount)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserTag:
		return m.UserTag()
	case session.FieldThetaMean:
		return m.ThetaMean()
	case session.FieldThetaVar:
		return m.ThetaVar()
	case session.FieldAsked:
		return m.Asked()
	case session.FieldCoverage:
		return m.Coverage()
	case session.FieldTurnCount:
		return m.TurnCount()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserTag:
		return m.OldUserTag(ctx)
	case session.FieldThetaMean:
		return m.OldThetaMean(ctx)
	case session.FieldThetaVar:
		return m.OldThetaVar(ctx)
	case session.FieldAsked:
		return m.OldAsked(ctx)
	case session.FieldCoverage:
		return m.OldCoverage(ctx)
	case session.FieldTurnCount:
		return m.OldTurnCount(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserTag(v)
		return nil
	case session.FieldThetaMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaMean(v)
		return nil
	case session.FieldThetaVar:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaVar(v)
		return nil
	case session.FieldAsked:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAsked(v)
		return nil
	case session.FieldCoverage:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverage(v)
		return nil
	case session.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnCount(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addtheta_mean != nil {
		fields = append(fields, session.FieldThetaMean)
	}
	if m.addtheta_var != nil {
		fields = append(fields, session.FieldThetaVar)
	}
	if m.addturn_count != nil {
		fields = append(fields, session.FieldTurnCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldThetaMean:
		return m.AddedThetaMean()
	case session.FieldThetaVar:
		return m.AddedThetaVar()
	case session.FieldTurnCount:
		return m.AddedTurnCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldThetaMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaMean(v)
		return nil
	case session.FieldThetaVar:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaVar(v)
		return nil
	case session.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnCount(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldAsked) {
		fields = append(fields, session.FieldAsked)
	}
	if m.FieldCleared(session.FieldCoverage) {
		fields = append(fields, session.FieldCoverage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldAsked:
		m.ClearAsked()
		return nil
	case session.FieldCoverage:
		m.ClearCoverage()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserTag:
		m.ResetUserTag()
		return nil
	case session.FieldThetaMean:
		m.ResetThetaMean()
		return nil
	case session.FieldThetaVar:
		m.ResetThetaVar()
		return nil
	case session.FieldAsked:
		m.ResetAsked()
		return nil
	case session.FieldCoverage:
		m.ResetCoverage()
		return nil
	case session.FieldTurnCount:
		m.ResetTurnCount()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// TurnEventMutation represents an operation that mutates the TurnEvent nodes in the graph.
type TurnEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	session_id      *string
	turn_index      *int
	addturn_index   *int
	item_id         *string
	answer_text     *string
	followup_text   *string
	final_label     *string
	final_p         *float64
	addfinal_p      *float64
	probe_intent    *string
	probe_source    *string
	theta_before    *float64
	addtheta_before *float64
	theta_after     *float64
	addtheta_after  *float64
	se_after        *float64
	addse_after     *float64
	next_item_id    *string
	trace           *[]string
	appendtrace     []string
	measurement     *[]byte
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TurnEvent, error)
	predicates      []predicate.TurnEvent
}

var _ ent.Mutation = (*TurnEventMutation)(nil)

// turneventOption allows management of the mutation configuration using functional options.
type turneventOption func(*TurnEventMutation)

// newTurnEventMutation creates new mutation for the TurnEvent entity.
func newTurnEventMutation(c config, op Op, opts ...turneventOption) *TurnEventMutation {
	m := &TurnEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTurnEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTurnEventID sets the ID field of the mutation.
func withTurnEventID(id int) turneventOption {
	return func(m *TurnEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TurnEvent
		)
		m.oldValue = func(ctx context.Context) (*TurnEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TurnEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTurnEvent sets the old TurnEvent of the mutation.
func withTurnEvent(node *TurnEvent) turneventOption {
	return func(m *TurnEventMutation) {
		m.oldValue = func(context.Context) (*TurnEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TurnEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TurnEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TurnEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TurnEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TurnEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TurnEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TurnEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TurnEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TurnEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TurnEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TurnEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TurnEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *TurnEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *TurnEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TurnEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TurnEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTurnIndex sets the "turn_index" field.
func (m *TurnEventMutation) SetTurnIndex(i int) {
	m.turn_index = &i
	m.addturn_index = nil
}

// TurnIndex returns the value of the "turn_index" field in the mutation.
func (m *TurnEventMutation) TurnIndex() (r int, exists bool) {
	v := m.turn_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnIndex returns the old "turn_index" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldTurnIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnIndex: %w", err)
	}
	return oldValue.TurnIndex, nil
}

// AddTurnIndex adds i to the "turn_index" field.
func (m *TurnEventMutation) AddTurnIndex(i int) {
	if m.addturn_index != nil {
		*m.addturn_index += i
	} else {
		m.addturn_index = &i
	}
}

// AddedTurnIndex returns the value that was added to the "turn_index" field in this mutation.
func (m *TurnEventMutation) AddedTurnIndex() (r int, exists bool) {
	v := m.addturn_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnIndex resets all changes to the "turn_index" field.
func (m *TurnEventMutation) ResetTurnIndex() {
	m.turn_index = nil
	m.addturn_index = nil
}

// SetItemID sets the "item_id" field.
func (m *TurnEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *TurnEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *TurnEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetAnswerText sets the "answer_text" field.
func (m *TurnEventMutation) SetAnswerText(s string) {
	m.answer_text = &s
}

// AnswerText returns the value of the "answer_text" field in the mutation.
func (m *TurnEventMutation) AnswerText() (r string, exists bool) {
	v := m.answer_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerText returns the old "answer_text" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldAnswerText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerText: %w", err)
	}
	return oldValue.AnswerText, nil
}

// ResetAnswerText resets all changes to the "answer_text" field.
func (m *TurnEventMutation) ResetAnswerText() {
	m.answer_text = nil
}

// SetFollowupText sets the "followup_text" field.
func (m *TurnEventMutation) SetFollowupText(s string) {
	m.followup_text = &s
}

// FollowupText returns the value of the "followup_text" field in the mutation.
func (m *TurnEventMutation) FollowupText() (r string, exists bool) {
	v := m.followup_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowupText returns the old "followup_text" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldFollowupText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowupText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowupText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowupText: %w", err)
	}
	return oldValue.FollowupText, nil
}

// ResetFollowupText resets all changes to the "followup_text" field.
func (m *TurnEventMutation) ResetFollowupText() {
	m.followup_text = nil
}

// SetFinalLabel sets the "final_label" field.
func (m *TurnEventMutation) SetFinalLabel(s string) {
	m.final_label = &s
}

// FinalLabel returns the value of the "final_label" field in the mutation.
func (m *TurnEventMutation) FinalLabel() (r string, exists bool) {
	v := m.final_label
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalLabel returns the old "final_label" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldFinalLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalLabel: %w", err)
	}
	return oldValue.FinalLabel, nil
}

// ResetFinalLabel resets all changes to the "final_label" field.
func (m *TurnEventMutation) ResetFinalLabel() {
	m.final_label = nil
}

// SetFinalP sets the "final_p" field.
func (m *TurnEventMutation) SetFinalP(f float64) {
	m.final_p = &f
	m.addfinal_p = nil
}

// FinalP returns the value of the "final_p" field in the mutation.
func (m *TurnEventMutation) FinalP() (r float64, exists bool) {
	v := m.final_p
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalP returns the old "final_p" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldFinalP(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalP: %w", err)
	}
	return oldValue.FinalP, nil
}

// AddFinalP adds f to the "final_p" field.
func (m *TurnEventMutation) AddFinalP(f float64) {
	if m.addfinal_p != nil {
		*m.addfinal_p += f
	} else {
		m.addfinal_p = &f
	}
}

// AddedFinalP returns the value that was added to the "final_p" field in this mutation.
func (m *TurnEventMutation) AddedFinalP() (r float64, exists bool) {
	v := m.addfinal_p
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalP resets all changes to the "final_p" field.
func (m *TurnEventMutation) ResetFinalP() {
	m.final_p = nil
	m.addfinal_p = nil
}

// SetProbeIntent sets the "probe_intent" field.
func (m *TurnEventMutation) SetProbeIntent(s string) {
	m.probe_intent = &s
}

// ProbeIntent returns the value of the "probe_intent" field in the mutation.
func (m *TurnEventMutation) ProbeIntent() (r string, exists bool) {
	v := m.probe_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldProbeIntent returns the old "probe_intent" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldProbeIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbeIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbeIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbeIntent: %w", err)
	}
	return oldValue.ProbeIntent, nil
}

// ResetProbeIntent resets all changes to the "probe_intent" field.
func (m *TurnEventMutation) ResetProbeIntent() {
	m.probe_intent = nil
}

// SetProbeSource sets the "probe_source" field.
func (m *TurnEventMutation) SetProbeSource(s string) {
	m.probe_source = &s
}

// ProbeSource returns the value of the "probe_source" field in the mutation.
func (m *TurnEventMutation) ProbeSource() (r string, exists bool) {
	v := m.probe_source
	if v == nil {
		return
	}
	return *v, true
}

// OldProbeSource returns the old "probe_source" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldProbeSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbeSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbeSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbeSource: %w", err)
	}
	return oldValue.ProbeSource, nil
}

// ResetProbeSource resets all changes to the "probe_source" field.
func (m *TurnEventMutation) ResetProbeSource() {
	m.probe_source = nil
}

// SetThetaBefore sets the "theta_before" field.
func (m *TurnEventMutation) SetThetaBefore(f float64) {
	m.theta_before = &f
	m.addtheta_before = nil
}

// ThetaBefore returns the value of the "theta_before" field in the mutation.
func (m *TurnEventMutation) ThetaBefore() (r float64, exists bool) {
	v := m.theta_before
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaBefore returns the old "theta_before" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldThetaBefore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaBefore: %w", err)
	}
	return oldValue.ThetaBefore, nil
}

// AddThetaBefore adds f to the "theta_before" field.
func (m *TurnEventMutation) AddThetaBefore(f float64) {
	if m.addtheta_before != nil {
		*m.addtheta_before += f
	} else {
		m.addtheta_before = &f
	}
}

// AddedThetaBefore returns the value that was added to the "theta_before" field in this mutation.
func (m *TurnEventMutation) AddedThetaBefore() (r float64, exists bool) {
	v := m.addtheta_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaBefore resets all changes to the "theta_before" field.
func (m *TurnEventMutation) ResetThetaBefore() {
	m.theta_before = nil
	m.addtheta_before = nil
}

// SetThetaAfter sets the "theta_after" field.
func (m *TurnEventMutation) SetThetaAfter(f float64) {
	m.theta_after = &f
	m.addtheta_after = nil
}

// ThetaAfter returns the value of the "theta_after" field in the mutation.
func (m *TurnEventMutation) ThetaAfter() (r float64, exists bool) {
	v := m.theta_after
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaAfter returns the old "theta_after" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldThetaAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaAfter: %w", err)
	}
	return oldValue.ThetaAfter, nil
}

// AddThetaAfter adds f to the "theta_after" field.
func (m *TurnEventMutation) AddThetaAfter(f float64) {
	if m.addtheta_after != nil {
		*m.addtheta_after += f
	} else {
		m.addtheta_after = &f
	}
}

// AddedThetaAfter returns the value that was added to the "theta_after" field in this mutation.
func (m *TurnEventMutation) AddedThetaAfter() (r float64, exists bool) {
	v := m.addtheta_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaAfter resets all changes to the "theta_after" field.
func (m *TurnEventMutation) ResetThetaAfter() {
	m.theta_after = nil
	m.addtheta_after = nil
}

// SetSeAfter sets the "se_after" field.
func (m *TurnEventMutation) SetSeAfter(f float64) {
	m.se_after = &f
	m.addse_after = nil
}

// SeAfter returns the value of the "se_after" field in the mutation.
func (m *TurnEventMutation) SeAfter() (r float64, exists bool) {
	v := m.se_after
	if v == nil {
		return
	}
	return *v, true
}

// OldSeAfter returns the old "se_after" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldSeAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeAfter: %w", err)
	}
	return oldValue.SeAfter, nil
}

// AddSeAfter adds f to the "se_after" field.
func (m *TurnEventMutation) AddSeAfter(f float64) {
	if m.addse_after != nil {
		*m.addse_after += f
	} else {
		m.addse_after = &f
	}
}

// AddedSeAfter returns the value that was added to the "se_after" field in this mutation.
func (m *TurnEventMutation) AddedSeAfter() (r float64, exists bool) {
	v := m.addse_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeAfter resets all changes to the "se_after" field.
func (m *TurnEventMutation) ResetSeAfter() {
	m.se_after = nil
	m.addse_after = nil
}

// SetNextItemID sets the "next_item_id" field.
func (m *TurnEventMutation) SetNextItemID(s string) {
	m.next_item_id = &s
}

// NextItemID returns the value of the "next_item_id" field in the mutation.
func (m *TurnEventMutation) NextItemID() (r string, exists bool) {
	v := m.next_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNextItemID returns the old "next_item_id" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldNextItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextItemID: %w", err)
	}
	return oldValue.NextItemID, nil
}

// ResetNextItemID resets all changes to the "next_item_id" field.
func (m *TurnEventMutation) ResetNextItemID() {
	m.next_item_id = nil
}

// SetTrace sets the "trace" field.
func (m *TurnEventMutation) SetTrace(s []string) {
	m.trace = &s
	m.appendtrace = nil
}

// Trace returns the value of the "trace" field in the mutation.
func (m *TurnEventMutation) Trace() (r []string, exists bool) {
	v := m.trace
	if v == nil {
		return
	}
	return *v, true
}

// OldTrace returns the old "trace" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldTrace(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrace: %w", err)
	}
	return oldValue.Trace, nil
}

// AppendTrace adds s to the "trace" field.
func (m *TurnEventMutation) AppendTrace(s []string) {
	m.appendtrace = append(m.appendtrace, s...)
}

// AppendedTrace returns the list of values that were appended to the "trace" field in this mutation.
func (m *TurnEventMutation) AppendedTrace() ([]string, bool) {
	if len(m.appendtrace) == 0 {
		return nil, false
	}
	return m.appendtrace, true
}

// ClearTrace clears the value of the "trace" field.
func (m *TurnEventMutation) ClearTrace() {
	m.trace = nil
	m.appendtrace = nil
	m.clearedFields[turnevent.FieldTrace] = struct{}{}
}

// TraceCleared returns if the "trace" field was cleared in this mutation.
func (m *TurnEventMutation) TraceCleared() bool {
	_, ok := m.clearedFields[turnevent.FieldTrace]
	return ok
}

// ResetTrace resets all changes to the "trace" field.
func (m *TurnEventMutation) ResetTrace() {
	m.trace = nil
	m.appendtrace = nil
	delete(m.clearedFields, turnevent.FieldTrace)
}

// SetMeasurement sets the "measurement" field.
func (m *TurnEventMutation) SetMeasurement(b []byte) {
	m.measurement = &b
}

// Measurement returns the value of the "measurement" field in the mutation.
func (m *TurnEventMutation) Measurement() (r []byte, exists bool) {
	v := m.measurement
	if v == nil {
		return
	}
	return *v, true
}

// OldMeasurement returns the old "measurement" field's value of the TurnEvent entity.
// If the TurnEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnEventMutation) OldMeasurement(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeasurement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeasurement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeasurement: %w", err)
	}
	return oldValue.Measurement, nil
}

// ClearMeasurement clears the value of the "measurement" field.
func (m *TurnEventMutation) ClearMeasurement() {
	m.measurement = nil
	m.clearedFields[turnevent.FieldMeasurement] = struct{}{}
}

// MeasurementCleared returns if the "measurement" field was cleared in this mutation.
func (m *TurnEventMutation) MeasurementCleared() bool {
	_, ok := m.clearedFields[turnevent.FieldMeasurement]
	return ok
}

// ResetMeasurement resets all changes to the "measurement" field.
func (m *TurnEventMutation) ResetMeasurement() {
	m.measurement = nil
	delete(m.clearedFields, turnevent.FieldMeasurement)
}

// Where appends a list predicates to the TurnEventMutation builder.
func (m *TurnEventMutation) Where(ps ...predicate.TurnEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TurnEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TurnEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TurnEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TurnEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TurnEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TurnEvent).
func (m *TurnEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TurnEventMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.sequence != nil {
		fields = append(fields, turnevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, turnevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, turnevent.FieldSessionID)
	}
	if m.turn_index != nil {
		fields = append(fields, turnevent.FieldTurnIndex)
	}
	if m.item_id != nil {
		fields = append(fields, turnevent.FieldItemID)
	}
	if m.answer_text != nil {
		fields = append(fields, turnevent.FieldAnswerText)
	}
	if m.followup_text != nil {
		fields = append(fields, turnevent.FieldFollowupText)
	}
	if m.final_label != nil {
		fields = append(fields, turnevent.FieldFinalLabel)
	}
	if m.final_p != nil {
		fields = append(fields, turnevent.FieldFinalP)
	}
	if m.probe_intent != nil {
		fields = append(fields, turnevent.FieldProbeIntent)
	}
	if m.probe_source != nil {
		fields = append(fields, turnevent.FieldProbeSource)
	}
	if m.theta_before != nil {
		fields = append(fields, turnevent.FieldThetaBefore)
	}
	if m.theta_after != nil {
		fields = append(fields, turnevent.FieldThetaAfter)
	}
	if m.se_after != nil {
		fields = append(fields, turnevent.FieldSeAfter)
	}
	if m.next_item_id != nil {
		fields = append(fields, turnevent.FieldNextItemID)
	}
	if m.trace != nil {
		fields = append(fields, turnevent.FieldTrace)
	}
	if m.measurement != nil {
		fields = append(fields, turnevent.FieldMeasurement)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TurnEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case turnevent.FieldSequence:
		return m.Sequence()
	case turnevent.FieldTimestamp:
		return m.Timestamp()
	case turnevent.FieldSessionID:
		return m.SessionID()
	case turnevent.FieldTurnIndex:
		return m.TurnIndex()
	case turnevent.FieldItemID:
		return m.ItemID()
	case turnevent.FieldAnswerText:
		return m.AnswerText()
	case turnevent.FieldFollowupText:
		return m.FollowupText()
	case turnevent.FieldFinalLabel:
		return m.FinalLabel()
	case turnevent.FieldFinalP:
		return m.FinalP()
	case turnevent.FieldProbeIntent:
		return m.ProbeIntent()
	case turnevent.FieldProbeSource:
		return m.ProbeSource()
	case turnevent.FieldThetaBefore:
		return m.ThetaBefore()
	case turnevent.FieldThetaAfter:
		return m.ThetaAfter()
	case turnevent.FieldSeAfter:
		return m.SeAfter()
	case turnevent.FieldNextItemID:
		return m.NextItemID()
	case turnevent.FieldTrace:
		return m.Trace()
	case turnevent.FieldMeasurement:
		return m.Measurement()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TurnEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case turnevent.FieldSequence:
		return m.OldSequence(ctx)
	case turnevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case turnevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case turnevent.FieldTurnIndex:
		return m.OldTurnIndex(ctx)
	case turnevent.FieldItemID:
		return m.OldItemID(ctx)
	case turnevent.FieldAnswerText:
		return m.OldAnswerText(ctx)
	case turnevent.FieldFollowupText:
		return m.OldFollowupText(ctx)
	case turnevent.FieldFinalLabel:
		return m.OldFinalLabel(ctx)
	case turnevent.FieldFinalP:
		return m.OldFinalP(ctx)
	case turnevent.FieldProbeIntent:
		return m.OldProbeIntent(ctx)
	case turnevent.FieldProbeSource:
		return m.OldProbeSource(ctx)
	case turnevent.FieldThetaBefore:
		return m.OldThetaBefore(ctx)
	case turnevent.FieldThetaAfter:
		return m.OldThetaAfter(ctx)
	case turnevent.FieldSeAfter:
		return m.OldSeAfter(ctx)
	case turnevent.FieldNextItemID:
		return m.OldNextItemID(ctx)
	case turnevent.FieldTrace:
		return m.OldTrace(ctx)
	case turnevent.FieldMeasurement:
		return m.OldMeasurement(ctx)
	}
	return nil, fmt.Errorf("unknown TurnEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case turnevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case turnevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case turnevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case turnevent.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnIndex(v)
		return nil
	case turnevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case turnevent.FieldAnswerText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerText(v)
		return nil
	case turnevent.FieldFollowupText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowupText(v)
		return nil
	case turnevent.FieldFinalLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalLabel(v)
		return nil
	case turnevent.FieldFinalP:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalP(v)
		return nil
	case turnevent.FieldProbeIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbeIntent(v)
		return nil
	case turnevent.FieldProbeSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbeSource(v)
		return nil
	case turnevent.FieldThetaBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaBefore(v)
		return nil
	case turnevent.FieldThetaAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaAfter(v)
		return nil
	case turnevent.FieldSeAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeAfter(v)
		return nil
	case turnevent.FieldNextItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextItemID(v)
		return nil
	case turnevent.FieldTrace:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrace(v)
		return nil
	case turnevent.FieldMeasurement:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeasurement(v)
		return nil
	}
	return fmt.Errorf("unknown TurnEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TurnEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, turnevent.FieldSequence)
	}
	if m.addturn_index != nil {
		fields = append(fields, turnevent.FieldTurnIndex)
	}
	if m.addfinal_p != nil {
		fields = append(fields, turnevent.FieldFinalP)
	}
	if m.addtheta_before != nil {
		fields = append(fields, turnevent.FieldThetaBefore)
	}
	if m.addtheta_after != nil {
		fields = append(fields, turnevent.FieldThetaAfter)
	}
	if m.addse_after != nil {
		fields = append(fields, turnevent.FieldSeAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TurnEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case turnevent.FieldSequence:
		return m.AddedSequence()
	case turnevent.FieldTurnIndex:
		return m.AddedTurnIndex()
	case turnevent.FieldFinalP:
		return m.AddedFinalP()
	case turnevent.FieldThetaBefore:
		return m.AddedThetaBefore()
	case turnevent.FieldThetaAfter:
		return m.AddedThetaAfter()
	case turnevent.FieldSeAfter:
		return m.AddedSeAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case turnevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case turnevent.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnIndex(v)
		return nil
	case turnevent.FieldFinalP:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalP(v)
		return nil
	case turnevent.FieldThetaBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaBefore(v)
		return nil
	case turnevent.FieldThetaAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaAfter(v)
		return nil
	case turnevent.FieldSeAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeAfter(v)
		return nil
	}
	return fmt.Errorf("unknown TurnEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TurnEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(turnevent.FieldTrace) {
		fields = append(fields, turnevent.FieldTrace)
	}
	if m.FieldCleared(turnevent.FieldMeasurement) {
		fields = append(fields, turnevent.FieldMeasurement)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TurnEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TurnEventMutation) ClearField(name string) error {
	switch name {
	case turnevent.FieldTrace:
		m.ClearTrace()
		return nil
	case turnevent.FieldMeasurement:
		m.ClearMeasurement()
		return nil
	}
	return fmt.Errorf("unknown TurnEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TurnEventMutation) ResetField(name string) error {
	switch name {
	case turnevent.FieldSequence:
		m.ResetSequence()
		return nil
	case turnevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case turnevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case turnevent.FieldTurnIndex:
		m.ResetTurnIndex()
		return nil
	case turnevent.FieldItemID:
		m.ResetItemID()
		return nil
	case turnevent.FieldAnswerText:
		m.ResetAnswerText()
		return nil
	case turnevent.FieldFollowupText:
		m.ResetFollowupText()
		return nil
	case turnevent.FieldFinalLabel:
		m.ResetFinalLabel()
		return nil
	case turnevent.FieldFinalP:
		m.ResetFinalP()
		return nil
	case turnevent.FieldProbeIntent:
		m.ResetProbeIntent()
		return nil
	case turnevent.FieldProbeSource:
		m.ResetProbeSource()
		return nil
	case turnevent.FieldThetaBefore:
		m.ResetThetaBefore()
		return nil
	case turnevent.FieldThetaAfter:
		m.ResetThetaAfter()
		return nil
	case turnevent.FieldSeAfter:
		m.ResetSeAfter()
		return nil
	case turnevent.FieldNextItemID:
		m.ResetNextItemID()
		return nil
	case turnevent.FieldTrace:
		m.ResetTrace()
		return nil
	case turnevent.FieldMeasurement:
		m.ResetMeasurement()
		return nil
	}
	return fmt.Errorf("unknown TurnEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TurnEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TurnEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TurnEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TurnEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TurnEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TurnEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TurnEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TurnEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TurnEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TurnEvent edge %s", name)
}
