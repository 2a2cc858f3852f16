// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/caliper/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTurnIndex sets the "turn_index" field.
func (_c *TurnEventCreate) SetTurnIndex(v int) *TurnEventCreate {
	_c.mutation.SetTurnIndex(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *TurnEventCreate) SetItemID(v string) *TurnEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetAnswerText sets the "answer_text" field.
func (_c *TurnEventCreate) SetAnswerText(v string) *TurnEventCreate {
	_c.mutation.SetAnswerText(v)
	return _c
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableAnswerText(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetAnswerText(*v)
	}
	return _c
}

// SetFollowupText sets the "followup_text" field.
func (_c *TurnEventCreate) SetFollowupText(v string) *TurnEventCreate {
	_c.mutation.SetFollowupText(v)
	return _c
}

// SetNillableFollowupText sets the "followup_text" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableFollowupText(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetFollowupText(*v)
	}
	return _c
}

// SetFinalLabel sets the "final_label" field.
func (_c *TurnEventCreate) SetFinalLabel(v string) *TurnEventCreate {
	_c.mutation.SetFinalLabel(v)
	return _c
}

// SetFinalP sets the "final_p" field.
func (_c *TurnEventCreate) SetFinalP(v float64) *TurnEventCreate {
	_c.mutation.SetFinalP(v)
	return _c
}

// SetProbeIntent sets the "probe_intent" field.
func (_c *TurnEventCreate) SetProbeIntent(v string) *TurnEventCreate {
	_c.mutation.SetProbeIntent(v)
	return _c
}

// SetNillableProbeIntent sets the "probe_intent" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableProbeIntent(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetProbeIntent(*v)
	}
	return _c
}

// SetProbeSource sets the "probe_source" field.
func (_c *TurnEventCreate) SetProbeSource(v string) *TurnEventCreate {
	_c.mutation.SetProbeSource(v)
	return _c
}

// SetNillableProbeSource sets the "probe_source" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableProbeSource(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetProbeSource(*v)
	}
	return _c
}

// SetThetaBefore sets the "theta_before" field.
func (_c *TurnEventCreate) SetThetaBefore(v float64) *TurnEventCreate {
	_c.mutation.SetThetaBefore(v)
	return _c
}

// SetThetaAfter sets the "theta_after" field.
func (_c *TurnEventCreate) SetThetaAfter(v float64) *TurnEventCreate {
	_c.mutation.SetThetaAfter(v)
	return _c
}

// SetSeAfter sets the "se_after" field.
func (_c *TurnEventCreate) SetSeAfter(v float64) *TurnEventCreate {
	_c.mutation.SetSeAfter(v)
	return _c
}

// SetNextItemID sets the "next_item_id" field.
func (_c *TurnEventCreate) SetNextItemID(v string) *TurnEventCreate {
	_c.mutation.SetNextItemID(v)
	return _c
}

// SetNillableNextItemID sets the "next_item_id" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableNextItemID(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetNextItemID(*v)
	}
	return _c
}

// SetTrace sets the "trace" field.
func (_c *TurnEventCreate) SetTrace(v []string) *TurnEventCreate {
	_c.mutation.SetTrace(v)
	return _c
}

// SetMeasurement sets the "measurement" field.
func (_c *TurnEventCreate) SetMeasurement(v []byte) *TurnEventCreate {
	_c.mutation.SetMeasurement(v)
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AnswerText(); !ok {
		v := turnevent.DefaultAnswerText
		_c.mutation.SetAnswerText(v)
	}
	if _, ok := _c.mutation.FollowupText(); !ok {
		v := turnevent.DefaultFollowupText
		_c.mutation.SetFollowupText(v)
	}
	if _, ok := _c.mutation.ProbeIntent(); !ok {
		v := turnevent.DefaultProbeIntent
		_c.mutation.SetProbeIntent(v)
	}
	if _, ok := _c.mutation.ProbeSource(); !ok {
		v := turnevent.DefaultProbeSource
		_c.mutation.SetProbeSource(v)
	}
	if _, ok := _c.mutation.NextItemID(); !ok {
		v := turnevent.DefaultNextItemID
		_c.mutation.SetNextItemID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TurnIndex(); !ok {
		return &ValidationError{Name: "turn_index", err: errors.New(`ent: missing required field "TurnEvent.turn_index"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "TurnEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := turnevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnswerText(); !ok {
		return &ValidationError{Name: "answer_text", err: errors.New(`ent: missing required field "TurnEvent.answer_text"`)}
	}
	if _, ok := _c.mutation.FollowupText(); !ok {
		return &ValidationError{Name: "followup_text", err: errors.New(`ent: missing required field "TurnEvent.followup_text"`)}
	}
	if _, ok := _c.mutation.FinalLabel(); !ok {
		return &ValidationError{Name: "final_label", err: errors.New(`ent: missing required field "TurnEvent.final_label"`)}
	}
	if _, ok := _c.mutation.FinalP(); !ok {
		return &ValidationError{Name: "final_p", err: errors.New(`ent: missing required field "TurnEvent.final_p"`)}
	}
	if _, ok := _c.mutation.ProbeIntent(); !ok {
		return &ValidationError{Name: "probe_intent", err: errors.New(`ent: missing required field "TurnEvent.probe_intent"`)}
	}
	if _, ok := _c.mutation.ProbeSource(); !ok {
		return &ValidationError{Name: "probe_source", err: errors.New(`ent: missing required field "TurnEvent.probe_source"`)}
	}
	if _, ok := _c.mutation.ThetaBefore(); !ok {
		return &ValidationError{Name: "theta_before", err: errors.New(`ent: missing required field "TurnEvent.theta_before"`)}
	}
	if _, ok := _c.mutation.ThetaAfter(); !ok {
		return &ValidationError{Name: "theta_after", err: errors.New(`ent: missing required field "TurnEvent.theta_after"`)}
	}
	if _, ok := _c.mutation.SeAfter(); !ok {
		return &ValidationError{Name: "se_after", err: errors.New(`ent: missing required field "TurnEvent.se_after"`)}
	}
	if _, ok := _c.mutation.NextItemID(); !ok {
		return &ValidationError{Name: "next_item_id", err: errors.New(`ent: missing required field "TurnEvent.next_item_id"`)}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TurnIndex(); ok {
		_spec.SetField(turnevent.FieldTurnIndex, field.TypeInt, value)
		_node.TurnIndex = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(turnevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.AnswerText(); ok {
		_spec.SetField(turnevent.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = value
	}
	if value, ok := _c.mutation.FollowupText(); ok {
		_spec.SetField(turnevent.FieldFollowupText, field.TypeString, value)
		_node.FollowupText = value
	}
	if value, ok := _c.mutation.FinalLabel(); ok {
		_spec.SetField(turnevent.FieldFinalLabel, field.TypeString, value)
		_node.FinalLabel = value
	}
	if value, ok := _c.mutation.FinalP(); ok {
		_spec.SetField(turnevent.FieldFinalP, field.TypeFloat64, value)
		_node.FinalP = value
	}
	if value, ok := _c.mutation.ProbeIntent(); ok {
		_spec.SetField(turnevent.FieldProbeIntent, field.TypeString, value)
		_node.ProbeIntent = value
	}
	if value, ok := _c.mutation.ProbeSource(); ok {
		_spec.SetField(turnevent.FieldProbeSource, field.TypeString, value)
		_node.ProbeSource = value
	}
	if value, ok := _c.mutation.ThetaBefore(); ok {
		_spec.SetField(turnevent.FieldThetaBefore, field.TypeFloat64, value)
		_node.ThetaBefore = value
	}
	if value, ok := _c.mutation.ThetaAfter(); ok {
		_spec.SetField(turnevent.FieldThetaAfter, field.TypeFloat64, value)
		_node.ThetaAfter = value
	}
	if value, ok := _c.mutation.SeAfter(); ok {
		_spec.SetField(turnevent.FieldSeAfter, field.TypeFloat64, value)
		_node.SeAfter = value
	}
	if value, ok := _c.mutation.NextItemID(); ok {
		_spec.SetField(turnevent.FieldNextItemID, field.TypeString, value)
		_node.NextItemID = value
	}
	if value, ok := _c.mutation.Trace(); ok {
		_spec.SetField(turnevent.FieldTrace, field.TypeJSON, value)
		_node.Trace = value
	}
	if value, ok := _c.mutation.Measurement(); ok {
		_spec.SetField(turnevent.FieldMeasurement, field.TypeBytes, value)
		_node.Measurement = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
