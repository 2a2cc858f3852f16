// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/caliper/ent/predicate"
	"github.com/abhisek/caliper/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnIndex sets the "turn_index" field.
func (_u *TurnEventUpdate) SetTurnIndex(v int) *TurnEventUpdate {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTurnIndex(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *TurnEventUpdate) AddTurnIndex(v int) *TurnEventUpdate {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *TurnEventUpdate) SetItemID(v string) *TurnEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableItemID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *TurnEventUpdate) SetAnswerText(v string) *TurnEventUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableAnswerText(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetFollowupText sets the "followup_text" field.
func (_u *TurnEventUpdate) SetFollowupText(v string) *TurnEventUpdate {
	_u.mutation.SetFollowupText(v)
	return _u
}

// SetNillableFollowupText sets the "followup_text" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableFollowupText(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetFollowupText(*v)
	}
	return _u
}

// SetFinalLabel sets the "final_label" field.
func (_u *TurnEventUpdate) SetFinalLabel(v string) *TurnEventUpdate {
	_u.mutation.SetFinalLabel(v)
	return _u
}

// SetNillableFinalLabel sets the "final_label" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableFinalLabel(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetFinalLabel(*v)
	}
	return _u
}

// SetFinalP sets the "final_p" field.
func (_u *TurnEventUpdate) SetFinalP(v float64) *TurnEventUpdate {
	_u.mutation.ResetFinalP()
	_u.mutation.SetFinalP(v)
	return _u
}

// SetNillableFinalP sets the "final_p" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableFinalP(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetFinalP(*v)
	}
	return _u
}

// AddFinalP adds value to the "final_p" field.
func (_u *TurnEventUpdate) AddFinalP(v float64) *TurnEventUpdate {
	_u.mutation.AddFinalP(v)
	return _u
}

// SetProbeIntent sets the "probe_intent" field.
func (_u *TurnEventUpdate) SetProbeIntent(v string) *TurnEventUpdate {
	_u.mutation.SetProbeIntent(v)
	return _u
}

// SetNillableProbeIntent sets the "probe_intent" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableProbeIntent(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetProbeIntent(*v)
	}
	return _u
}

// SetProbeSource sets the "probe_source" field.
func (_u *TurnEventUpdate) SetProbeSource(v string) *TurnEventUpdate {
	_u.mutation.SetProbeSource(v)
	return _u
}

// SetNillableProbeSource sets the "probe_source" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableProbeSource(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetProbeSource(*v)
	}
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *TurnEventUpdate) SetThetaBefore(v float64) *TurnEventUpdate {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableThetaBefore(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *TurnEventUpdate) AddThetaBefore(v float64) *TurnEventUpdate {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *TurnEventUpdate) SetThetaAfter(v float64) *TurnEventUpdate {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableThetaAfter(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *TurnEventUpdate) AddThetaAfter(v float64) *TurnEventUpdate {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetSeAfter sets the "se_after" field.
func (_u *TurnEventUpdate) SetSeAfter(v float64) *TurnEventUpdate {
	_u.mutation.ResetSeAfter()
	_u.mutation.SetSeAfter(v)
	return _u
}

// SetNillableSeAfter sets the "se_after" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSeAfter(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetSeAfter(*v)
	}
	return _u
}

// AddSeAfter adds value to the "se_after" field.
func (_u *TurnEventUpdate) AddSeAfter(v float64) *TurnEventUpdate {
	_u.mutation.AddSeAfter(v)
	return _u
}

// SetNextItemID sets the "next_item_id" field.
func (_u *TurnEventUpdate) SetNextItemID(v string) *TurnEventUpdate {
	_u.mutation.SetNextItemID(v)
	return _u
}

// SetNillableNextItemID sets the "next_item_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableNextItemID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetNextItemID(*v)
	}
	return _u
}

// SetTrace sets the "trace" field.
func (_u *TurnEventUpdate) SetTrace(v []string) *TurnEventUpdate {
	_u.mutation.SetTrace(v)
	return _u
}

// AppendTrace appends value to the "trace" field.
func (_u *TurnEventUpdate) AppendTrace(v []string) *TurnEventUpdate {
	_u.mutation.AppendTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *TurnEventUpdate) ClearTrace() *TurnEventUpdate {
	_u.mutation.ClearTrace()
	return _u
}

// SetMeasurement sets the "measurement" field.
func (_u *TurnEventUpdate) SetMeasurement(v []byte) *TurnEventUpdate {
	_u.mutation.SetMeasurement(v)
	return _u
}

// ClearMeasurement clears the value of the "measurement" field.
func (_u *TurnEventUpdate) ClearMeasurement() *TurnEventUpdate {
	_u.mutation.ClearMeasurement()
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := turnevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(turnevent.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(turnevent.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(turnevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(turnevent.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowupText(); ok {
		_spec.SetField(turnevent.FieldFollowupText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalLabel(); ok {
		_spec.SetField(turnevent.FieldFinalLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalP(); ok {
		_spec.SetField(turnevent.FieldFinalP, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalP(); ok {
		_spec.AddField(turnevent.FieldFinalP, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProbeIntent(); ok {
		_spec.SetField(turnevent.FieldProbeIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProbeSource(); ok {
		_spec.SetField(turnevent.FieldProbeSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(turnevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(turnevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(turnevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(turnevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeAfter(); ok {
		_spec.SetField(turnevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeAfter(); ok {
		_spec.AddField(turnevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextItemID(); ok {
		_spec.SetField(turnevent.FieldNextItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(turnevent.FieldTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldTrace, value)
		})
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(turnevent.FieldTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.Measurement(); ok {
		_spec.SetField(turnevent.FieldMeasurement, field.TypeBytes, value)
	}
	if _u.mutation.MeasurementCleared() {
		_spec.ClearField(turnevent.FieldMeasurement, field.TypeBytes)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnIndex sets the "turn_index" field.
func (_u *TurnEventUpdateOne) SetTurnIndex(v int) *TurnEventUpdateOne {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTurnIndex(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *TurnEventUpdateOne) AddTurnIndex(v int) *TurnEventUpdateOne {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *TurnEventUpdateOne) SetItemID(v string) *TurnEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableItemID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *TurnEventUpdateOne) SetAnswerText(v string) *TurnEventUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableAnswerText(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetFollowupText sets the "followup_text" field.
func (_u *TurnEventUpdateOne) SetFollowupText(v string) *TurnEventUpdateOne {
	_u.mutation.SetFollowupText(v)
	return _u
}

// SetNillableFollowupText sets the "followup_text" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableFollowupText(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetFollowupText(*v)
	}
	return _u
}

// SetFinalLabel sets the "final_label" field.
func (_u *TurnEventUpdateOne) SetFinalLabel(v string) *TurnEventUpdateOne {
	_u.mutation.SetFinalLabel(v)
	return _u
}

// SetNillableFinalLabel sets the "final_label" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableFinalLabel(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetFinalLabel(*v)
	}
	return _u
}

// SetFinalP sets the "final_p" field.
func (_u *TurnEventUpdateOne) SetFinalP(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetFinalP()
	_u.mutation.SetFinalP(v)
	return _u
}

// SetNillableFinalP sets the "final_p" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableFinalP(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetFinalP(*v)
	}
	return _u
}

// AddFinalP adds value to the "final_p" field.
func (_u *TurnEventUpdateOne) AddFinalP(v float64) *TurnEventUpdateOne {
	_u.mutation.AddFinalP(v)
	return _u
}

// SetProbeIntent sets the "probe_intent" field.
func (_u *TurnEventUpdateOne) SetProbeIntent(v string) *TurnEventUpdateOne {
	_u.mutation.SetProbeIntent(v)
	return _u
}

// SetNillableProbeIntent sets the "probe_intent" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableProbeIntent(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetProbeIntent(*v)
	}
	return _u
}

// SetProbeSource sets the "probe_source" field.
func (_u *TurnEventUpdateOne) SetProbeSource(v string) *TurnEventUpdateOne {
	_u.mutation.SetProbeSource(v)
	return _u
}

// SetNillableProbeSource sets the "probe_source" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableProbeSource(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetProbeSource(*v)
	}
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *TurnEventUpdateOne) SetThetaBefore(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableThetaBefore(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *TurnEventUpdateOne) AddThetaBefore(v float64) *TurnEventUpdateOne {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *TurnEventUpdateOne) SetThetaAfter(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableThetaAfter(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *TurnEventUpdateOne) AddThetaAfter(v float64) *TurnEventUpdateOne {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetSeAfter sets the "se_after" field.
func (_u *TurnEventUpdateOne) SetSeAfter(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetSeAfter()
	_u.mutation.SetSeAfter(v)
	return _u
}

// SetNillableSeAfter sets the "se_after" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSeAfter(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSeAfter(*v)
	}
	return _u
}

// AddSeAfter adds value to the "se_after" field.
func (_u *TurnEventUpdateOne) AddSeAfter(v float64) *TurnEventUpdateOne {
	_u.mutation.AddSeAfter(v)
	return _u
}

// SetNextItemID sets the "next_item_id" field.
func (_u *TurnEventUpdateOne) SetNextItemID(v string) *TurnEventUpdateOne {
	_u.mutation.SetNextItemID(v)
	return _u
}

// SetNillableNextItemID sets the "next_item_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableNextItemID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetNextItemID(*v)
	}
	return _u
}

// SetTrace sets the "trace" field.
func (_u *TurnEventUpdateOne) SetTrace(v []string) *TurnEventUpdateOne {
	_u.mutation.SetTrace(v)
	return _u
}

// AppendTrace appends value to the "trace" field.
func (_u *TurnEventUpdateOne) AppendTrace(v []string) *TurnEventUpdateOne {
	_u.mutation.AppendTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *TurnEventUpdateOne) ClearTrace() *TurnEventUpdateOne {
	_u.mutation.ClearTrace()
	return _u
}

// SetMeasurement sets the "measurement" field.
func (_u *TurnEventUpdateOne) SetMeasurement(v []byte) *TurnEventUpdateOne {
	_u.mutation.SetMeasurement(v)
	return _u
}

// ClearMeasurement clears the value of the "measurement" field.
func (_u *TurnEventUpdateOne) ClearMeasurement() *TurnEventUpdateOne {
	_u.mutation.ClearMeasurement()
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := turnevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(turnevent.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(turnevent.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(turnevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(turnevent.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowupText(); ok {
		_spec.SetField(turnevent.FieldFollowupText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalLabel(); ok {
		_spec.SetField(turnevent.FieldFinalLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalP(); ok {
		_spec.SetField(turnevent.FieldFinalP, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalP(); ok {
		_spec.AddField(turnevent.FieldFinalP, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProbeIntent(); ok {
		_spec.SetField(turnevent.FieldProbeIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProbeSource(); ok {
		_spec.SetField(turnevent.FieldProbeSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(turnevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(turnevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(turnevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(turnevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeAfter(); ok {
		_spec.SetField(turnevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeAfter(); ok {
		_spec.AddField(turnevent.FieldSeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextItemID(); ok {
		_spec.SetField(turnevent.FieldNextItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(turnevent.FieldTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldTrace, value)
		})
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(turnevent.FieldTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.Measurement(); ok {
		_spec.SetField(turnevent.FieldMeasurement, field.TypeBytes, value)
	}
	if _u.mutation.MeasurementCleared() {
		_spec.ClearField(turnevent.FieldMeasurement, field.TypeBytes)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
