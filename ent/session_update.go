// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/caliper/ent/predicate"
	"github.com/abhisek/caliper/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserTag sets the "user_tag" field.
func (_u *SessionUpdate) SetUserTag(v string) *SessionUpdate {
	_u.mutation.SetUserTag(v)
	return _u
}

// SetNillableUserTag sets the "user_tag" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserTag(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserTag(*v)
	}
	return _u
}

// SetThetaMean sets the "theta_mean" field.
func (_u *SessionUpdate) SetThetaMean(v float64) *SessionUpdate {
	_u.mutation.ResetThetaMean()
	_u.mutation.SetThetaMean(v)
	return _u
}

// SetNillableThetaMean sets the "theta_mean" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableThetaMean(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetThetaMean(*v)
	}
	return _u
}

// AddThetaMean adds value to the "theta_mean" field.
func (_u *SessionUpdate) AddThetaMean(v float64) *SessionUpdate {
	_u.mutation.AddThetaMean(v)
	return _u
}

// SetThetaVar sets the "theta_var" field.
func (_u *SessionUpdate) SetThetaVar(v float64) *SessionUpdate {
	_u.mutation.ResetThetaVar()
	_u.mutation.SetThetaVar(v)
	return _u
}

// SetNillableThetaVar sets the "theta_var" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableThetaVar(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetThetaVar(*v)
	}
	return _u
}

// AddThetaVar adds value to the "theta_var" field.
func (_u *SessionUpdate) AddThetaVar(v float64) *SessionUpdate {
	_u.mutation.AddThetaVar(v)
	return _u
}

// SetAsked sets the "asked" field.
func (_u *SessionUpdate) SetAsked(v []string) *SessionUpdate {
	_u.mutation.SetAsked(v)
	return _u
}

// AppendAsked appends value to the "asked" field.
func (_u *SessionUpdate) AppendAsked(v []string) *SessionUpdate {
	_u.mutation.AppendAsked(v)
	return _u
}

// ClearAsked clears the value of the "asked" field.
func (_u *SessionUpdate) ClearAsked() *SessionUpdate {
	_u.mutation.ClearAsked()
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *SessionUpdate) SetCoverage(v map[string]int) *SessionUpdate {
	_u.mutation.SetCoverage(v)
	return _u
}

// ClearCoverage clears the value of the "coverage" field.
func (_u *SessionUpdate) ClearCoverage() *SessionUpdate {
	_u.mutation.ClearCoverage()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *SessionUpdate) SetTurnCount(v int) *SessionUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTurnCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *SessionUpdate) AddTurnCount(v int) *SessionUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserTag(); ok {
		_spec.SetField(session.FieldUserTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThetaMean(); ok {
		_spec.SetField(session.FieldThetaMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaMean(); ok {
		_spec.AddField(session.FieldThetaMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaVar(); ok {
		_spec.SetField(session.FieldThetaVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaVar(); ok {
		_spec.AddField(session.FieldThetaVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Asked(); ok {
		_spec.SetField(session.FieldAsked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAsked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldAsked, value)
		})
	}
	if _u.mutation.AskedCleared() {
		_spec.ClearField(session.FieldAsked, field.TypeJSON)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(session.FieldCoverage, field.TypeJSON, value)
	}
	if _u.mutation.CoverageCleared() {
		_spec.ClearField(session.FieldCoverage, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(session.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(session.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUserTag sets the "user_tag" field.
func (_u *SessionUpdateOne) SetUserTag(v string) *SessionUpdateOne {
	_u.mutation.SetUserTag(v)
	return _u
}

// SetNillableUserTag sets the "user_tag" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserTag(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserTag(*v)
	}
	return _u
}

// SetThetaMean sets the "theta_mean" field.
func (_u *SessionUpdateOne) SetThetaMean(v float64) *SessionUpdateOne {
	_u.mutation.ResetThetaMean()
	_u.mutation.SetThetaMean(v)
	return _u
}

// SetNillableThetaMean sets the "theta_mean" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableThetaMean(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetThetaMean(*v)
	}
	return _u
}

// AddThetaMean adds value to the "theta_mean" field.
func (_u *SessionUpdateOne) AddThetaMean(v float64) *SessionUpdateOne {
	_u.mutation.AddThetaMean(v)
	return _u
}

// SetThetaVar sets the "theta_var" field.
func (_u *SessionUpdateOne) SetThetaVar(v float64) *SessionUpdateOne {
	_u.mutation.ResetThetaVar()
	_u.mutation.SetThetaVar(v)
	return _u
}

// SetNillableThetaVar sets the "theta_var" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableThetaVar(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetThetaVar(*v)
	}
	return _u
}

// AddThetaVar adds value to the "theta_var" field.
func (_u *SessionUpdateOne) AddThetaVar(v float64) *SessionUpdateOne {
	_u.mutation.AddThetaVar(v)
	return _u
}

// SetAsked sets the "asked" field.
func (_u *SessionUpdateOne) SetAsked(v []string) *SessionUpdateOne {
	_u.mutation.SetAsked(v)
	return _u
}

// AppendAsked appends value to the "asked" field.
func (_u *SessionUpdateOne) AppendAsked(v []string) *SessionUpdateOne {
	_u.mutation.AppendAsked(v)
	return _u
}

// ClearAsked clears the value of the "asked" field.
func (_u *SessionUpdateOne) ClearAsked() *SessionUpdateOne {
	_u.mutation.ClearAsked()
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *SessionUpdateOne) SetCoverage(v map[string]int) *SessionUpdateOne {
	_u.mutation.SetCoverage(v)
	return _u
}

// ClearCoverage clears the value of the "coverage" field.
func (_u *SessionUpdateOne) ClearCoverage() *SessionUpdateOne {
	_u.mutation.ClearCoverage()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *SessionUpdateOne) SetTurnCount(v int) *SessionUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTurnCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *SessionUpdateOne) AddTurnCount(v int) *SessionUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.UserTag(); ok {
		_spec.SetField(session.FieldUserTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThetaMean(); ok {
		_spec.SetField(session.FieldThetaMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaMean(); ok {
		_spec.AddField(session.FieldThetaMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaVar(); ok {
		_spec.SetField(session.FieldThetaVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaVar(); ok {
		_spec.AddField(session.FieldThetaVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Asked(); ok {
		_spec.SetField(session.FieldAsked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAsked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldAsked, value)
		})
	}
	if _u.mutation.AskedCleared() {
		_spec.ClearField(session.FieldAsked, field.TypeJSON)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(session.FieldCoverage, field.TypeJSON, value)
	}
	if _u.mutation.CoverageCleared() {
		_spec.ClearField(session.FieldCoverage, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(session.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(session.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
