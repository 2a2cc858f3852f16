// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/caliper/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetUserTag sets the "user_tag" field.
func (_c *SessionCreate) SetUserTag(v string) *SessionCreate {
	_c.mutation.SetUserTag(v)
	return _c
}

// SetNillableUserTag sets the "user_tag" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUserTag(v *string) *SessionCreate {
	if v != nil {
		_c.SetUserTag(*v)
	}
	return _c
}

// SetThetaMean sets the "theta_mean" field.
func (_c *SessionCreate) SetThetaMean(v float64) *SessionCreate {
	_c.mutation.SetThetaMean(v)
	return _c
}

// SetThetaVar sets the "theta_var" field.
func (_c *SessionCreate) SetThetaVar(v float64) *SessionCreate {
	_c.mutation.SetThetaVar(v)
	return _c
}

// SetAsked sets the "asked" field.
func (_c *SessionCreate) SetAsked(v []string) *SessionCreate {
	_c.mutation.SetAsked(v)
	return _c
}

// SetCoverage sets the "coverage" field.
func (_c *SessionCreate) SetCoverage(v map[string]int) *SessionCreate {
	_c.mutation.SetCoverage(v)
	return _c
}

// SetTurnCount sets the "turn_count" field.
func (_c *SessionCreate) SetTurnCount(v int) *SessionCreate {
	_c.mutation.SetTurnCount(v)
	return _c
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTurnCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetTurnCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.UserTag(); !ok {
		v := session.DefaultUserTag
		_c.mutation.SetUserTag(v)
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		v := session.DefaultTurnCount
		_c.mutation.SetTurnCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.UserTag(); !ok {
		return &ValidationError{Name: "user_tag", err: errors.New(`ent: missing required field "Session.user_tag"`)}
	}
	if _, ok := _c.mutation.ThetaMean(); !ok {
		return &ValidationError{Name: "theta_mean", err: errors.New(`ent: missing required field "Session.theta_mean"`)}
	}
	if _, ok := _c.mutation.ThetaVar(); !ok {
		return &ValidationError{Name: "theta_var", err: errors.New(`ent: missing required field "Session.theta_var"`)}
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		return &ValidationError{Name: "turn_count", err: errors.New(`ent: missing required field "Session.turn_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := session.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Session.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserTag(); ok {
		_spec.SetField(session.FieldUserTag, field.TypeString, value)
		_node.UserTag = value
	}
	if value, ok := _c.mutation.ThetaMean(); ok {
		_spec.SetField(session.FieldThetaMean, field.TypeFloat64, value)
		_node.ThetaMean = value
	}
	if value, ok := _c.mutation.ThetaVar(); ok {
		_spec.SetField(session.FieldThetaVar, field.TypeFloat64, value)
		_node.ThetaVar = value
	}
	if value, ok := _c.mutation.Asked(); ok {
		_spec.SetField(session.FieldAsked, field.TypeJSON, value)
		_node.Asked = value
	}
	if value, ok := _c.mutation.Coverage(); ok {
		_spec.SetField(session.FieldCoverage, field.TypeJSON, value)
		_node.Coverage = value
	}
	if value, ok := _c.mutation.TurnCount(); ok {
		_spec.SetField(session.FieldTurnCount, field.TypeInt, value)
		_node.TurnCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
