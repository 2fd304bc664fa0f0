// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/appevent"
)

// AppEventCreate is the builder for creating a AppEvent entity.
type AppEventCreate struct {
	config
	mutation *AppEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AppEventCreate) SetSequence(v int64) *AppEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AppEventCreate) SetTimestamp(v time.Time) *AppEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AppEventCreate) SetNillableTimestamp(v *time.Time) *AppEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *AppEventCreate) SetName(v string) *AppEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *AppEventCreate) SetParams(v map[string]interface{}) *AppEventCreate {
	_c.mutation.SetParams(v)
	return _c
}

// Mutation returns the AppEventMutation object of the builder.
func (_c *AppEventCreate) Mutation() *AppEventMutation {
	return _c.mutation
}

// Save creates the AppEvent in the database.
func (_c *AppEventCreate) Save(ctx context.Context) (*AppEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppEventCreate) SaveX(ctx context.Context) *AppEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := appevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AppEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AppEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AppEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := appevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AppEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_c *AppEventCreate) sqlSave(ctx context.Context) (*AppEvent, error) {
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

func (_c *AppEventCreate) createSpec() (*AppEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AppEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appevent.Table, sqlgraph.NewFieldSpec(appevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(appevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(appevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(appevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(appevent.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	return _node, _spec
}

// AppEventCreateBulk is the builder for creating many AppEvent entities in bulk.
type AppEventCreateBulk struct {
	config
	err      error
	builders []*AppEventCreate
}

// Save creates the AppEvent entities in the database.
func (_c *AppEventCreateBulk) Save(ctx context.Context) ([]*AppEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppEventMutation)
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
func (_c *AppEventCreateBulk) SaveX(ctx context.Context) []*AppEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
