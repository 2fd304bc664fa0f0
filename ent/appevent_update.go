// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/appevent"
	"github.com/abhisek/lexiz/ent/predicate"
)

// AppEventUpdate is the builder for updating AppEvent entities.
type AppEventUpdate struct {
	config
	hooks    []Hook
	mutation *AppEventMutation
}

// Where appends a list predicates to the AppEventUpdate builder.
func (_u *AppEventUpdate) Where(ps ...predicate.AppEvent) *AppEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AppEventUpdate) SetName(v string) *AppEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppEventUpdate) SetNillableName(v *string) *AppEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *AppEventUpdate) SetParams(v map[string]interface{}) *AppEventUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *AppEventUpdate) ClearParams() *AppEventUpdate {
	_u.mutation.ClearParams()
	return _u
}

// Mutation returns the AppEventMutation object of the builder.
func (_u *AppEventUpdate) Mutation() *AppEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppEventUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := appevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AppEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AppEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appevent.Table, appevent.Columns, sqlgraph.NewFieldSpec(appevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(appevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(appevent.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(appevent.FieldParams, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppEventUpdateOne is the builder for updating a single AppEvent entity.
type AppEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppEventMutation
}

// SetName sets the "name" field.
func (_u *AppEventUpdateOne) SetName(v string) *AppEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppEventUpdateOne) SetNillableName(v *string) *AppEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *AppEventUpdateOne) SetParams(v map[string]interface{}) *AppEventUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *AppEventUpdateOne) ClearParams() *AppEventUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// Mutation returns the AppEventMutation object of the builder.
func (_u *AppEventUpdateOne) Mutation() *AppEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppEventUpdate builder.
func (_u *AppEventUpdateOne) Where(ps ...predicate.AppEvent) *AppEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppEventUpdateOne) Select(field string, fields ...string) *AppEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppEvent entity.
func (_u *AppEventUpdateOne) Save(ctx context.Context) (*AppEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppEventUpdateOne) SaveX(ctx context.Context) *AppEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppEventUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := appevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AppEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AppEventUpdateOne) sqlSave(ctx context.Context) (_node *AppEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appevent.Table, appevent.Columns, sqlgraph.NewFieldSpec(appevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AppEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appevent.FieldID)
		for _, f := range fields {
			if !appevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appevent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(appevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(appevent.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(appevent.FieldParams, field.TypeJSON)
	}
	_node = &AppEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
