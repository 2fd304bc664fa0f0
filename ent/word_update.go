// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/predicate"
	"github.com/abhisek/lexiz/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *WordUpdate) SetText(v string) *WordUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *WordUpdate) SetNillableText(v *string) *WordUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *WordUpdate) SetTranslation(v string) *WordUpdate {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *WordUpdate) SetNillableTranslation(v *string) *WordUpdate {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *WordUpdate) SetLanguageCode(v string) *WordUpdate {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *WordUpdate) SetNillableLanguageCode(v *string) *WordUpdate {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *WordUpdate) SetTier(v string) *WordUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *WordUpdate) SetNillableTier(v *string) *WordUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *WordUpdate) SetScore(v int) *WordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *WordUpdate) SetNillableScore(v *int) *WordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *WordUpdate) AddScore(v int) *WordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WordUpdate) SetUpdatedAt(v time.Time) *WordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdate) Mutation() *WordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := word.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := word.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Word.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Translation(); ok {
		if err := word.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Word.translation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LanguageCode(); ok {
		if err := word.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "Word.language_code": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(word.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(word.FieldLanguageCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(word.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(word.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(word.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(word.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetText sets the "text" field.
func (_u *WordUpdateOne) SetText(v string) *WordUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableText(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *WordUpdateOne) SetTranslation(v string) *WordUpdateOne {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableTranslation(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *WordUpdateOne) SetLanguageCode(v string) *WordUpdateOne {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableLanguageCode(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *WordUpdateOne) SetTier(v string) *WordUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableTier(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *WordUpdateOne) SetScore(v int) *WordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableScore(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *WordUpdateOne) AddScore(v int) *WordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WordUpdateOne) SetUpdatedAt(v time.Time) *WordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdateOne) Mutation() *WordMutation {
	return _u.mutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Word entity.
func (_u *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := word.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := word.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Word.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Translation(); ok {
		if err := word.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Word.translation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LanguageCode(); ok {
		if err := word.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "Word.language_code": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(word.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(word.FieldLanguageCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(word.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(word.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(word.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(word.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Word{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
