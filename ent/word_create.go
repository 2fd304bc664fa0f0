// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/word"
)

// WordCreate is the builder for creating a Word entity.
type WordCreate struct {
	config
	mutation *WordMutation
	hooks    []Hook
}

// SetWordID sets the "word_id" field.
func (_c *WordCreate) SetWordID(v string) *WordCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *WordCreate) SetText(v string) *WordCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTranslation sets the "translation" field.
func (_c *WordCreate) SetTranslation(v string) *WordCreate {
	_c.mutation.SetTranslation(v)
	return _c
}

// SetLanguageCode sets the "language_code" field.
func (_c *WordCreate) SetLanguageCode(v string) *WordCreate {
	_c.mutation.SetLanguageCode(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *WordCreate) SetTier(v string) *WordCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *WordCreate) SetNillableTier(v *string) *WordCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *WordCreate) SetScore(v int) *WordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *WordCreate) SetNillableScore(v *int) *WordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WordCreate) SetCreatedAt(v time.Time) *WordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WordCreate) SetNillableCreatedAt(v *time.Time) *WordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WordCreate) SetUpdatedAt(v time.Time) *WordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WordCreate) SetNillableUpdatedAt(v *time.Time) *WordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the WordMutation object of the builder.
func (_c *WordCreate) Mutation() *WordMutation {
	return _c.mutation
}

// Save creates the Word in the database.
func (_c *WordCreate) Save(ctx context.Context) (*Word, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordCreate) SaveX(ctx context.Context) *Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordCreate) defaults() {
	if _, ok := _c.mutation.Tier(); !ok {
		v := word.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := word.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := word.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := word.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordCreate) check() error {
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "Word.word_id"`)}
	}
	if v, ok := _c.mutation.WordID(); ok {
		if err := word.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "Word.word_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Word.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := word.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Word.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "Word.translation"`)}
	}
	if v, ok := _c.mutation.Translation(); ok {
		if err := word.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Word.translation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LanguageCode(); !ok {
		return &ValidationError{Name: "language_code", err: errors.New(`ent: missing required field "Word.language_code"`)}
	}
	if v, ok := _c.mutation.LanguageCode(); ok {
		if err := word.LanguageCodeValidator(v); err != nil {
			return &ValidationError{Name: "language_code", err: fmt.Errorf(`ent: validator failed for field "Word.language_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Word.tier"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Word.score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Word.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Word.updated_at"`)}
	}
	return nil
}

func (_c *WordCreate) sqlSave(ctx context.Context) (*Word, error) {
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

func (_c *WordCreate) createSpec() (*Word, *sqlgraph.CreateSpec) {
	var (
		_node = &Word{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(word.Table, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(word.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Translation(); ok {
		_spec.SetField(word.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := _c.mutation.LanguageCode(); ok {
		_spec.SetField(word.FieldLanguageCode, field.TypeString, value)
		_node.LanguageCode = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(word.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(word.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(word.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(word.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WordCreateBulk is the builder for creating many Word entities in bulk.
type WordCreateBulk struct {
	config
	err      error
	builders []*WordCreate
}

// Save creates the Word entities in the database.
func (_c *WordCreateBulk) Save(ctx context.Context) ([]*Word, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Word, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordMutation)
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
func (_c *WordCreateBulk) SaveX(ctx context.Context) []*Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
