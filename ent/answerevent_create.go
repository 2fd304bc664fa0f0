// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerEventCreate) SetSessionID(v string) *AnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *AnswerEventCreate) SetWordID(v string) *AnswerEventCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetQuizType sets the "quiz_type" field.
func (_c *AnswerEventCreate) SetQuizType(v string) *AnswerEventCreate {
	_c.mutation.SetQuizType(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *AnswerEventCreate) SetOutcome(v string) *AnswerEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *AnswerEventCreate) SetAttempts(v int) *AnswerEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableAttempts(v *int) *AnswerEventCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_c *AnswerEventCreate) SetLearnerAnswer(v string) *AnswerEventCreate {
	_c.mutation.SetLearnerAnswer(v)
	return _c
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableLearnerAnswer(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetLearnerAnswer(*v)
	}
	return _c
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_c *AnswerEventCreate) SetExpectedAnswer(v string) *AnswerEventCreate {
	_c.mutation.SetExpectedAnswer(v)
	return _c
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableExpectedAnswer(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetExpectedAnswer(*v)
	}
	return _c
}

// SetScoreDelta sets the "score_delta" field.
func (_c *AnswerEventCreate) SetScoreDelta(v int) *AnswerEventCreate {
	_c.mutation.SetScoreDelta(v)
	return _c
}

// SetNillableScoreDelta sets the "score_delta" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableScoreDelta(v *int) *AnswerEventCreate {
	if v != nil {
		_c.SetScoreDelta(*v)
	}
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := answerevent.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.LearnerAnswer(); !ok {
		v := answerevent.DefaultLearnerAnswer
		_c.mutation.SetLearnerAnswer(v)
	}
	if _, ok := _c.mutation.ExpectedAnswer(); !ok {
		v := answerevent.DefaultExpectedAnswer
		_c.mutation.SetExpectedAnswer(v)
	}
	if _, ok := _c.mutation.ScoreDelta(); !ok {
		v := answerevent.DefaultScoreDelta
		_c.mutation.SetScoreDelta(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "AnswerEvent.word_id"`)}
	}
	if v, ok := _c.mutation.WordID(); ok {
		if err := answerevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.word_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizType(); !ok {
		return &ValidationError{Name: "quiz_type", err: errors.New(`ent: missing required field "AnswerEvent.quiz_type"`)}
	}
	if v, ok := _c.mutation.QuizType(); ok {
		if err := answerevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.quiz_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "AnswerEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := answerevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "AnswerEvent.attempts"`)}
	}
	if _, ok := _c.mutation.LearnerAnswer(); !ok {
		return &ValidationError{Name: "learner_answer", err: errors.New(`ent: missing required field "AnswerEvent.learner_answer"`)}
	}
	if _, ok := _c.mutation.ExpectedAnswer(); !ok {
		return &ValidationError{Name: "expected_answer", err: errors.New(`ent: missing required field "AnswerEvent.expected_answer"`)}
	}
	if _, ok := _c.mutation.ScoreDelta(); !ok {
		return &ValidationError{Name: "score_delta", err: errors.New(`ent: missing required field "AnswerEvent.score_delta"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.QuizType(); ok {
		_spec.SetField(answerevent.FieldQuizType, field.TypeString, value)
		_node.QuizType = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(answerevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(answerevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LearnerAnswer(); ok {
		_spec.SetField(answerevent.FieldLearnerAnswer, field.TypeString, value)
		_node.LearnerAnswer = value
	}
	if value, ok := _c.mutation.ExpectedAnswer(); ok {
		_spec.SetField(answerevent.FieldExpectedAnswer, field.TypeString, value)
		_node.ExpectedAnswer = value
	}
	if value, ok := _c.mutation.ScoreDelta(); ok {
		_spec.SetField(answerevent.FieldScoreDelta, field.TypeInt, value)
		_node.ScoreDelta = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
