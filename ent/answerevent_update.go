// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/answerevent"
	"github.com/abhisek/lexiz/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *AnswerEventUpdate) SetWordID(v string) *AnswerEventUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableWordID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *AnswerEventUpdate) SetQuizType(v string) *AnswerEventUpdate {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuizType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnswerEventUpdate) SetOutcome(v string) *AnswerEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableOutcome(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnswerEventUpdate) SetAttempts(v int) *AnswerEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttempts(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnswerEventUpdate) AddAttempts(v int) *AnswerEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AnswerEventUpdate) SetLearnerAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLearnerAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AnswerEventUpdate) SetExpectedAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExpectedAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetScoreDelta sets the "score_delta" field.
func (_u *AnswerEventUpdate) SetScoreDelta(v int) *AnswerEventUpdate {
	_u.mutation.ResetScoreDelta()
	_u.mutation.SetScoreDelta(v)
	return _u
}

// SetNillableScoreDelta sets the "score_delta" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableScoreDelta(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetScoreDelta(*v)
	}
	return _u
}

// AddScoreDelta adds value to the "score_delta" field.
func (_u *AnswerEventUpdate) AddScoreDelta(v int) *AnswerEventUpdate {
	_u.mutation.AddScoreDelta(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := answerevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.word_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := answerevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.quiz_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := answerevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(answerevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(answerevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(answerevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(answerevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreDelta(); ok {
		_spec.SetField(answerevent.FieldScoreDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreDelta(); ok {
		_spec.AddField(answerevent.FieldScoreDelta, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *AnswerEventUpdateOne) SetWordID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableWordID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *AnswerEventUpdateOne) SetQuizType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuizType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnswerEventUpdateOne) SetOutcome(v string) *AnswerEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableOutcome(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnswerEventUpdateOne) SetAttempts(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttempts(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnswerEventUpdateOne) AddAttempts(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AnswerEventUpdateOne) SetLearnerAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLearnerAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AnswerEventUpdateOne) SetExpectedAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExpectedAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetScoreDelta sets the "score_delta" field.
func (_u *AnswerEventUpdateOne) SetScoreDelta(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetScoreDelta()
	_u.mutation.SetScoreDelta(v)
	return _u
}

// SetNillableScoreDelta sets the "score_delta" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableScoreDelta(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetScoreDelta(*v)
	}
	return _u
}

// AddScoreDelta adds value to the "score_delta" field.
func (_u *AnswerEventUpdateOne) AddScoreDelta(v int) *AnswerEventUpdateOne {
	_u.mutation.AddScoreDelta(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := answerevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.word_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := answerevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.quiz_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := answerevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(answerevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(answerevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(answerevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(answerevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreDelta(); ok {
		_spec.SetField(answerevent.FieldScoreDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreDelta(); ok {
		_spec.AddField(answerevent.FieldScoreDelta, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
