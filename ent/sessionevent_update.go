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
	"github.com/abhisek/lexiz/ent/predicate"
	"github.com/abhisek/lexiz/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *SessionEventUpdate) SetQuizType(v string) *SessionEventUpdate {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuizType(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionEventUpdate) SetScore(v int) *SessionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableScore(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionEventUpdate) AddScore(v int) *SessionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdate) SetCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCorrectAnswers(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdate) AddCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalPlayed sets the "total_played" field.
func (_u *SessionEventUpdate) SetTotalPlayed(v int) *SessionEventUpdate {
	_u.mutation.ResetTotalPlayed()
	_u.mutation.SetTotalPlayed(v)
	return _u
}

// SetNillableTotalPlayed sets the "total_played" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotalPlayed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotalPlayed(*v)
	}
	return _u
}

// AddTotalPlayed adds value to the "total_played" field.
func (_u *SessionEventUpdate) AddTotalPlayed(v int) *SessionEventUpdate {
	_u.mutation.AddTotalPlayed(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v float64) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v float64) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SessionEventUpdate) SetAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAccuracy(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SessionEventUpdate) AddAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetPracticedIds sets the "practiced_ids" field.
func (_u *SessionEventUpdate) SetPracticedIds(v []string) *SessionEventUpdate {
	_u.mutation.SetPracticedIds(v)
	return _u
}

// AppendPracticedIds appends value to the "practiced_ids" field.
func (_u *SessionEventUpdate) AppendPracticedIds(v []string) *SessionEventUpdate {
	_u.mutation.AppendPracticedIds(v)
	return _u
}

// ClearPracticedIds clears the value of the "practiced_ids" field.
func (_u *SessionEventUpdate) ClearPracticedIds() *SessionEventUpdate {
	_u.mutation.ClearPracticedIds()
	return _u
}

// SetCorrectIds sets the "correct_ids" field.
func (_u *SessionEventUpdate) SetCorrectIds(v []string) *SessionEventUpdate {
	_u.mutation.SetCorrectIds(v)
	return _u
}

// AppendCorrectIds appends value to the "correct_ids" field.
func (_u *SessionEventUpdate) AppendCorrectIds(v []string) *SessionEventUpdate {
	_u.mutation.AppendCorrectIds(v)
	return _u
}

// ClearCorrectIds clears the value of the "correct_ids" field.
func (_u *SessionEventUpdate) ClearCorrectIds() *SessionEventUpdate {
	_u.mutation.ClearCorrectIds()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := sessionevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.quiz_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(sessionevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPlayed(); ok {
		_spec.SetField(sessionevent.FieldTotalPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPlayed(); ok {
		_spec.AddField(sessionevent.FieldTotalPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticedIds(); ok {
		_spec.SetField(sessionevent.FieldPracticedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPracticedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldPracticedIds, value)
		})
	}
	if _u.mutation.PracticedIdsCleared() {
		_spec.ClearField(sessionevent.FieldPracticedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectIds(); ok {
		_spec.SetField(sessionevent.FieldCorrectIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldCorrectIds, value)
		})
	}
	if _u.mutation.CorrectIdsCleared() {
		_spec.ClearField(sessionevent.FieldCorrectIds, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *SessionEventUpdateOne) SetQuizType(v string) *SessionEventUpdateOne {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuizType(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionEventUpdateOne) SetScore(v int) *SessionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableScore(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionEventUpdateOne) AddScore(v int) *SessionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdateOne) SetCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCorrectAnswers(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdateOne) AddCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalPlayed sets the "total_played" field.
func (_u *SessionEventUpdateOne) SetTotalPlayed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotalPlayed()
	_u.mutation.SetTotalPlayed(v)
	return _u
}

// SetNillableTotalPlayed sets the "total_played" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotalPlayed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotalPlayed(*v)
	}
	return _u
}

// AddTotalPlayed adds value to the "total_played" field.
func (_u *SessionEventUpdateOne) AddTotalPlayed(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotalPlayed(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v float64) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SessionEventUpdateOne) SetAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAccuracy(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SessionEventUpdateOne) AddAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetPracticedIds sets the "practiced_ids" field.
func (_u *SessionEventUpdateOne) SetPracticedIds(v []string) *SessionEventUpdateOne {
	_u.mutation.SetPracticedIds(v)
	return _u
}

// AppendPracticedIds appends value to the "practiced_ids" field.
func (_u *SessionEventUpdateOne) AppendPracticedIds(v []string) *SessionEventUpdateOne {
	_u.mutation.AppendPracticedIds(v)
	return _u
}

// ClearPracticedIds clears the value of the "practiced_ids" field.
func (_u *SessionEventUpdateOne) ClearPracticedIds() *SessionEventUpdateOne {
	_u.mutation.ClearPracticedIds()
	return _u
}

// SetCorrectIds sets the "correct_ids" field.
func (_u *SessionEventUpdateOne) SetCorrectIds(v []string) *SessionEventUpdateOne {
	_u.mutation.SetCorrectIds(v)
	return _u
}

// AppendCorrectIds appends value to the "correct_ids" field.
func (_u *SessionEventUpdateOne) AppendCorrectIds(v []string) *SessionEventUpdateOne {
	_u.mutation.AppendCorrectIds(v)
	return _u
}

// ClearCorrectIds clears the value of the "correct_ids" field.
func (_u *SessionEventUpdateOne) ClearCorrectIds() *SessionEventUpdateOne {
	_u.mutation.ClearCorrectIds()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := sessionevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.quiz_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(sessionevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPlayed(); ok {
		_spec.SetField(sessionevent.FieldTotalPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPlayed(); ok {
		_spec.AddField(sessionevent.FieldTotalPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticedIds(); ok {
		_spec.SetField(sessionevent.FieldPracticedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPracticedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldPracticedIds, value)
		})
	}
	if _u.mutation.PracticedIdsCleared() {
		_spec.ClearField(sessionevent.FieldPracticedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectIds(); ok {
		_spec.SetField(sessionevent.FieldCorrectIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldCorrectIds, value)
		})
	}
	if _u.mutation.CorrectIdsCleared() {
		_spec.ClearField(sessionevent.FieldCorrectIds, field.TypeJSON)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
