// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codecompanion/ent/attemptevent"
	"github.com/abhisek/codecompanion/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *AttemptEventUpdate) SetLessonID(v string) *AttemptEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLessonID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdate) SetItemID(v string) *AttemptEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableItemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemKind sets the "item_kind" field.
func (_u *AttemptEventUpdate) SetItemKind(v string) *AttemptEventUpdate {
	_u.mutation.SetItemKind(v)
	return _u
}

// SetNillableItemKind sets the "item_kind" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableItemKind(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetItemKind(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdate) SetAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdate) SetPassed(v bool) *AttemptEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePassed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAttemptNo sets the "attempt_no" field.
func (_u *AttemptEventUpdate) SetAttemptNo(v int) *AttemptEventUpdate {
	_u.mutation.ResetAttemptNo()
	_u.mutation.SetAttemptNo(v)
	return _u
}

// SetNillableAttemptNo sets the "attempt_no" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptNo(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptNo(*v)
	}
	return _u
}

// AddAttemptNo adds value to the "attempt_no" field.
func (_u *AttemptEventUpdate) AddAttemptNo(v int) *AttemptEventUpdate {
	_u.mutation.AddAttemptNo(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdate) SetTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdate) AddTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemKind(); ok {
		if err := attemptevent.ItemKindValidator(v); err != nil {
			return &ValidationError{Name: "item_kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(attemptevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemKind(); ok {
		_spec.SetField(attemptevent.FieldItemKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNo(); ok {
		_spec.SetField(attemptevent.FieldAttemptNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNo(); ok {
		_spec.AddField(attemptevent.FieldAttemptNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *AttemptEventUpdateOne) SetLessonID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLessonID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdateOne) SetItemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableItemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemKind sets the "item_kind" field.
func (_u *AttemptEventUpdateOne) SetItemKind(v string) *AttemptEventUpdateOne {
	_u.mutation.SetItemKind(v)
	return _u
}

// SetNillableItemKind sets the "item_kind" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableItemKind(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetItemKind(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdateOne) SetAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdateOne) SetPassed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePassed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAttemptNo sets the "attempt_no" field.
func (_u *AttemptEventUpdateOne) SetAttemptNo(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAttemptNo()
	_u.mutation.SetAttemptNo(v)
	return _u
}

// SetNillableAttemptNo sets the "attempt_no" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptNo(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptNo(*v)
	}
	return _u
}

// AddAttemptNo adds value to the "attempt_no" field.
func (_u *AttemptEventUpdateOne) AddAttemptNo(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAttemptNo(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdateOne) SetTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdateOne) AddTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemKind(); ok {
		if err := attemptevent.ItemKindValidator(v); err != nil {
			return &ValidationError{Name: "item_kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(attemptevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemKind(); ok {
		_spec.SetField(attemptevent.FieldItemKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNo(); ok {
		_spec.SetField(attemptevent.FieldAttemptNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNo(); ok {
		_spec.AddField(attemptevent.FieldAttemptNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
