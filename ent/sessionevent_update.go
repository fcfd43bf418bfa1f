// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codecompanion/ent/predicate"
	"github.com/abhisek/codecompanion/ent/sessionevent"
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

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SessionEventUpdate) SetLessonID(v string) *SessionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLessonID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetItemsServed sets the "items_served" field.
func (_u *SessionEventUpdate) SetItemsServed(v int) *SessionEventUpdate {
	_u.mutation.ResetItemsServed()
	_u.mutation.SetItemsServed(v)
	return _u
}

// SetNillableItemsServed sets the "items_served" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableItemsServed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetItemsServed(*v)
	}
	return _u
}

// AddItemsServed adds value to the "items_served" field.
func (_u *SessionEventUpdate) AddItemsServed(v int) *SessionEventUpdate {
	_u.mutation.AddItemsServed(v)
	return _u
}

// SetItemsPassed sets the "items_passed" field.
func (_u *SessionEventUpdate) SetItemsPassed(v int) *SessionEventUpdate {
	_u.mutation.ResetItemsPassed()
	_u.mutation.SetItemsPassed(v)
	return _u
}

// SetNillableItemsPassed sets the "items_passed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableItemsPassed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetItemsPassed(*v)
	}
	return _u
}

// AddItemsPassed adds value to the "items_passed" field.
func (_u *SessionEventUpdate) AddItemsPassed(v int) *SessionEventUpdate {
	_u.mutation.AddItemsPassed(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *SessionEventUpdate) SetXpEarned(v int) *SessionEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableXpEarned(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *SessionEventUpdate) AddXpEarned(v int) *SessionEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
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
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(sessionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsServed(); ok {
		_spec.SetField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsServed(); ok {
		_spec.AddField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsPassed(); ok {
		_spec.SetField(sessionevent.FieldItemsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsPassed(); ok {
		_spec.AddField(sessionevent.FieldItemsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(sessionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(sessionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
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

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SessionEventUpdateOne) SetLessonID(v string) *SessionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLessonID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetItemsServed sets the "items_served" field.
func (_u *SessionEventUpdateOne) SetItemsServed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetItemsServed()
	_u.mutation.SetItemsServed(v)
	return _u
}

// SetNillableItemsServed sets the "items_served" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableItemsServed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetItemsServed(*v)
	}
	return _u
}

// AddItemsServed adds value to the "items_served" field.
func (_u *SessionEventUpdateOne) AddItemsServed(v int) *SessionEventUpdateOne {
	_u.mutation.AddItemsServed(v)
	return _u
}

// SetItemsPassed sets the "items_passed" field.
func (_u *SessionEventUpdateOne) SetItemsPassed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetItemsPassed()
	_u.mutation.SetItemsPassed(v)
	return _u
}

// SetNillableItemsPassed sets the "items_passed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableItemsPassed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetItemsPassed(*v)
	}
	return _u
}

// AddItemsPassed adds value to the "items_passed" field.
func (_u *SessionEventUpdateOne) AddItemsPassed(v int) *SessionEventUpdateOne {
	_u.mutation.AddItemsPassed(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *SessionEventUpdateOne) SetXpEarned(v int) *SessionEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableXpEarned(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *SessionEventUpdateOne) AddXpEarned(v int) *SessionEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
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
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(sessionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsServed(); ok {
		_spec.SetField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsServed(); ok {
		_spec.AddField(sessionevent.FieldItemsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsPassed(); ok {
		_spec.SetField(sessionevent.FieldItemsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsPassed(); ok {
		_spec.AddField(sessionevent.FieldItemsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(sessionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(sessionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
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
