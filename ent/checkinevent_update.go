// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codecompanion/ent/checkinevent"
	"github.com/abhisek/codecompanion/ent/predicate"
)

// CheckinEventUpdate is the builder for updating CheckinEvent entities.
type CheckinEventUpdate struct {
	config
	hooks    []Hook
	mutation *CheckinEventMutation
}

// Where appends a list predicates to the CheckinEventUpdate builder.
func (_u *CheckinEventUpdate) Where(ps ...predicate.CheckinEvent) *CheckinEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *CheckinEventUpdate) SetDate(v string) *CheckinEventUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *CheckinEventUpdate) SetNillableDate(v *string) *CheckinEventUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *CheckinEventUpdate) SetStreakDays(v int) *CheckinEventUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *CheckinEventUpdate) SetNillableStreakDays(v *int) *CheckinEventUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *CheckinEventUpdate) AddStreakDays(v int) *CheckinEventUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetVitality sets the "vitality" field.
func (_u *CheckinEventUpdate) SetVitality(v int) *CheckinEventUpdate {
	_u.mutation.ResetVitality()
	_u.mutation.SetVitality(v)
	return _u
}

// SetNillableVitality sets the "vitality" field if the given value is not nil.
func (_u *CheckinEventUpdate) SetNillableVitality(v *int) *CheckinEventUpdate {
	if v != nil {
		_u.SetVitality(*v)
	}
	return _u
}

// AddVitality adds value to the "vitality" field.
func (_u *CheckinEventUpdate) AddVitality(v int) *CheckinEventUpdate {
	_u.mutation.AddVitality(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *CheckinEventUpdate) SetStage(v int) *CheckinEventUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CheckinEventUpdate) SetNillableStage(v *int) *CheckinEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *CheckinEventUpdate) AddStage(v int) *CheckinEventUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetExtended sets the "extended" field.
func (_u *CheckinEventUpdate) SetExtended(v bool) *CheckinEventUpdate {
	_u.mutation.SetExtended(v)
	return _u
}

// SetNillableExtended sets the "extended" field if the given value is not nil.
func (_u *CheckinEventUpdate) SetNillableExtended(v *bool) *CheckinEventUpdate {
	if v != nil {
		_u.SetExtended(*v)
	}
	return _u
}

// SetEvolved sets the "evolved" field.
func (_u *CheckinEventUpdate) SetEvolved(v bool) *CheckinEventUpdate {
	_u.mutation.SetEvolved(v)
	return _u
}

// SetNillableEvolved sets the "evolved" field if the given value is not nil.
func (_u *CheckinEventUpdate) SetNillableEvolved(v *bool) *CheckinEventUpdate {
	if v != nil {
		_u.SetEvolved(*v)
	}
	return _u
}

// Mutation returns the CheckinEventMutation object of the builder.
func (_u *CheckinEventUpdate) Mutation() *CheckinEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckinEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckinEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckinEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckinEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckinEventUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := checkinevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "CheckinEvent.date": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckinEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkinevent.Table, checkinevent.Columns, sqlgraph.NewFieldSpec(checkinevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(checkinevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(checkinevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(checkinevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Vitality(); ok {
		_spec.SetField(checkinevent.FieldVitality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVitality(); ok {
		_spec.AddField(checkinevent.FieldVitality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(checkinevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(checkinevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Extended(); ok {
		_spec.SetField(checkinevent.FieldExtended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Evolved(); ok {
		_spec.SetField(checkinevent.FieldEvolved, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkinevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckinEventUpdateOne is the builder for updating a single CheckinEvent entity.
type CheckinEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckinEventMutation
}

// SetDate sets the "date" field.
func (_u *CheckinEventUpdateOne) SetDate(v string) *CheckinEventUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *CheckinEventUpdateOne) SetNillableDate(v *string) *CheckinEventUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *CheckinEventUpdateOne) SetStreakDays(v int) *CheckinEventUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *CheckinEventUpdateOne) SetNillableStreakDays(v *int) *CheckinEventUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *CheckinEventUpdateOne) AddStreakDays(v int) *CheckinEventUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetVitality sets the "vitality" field.
func (_u *CheckinEventUpdateOne) SetVitality(v int) *CheckinEventUpdateOne {
	_u.mutation.ResetVitality()
	_u.mutation.SetVitality(v)
	return _u
}

// SetNillableVitality sets the "vitality" field if the given value is not nil.
func (_u *CheckinEventUpdateOne) SetNillableVitality(v *int) *CheckinEventUpdateOne {
	if v != nil {
		_u.SetVitality(*v)
	}
	return _u
}

// AddVitality adds value to the "vitality" field.
func (_u *CheckinEventUpdateOne) AddVitality(v int) *CheckinEventUpdateOne {
	_u.mutation.AddVitality(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *CheckinEventUpdateOne) SetStage(v int) *CheckinEventUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CheckinEventUpdateOne) SetNillableStage(v *int) *CheckinEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *CheckinEventUpdateOne) AddStage(v int) *CheckinEventUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetExtended sets the "extended" field.
func (_u *CheckinEventUpdateOne) SetExtended(v bool) *CheckinEventUpdateOne {
	_u.mutation.SetExtended(v)
	return _u
}

// SetNillableExtended sets the "extended" field if the given value is not nil.
func (_u *CheckinEventUpdateOne) SetNillableExtended(v *bool) *CheckinEventUpdateOne {
	if v != nil {
		_u.SetExtended(*v)
	}
	return _u
}

// SetEvolved sets the "evolved" field.
func (_u *CheckinEventUpdateOne) SetEvolved(v bool) *CheckinEventUpdateOne {
	_u.mutation.SetEvolved(v)
	return _u
}

// SetNillableEvolved sets the "evolved" field if the given value is not nil.
func (_u *CheckinEventUpdateOne) SetNillableEvolved(v *bool) *CheckinEventUpdateOne {
	if v != nil {
		_u.SetEvolved(*v)
	}
	return _u
}

// Mutation returns the CheckinEventMutation object of the builder.
func (_u *CheckinEventUpdateOne) Mutation() *CheckinEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckinEventUpdate builder.
func (_u *CheckinEventUpdateOne) Where(ps ...predicate.CheckinEvent) *CheckinEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckinEventUpdateOne) Select(field string, fields ...string) *CheckinEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckinEvent entity.
func (_u *CheckinEventUpdateOne) Save(ctx context.Context) (*CheckinEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckinEventUpdateOne) SaveX(ctx context.Context) *CheckinEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckinEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckinEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckinEventUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := checkinevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "CheckinEvent.date": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckinEventUpdateOne) sqlSave(ctx context.Context) (_node *CheckinEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkinevent.Table, checkinevent.Columns, sqlgraph.NewFieldSpec(checkinevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckinEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkinevent.FieldID)
		for _, f := range fields {
			if !checkinevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkinevent.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(checkinevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(checkinevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(checkinevent.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Vitality(); ok {
		_spec.SetField(checkinevent.FieldVitality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVitality(); ok {
		_spec.AddField(checkinevent.FieldVitality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(checkinevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(checkinevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Extended(); ok {
		_spec.SetField(checkinevent.FieldExtended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Evolved(); ok {
		_spec.SetField(checkinevent.FieldEvolved, field.TypeBool, value)
	}
	_node = &CheckinEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkinevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
