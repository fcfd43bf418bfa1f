// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codecompanion/ent/checkinevent"
)

// CheckinEventCreate is the builder for creating a CheckinEvent entity.
type CheckinEventCreate struct {
	config
	mutation *CheckinEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CheckinEventCreate) SetSequence(v int64) *CheckinEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CheckinEventCreate) SetTimestamp(v time.Time) *CheckinEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CheckinEventCreate) SetNillableTimestamp(v *time.Time) *CheckinEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *CheckinEventCreate) SetDate(v string) *CheckinEventCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *CheckinEventCreate) SetStreakDays(v int) *CheckinEventCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetVitality sets the "vitality" field.
func (_c *CheckinEventCreate) SetVitality(v int) *CheckinEventCreate {
	_c.mutation.SetVitality(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *CheckinEventCreate) SetStage(v int) *CheckinEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetExtended sets the "extended" field.
func (_c *CheckinEventCreate) SetExtended(v bool) *CheckinEventCreate {
	_c.mutation.SetExtended(v)
	return _c
}

// SetEvolved sets the "evolved" field.
func (_c *CheckinEventCreate) SetEvolved(v bool) *CheckinEventCreate {
	_c.mutation.SetEvolved(v)
	return _c
}

// Mutation returns the CheckinEventMutation object of the builder.
func (_c *CheckinEventCreate) Mutation() *CheckinEventMutation {
	return _c.mutation
}

// Save creates the CheckinEvent in the database.
func (_c *CheckinEventCreate) Save(ctx context.Context) (*CheckinEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckinEventCreate) SaveX(ctx context.Context) *CheckinEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckinEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckinEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckinEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checkinevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckinEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CheckinEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CheckinEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "CheckinEvent.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := checkinevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "CheckinEvent.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "CheckinEvent.streak_days"`)}
	}
	if _, ok := _c.mutation.Vitality(); !ok {
		return &ValidationError{Name: "vitality", err: errors.New(`ent: missing required field "CheckinEvent.vitality"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "CheckinEvent.stage"`)}
	}
	if _, ok := _c.mutation.Extended(); !ok {
		return &ValidationError{Name: "extended", err: errors.New(`ent: missing required field "CheckinEvent.extended"`)}
	}
	if _, ok := _c.mutation.Evolved(); !ok {
		return &ValidationError{Name: "evolved", err: errors.New(`ent: missing required field "CheckinEvent.evolved"`)}
	}
	return nil
}

func (_c *CheckinEventCreate) sqlSave(ctx context.Context) (*CheckinEvent, error) {
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

func (_c *CheckinEventCreate) createSpec() (*CheckinEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckinEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkinevent.Table, sqlgraph.NewFieldSpec(checkinevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(checkinevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checkinevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(checkinevent.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(checkinevent.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.Vitality(); ok {
		_spec.SetField(checkinevent.FieldVitality, field.TypeInt, value)
		_node.Vitality = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(checkinevent.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Extended(); ok {
		_spec.SetField(checkinevent.FieldExtended, field.TypeBool, value)
		_node.Extended = value
	}
	if value, ok := _c.mutation.Evolved(); ok {
		_spec.SetField(checkinevent.FieldEvolved, field.TypeBool, value)
		_node.Evolved = value
	}
	return _node, _spec
}

// CheckinEventCreateBulk is the builder for creating many CheckinEvent entities in bulk.
type CheckinEventCreateBulk struct {
	config
	err      error
	builders []*CheckinEventCreate
}

// Save creates the CheckinEvent entities in the database.
func (_c *CheckinEventCreateBulk) Save(ctx context.Context) ([]*CheckinEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckinEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckinEventMutation)
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
func (_c *CheckinEventCreateBulk) SaveX(ctx context.Context) []*CheckinEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckinEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckinEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
