// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codecompanion/ent/checkinevent"
)

// CheckinEvent is the model entity for the CheckinEvent schema.
type CheckinEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event sequence
	Sequence int64 `json:"sequence,omitempty"`
	// When the event happened
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Calendar date of the check-in, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// Streak length after the check-in
	StreakDays int `json:"streak_days,omitempty"`
	// Companion vitality after the check-in
	Vitality int `json:"vitality,omitempty"`
	// Companion stage after the check-in
	Stage int `json:"stage,omitempty"`
	// Whether the streak grew
	Extended bool `json:"extended,omitempty"`
	// Whether the companion advanced a stage
	Evolved      bool `json:"evolved,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckinEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkinevent.FieldExtended, checkinevent.FieldEvolved:
			values[i] = new(sql.NullBool)
		case checkinevent.FieldID, checkinevent.FieldSequence, checkinevent.FieldStreakDays, checkinevent.FieldVitality, checkinevent.FieldStage:
			values[i] = new(sql.NullInt64)
		case checkinevent.FieldDate:
			values[i] = new(sql.NullString)
		case checkinevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckinEvent fields.
func (_m *CheckinEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkinevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case checkinevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case checkinevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case checkinevent.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case checkinevent.FieldStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_days", values[i])
			} else if value.Valid {
				_m.StreakDays = int(value.Int64)
			}
		case checkinevent.FieldVitality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vitality", values[i])
			} else if value.Valid {
				_m.Vitality = int(value.Int64)
			}
		case checkinevent.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = int(value.Int64)
			}
		case checkinevent.FieldExtended:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field extended", values[i])
			} else if value.Valid {
				_m.Extended = value.Bool
			}
		case checkinevent.FieldEvolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field evolved", values[i])
			} else if value.Valid {
				_m.Evolved = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckinEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CheckinEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CheckinEvent.
// Note that you need to call CheckinEvent.Unwrap() before calling this method if this CheckinEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckinEvent) Update() *CheckinEventUpdateOne {
	return NewCheckinEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckinEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckinEvent) Unwrap() *CheckinEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckinEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckinEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CheckinEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakDays))
	builder.WriteString(", ")
	builder.WriteString("vitality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vitality))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("extended=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extended))
	builder.WriteString(", ")
	builder.WriteString("evolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evolved))
	builder.WriteByte(')')
	return builder.String()
}

// CheckinEvents is a parsable slice of CheckinEvent.
type CheckinEvents []*CheckinEvent
