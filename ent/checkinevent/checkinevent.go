// Code generated by ent, DO NOT EDIT.

package checkinevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkinevent type in the database.
	Label = "checkin_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldStreakDays holds the string denoting the streak_days field in the database.
	FieldStreakDays = "streak_days"
	// FieldVitality holds the string denoting the vitality field in the database.
	FieldVitality = "vitality"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldExtended holds the string denoting the extended field in the database.
	FieldExtended = "extended"
	// FieldEvolved holds the string denoting the evolved field in the database.
	FieldEvolved = "evolved"
	// Table holds the table name of the checkinevent in the database.
	Table = "checkin_events"
)

// Columns holds all SQL columns for checkinevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldDate,
	FieldStreakDays,
	FieldVitality,
	FieldStage,
	FieldExtended,
	FieldEvolved,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
)

// OrderOption defines the ordering options for the CheckinEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByStreakDays orders the results by the streak_days field.
func ByStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakDays, opts...).ToFunc()
}

// ByVitality orders the results by the vitality field.
func ByVitality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVitality, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByExtended orders the results by the extended field.
func ByExtended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtended, opts...).ToFunc()
}

// ByEvolved orders the results by the evolved field.
func ByEvolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvolved, opts...).ToFunc()
}
