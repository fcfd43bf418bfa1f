// Code generated by ent, DO NOT EDIT.

package checkinevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codecompanion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldDate, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldStreakDays, v))
}

// Vitality applies equality check predicate on the "vitality" field. It's identical to VitalityEQ.
func Vitality(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldVitality, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldStage, v))
}

// Extended applies equality check predicate on the "extended" field. It's identical to ExtendedEQ.
func Extended(v bool) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldExtended, v))
}

// Evolved applies equality check predicate on the "evolved" field. It's identical to EvolvedEQ.
func Evolved(v bool) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldEvolved, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldContainsFold(FieldDate, v))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLTE(FieldStreakDays, v))
}

// VitalityEQ applies the EQ predicate on the "vitality" field.
func VitalityEQ(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldVitality, v))
}

// VitalityNEQ applies the NEQ predicate on the "vitality" field.
func VitalityNEQ(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldVitality, v))
}

// VitalityIn applies the In predicate on the "vitality" field.
func VitalityIn(vs ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldIn(FieldVitality, vs...))
}

// VitalityNotIn applies the NotIn predicate on the "vitality" field.
func VitalityNotIn(vs ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNotIn(FieldVitality, vs...))
}

// VitalityGT applies the GT predicate on the "vitality" field.
func VitalityGT(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGT(FieldVitality, v))
}

// VitalityGTE applies the GTE predicate on the "vitality" field.
func VitalityGTE(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGTE(FieldVitality, v))
}

// VitalityLT applies the LT predicate on the "vitality" field.
func VitalityLT(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLT(FieldVitality, v))
}

// VitalityLTE applies the LTE predicate on the "vitality" field.
func VitalityLTE(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLTE(FieldVitality, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldLTE(FieldStage, v))
}

// ExtendedEQ applies the EQ predicate on the "extended" field.
func ExtendedEQ(v bool) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldExtended, v))
}

// ExtendedNEQ applies the NEQ predicate on the "extended" field.
func ExtendedNEQ(v bool) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldExtended, v))
}

// EvolvedEQ applies the EQ predicate on the "evolved" field.
func EvolvedEQ(v bool) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldEQ(FieldEvolved, v))
}

// EvolvedNEQ applies the NEQ predicate on the "evolved" field.
func EvolvedNEQ(v bool) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.FieldNEQ(FieldEvolved, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckinEvent) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckinEvent) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckinEvent) predicate.CheckinEvent {
	return predicate.CheckinEvent(sql.NotPredicates(p))
}
