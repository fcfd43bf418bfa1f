// Code generated by ent, DO NOT EDIT.

package hintevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codecompanion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSessionID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldItemID, v))
}

// AttemptNo applies equality check predicate on the "attempt_no" field. It's identical to AttemptNoEQ.
func AttemptNo(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldAttemptNo, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldItemID, v))
}

// AttemptNoEQ applies the EQ predicate on the "attempt_no" field.
func AttemptNoEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldAttemptNo, v))
}

// AttemptNoNEQ applies the NEQ predicate on the "attempt_no" field.
func AttemptNoNEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldAttemptNo, v))
}

// AttemptNoIn applies the In predicate on the "attempt_no" field.
func AttemptNoIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldAttemptNo, vs...))
}

// AttemptNoNotIn applies the NotIn predicate on the "attempt_no" field.
func AttemptNoNotIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldAttemptNo, vs...))
}

// AttemptNoGT applies the GT predicate on the "attempt_no" field.
func AttemptNoGT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldAttemptNo, v))
}

// AttemptNoGTE applies the GTE predicate on the "attempt_no" field.
func AttemptNoGTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldAttemptNo, v))
}

// AttemptNoLT applies the LT predicate on the "attempt_no" field.
func AttemptNoLT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldAttemptNo, v))
}

// AttemptNoLTE applies the LTE predicate on the "attempt_no" field.
func AttemptNoLTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldAttemptNo, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldHintText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.NotPredicates(p))
}
