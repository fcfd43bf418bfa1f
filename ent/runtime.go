// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/codecompanion/ent/attemptevent"
	"github.com/abhisek/codecompanion/ent/checkinevent"
	"github.com/abhisek/codecompanion/ent/hintevent"
	"github.com/abhisek/codecompanion/ent/schema"
	"github.com/abhisek/codecompanion/ent/sessionevent"
	"github.com/abhisek/codecompanion/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[2].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescItemKind is the schema descriptor for item_kind field.
	attempteventDescItemKind := attempteventFields[3].Descriptor()
	// attemptevent.ItemKindValidator is a validator for the "item_kind" field. It is called by the builders before save.
	attemptevent.ItemKindValidator = attempteventDescItemKind.Validators[0].(func(string) error)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int)
	checkineventMixin := schema.CheckinEvent{}.Mixin()
	checkineventMixinFields0 := checkineventMixin[0].Fields()
	_ = checkineventMixinFields0
	checkineventFields := schema.CheckinEvent{}.Fields()
	_ = checkineventFields
	// checkineventDescTimestamp is the schema descriptor for timestamp field.
	checkineventDescTimestamp := checkineventMixinFields0[1].Descriptor()
	// checkinevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkinevent.DefaultTimestamp = checkineventDescTimestamp.Default.(func() time.Time)
	// checkineventDescDate is the schema descriptor for date field.
	checkineventDescDate := checkineventFields[0].Descriptor()
	// checkinevent.DateValidator is a validator for the "date" field. It is called by the builders before save.
	checkinevent.DateValidator = checkineventDescDate.Validators[0].(func(string) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescItemID is the schema descriptor for item_id field.
	hinteventDescItemID := hinteventFields[1].Descriptor()
	// hintevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	hintevent.ItemIDValidator = hinteventDescItemID.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[3].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescItemsServed is the schema descriptor for items_served field.
	sessioneventDescItemsServed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultItemsServed holds the default value on creation for the items_served field.
	sessionevent.DefaultItemsServed = sessioneventDescItemsServed.Default.(int)
	// sessioneventDescItemsPassed is the schema descriptor for items_passed field.
	sessioneventDescItemsPassed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultItemsPassed holds the default value on creation for the items_passed field.
	sessionevent.DefaultItemsPassed = sessioneventDescItemsPassed.Default.(int)
	// sessioneventDescXpEarned is the schema descriptor for xp_earned field.
	sessioneventDescXpEarned := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	sessionevent.DefaultXpEarned = sessioneventDescXpEarned.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
