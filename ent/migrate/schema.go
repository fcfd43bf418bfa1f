// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_kind", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "passed", Type: field.TypeBool},
		{Name: "attempt_no", Type: field.TypeInt},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_passed",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[8]},
			},
		},
	}
	// CheckinEventsColumns holds the columns for the "checkin_events" table.
	CheckinEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "date", Type: field.TypeString},
		{Name: "streak_days", Type: field.TypeInt},
		{Name: "vitality", Type: field.TypeInt},
		{Name: "stage", Type: field.TypeInt},
		{Name: "extended", Type: field.TypeBool},
		{Name: "evolved", Type: field.TypeBool},
	}
	// CheckinEventsTable holds the schema information for the "checkin_events" table.
	CheckinEventsTable = &schema.Table{
		Name:       "checkin_events",
		Columns:    CheckinEventsColumns,
		PrimaryKey: []*schema.Column{CheckinEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkinevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckinEventsColumns[1]},
			},
			{
				Name:    "checkinevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckinEventsColumns[2]},
			},
			{
				Name:    "checkinevent_date",
				Unique:  false,
				Columns: []*schema.Column{CheckinEventsColumns[3]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "attempt_no", Type: field.TypeInt},
		{Name: "hint_text", Type: field.TypeString, Size: 2147483647},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
			{
				Name:    "hintevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "items_served", Type: field.TypeInt, Default: 0},
		{Name: "items_passed", Type: field.TypeInt, Default: 0},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		CheckinEventsTable,
		HintEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
