package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckinEvent records one daily check-in and its effect on the streak
// and the companion.
type CheckinEvent struct {
	ent.Schema
}

func (CheckinEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckinEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			NotEmpty().
			Comment("Calendar date of the check-in, YYYY-MM-DD"),
		field.Int("streak_days").
			Comment("Streak length after the check-in"),
		field.Int("vitality").
			Comment("Companion vitality after the check-in"),
		field.Int("stage").
			Comment("Companion stage after the check-in"),
		field.Bool("extended").
			Comment("Whether the streak grew"),
		field.Bool("evolved").
			Comment("Whether the companion advanced a stage"),
	}
}

func (CheckinEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
