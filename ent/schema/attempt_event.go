package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single judged submission within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("lesson_id").
			Comment("Lesson the item belongs to, empty for daily challenges"),
		field.String("item_id").
			NotEmpty().
			Comment("Practice item attempted"),
		field.String("item_kind").
			NotEmpty().
			Comment("coding_exercise, single_choice, multi_choice, output_drill, or bug_fix_drill"),
		field.Text("answer").
			Comment("The learner's submission, code or rendered choice"),
		field.Bool("passed").
			Comment("Whether the submission was judged correct"),
		field.Int("attempt_no").
			Comment("1-based attempt number for this item in this session"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from item shown to submission"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
		index.Fields("passed"),
	}
}
