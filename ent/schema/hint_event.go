package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintEvent records that a hint was shown to the learner.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.Int("attempt_no").
			Comment("Failed attempts at the time the hint was requested"),
		field.Text("hint_text").NotEmpty(),
	}
}

func (HintEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
	}
}
