package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot stores the whole learner aggregate as JSON. Startup loads the
// newest snapshot instead of replaying the event log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Global event sequence at the time of the snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was written"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized learner aggregate"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
