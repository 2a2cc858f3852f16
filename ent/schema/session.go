package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is the mutable per-learner assessment state. Unlike the event
// tables it is updated in place: one row per session, rewritten after
// every committed turn.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Session UUID, assigned by the caller or generated"),
		field.String("user_tag").
			Default("").
			Comment("Free-form label identifying the learner"),
		field.Float("theta_mean").
			Comment("Posterior ability mean"),
		field.Float("theta_var").
			Comment("Posterior ability variance"),
		field.JSON("asked", []string{}).
			Optional().
			Comment("Item IDs already administered, in order"),
		field.JSON("coverage", map[string]int{}).
			Optional().
			Comment("Answered-item count per coverage tag"),
		field.Int("turn_count").
			Default(0).
			Comment("Committed turns so far"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_tag"),
		index.Fields("updated_at"),
	}
}
