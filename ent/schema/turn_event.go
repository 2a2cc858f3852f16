package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one committed assessment turn: the answer graded,
// the probe decision, and the ability update. The full trace and raw
// measurement ride along as JSON for replay and debugging.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session UUID this turn belongs to"),
		field.Int("turn_index").
			Comment("1-based position within the session"),
		field.String("item_id").
			NotEmpty().
			Comment("Catalog item that was answered"),
		field.String("answer_text").
			Default("").
			Comment("Learner's primary answer"),
		field.String("followup_text").
			Default("").
			Comment("Learner's probe answer, if a follow-up was graded"),
		field.String("final_label").
			Comment("Winning answer-quality label after merge"),
		field.Float("final_p").
			Comment("Probability of the winning label"),
		field.String("probe_intent").
			Default("None").
			Comment("Probe decision intent"),
		field.String("probe_source").
			Default("policy").
			Comment("Who authored the probe text: judge, policy, library"),
		field.Float("theta_before"),
		field.Float("theta_after"),
		field.Float("se_after").
			Comment("Posterior standard error after the update"),
		field.String("next_item_id").
			Default("").
			Comment("Item selected for the next turn; empty when exhausted"),
		field.JSON("trace", []string{}).
			Optional().
			Comment("Human-readable rule-by-rule decision notes"),
		field.Bytes("measurement").
			Optional().
			Comment("Raw merged measurement JSON"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "turn_index"),
		index.Fields("item_id"),
	}
}
