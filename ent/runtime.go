// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/caliper/ent/llmrequestevent"
	"github.com/abhisek/caliper/ent/schema"
	"github.com/abhisek/caliper/ent/session"
	"github.com/abhisek/caliper/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUserTag is the schema descriptor for user_tag field.
	sessionDescUserTag := sessionFields[1].Descriptor()
	// session.DefaultUserTag holds the default value on creation for the user_tag field.
	session.DefaultUserTag = sessionDescUserTag.Default.(string)
	// sessionDescTurnCount is the schema descriptor for turn_count field.
	sessionDescTurnCount := sessionFields[6].Descriptor()
	// session.DefaultTurnCount holds the default value on creation for the turn_count field.
	session.DefaultTurnCount = sessionDescTurnCount.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[7].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[8].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescItemID is the schema descriptor for item_id field.
	turneventDescItemID := turneventFields[2].Descriptor()
	// turnevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	turnevent.ItemIDValidator = turneventDescItemID.Validators[0].(func(string) error)
	// turneventDescAnswerText is the schema descriptor for answer_text field.
	turneventDescAnswerText := turneventFields[3].Descriptor()
	// turnevent.DefaultAnswerText holds the default value on creation for the answer_text field.
	turnevent.DefaultAnswerText = turneventDescAnswerText.Default.(string)
	// turneventDescFollowupText is the schema descriptor for followup_text field.
	turneventDescFollowupText := turneventFields[4].Descriptor()
	// turnevent.DefaultFollowupText holds the default value on creation for the followup_text field.
	turnevent.DefaultFollowupText = turneventDescFollowupText.Default.(string)
	// turneventDescProbeIntent is the schema descriptor for probe_intent field.
	turneventDescProbeIntent := turneventFields[7].Descriptor()
	// turnevent.DefaultProbeIntent holds the default value on creation for the probe_intent field.
	turnevent.DefaultProbeIntent = turneventDescProbeIntent.Default.(string)
	// turneventDescProbeSource is the schema descriptor for probe_source field.
	turneventDescProbeSource := turneventFields[8].Descriptor()
	// turnevent.DefaultProbeSource holds the default value on creation for the probe_source field.
	turnevent.DefaultProbeSource = turneventDescProbeSource.Default.(string)
	// turneventDescNextItemID is the schema descriptor for next_item_id field.
	turneventDescNextItemID := turneventFields[12].Descriptor()
	// turnevent.DefaultNextItemID holds the default value on creation for the next_item_id field.
	turnevent.DefaultNextItemID = turneventDescNextItemID.Default.(string)
}
