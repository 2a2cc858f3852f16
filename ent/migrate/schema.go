// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_tag", Type: field.TypeString, Default: ""},
		{Name: "theta_mean", Type: field.TypeFloat64},
		{Name: "theta_var", Type: field.TypeFloat64},
		{Name: "asked", Type: field.TypeJSON, Nullable: true},
		{Name: "coverage", Type: field.TypeJSON, Nullable: true},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_tag",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8]},
			},
		},
	}
	// TurnEventsColumns holds the columns for the "turn_events" table.
	TurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "turn_index", Type: field.TypeInt},
		{Name: "item_id", Type: field.TypeString},
		{Name: "answer_text", Type: field.TypeString, Default: ""},
		{Name: "followup_text", Type: field.TypeString, Default: ""},
		{Name: "final_label", Type: field.TypeString},
		{Name: "final_p", Type: field.TypeFloat64},
		{Name: "probe_intent", Type: field.TypeString, Default: "None"},
		{Name: "probe_source", Type: field.TypeString, Default: "policy"},
		{Name: "theta_before", Type: field.TypeFloat64},
		{Name: "theta_after", Type: field.TypeFloat64},
		{Name: "se_after", Type: field.TypeFloat64},
		{Name: "next_item_id", Type: field.TypeString, Default: ""},
		{Name: "trace", Type: field.TypeJSON, Nullable: true},
		{Name: "measurement", Type: field.TypeBytes, Nullable: true},
	}
	// TurnEventsTable holds the schema information for the "turn_events" table.
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    TurnEventsColumns,
		PrimaryKey: []*schema.Column{TurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[1]},
			},
			{
				Name:    "turnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[2]},
			},
			{
				Name:    "turnevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3]},
			},
			{
				Name:    "turnevent_session_id_turn_index",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3], TurnEventsColumns[4]},
			},
			{
				Name:    "turnevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SessionsTable,
		TurnEventsTable,
	}
)

func init() {
}
