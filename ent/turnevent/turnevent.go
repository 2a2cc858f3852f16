// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTurnIndex holds the string denoting the turn_index field in the database.
	FieldTurnIndex = "turn_index"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldAnswerText holds the string denoting the answer_text field in the database.
	FieldAnswerText = "answer_text"
	// FieldFollowupText holds the string denoting the followup_text field in the database.
	FieldFollowupText = "followup_text"
	// FieldFinalLabel holds the string denoting the final_label field in the database.
	FieldFinalLabel = "final_label"
	// FieldFinalP holds the string denoting the final_p field in the database.
	FieldFinalP = "final_p"
	// FieldProbeIntent holds the string denoting the probe_intent field in the database.
	FieldProbeIntent = "probe_intent"
	// FieldProbeSource holds the string denoting the probe_source field in the database.
	FieldProbeSource = "probe_source"
	// FieldThetaBefore holds the string denoting the theta_before field in the database.
	FieldThetaBefore = "theta_before"
	// FieldThetaAfter holds the string denoting the theta_after field in the database.
	FieldThetaAfter = "theta_after"
	// FieldSeAfter holds the string denoting the se_after field in the database.
	FieldSeAfter = "se_after"
	// FieldNextItemID holds the string denoting the next_item_id field in the database.
	FieldNextItemID = "next_item_id"
	// FieldTrace holds the string denoting the trace field in the database.
	FieldTrace = "trace"
	// FieldMeasurement holds the string denoting the measurement field in the database.
	FieldMeasurement = "measurement"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTurnIndex,
	FieldItemID,
	FieldAnswerText,
	FieldFollowupText,
	FieldFinalLabel,
	FieldFinalP,
	FieldProbeIntent,
	FieldProbeSource,
	FieldThetaBefore,
	FieldThetaAfter,
	FieldSeAfter,
	FieldNextItemID,
	FieldTrace,
	FieldMeasurement,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// DefaultAnswerText holds the default value on creation for the "answer_text" field.
	DefaultAnswerText string
	// DefaultFollowupText holds the default value on creation for the "followup_text" field.
	DefaultFollowupText string
	// DefaultProbeIntent holds the default value on creation for the "probe_intent" field.
	DefaultProbeIntent string
	// DefaultProbeSource holds the default value on creation for the "probe_source" field.
	DefaultProbeSource string
	// DefaultNextItemID holds the default value on creation for the "next_item_id" field.
	DefaultNextItemID string
)

// OrderOption defines the ordering options for the TurnEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTurnIndex orders the results by the turn_index field.
func ByTurnIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnIndex, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByAnswerText orders the results by the answer_text field.
func ByAnswerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerText, opts...).ToFunc()
}

// ByFollowupText orders the results by the followup_text field.
func ByFollowupText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowupText, opts...).ToFunc()
}

// ByFinalLabel orders the results by the final_label field.
func ByFinalLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalLabel, opts...).ToFunc()
}

// ByFinalP orders the results by the final_p field.
func ByFinalP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalP, opts...).ToFunc()
}

// ByProbeIntent orders the results by the probe_intent field.
func ByProbeIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbeIntent, opts...).ToFunc()
}

// ByProbeSource orders the results by the probe_source field.
func ByProbeSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbeSource, opts...).ToFunc()
}

// ByThetaBefore orders the results by the theta_before field.
func ByThetaBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaBefore, opts...).ToFunc()
}

// ByThetaAfter orders the results by the theta_after field.
func ByThetaAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaAfter, opts...).ToFunc()
}

// BySeAfter orders the results by the se_after field.
func BySeAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeAfter, opts...).ToFunc()
}

// ByNextItemID orders the results by the next_item_id field.
func ByNextItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextItemID, opts...).ToFunc()
}
