// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/caliper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// TurnIndex applies equality check predicate on the "turn_index" field. It's identical to TurnIndexEQ.
func TurnIndex(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTurnIndex, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldItemID, v))
}

// AnswerText applies equality check predicate on the "answer_text" field. It's identical to AnswerTextEQ.
func AnswerText(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldAnswerText, v))
}

// FollowupText applies equality check predicate on the "followup_text" field. It's identical to FollowupTextEQ.
func FollowupText(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFollowupText, v))
}

// FinalLabel applies equality check predicate on the "final_label" field. It's identical to FinalLabelEQ.
func FinalLabel(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFinalLabel, v))
}

// FinalP applies equality check predicate on the "final_p" field. It's identical to FinalPEQ.
func FinalP(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFinalP, v))
}

// ProbeIntent applies equality check predicate on the "probe_intent" field. It's identical to ProbeIntentEQ.
func ProbeIntent(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldProbeIntent, v))
}

// ProbeSource applies equality check predicate on the "probe_source" field. It's identical to ProbeSourceEQ.
func ProbeSource(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldProbeSource, v))
}

// ThetaBefore applies equality check predicate on the "theta_before" field. It's identical to ThetaBeforeEQ.
func ThetaBefore(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldThetaBefore, v))
}

// ThetaAfter applies equality check predicate on the "theta_after" field. It's identical to ThetaAfterEQ.
func ThetaAfter(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldThetaAfter, v))
}

// SeAfter applies equality check predicate on the "se_after" field. It's identical to SeAfterEQ.
func SeAfter(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSeAfter, v))
}

// NextItemID applies equality check predicate on the "next_item_id" field. It's identical to NextItemIDEQ.
func NextItemID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldNextItemID, v))
}

// Measurement applies equality check predicate on the "measurement" field. It's identical to MeasurementEQ.
func Measurement(v []byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldMeasurement, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TurnIndexEQ applies the EQ predicate on the "turn_index" field.
func TurnIndexEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTurnIndex, v))
}

// TurnIndexNEQ applies the NEQ predicate on the "turn_index" field.
func TurnIndexNEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTurnIndex, v))
}

// TurnIndexIn applies the In predicate on the "turn_index" field.
func TurnIndexIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTurnIndex, vs...))
}

// TurnIndexNotIn applies the NotIn predicate on the "turn_index" field.
func TurnIndexNotIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTurnIndex, vs...))
}

// TurnIndexGT applies the GT predicate on the "turn_index" field.
func TurnIndexGT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTurnIndex, v))
}

// TurnIndexGTE applies the GTE predicate on the "turn_index" field.
func TurnIndexGTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTurnIndex, v))
}

// TurnIndexLT applies the LT predicate on the "turn_index" field.
func TurnIndexLT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTurnIndex, v))
}

// TurnIndexLTE applies the LTE predicate on the "turn_index" field.
func TurnIndexLTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTurnIndex, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldItemID, v))
}

// AnswerTextEQ applies the EQ predicate on the "answer_text" field.
func AnswerTextEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldAnswerText, v))
}

// AnswerTextNEQ applies the NEQ predicate on the "answer_text" field.
func AnswerTextNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldAnswerText, v))
}

// AnswerTextIn applies the In predicate on the "answer_text" field.
func AnswerTextIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldAnswerText, vs...))
}

// AnswerTextNotIn applies the NotIn predicate on the "answer_text" field.
func AnswerTextNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldAnswerText, vs...))
}

// AnswerTextGT applies the GT predicate on the "answer_text" field.
func AnswerTextGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldAnswerText, v))
}

// AnswerTextGTE applies the GTE predicate on the "answer_text" field.
func AnswerTextGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldAnswerText, v))
}

// AnswerTextLT applies the LT predicate on the "answer_text" field.
func AnswerTextLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldAnswerText, v))
}

// AnswerTextLTE applies the LTE predicate on the "answer_text" field.
func AnswerTextLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldAnswerText, v))
}

// AnswerTextContains applies the Contains predicate on the "answer_text" field.
func AnswerTextContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldAnswerText, v))
}

// AnswerTextHasPrefix applies the HasPrefix predicate on the "answer_text" field.
func AnswerTextHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldAnswerText, v))
}

// AnswerTextHasSuffix applies the HasSuffix predicate on the "answer_text" field.
func AnswerTextHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldAnswerText, v))
}

// AnswerTextEqualFold applies the EqualFold predicate on the "answer_text" field.
func AnswerTextEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldAnswerText, v))
}

// AnswerTextContainsFold applies the ContainsFold predicate on the "answer_text" field.
func AnswerTextContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldAnswerText, v))
}

// FollowupTextEQ applies the EQ predicate on the "followup_text" field.
func FollowupTextEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFollowupText, v))
}

// FollowupTextNEQ applies the NEQ predicate on the "followup_text" field.
func FollowupTextNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldFollowupText, v))
}

// FollowupTextIn applies the In predicate on the "followup_text" field.
func FollowupTextIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldFollowupText, vs...))
}

// FollowupTextNotIn applies the NotIn predicate on the "followup_text" field.
func FollowupTextNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldFollowupText, vs...))
}

// FollowupTextGT applies the GT predicate on the "followup_text" field.
func FollowupTextGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldFollowupText, v))
}

// FollowupTextGTE applies the GTE predicate on the "followup_text" field.
func FollowupTextGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldFollowupText, v))
}

// FollowupTextLT applies the LT predicate on the "followup_text" field.
func FollowupTextLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldFollowupText, v))
}

// FollowupTextLTE applies the LTE predicate on the "followup_text" field.
func FollowupTextLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldFollowupText, v))
}

// FollowupTextContains applies the Contains predicate on the "followup_text" field.
func FollowupTextContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldFollowupText, v))
}

// FollowupTextHasPrefix applies the HasPrefix predicate on the "followup_text" field.
func FollowupTextHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldFollowupText, v))
}

// FollowupTextHasSuffix applies the HasSuffix predicate on the "followup_text" field.
func FollowupTextHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldFollowupText, v))
}

// FollowupTextEqualFold applies the EqualFold predicate on the "followup_text" field.
func FollowupTextEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldFollowupText, v))
}

// FollowupTextContainsFold applies the ContainsFold predicate on the "followup_text" field.
func FollowupTextContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldFollowupText, v))
}

// FinalLabelEQ applies the EQ predicate on the "final_label" field.
func FinalLabelEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFinalLabel, v))
}

// FinalLabelNEQ applies the NEQ predicate on the "final_label" field.
func FinalLabelNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldFinalLabel, v))
}

// FinalLabelIn applies the In predicate on the "final_label" field.
func FinalLabelIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldFinalLabel, vs...))
}

// FinalLabelNotIn applies the NotIn predicate on the "final_label" field.
func FinalLabelNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldFinalLabel, vs...))
}

// FinalLabelGT applies the GT predicate on the "final_label" field.
func FinalLabelGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldFinalLabel, v))
}

// FinalLabelGTE applies the GTE predicate on the "final_label" field.
func FinalLabelGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldFinalLabel, v))
}

// FinalLabelLT applies the LT predicate on the "final_label" field.
func FinalLabelLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldFinalLabel, v))
}

// FinalLabelLTE applies the LTE predicate on the "final_label" field.
func FinalLabelLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldFinalLabel, v))
}

// FinalLabelContains applies the Contains predicate on the "final_label" field.
func FinalLabelContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldFinalLabel, v))
}

// FinalLabelHasPrefix applies the HasPrefix predicate on the "final_label" field.
func FinalLabelHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldFinalLabel, v))
}

// FinalLabelHasSuffix applies the HasSuffix predicate on the "final_label" field.
func FinalLabelHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldFinalLabel, v))
}

// FinalLabelEqualFold applies the EqualFold predicate on the "final_label" field.
func FinalLabelEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldFinalLabel, v))
}

// FinalLabelContainsFold applies the ContainsFold predicate on the "final_label" field.
func FinalLabelContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldFinalLabel, v))
}

// FinalPEQ applies the EQ predicate on the "final_p" field.
func FinalPEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFinalP, v))
}

// FinalPNEQ applies the NEQ predicate on the "final_p" field.
func FinalPNEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldFinalP, v))
}

// FinalPIn applies the In predicate on the "final_p" field.
func FinalPIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldFinalP, vs...))
}

// FinalPNotIn applies the NotIn predicate on the "final_p" field.
func FinalPNotIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldFinalP, vs...))
}

// FinalPGT applies the GT predicate on the "final_p" field.
func FinalPGT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldFinalP, v))
}

// FinalPGTE applies the GTE predicate on the "final_p" field.
func FinalPGTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldFinalP, v))
}

// FinalPLT applies the LT predicate on the "final_p" field.
func FinalPLT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldFinalP, v))
}

// FinalPLTE applies the LTE predicate on the "final_p" field.
func FinalPLTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldFinalP, v))
}

// ProbeIntentEQ applies the EQ predicate on the "probe_intent" field.
func ProbeIntentEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldProbeIntent, v))
}

// ProbeIntentNEQ applies the NEQ predicate on the "probe_intent" field.
func ProbeIntentNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldProbeIntent, v))
}

// ProbeIntentIn applies the In predicate on the "probe_intent" field.
func ProbeIntentIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldProbeIntent, vs...))
}

// ProbeIntentNotIn applies the NotIn predicate on the "probe_intent" field.
func ProbeIntentNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldProbeIntent, vs...))
}

// ProbeIntentGT applies the GT predicate on the "probe_intent" field.
func ProbeIntentGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldProbeIntent, v))
}

// ProbeIntentGTE applies the GTE predicate on the "probe_intent" field.
func ProbeIntentGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldProbeIntent, v))
}

// ProbeIntentLT applies the LT predicate on the "probe_intent" field.
func ProbeIntentLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldProbeIntent, v))
}

// ProbeIntentLTE applies the LTE predicate on the "probe_intent" field.
func ProbeIntentLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldProbeIntent, v))
}

// ProbeIntentContains applies the Contains predicate on the "probe_intent" field.
func ProbeIntentContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldProbeIntent, v))
}

// ProbeIntentHasPrefix applies the HasPrefix predicate on the "probe_intent" field.
func ProbeIntentHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldProbeIntent, v))
}

// ProbeIntentHasSuffix applies the HasSuffix predicate on the "probe_intent" field.
func ProbeIntentHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldProbeIntent, v))
}

// ProbeIntentEqualFold applies the EqualFold predicate on the "probe_intent" field.
func ProbeIntentEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldProbeIntent, v))
}

// ProbeIntentContainsFold applies the ContainsFold predicate on the "probe_intent" field.
func ProbeIntentContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldProbeIntent, v))
}

// ProbeSourceEQ applies the EQ predicate on the "probe_source" field.
func ProbeSourceEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldProbeSource, v))
}

// ProbeSourceNEQ applies the NEQ predicate on the "probe_source" field.
func ProbeSourceNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldProbeSource, v))
}

// ProbeSourceIn applies the In predicate on the "probe_source" field.
func ProbeSourceIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldProbeSource, vs...))
}

// ProbeSourceNotIn applies the NotIn predicate on the "probe_source" field.
func ProbeSourceNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldProbeSource, vs...))
}

// ProbeSourceGT applies the GT predicate on the "probe_source" field.
func ProbeSourceGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldProbeSource, v))
}

// ProbeSourceGTE applies the GTE predicate on the "probe_source" field.
func ProbeSourceGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldProbeSource, v))
}

// ProbeSourceLT applies the LT predicate on the "probe_source" field.
func ProbeSourceLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldProbeSource, v))
}

// ProbeSourceLTE applies the LTE predicate on the "probe_source" field.
func ProbeSourceLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldProbeSource, v))
}

// ProbeSourceContains applies the Contains predicate on the "probe_source" field.
func ProbeSourceContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldProbeSource, v))
}

// ProbeSourceHasPrefix applies the HasPrefix predicate on the "probe_source" field.
func ProbeSourceHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldProbeSource, v))
}

// ProbeSourceHasSuffix applies the HasSuffix predicate on the "probe_source" field.
func ProbeSourceHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldProbeSource, v))
}

// ProbeSourceEqualFold applies the EqualFold predicate on the "probe_source" field.
func ProbeSourceEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldProbeSource, v))
}

// ProbeSourceContainsFold applies the ContainsFold predicate on the "probe_source" field.
func ProbeSourceContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldProbeSource, v))
}

// ThetaBeforeEQ applies the EQ predicate on the "theta_before" field.
func ThetaBeforeEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldThetaBefore, v))
}

// ThetaBeforeNEQ applies the NEQ predicate on the "theta_before" field.
func ThetaBeforeNEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldThetaBefore, v))
}

// ThetaBeforeIn applies the In predicate on the "theta_before" field.
func ThetaBeforeIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldThetaBefore, vs...))
}

// ThetaBeforeNotIn applies the NotIn predicate on the "theta_before" field.
func ThetaBeforeNotIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldThetaBefore, vs...))
}

// ThetaBeforeGT applies the GT predicate on the "theta_before" field.
func ThetaBeforeGT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldThetaBefore, v))
}

// ThetaBeforeGTE applies the GTE predicate on the "theta_before" field.
func ThetaBeforeGTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldThetaBefore, v))
}

// ThetaBeforeLT applies the LT predicate on the "theta_before" field.
func ThetaBeforeLT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldThetaBefore, v))
}

// ThetaBeforeLTE applies the LTE predicate on the "theta_before" field.
func ThetaBeforeLTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldThetaBefore, v))
}

// ThetaAfterEQ applies the EQ predicate on the "theta_after" field.
func ThetaAfterEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldThetaAfter, v))
}

// ThetaAfterNEQ applies the NEQ predicate on the "theta_after" field.
func ThetaAfterNEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldThetaAfter, v))
}

// ThetaAfterIn applies the In predicate on the "theta_after" field.
func ThetaAfterIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldThetaAfter, vs...))
}

// ThetaAfterNotIn applies the NotIn predicate on the "theta_after" field.
func ThetaAfterNotIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldThetaAfter, vs...))
}

// ThetaAfterGT applies the GT predicate on the "theta_after" field.
func ThetaAfterGT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldThetaAfter, v))
}

// ThetaAfterGTE applies the GTE predicate on the "theta_after" field.
func ThetaAfterGTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldThetaAfter, v))
}

// ThetaAfterLT applies the LT predicate on the "theta_after" field.
func ThetaAfterLT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldThetaAfter, v))
}

// ThetaAfterLTE applies the LTE predicate on the "theta_after" field.
func ThetaAfterLTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldThetaAfter, v))
}

// SeAfterEQ applies the EQ predicate on the "se_after" field.
func SeAfterEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSeAfter, v))
}

// SeAfterNEQ applies the NEQ predicate on the "se_after" field.
func SeAfterNEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSeAfter, v))
}

// SeAfterIn applies the In predicate on the "se_after" field.
func SeAfterIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSeAfter, vs...))
}

// SeAfterNotIn applies the NotIn predicate on the "se_after" field.
func SeAfterNotIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSeAfter, vs...))
}

// SeAfterGT applies the GT predicate on the "se_after" field.
func SeAfterGT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSeAfter, v))
}

// SeAfterGTE applies the GTE predicate on the "se_after" field.
func SeAfterGTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSeAfter, v))
}

// SeAfterLT applies the LT predicate on the "se_after" field.
func SeAfterLT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSeAfter, v))
}

// SeAfterLTE applies the LTE predicate on the "se_after" field.
func SeAfterLTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSeAfter, v))
}

// NextItemIDEQ applies the EQ predicate on the "next_item_id" field.
func NextItemIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldNextItemID, v))
}

// NextItemIDNEQ applies the NEQ predicate on the "next_item_id" field.
func NextItemIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldNextItemID, v))
}

// NextItemIDIn applies the In predicate on the "next_item_id" field.
func NextItemIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldNextItemID, vs...))
}

// NextItemIDNotIn applies the NotIn predicate on the "next_item_id" field.
func NextItemIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldNextItemID, vs...))
}

// NextItemIDGT applies the GT predicate on the "next_item_id" field.
func NextItemIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldNextItemID, v))
}

// NextItemIDGTE applies the GTE predicate on the "next_item_id" field.
func NextItemIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldNextItemID, v))
}

// NextItemIDLT applies the LT predicate on the "next_item_id" field.
func NextItemIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldNextItemID, v))
}

// NextItemIDLTE applies the LTE predicate on the "next_item_id" field.
func NextItemIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldNextItemID, v))
}

// NextItemIDContains applies the Contains predicate on the "next_item_id" field.
func NextItemIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldNextItemID, v))
}

// NextItemIDHasPrefix applies the HasPrefix predicate on the "next_item_id" field.
func NextItemIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldNextItemID, v))
}

// NextItemIDHasSuffix applies the HasSuffix predicate on the "next_item_id" field.
func NextItemIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldNextItemID, v))
}

// NextItemIDEqualFold applies the EqualFold predicate on the "next_item_id" field.
func NextItemIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldNextItemID, v))
}

// NextItemIDContainsFold applies the ContainsFold predicate on the "next_item_id" field.
func NextItemIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldNextItemID, v))
}

// TraceIsNil applies the IsNil predicate on the "trace" field.
func TraceIsNil() predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIsNull(FieldTrace))
}

// TraceNotNil applies the NotNil predicate on the "trace" field.
func TraceNotNil() predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotNull(FieldTrace))
}

// MeasurementEQ applies the EQ predicate on the "measurement" field.
func MeasurementEQ(v []byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldMeasurement, v))
}

// MeasurementNEQ applies the NEQ predicate on the "measurement" field.
func MeasurementNEQ(v []byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldMeasurement, v))
}

// MeasurementIn applies the In predicate on the "measurement" field.
func MeasurementIn(vs ...[]byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldMeasurement, vs...))
}

// MeasurementNotIn applies the NotIn predicate on the "measurement" field.
func MeasurementNotIn(vs ...[]byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldMeasurement, vs...))
}

// MeasurementGT applies the GT predicate on the "measurement" field.
func MeasurementGT(v []byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldMeasurement, v))
}

// MeasurementGTE applies the GTE predicate on the "measurement" field.
func MeasurementGTE(v []byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldMeasurement, v))
}

// MeasurementLT applies the LT predicate on the "measurement" field.
func MeasurementLT(v []byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldMeasurement, v))
}

// MeasurementLTE applies the LTE predicate on the "measurement" field.
func MeasurementLTE(v []byte) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldMeasurement, v))
}

// MeasurementIsNil applies the IsNil predicate on the "measurement" field.
func MeasurementIsNil() predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIsNull(FieldMeasurement))
}

// MeasurementNotNil applies the NotNil predicate on the "measurement" field.
func MeasurementNotNil() predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotNull(FieldMeasurement))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.NotPredicates(p))
}
