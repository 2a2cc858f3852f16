// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/caliper/ent/turnevent"
)

// TurnEvent is the model entity for the TurnEvent schema.
type TurnEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session UUID this turn belongs to
	SessionID string `json:"session_id,omitempty"`
	// 1-based position within the session
	TurnIndex int `json:"turn_index,omitempty"`
	// Catalog item that was answered
	ItemID string `json:"item_id,omitempty"`
	// Learner's primary answer
	AnswerText string `json:"answer_text,omitempty"`
	// Learner's probe answer, if a follow-up was graded
	FollowupText string `json:"followup_text,omitempty"`
	// Winning answer-quality label after merge
	FinalLabel string `json:"final_label,omitempty"`
	// Probability of the winning label
	FinalP float64 `json:"final_p,omitempty"`
	// Probe decision intent
	ProbeIntent string `json:"probe_intent,omitempty"`
	// Who authored the probe text: judge, policy, library
	ProbeSource string `json:"probe_source,omitempty"`
	// ThetaBefore holds the value of the "theta_before" field.
	ThetaBefore float64 `json:"theta_before,omitempty"`
	// ThetaAfter holds the value of the "theta_after" field.
	ThetaAfter float64 `json:"theta_after,omitempty"`
	// Posterior standard error after the update
	SeAfter float64 `json:"se_after,omitempty"`
	// Item selected for the next turn; empty when exhausted
	NextItemID string `json:"next_item_id,omitempty"`
	// Human-readable rule-by-rule decision notes
	Trace []string `json:"trace,omitempty"`
	// Raw merged measurement JSON
	Measurement  []byte `json:"measurement,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldTrace, turnevent.FieldMeasurement:
			values[i] = new([]byte)
		case turnevent.FieldFinalP, turnevent.FieldThetaBefore, turnevent.FieldThetaAfter, turnevent.FieldSeAfter:
			values[i] = new(sql.NullFloat64)
		case turnevent.FieldID, turnevent.FieldSequence, turnevent.FieldTurnIndex:
			values[i] = new(sql.NullInt64)
		case turnevent.FieldSessionID, turnevent.FieldItemID, turnevent.FieldAnswerText, turnevent.FieldFollowupText, turnevent.FieldFinalLabel, turnevent.FieldProbeIntent, turnevent.FieldProbeSource, turnevent.FieldNextItemID:
			values[i] = new(sql.NullString)
		case turnevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnEvent fields.
func (_m *TurnEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case turnevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case turnevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case turnevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case turnevent.FieldTurnIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_index", values[i])
			} else if value.Valid {
				_m.TurnIndex = int(value.Int64)
			}
		case turnevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case turnevent.FieldAnswerText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_text", values[i])
			} else if value.Valid {
				_m.AnswerText = value.String
			}
		case turnevent.FieldFollowupText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field followup_text", values[i])
			} else if value.Valid {
				_m.FollowupText = value.String
			}
		case turnevent.FieldFinalLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_label", values[i])
			} else if value.Valid {
				_m.FinalLabel = value.String
			}
		case turnevent.FieldFinalP:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_p", values[i])
			} else if value.Valid {
				_m.FinalP = value.Float64
			}
		case turnevent.FieldProbeIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field probe_intent", values[i])
			} else if value.Valid {
				_m.ProbeIntent = value.String
			}
		case turnevent.FieldProbeSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field probe_source", values[i])
			} else if value.Valid {
				_m.ProbeSource = value.String
			}
		case turnevent.FieldThetaBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_before", values[i])
			} else if value.Valid {
				_m.ThetaBefore = value.Float64
			}
		case turnevent.FieldThetaAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_after", values[i])
			} else if value.Valid {
				_m.ThetaAfter = value.Float64
			}
		case turnevent.FieldSeAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field se_after", values[i])
			} else if value.Valid {
				_m.SeAfter = value.Float64
			}
		case turnevent.FieldNextItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_item_id", values[i])
			} else if value.Valid {
				_m.NextItemID = value.String
			}
		case turnevent.FieldTrace:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trace", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Trace); err != nil {
					return fmt.Errorf("unmarshal field trace: %w", err)
				}
			}
		case turnevent.FieldMeasurement:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field measurement", values[i])
			} else if value != nil {
				_m.Measurement = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TurnEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TurnEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TurnEvent.
// Note that you need to call TurnEvent.Unwrap() before calling this method if this TurnEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnEvent) Update() *TurnEventUpdateOne {
	return NewTurnEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnEvent) Unwrap() *TurnEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TurnEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("turn_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnIndex))
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("answer_text=")
	builder.WriteString(_m.AnswerText)
	builder.WriteString(", ")
	builder.WriteString("followup_text=")
	builder.WriteString(_m.FollowupText)
	builder.WriteString(", ")
	builder.WriteString("final_label=")
	builder.WriteString(_m.FinalLabel)
	builder.WriteString(", ")
	builder.WriteString("final_p=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalP))
	builder.WriteString(", ")
	builder.WriteString("probe_intent=")
	builder.WriteString(_m.ProbeIntent)
	builder.WriteString(", ")
	builder.WriteString("probe_source=")
	builder.WriteString(_m.ProbeSource)
	builder.WriteString(", ")
	builder.WriteString("theta_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaBefore))
	builder.WriteString(", ")
	builder.WriteString("theta_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaAfter))
	builder.WriteString(", ")
	builder.WriteString("se_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeAfter))
	builder.WriteString(", ")
	builder.WriteString("next_item_id=")
	builder.WriteString(_m.NextItemID)
	builder.WriteString(", ")
	builder.WriteString("trace=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trace))
	builder.WriteString(", ")
	builder.WriteString("measurement=")
	builder.WriteString(fmt.Sprintf("%v", _m.Measurement))
	builder.WriteByte(')')
	return builder.String()
}

// TurnEvents is a parsable slice of TurnEvent.
type TurnEvents []*TurnEvent
