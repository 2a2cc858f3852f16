package measure

import "math"

// The six answer-quality labels, in canonical order. The interpreter
// breaks argmax ties by this ordering.
const (
	LabelCorrectComplete = "Correct&Complete"
	LabelCorrectMissing  = "Correct_Missing"
	LabelCorrectFlawed   = "Correct_Flawed"
	LabelPartial         = "Partial"
	LabelIncorrect       = "Incorrect"
	LabelNovel           = "Novel"
)

// CanonicalLabels returns the six labels in canonical order.
func CanonicalLabels() []string {
	return []string{
		LabelCorrectComplete,
		LabelCorrectMissing,
		LabelCorrectFlawed,
		LabelPartial,
		LabelIncorrect,
		LabelNovel,
	}
}

// Measurement is the grading judge's structured output for one answer.
// Field names mirror the judge's JSON contract. Probability fields may
// arrive missing or malformed; all reads go through clamped accessors,
// so consumers never see NaN or out-of-range values.
type Measurement struct {
	Labels       map[string]float64 `json:"labels"`
	Pitfalls     map[string]float64 `json:"pitfalls"`
	ProcessMoves map[string]float64 `json:"process_moves"`
	Calibrations Calibrations       `json:"calibrations"`
	Extractions  Extractions        `json:"extractions"`

	// Probe is the judge's own probe suggestion, if any. It is advisory:
	// the policy engine decides whether to surface it.
	Probe *ProbeSuggestion `json:"probe,omitempty"`
}

// Calibrations carries the judge's self-assessment.
type Calibrations struct {
	// PCorrect is the judge's direct estimate that the answer is correct.
	// Nil when the judge did not supply one.
	PCorrect   *float64 `json:"p_correct,omitempty"`
	Confidence float64  `json:"confidence"`
}

// Extractions carries structured fragments the judge pulled out of the
// answer text.
type Extractions struct {
	DirectionWord *string  `json:"direction_word"`
	KeyPhrases    []string `json:"key_phrases"`
	Reasons       []string `json:"reasons"`
	ReasonsCount  int      `json:"reasons_count"`
}

// ProbeSuggestion is the judge's recommended follow-up.
type ProbeSuggestion struct {
	Intent     string  `json:"intent"`
	Text       string  `json:"text"`
	Rationale  string  `json:"rationale"`
	Confidence float64 `json:"confidence"`
}

// Label returns the clamped probability for a label, 0 if absent.
func (m Measurement) Label(name string) float64 {
	return clamp01(m.Labels[name])
}

// Pitfall returns the clamped probability for a pitfall key, 0 if absent.
func (m Measurement) Pitfall(key string) float64 {
	return clamp01(m.Pitfalls[key])
}

// Move returns the clamped probability for a process-move key, 0 if absent.
func (m Measurement) Move(key string) float64 {
	return clamp01(m.ProcessMoves[key])
}

// Confidence returns the judge's clamped confidence.
func (m Measurement) Confidence() float64 {
	return clamp01(m.Calibrations.Confidence)
}

// PCorrect returns the judge's clamped correctness estimate and whether
// one was supplied.
func (m Measurement) PCorrect() (float64, bool) {
	if m.Calibrations.PCorrect == nil {
		return 0, false
	}
	return clamp01(*m.Calibrations.PCorrect), true
}

// clamp01 coerces a probability into [0,1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
