package policy

// Intent classifies a diagnostic follow-up question.
type Intent string

const (
	IntentNone        Intent = "None"
	IntentCompletion  Intent = "Completion"
	IntentMechanism   Intent = "Mechanism"
	IntentAlternative Intent = "Alternative"
	IntentClarify     Intent = "Clarify"
	IntentBoundary    Intent = "Boundary"
)

// ParseIntent maps a wire string to an Intent. Unknown or empty strings
// report false.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentNone, IntentCompletion, IntentMechanism,
		IntentAlternative, IntentClarify, IntentBoundary:
		return Intent(s), true
	}
	return IntentNone, false
}

// Source records which authority produced the probe text.
type Source string

const (
	// SourceJudge means the grading judge's suggested text was used verbatim.
	SourceJudge Source = "judge"

	// SourcePolicy means the rules decided without needing text (intent None).
	SourcePolicy Source = "policy"

	// SourceLibrary means the text was drawn from the built-in phrase library.
	SourceLibrary Source = "library"
)

// Probe is the decision output of the engine.
type Probe struct {
	Intent     Intent  `json:"intent"`
	Text       string  `json:"text"`
	Rationale  string  `json:"rationale"`
	Confidence float64 `json:"confidence"`
	Source     Source  `json:"source"`
}

// None returns the no-probe decision with the given rationale.
func None(rationale string) Probe {
	return Probe{Intent: IntentNone, Rationale: rationale, Source: SourcePolicy}
}
