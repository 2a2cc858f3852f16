package policy

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/measure"
)

func testEngine() *Engine {
	return NewEngine(DefaultConfig(), rand.New(rand.NewPCG(1, 2)))
}

func testItem() bank.Item {
	return bank.Item{
		ID:     "C2-01",
		Family: "C2.reasons",
		Text:   "A city sees more ice cream sales and more drownings in the same months.",
	}
}

func sufficientMeasurement() measure.Measurement {
	return measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectComplete: 0.85},
		Calibrations: measure.Calibrations{Confidence: 0.9},
	}
}

func TestDecideEvidenceSufficient(t *testing.T) {
	m := sufficientMeasurement()
	r := measure.Reading{FinalLabel: measure.LabelCorrectComplete, FinalP: 0.85, MoveOK: true}

	p, notes := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Intent != IntentNone {
		t.Errorf("intent = %q, want None", p.Intent)
	}
	if p.Source != SourcePolicy {
		t.Errorf("source = %q, want policy", p.Source)
	}
	if len(notes) == 0 {
		t.Error("expected at least one trace note")
	}
}

func TestDecideSufficiencyBlockedByPitfall(t *testing.T) {
	m := sufficientMeasurement()
	r := measure.Reading{
		FinalLabel:   measure.LabelCorrectComplete,
		MoveOK:       true,
		HighPitfalls: []string{"overclaims_causation"},
	}

	p, _ := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Intent == IntentNone {
		t.Error("high pitfall should prevent the sufficiency skip")
	}
}

func TestDecideSufficiencyBlockedByMissingMove(t *testing.T) {
	m := sufficientMeasurement()
	r := measure.Reading{FinalLabel: measure.LabelCorrectComplete, MoveOK: false}

	p, _ := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Intent == IntentNone {
		t.Error("missing required move should prevent the sufficiency skip")
	}
}

func TestDecideDegenerateMeasurement(t *testing.T) {
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelNovel: 1.0},
		Calibrations: measure.Calibrations{Confidence: 0.1},
	}
	r := measure.Reading{FinalLabel: measure.LabelNovel}

	p, notes := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Intent != IntentNone {
		t.Errorf("intent = %q, want None for degenerate measurement", p.Intent)
	}
	found := false
	for _, n := range notes {
		if strings.Contains(n, "degenerate") {
			found = true
		}
	}
	if !found {
		t.Errorf("notes %v missing degenerate marker", notes)
	}
}

func TestDecideNovelWithConfidenceIsNotDegenerate(t *testing.T) {
	// A confident Novel is a real signal, not a failed call.
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelNovel: 1.0},
		Calibrations: measure.Calibrations{Confidence: 0.8},
	}
	r := measure.Reading{FinalLabel: measure.LabelNovel}

	p, _ := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Intent != IntentAlternative {
		t.Errorf("intent = %q, want Alternative from the label default", p.Intent)
	}
}

func TestDecideJudgeProbeAccepted(t *testing.T) {
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectMissing: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.8},
		Probe: &measure.ProbeSuggestion{
			Intent:     "Mechanism",
			Text:       "One sentence: how could that come about?",
			Rationale:  "answer asserts the link without a mechanism",
			Confidence: 0.7,
		},
	}
	r := measure.Reading{FinalLabel: measure.LabelCorrectMissing, MoveOK: true}

	p, _ := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Source != SourceJudge {
		t.Fatalf("source = %q, want judge", p.Source)
	}
	if p.Text != "One sentence: how could that come about?" {
		t.Errorf("judge probe text not passed through verbatim: %q", p.Text)
	}
	if p.Intent != IntentMechanism {
		t.Errorf("intent = %q, want Mechanism", p.Intent)
	}
	if p.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", p.Confidence)
	}
}

func TestDecideJudgeProbeRejectedFallsThrough(t *testing.T) {
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectMissing: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.8},
		Probe: &measure.ProbeSuggestion{
			Intent: "Mechanism",
			Text:   "Is there a confounder at play here?",
		},
	}
	r := measure.Reading{FinalLabel: measure.LabelCorrectMissing, MoveOK: true}

	p, notes := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Source != SourceLibrary {
		t.Errorf("source = %q, want library after guard rejection", p.Source)
	}
	if p.Intent != IntentMechanism {
		t.Errorf("intent = %q, want Mechanism from the label default", p.Intent)
	}
	rejected := false
	for _, n := range notes {
		if strings.Contains(n, "rejected") {
			rejected = true
		}
	}
	if !rejected {
		t.Errorf("notes %v missing rejection marker", notes)
	}
}

func TestDecideJudgeProbeUnknownIntentIgnored(t *testing.T) {
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelPartial: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.8},
		Probe:        &measure.ProbeSuggestion{Intent: "Socratic", Text: "Why do you think so?"},
	}
	r := measure.Reading{FinalLabel: measure.LabelPartial, MoveOK: true}

	p, _ := testEngine().Decide(testItem(), bank.Features{}, m, r)
	if p.Source == SourceJudge {
		t.Error("unknown judge intent must not be surfaced")
	}
}

func TestDecideCompletionFromShortList(t *testing.T) {
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectMissing: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.8},
		Extractions:  measure.Extractions{ReasonsCount: 1},
	}
	r := measure.Reading{FinalLabel: measure.LabelCorrectMissing, MoveOK: true}
	feats := bank.Features{ExpectedListCount: 2}

	p, _ := testEngine().Decide(testItem(), feats, m, r)
	if p.Intent != IntentCompletion {
		t.Errorf("intent = %q, want Completion for 1 of 2 reasons", p.Intent)
	}
	if p.Source != SourceLibrary {
		t.Errorf("source = %q, want library", p.Source)
	}
	if p.Text == "" {
		t.Error("library probe must carry text")
	}
}

func TestDecideListCountMetNoCompletion(t *testing.T) {
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectMissing: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.8},
		Extractions:  measure.Extractions{ReasonsCount: 2},
	}
	r := measure.Reading{FinalLabel: measure.LabelCorrectMissing, MoveOK: true}
	feats := bank.Features{ExpectedListCount: 2}

	p, _ := testEngine().Decide(testItem(), feats, m, r)
	if p.Intent == IntentCompletion {
		t.Error("met list count must not trigger a completion probe")
	}
}

func TestDecideBoundaryFamilyForce(t *testing.T) {
	it := bank.Item{ID: "C8-01", Family: "C8.boundary", Text: "A trial shows a drug works on average."}
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelPartial: 0.7},
		Calibrations: measure.Calibrations{Confidence: 0.8},
	}
	r := measure.Reading{FinalLabel: measure.LabelPartial, MoveOK: true}

	p, _ := testEngine().Decide(it, bank.Features{}, m, r)
	if p.Intent != IntentBoundary {
		t.Errorf("intent = %q, want Boundary for weak answer in boundary family", p.Intent)
	}
}

func TestDecideBoundaryOverridesCompletion(t *testing.T) {
	it := bank.Item{ID: "C8-02", Family: "C8.boundary", Text: "A study reports a diet lowers risk."}
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelIncorrect: 0.7},
		Calibrations: measure.Calibrations{Confidence: 0.8},
		Extractions:  measure.Extractions{ReasonsCount: 0},
	}
	r := measure.Reading{FinalLabel: measure.LabelIncorrect, MoveOK: true}
	feats := bank.Features{ExpectedListCount: 2}

	p, _ := testEngine().Decide(it, feats, m, r)
	if p.Intent != IntentBoundary {
		t.Errorf("intent = %q, want Boundary to win over Completion", p.Intent)
	}
}

func TestDecideBoundaryFamilyStrongAnswerNotForced(t *testing.T) {
	it := bank.Item{ID: "C8-01", Family: "C8.boundary", Text: "A trial shows a drug works on average."}
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectMissing: 0.7},
		Calibrations: measure.Calibrations{Confidence: 0.8},
	}
	r := measure.Reading{FinalLabel: measure.LabelCorrectMissing, MoveOK: true}

	p, _ := testEngine().Decide(it, bank.Features{}, m, r)
	if p.Intent == IntentBoundary {
		t.Error("a non-weak label must not force the boundary probe")
	}
}

func TestDecideLabelDefaults(t *testing.T) {
	tests := []struct {
		label string
		want  Intent
	}{
		{measure.LabelCorrectComplete, IntentNone},
		{measure.LabelCorrectMissing, IntentMechanism},
		{measure.LabelCorrectFlawed, IntentMechanism},
		{measure.LabelPartial, IntentAlternative},
		{measure.LabelIncorrect, IntentAlternative},
		{measure.LabelNovel, IntentAlternative},
	}
	for _, tt := range tests {
		m := measure.Measurement{
			Labels:       map[string]float64{tt.label: 0.6},
			Calibrations: measure.Calibrations{Confidence: 0.5},
		}
		r := measure.Reading{FinalLabel: tt.label, MoveOK: true}

		p, _ := testEngine().Decide(testItem(), bank.Features{}, m, r)
		if p.Intent != tt.want {
			t.Errorf("label %s: intent = %q, want %q", tt.label, p.Intent, tt.want)
		}
	}
}

func TestDecideDeterministicUnderSeed(t *testing.T) {
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelPartial: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.8},
	}
	r := measure.Reading{FinalLabel: measure.LabelPartial, MoveOK: true}

	a, _ := NewEngine(DefaultConfig(), rand.New(rand.NewPCG(7, 7))).Decide(testItem(), bank.Features{}, m, r)
	b, _ := NewEngine(DefaultConfig(), rand.New(rand.NewPCG(7, 7))).Decide(testItem(), bank.Features{}, m, r)
	if a.Text != b.Text {
		t.Errorf("same seed produced different texts: %q vs %q", a.Text, b.Text)
	}
}

func TestNewEngineNilRNG(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelPartial: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.8},
	}
	r := measure.Reading{FinalLabel: measure.LabelPartial, MoveOK: true}

	p, _ := e.Decide(testItem(), bank.Features{}, m, r)
	if p.Text == "" {
		t.Error("nil rng engine must still draw library phrases")
	}
}
