package judge

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/llm"
	"github.com/abhisek/caliper/internal/measure"
)

const sampleMeasurement = `{
	"labels": {"Correct_Missing": 0.7, "Partial": 0.2},
	"pitfalls": {"only_one_reason_given": 0.8},
	"process_moves": {"states_mechanism": 0.4},
	"calibrations": {"p_correct": 0.75, "confidence": 0.8},
	"extractions": {"direction_word": null, "key_phrases": ["family income"], "reasons": ["family income"], "reasons_count": 1},
	"probe": {"intent": "Completion", "text": "Can you give one more different reason?", "rationale": "one of two reasons", "confidence": 0.7}
}`

func testItem() bank.Item {
	return bank.Item{
		ID:       "C2-01",
		Family:   "C2.reasons",
		SchemaID: "reasons-two",
		Text:     "Children with music lessons score higher on math tests. Give two different reasons this could happen, other than music helping math.",
	}
}

func TestGradeParsesMeasurement(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleMeasurement)},
	)
	j := New(mock, DefaultConfig())

	m, err := j.Grade(context.Background(), testItem(), bank.Features{ExpectedListCount: 2}, "probably family income")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if m.Label(measure.LabelCorrectMissing) != 0.7 {
		t.Errorf("Correct_Missing = %v, want 0.7", m.Label(measure.LabelCorrectMissing))
	}
	if m.Pitfall("only_one_reason_given") != 0.8 {
		t.Errorf("pitfall = %v, want 0.8", m.Pitfall("only_one_reason_given"))
	}
	if m.Extractions.ReasonsCount != 1 {
		t.Errorf("reasons_count = %d, want 1", m.Extractions.ReasonsCount)
	}
	if m.Probe == nil || m.Probe.Intent != "Completion" {
		t.Errorf("probe = %+v, want Completion suggestion", m.Probe)
	}
	if p, ok := m.PCorrect(); !ok || p != 0.75 {
		t.Errorf("p_correct = %v, %v; want 0.75, true", p, ok)
	}
}

func TestGradePromptContainsStimulusAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleMeasurement)},
	)
	j := New(mock, DefaultConfig())

	_, err := j.Grade(context.Background(), testItem(), bank.Features{ExpectedListCount: 2}, "probably family income")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != MeasurementSchema {
		t.Error("expected the measurement schema on the request")
	}
	if !strings.Contains(req.Prompt, "music lessons") {
		t.Error("prompt missing stimulus text")
	}
	if !strings.Contains(req.Prompt, "probably family income") {
		t.Error("prompt missing learner answer")
	}
	if !strings.Contains(req.Prompt, `"expected_list_count":2`) {
		t.Errorf("prompt missing feature hint: %s", req.Prompt)
	}
}

func TestGradeFollowupIncludesTranscript(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleMeasurement)},
	)
	j := New(mock, DefaultConfig())

	_, err := j.GradeFollowup(context.Background(), testItem(), bank.Features{},
		"probably family income",
		"Can you give one more different reason?",
		"wealthier families can afford tutors")
	if err != nil {
		t.Fatalf("grade followup: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Prompt, "Can you give one more different reason?") {
		t.Error("prompt missing probe text")
	}
	if !strings.Contains(req.Prompt, "afford tutors") {
		t.Error("prompt missing follow-up answer")
	}
}

func TestGradeFollowupContractNamesMechIndicator(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleMeasurement)},
	)
	j := New(mock, DefaultConfig())

	_, err := j.GradeFollowup(context.Background(), testItem(), bank.Features{},
		"probably family income",
		"How would that raise scores?",
		"tutors give more practice time")
	if err != nil {
		t.Fatalf("grade followup: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, measure.MoveMechConfirmed) {
		t.Errorf("system prompt does not name %q", measure.MoveMechConfirmed)
	}

	moves := MeasurementSchema.Definition["properties"].(map[string]any)["process_moves"].(map[string]any)
	props, ok := moves["properties"].(map[string]any)
	if !ok {
		t.Fatal("process_moves schema has no named properties")
	}
	if _, ok := props[measure.MoveMechConfirmed]; !ok {
		t.Errorf("process_moves schema does not name %q", measure.MoveMechConfirmed)
	}
}

func TestGradeProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	j := New(mock, DefaultConfig())

	_, err := j.Grade(context.Background(), testItem(), bank.Features{}, "answer")
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGradeMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	j := New(mock, DefaultConfig())

	_, err := j.Grade(context.Background(), testItem(), bank.Features{}, "answer")
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFixtureIsValidJSON(t *testing.T) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(sampleMeasurement), &parsed); err != nil {
		t.Fatalf("fixture is not JSON: %v", err)
	}
	for _, key := range []string{"labels", "calibrations", "extractions"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("fixture missing required %q", key)
		}
	}
}
