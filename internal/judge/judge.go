package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/llm"
	"github.com/abhisek/caliper/internal/measure"
)

// Config holds configuration for the grading judge.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Grading wants low temperature.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// Judge grades free-text answers into structured measurements using an
// LLM provider.
type Judge struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Judge on the given provider.
func New(provider llm.Provider, cfg Config) *Judge {
	return &Judge{provider: provider, cfg: cfg}
}

// Grade measures a learner's primary answer to an item.
func (j *Judge) Grade(ctx context.Context, it bank.Item, feats bank.Features, answer string) (measure.Measurement, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrade)
	return j.grade(ctx, gradeInput{
		Stimulus: it.Text,
		Answer:   answer,
		Features: featureHints(feats),
	})
}

// GradeFollowup measures a learner's answer to a probe, in the context
// of the original item and primary answer.
func (j *Judge) GradeFollowup(ctx context.Context, it bank.Item, feats bank.Features, answer, probeText, followup string) (measure.Measurement, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGradeFollowup)
	return j.grade(ctx, gradeInput{
		Stimulus:  it.Text,
		Answer:    answer,
		ProbeText: probeText,
		Followup:  followup,
		Features:  featureHints(feats),
	})
}

func (j *Judge) grade(ctx context.Context, in gradeInput) (measure.Measurement, error) {
	prompt, err := buildGradePrompt(in)
	if err != nil {
		return measure.Measurement{}, fmt.Errorf("build grading prompt: %w", err)
	}

	resp, err := j.provider.Generate(ctx, llm.Request{
		System:      gradeSystemPrompt,
		Prompt:      prompt,
		Schema:      MeasurementSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	})
	if err != nil {
		return measure.Measurement{}, fmt.Errorf("grading call failed: %w", err)
	}

	var m measure.Measurement
	if err := json.Unmarshal(resp.Content, &m); err != nil {
		return measure.Measurement{}, fmt.Errorf("parse grading response: %w", err)
	}
	return m, nil
}

// featureHints renders the interpretable bits of an item's features into
// plain key/value hints for the judge. Nothing here names a concept.
func featureHints(feats bank.Features) map[string]any {
	hints := map[string]any{}
	if feats.ExpectedListCount > 0 {
		hints["expected_list_count"] = feats.ExpectedListCount
	}
	if feats.ExpectDirectionWord {
		hints["expect_direction_word"] = true
	}
	if len(feats.RequiredMoves) > 0 {
		hints["required_moves"] = feats.RequiredMoves
	}
	return hints
}

type gradeInput struct {
	Stimulus  string
	Answer    string
	ProbeText string
	Followup  string
	Features  map[string]any
}

var gradeUserTemplate = template.Must(template.New("grade").Funcs(template.FuncMap{
	"json": func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			return "{}"
		}
		return string(b)
	},
}).Parse(`Stimulus:
{{.Stimulus}}

Learner's answer:
{{.Answer}}
{{if .ProbeText}}
Follow-up question asked:
{{.ProbeText}}

Learner's follow-up answer:
{{.Followup}}
{{end}}{{if .Features}}
Features: {{json .Features}}
{{end}}`))

func buildGradePrompt(in gradeInput) (string, error) {
	var buf bytes.Buffer
	if err := gradeUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
