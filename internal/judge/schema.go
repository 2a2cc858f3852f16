package judge

import (
	"github.com/abhisek/caliper/internal/llm"
	"github.com/abhisek/caliper/internal/measure"
)

// MeasurementSchema defines the JSON schema for grading responses.
// It mirrors measure.Measurement's wire format.
var MeasurementSchema = &llm.Schema{
	Name:        "answer-measurement",
	Description: "Structured grading of a short free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels": map[string]any{
				"type":        "object",
				"description": "Probability per answer-quality label",
				"properties": map[string]any{
					"Correct&Complete": probability(),
					"Correct_Missing":  probability(),
					"Correct_Flawed":   probability(),
					"Partial":          probability(),
					"Incorrect":        probability(),
					"Novel":            probability(),
				},
				"additionalProperties": false,
			},
			"pitfalls": map[string]any{
				"type":                 "object",
				"description":          "Probability per short pitfall key, top 3 only",
				"additionalProperties": probability(),
			},
			"process_moves": map[string]any{
				"type":        "object",
				"description": "Probability per short process-move key, top 3 only",
				"properties": map[string]any{
					// The mechanism indicator the merge step keys on.
					measure.MoveMechConfirmed: probability(),
				},
				"additionalProperties": probability(),
			},
			"calibrations": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"p_correct":  probability(),
					"confidence": probability(),
				},
				"required":             []any{"confidence"},
				"additionalProperties": false,
			},
			"extractions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"direction_word": map[string]any{
						"type": []any{"string", "null"},
					},
					"key_phrases": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"reasons": map[string]any{
						"type":        "array",
						"description": "Distinct items extracted from a list answer",
						"items":       map[string]any{"type": "string"},
					},
					"reasons_count": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"reasons_count"},
				"additionalProperties": false,
			},
			"probe": map[string]any{
				"type": []any{"object", "null"},
				"properties": map[string]any{
					"intent": map[string]any{
						"type": "string",
						"enum": []any{"None", "Completion", "Mechanism", "Alternative", "Clarify", "Boundary"},
					},
					"text":       map[string]any{"type": "string"},
					"rationale":  map[string]any{"type": "string"},
					"confidence": probability(),
				},
				"required":             []any{"intent", "text"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"labels", "calibrations", "extractions"},
		"additionalProperties": false,
	},
}

func probability() map[string]any {
	return map[string]any{
		"type":    "number",
		"minimum": 0.0,
		"maximum": 1.0,
	}
}
