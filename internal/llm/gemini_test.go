package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{"type": "string", "enum": []any{"None", "Completion", "Mechanism"}},
			"text":   map[string]any{"type": "string"},
			"reasons": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"reasons_count": map[string]any{"type": "integer"},
		},
		"required": []any{"intent", "text"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["text"].Type != "STRING" {
		t.Fatalf("expected STRING for text, got %s", schema.Properties["text"].Type)
	}
	if schema.Properties["reasons_count"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for reasons_count, got %s", schema.Properties["reasons_count"].Type)
	}
	if len(schema.Properties["intent"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["intent"].Enum))
	}
	if schema.Properties["reasons"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for reasons, got %s", schema.Properties["reasons"].Type)
	}
	if schema.Properties["reasons"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for reasons items, got %s", schema.Properties["reasons"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
