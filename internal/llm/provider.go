package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction. The grading
// judge is the only consumer: it sends a single formatted prompt and
// expects schema-conforming JSON back.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured
	// response. When the request's Schema is set, the provider uses its
	// native structured output mechanism and the response Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single-turn generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Multi-part context (stimulus, answer,
	// probe transcript) is formatted into this one string by the caller.
	Prompt string

	// Schema is the JSON Schema the response must conform to. When nil,
	// the response Content is the raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "answer-measurement".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. With a Schema in the request this
	// is the validated JSON object.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
