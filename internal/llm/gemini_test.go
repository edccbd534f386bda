package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":  map[string]any{"type": "string", "description": "한 줄 요약"},
			"score":    map[string]any{"type": "integer"},
			"noteType": map[string]any{"type": "string", "enum": []any{"literature", "vocab"}},
			"points": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"summary", "score"},
	}

	schema := geminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["summary"].Description != "한 줄 요약" {
		t.Fatalf("description lost: %q", schema.Properties["summary"].Description)
	}
	if schema.Properties["score"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["noteType"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["noteType"].Enum))
	}
	if schema.Properties["points"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %s", schema.Properties["points"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{"rate limit", &genai.APIError{Code: http.StatusTooManyRequests}, true},
		{"server", &genai.APIError{Code: http.StatusServiceUnavailable}, true},
		{"bad request", &genai.APIError{Code: http.StatusBadRequest}, false},
		{"network", fmt.Errorf("dial tcp: connection refused"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapGeminiError(tt.err)
			if got := IsTransient(err); got != tt.transient {
				t.Fatalf("IsTransient = %v, want %v (%v)", got, tt.transient, err)
			}
		})
	}

	var rl *ErrRateLimit
	if !errors.As(mapGeminiError(&genai.APIError{Code: 429}), &rl) {
		t.Fatal("429 should map to ErrRateLimit")
	}
}
