package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-explanation",
		Description: "A short explanation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":  map[string]any{"type": "string", "minLength": 1},
				"keyPoint": map[string]any{"type": "string"},
				"tip":      map[string]any{"type": "string"},
				"level":    map[string]any{"type": "string", "enum": []string{"easy", "hard"}},
			},
			"required":             []string{"summary", "keyPoint", "tip"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"summary":"반어","keyPoint":"역설","tip":"화자"}`, false},
		{"valid with optional", `{"summary":"a","keyPoint":"b","tip":"c","level":"easy"}`, false},
		{"missing required", `{"summary":"a","keyPoint":"b"}`, true},
		{"wrong type", `{"summary":1,"keyPoint":"b","tip":"c"}`, true},
		{"empty summary", `{"summary":"","keyPoint":"b","tip":"c"}`, true},
		{"bad enum", `{"summary":"a","keyPoint":"b","tip":"c","level":"mid"}`, true},
		{"extra field", `{"summary":"a","keyPoint":"b","tip":"c","x":1}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(inv.Content) != tt.raw {
				t.Fatalf("Content = %q, want %q", inv.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_BrokenSchema(t *testing.T) {
	schema := &Schema{
		Name:       "test-broken",
		Definition: map[string]any{"type": 12},
	}
	err := validateResponse(schema, json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}
