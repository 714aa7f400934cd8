package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// A slimmed-down version of the annotated-sentence schema.
func sentenceSchema() *Schema {
	return &Schema{
		Name:        "test-sentence",
		Description: "An annotated sentence",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":  map[string]any{"type": "string"},
				"level": map[string]any{"type": "integer", "minimum": 1, "maximum": 3},
				"tokens": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"pattern": map[string]any{"type": "string", "enum": []any{"simple", "compound-subject", "compound-predicate"}},
			},
			"required": []any{"text", "level", "tokens"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"text":"Birds sing.","level":1,"tokens":["Birds","sing","."]}`, false},
		{"valid with enum", `{"text":"Birds sing.","level":1,"tokens":["Birds","sing","."],"pattern":"simple"}`, false},
		{"missing required", `{"text":"Birds sing."}`, true},
		{"wrong type", `{"text":"Birds sing.","level":"one","tokens":[]}`, true},
		{"level out of range", `{"text":"Birds sing.","level":7,"tokens":[]}`, true},
		{"bad enum value", `{"text":"Birds sing.","level":1,"tokens":[],"pattern":"interrogative"}`, true},
		{"malformed json", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(sentenceSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("error = %T, want ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateResponseNestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "test-spans",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"spans": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"completeSubject": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "integer"},
						},
					},
					"required": []any{"completeSubject"},
				},
			},
			"required": []any{"spans"},
		},
	}

	valid := json.RawMessage(`{"spans":{"completeSubject":[0,1]}}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid nested: %v", err)
	}

	invalid := json.RawMessage(`{"spans":{"completeSubject":["zero"]}}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for non-integer span index")
	}
}
