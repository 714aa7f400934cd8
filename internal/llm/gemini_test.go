package llm

import "testing"

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // literal IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":  map[string]any{"type": "string"},
			"level": map[string]any{"type": "integer"},
			"pattern": map[string]any{
				"type": "string",
				"enum": []any{"simple", "compound-subject", "compound-predicate"},
			},
			"tokens": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"text", "level", "tokens"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("Type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("len(Properties) = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["text"].Type != "STRING" {
		t.Errorf("text.Type = %s, want STRING", schema.Properties["text"].Type)
	}
	if schema.Properties["level"].Type != "INTEGER" {
		t.Errorf("level.Type = %s, want INTEGER", schema.Properties["level"].Type)
	}
	if len(schema.Properties["pattern"].Enum) != 3 {
		t.Errorf("pattern enum count = %d, want 3", len(schema.Properties["pattern"].Enum))
	}
	if schema.Properties["tokens"].Type != "ARRAY" {
		t.Errorf("tokens.Type = %s, want ARRAY", schema.Properties["tokens"].Type)
	}
	if schema.Properties["tokens"].Items.Type != "STRING" {
		t.Errorf("tokens items.Type = %s, want STRING", schema.Properties["tokens"].Items.Type)
	}
	if len(schema.Required) != 3 {
		t.Errorf("len(Required) = %d, want 3", len(schema.Required))
	}
}
