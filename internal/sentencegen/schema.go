package sentencegen

import "github.com/devika/grammaroll/internal/llm"

// indexArray is the schema fragment for a set of token indices.
func indexArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "integer", "minimum": 0},
		"minItems":    1,
		"description": desc,
	}
}

// SentenceSchema is the JSON schema for LLM sentence generation output.
var SentenceSchema = &llm.Schema{
	Name:        "annotated-sentence",
	Description: "A practice sentence with subject and predicate annotations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The full sentence with normal spacing and a terminal punctuation mark",
			},
			"tokens": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
				"description": "The sentence split into words, with punctuation as separate tokens",
			},
			"complete_subject":   indexArray("Token indices of the complete subject"),
			"simple_subject":     indexArray("Token indices of the simple subject; must be a subset of complete_subject"),
			"complete_predicate": indexArray("Token indices of the complete predicate"),
			"simple_predicate":   indexArray("Token indices of the simple predicate (the verb); must be a subset of complete_predicate"),
			"level": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     3,
				"description": "Difficulty band: 1 short and bare, 2 with modifiers, 3 with compound parts or longer phrases",
			},
			"pattern": map[string]any{
				"type":        "string",
				"enum":        []any{PatternSimple, PatternCompoundSubject, PatternCompoundPredicate},
				"description": "The structural pattern of the sentence",
			},
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short descriptive tags, e.g. \"adverb\", \"prepositional-phrase\"",
			},
		},
		"required": []any{
			"text", "tokens",
			"complete_subject", "simple_subject",
			"complete_predicate", "simple_predicate",
			"level", "pattern", "tags",
		},
		"additionalProperties": false,
	},
}
