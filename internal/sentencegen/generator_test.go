package sentencegen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/llm"
)

func validSentenceJSON() json.RawMessage {
	return json.RawMessage(`{
		"text": "The small dog barked loudly.",
		"tokens": ["The", "small", "dog", "barked", "loudly", "."],
		"complete_subject": [0, 1, 2],
		"simple_subject": [2],
		"complete_predicate": [3, 4],
		"simple_predicate": [3],
		"level": 2,
		"pattern": "simple",
		"tags": ["adjective", "adverb"]
	}`)
}

func TestGenerateCandidate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSentenceJSON()})
	gen := New(mock, DefaultConfig())

	c, err := gen.Generate(context.Background(), GenerateInput{Level: 2})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if c.Sentence.Text != "The small dog barked loudly." {
		t.Errorf("Text = %q", c.Sentence.Text)
	}
	if c.Sentence.Level != 2 {
		t.Errorf("Level = %d, want 2", c.Sentence.Level)
	}
	if c.Pattern != PatternSimple {
		t.Errorf("Pattern = %q, want simple", c.Pattern)
	}
	if !strings.HasPrefix(c.Sentence.ID, "gen-") {
		t.Errorf("ID = %q, want gen- prefix", c.Sentence.ID)
	}
	if got := c.Sentence.SpanText(c.Sentence.Spans.SimpleSubject); got != "dog" {
		t.Errorf("simple subject = %q, want dog", got)
	}
}

func TestGeneratePromptCarriesLevelAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSentenceJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Level:          2,
		PriorSentences: []string{"Birds sing.", "Dogs bark."},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "annotated-sentence" {
		t.Fatalf("schema = %+v, want annotated-sentence", req.Schema)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Level: 2") {
		t.Errorf("prompt missing level: %q", msg)
	}
	if !strings.Contains(msg, "1. Birds sing.") || !strings.Contains(msg, "2. Dogs bark.") {
		t.Errorf("prompt missing dedup list: %q", msg)
	}
}

func TestGenerateRejectsLevelMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSentenceJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Level: 1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T (%v), want ValidationError", err, err)
	}
	if verr.Validator != "structural" {
		t.Errorf("validator = %q, want structural", verr.Validator)
	}
}

func TestGenerateRejectsBadAnnotations(t *testing.T) {
	// simple_subject index 9 is out of range.
	bad := json.RawMessage(`{
		"text": "Birds sing.",
		"tokens": ["Birds", "sing", "."],
		"complete_subject": [0],
		"simple_subject": [9],
		"complete_predicate": [1],
		"simple_predicate": [1],
		"level": 1,
		"pattern": "simple",
		"tags": []
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Level: 1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T (%v), want ValidationError", err, err)
	}
	if verr.Validator != "annotation" {
		t.Errorf("validator = %q, want annotation", verr.Validator)
	}
	if !verr.Retryable {
		t.Error("annotation failures should be retryable")
	}
}

func TestGenerateRejectsPunctuationInSpan(t *testing.T) {
	bad := json.RawMessage(`{
		"text": "Birds sing.",
		"tokens": ["Birds", "sing", "."],
		"complete_subject": [0],
		"simple_subject": [0],
		"complete_predicate": [1, 2],
		"simple_predicate": [1],
		"level": 1,
		"pattern": "simple",
		"tags": []
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Level: 1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T (%v), want ValidationError", err, err)
	}
	if !strings.Contains(verr.Message, "punctuation") {
		t.Errorf("message = %q, want punctuation complaint", verr.Message)
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), GenerateInput{Level: 1}); err == nil {
		t.Fatal("expected error from provider failure")
	}
}

func TestCandidatePassesBankCheck(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSentenceJSON()})
	gen := New(mock, DefaultConfig())

	c, err := gen.Generate(context.Background(), GenerateInput{Level: 2})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := bank.Check(c.Sentence); err != nil {
		t.Errorf("validated candidate fails bank check: %v", err)
	}
}
