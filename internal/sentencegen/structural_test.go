package sentencegen

import (
	"strings"
	"testing"

	"github.com/devika/grammaroll/internal/bank"
)

func goodCandidate() *Candidate {
	return &Candidate{
		Sentence: bank.Sentence{
			ID:     "gen-test",
			Text:   "Birds sing.",
			Tokens: []string{"Birds", "sing", "."},
			Spans: bank.Spans{
				CompleteSubject:   []int{0},
				SimpleSubject:     []int{0},
				CompletePredicate: []int{1},
				SimplePredicate:   []int{1},
			},
			Level: 1,
		},
		Pattern: PatternSimple,
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		mutate  func(*Candidate)
		input   GenerateInput
		wantMsg string // empty means pass
	}{
		{"valid", func(c *Candidate) {}, GenerateInput{Level: 1}, ""},
		{"empty text", func(c *Candidate) { c.Sentence.Text = "" }, GenerateInput{}, "text is empty"},
		{"too long", func(c *Candidate) { c.Sentence.Text = strings.Repeat("x", 201) }, GenerateInput{}, "200 characters"},
		{"one token", func(c *Candidate) { c.Sentence.Tokens = []string{"Hi"} }, GenerateInput{}, "fewer than 2"},
		{"level zero", func(c *Candidate) { c.Sentence.Level = 0 }, GenerateInput{}, "outside"},
		{"level four", func(c *Candidate) { c.Sentence.Level = 4 }, GenerateInput{}, "outside"},
		{"level mismatch", func(c *Candidate) {}, GenerateInput{Level: 2}, "requested level 2"},
		{"bad pattern", func(c *Candidate) { c.Pattern = "interrogative" }, GenerateInput{}, "unknown pattern"},
		{"pattern mismatch", func(c *Candidate) {}, GenerateInput{Level: 1, Pattern: PatternCompoundSubject}, "requested pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := goodCandidate()
			tt.mutate(c)
			err := v.Validate(c, tt.input)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected pass, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message = %q, want contains %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestAnnotationValidatorAcceptsSeedBank(t *testing.T) {
	v := &AnnotationValidator{}
	for _, s := range bank.All() {
		c := &Candidate{Sentence: s, Pattern: PatternSimple}
		if err := v.Validate(c, GenerateInput{}); err != nil {
			t.Errorf("%s: %v", s.ID, err)
		}
	}
}

func TestAnnotationValidatorRejectsSubsetViolation(t *testing.T) {
	c := goodCandidate()
	// Simple subject outside the complete subject.
	c.Sentence.Spans.SimpleSubject = []int{1}
	v := &AnnotationValidator{}
	if err := v.Validate(c, GenerateInput{}); err == nil {
		t.Fatal("expected rejection for subset violation")
	}
}
