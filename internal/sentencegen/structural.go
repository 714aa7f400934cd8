package sentencegen

import (
	"fmt"

	"github.com/devika/grammaroll/internal/bank"
)

// StructuralValidator checks field presence, lengths, and enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *Candidate, input GenerateInput) *ValidationError {
	s := c.Sentence

	if s.Text == "" {
		return v.fail("text is empty")
	}
	if len(s.Text) > 200 {
		return v.fail("text exceeds 200 characters")
	}
	if len(s.Tokens) < 2 {
		return v.fail("fewer than 2 tokens")
	}
	if len(s.Tokens) > 20 {
		return v.fail("more than 20 tokens")
	}
	if s.Level < bank.MinLevel || s.Level > bank.MaxLevel {
		return v.fail(fmt.Sprintf("level %d outside [%d,%d]", s.Level, bank.MinLevel, bank.MaxLevel))
	}
	if input.Level != 0 && s.Level != input.Level {
		return v.fail(fmt.Sprintf("requested level %d, got %d", input.Level, s.Level))
	}

	switch c.Pattern {
	case PatternSimple, PatternCompoundSubject, PatternCompoundPredicate:
	default:
		return v.fail(fmt.Sprintf("unknown pattern %q", c.Pattern))
	}
	if input.Pattern != "" && c.Pattern != input.Pattern {
		return v.fail(fmt.Sprintf("requested pattern %q, got %q", input.Pattern, c.Pattern))
	}

	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
