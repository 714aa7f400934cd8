package sentencegen

import (
	"github.com/devika/grammaroll/internal/bank"
)

// AnnotationValidator runs the seed bank's own authoring checks on the
// candidate, then rejects spans that include punctuation tokens. A
// candidate that passes here is well-formed by the same rules the
// hand-written bank is held to.
type AnnotationValidator struct{}

func (v *AnnotationValidator) Name() string { return "annotation" }

func (v *AnnotationValidator) Validate(c *Candidate, _ GenerateInput) *ValidationError {
	if err := bank.Check(c.Sentence); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}

	spans := [][]int{
		c.Sentence.Spans.CompleteSubject,
		c.Sentence.Spans.SimpleSubject,
		c.Sentence.Spans.CompletePredicate,
		c.Sentence.Spans.SimplePredicate,
	}
	for _, span := range spans {
		for _, i := range span {
			if bank.IsPunct(c.Sentence.Tokens[i]) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   "span includes a punctuation token",
					Retryable: true,
				}
			}
		}
	}
	return nil
}
