package sentencegen

import "context"

// Generator produces annotated sentence candidates.
type Generator interface {
	// Generate produces one validated candidate for the given input.
	Generate(ctx context.Context, input GenerateInput) (*Candidate, error)
}
