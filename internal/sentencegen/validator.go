package sentencegen

import "fmt"

// Validator checks a generated candidate before it is surfaced.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name is a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil when the candidate passes.
	Validate(c *Candidate, input GenerateInput) *ValidationError
}

// ValidationError describes why a candidate was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix it
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
