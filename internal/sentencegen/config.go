package sentencegen

// Config controls the LLMGenerator.
type Config struct {
	// Validators run in order on every candidate; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0). Sentence
	// variety matters, so the default is well above zero.
	Temperature float64

	// MaxPriorSentences caps the dedup list in the prompt.
	MaxPriorSentences int
}

// DefaultConfig returns the standard validator chain and defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnnotationValidator{},
		},
		MaxTokens:         512,
		Temperature:       0.8,
		MaxPriorSentences: 20,
	}
}
