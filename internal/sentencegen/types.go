package sentencegen

import "github.com/devika/grammaroll/internal/bank"

// Candidate is a generated, validated sentence ready for review. It is
// never served to the learner directly; an author inspects candidates
// and hand-promotes the keepers into the seed bank.
type Candidate struct {
	Sentence bank.Sentence

	// Pattern is the structural pattern the sentence was generated
	// for, e.g. "simple" or "compound-subject".
	Pattern string
}

// Pattern values accepted in prompts and output.
const (
	PatternSimple            = "simple"
	PatternCompoundSubject   = "compound-subject"
	PatternCompoundPredicate = "compound-predicate"
)

// GenerateInput describes one generation call.
type GenerateInput struct {
	// Level is the target difficulty band (bank.MinLevel..bank.MaxLevel).
	Level bank.Level

	// Pattern is the desired sentence pattern. Empty means the model
	// picks whatever fits the level.
	Pattern string

	// PriorSentences holds the text of sentences already in the bank
	// or generated this run, for deduplication in the prompt.
	PriorSentences []string
}
