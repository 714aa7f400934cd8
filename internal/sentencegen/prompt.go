package sentencegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a grammar teacher writing practice sentences for elementary school students learning to find subjects and predicates.

Rules:
- Write a single declarative sentence appropriate for the given difficulty level.
- Level 1: two to four words, bare subject and verb (e.g. "Birds sing.").
- Level 2: add articles, adjectives, or adverbs (e.g. "The small dog barked loudly.").
- Level 3: compound subjects, compound predicates, or prepositional phrases.
- Tokenize the sentence into words, with every punctuation mark as its own token.
- Annotate the complete subject, simple subject, complete predicate, and simple predicate as token index sets. Indices refer to positions in the tokens array, starting at 0.
- The simple subject must be inside the complete subject; the simple predicate must be inside the complete predicate.
- Do not put punctuation tokens inside any span.
- Use common, concrete vocabulary a young child knows.
- Do not repeat any sentence from the "already written" list.`

// buildUserMessage renders the generation request for the model.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Level: %d\n", input.Level)
	if input.Pattern != "" {
		fmt.Fprintf(&b, "Pattern: %s\n", input.Pattern)
	}

	b.WriteString("\nAlready written:\n")
	b.WriteString(priorList(input.PriorSentences, cfg.MaxPriorSentences))

	return b.String()
}

// priorList formats the dedup list, keeping only the most recent max
// entries. Returns "None" when empty.
func priorList(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, s := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}
