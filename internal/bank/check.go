package bank

import (
	"fmt"
	"strings"
)

// Check validates a sentence's annotations. Malformed annotations are
// an authoring defect, so Check runs in tests and in the bank CLI
// command rather than inside the scoring path.
func Check(s Sentence) error {
	if s.ID == "" {
		return fmt.Errorf("sentence has no ID")
	}
	if len(s.Tokens) == 0 {
		return fmt.Errorf("%s: no tokens", s.ID)
	}
	if !tokensMatchText(s.Text, s.Tokens) {
		return fmt.Errorf("%s: tokens %q do not reassemble text %q", s.ID, strings.Join(s.Tokens, " "), s.Text)
	}

	spans := map[string][]int{
		"complete_subject":   s.Spans.CompleteSubject,
		"simple_subject":     s.Spans.SimpleSubject,
		"complete_predicate": s.Spans.CompletePredicate,
		"simple_predicate":   s.Spans.SimplePredicate,
	}
	for name, span := range spans {
		if len(span) == 0 {
			return fmt.Errorf("%s: %s is empty", s.ID, name)
		}
		for _, i := range span {
			if i < 0 || i >= len(s.Tokens) {
				return fmt.Errorf("%s: %s index %d out of range [0,%d)", s.ID, name, i, len(s.Tokens))
			}
		}
	}

	if err := subset(s.Spans.SimpleSubject, s.Spans.CompleteSubject); err != nil {
		return fmt.Errorf("%s: simple_subject ⊄ complete_subject: %w", s.ID, err)
	}
	if err := subset(s.Spans.SimplePredicate, s.Spans.CompletePredicate); err != nil {
		return fmt.Errorf("%s: simple_predicate ⊄ complete_predicate: %w", s.ID, err)
	}
	return nil
}

// CheckAll validates the entire seed bank and reports the first defect.
func CheckAll() error {
	seen := make(map[string]bool, len(sentences))
	for _, s := range sentences {
		if seen[s.ID] {
			return fmt.Errorf("duplicate sentence ID %q", s.ID)
		}
		seen[s.ID] = true
		if err := Check(s); err != nil {
			return err
		}
	}
	return nil
}

func subset(sub, super []int) error {
	member := make(map[int]bool, len(super))
	for _, i := range super {
		member[i] = true
	}
	for _, i := range sub {
		if !member[i] {
			return fmt.Errorf("index %d missing from superset", i)
		}
	}
	return nil
}

// tokensMatchText checks that every token occurs in the text in order.
// Tokenization detaches punctuation, so the joined tokens are not
// character-identical to the text; an ordered scan is enough to catch
// transposed or mistyped tokens.
func tokensMatchText(text string, tokens []string) bool {
	rest := text
	for _, tok := range tokens {
		idx := strings.Index(rest, tok)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(tok):]
	}
	return true
}
