package bank

import "strings"

// punctMarks is the fixed set of single-character punctuation tokens
// that appear in the bank. Includes ASCII hyphen plus em and en dashes.
const punctMarks = `,.;:!?()[]{}'"-—–`

// IsPunct reports whether tok is a punctuation token. Punctuation is
// excluded from all span scoring so a trailing period never changes a
// learner's accuracy.
func IsPunct(tok string) bool {
	return len([]rune(tok)) == 1 && strings.Contains(punctMarks, tok)
}
