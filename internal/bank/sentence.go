package bank

// Level is a sentence difficulty band. The bank covers 1-3; the
// difficulty engine's 1-5 scale is clamped onto this range when
// picking sentences.
type Level int

// Spans labels the subject and predicate of a sentence as sets of
// token indices. Index sets are stored as sorted slices; membership
// is what matters, order is only kept for readability of the seed data.
type Spans struct {
	CompleteSubject   []int
	SimpleSubject     []int
	CompletePredicate []int
	SimplePredicate   []int
}

// Sentence is a pre-annotated practice sentence. Sentences are defined
// at build time and never mutated at runtime.
type Sentence struct {
	ID     string
	Text   string
	Tokens []string
	Spans  Spans
	Tags   []string
	Level  Level
}

// SpanText reconstructs the substring covered by the given index set,
// preserving token order.
func (s Sentence) SpanText(indices []int) string {
	member := make(map[int]bool, len(indices))
	for _, i := range indices {
		member[i] = true
	}
	out := ""
	for i, tok := range s.Tokens {
		if !member[i] {
			continue
		}
		if out != "" {
			out += " "
		}
		out += tok
	}
	return out
}
