// Package grading scores a learner's subject/predicate token selection
// against a sentence's annotated spans using Intersection-over-Union.
package grading

import "github.com/devika/grammaroll/internal/bank"

// PassThreshold is the minimum per-span IoU counted as correct. It
// tolerates one stray boundary token on longer spans.
const PassThreshold = 0.8

// Learner tips, emitted in a fixed order when a span misses the
// threshold or the selection crosses the main verb.
const (
	tipSubject    = "Keep every word that tells more about the subject, including attached prepositional or relative clauses."
	tipPredicate  = "The complete predicate begins at the main verb and includes its objects, complements, and modifiers."
	tipVerbanchor = "Find the main verb first; the subject is before it, and the predicate begins with it."
)

// Selection is the learner's chosen token indices for both spans.
// Order is irrelevant and duplicates are ignored.
type Selection struct {
	CompleteSubject   []int
	CompletePredicate []int
}

// Request identifies the sentence and carries the learner's selection.
type Request struct {
	SentenceID string
	Student    Selection
}

// Correctness holds the per-span IoU scores, each in [0,1].
type Correctness struct {
	CompleteSubject   float64
	CompletePredicate float64
}

// Split is the canonical sentence division rendered as text.
type Split struct {
	Subject   string
	Predicate string
}

// Response is the outcome of grading one submission. It is recomputed
// fresh per submission and never stored by this package.
type Response struct {
	Correctness Correctness
	IsCorrect   bool
	Answer      bank.Spans
	Tips        []string
	PrettySplit Split
}

// Grade scores a learner selection against the sentence's annotated
// spans. Pure function; safe for concurrent callers.
func Grade(req Request, s bank.Sentence) Response {
	ans := s.Spans

	// Punctuation never counts for or against the learner.
	sSub := dropPunct(req.Student.CompleteSubject, s.Tokens)
	sPred := dropPunct(req.Student.CompletePredicate, s.Tokens)
	aSub := dropPunct(ans.CompleteSubject, s.Tokens)
	aPred := dropPunct(ans.CompletePredicate, s.Tokens)

	iSub := IoU(sSub, aSub)
	iPred := IoU(sPred, aPred)

	var tips []string
	if iSub < PassThreshold {
		tips = append(tips, tipSubject)
	}
	if iPred < PassThreshold {
		tips = append(tips, tipPredicate)
	}
	if crossesVerb(sSub, sPred, ans) {
		tips = append(tips, tipVerbanchor)
	}

	return Response{
		Correctness: Correctness{
			CompleteSubject:   iSub,
			CompletePredicate: iPred,
		},
		IsCorrect: iSub >= PassThreshold && iPred >= PassThreshold,
		Answer:    ans,
		Tips:      tips,
		PrettySplit: Split{
			Subject:   s.SpanText(ans.CompleteSubject),
			Predicate: s.SpanText(ans.CompletePredicate),
		},
	}
}

// IoU computes |a ∩ b| / |a ∪ b| over index sets. An empty union
// scores 0, not 1: selecting nothing is graded as 0%, never as
// vacuously correct.
func IoU(a, b []int) float64 {
	union := make(map[int]bool, len(a)+len(b))
	setA := make(map[int]bool, len(a))
	for _, i := range a {
		setA[i] = true
		union[i] = true
	}
	inter := 0
	setB := make(map[int]bool, len(b))
	for _, i := range b {
		if setB[i] {
			continue
		}
		setB[i] = true
		union[i] = true
		if setA[i] {
			inter++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(inter) / float64(len(union))
}

// crossesVerb reports whether the selection straddles the main verb:
// a subject index inside the simple predicate, or a predicate index
// inside the simple subject.
func crossesVerb(sSub, sPred []int, ans bank.Spans) bool {
	return intersects(sSub, ans.SimplePredicate) || intersects(sPred, ans.SimpleSubject)
}

func intersects(a, b []int) bool {
	member := make(map[int]bool, len(b))
	for _, i := range b {
		member[i] = true
	}
	for _, i := range a {
		if member[i] {
			return true
		}
	}
	return false
}

// dropPunct removes indices that point at punctuation tokens.
// Out-of-range indices are kept as-is; they are only ever compared as
// set members, never dereferenced.
func dropPunct(indices []int, tokens []string) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(tokens) && bank.IsPunct(tokens[i]) {
			continue
		}
		out = append(out, i)
	}
	return out
}
