package bank

import (
	"fmt"
	"math/rand/v2"
)

// sentences is the static seed bank. Annotation is done by hand at
// authoring time; nothing at runtime derives or edits spans.
var sentences = []Sentence{
	{
		ID:     "s001",
		Text:   "The energetic golden retriever behind the fence barked loudly.",
		Tokens: []string{"The", "energetic", "golden", "retriever", "behind", "the", "fence", "barked", "loudly", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6},
			SimpleSubject:     []int{3},
			CompletePredicate: []int{7, 8, 9},
			SimplePredicate:   []int{7},
		},
		Tags:  []string{"prep_phrase_in_subject", "single_clause", "past_simple"},
		Level: 1,
	},
	{
		ID:     "s002",
		Text:   "Those two students in the back row finished their science project early.",
		Tokens: []string{"Those", "two", "students", "in", "the", "back", "row", "finished", "their", "science", "project", "early", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6},
			SimpleSubject:     []int{2},
			CompletePredicate: []int{7, 8, 9, 10, 11, 12},
			SimplePredicate:   []int{7},
		},
		Tags:  []string{"prep_phrase_in_subject", "object_np_in_predicate"},
		Level: 1,
	},
	{
		ID:     "s003",
		Text:   "My sister and I from New York are visiting our cousins this weekend.",
		Tokens: []string{"My", "sister", "and", "I", "from", "New", "York", "are", "visiting", "our", "cousins", "this", "weekend", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6},
			SimpleSubject:     []int{1, 3},
			CompletePredicate: []int{7, 8, 9, 10, 11, 12, 13},
			SimplePredicate:   []int{7, 8},
		},
		Tags:  []string{"compound_subject", "prep_phrase_in_subject", "progressive_as_predicate"},
		Level: 2,
	},
	{
		ID:     "s004",
		Text:   "The trophies were polished by the coach after practice.",
		Tokens: []string{"The", "trophies", "were", "polished", "by", "the", "coach", "after", "practice", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1},
			SimpleSubject:     []int{1},
			CompletePredicate: []int{2, 3, 4, 5, 6, 7, 8, 9},
			SimplePredicate:   []int{2, 3},
		},
		Tags:  []string{"passive_voice", "two_prep_phrases_in_predicate"},
		Level: 2,
	},
	{
		ID:     "s005",
		Text:   "After the storm, the narrow bridge over the creek remained closed.",
		Tokens: []string{"After", "the", "storm", ",", "the", "narrow", "bridge", "over", "the", "creek", "remained", "closed", "."},
		Spans: Spans{
			CompleteSubject:   []int{4, 5, 6, 7, 8, 9},
			SimpleSubject:     []int{6},
			CompletePredicate: []int{10, 11, 12},
			SimplePredicate:   []int{10},
		},
		Tags:  []string{"intro_prep_phrase", "prep_phrase_in_subject"},
		Level: 2,
	},
	{
		ID:     "s006",
		Text:   "The boy who won the spelling bee smiled proudly.",
		Tokens: []string{"The", "boy", "who", "won", "the", "spelling", "bee", "smiled", "proudly", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6},
			SimpleSubject:     []int{1},
			CompletePredicate: []int{7, 8, 9},
			SimplePredicate:   []int{7},
		},
		Tags:  []string{"relative_clause_in_subject"},
		Level: 2,
	},
	{
		ID:     "s007",
		Text:   "There are several reasons for the delay.",
		Tokens: []string{"There", "are", "several", "reasons", "for", "the", "delay", "."},
		Spans: Spans{
			CompleteSubject:   []int{2, 3},
			SimpleSubject:     []int{3},
			CompletePredicate: []int{1, 4, 5, 6, 7},
			SimplePredicate:   []int{1},
		},
		Tags:  []string{"expletive_there", "prep_phrase_in_predicate"},
		Level: 2,
	},
	{
		ID:     "s008",
		Text:   "The cat stretched and yawned on the windowsill.",
		Tokens: []string{"The", "cat", "stretched", "and", "yawned", "on", "the", "windowsill", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1},
			SimpleSubject:     []int{1},
			CompletePredicate: []int{2, 3, 4, 5, 6, 7, 8},
			SimplePredicate:   []int{2, 3, 4},
		},
		Tags:  []string{"compound_predicate", "prep_phrase_in_predicate"},
		Level: 1,
	},
	{
		ID:     "s009",
		Text:   "The hardworking farmers in the valley harvested the corn yesterday.",
		Tokens: []string{"The", "hardworking", "farmers", "in", "the", "valley", "harvested", "the", "corn", "yesterday", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5},
			SimpleSubject:     []int{2},
			CompletePredicate: []int{6, 7, 8, 9, 10},
			SimplePredicate:   []int{6},
		},
		Tags:  []string{"prep_phrase_in_subject", "time_adverb_in_predicate"},
		Level: 1,
	},
	{
		ID:     "s010",
		Text:   "Our debate team, tired but determined, secured a narrow victory.",
		Tokens: []string{"Our", "debate", "team", ",", "tired", "but", "determined", ",", "secured", "a", "narrow", "victory", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5, 6, 7},
			SimpleSubject:     []int{2},
			CompletePredicate: []int{8, 9, 10, 11, 12},
			SimplePredicate:   []int{8},
		},
		Tags:  []string{"appositive_like_modifier", "adjective_phrase_in_subject"},
		Level: 3,
	},
	{
		ID:     "s011",
		Text:   "Swimming in the cold lake builds endurance.",
		Tokens: []string{"Swimming", "in", "the", "cold", "lake", "builds", "endurance", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4},
			SimpleSubject:     []int{0},
			CompletePredicate: []int{5, 6, 7},
			SimplePredicate:   []int{5},
		},
		Tags:  []string{"gerund_subject", "prep_phrase_attached_to_subject"},
		Level: 3,
	},
	{
		ID:     "s012",
		Text:   "The librarian with the kind smile helped us find the atlas today.",
		Tokens: []string{"The", "librarian", "with", "the", "kind", "smile", "helped", "us", "find", "the", "atlas", "today", "."},
		Spans: Spans{
			CompleteSubject:   []int{0, 1, 2, 3, 4, 5},
			SimpleSubject:     []int{1},
			CompletePredicate: []int{6, 7, 8, 9, 10, 11, 12},
			SimplePredicate:   []int{6, 8},
		},
		Tags:  []string{"object_pronoun", "verb_chain", "time_adverb_in_predicate"},
		Level: 2,
	},
}

// MinLevel and MaxLevel bound the levels present in the bank.
const (
	MinLevel Level = 1
	MaxLevel Level = 3
)

// All returns every sentence in the bank.
func All() []Sentence {
	return sentences
}

// ByID looks up a sentence by its identifier.
func ByID(id string) (Sentence, error) {
	for _, s := range sentences {
		if s.ID == id {
			return s, nil
		}
	}
	return Sentence{}, fmt.Errorf("unknown sentence %q", id)
}

// ByLevel returns all sentences at the given level.
func ByLevel(level Level) []Sentence {
	var out []Sentence
	for _, s := range sentences {
		if s.Level == level {
			out = append(out, s)
		}
	}
	return out
}

// ClampLevel maps an arbitrary difficulty level onto the bank's range.
func ClampLevel(level int) Level {
	if level < int(MinLevel) {
		return MinLevel
	}
	if level > int(MaxLevel) {
		return MaxLevel
	}
	return Level(level)
}

// Random picks a random sentence at the given level, falling back to
// the whole bank if the level has no entries.
func Random(level Level) Sentence {
	pool := ByLevel(level)
	if len(pool) == 0 {
		pool = sentences
	}
	return pool[rand.IntN(len(pool))]
}
