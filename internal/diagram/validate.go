package diagram

import "fmt"

// Result reports whether a placement list matches a canonical mapping,
// and on mismatch carries the diagnostic diffs and a single tip.
type Result struct {
	Correct bool
	Missing []Placement
	Extras  []Placement
	Tips    []string
}

// Options carries the exercise data the validator needs to phrase tips.
type Options struct {
	Tokens []Token
	Roles  map[string][]Role
}

// tipRule is one entry of the tip-selection policy: the first rule
// whose predicate yields a tip wins. Keeping the order explicit makes
// the priority testable instead of buried in branching.
type tipRule struct {
	name string
	tip  func(d diagnostics) (string, bool)
}

type diagnostics struct {
	missing  []Placement
	extras   []Placement
	expected map[string]string // tokenID → canonical slot path
	tokens   map[string]*Token
	roles    map[string][]Role
}

// tipPolicy is evaluated top to bottom; exactly one tip is emitted per
// incorrect submission when any rule matches.
var tipPolicy = []tipRule{
	{name: "misplaced", tip: func(d diagnostics) (string, bool) {
		// A genuinely misplaced token: it sits in the wrong slot but
		// does have a canonical home.
		for _, p := range d.extras {
			if _, ok := d.expected[p.TokenID]; ok {
				return describePlacement(d.tokens[p.TokenID], d.primaryRole(p.TokenID)), true
			}
		}
		return "", false
	}},
	{name: "missing", tip: func(d diagnostics) (string, bool) {
		if len(d.missing) == 0 {
			return "", false
		}
		p := d.missing[0]
		return describePlacement(d.tokens[p.TokenID], d.primaryRole(p.TokenID)), true
	}},
	{name: "extraneous", tip: func(d diagnostics) (string, bool) {
		if len(d.extras) == 0 {
			return "", false
		}
		text := "This word"
		if tok := d.tokens[d.extras[0].TokenID]; tok != nil {
			text = tok.Text
		}
		return fmt.Sprintf("%q looks out of place. Double-check the slot label.", text), true
	}},
}

func (d diagnostics) primaryRole(tokenID string) Role {
	if roles := d.roles[tokenID]; len(roles) > 0 {
		return roles[0]
	}
	return ""
}

// Validate checks placements against the canonical answer and its
// accepted variants. An exact match against any canonical mapping is
// correct; otherwise diagnostics are computed against the primary
// answer only, so hint text after an incorrect-but-variant-close
// attempt deliberately references the primary ordering.
//
// Pure function; safe for concurrent callers.
func Validate(placements []Placement, answer GroundTruthMapping, variants []GroundTruthMapping, opts Options) Result {
	canonical := append([]GroundTruthMapping{answer}, variants...)
	for _, mapping := range canonical {
		if mappingMatches(placements, mapping) {
			return Result{Correct: true, Missing: []Placement{}, Extras: []Placement{}, Tips: []string{}}
		}
	}

	expected := make(map[string]string, len(answer.Placements))
	for _, p := range answer.Placements {
		expected[p.TokenID] = p.Slot.Path
	}
	placed := make(map[string]string, len(placements))
	for _, p := range placements {
		placed[p.TokenID] = p.Slot.Path
	}

	// Missing and extras are computed independently: a token in the
	// wrong slot shows up in both, once with its canonical slot and
	// once with its actual slot.
	missing := make([]Placement, 0)
	for _, p := range answer.Placements {
		if placed[p.TokenID] != p.Slot.Path {
			missing = append(missing, p)
		}
	}
	extras := make([]Placement, 0)
	for _, p := range placements {
		slot, ok := expected[p.TokenID]
		if !ok || slot != p.Slot.Path {
			extras = append(extras, p)
		}
	}

	d := diagnostics{
		missing:  missing,
		extras:   extras,
		expected: expected,
		tokens:   tokenIndex(opts.Tokens),
		roles:    opts.Roles,
	}

	tips := make([]string, 0, 1)
	for _, rule := range tipPolicy {
		if tip, ok := rule.tip(d); ok {
			tips = append(tips, tip)
			break
		}
	}

	return Result{Correct: false, Missing: missing, Extras: extras, Tips: tips}
}

// mappingMatches reports placement-set equality with a canonical
// mapping: same cardinality and every (tokenID, slot path) pair present.
func mappingMatches(placements []Placement, mapping GroundTruthMapping) bool {
	if len(placements) != len(mapping.Placements) {
		return false
	}
	keys := make(map[string]bool, len(mapping.Placements))
	for _, p := range mapping.Placements {
		keys[placementKey(p)] = true
	}
	for _, p := range placements {
		if !keys[placementKey(p)] {
			return false
		}
	}
	return true
}

func placementKey(p Placement) string {
	return p.TokenID + "::" + p.Slot.Path
}

func tokenIndex(tokens []Token) map[string]*Token {
	m := make(map[string]*Token, len(tokens))
	for i := range tokens {
		m[tokens[i].ID] = &tokens[i]
	}
	return m
}
