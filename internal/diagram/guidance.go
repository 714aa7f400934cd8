package diagram

import (
	"fmt"
	"strings"
	"unicode"
)

// roleGuidance states where on the diagram each grammatical role
// belongs. Tip text interpolates the literal token text after the
// role's line of prose.
var roleGuidance = map[Role]string{
	RoleSubject:            "Subjects sit on the left side of the main line.",
	RoleVerb:               "The main verb belongs on the right side of the vertical bar.",
	RoleDirectObject:       "Direct objects continue the main line to the right of the verb.",
	RoleIndirectObject:     "Indirect objects sit on a short slanted line under the verb.",
	RolePredicateNoun:      "Predicate nouns rename the subject and share the main line after a linking verb.",
	RolePredicateAdjective: "Predicate adjectives describe the subject and follow linking verbs on the main line.",
	RoleModifier:           "Modifiers lean diagonally off the word they describe.",
	RoleConjunction:        "Conjunctions connect similar parts with a dotted line.",
	RoleSubjectModifier:    "Adjectives and articles lean below the subject they describe.",
	RoleVerbModifier:       "Adverbs lean below the verb they modify.",
}

// describePlacement builds a tip for a token that belongs somewhere
// else on the diagram. The role may be unknown when the exercise data
// assigns none.
func describePlacement(token *Token, role Role) string {
	if token == nil {
		return "Check the placement again."
	}
	guidance, ok := roleGuidance[role]
	if !ok {
		return fmt.Sprintf("%q needs to match its role on the diagram.", token.Text)
	}
	return fmt.Sprintf("%s Try placing %q in the %s slot.", guidance, token.Text, roleLabel(role))
}

// roleLabel spells out a camelCase role name as lowercase prose,
// e.g. directObject → "direct object".
func roleLabel(role Role) string {
	var b strings.Builder
	for _, r := range string(role) {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
