// Package diagram models Reed–Kellogg sentence-diagram exercises and
// validates a learner's token-to-slot placements.
package diagram

// PartOfSpeech tags a token for the tray UI. Validation only reads
// roles, not POS.
type PartOfSpeech string

const (
	POSNoun        PartOfSpeech = "noun"
	POSPronoun     PartOfSpeech = "pronoun"
	POSVerb        PartOfSpeech = "verb"
	POSAdjective   PartOfSpeech = "adjective"
	POSAdverb      PartOfSpeech = "adverb"
	POSPreposition PartOfSpeech = "preposition"
	POSConjunction PartOfSpeech = "conjunction"
	POSArticle     PartOfSpeech = "article"
	POSAux         PartOfSpeech = "aux"
)

// Role is the grammatical function a token plays in the diagram.
type Role string

const (
	RoleSubject            Role = "subject"
	RoleVerb               Role = "verb"
	RoleDirectObject       Role = "directObject"
	RoleIndirectObject     Role = "indirectObject"
	RolePredicateNoun      Role = "predicateNoun"
	RolePredicateAdjective Role = "predicateAdjective"
	RoleModifier           Role = "modifier"
	RoleConjunction        Role = "conjunction"
	RoleSubjectModifier    Role = "subjectModifier"
	RoleVerbModifier       Role = "verbModifier"
)

// Token is a draggable word in an exercise.
type Token struct {
	ID   string
	Text string
	POS  []PartOfSpeech
}

// SlotID identifies a diagram slot by an opaque path, unique within an
// exercise (e.g. "spine.subject.mod[1]").
type SlotID struct {
	Path string
}

// NodeType distinguishes the visual elements of a diagram layout.
// Only slot nodes matter to validation; the rest are drawing hints for
// whatever renders the diagram.
type NodeType string

const (
	NodeSpine NodeType = "spine"
	NodeBar   NodeType = "bar"
	NodeLine  NodeType = "line"
	NodeSlot  NodeType = "slot"
	NodeJoin  NodeType = "join"
)

// Node is one layout element. Slot nodes carry a SlotID.
type Node struct {
	ID   string
	Type NodeType
	X, Y int
	W, H int
	Slot SlotID
}

// Constraint lists the roles a slot accepts. Any one matching role on
// the token is sufficient.
type Constraint struct {
	Slot    SlotID
	Accepts []Role
}

// Spec is a diagram layout plus its slot constraints.
type Spec struct {
	Nodes       []Node
	Constraints []Constraint
}

// Placement maps one token onto one slot. Placement lists are owned by
// the caller; this package only reads them.
type Placement struct {
	TokenID string
	Slot    SlotID
}

// GroundTruthMapping is one fully valid set of placements.
type GroundTruthMapping struct {
	Placements []Placement
}

// Exercise is a complete diagramming problem. Static, defined in the
// seed data, never mutated at runtime.
type Exercise struct {
	ID               string
	Level            int
	Sentence         string
	Tokens           []Token
	Roles            map[string][]Role
	Diagram          Spec
	Answer           GroundTruthMapping
	AcceptedVariants []GroundTruthMapping
	TeachingNotes    []string
}

// LevelInfo describes one difficulty band for menus.
type LevelInfo struct {
	ID          int
	Title       string
	Description string
	Example     string
}
