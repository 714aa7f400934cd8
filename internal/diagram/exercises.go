package diagram

// Seed exercises, one diagram per sentence. Layout coordinates are
// hints for renderers; validation reads only slots and constraints.

func slot(path string) SlotID { return SlotID{Path: path} }

func baseSpineNodes() []Node {
	return []Node{
		{ID: "spine", Type: NodeSpine, X: 60, Y: 140, W: 320},
		{ID: "divider", Type: NodeBar, X: 200, Y: 108, H: 64},
		{ID: "slot-subject", Type: NodeSlot, X: 80, Y: 108, W: 100, H: 46, Slot: slot("spine.subject")},
		{ID: "slot-verb", Type: NodeSlot, X: 220, Y: 108, W: 100, H: 46, Slot: slot("spine.verb")},
	}
}

func complementNodes() []Node {
	return []Node{
		{ID: "divider-complement", Type: NodeBar, X: 320, Y: 118, H: 54},
		{ID: "slot-complement", Type: NodeSlot, X: 340, Y: 108, W: 90, H: 46, Slot: slot("spine.complement")},
	}
}

func subjectModifierNodes() []Node {
	return []Node{
		{ID: "subject-mod-line-0", Type: NodeLine, X: 120, Y: 154, W: 92, H: 192},
		{ID: "subject-mod-slot-0", Type: NodeSlot, X: 70, Y: 188, W: 90, H: 40, Slot: slot("spine.subject.mod[0]")},
		{ID: "subject-mod-line-1", Type: NodeLine, X: 150, Y: 160, W: 120, H: 205},
		{ID: "subject-mod-slot-1", Type: NodeSlot, X: 110, Y: 202, W: 90, H: 40, Slot: slot("spine.subject.mod[1]")},
	}
}

func verbModifierNodes() []Node {
	return []Node{
		{ID: "verb-mod-line-0", Type: NodeLine, X: 260, Y: 154, W: 300, H: 194},
		{ID: "verb-mod-slot-0", Type: NodeSlot, X: 300, Y: 188, W: 100, H: 40, Slot: slot("spine.verb.mod[0]")},
	}
}

func baseConstraints() []Constraint {
	return []Constraint{
		{Slot: slot("spine.subject"), Accepts: []Role{RoleSubject}},
		{Slot: slot("spine.verb"), Accepts: []Role{RoleVerb}},
	}
}

func complementConstraints() []Constraint {
	return []Constraint{
		{Slot: slot("spine.complement"), Accepts: []Role{RoleDirectObject, RolePredicateAdjective, RolePredicateNoun}},
	}
}

func subjectModifierConstraints() []Constraint {
	return []Constraint{
		{Slot: slot("spine.subject.mod[0]"), Accepts: []Role{RoleModifier, RoleSubjectModifier}},
		{Slot: slot("spine.subject.mod[1]"), Accepts: []Role{RoleModifier, RoleSubjectModifier}},
	}
}

func verbModifierConstraints() []Constraint {
	return []Constraint{
		{Slot: slot("spine.verb.mod[0]"), Accepts: []Role{RoleModifier, RoleVerbModifier}},
	}
}

func concatNodes(groups ...[]Node) []Node {
	var out []Node
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func concatConstraints(groups ...[]Constraint) []Constraint {
	var out []Constraint
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// simpleExercise builds a two-token subject/verb exercise.
func simpleExercise(id, sentence, subjID, subjText, verbID, verbText string) Exercise {
	return Exercise{
		ID:       id,
		Level:    1,
		Sentence: sentence,
		Tokens: []Token{
			{ID: subjID, Text: subjText, POS: []PartOfSpeech{POSNoun}},
			{ID: verbID, Text: verbText, POS: []PartOfSpeech{POSVerb}},
		},
		Roles: map[string][]Role{
			subjID: {RoleSubject},
			verbID: {RoleVerb},
		},
		Diagram: Spec{Nodes: baseSpineNodes(), Constraints: baseConstraints()},
		Answer: GroundTruthMapping{Placements: []Placement{
			{TokenID: subjID, Slot: slot("spine.subject")},
			{TokenID: verbID, Slot: slot("spine.verb")},
		}},
	}
}

// complementExercise builds a three-token exercise with a complement
// on the main line (direct object, predicate noun, or predicate
// adjective).
func complementExercise(id, sentence string, tokens [3]Token, complementRole Role) Exercise {
	return Exercise{
		ID:       id,
		Level:    2,
		Sentence: sentence,
		Tokens:   tokens[:],
		Roles: map[string][]Role{
			tokens[0].ID: {RoleSubject},
			tokens[1].ID: {RoleVerb},
			tokens[2].ID: {complementRole},
		},
		Diagram: Spec{
			Nodes:       concatNodes(baseSpineNodes(), complementNodes()),
			Constraints: concatConstraints(baseConstraints(), complementConstraints()),
		},
		Answer: GroundTruthMapping{Placements: []Placement{
			{TokenID: tokens[0].ID, Slot: slot("spine.subject")},
			{TokenID: tokens[1].ID, Slot: slot("spine.verb")},
			{TokenID: tokens[2].ID, Slot: slot("spine.complement")},
		}},
	}
}

var levels = []LevelInfo{
	{ID: 1, Title: "Level 1", Description: "Identify the simple subject and simple predicate (main verb).", Example: "Birds | sing"},
	{ID: 2, Title: "Level 2", Description: "Add direct objects or predicate adjectives/nouns to the main line.", Example: "Eleanor | reads | books"},
	{ID: 3, Title: "Level 3", Description: "Place modifiers like adjectives and adverbs on diagonal lines.", Example: "The quick fox | jumped"},
}

var exercises = buildExercises()

func buildExercises() []Exercise {
	birdsSing := simpleExercise("l1-birds-sing", "Birds sing.", "birds", "Birds", "sing", "sing")
	birdsSing.TeachingNotes = []string{"Point out that plural subjects still use the base subject slot."}

	copperValuable := complementExercise("l2-copper-valuable", "Copper is valuable.", [3]Token{
		{ID: "copper", Text: "Copper", POS: []PartOfSpeech{POSNoun}},
		{ID: "is", Text: "is", POS: []PartOfSpeech{POSVerb, POSAux}},
		{ID: "valuable", Text: "valuable", POS: []PartOfSpeech{POSAdjective}},
	}, RolePredicateAdjective)

	friendsHelpers := complementExercise("l2-friends-helpers", "Friends are helpers.", [3]Token{
		{ID: "friends", Text: "Friends", POS: []PartOfSpeech{POSNoun}},
		{ID: "are", Text: "are", POS: []PartOfSpeech{POSVerb}},
		{ID: "helpers", Text: "helpers", POS: []PartOfSpeech{POSNoun}},
	}, RolePredicateNoun)
	friendsHelpers.AcceptedVariants = []GroundTruthMapping{
		{Placements: []Placement{
			{TokenID: "friends", Slot: slot("spine.subject")},
			{TokenID: "are", Slot: slot("spine.verb")},
			{TokenID: "helpers", Slot: slot("spine.complement")},
		}},
	}

	quickFox := Exercise{
		ID:       "l3-quick-fox-jumped",
		Level:    3,
		Sentence: "The quick fox jumped.",
		Tokens: []Token{
			{ID: "the", Text: "The", POS: []PartOfSpeech{POSArticle}},
			{ID: "quick", Text: "quick", POS: []PartOfSpeech{POSAdjective}},
			{ID: "fox", Text: "fox", POS: []PartOfSpeech{POSNoun}},
			{ID: "jumped", Text: "jumped", POS: []PartOfSpeech{POSVerb}},
		},
		Roles: map[string][]Role{
			"the":    {RoleModifier, RoleSubjectModifier},
			"quick":  {RoleModifier, RoleSubjectModifier},
			"fox":    {RoleSubject},
			"jumped": {RoleVerb},
		},
		Diagram: Spec{
			Nodes:       concatNodes(baseSpineNodes(), subjectModifierNodes()),
			Constraints: concatConstraints(baseConstraints(), subjectModifierConstraints()),
		},
		Answer: GroundTruthMapping{Placements: []Placement{
			{TokenID: "fox", Slot: slot("spine.subject")},
			{TokenID: "jumped", Slot: slot("spine.verb")},
			{TokenID: "the", Slot: slot("spine.subject.mod[0]")},
			{TokenID: "quick", Slot: slot("spine.subject.mod[1]")},
		}},
		// Modifier ordering under the subject is interchangeable.
		AcceptedVariants: []GroundTruthMapping{
			{Placements: []Placement{
				{TokenID: "fox", Slot: slot("spine.subject")},
				{TokenID: "jumped", Slot: slot("spine.verb")},
				{TokenID: "quick", Slot: slot("spine.subject.mod[0]")},
				{TokenID: "the", Slot: slot("spine.subject.mod[1]")},
			}},
		},
	}

	carefullyWrites := Exercise{
		ID:       "l3-eleanor-carefully-writes",
		Level:    3,
		Sentence: "Eleanor carefully writes.",
		Tokens: []Token{
			{ID: "eleanor", Text: "Eleanor", POS: []PartOfSpeech{POSNoun}},
			{ID: "carefully", Text: "carefully", POS: []PartOfSpeech{POSAdverb}},
			{ID: "writes", Text: "writes", POS: []PartOfSpeech{POSVerb}},
		},
		Roles: map[string][]Role{
			"eleanor":   {RoleSubject},
			"carefully": {RoleModifier, RoleVerbModifier},
			"writes":    {RoleVerb},
		},
		Diagram: Spec{
			Nodes:       concatNodes(baseSpineNodes(), verbModifierNodes()),
			Constraints: concatConstraints(baseConstraints(), verbModifierConstraints()),
		},
		Answer: GroundTruthMapping{Placements: []Placement{
			{TokenID: "eleanor", Slot: slot("spine.subject")},
			{TokenID: "writes", Slot: slot("spine.verb")},
			{TokenID: "carefully", Slot: slot("spine.verb.mod[0]")},
		}},
	}

	brightFlowers := Exercise{
		ID:       "l3-bright-flowers-bloom",
		Level:    3,
		Sentence: "Bright flowers bloom.",
		Tokens: []Token{
			{ID: "bright", Text: "Bright", POS: []PartOfSpeech{POSAdjective}},
			{ID: "flowers", Text: "flowers", POS: []PartOfSpeech{POSNoun}},
			{ID: "bloom", Text: "bloom", POS: []PartOfSpeech{POSVerb}},
		},
		Roles: map[string][]Role{
			"bright":  {RoleModifier, RoleSubjectModifier},
			"flowers": {RoleSubject},
			"bloom":   {RoleVerb},
		},
		Diagram: Spec{
			Nodes:       concatNodes(baseSpineNodes(), subjectModifierNodes()),
			Constraints: concatConstraints(baseConstraints(), subjectModifierConstraints()),
		},
		Answer: GroundTruthMapping{Placements: []Placement{
			{TokenID: "flowers", Slot: slot("spine.subject")},
			{TokenID: "bloom", Slot: slot("spine.verb")},
			{TokenID: "bright", Slot: slot("spine.subject.mod[0]")},
		}},
	}

	smallBirds := Exercise{
		ID:       "l3-small-birds-chirped-loudly",
		Level:    3,
		Sentence: "The small birds chirped loudly.",
		Tokens: []Token{
			{ID: "the", Text: "The", POS: []PartOfSpeech{POSArticle}},
			{ID: "small", Text: "small", POS: []PartOfSpeech{POSAdjective}},
			{ID: "birds", Text: "birds", POS: []PartOfSpeech{POSNoun}},
			{ID: "chirped", Text: "chirped", POS: []PartOfSpeech{POSVerb}},
			{ID: "loudly", Text: "loudly", POS: []PartOfSpeech{POSAdverb}},
		},
		Roles: map[string][]Role{
			"the":     {RoleModifier, RoleSubjectModifier},
			"small":   {RoleModifier, RoleSubjectModifier},
			"birds":   {RoleSubject},
			"chirped": {RoleVerb},
			"loudly":  {RoleModifier, RoleVerbModifier},
		},
		Diagram: Spec{
			Nodes:       concatNodes(baseSpineNodes(), subjectModifierNodes(), verbModifierNodes()),
			Constraints: concatConstraints(baseConstraints(), subjectModifierConstraints(), verbModifierConstraints()),
		},
		Answer: GroundTruthMapping{Placements: []Placement{
			{TokenID: "birds", Slot: slot("spine.subject")},
			{TokenID: "chirped", Slot: slot("spine.verb")},
			{TokenID: "the", Slot: slot("spine.subject.mod[0]")},
			{TokenID: "small", Slot: slot("spine.subject.mod[1]")},
			{TokenID: "loudly", Slot: slot("spine.verb.mod[0]")},
		}},
		AcceptedVariants: []GroundTruthMapping{
			{Placements: []Placement{
				{TokenID: "birds", Slot: slot("spine.subject")},
				{TokenID: "chirped", Slot: slot("spine.verb")},
				{TokenID: "small", Slot: slot("spine.subject.mod[0]")},
				{TokenID: "the", Slot: slot("spine.subject.mod[1]")},
				{TokenID: "loudly", Slot: slot("spine.verb.mod[0]")},
			}},
		},
	}

	return []Exercise{
		birdsSing,
		simpleExercise("l1-eleanor-reads", "Eleanor reads.", "eleanor", "Eleanor", "reads", "reads"),
		simpleExercise("l1-children-laugh", "Children laugh.", "children", "Children", "laugh", "laugh"),
		simpleExercise("l1-waves-crash", "Waves crash.", "waves", "Waves", "crash", "crash"),
		complementExercise("l2-eleanor-reads-books", "Eleanor reads books.", [3]Token{
			{ID: "eleanor", Text: "Eleanor", POS: []PartOfSpeech{POSNoun}},
			{ID: "reads", Text: "reads", POS: []PartOfSpeech{POSVerb}},
			{ID: "books", Text: "books", POS: []PartOfSpeech{POSNoun}},
		}, RoleDirectObject),
		copperValuable,
		complementExercise("l2-dogs-chase-cats", "Dogs chase cats.", [3]Token{
			{ID: "dogs", Text: "Dogs", POS: []PartOfSpeech{POSNoun}},
			{ID: "chase", Text: "chase", POS: []PartOfSpeech{POSVerb}},
			{ID: "cats", Text: "cats", POS: []PartOfSpeech{POSNoun}},
		}, RoleDirectObject),
		friendsHelpers,
		quickFox,
		carefullyWrites,
		brightFlowers,
		smallBirds,
	}
}

// Levels returns menu descriptions for the diagram difficulty bands.
func Levels() []LevelInfo {
	return levels
}

// Exercises returns every seeded exercise.
func Exercises() []Exercise {
	return exercises
}

// ExercisesByLevel filters the seed set by level.
func ExercisesByLevel(level int) []Exercise {
	var out []Exercise
	for _, ex := range exercises {
		if ex.Level == level {
			out = append(out, ex)
		}
	}
	return out
}

// ExerciseByID looks up a seeded exercise.
func ExerciseByID(id string) (Exercise, bool) {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
