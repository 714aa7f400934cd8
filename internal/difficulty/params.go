package difficulty

// Parameters describes what sentences at a level look like. The
// sentence picker and (eventually) the authoring generator read these.
type Parameters struct {
	Level                   int
	SentenceLengthMin       int
	SentenceLengthMax       int
	AllowCompoundSubjects   bool
	AllowCompoundPredicates bool
	MaxPrepositionalPhrases int
	AllowSubordinateClauses bool
}

// Configs is the fixed per-level parameter table.
var Configs = map[int]Parameters{
	1: {
		Level:             1,
		SentenceLengthMin: 3,
		SentenceLengthMax: 6,
	},
	2: {
		Level:                   2,
		SentenceLengthMin:       5,
		SentenceLengthMax:       8,
		MaxPrepositionalPhrases: 1,
	},
	3: {
		Level:                   3,
		SentenceLengthMin:       6,
		SentenceLengthMax:       10,
		AllowCompoundSubjects:   true,
		MaxPrepositionalPhrases: 2,
	},
	4: {
		Level:                   4,
		SentenceLengthMin:       8,
		SentenceLengthMax:       12,
		AllowCompoundSubjects:   true,
		AllowCompoundPredicates: true,
		MaxPrepositionalPhrases: 2,
		AllowSubordinateClauses: true,
	},
	5: {
		Level:                   5,
		SentenceLengthMin:       10,
		SentenceLengthMax:       15,
		AllowCompoundSubjects:   true,
		AllowCompoundPredicates: true,
		MaxPrepositionalPhrases: 3,
		AllowSubordinateClauses: true,
	},
}
