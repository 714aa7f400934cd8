// Package difficulty adjusts a discrete 1-5 level from a sliding
// window of recent right/wrong outcomes.
package difficulty

// Tuning constants for the sliding-window classifier.
const (
	MinLevel = 1
	MaxLevel = 5

	// WindowSize bounds the trailing outcome window.
	WindowSize = 5

	// MinEvaluationSize is how many outcomes must accumulate before
	// the first adjustment is considered.
	MinEvaluationSize = 3

	// LevelUpThreshold and LevelDownThreshold are window accuracies
	// that trigger a level change.
	LevelUpThreshold   = 0.8
	LevelDownThreshold = 0.4
)

// Direction reports which way a level change went.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Adjustment is the outcome of recording one answer.
type Adjustment struct {
	NewLevel     int
	LevelChanged bool
	Direction    Direction // empty when LevelChanged is false
}

// Stats summarizes the current window.
type Stats struct {
	QuestionsInWindow        int
	CorrectCount             int
	Accuracy                 float64
	QuestionsUntilEvaluation int
}

// State is an opaque snapshot for persistence. The engine never
// persists itself; callers export and restore explicitly.
type State struct {
	Level         int    `json:"level"`
	RecentResults []bool `json:"recentResults"`
}

// Engine tracks the learner's level. One instance per interactive
// session; calls must be serialized by the caller.
type Engine struct {
	level  int
	window []bool
}

// New creates an engine at the given starting level, clamped to [1,5].
func New(startingLevel int) *Engine {
	return &Engine{level: clamp(startingLevel)}
}

// RecordAnswer appends an outcome to the window (evicting the oldest
// beyond WindowSize) and, once the window holds MinEvaluationSize
// entries, evaluates a level adjustment. The window is cleared after
// any level change and retained otherwise.
func (e *Engine) RecordAnswer(isCorrect bool) Adjustment {
	previous := e.level

	e.window = append(e.window, isCorrect)
	if len(e.window) > WindowSize {
		e.window = e.window[1:]
	}

	if len(e.window) >= MinEvaluationSize {
		e.adjust()
	}

	adj := Adjustment{NewLevel: e.level, LevelChanged: e.level != previous}
	if adj.LevelChanged {
		if e.level > previous {
			adj.Direction = DirectionUp
		} else {
			adj.Direction = DirectionDown
		}
	}
	return adj
}

func (e *Engine) adjust() {
	accuracy := e.accuracy()
	switch {
	case accuracy >= LevelUpThreshold && e.level < MaxLevel:
		e.level++
		e.window = nil
	case accuracy <= LevelDownThreshold && e.level > MinLevel:
		e.level--
		e.window = nil
	}
}

// CurrentLevel returns the level, always in [1,5].
func (e *Engine) CurrentLevel() int {
	return e.level
}

// SetLevel overrides the level (manual/parent override, not part of
// the adaptive loop). Clamps to [1,5] and clears the window.
func (e *Engine) SetLevel(level int) {
	e.level = clamp(level)
	e.window = nil
}

// Params returns the sentence-shape parameters for the current level.
func (e *Engine) Params() Parameters {
	return Configs[e.level]
}

// RecentStats summarizes the current window.
func (e *Engine) RecentStats() Stats {
	correct := 0
	for _, ok := range e.window {
		if ok {
			correct++
		}
	}
	s := Stats{
		QuestionsInWindow: len(e.window),
		CorrectCount:      correct,
	}
	if len(e.window) > 0 {
		s.Accuracy = float64(correct) / float64(len(e.window))
	}
	s.QuestionsUntilEvaluation = max(0, MinEvaluationSize-len(e.window))
	return s
}

// CanLevelUp reports whether a level increase is possible.
func (e *Engine) CanLevelUp() bool {
	return e.level < MaxLevel
}

// CanLevelDown reports whether a level decrease is possible.
func (e *Engine) CanLevelDown() bool {
	return e.level > MinLevel
}

// State exports a snapshot for persistence.
func (e *Engine) State() State {
	return State{
		Level:         e.level,
		RecentResults: append([]bool{}, e.window...),
	}
}

// SetState restores a snapshot produced by State. Snapshots may have
// been hand-edited on disk, so the level is clamped and the window is
// trimmed to its newest WindowSize entries.
func (e *Engine) SetState(s State) {
	e.level = clamp(s.Level)
	results := s.RecentResults
	if len(results) > WindowSize {
		results = results[len(results)-WindowSize:]
	}
	e.window = append([]bool{}, results...)
}

func (e *Engine) accuracy() float64 {
	if len(e.window) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range e.window {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(e.window))
}

func clamp(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
