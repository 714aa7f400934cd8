package difficulty

import "fmt"

// EncouragementMessage picks a canned message from the current window:
// not enough data yet → a starter, strong accuracy → level-up or
// mastery depending on headroom, weak accuracy → slow down, otherwise
// generic encouragement.
func (e *Engine) EncouragementMessage() string {
	stats := e.RecentStats()

	if stats.QuestionsInWindow < MinEvaluationSize {
		return "Let's get started! 🚀"
	}

	if stats.Accuracy >= LevelUpThreshold {
		if e.CanLevelUp() {
			return fmt.Sprintf("Great job! Keep it up to reach level %d! ⭐", e.level+1)
		}
		return "You're a grammar master! 🎉"
	}

	if stats.Accuracy <= LevelDownThreshold {
		return "Take your time and think it through! 💪"
	}

	return "You're doing well! Keep practicing! 👍"
}
