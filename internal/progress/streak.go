package progress

// BaseStreakThreshold is the first streak length worth celebrating.
const BaseStreakThreshold = 5

// NextStreakThreshold returns the next streak milestone above the
// current streak length. Milestones run 5/10/15/20, then every 5.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	return ((current / 5) + 1) * 5
}

// IsStreakMilestone reports whether a streak length is a milestone.
func IsStreakMilestone(streak int) bool {
	return streak >= BaseStreakThreshold && streak%5 == 0
}
