package stats

import (
	"math"
	"time"
)

// GoalProgress is the saved share of a goal as a percentage, clamped to 100.
// A non-positive target yields 0 so callers never divide by zero.
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	progress := current / target * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// GoalDaysRemaining counts the days left until the goal's target date,
// rounded up. Negative means overdue. A nil target date reports ok=false:
// the goal has no deadline, which is not the same as zero days left.
func GoalDaysRemaining(targetDate *time.Time, now time.Time) (days int, ok bool) {
	if targetDate == nil {
		return 0, false
	}
	diff := targetDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), true
}
