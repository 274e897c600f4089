package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"half way", 500_000, 1_000_000, 50},
		{"exactly reached", 1_000_000, 1_000_000, 100},
		{"over target clamps to 100", 1_200_000, 1_000_000, 100},
		{"zero target", 500_000, 0, 0},
		{"negative target", 500_000, -10, 0},
		{"nothing saved", 0, 1_000_000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, GoalProgress(tc.current, tc.target), 1e-9)
		})
	}
}

func TestGoalDaysRemaining(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	in10 := now.AddDate(0, 0, 10)
	days, ok := GoalDaysRemaining(&in10, now)
	require.True(t, ok)
	require.Equal(t, 10, days)

	// partial days round up
	tomorrowMorning := now.Add(30 * time.Hour)
	days, ok = GoalDaysRemaining(&tomorrowMorning, now)
	require.True(t, ok)
	require.Equal(t, 2, days)

	overdue := now.AddDate(0, 0, -3)
	days, ok = GoalDaysRemaining(&overdue, now)
	require.True(t, ok)
	require.Equal(t, -3, days)

	days, ok = GoalDaysRemaining(nil, now)
	require.False(t, ok)
	require.Zero(t, days)
}
