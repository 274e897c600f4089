package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duoprofits/internal/model"
)

func TestNewGoalView(t *testing.T) {
	view := newGoalView(model.SavingsGoal{
		Title:         "Viaje",
		TargetAmount:  1000000,
		CurrentAmount: 250000,
	})
	assert.Equal(t, 25.0, view.ProgressPercent)
	assert.Nil(t, view.DaysRemaining, "no target date means no countdown")
}

func TestNewGoalViewWithTargetDate(t *testing.T) {
	future := time.Now().Add(48*time.Hour + time.Hour)
	view := newGoalView(model.SavingsGoal{
		TargetAmount:  100,
		CurrentAmount: 150,
		TargetDate:    &future,
	})
	assert.Equal(t, 100.0, view.ProgressPercent, "progress is clamped")
	require.NotNil(t, view.DaysRemaining)
	assert.Equal(t, 3, *view.DaysRemaining)
}
