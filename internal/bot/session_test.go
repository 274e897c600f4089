package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"15000", 15000},
		{"$ 15000", 15000},
		{"15000 pesos", 15000},
		{"1500.5", 1500.5},
	}
	for _, tc := range cases {
		got, err := parseAmount(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParseAmountRejects(t *testing.T) {
	for _, bad := range []string{"", "abc", "-5000", "0", "...", "$-"} {
		_, err := parseAmount(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestSessionStorePutGet(t *testing.T) {
	store := newSessionStore(10 * time.Minute)

	_, ok := store.get(1)
	assert.False(t, ok)

	store.put(1, &conversationState{stage: stageType})
	state, ok := store.get(1)
	require.True(t, ok)
	assert.Equal(t, stageType, state.stage)

	store.clear(1)
	_, ok = store.get(1)
	assert.False(t, ok)
}

func TestSessionStoreExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
	store := newSessionStore(10 * time.Minute)
	store.now = func() time.Time { return now }

	store.put(7, &conversationState{stage: stageAmount})

	now = now.Add(9 * time.Minute)
	_, ok := store.get(7)
	assert.True(t, ok, "session should survive within the TTL")

	now = now.Add(2 * time.Minute)
	_, ok = store.get(7)
	assert.False(t, ok, "session should expire past the TTL")

	// An expired session is gone for good, not revived by a later clock.
	now = now.Add(-5 * time.Minute)
	_, ok = store.get(7)
	assert.False(t, ok)
}

func TestSessionStorePutRefreshesExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
	store := newSessionStore(10 * time.Minute)
	store.now = func() time.Time { return now }

	store.put(3, &conversationState{stage: stageType})

	now = now.Add(8 * time.Minute)
	state, ok := store.get(3)
	require.True(t, ok)
	state.stage = stagePerson
	store.put(3, state)

	now = now.Add(8 * time.Minute)
	state, ok = store.get(3)
	require.True(t, ok, "put should reset the TTL clock")
	assert.Equal(t, stagePerson, state.stage)
}
