package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("08:00")
	require.NoError(t, err)
	assert.Equal(t, "0 0 8 * * *", spec)

	spec, err = buildDailySpec("23:45")
	require.NoError(t, err)
	assert.Equal(t, "0 45 23 * * *", spec)
}

func TestBuildDailySpecInvalid(t *testing.T) {
	for _, bad := range []string{"", "8", "8:0:0", "24:00", "12:60", "ab:cd"} {
		_, err := buildDailySpec(bad)
		require.Error(t, err, "input %q", bad)
	}
}
