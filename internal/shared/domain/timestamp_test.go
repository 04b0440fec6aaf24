package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_Layouts(t *testing.T) {
	want := time.Date(2023, 3, 1, 10, 30, 0, 0, time.UTC)
	for _, raw := range []string{"2023-03-01 10:30:00", "2023-03-01T10:30:00Z", "2023-03-01T10:30:00", "2023-03-01 10:30"} {
		got, err := ParseTimestamp(raw)
		require.NoError(t, err, raw)
		require.True(t, want.Equal(got), raw)
	}

	day, err := ParseTimestamp("2023-03-01")
	require.NoError(t, err)
	require.Equal(t, 2023, day.Year())
}

func TestParseTimestamp_Malformed(t *testing.T) {
	_, err := ParseTimestamp("not a date")
	require.True(t, errors.Is(err, ErrInvalidTimestamp))
}

func TestParseOptionalTimestamp_Empty(t *testing.T) {
	ts, err := ParseOptionalTimestamp("  ")
	require.NoError(t, err)
	require.Nil(t, ts)
}
