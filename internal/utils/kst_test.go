package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateTime(t *testing.T) {
	t.Run("LocalValueAnchoredAtKST", func(t *testing.T) {
		got, err := ParseLocalDateTime("2025-03-01T10:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC), got)
	})

	t.Run("WithSeconds", func(t *testing.T) {
		got, err := ParseLocalDateTime("2025-03-01T10:00:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 1, 0, 30, 0, time.UTC), got)
	})

	t.Run("UTCDesignator", func(t *testing.T) {
		got, err := ParseLocalDateTime("2025-03-01T10:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), got)
	})

	t.Run("NumericOffset", func(t *testing.T) {
		got, err := ParseLocalDateTime("2025-03-01T10:00+09:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC), got)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, v := range []string{"", "tomorrow", "2025-13-01T10:00", "2025-03-01T10:00+25"} {
			_, err := ParseLocalDateTime(v)
			assert.ErrorIs(t, err, ErrInvalidDateTime, v)
		}
	})
}

func TestFormatKST(t *testing.T) {
	at := time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025. 3. 1. 10:00", FormatKST(at))
	assert.Equal(t, "2025. 3. 1. 10:00", FormatKSTPtr(&at))
	assert.Equal(t, "-", FormatKSTPtr(nil))
}
