package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	require.Equal(t, "07:15:03", FormatClock(time.Date(2023, 12, 17, 7, 15, 3, 0, time.UTC)))
	require.Equal(t, "00:00:00", FormatClock(time.Date(2023, 12, 17, 0, 0, 0, 0, time.UTC)))
}

func TestFormatSegment(t *testing.T) {
	require.Equal(t, "1:23:45", FormatSegment(time.Hour+23*time.Minute+45*time.Second))
	require.Equal(t, "0:05:00", FormatSegment(5*time.Minute))
	require.Equal(t, "12:00:00", FormatSegment(12*time.Hour))
	// Sub-second remainders are truncated, negatives folded to magnitude.
	require.Equal(t, "0:00:01", FormatSegment(1900*time.Millisecond))
	require.Equal(t, "2:00:00", FormatSegment(-2*time.Hour))
}
