package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSize  time.Duration
		wantError bool
	}{
		{name: "minute", input: "1m", wantSize: time.Minute},
		{name: "fifteen minutes", input: "15m", wantSize: 15 * time.Minute},
		{name: "hour", input: "2h", wantSize: 2 * time.Hour},
		{name: "days suffix", input: "3d", wantSize: 72 * time.Hour},
		{name: "empty invalid", input: "", wantError: true},
		{name: "negative invalid", input: "-1m", wantError: true},
		{name: "zero invalid", input: "0m", wantError: true},
		{name: "bad day format invalid", input: "xd", wantError: true},
		{name: "unknown unit invalid", input: "10x", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			interval, err := ParseInterval(tc.input)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantSize, interval.Duration)
			require.Equal(t, tc.input, interval.Expression)
			require.Equal(t, tc.wantSize.Milliseconds(), interval.AsMilliseconds())
		})
	}
}

func TestIntervalFromDuration(t *testing.T) {
	require.Equal(t, "1d", IntervalFromDuration(24*time.Hour).Expression)
	require.Equal(t, "3h", IntervalFromDuration(3*time.Hour).Expression)
	require.Equal(t, "90m", IntervalFromDuration(90*time.Minute).Expression)
	require.Equal(t, "30s", IntervalFromDuration(30*time.Second).Expression)
	require.Equal(t, 15*time.Minute, IntervalFromDuration(15*time.Minute).Duration)
}

func TestBucketFor(t *testing.T) {
	ts := time.Date(2026, 2, 11, 10, 35, 42, 123456789, time.UTC)

	require.Equal(t,
		time.Date(2026, 2, 11, 10, 35, 0, 0, time.UTC),
		BucketFor(ts, time.Minute),
	)
	require.Equal(t,
		time.Date(2026, 2, 11, 10, 30, 0, 0, time.UTC),
		BucketFor(ts, 15*time.Minute),
	)
	require.Equal(t,
		time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		BucketFor(ts, 24*time.Hour),
	)
}
