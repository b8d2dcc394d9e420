package aggregation

import (
	"fmt"
	"time"
)

// Interval is a chart bucket interval: a positive duration plus the canonical
// expression it was parsed from (e.g. "15m", "1h", "1d").
type Interval struct {
	Duration   time.Duration
	Expression string
}

// AsMilliseconds returns the interval length in milliseconds.
func (i Interval) AsMilliseconds() int64 {
	return i.Duration.Milliseconds()
}

// ParseInterval parses a duration string into an Interval.
// Supports Go duration syntax (e.g., "10s", "1m", "1h") plus "Xd" for days.
func ParseInterval(s string) (Interval, error) {
	if s == "" {
		return Interval{}, fmt.Errorf("interval must not be empty")
	}

	// Handle "d" suffix (days), not supported by time.ParseDuration.
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
			return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
		}
		if days <= 0 {
			return Interval{}, fmt.Errorf("interval must be positive, got %q", s)
		}
		return Interval{Duration: time.Duration(days) * 24 * time.Hour, Expression: s}, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	if d <= 0 {
		return Interval{}, fmt.Errorf("interval must be positive, got %q", s)
	}
	return Interval{Duration: d, Expression: s}, nil
}

// IntervalFromDuration builds an Interval with a canonical expression for d.
// Whole days render as "Nd", everything else uses time.Duration formatting
// with trailing zero units trimmed ("1h0m0s" -> "1h").
func IntervalFromDuration(d time.Duration) Interval {
	return Interval{Duration: d, Expression: durationLabel(d)}
}

func durationLabel(d time.Duration) string {
	switch {
	case d <= 0:
		return d.String()
	case d%(24*time.Hour) == 0:
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	case d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	case d%time.Second == 0:
		return fmt.Sprintf("%ds", d/time.Second)
	default:
		return d.String()
	}
}

// BucketFor truncates a timestamp to the nearest granularity boundary.
// Example: BucketFor(10:35:42, 15*time.Minute) → 10:30:00
func BucketFor(t time.Time, granularity time.Duration) time.Time {
	return t.Truncate(granularity)
}
