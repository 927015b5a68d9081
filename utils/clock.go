package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidClock       = errors.New("invalid time of day")
	ErrMalformedTimeRange = errors.New("malformed time range")
)

// MinutesPerDay bounds every minute-of-day value.
const MinutesPerDay = 24 * 60

var clockLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04"}

// ParseClock converts "7:00 AM", "7:00AM", "07:30" or "13:45" into minutes since midnight.
func ParseClock(s string) (int, error) {
	value := strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidClock)
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
}

// ParseTimeRange splits "8:00 AM - 9:00 AM" into two minute-of-day bounds.
func ParseTimeRange(s string) (start, end int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q needs exactly two bounds", ErrMalformedTimeRange, s)
	}
	start, err = ParseClock(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedTimeRange, err)
	}
	end, err = ParseClock(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedTimeRange, err)
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: %q ends before it starts", ErrMalformedTimeRange, s)
	}
	return start, end, nil
}

// SplitTimeRange returns the trimmed display labels of a range.
func SplitTimeRange(s string) (string, string, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// FormatClock renders a minute of day as "8:30 AM".
func FormatClock(minute int) string {
	minute = ((minute % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	t := time.Date(0, 1, 1, minute/60, minute%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}
