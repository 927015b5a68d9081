package schedule

import (
	"fmt"
	"strings"

	"roomfinder/models"
	"roomfinder/utils"
)

// Clock is a query time of day. Minute drives canonical ordering; Label keeps
// the display string for the lexical ordering.
type Clock struct {
	Minute int
	Label  string
}

// NewClock parses a display time such as "8:30 AM" or "08:30".
func NewClock(s string) (Clock, error) {
	minute, err := utils.ParseClock(s)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Minute: minute, Label: strings.TrimSpace(s)}, nil
}

// ClockAt builds a Clock from a minute of day.
func ClockAt(minute int) Clock {
	return Clock{Minute: minute, Label: utils.FormatClock(minute)}
}

func (c Clock) String() string { return c.Label }

// TimeOrdering selects how a query time is compared with an entry's bounds.
type TimeOrdering string

const (
	// OrderingCanonical compares minutes since midnight.
	OrderingCanonical TimeOrdering = "canonical"
	// OrderingLexical compares the raw display strings. "10:00 AM" sorts before
	// "9:00 AM" and "1:00 PM" before "12:00 PM" under this ordering; it exists only
	// for callers that depend on the legacy results.
	OrderingLexical TimeOrdering = "lexical"
)

func ParseTimeOrdering(s string) (TimeOrdering, error) {
	switch TimeOrdering(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderingCanonical:
		return OrderingCanonical, nil
	case OrderingLexical:
		return OrderingLexical, nil
	}
	return "", fmt.Errorf("unknown time ordering %q", s)
}

// within reports whether at lies in [start, end] of the entry, bounds inclusive.
func (o TimeOrdering) within(e models.ScheduleEntry, at Clock) bool {
	if o == OrderingLexical {
		return at.Label >= e.StartLabel && at.Label <= e.EndLabel
	}
	return at.Minute >= e.StartMinute && at.Minute <= e.EndMinute
}

// Matches reports whether the entry occupies its room on day at the given time.
// Days compare case-insensitively.
func (o TimeOrdering) Matches(e models.ScheduleEntry, day string, at Clock) bool {
	return strings.EqualFold(strings.TrimSpace(e.Day), strings.TrimSpace(day)) && o.within(e, at)
}
