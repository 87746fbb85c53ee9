// Package period maps timestamps onto the discrete calendar buckets used to
// evaluate habits: single days or Monday-based weeks. All streak arithmetic
// is expressed in terms of these buckets so the calendar edge cases live in
// one place.
package period

import (
	"fmt"
	"time"

	"github.com/mkessler-dev/habitkit/internal/constants"
)

// Periodicity is the cadence at which a habit is evaluated.
type Periodicity string

const (
	Daily  Periodicity = "daily"
	Weekly Periodicity = "weekly"
)

// WeekStart fixes the first day of the week for weekly buckets. Changing it
// shifts every weekly boundary, so it is a constant rather than a setting.
const WeekStart = time.Monday

// Parse converts a user-supplied string into a Periodicity.
func Parse(s string) (Periodicity, error) {
	switch Periodicity(s) {
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	}
	return "", fmt.Errorf("invalid periodicity %q (expected %q or %q)", s, Daily, Weekly)
}

// Valid reports whether p is one of the recognized periodicities.
func (p Periodicity) Valid() bool {
	return p == Daily || p == Weekly
}

func (p Periodicity) lengthDays() int {
	if p == Weekly {
		return 7
	}
	return 1
}

// Period is a half-open interval [Start, End) covering one day or one week.
// Periods of the same periodicity tile the timeline without gaps or overlap.
type Period struct {
	Start time.Time
	End   time.Time
}

// Of returns the period containing t for the given periodicity. Daily
// periods start at midnight of t's calendar date; weekly periods start at
// midnight of the most recent WeekStart. Truncation happens in t's location.
func Of(t time.Time, p Periodicity) Period {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if p == Weekly {
		offset := (int(t.Weekday()) - int(WeekStart) + 7) % 7
		start = start.AddDate(0, 0, -offset)
	}
	return Period{Start: start, End: start.AddDate(0, 0, p.lengthDays())}
}

// Next returns the period immediately following pd.
func Next(pd Period, p Periodicity) Period {
	return Period{Start: pd.End, End: pd.End.AddDate(0, 0, p.lengthDays())}
}

// Contains reports whether t falls inside the half-open interval.
func (pd Period) Contains(t time.Time) bool {
	return !t.Before(pd.Start) && t.Before(pd.End)
}

// String renders the period for display: the date for a day, "week of" the
// starting Monday for a week.
func (pd Period) String() string {
	if pd.End.Sub(pd.Start) > 24*time.Hour {
		return "week of " + pd.Start.Format(constants.DateFormat)
	}
	return pd.Start.Format(constants.DateFormat)
}

// IsAdjacent reports whether b is exactly the period after a, with no gap.
// Consecutive completions extend a streak iff their periods are adjacent.
func IsAdjacent(a, b Period, p Periodicity) bool {
	return Between(a, b, p) == 1
}

// Between returns the signed number of periods from a to b: zero when they
// are the same period, positive when b is later. Both arguments must be
// period starts produced by Of or Next for the same periodicity.
func Between(a, b Period, p Periodicity) int {
	return (dayNumber(b.Start) - dayNumber(a.Start)) / p.lengthDays()
}

// dayNumber counts calendar days since the Unix epoch, ignoring the clock
// and the zone offset. Working on day counts keeps the arithmetic exact
// across DST transitions, where a calendar day is not always 24 hours.
func dayNumber(t time.Time) int {
	u := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(u.Unix() / 86400)
}
