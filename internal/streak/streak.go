// Package streak computes streak statistics for a single habit from its raw
// completion history. The computation is pure: the caller supplies every
// timestamp and an explicit reference instant, and the same input always
// produces the same result.
package streak

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/mkessler-dev/habitkit/internal/period"
)

// ErrInvalidInput is returned when the periodicity is unrecognized or a
// completion timestamp lies after the reference instant. Callers match it
// with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// maxLiveLag is the boundary rule for a streak still counting as current:
// the last completed period may be the period containing the reference
// instant or at most this many periods before it. A lag of two or more
// means a full period passed with no completion and the streak is broken.
const maxLiveLag = 1

// Result holds the streak statistics for one habit.
type Result struct {
	// Current is the length of the streak ending at the most recent
	// completion, or zero if that streak is no longer live.
	Current int
	// Longest is the maximum streak length anywhere in the history.
	Longest int
	// Broken reports that at least one full period elapsed between the most
	// recent completion and the reference instant. A habit with no
	// completions is not broken; there is nothing to break yet.
	Broken bool
	// LastPeriod is the period of the most recent completion, nil for an
	// empty history.
	LastPeriod *period.Period
}

// Compute derives streak statistics from a habit's completion timestamps.
// Timestamps may arrive in any order and may repeat within a period;
// multiple completions in one period count once. now must not precede any
// timestamp. An empty history yields the zero Result.
func Compute(timestamps []time.Time, p period.Periodicity, now time.Time) (Result, error) {
	if !p.Valid() {
		return Result{}, fmt.Errorf("%w: unknown periodicity %q", ErrInvalidInput, p)
	}
	for _, ts := range timestamps {
		if ts.After(now) {
			return Result{}, fmt.Errorf("%w: completion at %s is after the reference time %s",
				ErrInvalidInput, ts.Format(time.RFC3339), now.Format(time.RFC3339))
		}
	}

	if len(timestamps) == 0 {
		return Result{}, nil
	}

	periods := distinctPeriods(timestamps, p)

	longest := 1
	running := 1
	for i := 1; i < len(periods); i++ {
		if period.IsAdjacent(periods[i-1], periods[i], p) {
			running++
		} else {
			running = 1
		}
		if running > longest {
			longest = running
		}
	}

	last := periods[len(periods)-1]
	lag := period.Between(last, period.Of(now, p), p)

	current := running
	if lag > maxLiveLag {
		current = 0
	}

	return Result{
		Current:    current,
		Longest:    longest,
		Broken:     lag > maxLiveLag,
		LastPeriod: &last,
	}, nil
}

// distinctPeriods buckets the timestamps and returns their periods sorted
// ascending with duplicates collapsed.
func distinctPeriods(timestamps []time.Time, p period.Periodicity) []period.Period {
	seen := make(map[int64]period.Period, len(timestamps))
	for _, ts := range timestamps {
		pd := period.Of(ts, p)
		seen[pd.Start.Unix()] = pd
	}

	periods := make([]period.Period, 0, len(seen))
	for _, pd := range seen {
		periods = append(periods, pd)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})
	return periods
}
