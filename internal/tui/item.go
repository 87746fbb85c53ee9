package tui

import (
	"fmt"

	"github.com/mkessler-dev/habitkit/internal/analytics"
)

// item adapts a habit plus its streak stats to the bubbles list.
type item struct {
	hs       analytics.HabitStreaks
	done     bool
	archived bool
}

func (i item) Title() string {
	switch {
	case i.archived:
		return "[ARCHIVED] " + i.hs.Habit.Name
	case i.done:
		return "✓ " + i.hs.Habit.Name
	default:
		return "○ " + i.hs.Habit.Name
	}
}

func (i item) Description() string {
	r := i.hs.Result
	switch {
	case i.archived:
		return "archived"
	case r.LastPeriod == nil:
		return fmt.Sprintf("%s · never tracked", i.hs.Habit.Periodicity)
	case r.Broken:
		return fmt.Sprintf("%s · broken, last %s · longest %d", i.hs.Habit.Periodicity, r.LastPeriod, r.Longest)
	default:
		return fmt.Sprintf("%s · streak %d · longest %d", i.hs.Habit.Periodicity, r.Current, r.Longest)
	}
}

func (i item) FilterValue() string { return i.hs.Habit.Name }
