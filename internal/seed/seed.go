// Package seed loads a demo dataset: five predefined habits with four weeks
// of completion history. The data is deterministic relative to the reference
// instant, so the resulting streaks are predictable: some habits are live,
// some carry a deliberate gap that broke an earlier run.
package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/storage"
)

type fixture struct {
	name        string
	description string
	periodicity period.Periodicity
	goal        int

	// dayOffsets counts back from the reference day: 0 is today, 1 is
	// yesterday. For weekly habits the offsets land inside distinct weeks.
	dayOffsets []int
}

var fixtures = []fixture{
	// Live daily streak covering the last week.
	{"coding", "work on a side project", period.Daily, 0,
		[]int{0, 1, 2, 3, 4, 5, 6, 9, 10, 11, 14, 15, 16, 17, 20, 21, 24, 25, 26}},
	// Broken daily habit: nothing since four days ago.
	{"cooking", "cook a proper meal", period.Daily, 0,
		[]int{4, 5, 6, 7, 10, 11, 12, 15, 16, 19, 20, 23}},
	// Daily habit that restarted after a mid-month gap.
	{"jogging", "run at least 3km", period.Daily, 0,
		[]int{0, 1, 2, 8, 9, 10, 11, 12, 13, 14, 22, 23, 24}},
	// Live weekly streak, twice a week.
	{"reading", "finish a book chapter", period.Weekly, 2,
		[]int{1, 4, 8, 11, 15, 18, 22, 25}},
	// Weekly habit with a skipped week.
	{"biking", "longer bike tour", period.Weekly, 1,
		[]int{2, 16, 23}},
}

// Apply inserts the demo habits and their completion history. It fails if
// any of the predefined names already exist.
func Apply(store storage.Provider, now time.Time) error {
	for _, f := range fixtures {
		if _, err := store.GetHabitByName(f.name); err == nil {
			return fmt.Errorf("habit %q already exists, seed requires a clean slate", f.name)
		}

		habit := models.Habit{
			ID:          uuid.New().String(),
			Name:        f.name,
			Description: f.description,
			Periodicity: f.periodicity,
			Goal:        models.NormalizeGoal(f.periodicity, f.goal),
			CreatedAt:   now.AddDate(0, 0, -28),
		}
		if err := store.AddHabit(habit); err != nil {
			return fmt.Errorf("seeding habit %q: %w", f.name, err)
		}

		for _, offset := range f.dayOffsets {
			completion := models.Completion{
				ID:          uuid.New().String(),
				HabitID:     habit.ID,
				CompletedAt: now.AddDate(0, 0, -offset),
				Note:        "seeded",
			}
			if err := store.AddCompletion(completion); err != nil {
				return fmt.Errorf("seeding completions for %q: %w", f.name, err)
			}
		}
	}
	return nil
}

// Wipe removes any previously seeded habits, completions included via the
// schema's cascade. Habits the user created themselves are left alone.
func Wipe(store storage.Provider) error {
	for _, f := range fixtures {
		habit, err := store.GetHabitByName(f.name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return err
		}
		if err := store.DeleteHabit(habit.ID); err != nil {
			return fmt.Errorf("wiping habit %q: %w", f.name, err)
		}
	}
	return nil
}

// Names lists the habits Apply creates.
func Names() []string {
	names := make([]string, len(fixtures))
	for i, f := range fixtures {
		names[i] = f.name
	}
	return names
}
