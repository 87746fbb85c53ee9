// Package analytics answers questions about tracked habits: which exist per
// cadence, how their streaks stand, which are broken, and how the current
// period is going against the goal. It feeds each habit's stored completion
// log into the streak engine; the reference instant always comes from the
// caller so results are reproducible.
package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/storage"
	"github.com/mkessler-dev/habitkit/internal/streak"
)

// FilterAll selects habits of every periodicity in Habits.
const FilterAll = "all"

type Service struct {
	store storage.Provider
}

func New(store storage.Provider) *Service {
	return &Service{store: store}
}

// HabitStreaks pairs a habit with its computed streak statistics.
type HabitStreaks struct {
	Habit  models.Habit
	Result streak.Result
}

// BrokenReport separates habits whose streak lapsed from habits that were
// never tracked at all. A habit with no completions has nothing to break,
// so it is listed apart rather than counted as broken.
type BrokenReport struct {
	Broken       []HabitStreaks
	NeverTracked []models.Habit
}

// Progress describes how the current period is going against the goal.
type Progress struct {
	Habit  models.Habit
	Period period.Period
	Done   int
	Goal   int
}

// Habits returns unarchived habits filtered by periodicity: "daily",
// "weekly", or FilterAll.
func (s *Service) Habits(filter string) ([]models.Habit, error) {
	habits, err := s.store.GetAllHabits(false)
	if err != nil {
		return nil, err
	}
	if filter == FilterAll {
		return habits, nil
	}

	p, err := period.Parse(filter)
	if err != nil {
		return nil, err
	}

	var filtered []models.Habit
	for _, h := range habits {
		if h.Periodicity == p {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

// StreaksFor computes streak statistics for a single habit by name.
func (s *Service) StreaksFor(name string, now time.Time) (HabitStreaks, error) {
	habit, err := s.store.GetHabitByName(name)
	if err != nil {
		return HabitStreaks{}, fmt.Errorf("habit %q: %w", name, err)
	}
	return s.compute(habit, now)
}

// AllStreaks computes streak statistics for every unarchived habit.
func (s *Service) AllStreaks(now time.Time) ([]HabitStreaks, error) {
	habits, err := s.store.GetAllHabits(false)
	if err != nil {
		return nil, err
	}

	results := make([]HabitStreaks, 0, len(habits))
	for _, habit := range habits {
		hs, err := s.compute(habit, now)
		if err != nil {
			return nil, err
		}
		results = append(results, hs)
	}
	return results, nil
}

// Broken reports habits whose streak lapsed: at least one full period passed
// since the last completion.
func (s *Service) Broken(now time.Time) (BrokenReport, error) {
	habits, err := s.store.GetAllHabits(false)
	if err != nil {
		return BrokenReport{}, err
	}

	var report BrokenReport
	for _, habit := range habits {
		hs, err := s.compute(habit, now)
		if err != nil {
			return BrokenReport{}, err
		}
		switch {
		case hs.Result.LastPeriod == nil:
			report.NeverTracked = append(report.NeverTracked, habit)
		case hs.Result.Broken:
			report.Broken = append(report.Broken, hs)
		}
	}
	return report, nil
}

// ProgressFor counts completions in the period containing now and compares
// them to the habit's goal.
func (s *Service) ProgressFor(name string, now time.Time) (Progress, error) {
	habit, err := s.store.GetHabitByName(name)
	if err != nil {
		return Progress{}, fmt.Errorf("habit %q: %w", name, err)
	}

	completions, err := s.store.GetCompletionsForHabit(habit.ID)
	if err != nil {
		return Progress{}, err
	}

	current := period.Of(now, habit.Periodicity)
	done := 0
	for _, c := range completions {
		if current.Contains(c.CompletedAt.In(now.Location())) {
			done++
		}
	}

	return Progress{Habit: habit, Period: current, Done: done, Goal: habit.Goal}, nil
}

func (s *Service) compute(habit models.Habit, now time.Time) (HabitStreaks, error) {
	completions, err := s.store.GetCompletionsForHabit(habit.ID)
	if err != nil {
		return HabitStreaks{}, err
	}

	// Re-anchor stored instants in now's zone so period boundaries agree
	// with the caller's notion of "today".
	timestamps := make([]time.Time, len(completions))
	for i, c := range completions {
		timestamps[i] = c.CompletedAt.In(now.Location())
	}

	result, err := streak.Compute(timestamps, habit.Periodicity, now)
	if err != nil {
		if errors.Is(err, streak.ErrInvalidInput) {
			return HabitStreaks{}, fmt.Errorf("habit %q: %w", habit.Name, err)
		}
		return HabitStreaks{}, err
	}

	return HabitStreaks{Habit: habit, Result: result}, nil
}
