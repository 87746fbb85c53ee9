package analytics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/storage/sqlite"
)

func setupService(t *testing.T) (*Service, *sqlite.Store) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(store), store
}

func addHabit(t *testing.T, store *sqlite.Store, name string, p period.Periodicity) models.Habit {
	t.Helper()

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Periodicity: p,
		Goal:        models.NormalizeGoal(p, 3),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit(%s) failed: %v", name, err)
	}
	return habit
}

func track(t *testing.T, store *sqlite.Store, habit models.Habit, at time.Time) {
	t.Helper()

	err := store.AddCompletion(models.Completion{
		ID:          uuid.New().String(),
		HabitID:     habit.ID,
		CompletedAt: at,
	})
	if err != nil {
		t.Fatalf("AddCompletion(%s) failed: %v", habit.Name, err)
	}
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 10, 0, 0, 0, time.UTC)
}

func TestHabitsFilter(t *testing.T) {
	svc, store := setupService(t)
	addHabit(t, store, "jogging", period.Daily)
	addHabit(t, store, "cooking", period.Daily)
	addHabit(t, store, "reading", period.Weekly)

	tests := []struct {
		filter string
		want   int
	}{
		{"daily", 2},
		{"weekly", 1},
		{FilterAll, 3},
	}
	for _, tt := range tests {
		habits, err := svc.Habits(tt.filter)
		if err != nil {
			t.Fatalf("Habits(%s) failed: %v", tt.filter, err)
		}
		if len(habits) != tt.want {
			t.Errorf("Habits(%s) returned %d habits, want %d", tt.filter, len(habits), tt.want)
		}
	}

	if _, err := svc.Habits("monthly"); err == nil {
		t.Error("Habits(monthly) should fail")
	}
}

func TestStreaksFor(t *testing.T) {
	svc, store := setupService(t)
	habit := addHabit(t, store, "jogging", period.Daily)
	for _, d := range []int{7, 8, 9, 10} {
		track(t, store, habit, day(d))
	}

	hs, err := svc.StreaksFor("jogging", day(10))
	if err != nil {
		t.Fatalf("StreaksFor() failed: %v", err)
	}
	if hs.Result.Current != 4 || hs.Result.Longest != 4 || hs.Result.Broken {
		t.Errorf("StreaksFor() = %+v, want current=4 longest=4 broken=false", hs.Result)
	}
}

func TestStreaksForUnknownHabit(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.StreaksFor("nonexistent", day(10)); err == nil {
		t.Error("StreaksFor() should fail for unknown habit")
	}
}

func TestAllStreaks(t *testing.T) {
	svc, store := setupService(t)
	jogging := addHabit(t, store, "jogging", period.Daily)
	addHabit(t, store, "reading", period.Weekly)
	track(t, store, jogging, day(10))

	results, err := svc.AllStreaks(day(10))
	if err != nil {
		t.Fatalf("AllStreaks() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("AllStreaks() returned %d results, want 2", len(results))
	}
}

func TestBrokenReport(t *testing.T) {
	svc, store := setupService(t)

	lapsed := addHabit(t, store, "jogging", period.Daily)
	track(t, store, lapsed, day(5))

	live := addHabit(t, store, "cooking", period.Daily)
	track(t, store, live, day(10))

	addHabit(t, store, "reading", period.Weekly)

	report, err := svc.Broken(day(10))
	if err != nil {
		t.Fatalf("Broken() failed: %v", err)
	}
	if len(report.Broken) != 1 || report.Broken[0].Habit.Name != "jogging" {
		t.Errorf("Broken() broken = %+v, want only jogging", report.Broken)
	}
	if len(report.NeverTracked) != 1 || report.NeverTracked[0].Name != "reading" {
		t.Errorf("Broken() never tracked = %+v, want only reading", report.NeverTracked)
	}
}

func TestProgressFor(t *testing.T) {
	svc, store := setupService(t)
	habit := addHabit(t, store, "reading", period.Weekly)

	// Week of Monday 2025-03-10: two completions inside, one the week before.
	track(t, store, habit, day(5))
	track(t, store, habit, day(10))
	track(t, store, habit, day(12))

	progress, err := svc.ProgressFor("reading", day(13))
	if err != nil {
		t.Fatalf("ProgressFor() failed: %v", err)
	}
	if progress.Done != 2 {
		t.Errorf("ProgressFor() done = %d, want 2", progress.Done)
	}
	if progress.Goal != 3 {
		t.Errorf("ProgressFor() goal = %d, want 3", progress.Goal)
	}
	wantStart := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !progress.Period.Start.Equal(wantStart) {
		t.Errorf("ProgressFor() period start = %v, want %v", progress.Period.Start, wantStart)
	}
}

func TestArchivedHabitsExcluded(t *testing.T) {
	svc, store := setupService(t)
	habit := addHabit(t, store, "jogging", period.Daily)
	if err := store.ArchiveHabit(habit.ID); err != nil {
		t.Fatalf("ArchiveHabit() failed: %v", err)
	}

	habits, err := svc.Habits(FilterAll)
	if err != nil {
		t.Fatalf("Habits() failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("Habits() returned %d habits, want 0 after archiving", len(habits))
	}
}
