package seed

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mkessler-dev/habitkit/internal/analytics"
	"github.com/mkessler-dev/habitkit/internal/storage/sqlite"
)

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestApplyCreatesFixtures(t *testing.T) {
	store := setupStore(t)
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	if err := Apply(store, now); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	habits, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits() failed: %v", err)
	}
	if len(habits) != len(Names()) {
		t.Fatalf("seeded %d habits, want %d", len(habits), len(Names()))
	}

	for _, habit := range habits {
		completions, err := store.GetCompletionsForHabit(habit.ID)
		if err != nil {
			t.Fatalf("GetCompletionsForHabit(%s) failed: %v", habit.Name, err)
		}
		if len(completions) == 0 {
			t.Errorf("habit %q seeded without completions", habit.Name)
		}
	}
}

func TestWipeThenReseed(t *testing.T) {
	store := setupStore(t)
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	if err := Apply(store, now); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if err := Wipe(store); err != nil {
		t.Fatalf("Wipe() failed: %v", err)
	}

	habits, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits() failed: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("Wipe() left %d habits behind", len(habits))
	}

	if err := Apply(store, now); err != nil {
		t.Fatalf("Apply() after Wipe() failed: %v", err)
	}
}

func TestApplyRefusesExistingHabits(t *testing.T) {
	store := setupStore(t)
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	if err := Apply(store, now); err != nil {
		t.Fatalf("first Apply() failed: %v", err)
	}
	if err := Apply(store, now); err == nil {
		t.Error("second Apply() should fail on existing habits")
	}
}

func TestSeededStreaks(t *testing.T) {
	store := setupStore(t)
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	if err := Apply(store, now); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	svc := analytics.New(store)

	coding, err := svc.StreaksFor("coding", now)
	if err != nil {
		t.Fatalf("StreaksFor(coding) failed: %v", err)
	}
	if coding.Result.Broken {
		t.Errorf("coding should have a live streak, got %+v", coding.Result)
	}
	if coding.Result.Current != 7 {
		t.Errorf("coding current streak = %d, want 7", coding.Result.Current)
	}

	cooking, err := svc.StreaksFor("cooking", now)
	if err != nil {
		t.Fatalf("StreaksFor(cooking) failed: %v", err)
	}
	if !cooking.Result.Broken {
		t.Errorf("cooking should be broken, got %+v", cooking.Result)
	}

	report, err := svc.Broken(now)
	if err != nil {
		t.Fatalf("Broken() failed: %v", err)
	}
	if len(report.NeverTracked) != 0 {
		t.Errorf("seeded data should leave no untracked habits, got %v", report.NeverTracked)
	}
}
