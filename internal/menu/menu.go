// Package menu is the guided, prompt-driven way to use habitkit. It loops on
// a main selection (create, track, edit, delete, analyze) until the user
// exits, running each action through huh forms.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/mkessler-dev/habitkit/internal/analytics"
	"github.com/mkessler-dev/habitkit/internal/constants"
	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/storage"
)

type action string

const (
	actionCreate  action = "create"
	actionTrack   action = "track"
	actionEdit    action = "edit"
	actionDelete  action = "delete"
	actionAnalyze action = "analyze"
	actionExit    action = "exit"
)

type Menu struct {
	store storage.Provider
	svc   *analytics.Service
	now   func() (time.Time, error)
}

func New(store storage.Provider, now func() (time.Time, error)) *Menu {
	return &Menu{store: store, svc: analytics.New(store), now: now}
}

// Run loops until the user picks exit or aborts a prompt with ctrl+c.
func (m *Menu) Run() error {
	for {
		var choice action
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[action]().
				Title("What do you want to do?").
				Options(
					huh.NewOption("Create new habit", actionCreate),
					huh.NewOption("Track habit", actionTrack),
					huh.NewOption("Edit existing habit", actionEdit),
					huh.NewOption("Delete habit", actionDelete),
					huh.NewOption("Analyze habit performance", actionAnalyze),
					huh.NewOption("Exit", actionExit),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch choice {
		case actionCreate:
			err = m.create()
		case actionTrack:
			err = m.track()
		case actionEdit:
			err = m.edit()
		case actionDelete:
			err = m.delete()
		case actionAnalyze:
			err = m.analyze()
		case actionExit:
			fmt.Println("Goodbye!")
			return nil
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) create() error {
	var name, description string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Habit name").
			Value(&name).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("name is required")
				}
				if _, err := m.store.GetHabitByName(s); err == nil {
					return fmt.Errorf("habit %q already exists", s)
				}
				return nil
			}),
		huh.NewInput().
			Title("Short description").
			Value(&description),
	))
	if err := form.Run(); err != nil {
		return err
	}

	p, goal, err := m.choosePeriodicityAndGoal(period.Daily, constants.MinWeeklyGoal)
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Periodicity: p,
		Goal:        goal,
		CreatedAt:   time.Now(),
	}
	if err := habit.Validate(); err != nil {
		return err
	}
	if err := m.store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Created habit %q (%s, goal %d/week).\n", name, p, goal)
	return nil
}

func (m *Menu) track() error {
	habit, err := m.selectHabit("Which habit did you complete?")
	if err != nil {
		return err
	}

	now, err := m.now()
	if err != nil {
		return err
	}

	completion := models.Completion{
		ID:          uuid.New().String(),
		HabitID:     habit.ID,
		CompletedAt: now,
	}
	if err := m.store.AddCompletion(completion); err != nil {
		return err
	}

	fmt.Printf("Tracked %q for %s.\n", habit.Name, period.Of(now, habit.Periodicity))
	return nil
}

func (m *Menu) edit() error {
	habit, err := m.selectHabit("Which habit do you want to edit?")
	if err != nil {
		return err
	}

	p, goal, err := m.choosePeriodicityAndGoal(habit.Periodicity, habit.Goal)
	if err != nil {
		return err
	}

	habit.Periodicity = p
	habit.Goal = goal
	if err := habit.Validate(); err != nil {
		return err
	}
	if err := m.store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit %q.\n", habit.Name)
	return nil
}

func (m *Menu) delete() error {
	habit, err := m.selectHabit("Which habit do you want to delete?")
	if err != nil {
		return err
	}

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q and its entire completion log?", habit.Name)).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := m.store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit %q.\n", habit.Name)
	return nil
}

func (m *Menu) analyze() error {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What do you want to analyze?").
			Options(
				huh.NewOption("Habits overview", "overview"),
				huh.NewOption("Running streaks", "streaks"),
				huh.NewOption("Broken habits", "broken"),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return err
	}

	now, err := m.now()
	if err != nil {
		return err
	}

	switch choice {
	case "overview":
		return m.overview()
	case "streaks":
		return m.streaks(now)
	case "broken":
		return m.broken(now)
	}
	return nil
}

func (m *Menu) overview() error {
	var filter string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which habits do you want to see?").
			Options(
				huh.NewOption("daily", "daily"),
				huh.NewOption("weekly", "weekly"),
				huh.NewOption("all", analytics.FilterAll),
			).
			Value(&filter),
	))
	if err := form.Run(); err != nil {
		return err
	}

	habits, err := m.svc.Habits(filter)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Println("The following habits are being tracked:")
	for _, habit := range habits {
		fmt.Printf("  %-20s %s\n", habit.Name, habit.Periodicity)
	}
	return nil
}

func (m *Menu) streaks(now time.Time) error {
	results, err := m.svc.AllStreaks(now)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Println("Running streaks:")
	for _, hs := range results {
		fmt.Printf("  %-20s current %d, longest %d\n",
			hs.Habit.Name, hs.Result.Current, hs.Result.Longest)
	}
	return nil
}

func (m *Menu) broken(now time.Time) error {
	report, err := m.svc.Broken(now)
	if err != nil {
		return err
	}

	if len(report.Broken) == 0 {
		fmt.Println("No habits with broken streaks found.")
	} else {
		fmt.Println("The following habits have broken streaks:")
		for _, hs := range report.Broken {
			fmt.Printf("  %s\n", hs.Habit.Name)
		}
	}
	for _, habit := range report.NeverTracked {
		fmt.Printf("  %s has never been tracked\n", habit.Name)
	}
	return nil
}

func (m *Menu) selectHabit(title string) (models.Habit, error) {
	habits, err := m.store.GetAllHabits(false)
	if err != nil {
		return models.Habit{}, err
	}
	if len(habits) == 0 {
		return models.Habit{}, errors.New("no habits yet, create one first")
	}

	options := make([]huh.Option[string], len(habits))
	for i, habit := range habits {
		options[i] = huh.NewOption(habit.Name, habit.Name)
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return models.Habit{}, err
	}

	return m.store.GetHabitByName(name)
}

func (m *Menu) choosePeriodicityAndGoal(defaultP period.Periodicity, defaultGoal int) (period.Periodicity, int, error) {
	p := defaultP
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[period.Periodicity]().
			Title("Choose a periodicity").
			Options(
				huh.NewOption("daily", period.Daily),
				huh.NewOption("weekly", period.Weekly),
			).
			Value(&p),
	))
	if err := form.Run(); err != nil {
		return "", 0, err
	}

	if p == period.Daily {
		return p, constants.DefaultDailyGoal, nil
	}

	goalStr := strconv.Itoa(defaultGoal)
	goalForm := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Completions per week (%d-%d)", constants.MinWeeklyGoal, constants.MaxWeeklyGoal)).
			Value(&goalStr).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil {
					return errors.New("give an integer value")
				}
				if n < constants.MinWeeklyGoal || n > constants.MaxWeeklyGoal {
					return fmt.Errorf("give a number between %d and %d", constants.MinWeeklyGoal, constants.MaxWeeklyGoal)
				}
				return nil
			}),
	))
	if err := goalForm.Run(); err != nil {
		return "", 0, err
	}

	goal, _ := strconv.Atoi(goalStr)
	return p, goal, nil
}
