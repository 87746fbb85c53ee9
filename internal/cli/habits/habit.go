package habits

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkessler-dev/habitkit/internal/cli"
	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/storage"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Edit      HabitEditCmd      `cmd:"" help:"Edit a habit's description or goal."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit, keeping its history."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Bring an archived habit back."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit and its entire completion log."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Periodicity string `help:"How often the habit is due: daily or weekly." enum:"daily,weekly" default:"daily"`
	Description string `help:"What the habit is about." default:""`
	Goal        int    `help:"Completions per week (weekly habits only, 1-7)." default:"0"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit %q already exists", c.Name)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	p, err := period.Parse(c.Periodicity)
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Description: c.Description,
		Periodicity: p,
		Goal:        models.NormalizeGoal(p, c.Goal),
		CreatedAt:   time.Now(),
	}
	if err := habit.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added %s habit: %s\n", p, c.Name)
	return nil
}

type HabitListCmd struct {
	Periodicity string `help:"Only show habits with this periodicity." enum:"daily,weekly,all" default:"all"`
	Archived    bool   `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived)
	if err != nil {
		return err
	}

	shown := 0
	for _, habit := range habits {
		if c.Periodicity != "all" && string(habit.Periodicity) != c.Periodicity {
			continue
		}
		status := ""
		if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		fmt.Printf("%-20s %-7s goal %d/week%s\n", habit.Name, habit.Periodicity, habit.Goal, status)
		if habit.Description != "" {
			fmt.Printf("  %s\n", habit.Description)
		}
		shown++
	}
	if shown == 0 {
		fmt.Println("No habits found. Add one with 'habitkit habit add <name>'.")
	}
	return nil
}

type HabitEditCmd struct {
	Name        string `arg:"" help:"Habit to edit."`
	Rename      string `help:"New name for the habit." default:""`
	Description string `help:"New description." default:""`
	Goal        int    `help:"New weekly goal (weekly habits only, 1-7)." default:"0"`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Rename == "" && c.Description == "" && c.Goal == 0 {
		return errors.New("nothing to change, pass --rename, --description, or --goal")
	}

	if c.Rename != "" {
		if _, err := ctx.Store.GetHabitByName(c.Rename); err == nil {
			return fmt.Errorf("habit %q already exists", c.Rename)
		}
		habit.Name = c.Rename
	}
	if c.Description != "" {
		habit.Description = c.Description
	}
	if c.Goal != 0 {
		if habit.Periodicity != period.Weekly {
			return errors.New("goal can only be changed for weekly habits")
		}
		habit.Goal = c.Goal
	}

	if err := habit.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit to archive."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Name string `arg:"" help:"Habit to unarchive."`
}

func (c *HabitUnarchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Unarchived habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit to delete."`
	Yes  bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if !c.Yes {
		fmt.Printf("This permanently deletes %q and all its completions. Re-run with --yes to confirm.\n", c.Name)
		return nil
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit %q and its completion log.\n", c.Name)
	return nil
}
