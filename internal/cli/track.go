package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mkessler-dev/habitkit/internal/models"
	"github.com/mkessler-dev/habitkit/internal/period"
	"github.com/mkessler-dev/habitkit/internal/utils"
)

type TrackCmd struct {
	Name string `arg:"" help:"Habit to check off."`
	Date string `help:"Date in YYYY-MM-DD format (default: now)." default:""`
	Note string `help:"Optional note for this completion." default:""`
}

func (c *TrackCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if habit.ArchivedAt != nil {
		return fmt.Errorf("habit %q is archived, unarchive it before tracking", c.Name)
	}

	now, err := ctx.Now()
	if err != nil {
		return err
	}

	at := now
	if c.Date != "" {
		parsed, err := utils.ParseDateInLocation(c.Date, now.Location())
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
		}
		at = parsed
	}
	if at.After(now) {
		return fmt.Errorf("cannot track %q in the future", c.Date)
	}

	completion := models.Completion{
		ID:          uuid.New().String(),
		HabitID:     habit.ID,
		CompletedAt: at,
		Note:        c.Note,
	}
	if err := ctx.Store.AddCompletion(completion); err != nil {
		return err
	}

	fmt.Printf("Checked off %q for %s\n", c.Name, period.Of(at, habit.Periodicity))
	return nil
}
