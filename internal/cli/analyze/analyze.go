// Package analyze holds the reporting commands: habit lists by cadence,
// streak summaries, broken habits, and per-period progress.
package analyze

import (
	"fmt"
	"strings"

	"github.com/mkessler-dev/habitkit/internal/analytics"
	"github.com/mkessler-dev/habitkit/internal/cli"
)

type AnalyzeCmd struct {
	List     ListCmd     `cmd:"" help:"List habits, optionally by periodicity."`
	Streaks  StreaksCmd  `cmd:"" help:"Show streaks for one or all habits." default:"1"`
	Broken   BrokenCmd   `cmd:"" help:"Show habits whose streak has lapsed."`
	Progress ProgressCmd `cmd:"" help:"Show progress in the current period."`
}

type ListCmd struct {
	Periodicity string `help:"Filter by periodicity." enum:"daily,weekly,all" default:"all"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Analytics().Habits(c.Periodicity)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		fmt.Printf("%-20s %s\n", habit.Name, habit.Periodicity)
	}
	return nil
}

type StreaksCmd struct {
	Name string `arg:"" optional:"" help:"Show a single habit's streak."`
}

func (c *StreaksCmd) Run(ctx *cli.Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}
	svc := ctx.Analytics()

	var results []analytics.HabitStreaks
	if c.Name != "" {
		hs, err := svc.StreaksFor(c.Name, now)
		if err != nil {
			return err
		}
		results = []analytics.HabitStreaks{hs}
	} else {
		if results, err = svc.AllStreaks(now); err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No habits found.")
			return nil
		}
	}

	fmt.Printf("%-20s %-7s %7s %7s  %s\n", "Habit", "Cadence", "Current", "Longest", "Status")
	fmt.Println(strings.Repeat("-", 58))
	for _, hs := range results {
		fmt.Printf("%-20s %-7s %7d %7d  %s\n",
			hs.Habit.Name, hs.Habit.Periodicity,
			hs.Result.Current, hs.Result.Longest, describe(hs))
	}
	return nil
}

func describe(hs analytics.HabitStreaks) string {
	switch {
	case hs.Result.LastPeriod == nil:
		return "never tracked"
	case hs.Result.Broken:
		return fmt.Sprintf("broken, last %s", hs.Result.LastPeriod)
	default:
		return "live"
	}
}

type BrokenCmd struct{}

func (c *BrokenCmd) Run(ctx *cli.Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}

	report, err := ctx.Analytics().Broken(now)
	if err != nil {
		return err
	}

	if len(report.Broken) == 0 {
		fmt.Println("No broken habits. Keep it up!")
	} else {
		fmt.Println("Broken habits:")
		for _, hs := range report.Broken {
			fmt.Printf("  %-20s last completed in %s (longest streak: %d)\n",
				hs.Habit.Name, hs.Result.LastPeriod, hs.Result.Longest)
		}
	}

	if len(report.NeverTracked) > 0 {
		fmt.Println("Never tracked:")
		for _, habit := range report.NeverTracked {
			fmt.Printf("  %s\n", habit.Name)
		}
	}
	return nil
}

type ProgressCmd struct {
	Name string `arg:"" help:"Habit to report on."`
}

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}

	progress, err := ctx.Analytics().ProgressFor(c.Name, now)
	if err != nil {
		return err
	}

	fmt.Printf("%s, %s: %d/%d completions\n",
		progress.Habit.Name, progress.Period, progress.Done, progress.Goal)
	if progress.Done >= progress.Goal {
		fmt.Println("Goal reached.")
	}
	return nil
}
