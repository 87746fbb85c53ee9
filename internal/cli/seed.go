package cli

import (
	"fmt"
	"strings"

	"github.com/mkessler-dev/habitkit/internal/seed"
)

type SeedCmd struct {
	Wipe bool `help:"Delete previously seeded habits before seeding again."`
}

func (c *SeedCmd) Run(ctx *Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}

	if c.Wipe {
		if err := seed.Wipe(ctx.Store); err != nil {
			return err
		}
	}

	if err := seed.Apply(ctx.Store, now); err != nil {
		return err
	}

	fmt.Printf("Seeded demo habits: %s\n", strings.Join(seed.Names(), ", "))
	fmt.Println("Explore them with 'habitkit analyze streaks'.")
	return nil
}
