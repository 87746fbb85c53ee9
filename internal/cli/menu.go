package cli

import "github.com/mkessler-dev/habitkit/internal/menu"

type MenuCmd struct{}

func (c *MenuCmd) Run(ctx *Context) error {
	return menu.New(ctx.Store, ctx.Now).Run()
}
