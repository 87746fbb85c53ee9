package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkessler-dev/habitkit/internal/cli"
	"github.com/mkessler-dev/habitkit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
