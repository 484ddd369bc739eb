package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	// Surface the day-rollover notice before the dashboard takes the screen.
	broken, err := a.CheckDayRollover()
	if err != nil {
		return err
	}

	model := tui.NewModel(a, broken)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI crashed: %w", err)
	}
	return nil
}
