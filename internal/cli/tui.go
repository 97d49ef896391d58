package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtwalsh/habitgrid/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.New(ctx.Tracker)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Pick up any persistence writes still in flight before exiting.
	ctx.Tracker.Flush()
	return nil
}
