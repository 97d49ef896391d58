package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Init(); err != nil {
		return err
	}

	// Seed an empty collection so later loads find a valid payload.
	ctx.Tracker.Restore()
	if err := ctx.Tracker.Persist(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at: %s\n", ctx.Provider.ConfigPath())
	return nil
}
