package cli

import (
	"fmt"
	"strings"

	"github.com/mtwalsh/habitgrid/internal/completion"
	"github.com/mtwalsh/habitgrid/internal/models"
)

type WeekCmd struct {
	Date string `help:"Date in YYYY-MM-DD format to evaluate completion against (default: today)." default:""`
}

// Run prints the week grid: one row per habit, one column per weekday.
// "x" is a completed cell, "." an open scheduled cell, and blank an
// unscheduled one.
func (c *WeekCmd) Run(ctx *Context) error {
	now, err := ResolveNow(c.Date)
	if err != nil {
		return err
	}

	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	const nameWidth = 20

	fmt.Print(padName("Habit", nameWidth))
	for _, day := range models.Week {
		fmt.Printf(" %4s", day)
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", nameWidth+5*len(models.Week)))
	fmt.Println()

	for _, h := range habits {
		fmt.Print(padName(h.Name, nameWidth))
		for _, day := range models.Week {
			cell := " "
			if h.IsScheduled(day) {
				cell = "."
				if completion.IsCompleted(h, day, now) {
					cell = "x"
				}
			}
			fmt.Printf(" %4s", cell)
		}
		fmt.Println()
	}
	return nil
}

func padName(name string, width int) string {
	if len(name) > width {
		return name[:width-3] + "..."
	}
	return name + strings.Repeat(" ", width-len(name))
}
