package cli

import (
	"fmt"
	"strings"

	"github.com/mtwalsh/habitgrid/internal/completion"
	"github.com/mtwalsh/habitgrid/internal/models"
)

type AddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Days string `required:"" help:"Comma-separated weekdays the habit is scheduled on (e.g. Mon,Wed,Fri)."`
}

func (c *AddCmd) Run(ctx *Context) error {
	days, err := models.ParseDays(c.Days)
	if err != nil {
		return err
	}

	// The tracker rejects invalid input silently; validate here so the
	// user gets feedback.
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if len(days) == 0 {
		return fmt.Errorf("at least one scheduled day is required")
	}

	habit, ok := ctx.Tracker.AddHabit(c.Name, days)
	if !ok {
		return fmt.Errorf("habit was not added")
	}
	ctx.Tracker.Flush()

	fmt.Printf("Added %s habit: %s (%s)\n", habit.Frequency, habit.Name, formatDays(habit.Days))
	return nil
}

type ListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format to evaluate completion against (default: today)." default:""`
}

func (c *ListCmd) Run(ctx *Context) error {
	now, err := ResolveNow(c.Date)
	if err != nil {
		return err
	}

	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		status := "[ ]"
		if completion.IsCompleted(h, models.DayOf(now.Weekday()), now) {
			status = "[x]"
		}
		fmt.Printf("%s %s (%s: %s)\n", status, h.Name, h.Frequency, formatDays(h.Days))
	}
	return nil
}

type ToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Day  string `arg:"" help:"Weekday to toggle (e.g. Mon)."`
	Date string `help:"Date in YYYY-MM-DD format that scopes weekly completion (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	now, err := ResolveNow(c.Date)
	if err != nil {
		return err
	}

	day, err := models.ParseDay(c.Day)
	if err != nil {
		return err
	}

	habit, ok := ctx.Tracker.GetByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	// Unscheduled days are inert: the engine does not re-validate, so
	// the gate lives here with the caller.
	if !habit.IsScheduled(day) {
		return fmt.Errorf("habit %q is not scheduled on %s", c.Name, day)
	}

	updated, _ := ctx.Tracker.Toggle(habit.ID, day, now)
	ctx.Tracker.Flush()

	if completion.IsCompleted(updated, day, now) {
		fmt.Printf("Marked %q done for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", c.Name, day)
	}
	return nil
}

func formatDays(days []models.Day) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}
