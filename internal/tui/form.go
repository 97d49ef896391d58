package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mtwalsh/habitgrid/internal/models"
)

// newHabitForm builds the add-habit form: a name input and a weekday
// multiselect. Validators mirror the creation rules so the user gets
// feedback instead of the store's silent rejection.
func newHabitForm(fm *HabitFormModel) *huh.Form {
	dayOptions := make([]huh.Option[models.Day], len(models.Week))
	for i, d := range models.Week {
		dayOptions[i] = huh.NewOption(string(d), d)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewMultiSelect[models.Day]().
				Title("Scheduled Days").
				Description("One day makes a weekly habit, more make a daily one").
				Options(dayOptions...).
				Value(&fm.Days).
				Validate(func(days []models.Day) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
