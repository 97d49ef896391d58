package tui

import (
	"fmt"
	"strings"

	"github.com/mtwalsh/habitgrid/internal/completion"
	"github.com/mtwalsh/habitgrid/internal/models"
)

const nameWidth = 20

func (m Model) View() string {
	if m.state == StateAddHabit {
		return m.form.View()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Habit Tracker"))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(padCell("Habit", nameWidth)))
	for _, day := range models.Week {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %4s", day)))
	}
	b.WriteString("\n")

	habits := m.tracker.Habits()
	if len(habits) == 0 {
		b.WriteString("\n  No habits yet.\n  Press 'a' to add one.\n")
	}

	now := m.clock()
	for row, h := range habits {
		b.WriteString(nameStyle.Render(padCell(h.Name, nameWidth)))
		for col, day := range models.Week {
			cell, style := " · ", unscheduledStyle
			if h.IsScheduled(day) {
				if completion.IsCompleted(h, day, now) {
					cell, style = " ✓ ", completedStyle
				} else {
					cell, style = " ○ ", openStyle
				}
			}
			if row == m.cursorRow && col == m.cursorCol {
				style = cursorStyle
			}
			b.WriteString("  ")
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render("week of " + now.Format("2006-01-02")))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func padCell(s string, width int) string {
	if len(s) > width {
		return s[:width-3] + "..."
	}
	return s + strings.Repeat(" ", width-len(s))
}
