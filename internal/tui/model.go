package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mtwalsh/habitgrid/internal/models"
	"github.com/mtwalsh/habitgrid/internal/tracker"
)

type SessionState int

const (
	StateGrid SessionState = iota
	StateAddHabit
)

// HabitFormModel backs the add-habit form
type HabitFormModel struct {
	Name string
	Days []models.Day
}

type Model struct {
	tracker *tracker.Tracker
	state   SessionState
	keys    KeyMap
	help    help.Model

	cursorRow int
	cursorCol int

	form      *huh.Form
	habitForm *HabitFormModel

	width  int
	height int

	// clock is the injectable "now" source; pure logic never reads the
	// live clock itself.
	clock func() time.Time
}

func New(t *tracker.Tracker) Model {
	return Model{
		tracker: t,
		state:   StateGrid,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		clock:   time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	default:
		return m.updateGrid(msg)
	}
}

func (m Model) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	habits := m.tracker.Habits()

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursorRow > 0 {
			m.cursorRow--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursorRow < len(habits)-1 {
			m.cursorRow++
		}

	case key.Matches(keyMsg, m.keys.Left):
		if m.cursorCol > 0 {
			m.cursorCol--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.cursorCol < len(models.Week)-1 {
			m.cursorCol++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.cursorRow < len(habits) {
			habit := habits[m.cursorRow]
			day := models.Week[m.cursorCol]
			// Unscheduled cells are inert; the toggle gate lives here,
			// not in the engine.
			if habit.IsScheduled(day) {
				m.tracker.Toggle(habit.ID, day, m.clock())
			}
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		// Invalid input makes this a silent no-op in the tracker; the
		// form validators should have caught it already.
		m.tracker.AddHabit(m.habitForm.Name, m.habitForm.Days)
		m.state = StateGrid
	case huh.StateAborted:
		m.state = StateGrid
	}

	return m, cmd
}
