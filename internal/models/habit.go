package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Frequency classifies how often a habit is expected to be completed.
// It is derived from the schedule once at creation and never recomputed.
type Frequency string

const (
	// FrequencyDaily means the habit is tracked per scheduled weekday.
	FrequencyDaily Frequency = "daily"
	// FrequencyWeekly means the habit is tracked as a single flag per
	// month bucket. Habits scheduled on exactly one weekday are weekly.
	FrequencyWeekly Frequency = "weekly"
)

// Habit represents a recurring practice scheduled on specific weekdays
type Habit struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Days          []Day     `json:"days"`
	Frequency     Frequency `json:"frequency"`
	CompletedDays []Marker  `json:"completed_days"`
	CreatedAt     time.Time `json:"created_at"`
}

var (
	ErrEmptyName     = errors.New("habit name cannot be empty")
	ErrEmptySchedule = errors.New("habit must be scheduled on at least one day")
)

// NewHabit creates a habit with a fresh ID and a frequency derived from
// the schedule size: one scheduled day makes a weekly habit, two or more
// a daily one.
func NewHabit(name string, days []Day) (Habit, error) {
	if strings.TrimSpace(name) == "" {
		return Habit{}, ErrEmptyName
	}
	if len(days) == 0 {
		return Habit{}, ErrEmptySchedule
	}

	frequency := FrequencyDaily
	if len(days) == 1 {
		frequency = FrequencyWeekly
	}

	return Habit{
		ID:            uuid.New().String(),
		Name:          name,
		Days:          append([]Day(nil), days...),
		Frequency:     frequency,
		CompletedDays: []Marker{},
		CreatedAt:     time.Now(),
	}, nil
}

// IsScheduled reports whether the habit is actionable on the given day.
func (h Habit) IsScheduled(day Day) bool {
	for _, d := range h.Days {
		if d == day {
			return true
		}
	}
	return false
}
