// Package tracker owns the authoritative in-memory habit collection and
// mirrors it to the durable store after every mutation. Reads and writes
// against the mirror are fail-soft: the in-memory collection stays the
// source of truth for the session even when the mirror misbehaves.
package tracker

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mtwalsh/habitgrid/internal/completion"
	"github.com/mtwalsh/habitgrid/internal/constants"
	"github.com/mtwalsh/habitgrid/internal/logger"
	"github.com/mtwalsh/habitgrid/internal/models"
	"github.com/mtwalsh/habitgrid/internal/storage"
)

// Tracker holds the habit collection in insertion order.
type Tracker struct {
	provider storage.Provider
	habits   []models.Habit

	// writeMu serializes mirror writes; persistence is asynchronous and
	// a trailing write must not interleave with an earlier one.
	writeMu sync.Mutex
	pending sync.WaitGroup
}

func New(provider storage.Provider) *Tracker {
	return &Tracker{
		provider: provider,
	}
}

// Restore loads the collection from the durable store. An absent key
// yields an empty collection; an unparseable payload is logged and also
// yields an empty collection. Restore never fails the caller.
func (t *Tracker) Restore() {
	t.habits = nil

	payload, ok, err := t.provider.Get(constants.CollectionKey)
	if err != nil {
		logger.Error("failed to load habits, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	var habits []models.Habit
	if err := json.Unmarshal([]byte(payload), &habits); err != nil {
		logger.Error("failed to parse stored habits, starting empty", "error", err)
		return
	}
	t.habits = habits
}

// Habits returns the collection in insertion order.
func (t *Tracker) Habits() []models.Habit {
	return t.habits
}

// Get returns the habit with the given id.
func (t *Tracker) Get(id string) (models.Habit, bool) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// GetByName returns the first habit with the given name. Names are not
// required to be unique; only ids are.
func (t *Tracker) GetByName(name string) (models.Habit, bool) {
	for _, h := range t.habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// AddHabit validates and appends a new habit. Invalid input (empty name
// or empty day set) is a silent no-op: the collection is unchanged, no
// id is issued, and ok is false.
func (t *Tracker) AddHabit(name string, days []models.Day) (models.Habit, bool) {
	habit, err := models.NewHabit(name, days)
	if err != nil {
		logger.Debug("rejected habit", "name", name, "error", err)
		return models.Habit{}, false
	}

	t.habits = append(t.habits, habit)
	t.persistAsync()
	return habit, true
}

// Toggle flips the completion state of the identified habit for the
// given day at the given time and returns the updated habit. Callers
// gate on IsScheduled; the engine does not re-validate the day.
func (t *Tracker) Toggle(id string, day models.Day, now time.Time) (models.Habit, bool) {
	for i, h := range t.habits {
		if h.ID == id {
			t.habits[i] = completion.Toggle(h, day, now)
			t.persistAsync()
			return t.habits[i], true
		}
	}
	return models.Habit{}, false
}

// Persist writes the full collection to the mirror synchronously,
// replacing prior state.
func (t *Tracker) Persist() error {
	payload, err := json.MarshalIndent(t.habits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if err := t.provider.Set(constants.CollectionKey, string(payload)); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}
	return nil
}

// persistAsync snapshots the collection and writes it in the background.
// A failed write is logged and otherwise ignored; memory is not rolled
// back.
func (t *Tracker) persistAsync() {
	payload, err := json.MarshalIndent(t.habits, "", "  ")
	if err != nil {
		logger.Error("failed to serialize habits", "error", err)
		return
	}

	t.pending.Add(1)
	go func() {
		defer t.pending.Done()
		t.writeMu.Lock()
		defer t.writeMu.Unlock()
		if err := t.provider.Set(constants.CollectionKey, string(payload)); err != nil {
			logger.Error("failed to save habits", "error", err)
		}
	}()
}

// Flush blocks until all trailing mirror writes have completed. Callers
// that exit right after a mutation use it to avoid losing the write.
func (t *Tracker) Flush() {
	t.pending.Wait()
}
