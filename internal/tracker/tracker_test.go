package tracker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mtwalsh/habitgrid/internal/completion"
	"github.com/mtwalsh/habitgrid/internal/constants"
	"github.com/mtwalsh/habitgrid/internal/models"
	"github.com/mtwalsh/habitgrid/internal/storage"
)

func newTestTracker(t *testing.T) (*Tracker, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habits.json")
	provider := storage.NewJSONStore(path)
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return New(provider), path
}

func TestRestoreEmptyWhenAbsent(t *testing.T) {
	tr, _ := newTestTracker(t)
	tr.Restore()
	if len(tr.Habits()) != 0 {
		t.Errorf("expected empty collection, got %v", tr.Habits())
	}
}

func TestRestoreFailSoftOnCorruptPayload(t *testing.T) {
	tr, path := newTestTracker(t)

	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt payload: %v", err)
	}

	// Must not panic or error; a corrupt mirror yields an empty collection.
	tr.Restore()
	if len(tr.Habits()) != 0 {
		t.Errorf("expected empty collection after corrupt restore, got %v", tr.Habits())
	}
}

func TestAddHabitRejectsInvalidInputSilently(t *testing.T) {
	tr, _ := newTestTracker(t)
	tr.Restore()

	if _, ok := tr.AddHabit("", []models.Day{models.Mon}); ok {
		t.Error("empty name should be rejected")
	}
	if _, ok := tr.AddHabit("Run", nil); ok {
		t.Error("empty schedule should be rejected")
	}
	if len(tr.Habits()) != 0 {
		t.Errorf("collection should be unchanged, got %v", tr.Habits())
	}
}

func TestAddHabitPreservesInsertionOrder(t *testing.T) {
	tr, _ := newTestTracker(t)
	tr.Restore()

	names := []string{"Gym", "Read", "Review"}
	for _, name := range names {
		if _, ok := tr.AddHabit(name, []models.Day{models.Mon, models.Wed}); !ok {
			t.Fatalf("failed to add %q", name)
		}
	}
	tr.Flush()

	habits := tr.Habits()
	if len(habits) != len(names) {
		t.Fatalf("expected %d habits, got %d", len(names), len(habits))
	}
	for i, name := range names {
		if habits[i].Name != name {
			t.Errorf("habit %d = %q, want %q", i, habits[i].Name, name)
		}
	}
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	tr, path := newTestTracker(t)
	tr.Restore()

	now, _ := time.Parse(constants.DateFormat, "2024-05-15")

	gym, _ := tr.AddHabit("Gym", []models.Day{models.Mon, models.Wed, models.Fri})
	review, _ := tr.AddHabit("Review", []models.Day{models.Sun})
	tr.Toggle(gym.ID, models.Mon, now)
	tr.Toggle(review.ID, models.Sun, now)
	tr.Flush()

	// A fresh tracker over the same file sees the identical collection.
	restored := New(storage.NewJSONStore(path))
	restored.Restore()

	habits := restored.Habits()
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(habits))
	}

	if habits[0].ID != gym.ID || habits[0].Frequency != models.FrequencyDaily {
		t.Errorf("gym did not round trip: %+v", habits[0])
	}
	if !completion.IsCompleted(habits[0], models.Mon, now) {
		t.Error("gym Mon completion did not round trip")
	}
	if completion.IsCompleted(habits[0], models.Wed, now) {
		t.Error("gym Wed should not be completed")
	}

	if habits[1].Frequency != models.FrequencyWeekly {
		t.Errorf("review did not round trip: %+v", habits[1])
	}
	if !completion.IsCompleted(habits[1], models.Sun, now) {
		t.Error("review completion did not round trip")
	}
}

func TestToggleUnknownID(t *testing.T) {
	tr, _ := newTestTracker(t)
	tr.Restore()

	if _, ok := tr.Toggle("missing", models.Mon, time.Now()); ok {
		t.Error("toggle of unknown id should report failure")
	}
}

// A failing mirror write is logged and swallowed; the in-memory state
// stays authoritative for the rest of the session.
func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	tr := New(failingProvider{})
	tr.Restore()

	habit, ok := tr.AddHabit("Gym", []models.Day{models.Mon, models.Wed})
	if !ok {
		t.Fatal("add should succeed in memory")
	}
	tr.Flush()

	if got, ok := tr.Get(habit.ID); !ok || got.Name != "Gym" {
		t.Errorf("habit should remain in memory after write failure, got %+v", got)
	}
}

type failingProvider struct{}

func (failingProvider) Init() error  { return nil }
func (failingProvider) Load() error  { return nil }
func (failingProvider) Close() error { return nil }
func (failingProvider) Get(key string) (string, bool, error) {
	return "", false, nil
}
func (failingProvider) Set(key, value string) error {
	return os.ErrPermission
}
func (failingProvider) ConfigPath() string { return "failing" }
