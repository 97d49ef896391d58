package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONStoreGetAbsentKey(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habits.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	_, ok, err := store.Get("habits")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("absent key should report not present")
	}
}

func TestJSONStoreSetGetRoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habits.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := store.Set("habits", `[{"id":"1"}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok, err := store.Get("habits")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || got != `[{"id":"1"}]` {
		t.Errorf("got %q (present=%v)", got, ok)
	}
}

func TestJSONStoreSetReplacesWholeValue(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habits.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := store.Set("habits", "first"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set("habits", "second"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, _, err := store.Get("habits")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "second" {
		t.Errorf("got %q, want full overwrite", got)
	}
}

// Set must not leave stray temp files behind on the happy path.
func TestJSONStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(filepath.Join(dir, "habits.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := store.Set("habits", "[]"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "habits.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("expected only habits.json, got %v", names)
	}
}
