package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives the built CLI through the full habit
// lifecycle against an isolated config dir: init, add, toggle, week
// grid, toggle back. Build the binary into ./bin first (or point
// HABITGRID_BIN_DIR at it).
func TestEndToEndWorkflow(t *testing.T) {
	binDir := os.Getenv("HABITGRID_BIN_DIR")
	if binDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get cwd: %v", err)
		}
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "habitgrid")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s; build it first", cliPath)
	}

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "habitgrid", "habits.json")

	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "HABITGRID_DB_CONNECTION=") {
			env = append(env, e)
		}
	}
	env = append(env, fmt.Sprintf("HOME=%s", tempDir))

	run := func(args ...string) string {
		t.Helper()
		cmd := exec.Command(cliPath, append([]string{"--config", configPath}, args...)...)
		cmd.Env = env
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("habitgrid %v failed: %v\n%s", args, err, out)
		}
		return string(out)
	}

	// Initialize storage
	out := run("init")
	if !strings.Contains(out, "Initialized storage") {
		t.Errorf("unexpected init output: %s", out)
	}

	// Create a daily and a weekly habit
	out = run("add", "Gym", "--days", "Mon,Wed,Fri")
	if !strings.Contains(out, "daily") {
		t.Errorf("expected daily habit, got: %s", out)
	}
	out = run("add", "Review", "--days", "Sun")
	if !strings.Contains(out, "weekly") {
		t.Errorf("expected weekly habit, got: %s", out)
	}

	// Toggle the daily habit on a scheduled day
	out = run("toggle", "Gym", "Mon", "--date", "2024-05-15")
	if !strings.Contains(out, "Marked") {
		t.Errorf("expected marked, got: %s", out)
	}

	// The week grid shows the completed cell
	out = run("week", "--date", "2024-05-15")
	if !strings.Contains(out, "Gym") || !strings.Contains(out, "x") {
		t.Errorf("expected completed cell in grid, got: %s", out)
	}

	// Toggling again unmarks it
	out = run("toggle", "Gym", "Mon", "--date", "2024-05-15")
	if !strings.Contains(out, "Unmarked") {
		t.Errorf("expected unmarked, got: %s", out)
	}

	// Unscheduled day toggles are rejected at the CLI gate
	cmd := exec.Command(cliPath, "--config", configPath, "toggle", "Gym", "Tue")
	cmd.Env = env
	if out, err := cmd.CombinedOutput(); err == nil {
		t.Errorf("expected unscheduled toggle to fail, got: %s", out)
	}

	// Weekly completion leaks to the whole month bucket
	run("toggle", "Review", "Sun", "--date", "2024-05-15")
	out = run("list", "--date", "2024-05-20")
	if !strings.Contains(out, "[x] Review") {
		t.Errorf("expected review completed later in month, got: %s", out)
	}
	out = run("list", "--date", "2024-06-01")
	if !strings.Contains(out, "[ ] Review") {
		t.Errorf("expected review reset in new month, got: %s", out)
	}
}
