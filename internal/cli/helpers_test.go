package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleDraft = `version: 1
group: 3
due: "2025-01-05"
questions:
  - question: "What is 2+2?"
    answers:
      - text: "3"
      - text: "4"
        correct: true
      - text: "5"
      - text: "22"
`

const sampleExport = "MA\t(g3) What is 2+2?\t3\tINCORRECT\t4\tCORRECT\t5\tINCORRECT\t22\tINCORRECT\n"

// enterTempDir runs the test from an empty directory so no project config
// above the repository leaks in.
func enterTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// writeFile writes a fixture relative to dir.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// freezeNow pins the command clock.
func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	original := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = original })
}
