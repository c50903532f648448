package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCommandCreatesFiles(t *testing.T) {
	dir := t.TempDir()

	var out, err bytes.Buffer
	code := Run([]string{"init", "--yes", dir}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	for _, name := range []string{".quizmaker.yml", "questions.yml"} {
		if _, statErr := os.Stat(filepath.Join(dir, name)); statErr != nil {
			t.Fatalf("expected %s to exist: %v", name, statErr)
		}
	}
}

// TestInitScaffoldValidates verifies the scaffolded draft passes validate.
func TestInitScaffoldValidates(t *testing.T) {
	dir := enterTempDir(t)
	var out, err bytes.Buffer
	if code := Run([]string{"init", "--yes"}, &out, &err); code != ExitOK {
		t.Fatalf("init failed: %d %s", code, err.String())
	}
	out.Reset()
	if code := Run([]string{"validate", filepath.Join(dir, "questions.yml")}, &out, &err); code != ExitOK {
		t.Fatalf("expected scaffolded draft to validate, got %d: %s", code, err.String())
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".quizmaker.yml"), []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"init", "--yes", dir}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite error, got %q", err.String())
	}
}

// TestInitCommandPromptDecline verifies answering no cancels.
func TestInitCommandPromptDecline(t *testing.T) {
	dir := t.TempDir()
	original := initInput
	initInput = strings.NewReader("n\n")
	t.Cleanup(func() { initInput = original })

	var out, err bytes.Buffer
	code := Run([]string{"init", dir}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Init cancelled.") {
		t.Fatalf("expected cancel message, got %q", err.String())
	}
	if _, statErr := os.Stat(filepath.Join(dir, ".quizmaker.yml")); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config written")
	}
}

// TestInitCommandGitignore verifies the export folder is ignored once.
func TestInitCommandGitignore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.tmp"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}
	original := initInput
	initInput = strings.NewReader("\n")
	t.Cleanup(func() { initInput = original })

	var out, err bytes.Buffer
	if code := Run([]string{"init", "--gitignore", dir}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	data, readErr := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if readErr != nil {
		t.Fatalf("read .gitignore: %v", readErr)
	}
	if string(data) != "*.tmp\nexports\n" {
		t.Fatalf("unexpected .gitignore %q", string(data))
	}
	if added, _ := addGitignoreEntry(dir, "exports"); added {
		t.Fatalf("expected existing entry to be kept")
	}
}
