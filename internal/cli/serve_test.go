package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"quizmaker/internal/web"
)

// TestServeCommandPassesConfig ensures serve forwards parsed config to the server layer.
func TestServeCommandPassesConfig(t *testing.T) {
	dir := enterTempDir(t)
	writeFile(t, dir, ".quizmaker.yml", "version: 1\ndefaults:\n  group: 6\n")

	var gotConfig web.Config
	origServe := serveEditor
	serveEditor = func(_ context.Context, cfg web.Config) error {
		gotConfig = cfg
		return nil
	}
	t.Cleanup(func() { serveEditor = origServe })

	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{"serve", "--addr", "127.0.0.1:5050", "--access-log"}, &stdout, &stderr)
	if exitCode != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", exitCode, stderr.String())
	}
	if gotConfig.Addr != "127.0.0.1:5050" {
		t.Fatalf("unexpected addr: %s", gotConfig.Addr)
	}
	if gotConfig.DefaultGroup != 6 {
		t.Fatalf("unexpected default group: %d", gotConfig.DefaultGroup)
	}
	if gotConfig.AccessLog == nil {
		t.Fatalf("expected access log writer")
	}
	if gotConfig.Recorder != nil {
		t.Fatalf("expected no recorder without history db")
	}
	if !strings.Contains(stdout.String(), "http://127.0.0.1:5050") {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

// TestServeCommandDefaultAddr verifies the built-in address is used without flags.
func TestServeCommandDefaultAddr(t *testing.T) {
	enterTempDir(t)
	var gotAddr string
	origServe := serveEditor
	serveEditor = func(_ context.Context, cfg web.Config) error {
		gotAddr = cfg.Addr
		return nil
	}
	t.Cleanup(func() { serveEditor = origServe })

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"serve"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if gotAddr != "127.0.0.1:5000" {
		t.Fatalf("unexpected addr: %s", gotAddr)
	}
}

// TestServeCommandRejectsArgs verifies positional arguments are refused.
func TestServeCommandRejectsArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"serve", "extra"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
