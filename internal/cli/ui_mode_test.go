package cli

import (
	"io"
	"testing"
)

// TestResolveNoColor verifies color mode decision logic.
func TestResolveNoColor(t *testing.T) {
	cases := []struct {
		name        string
		mode        string
		isTTY       bool
		wantNoColor bool
		wantErr     bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, wantNoColor: false},
		{name: "auto non-tty", mode: "auto", isTTY: false, wantNoColor: true},
		{name: "empty means auto", mode: "", isTTY: true, wantNoColor: false},
		{name: "always", mode: "always", isTTY: false, wantNoColor: false},
		{name: "never", mode: "never", isTTY: true, wantNoColor: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	t.Setenv("NO_COLOR", "")

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			noColor, err := resolveNoColor(tc.mode, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if noColor != tc.wantNoColor {
				t.Fatalf("expected noColor=%v, got %v", tc.wantNoColor, noColor)
			}
		})
	}
}

// TestResolveNoColorHonorsEnv verifies NO_COLOR disables color in auto mode.
func TestResolveNoColorHonorsEnv(t *testing.T) {
	original := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = original })
	t.Setenv("NO_COLOR", "1")

	noColor, err := resolveNoColor("auto", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !noColor {
		t.Fatalf("expected NO_COLOR to disable color")
	}
}

// TestDefaultIsTerminalNonFile verifies buffers are never terminals.
func TestDefaultIsTerminalNonFile(t *testing.T) {
	if defaultIsTerminal(nil) {
		t.Fatalf("expected nil writer to be non-terminal")
	}
	if defaultIsTerminal(io.Discard) {
		t.Fatalf("expected io.Discard to be non-terminal")
	}
}
