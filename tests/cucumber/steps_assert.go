//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theExitCodeIs asserts the CLI exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theFileContainsExactly compares a written file. Literal \t in the doc
// string stands for a tab; the file always ends with a newline.
func (s *featureState) theFileContainsExactly(name string, doc *godog.DocString) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	want := strings.ReplaceAll(doc.Content, `\t`, "\t") + "\n"
	if string(data) != want {
		return fmt.Errorf("unexpected content of %s:\n got %q\nwant %q", name, string(data), want)
	}
	return nil
}

// noFileExists asserts a file was not written.
func (s *featureState) noFileExists(name string) error {
	if _, err := os.Stat(s.path(name)); !os.IsNotExist(err) {
		return fmt.Errorf("expected %s to be absent", name)
	}
	return nil
}

// stderrContains checks the error output.
func (s *featureState) stderrContains(doc *godog.DocString) error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, strings.TrimSpace(doc.Content)) {
		return fmt.Errorf("expected stderr to contain %q, got %q", doc.Content, errOutput)
	}
	return nil
}
