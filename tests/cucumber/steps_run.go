//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"gopkg.in/yaml.v3"

	"quizmaker/internal/cli"
	"quizmaker/internal/quiz"
)

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quizmaker" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

// aProjectConfigurationWithDefaultGroup writes .quizmaker.yml.
func (s *featureState) aProjectConfigurationWithDefaultGroup(group int) error {
	body := fmt.Sprintf("version: 1\ndefaults:\n  group: %d\noutput_dir: ./out\n", group)
	return s.writeProjectFile(".quizmaker.yml", []byte(body))
}

// aDraftWithQuestion writes a one-question draft.
func (s *featureState) aDraftWithQuestion(name, question string, answers *godog.Table) error {
	draft := quiz.Draft{Version: 1}
	return s.appendQuestion(name, draft, question, answers)
}

// theDraftAlsoHasQuestion appends a question to an existing draft.
func (s *featureState) theDraftAlsoHasQuestion(name, question string, answers *godog.Table) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}
	draft, err := quiz.ParseDraftYAML(data)
	if err != nil {
		return err
	}
	return s.appendQuestion(name, draft, question, answers)
}

func (s *featureState) appendQuestion(name string, draft quiz.Draft, question string, answers *godog.Table) error {
	dq := quiz.DraftQuestion{Question: question}
	for i, row := range answers.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 2 {
			return fmt.Errorf("answer rows need text and correct columns")
		}
		correct, err := strconv.ParseBool(strings.TrimSpace(row.Cells[1].Value))
		if err != nil {
			return fmt.Errorf("parse correct column: %w", err)
		}
		dq.Answers = append(dq.Answers, quiz.DraftAnswer{Text: row.Cells[0].Value, Correct: correct})
	}
	draft.Questions = append(draft.Questions, dq)
	data, err := yaml.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return s.writeProjectFile(name, data)
}

func (s *featureState) writeProjectFile(name string, data []byte) error {
	if s.projectDir == "" {
		if err := s.anEmptyProjectDirectory(); err != nil {
			return err
		}
	}
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *featureState) path(name string) string {
	return filepath.Join(s.projectDir, filepath.FromSlash(name))
}
