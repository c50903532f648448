package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"quizmaker/internal/config"
	"quizmaker/internal/form"
	"quizmaker/internal/quiz"
)

// now is a test seam for the current date.
var now = time.Now

// loadProjectConfig finds .quizmaker.yml from the working directory.
func loadProjectConfig() (config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve working directory: %w", err)
	}
	cfg, _, err := config.Discover(wd)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// pickString returns the first non-empty value.
func pickString(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// pickInt returns the first non-zero value.
func pickInt(values ...int) int {
	for _, value := range values {
		if value != 0 {
			return value
		}
	}
	return 0
}

// resolveDue parses an optional --due flag, defaulting to today.
func resolveDue(flagValue string) (time.Time, error) {
	if strings.TrimSpace(flagValue) == "" {
		return now(), nil
	}
	due, err := quiz.ParseDate(flagValue)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --due: %w", err)
	}
	return due, nil
}

// formFromDraft applies flag and config precedence to a loaded draft.
func formFromDraft(draft quiz.Draft, cfg config.Config, groupFlag int, dueFlag string) (form.Form, error) {
	due, err := draft.DueDate(now())
	if err != nil {
		return form.Form{}, err
	}
	if strings.TrimSpace(dueFlag) != "" {
		if due, err = resolveDue(dueFlag); err != nil {
			return form.Form{}, err
		}
	}
	group := pickInt(groupFlag, draft.Group, cfg.Defaults.Group, config.DefaultGroup)
	return form.FromQuestions(group, due, draft.Records())
}
