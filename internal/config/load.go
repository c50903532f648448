package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quizmaker/internal/quiz"
)

// Issue captures a validation problem in a config file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more config issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

// Load reads, parses, normalizes, and validates a config file. Relative
// paths are resolved against the config file directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	baseDir := filepath.Dir(path)
	cfg.OutputDir = resolveRelative(baseDir, cfg.OutputDir)
	cfg.HistoryDB = resolveRelative(baseDir, cfg.HistoryDB)
	Normalize(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover loads the nearest config above startDir, or the defaults when
// there is none.
func Discover(startDir string) (Config, string, error) {
	path, err := FindConfigPath(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// Parse decodes a single YAML config document with known fields only.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Validate checks a normalized config.
func Validate(cfg Config) error {
	var issues []Issue
	if cfg.Version != 1 {
		issues = append(issues, Issue{Field: "version", Message: fmt.Sprintf("unsupported version %d", cfg.Version)})
	}
	if cfg.Defaults.Group < quiz.MinGroup || cfg.Defaults.Group > quiz.MaxGroup {
		issues = append(issues, Issue{
			Field:   "defaults.group",
			Message: fmt.Sprintf("must be between %d and %d", quiz.MinGroup, quiz.MaxGroup),
		})
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
