package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScaffoldOutputDir is the export folder named in the scaffolded config.
const ScaffoldOutputDir = "exports"

const defaultConfig = `version: 1
defaults:
  group: 1
output_dir: "./` + ScaffoldOutputDir + `"
history_db: "./` + ScaffoldOutputDir + `/history.duckdb"
serve:
  addr: "127.0.0.1:5000"
`

// ExampleDraftName is the sample question draft written by Scaffold.
const ExampleDraftName = "questions.yml"

const exampleDraft = `version: 1
group: 1
questions:
  - question: "What is 2+2?"
    answers:
      - text: "3"
      - text: "4"
        correct: true
      - text: "5"
      - text: "6"
`

// Scaffold writes a default config and an example draft into dir.
func Scaffold(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory is required")
	}
	configPath := filepath.Join(dir, ConfigFileName)
	draftPath := filepath.Join(dir, ExampleDraftName)
	for _, path := range []string{configPath, draftPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("path %q is a directory", path)
			}
			return "", fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(draftPath, []byte(exampleDraft), 0o644); err != nil {
		return "", fmt.Errorf("write example draft: %w", err)
	}
	return configPath, nil
}
