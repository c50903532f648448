package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"quizmaker/internal/export"
	"quizmaker/internal/history"
	"quizmaker/internal/quiz"
)

// fixtureConfig defines the JSON config for generating an export log fixture.
type fixtureConfig struct {
	Attempts      int `json:"attempts"`
	RejectedEvery int `json:"rejected_every"`
}

// rejectionMessages cycles through the serializer's failure wording.
var rejectionMessages = []string{
	"Question 1 is empty.",
	"Question 2, Answer 3 is empty.",
	`Question 1 contains "<...>" which is not allowed (e.g., "<stdio.h>").`,
	"Question 3 must have exactly 4 answers.",
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output duckdb file path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <duckdb file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Attempts <= 0 {
		return fixtureConfig{}, errors.New("attempts must be positive")
	}
	return cfg, nil
}

func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	store, err := history.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	start := time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < cfg.Attempts; i++ {
		group := i%quiz.MaxGroup + 1
		due := start.AddDate(0, 0, 7+i%28)
		entry := export.Entry{
			FileName:      quiz.FileName(group, due),
			GroupNum:      group,
			QuestionCount: i%quiz.MaxQuestions + 1,
			DueDate:       due,
			At:            start.Add(time.Duration(i) * time.Minute),
		}
		if cfg.RejectedEvery > 0 && (i+1)%cfg.RejectedEvery == 0 {
			entry.Err = errors.New(rejectionMessages[i%len(rejectionMessages)])
		} else {
			entry.ByteSize = 48 * entry.QuestionCount
		}
		if err := store.Record(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// removeIfExists deletes an existing fixture file so we always start fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}
