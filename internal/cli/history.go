package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"quizmaker/internal/history"
	"quizmaker/internal/quiz"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		limit := fs.Int("limit", history.DefaultListLimit, "Maximum number of attempts to show")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *limit <= 0 {
			fmt.Fprintln(stderr, "--limit must be positive")
			return ExitUsage
		}

		dbPath := fs.Arg(0)
		if dbPath == "" {
			cfg, err := loadProjectConfig()
			if err != nil {
				fmt.Fprintf(stderr, "History failed: %v\n", err)
				return ExitError
			}
			dbPath = cfg.HistoryDB
		}
		if dbPath == "" {
			fmt.Fprintln(stderr, "Missing <db.duckdb>")
			return ExitUsage
		}
		if _, err := os.Stat(dbPath); err != nil {
			fmt.Fprintf(stderr, "Database not found: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		store, err := history.Open(ctx, dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		defer store.Close()
		records, err := store.List(ctx, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		if len(records) == 0 {
			fmt.Fprintln(stdout, "No exports recorded.")
			return ExitOK
		}
		fmt.Fprintln(stdout, renderHistory(records))
		return ExitOK
	}
}

// renderHistory formats export attempts as a plain bordered table.
func renderHistory(records []history.Record) string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.CreatedAt.Local().Format("2006-01-02 15:04"),
			record.FileName,
			strconv.Itoa(record.GroupNum),
			strconv.Itoa(record.QuestionCount),
			quiz.FormatDate(record.DueDate),
			record.Status,
			record.Message,
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("WHEN", "FILE", "GROUP", "QUESTIONS", "DUE", "STATUS", "MESSAGE").
		Rows(rows...).
		String()
}
