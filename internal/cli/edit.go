package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizmaker/internal/export"
	"quizmaker/internal/form"
	"quizmaker/internal/history"
	"quizmaker/internal/quiz"
	"quizmaker/internal/tui"
)

// runEditor is a test seam for running the terminal editor.
var runEditor = func(model tui.Model, stdout io.Writer) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(stdout)).Run()
	return err
}

// runEdit builds the handler for the edit command.
func runEdit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		group := flags.Int("group", 0, "Starting group number 1-10 (default: config)")
		due := flags.String("due", "", "Due date YYYY-MM-DD (default: today)")
		outDir := flags.String("out", "", "Output directory (default: config output_dir)")
		historyPath := flags.String("history", "", "DuckDB export log (default: config history_db)")
		colorMode := flags.String("color", "auto", "Color output (auto|always|never)")
		if err := flags.Parse(args); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		noColor, err := resolveNoColor(*colorMode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "quizmaker edit requires an interactive terminal; use export with a draft file instead.")
			return ExitError
		}

		cfg, err := loadProjectConfig()
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed:\n%v\n", err)
			return ExitError
		}
		dueDate, err := resolveDue(*due)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		initial, err := form.New(dueDate).SetGroupNum(pickInt(*group, cfg.Defaults.Group, quiz.MinGroup))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		exporter := export.Exporter{Now: now}
		if dbPath := pickString(*historyPath, cfg.HistoryDB); dbPath != "" {
			store, err := history.Open(context.Background(), dbPath)
			if err != nil {
				fmt.Fprintf(stderr, "Edit failed:\n%v\n", err)
				return ExitError
			}
			defer store.Close()
			exporter.Recorder = store
		}

		model := tui.NewModel(initial, tui.Options{
			OutDir:   pickString(*outDir, cfg.OutputDir),
			NoColor:  noColor,
			Exporter: exporter,
		})
		if err := runEditor(model, stdout); err != nil {
			fmt.Fprintf(stderr, "Edit failed:\n%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
