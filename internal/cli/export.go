package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizmaker/internal/export"
	"quizmaker/internal/history"
	"quizmaker/internal/quiz"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		group := flags.Int("group", 0, "Group number 1-10 (default: draft, then config)")
		due := flags.String("due", "", "Due date YYYY-MM-DD (default: draft, then today)")
		outDir := flags.String("out", "", "Output directory (default: config output_dir)")
		toStdout := flags.Bool("stdout", false, "Write the file content to stdout")
		historyPath := flags.String("history", "", "DuckDB export log (default: config history_db)")
		if err := flags.Parse(args); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "Missing <draft.yml>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *group != 0 && (*group < quiz.MinGroup || *group > quiz.MaxGroup) {
			fmt.Fprintf(stderr, "invalid --group %d (expected %d-%d)\n", *group, quiz.MinGroup, quiz.MaxGroup)
			return ExitUsage
		}

		cfg, err := loadProjectConfig()
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}
		draft, err := quiz.LoadDraft(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}
		f, err := formFromDraft(draft, cfg, *group, *due)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}

		ctx := context.Background()
		exporter := export.Exporter{Now: now}
		if dbPath := pickString(*historyPath, cfg.HistoryDB); dbPath != "" {
			store, err := history.Open(ctx, dbPath)
			if err != nil {
				fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
				return ExitError
			}
			defer store.Close()
			exporter.Recorder = store
		}

		file, err := exporter.Export(ctx, f)
		exportErr, recordErr := export.SplitError(err)
		if recordErr != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", recordErr)
		}
		if exportErr != nil {
			fmt.Fprintf(stderr, "Export failed:\n%s\n", strings.TrimSpace(exportErr.Error()))
			return ExitError
		}
		if *toStdout {
			if _, err := stdout.Write(file.Content); err != nil {
				fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
				return ExitError
			}
			return ExitOK
		}
		path, err := export.WriteFile(pickString(*outDir, cfg.OutputDir), file)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}
