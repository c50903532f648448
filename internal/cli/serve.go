package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"quizmaker/internal/history"
	"quizmaker/internal/web"
)

// serveEditor is a test seam for running the editor server.
var serveEditor = web.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "", "Address to listen on (default: config serve.addr)")
		historyPath := fs.String("history", "", "DuckDB export log (default: config history_db)")
		accessLog := fs.Bool("access-log", false, "Write combined access log lines to stdout")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		projectCfg, err := loadProjectConfig()
		if err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		cfg := web.Config{
			Addr:         pickString(*addr, projectCfg.Serve.Addr),
			DefaultGroup: projectCfg.Defaults.Group,
			Now:          now,
		}
		if cfg.Addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		if *accessLog {
			cfg.AccessLog = stdout
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if dbPath := pickString(*historyPath, projectCfg.HistoryDB); dbPath != "" {
			store, err := history.Open(ctx, dbPath)
			if err != nil {
				fmt.Fprintf(stderr, "Server error: %v\n", err)
				return ExitError
			}
			defer store.Close()
			cfg.Recorder = store
		}

		fmt.Fprintf(stdout, "Serving question editor at http://%s\n", cfg.Addr)
		if err := serveEditor(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
