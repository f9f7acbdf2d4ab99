package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/simple-rdbms/internal/config"
	"github.com/leengari/simple-rdbms/internal/database"
	"github.com/leengari/simple-rdbms/internal/engine"
	"github.com/leengari/simple-rdbms/internal/logging"
	"github.com/leengari/simple-rdbms/internal/repl"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, err := config.ParseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, closeFn := logging.SetupLogger(os.Stderr, cfg.LogLevel, cfg.SeqURL)
	defer closeFn()

	slog.SetDefault(logger)
	slog.Info("Starting RDBMS application...", slog.String("db", cfg.DBFile))

	// Load Database
	db, err := database.Open(cfg.DBFile)
	if err != nil {
		slog.Error("failed to load database", "error", err)
		return 1
	}

	eng := engine.New(db)
	if cfg.Trace {
		eng.AddObserver(engine.NewLoggingObserver(logger))
	}

	if err := repl.Start(eng, os.Stdin, os.Stdout); err != nil {
		slog.Error("input error", "error", err)
		return 1
	}

	slog.Info("Shutting down")
	return 0
}
