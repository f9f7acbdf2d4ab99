// Package config resolves process settings from command-line flags, the
// environment and an optional .env file. Flags win over the environment,
// which wins over defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/leengari/simple-rdbms/internal/logging"
)

const (
	DefaultDBFile   = "database.json"
	DefaultLogLevel = "info"

	EnvDBFile   = "RDBMS_DB_FILE"
	EnvLogLevel = "RDBMS_LOG_LEVEL"
	EnvSeqURL   = "RDBMS_SEQ_URL"
	EnvTrace    = "RDBMS_TRACE"
)

type Config struct {
	DBFile   string     // path of the JSON database document
	LogLevel slog.Level // minimum level written by the logger
	SeqURL   string     // Seq ingestion URL; empty means console only
	Trace    bool       // attach the logging observer to the engine
}

// LoadEnvFile loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags parses args and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var levelName string

	fs := flag.NewFlagSet("rdbms", flag.ContinueOnError)
	fs.StringVar(&cfg.DBFile, "db", "", "Path of the database file (env "+EnvDBFile+")")
	fs.StringVar(&levelName, "log-level", "", "Log level: debug, info, warn, error (env "+EnvLogLevel+")")
	fs.StringVar(&cfg.SeqURL, "seq-url", "", "Seq server URL for log shipping (env "+EnvSeqURL+")")
	fs.BoolVar(&cfg.Trace, "trace", false, "Log statement lifecycle events (env "+EnvTrace+")")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.DBFile == "" {
		cfg.DBFile = os.Getenv(EnvDBFile)
	}
	if cfg.DBFile == "" {
		cfg.DBFile = DefaultDBFile
	}

	if levelName == "" {
		levelName = os.Getenv(EnvLogLevel)
	}
	if levelName == "" {
		levelName = DefaultLogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if cfg.SeqURL == "" {
		cfg.SeqURL = os.Getenv(EnvSeqURL)
	}

	if !set["trace"] {
		if v := os.Getenv(EnvTrace); v != "" {
			trace, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s env variable: %w", EnvTrace, err)
			}
			cfg.Trace = trace
		}
	}

	return cfg, nil
}
