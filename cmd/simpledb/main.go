// Command simpledb opens a database file and runs the interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/felipebalbi/simpledb/internal/dbfatal"
	"github.com/felipebalbi/simpledb/internal/pager"
	"github.com/felipebalbi/simpledb/internal/repl"
	"github.com/felipebalbi/simpledb/internal/table"
)

func main() {
	logLevel := pflag.String("log-level", "info", "log level: debug, info, warn, error")
	cachePages := pflag.Uint32("cache-pages", pager.DefaultMaxPages, "maximum number of pages held in the page cache")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: simpledb <filename>")
		os.Exit(1)
	}
	filename := pflag.Arg(0)

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simpledb: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	dbfatal.SetLogger(logger.Sugar())

	t, err := table.Open(filename, *cachePages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simpledb: unable to open %s: %v\n", filename, err)
		os.Exit(1)
	}

	driver, err := repl.New(t, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simpledb: %v\n", err)
		os.Exit(1)
	}
	defer driver.Close()

	if err := driver.Run(); err != nil {
		logger.Sugar().Debugw("repl exited", "error", err)
	}

	if err := t.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "simpledb: error closing database: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
