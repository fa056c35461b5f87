// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration loading and shared wiring
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
	"github.com/Munch42/MunchEx/foundation/munchex"
	"github.com/Munch42/MunchEx/internal/history/store"
	"github.com/Munch42/MunchEx/internal/render"
	"github.com/Munch42/MunchEx/internal/session"
	"github.com/Munch42/MunchEx/pkg/core/config"
	"github.com/Munch42/MunchEx/pkg/core/logging"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
)

// errReported is returned by commands that already printed their failure
var errReported = errors.New("failure reported")

// loaded by the root pre-run hook
var (
	appConfig *config.Config
	appLogger *mxlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "munchex",
	Short: "MunchEx - arithmetic language front end",
	Long: `MunchEx tokenizes and parses arithmetic expressions over integers and
floats with + - * / and reports errors with a caret excerpt of the input.

Commands:
  run      - Parse expressions and print the syntax tree
  lex      - Print the token stream
  repl     - Interactive shell
  history  - Inspect the run history`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
}

// Execute runs the root command and prints errors that were not reported
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file (default: $MUNCHEX_CONFIG, ./configs/munchex.toml, ./munchex.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// loadRuntime loads the configuration and installs the logger
func loadRuntime(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level := cfg.General.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}

	appConfig = cfg
	appLogger = logging.Install(logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       level,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})
	appLogger.Debug("configuration loaded", mxlog.Fields{"summary": cfg.Summary()})

	return nil
}

// newEngine creates an engine from the loaded configuration
func newEngine() *munchex.Engine {
	return munchex.NewEngine(munchex.Options{
		Logger:         appLogger,
		MaxInputLength: appConfig.Engine.MaxInputLength,
	})
}

// newRenderer creates a renderer, falling back to the configured format.
// Colors are used only when enabled in the configuration.
func newRenderer(format string, color bool) (*render.Renderer, error) {
	if format == "" {
		format = appConfig.Output.Format
	}
	return render.New(format, color && appConfig.ColorEnabled())
}

// openHistory opens the SQLite run history and prunes entries past the
// retention period
func openHistory(ctx context.Context) (*store.SQLiteHistoryStore, error) {
	hist, err := store.NewSQLiteHistoryStore(store.SQLiteHistoryConfig{
		Path: appConfig.History.Path,
	})
	if err != nil {
		return nil, err
	}

	if retention := appConfig.History.Retention.Duration; retention > 0 {
		removed, err := hist.Prune(ctx, time.Now().Add(-retention))
		if err != nil {
			appLogger.WarnWithErr("history prune failed", err)
		} else if removed > 0 {
			appLogger.Debug("history pruned", mxlog.Fields{"removed": removed})
		}
	}

	return hist, nil
}

// sessionOptions selects how a command evaluates its inputs
type sessionOptions struct {
	Format     string
	SourceName string
	Color      bool
	Record     bool
}

// newSession wires engine, renderer and, when enabled, the run history.
// The returned function releases the history store.
func newSession(ctx context.Context, opts sessionOptions) (*session.Session, func(), error) {
	renderer, err := newRenderer(opts.Format, opts.Color)
	if err != nil {
		return nil, nil, err
	}
	sourceName := opts.SourceName
	if sourceName == "" {
		sourceName = appConfig.Engine.SourceName
	}

	cfg := session.Config{
		Engine:     newEngine(),
		Renderer:   renderer,
		SourceName: sourceName,
		Logger:     appLogger,
	}

	closer := func() {}
	if opts.Record && appConfig.HistoryEnabled() {
		hist, err := openHistory(ctx)
		if err != nil {
			appLogger.WarnWithErr("history unavailable, keeping runs in memory", err, mxlog.Fields{"path": appConfig.History.Path})
			cfg.Store = store.NewMemoryHistoryStore()
		} else {
			cfg.Store = hist
			closer = func() { hist.Close() }
		}
	}

	return session.New(cfg), closer, nil
}
