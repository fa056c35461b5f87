// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive shell
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
	"github.com/Munch42/MunchEx/internal/tui/repl"
)

var (
	replPlain  bool
	replFormat string
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell"},
	Short:   "Start the interactive shell",
	Long: `Starts the interactive MunchEx shell. Every line is parsed and the syntax
tree or the diagnostic is printed below it.

The full screen shell is used on a terminal; with --plain or when standard
input is not a terminal a line mode shell reads until end of input.

Key bindings:
  Enter       Parse the line
  ↑/↓         Previous inputs (loaded from the run history)
  PgUp/PgDn   Scroll
  Ctrl+L      Clear
  Esc/Ctrl+C  Quit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replPlain, "plain", false, "Line mode without the full screen interface")
	replCmd.Flags().StringVarP(&replFormat, "format", "f", "", "Output format: repr, tree, json, yaml (default from config)")
}

func runREPL(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	in := cmd.InOrStdin()
	fullScreen := !replPlain && isTerminal(in)
	if fullScreen {
		// log lines would tear the alternate screen; failures reach the status bar
		appLogger = appLogger.WithOutput(io.Discard)
		mxlog.SetDefault(appLogger)
	}

	sess, closeSession, err := newSession(ctx, sessionOptions{
		Format: replFormat,
		Color:  fullScreen,
		Record: true,
	})
	if err != nil {
		return err
	}
	defer closeSession()

	cfg := repl.Config{
		Session:     sess,
		Prompt:      appConfig.REPL.Prompt,
		HistorySize: appConfig.REPL.HistorySize,
		Color:       fullScreen && appConfig.ColorEnabled(),

		MaxInputLength: appConfig.Engine.MaxInputLength,
	}

	if fullScreen {
		return repl.Run(cfg)
	}
	return repl.RunPlain(ctx, cfg, in, cmd.OutOrStdout())
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
