// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     cmd
// Description: CLI command for parsing expressions
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	runFormat    string
	runSource    string
	runNoHistory bool
)

var runCmd = &cobra.Command{
	Use:   "run [expression...]",
	Short: "Parse expressions and print the syntax tree",
	Long: `Parses an expression and prints its syntax tree. The arguments are joined
with spaces into one input. Without arguments every line of standard input
is parsed as a separate input.

Diagnostics are written to standard error and the exit status is 1 when any
input fails.

Examples:
  munchex run 3 + 4 '*' 2
  munchex run --format tree "1 - 2 / 3"
  echo "2 * 2.5" | munchex run --format json`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "Output format: repr, tree, json, yaml (default from config)")
	runCmd.Flags().StringVarP(&runSource, "source", "s", "", "Source name shown in diagnostics (default from config)")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Do not record the run")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sess, closeSession, err := newSession(ctx, sessionOptions{
		Format:     runFormat,
		SourceName: runSource,
		Color:      isTerminal(cmd.ErrOrStderr()),
		Record:     !runNoHistory,
	})
	if err != nil {
		return err
	}
	defer closeSession()

	inputs, err := collectInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	failed := 0
	for _, input := range inputs {
		ev := sess.EvaluateAndRecord(ctx, input)
		if ev.Success {
			fmt.Fprintln(cmd.OutOrStdout(), ev.Output)
			continue
		}
		failed++
		fmt.Fprintln(cmd.ErrOrStderr(), ev.Output)
	}

	if failed > 0 {
		return errReported
	}
	return nil
}

// collectInputs joins args into one input, or reads one input per line
func collectInputs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}
