// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     cmd
// Description: CLI command for printing the token stream
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lexFormat string
	lexSource string
)

var lexCmd = &cobra.Command{
	Use:   "lex [expression...]",
	Short: "Print the token stream",
	Long: `Runs only the lexer and prints the tokens. Without arguments every line of
standard input is tokenized separately.

Formats:
  repr   [INT:1, PLUS, INT:2]
  tree   one token per line with its start index
  json   token objects with kind, value, start and end
  yaml   same as json

Examples:
  munchex lex "(1 + 2.5)"
  munchex lex --format json 7 / 2`,
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexFormat, "format", "f", "", "Output format: repr, tree, json, yaml (default from config)")
	lexCmd.Flags().StringVarP(&lexSource, "source", "s", "", "Source name shown in diagnostics (default from config)")
}

func runLex(cmd *cobra.Command, args []string) error {
	renderer, err := newRenderer(lexFormat, isTerminal(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	source := lexSource
	if source == "" {
		source = appConfig.Engine.SourceName
	}

	inputs, err := collectInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	engine := newEngine()
	failed := 0
	for _, input := range inputs {
		tokens, diag, err := engine.Lex(cmd.Context(), source, input)
		if err != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: "+err.Error())
			continue
		}
		if diag != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.Diagnostic(diag))
			continue
		}

		out, err := renderer.Tokens(tokens)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if failed > 0 {
		return errReported
	}
	return nil
}
