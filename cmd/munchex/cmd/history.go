// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     cmd
// Description: CLI commands for the run history
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
	"github.com/Munch42/MunchEx/internal/history/store"
)

var (
	historyLimit     int
	historyOffset    int
	historyFormat    string
	historyOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the run history",
	Long: `Shows and maintains the run history. Every run and every line entered in
the shell is recorded when [history] enabled is true.

Examples:
  munchex history list --limit 20
  munchex history list --format json
  munchex history stats
  munchex history prune --older-than 168h
  munchex history clear`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention period",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history statistics",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd, historyPruneCmd, historyStatsCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs")
	historyListCmd.Flags().IntVar(&historyOffset, "offset", 0, "Number of newest runs to skip")
	historyListCmd.Flags().StringVarP(&historyFormat, "format", "f", "text", "Output format: text, json, yaml")

	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 0, "Age limit (default: [history] retention)")
}

// openHistoryStore opens the store for the history commands. These work even
// when recording is disabled.
func openHistoryStore() (*store.SQLiteHistoryStore, error) {
	hist, err := store.NewSQLiteHistoryStore(store.SQLiteHistoryConfig{
		Path: appConfig.History.Path,
	})
	if err != nil {
		return nil, mxerror.Wrap(err, "failed to open history").
			WithCode(mxerror.CodeStorageError).
			WithDetail("path", appConfig.History.Path)
	}
	return hist, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	if historyOffset < 0 {
		return mxerror.New("offset must not be negative").
			WithCode(mxerror.CodeInvalidInput).
			WithDetail("offset", historyOffset)
	}

	hist, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer hist.Close()

	entries, err := hist.List(cmd.Context(), historyLimit, historyOffset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch historyFormat {
	case "json":
		if entries == nil {
			entries = []*store.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	case "text":
		printEntries(out, entries)
	default:
		return mxerror.New("unknown history format: " + historyFormat).
			WithCode(mxerror.CodeInvalidInput)
	}

	return nil
}

func printEntries(out io.Writer, entries []*store.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return
	}

	fmt.Fprintf(out, "%-19s  %-6s  %-30s  %s\n", "TIME", "STATUS", "INPUT", "RESULT")
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "failed"
		}
		fmt.Fprintf(out, "%-19s  %-6s  %-30s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			status,
			truncate(e.Input, 30),
			e.Output)
	}
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	hist, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer hist.Close()

	removed, err := hist.Clear(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs.\n", removed)
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	age := historyOlderThan
	if age <= 0 {
		age = appConfig.History.Retention.Duration
	}

	hist, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer hist.Close()

	removed, err := hist.Prune(cmd.Context(), time.Now().Add(-age))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs older than %s.\n", removed, age)
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	hist, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer hist.Close()

	stats, err := hist.Statistics(cmd.Context())
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "History: %s\n", appConfig.History.Path)
	for _, k := range keys {
		switch v := stats[k].(type) {
		case float64:
			fmt.Fprintf(out, "  %-13s %.1f%%\n", k+":", v*100)
		default:
			fmt.Fprintf(out, "  %-13s %v\n", k+":", v)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(strings.ReplaceAll(s, "\n", "\\n"))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-3]) + "..."
}
