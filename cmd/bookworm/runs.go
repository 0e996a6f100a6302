// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookworm/internal/runlog"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past extract-book runs",
	Long: `Runs lists extractions recorded in the local ledger, newest first,
including how many pages each run discovered, transcribed, and skipped.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().String("format", "table", "output format: table, yaml, or json")
	runsCmd.Flags().Int("limit", 0, "maximum number of runs to list (0 = ledger default)")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := runlog.NewStore(ledgerConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	switch format {
	case "table":
		return runlog.WriteTable(os.Stdout, runs)
	case "yaml":
		return runlog.WriteYAML(os.Stdout, runs)
	case "json":
		return runlog.WriteJSON(os.Stdout, runs)
	default:
		return fmt.Errorf("unknown format %q: use table, yaml, or json", format)
	}
}
