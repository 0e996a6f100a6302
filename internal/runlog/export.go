// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runlog

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookworm/pkg/types"
)

// ExportEntry is one run in a human-readable export shape.
type ExportEntry struct {
	ID          int64  `json:"id" yaml:"id"`
	Directory   string `json:"directory" yaml:"directory"`
	OutputPath  string `json:"output_path" yaml:"output_path"`
	Discovered  int    `json:"discovered" yaml:"discovered"`
	Transcribed int    `json:"transcribed" yaml:"transcribed"`
	Failed      int    `json:"failed" yaml:"failed"`
	StartedAt   string `json:"started_at" yaml:"started_at"`
	Duration    string `json:"duration" yaml:"duration"`
}

func exportEntries(runs []types.Run) []ExportEntry {
	entries := make([]ExportEntry, len(runs))
	for i, run := range runs {
		entries[i] = ExportEntry{
			ID:          run.ID,
			Directory:   run.Directory,
			OutputPath:  run.OutputPath,
			Discovered:  run.Discovered,
			Transcribed: run.Transcribed,
			Failed:      run.Failed,
			StartedAt:   run.StartedAt.UTC().Format(time.RFC3339),
			Duration:    run.Duration.String(),
		}
	}
	return entries
}

// WriteYAML writes the runs to w as a YAML document.
func WriteYAML(w io.Writer, runs []types.Run) error {
	data, err := yaml.Marshal(exportEntries(runs))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes the runs to w as indented JSON.
func WriteJSON(w io.Writer, runs []types.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportEntries(runs))
}

// WriteTable writes the runs to w as an aligned plain-text table.
func WriteTable(w io.Writer, runs []types.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	fmt.Fprintf(w, "%-4s  %-20s  %-11s  %-7s  %s\n", "ID", "STARTED", "TRANSCRIBED", "FAILED", "OUTPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%-4d  %-20s  %3d/%-7d  %-7d  %s\n",
			run.ID,
			run.StartedAt.UTC().Format("2006-01-02 15:04:05"),
			run.Transcribed, run.Discovered,
			run.Failed,
			run.OutputPath,
		)
	}
	return nil
}
