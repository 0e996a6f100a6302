// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookworm/internal/discover"
	"github.com/pdiddy/bookworm/internal/heic"
	"github.com/pdiddy/bookworm/internal/pacing"
	"github.com/pdiddy/bookworm/internal/runlog"
	"github.com/pdiddy/bookworm/internal/secrets"
	"github.com/pdiddy/bookworm/internal/transcribe"
	"github.com/pdiddy/bookworm/pkg/types"
)

var extractBookCmd = &cobra.Command{
	Use:   "extract-book DIRECTORY",
	Short: "Transcribe a directory of book-page images into one markdown file",
	Long: `Extract-book scans DIRECTORY for page images, sends each one to a
vision-language model for transcription, and writes the concatenated
markdown to a single file in the parent of DIRECTORY. Pages are processed
in filename order; a page that fails conversion or transcription is
skipped and the rest of the book proceeds.

HEIC images are converted to JPEG first via sips (macOS) or ImageMagick.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractBook,
}

func init() {
	extractBookCmd.Flags().String("output-file", "to_read.md", "name of the output markdown file")
	extractBookCmd.Flags().String("image-extensions", "jpg,jpeg,png,heic", "comma-separated list of image extensions to process")

	rootCmd.AddCommand(extractBookCmd)
}

func runExtractBook(cmd *cobra.Command, args []string) error {
	dir := args[0]
	outputFile, _ := cmd.Flags().GetString("output-file")
	extensions, _ := cmd.Flags().GetString("image-extensions")

	apiKey := secrets.OpenAIKey(secretsDir)
	if apiKey == "" {
		return fmt.Errorf("no API key found: set %s or create %s%s",
			secrets.EnvOpenAIKey, secretsDir, secrets.FileOpenAIKey)
	}

	cfg := types.ExtractionConfig{
		AIConfig: types.AIConfig{
			Model:     viper.GetString("model"),
			APIKey:    apiKey,
			MaxTokens: viper.GetInt("max_tokens"),
		},
		OutputFile:      outputFile,
		ImageExtensions: extensions,
		CallInterval:    viper.GetDuration("call_interval"),
	}

	pipeline := &transcribe.Pipeline{
		Provider: &transcribe.OpenAIProvider{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		},
		Converter: heic.NewToolChain(),
		Gate:      pacing.NewGate(cfg.CallInterval),
	}

	started := time.Now()
	result, err := pipeline.Run(cmd.Context(), dir, cfg, os.Stdout)
	if err != nil {
		var notDir *discover.ErrNotDirectory
		if errors.As(err, &notDir) {
			// Setup problem, reported with a normal exit.
			fmt.Printf("Error: %v\n", notDir)
			return nil
		}
		return err
	}

	if result.Discovered == 0 {
		return nil
	}

	recordRun(dir, started, result)
	return nil
}

// recordRun appends the run to the local ledger. Ledger problems never fail
// an extraction that already wrote its output.
func recordRun(dir string, started time.Time, result transcribe.Result) {
	store, err := runlog.NewStore(ledgerConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open run ledger: %v\n", err)
		return
	}
	defer store.Close()

	_, err = store.Record(context.Background(), types.Run{
		Directory:   dir,
		OutputPath:  result.OutputPath,
		Discovered:  result.Discovered,
		Transcribed: result.Transcribed,
		Failed:      result.Failed,
		StartedAt:   started,
		Duration:    time.Since(started),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
