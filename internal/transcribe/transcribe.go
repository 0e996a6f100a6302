// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcribe runs the extract-book pipeline: discover page images,
// normalize and encode each one, submit it to a vision-language provider,
// and aggregate the returned markdown into a single output file. Pages are
// processed strictly in discovery order, one at a time; a failed page is
// skipped, never retried, and never reorders the rest.
package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/bookworm/internal/discover"
	"github.com/pdiddy/bookworm/internal/heic"
	"github.com/pdiddy/bookworm/internal/pacing"
	"github.com/pdiddy/bookworm/pkg/types"
)

// Separator follows every transcribed page in the output document.
const Separator = "\n\n---\n---\n\n"

// Provider converts one page image into markdown text.
type Provider interface {
	Transcribe(ctx context.Context, image []byte) (string, error)
}

// Pipeline holds the collaborators for one extract-book run.
type Pipeline struct {
	Provider  Provider
	Converter heic.Converter
	Gate      *pacing.Gate
}

// Result summarizes a completed run.
type Result struct {
	// Discovered is the number of images found in the input directory.
	Discovered int

	// Transcribed is the number of pages whose text reached the output.
	Transcribed int

	// Failed is the number of pages skipped due to conversion or API errors.
	Failed int

	// OutputPath is the absolute path of the written file; empty when
	// discovery found nothing.
	OutputPath string
}

// HasFailures reports whether any page was skipped.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run executes the pipeline over dir, printing per-page progress to w. It
// returns a discover.ErrNotDirectory when dir is invalid and an error when
// the output file cannot be written; per-page failures are logged to w,
// counted, and never abort the run. When no images match, no output file is
// written and the zero Result is returned.
func (p *Pipeline) Run(ctx context.Context, dir string, cfg types.ExtractionConfig, w io.Writer) (Result, error) {
	pages, err := discover.Images(dir, cfg.ImageExtensions)
	if err != nil {
		return Result{}, err
	}

	if len(pages) == 0 {
		fmt.Fprintf(w, "No images found in %q with extensions: %s\n", dir, cfg.ImageExtensions)
		return Result{}, nil
	}

	fmt.Fprintf(w, "Found %d images to process\n", len(pages))

	var results []types.PageResult
	failed := 0
	for _, page := range pages {
		fmt.Fprintf(w, "Processing image %d/%d: %s\n", page.Index+1, len(pages), page.Path)

		data, err := p.normalize(page.Path)
		if err != nil {
			fmt.Fprintf(w, "Error converting image %s: %v\n", page.Path, err)
			failed++
			continue
		}

		// Pace the provider calls to stay under rate limits.
		if err := p.Gate.Wait(ctx); err != nil {
			return Result{}, err
		}

		text, err := p.Provider.Transcribe(ctx, data)
		if err != nil {
			fmt.Fprintf(w, "Error processing image %s: %v\n", page.Path, err)
			failed++
			continue
		}

		results = append(results, types.PageResult{Path: page.Path, Text: text})
	}

	outputPath := filepath.Join(dir, "..", cfg.OutputFile)
	var doc strings.Builder
	for _, r := range results {
		doc.WriteString(r.Text)
		doc.WriteString(Separator)
	}
	if err := os.WriteFile(outputPath, []byte(doc.String()), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing output file %s: %w", outputPath, err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		absPath = outputPath
	}

	fmt.Fprintf(w, "Successfully extracted content from %d pages\n", len(pages))
	fmt.Fprintf(w, "Transcribed %d/%d page(s)\n", len(results), len(pages))
	fmt.Fprintf(w, "Output written to: %s\n", absPath)

	return Result{
		Discovered:  len(pages),
		Transcribed: len(results),
		Failed:      failed,
		OutputPath:  absPath,
	}, nil
}

// normalize produces transport-ready bytes for one image: HEIC files go
// through the external converter, everything else is read unchanged.
func (p *Pipeline) normalize(path string) ([]byte, error) {
	if heic.IsHEIC(path) {
		return p.Converter.Convert(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	return data, nil
}
