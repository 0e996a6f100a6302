// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Page is one book-page image discovered in the input directory.
type Page struct {
	// Path is the filesystem path to the image file.
	Path string `json:"path" yaml:"path"`

	// Index is the page's position in the sorted discovery order, starting at 0.
	Index int `json:"index" yaml:"index"`
}

// PageResult is the outcome of transcribing a single page. Text is empty
// when the page failed conversion or transcription.
type PageResult struct {
	// Path is the source image path.
	Path string `json:"path" yaml:"path"`

	// Text is the markdown returned by the transcription provider.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Run summarizes one completed extract-book invocation.
type Run struct {
	// ID is the ledger row identifier, assigned on insert.
	ID int64 `json:"id" yaml:"id"`

	// Directory is the input directory that was scanned.
	Directory string `json:"directory" yaml:"directory"`

	// OutputPath is the absolute path of the written markdown file.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Discovered is the number of images found by discovery.
	Discovered int `json:"discovered" yaml:"discovered"`

	// Transcribed is the number of pages whose text made it into the output.
	Transcribed int `json:"transcribed" yaml:"transcribed"`

	// Failed is the number of pages skipped due to conversion or API errors.
	Failed int `json:"failed" yaml:"failed"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is the wall-clock time the run took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
