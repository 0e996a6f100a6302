package types

import "time"

// AIConfig holds shared settings for calls to the vision-language API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens bounds the model's output per page (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// ExtractionConfig holds settings for the extract-book pipeline.
type ExtractionConfig struct {
	AIConfig `yaml:",inline"`

	// OutputFile is the name of the markdown file written to the parent of
	// the input directory (default "to_read.md").
	OutputFile string `json:"output_file" yaml:"output_file"`

	// ImageExtensions is the comma-separated list of extensions to scan for
	// (default "jpg,jpeg,png,heic").
	ImageExtensions string `json:"image_extensions" yaml:"image_extensions"`

	// CallInterval is the minimum spacing between consecutive API calls
	// (default 1s). Keeps the run under provider rate limits.
	CallInterval time.Duration `json:"call_interval" yaml:"call_interval"`
}

// LedgerConfig holds settings for the extraction-run ledger.
type LedgerConfig struct {
	// Dir is the directory holding the ledger database (default
	// "~/.local/share/bookworm").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
