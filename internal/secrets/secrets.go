// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from the process environment or a directory
// of plain-text files. Each file in the directory represents one secret: the
// filename is the key name and the file contents (trimmed) are the value.
//
// Supported key files: openai-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvOpenAIKey is the environment variable checked before the secrets dir.
	EnvOpenAIKey = "OPENAI_API_KEY"

	// FileOpenAIKey is the secrets-directory filename for the OpenAI key.
	FileOpenAIKey = "openai-api-key"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// OpenAIKey resolves the OpenAI API key: the OPENAI_API_KEY environment
// variable wins, then the openai-api-key file under dir. Returns an empty
// string when neither is set.
func OpenAIKey(dir string) string {
	if v := strings.TrimSpace(os.Getenv(EnvOpenAIKey)); v != "" {
		return v
	}
	loaded, err := Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return ""
	}
	return loaded[FileOpenAIKey]
}
