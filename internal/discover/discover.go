// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover scans a directory for book-page images. It produces a
// deterministically ordered list so that page order in the output matches
// filename order on disk.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/bookworm/pkg/types"
)

// ErrNotDirectory reports that the input path does not exist or is not a
// directory. Callers treat it as a setup error: the command returns early
// without aborting the process.
type ErrNotDirectory struct {
	Path string
}

func (e *ErrNotDirectory) Error() string {
	return fmt.Sprintf("directory %q does not exist or is not a directory", e.Path)
}

// Images returns the pages in dir whose filenames match any extension in the
// comma-separated list, in both lower and upper case. Results are sorted
// lexicographically by full path and deduplicated; subdirectories are not
// entered. An empty slice with a nil error means no files matched.
func Images(dir, extensions string) ([]types.Page, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &ErrNotDirectory{Path: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	wanted := extensionSet(extensions)

	seen := make(map[string]bool)
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if !wanted[ext] {
			continue
		}
		p := filepath.Join(dir, entry.Name())
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}

	// Sort to maintain page order.
	sort.Strings(paths)

	pages := make([]types.Page, len(paths))
	for i, p := range paths {
		pages[i] = types.Page{Path: p, Index: i}
	}
	return pages, nil
}

// extensionSet expands a comma-separated extension list into the exact
// filename suffixes accepted: each entry in its declared lower and upper case.
func extensionSet(extensions string) map[string]bool {
	set := make(map[string]bool)
	for _, ext := range strings.Split(extensions, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		set[strings.ToLower(ext)] = true
		set[strings.ToUpper(ext)] = true
	}
	return set
}
