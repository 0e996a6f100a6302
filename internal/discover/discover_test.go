// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates an empty file named name inside dir.
func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}

func TestImages(t *testing.T) {
	tests := []struct {
		name       string
		extensions string
		setup      func(t *testing.T, dir string)
		wantNames  []string
	}{
		{
			name:       "sorted by full path",
			extensions: "jpg,png",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "003.png")
				touch(t, dir, "001.jpg")
				touch(t, dir, "002.jpg")
			},
			wantNames: []string{"001.jpg", "002.jpg", "003.png"},
		},
		{
			name:       "matches declared lower and upper case",
			extensions: "jpg,heic",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "a.JPG")
				touch(t, dir, "b.heic")
				touch(t, dir, "c.HEIC")
			},
			wantNames: []string{"a.JPG", "b.heic", "c.HEIC"},
		},
		{
			name:       "ignores unmatched extensions and subdirectories",
			extensions: "jpg",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "page.jpg")
				touch(t, dir, "notes.txt")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.jpg"), 0o755))
				touch(t, dir, filepath.Join("nested.jpg", "deep.jpg"))
			},
			wantNames: []string{"page.jpg"},
		},
		{
			name:       "trims whitespace around extensions",
			extensions: " jpg , png ",
			setup: func(t *testing.T, dir string) {
				touch(t, dir, "x.png")
			},
			wantNames: []string{"x.png"},
		},
		{
			name:       "empty directory yields no pages",
			extensions: "jpg,jpeg,png,heic",
			setup:      func(t *testing.T, dir string) {},
			wantNames:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			pages, err := Images(dir, tt.extensions)
			require.NoError(t, err)

			var names []string
			for i, p := range pages {
				assert.Equal(t, i, p.Index)
				names = append(names, filepath.Base(p.Path))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestImagesMissingDirectory(t *testing.T) {
	_, err := Images(filepath.Join(t.TempDir(), "no-such-dir"), "jpg")
	var notDir *ErrNotDirectory
	require.True(t, errors.As(err, &notDir))
	assert.Contains(t, notDir.Error(), "no-such-dir")
}

func TestImagesPathIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Images(path, "jpg")
	var notDir *ErrNotDirectory
	require.True(t, errors.As(err, &notDir))
}
