// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package heic converts HEIC images to JPEG by shelling out to an external
// tool. Two interchangeable strategies are supported: sips (macOS) and
// magick (ImageMagick); availability is probed at call time so a machine with
// either tool installed works without configuration.
package heic

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	binSips   = "sips"
	binMagick = "magick"
)

// Converter produces JPEG bytes from an image file path.
type Converter interface {
	// Convert reads the image at path and returns it as JPEG bytes.
	Convert(path string) ([]byte, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// tool is one conversion strategy: a binary plus the argument shape it needs
// to convert src into a JPEG at dst. sips and magick share the same logic and
// differ only in binary name and arguments.
type tool struct {
	bin  string
	args func(src, dst string) []string
	exec executor
}

func (t *tool) available() bool {
	_, err := t.exec.LookPath(t.bin)
	return err == nil
}

// convert runs the tool against src, writing to a temporary JPEG whose bytes
// are returned. The temporary file is removed regardless of outcome.
func (t *tool) convert(src string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "bookworm-*.jpg")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := t.exec.RunSilent(t.bin, t.args(src, tmpPath)...); err != nil {
		return nil, fmt.Errorf("%s failed for %s: %w", t.bin, src, err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("reading converted image: %w", err)
	}
	return data, nil
}

func newSipsTool(exec executor) *tool {
	return &tool{
		bin: binSips,
		args: func(src, dst string) []string {
			return []string{"-s", "format", "jpeg", src, "--out", dst}
		},
		exec: exec,
	}
}

func newMagickTool(exec executor) *tool {
	return &tool{
		bin: binMagick,
		args: func(src, dst string) []string {
			return []string{src, dst}
		},
		exec: exec,
	}
}

var defaultExec = &osExecutor{}

// ToolChain tries sips first and falls back to magick. A tool that is
// missing from PATH or exits non-zero is passed over; the error returned when
// every tool fails names them all.
type ToolChain struct {
	tools []*tool
}

// NewToolChain builds the production sips-then-magick chain.
func NewToolChain() *ToolChain {
	return newToolChain(defaultExec)
}

func newToolChain(exec executor) *ToolChain {
	return &ToolChain{tools: []*tool{newSipsTool(exec), newMagickTool(exec)}}
}

// Convert implements Converter over the chain.
func (c *ToolChain) Convert(path string) ([]byte, error) {
	var failures []string
	for _, t := range c.tools {
		if !t.available() {
			failures = append(failures, fmt.Sprintf("%s: not found", t.bin))
			continue
		}
		data, err := t.convert(path)
		if err == nil {
			return data, nil
		}
		failures = append(failures, err.Error())
	}
	return nil, fmt.Errorf(
		"could not convert HEIC image %s (%s); install sips (macOS) or ImageMagick",
		path, strings.Join(failures, "; "),
	)
}

// IsHEIC reports whether path names a HEIC file, case-insensitively.
func IsHEIC(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".heic")
}
