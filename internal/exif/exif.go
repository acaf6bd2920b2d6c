// Package exif extracts file metadata with exiftool and formats it.
package exif

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/taigrr/cli-commands/internal/process"
	"github.com/taigrr/cli-commands/internal/types"
	"gopkg.in/yaml.v3"
)

// DefaultBinary is the exiftool executable looked up on PATH.
const DefaultBinary = "exiftool"

// Extractor returns the metadata of a file as JSON text.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]byte, error)
}

// ExifTool runs the exiftool executable.
type ExifTool struct {
	Binary string
	runner *process.Runner
}

// NewExifTool creates an ExifTool. An empty binary means DefaultBinary.
func NewExifTool(binary string, logger *log.Logger) *ExifTool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExifTool{
		Binary: binary,
		runner: process.New(logger),
	}
}

// Args returns the exiftool arguments used for path: JSON output, group
// names, numeric values and sorted tags.
func Args(path string) []string {
	return []string{"-j", "-G", "-n", "-sort", path}
}

// Extract runs exiftool on path and returns its JSON output.
func (e *ExifTool) Extract(ctx context.Context, path string) ([]byte, error) {
	stdout, stderr, err := e.runner.Run(ctx, e.Binary, Args(path)...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%s not found, is it installed? %w", e.Binary, err)
		}
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout, nil
}

// Decode parses exiftool output, which must be a JSON array of objects.
func Decode(raw []byte) ([]map[string]any, error) {
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return records, nil
}

// Format re-serializes exiftool output with 4-space indentation, keeping
// the key order exiftool produced.
func Format(raw []byte, format types.MetadataFormat) ([]byte, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	switch format {
	case types.FormatJSON, "":
		var buf bytes.Buffer
		if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "    "); err != nil {
			return nil, fmt.Errorf("failed to format metadata: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil

	case types.FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return nil, fmt.Errorf("failed to parse metadata: %w", err)
		}
		blockStyle(&node)

		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(4)
		if err := enc.Encode(&node); err != nil {
			return nil, fmt.Errorf("failed to format metadata: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to format metadata: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

// blockStyle clears the flow and quoting styles JSON input carries so the
// encoder emits plain block YAML.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}

// Print extracts the metadata of path and writes it to w.
func Print(ctx context.Context, w io.Writer, extractor Extractor, path string, format types.MetadataFormat) error {
	raw, err := extractor.Extract(ctx, path)
	if err != nil {
		return err
	}

	out, err := Format(raw, format)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
