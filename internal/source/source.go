// Package source reads the raw nested lists a tree menu is built from.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/treemenu/internal/logging/events"
	"github.com/atomicstack/treemenu/internal/tree"
)

// Format names a supported input format.
type Format string

const (
	FormatHTML Format = "html"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTmux Format = "tmux"
)

// ErrUnknownFormat is returned when no decoder matches a format or extension.
var ErrUnknownFormat = errors.New("unknown source format")

// Decoder turns a document into a nested list.
type Decoder func(r io.Reader) ([]tree.Item, error)

var decoders = map[Format]Decoder{
	FormatHTML: HTML,
	FormatYAML: YAML,
	FormatJSON: JSON,
}

// ParseFormat normalises a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html", "htm":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "tmux":
		return FormatTmux, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat guesses the format from a file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Decode reads r with the decoder registered for format.
func Decode(format Format, r io.Reader) ([]tree.Item, error) {
	dec, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return dec(r)
}

// Open reads the file at path. An empty format is detected from the
// extension; "-" reads standard input and then requires a format.
func Open(path, format string) ([]tree.Item, error) {
	var (
		f   Format
		err error
	)
	if strings.TrimSpace(format) != "" {
		f, err = ParseFormat(format)
	} else {
		f, err = DetectFormat(path)
	}
	if err != nil {
		return nil, err
	}
	if f == FormatTmux {
		return nil, fmt.Errorf("%w: tmux is not a file format", ErrUnknownFormat)
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open source: %w", err)
		}
		defer file.Close()
		r = file
	}
	items, err := Decode(f, r)
	if err != nil {
		events.Source.Error(string(f), path, err)
		return nil, fmt.Errorf("decode %s source %s: %w", f, path, err)
	}
	events.Source.Loaded(string(f), path, len(items))
	return items, nil
}
