// Package export renders extraction results in the supported output formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/qagen/internal/extract"
)

// Format names an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatTXT      Format = "txt"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
)

// Formats lists every supported format in menu order.
var Formats = []Format{FormatJSON, FormatTXT, FormatMarkdown, FormatHTML, FormatCSV}

// ErrUnknownFormat is returned for a format name or extension qagen cannot write.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts a format name, case-insensitively, with common aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "."))) {
	case "json":
		return FormatJSON, nil
	case "txt", "text":
		return FormatTXT, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatForPath picks the format from a file name's extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Write renders result to w in format f.
func Write(w io.Writer, f Format, result extract.Result) error {
	var err error
	switch f {
	case FormatJSON:
		err = writeJSON(w, result)
	case FormatTXT:
		err = writeTXT(w, result)
	case FormatMarkdown:
		err = writeMarkdown(w, result)
	case FormatHTML:
		err = writeHTML(w, result)
	case FormatCSV:
		err = writeCSV(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}
