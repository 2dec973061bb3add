package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/qagen/internal/doctree"
)

// Parser converts raw document bytes into a DocTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// SupportedExtensions lists file extensions qagen can read.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".json":     true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".json":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Loader turns an input file into the plain prose the extractor reads.
type Loader struct {
	// Heading is applied to section titles; see doctree.Flatten.
	Heading func(string) string

	PDFFallbackPdftotext bool
}

// Load parses r according to filename's extension and flattens the result.
func (l Loader) Load(r io.Reader, filename string) (string, error) {
	p, err := ForFile(filename)
	if err != nil {
		return "", err
	}
	if pdf, ok := p.(*PDFParser); ok {
		pdf.FallbackPdftotext = l.PDFFallbackPdftotext
	}
	tree, err := p.Parse(r, filename)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", filename, err)
	}
	return doctree.Flatten(tree, l.Heading), nil
}

// spool copies r to a temp file for libraries that need random access. The
// caller closes and removes the file.
func spool(r io.Reader, pattern string) (*os.File, int64, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("create temp file: %w", err)
	}
	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, 0, fmt.Errorf("write temp file: %w", err)
	}
	return tmp, size, nil
}
