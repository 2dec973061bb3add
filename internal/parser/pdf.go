package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/qagen/internal/doctree"
	pdflib "github.com/ledongthuc/pdf"
)

var errNoPDFText = errors.New("no extractable text")

// PDFParser handles PDF files page by page. When the Go reader fails or finds
// no text, and FallbackPdftotext is set, the poppler pdftotext tool is tried.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	tmp, _, err := spool(r, "qagen-pdf-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	tmp.Close()

	pages, err := readPDFPages(tmp.Name())
	if err != nil && p.FallbackPdftotext {
		pages, err = pdftotextPages(tmp.Name())
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	tree := &doctree.DocTree{Title: strings.TrimSuffix(filename, ".pdf")}
	for i, page := range pages {
		if page = strings.TrimSpace(page); page != "" {
			// Pages are not sections, so they carry no title.
			tree.Children = append(tree.Children, &doctree.DocNode{Text: page, Page: i + 1})
		}
	}
	return tree, nil
}

// readPDFPages returns the plain text of every page, in order. Pages that
// cannot be decoded are left empty so page numbers stay aligned.
func readPDFPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pages := make([]string, reader.NumPage())
	found := false
	for i := range pages {
		page := reader.Page(i + 1)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages[i] = text
		found = found || strings.TrimSpace(text) != ""
	}
	if !found {
		return nil, errNoPDFText
	}
	return pages, nil
}

// pdftotextPages runs pdftotext in reading order; it separates pages with
// form feeds.
func pdftotextPages(path string) ([]string, error) {
	out, err := exec.Command("pdftotext", "-enc", "UTF-8", path, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return strings.Split(strings.TrimRight(string(out), "\f"), "\f"), nil
}
