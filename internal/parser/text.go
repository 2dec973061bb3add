package parser

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/qagen/internal/chunker"
	"github.com/dgallion1/qagen/internal/doctree"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextParser handles plain text files. JSON input is read the same way, as
// text. Paragraphs are split exactly as the extractor splits them.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
	}
	for _, para := range chunker.Paragraphs(string(data)) {
		if para.Empty() {
			continue
		}
		tree.Children = append(tree.Children, &doctree.DocNode{
			Text: strings.Join(para.Lines, "\n"),
		})
	}
	return tree, nil
}
