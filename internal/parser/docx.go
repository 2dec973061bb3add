package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/qagen/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	tmp, size, err := spool(r, "qagen-docx-*.docx")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	doc, err := docx.Parse(tmp, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	b := doctree.NewBuilder()
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if level := docxHeadingLevel(para); level > 0 {
			b.Heading(level, text)
		} else {
			b.Text(text)
		}
	}

	return b.Tree(strings.TrimSuffix(filename, ".docx")), nil
}

// docxHeadingLevel maps "Heading1".."Heading6" (or "heading 1"...) and
// "Title" styles to a section level.
func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if style == "title" {
		return 1
	}
	rest, ok := strings.CutPrefix(style, "heading")
	if !ok || len(rest) != 1 || rest[0] < '1' || rest[0] > '6' {
		return 0
	}
	return int(rest[0] - '0')
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
