package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/qagen/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	b := doctree.NewBuilder()

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			b.Heading(node.Level, string(node.Text(src)))
		case *ast.List:
			// One paragraph per item keeps list entries apart as sentences.
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				b.Text(extractText(item, src))
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak:
			// Not prose.
		default:
			b.Text(extractText(n, src))
		}
	}

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown")
	return b.Tree(title), nil
}

// extractText gets the text content of a goldmark AST node. Soft line
// breaks become spaces so a wrapped paragraph stays on one line.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			switch {
			case t.HardLineBreak():
				buf.WriteByte('\n')
			case t.SoftLineBreak():
				buf.WriteByte(' ')
			}
			continue
		}
		if c.Type() == ast.TypeBlock && buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(extractText(c, src))
	}
	return strings.TrimSpace(buf.String())
}
