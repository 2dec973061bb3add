package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_HeadingsAndParagraphs(t *testing.T) {
	input := `<!DOCTYPE html>
<html><head><title>Guide</title><style>p { color: red; }</style></head>
<body>
<nav><p>menu</p></nav>
<h1>Getting   Started</h1>
<p>Install the tool
   first.</p>
<h2>Usage</h2>
<ul><li>Run it.</li><li>Read the <b>output</b>.</li></ul>
<script>var x = 1;</script>
</body></html>`

	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "guide.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "Guide" {
		t.Errorf("expected title from <title>, got %q", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 top-level section, got %d", len(tree.Children))
	}

	h1 := tree.Children[0]
	if h1.Title != "Getting Started" {
		t.Errorf("expected collapsed heading text, got %q", h1.Title)
	}
	if h1.Text != "Install the tool first." {
		t.Errorf("unexpected h1 text %q", h1.Text)
	}
	if len(h1.Children) != 1 || h1.Children[0].Title != "Usage" {
		t.Fatalf("expected Usage subsection, got %+v", h1.Children)
	}
	if got := h1.Children[0].Text; got != "Run it.\n\nRead the output." {
		t.Errorf("unexpected list text %q", got)
	}
}

func TestHTMLParser_FilenameTitleFallback(t *testing.T) {
	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader("<p>Hello.</p>"), "page.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "page" {
		t.Errorf("expected title %q, got %q", "page", tree.Title)
	}
	if len(tree.Children) != 1 || tree.Children[0].Text != "Hello." {
		t.Errorf("unexpected children %+v", tree.Children)
	}
}
