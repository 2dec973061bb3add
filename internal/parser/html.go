package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/qagen/internal/doctree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm")
	if t := findTitle(doc); t != "" {
		title = t
	}

	b := doctree.NewBuilder()
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.DataAtom); level > 0 {
				b.Heading(level, textContent(n))
				return
			}
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Nav, atom.Footer, atom.Header, atom.Noscript:
				return
			case atom.P, atom.Li, atom.Td, atom.Blockquote, atom.Dd, atom.Figcaption:
				b.Text(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findElement(doc, atom.Body); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return b.Tree(title), nil
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// textContent joins the text below n, collapsing whitespace runs.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if t := findElement(n, atom.Title); t != nil {
		return textContent(t)
	}
	return ""
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
