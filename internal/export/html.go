package export

import (
	"io"

	"github.com/dgallion1/qagen/internal/extract"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DocumentTitle is the <title> of the HTML export.
const DocumentTitle = "Questions and Answers"

// writeHTML writes a minimal document with an <h3> and a <ul> per pair.
// The node tree is rendered by x/net/html, which escapes all text.
func writeHTML(w io.Writer, result extract.Result) error {
	head := element(atom.Head,
		newline(),
		withAttr(element(atom.Meta), "charset", "utf-8"),
		newline(),
		element(atom.Title, textNode(DocumentTitle)),
		newline(),
	)

	body := element(atom.Body, newline())
	for _, pair := range result {
		body.AppendChild(element(atom.H3, textNode(pair.Question)))
		body.AppendChild(newline())
		list := element(atom.Ul, newline())
		for _, a := range pair.Answers {
			list.AppendChild(element(atom.Li, textNode(a)))
			list.AppendChild(newline())
		}
		body.AppendChild(list)
		body.AppendChild(newline())
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(newline())
	doc.AppendChild(element(atom.Html, newline(), head, newline(), body, newline()))
	doc.AppendChild(newline())
	return html.Render(w, doc)
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func withAttr(n *html.Node, key, val string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func newline() *html.Node {
	return textNode("\n")
}
