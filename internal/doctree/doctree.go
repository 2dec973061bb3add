package doctree

import "strings"

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string     // Document title (from metadata or filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	Title    string     // Section heading (empty for leaf text)
	Text     string     // Text content of this node (may be empty for container nodes)
	Page     int        // Source page/line (0 if N/A)
	Children []*DocNode // Subsections
}

// Flatten renders the tree as plain prose. Each section title goes on its own
// line, passed through heading (typically an upper-caser so the title reads
// as a heading), directly above the first paragraph of its text. Blocks are
// separated by blank lines. A nil heading leaves titles unchanged.
//
// Callers pass the extraction locale's upper-caser, so a title is cased by
// that locale's rules whatever language it is written in: under Turkish,
// "Introduction" becomes "İNTRODUCTİON". Extract English documents with the
// English locale.
func Flatten(tree *DocTree, heading func(string) string) string {
	if tree == nil {
		return ""
	}
	if heading == nil {
		heading = func(s string) string { return s }
	}

	var blocks []string
	var walk func(nodes []*DocNode)
	walk = func(nodes []*DocNode) {
		for _, n := range nodes {
			paras := splitParagraphs(n.Text)
			if title := strings.TrimSpace(n.Title); title != "" {
				block := heading(title)
				if len(paras) > 0 {
					block += "\n" + paras[0]
					paras = paras[1:]
				}
				blocks = append(blocks, block)
			}
			blocks = append(blocks, paras...)
			walk(n.Children)
		}
	}
	walk(tree.Children)
	return strings.Join(blocks, "\n\n")
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
