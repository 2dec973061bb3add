package doctree

import "strings"

// Builder assembles a DocTree from a flat stream of headings and text
// blocks, nesting sections by heading level.
type Builder struct {
	root  *DocNode
	stack []builderEntry
	text  strings.Builder
}

type builderEntry struct {
	node  *DocNode
	level int
}

// NewBuilder returns an empty Builder. Level 0 is the document root; all
// headings (level 1 and deeper) nest under it.
func NewBuilder() *Builder {
	root := &DocNode{}
	return &Builder{
		root:  root,
		stack: []builderEntry{{node: root, level: 0}},
	}
}

// Heading opens a new section at level, closing any open sections at the
// same or a deeper level.
func (b *Builder) Heading(level int, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	b.flush()
	node := &DocNode{Title: title}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Children = append(parent.Children, node)
	b.stack = append(b.stack, builderEntry{node: node, level: level})
}

// Text appends a paragraph to the current section.
func (b *Builder) Text(t string) {
	t = strings.TrimSpace(t)
	if t == "" {
		return
	}
	if b.text.Len() > 0 {
		b.text.WriteString("\n\n")
	}
	b.text.WriteString(t)
}

// Tree finishes the document. Text seen before the first heading becomes a
// leading untitled node.
func (b *Builder) Tree(title string) *DocTree {
	b.flush()
	tree := &DocTree{Title: title}
	if b.root.Text != "" {
		tree.Children = append(tree.Children, &DocNode{Text: b.root.Text})
	}
	tree.Children = append(tree.Children, b.root.Children...)
	return tree
}

func (b *Builder) flush() {
	t := strings.TrimSpace(b.text.String())
	b.text.Reset()
	if t == "" {
		return
	}
	top := b.stack[len(b.stack)-1].node
	if top.Text != "" {
		top.Text += "\n\n" + t
	} else {
		top.Text = t
	}
}
