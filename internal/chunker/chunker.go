package chunker

import (
	"regexp"
	"strings"
)

// Paragraph is a blank-line delimited block of source text.
type Paragraph struct {
	Text  string   // Trimmed paragraph text.
	Lines []string // Lines of Text in order; nil for an empty paragraph.
}

// Empty reports whether the paragraph has no content.
func (p Paragraph) Empty() bool {
	return p.Text == ""
}

// FirstLine returns the first line with surrounding whitespace removed.
func (p Paragraph) FirstLine() string {
	if len(p.Lines) == 0 {
		return ""
	}
	return strings.TrimSpace(p.Lines[0])
}

// Rest returns the lines after the first joined with single spaces.
func (p Paragraph) Rest() string {
	if len(p.Lines) < 2 {
		return ""
	}
	return strings.TrimSpace(strings.Join(p.Lines[1:], " "))
}

// space matches the runes unicode.IsSpace accepts. RE2's \s is ASCII only,
// so no-break and other Unicode spaces are added explicitly.
const space = `[\s\v\x{85}\p{Z}]`

// paragraphBreak matches any whitespace run that contains a blank line.
var paragraphBreak = regexp.MustCompile(`\n` + space + `*\n`)

// Paragraphs splits text on blank lines. Empty paragraphs are kept so that
// callers can count them toward progress; "" yields a single empty paragraph.
func Paragraphs(text string) []Paragraph {
	parts := paragraphBreak.Split(text, -1)
	paras := make([]Paragraph, 0, len(parts))
	for _, part := range parts {
		paras = append(paras, newParagraph(part))
	}
	return paras
}

func newParagraph(raw string) Paragraph {
	t := strings.TrimSpace(raw)
	if t == "" {
		return Paragraph{}
	}
	return Paragraph{Text: t, Lines: splitLines(t)}
}

// splitLines breaks on \n, \r\n and \r.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
