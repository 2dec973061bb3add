package extract

import (
	"fmt"
	"strings"

	"github.com/dgallion1/qagen/internal/chunker"
)

// questionWords is how many leading words of a key sentence form a question.
const questionWords = 6

// SentenceQuestion turns a key sentence into a question.
func (l Locale) SentenceQuestion(sentence string) string {
	parts := chunker.FirstWords(sentence, questionWords)
	if len(parts) == 0 {
		return l.SentenceFallback
	}

	first := l.Lower(parts[0])
	if l.isInterrogative(first) {
		words := append([]string{l.Capitalize(first)}, parts[1:]...)
		return strings.Join(words, " ") + "?"
	}
	return strings.Join(parts, " ") + l.SentenceSuffix
}

// HeadingQuestion asks for general information about a heading. The heading
// is title-cased first.
func (l Locale) HeadingQuestion(heading string) string {
	return fmt.Sprintf(l.HeadingFormat, l.Title(strings.TrimSpace(heading)))
}
