package chunker

import (
	"regexp"
	"strings"
)

// MinKeyWords is the word count at which a sentence becomes a key sentence.
const MinKeyWords = 10

// sentenceEnd matches terminal punctuation and the whitespace after it.
var sentenceEnd = regexp.MustCompile(`[.!?]` + space + `+`)

// SplitSentences splits text after '.', '!' or '?' when followed by
// whitespace. The punctuation stays with its sentence; the whitespace is
// dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation byte; keep it with the sentence.
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// KeySentences returns the sentences of text with at least minWords words.
// Shorter sentences are dropped entirely.
func KeySentences(text string, minWords int) []string {
	if minWords <= 0 {
		minWords = MinKeyWords
	}
	var keys []string
	for _, s := range SplitSentences(text) {
		if CountWords(s) >= minWords {
			keys = append(keys, strings.TrimSpace(s))
		}
	}
	return keys
}
