package chunker

import "strings"

// CountWords counts whitespace-delimited words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FirstWords returns at most n whitespace-delimited words of text.
func FirstWords(text string, n int) []string {
	words := strings.Fields(text)
	if n >= 0 && len(words) > n {
		return words[:n]
	}
	return words
}
