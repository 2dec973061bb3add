package extract

import (
	"strings"
	"unicode"

	"github.com/dgallion1/qagen/internal/chunker"
)

// maxLooseHeadingWords bounds the all-caps title check.
const maxLooseHeadingWords = 10

// headingLetters are the letters considered by IsHeading.
const headingLetters = "ÇĞİÖŞÜçğıöşü"

// IsHeading reports whether every ASCII or Turkish letter in line is upper
// case. Lines without any such letter are never headings.
func IsHeading(line string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || strings.ContainsRune(headingLetters, r) {
			return r
		}
		return -1
	}, line)
	if cleaned == "" {
		return false
	}
	return cleaned == Turkish.Upper(cleaned)
}

// LooksLikeHeading is the looser check used by the assembler: IsHeading, or a
// short line whose cased runes are all upper case.
// A short line made only of an abbreviation such as "NATO." also passes.
func LooksLikeHeading(line string) bool {
	if IsHeading(line) {
		return true
	}
	return chunker.CountWords(line) < maxLooseHeadingWords && isUpper(line)
}

// isUpper reports whether s has at least one cased rune and no lower or
// title case runes.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
