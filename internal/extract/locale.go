package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale holds the phrasing and casing rules for generated questions.
type Locale struct {
	Code string
	Tag  language.Tag

	// Interrogatives are lower-case question words. A key sentence that
	// starts with one becomes a question on its own.
	Interrogatives []string

	SentenceSuffix   string // Appended to a sentence prefix that is not a question.
	SentenceFallback string // Used when a sentence has no words.
	HeadingFormat    string // fmt verb %s receives the title-cased heading.
	TextQuestion     string // Whole-text fallback question.
}

var (
	Turkish = Locale{
		Code:             "tr",
		Tag:              language.Turkish,
		Interrogatives:   []string{"nasıl", "neden", "ne", "kim", "nerede", "hangi"},
		SentenceSuffix:   " hakkında ne biliyorsunuz?",
		SentenceFallback: "Bu cümle hakkında ne biliyorsunuz?",
		HeadingFormat:    "%s Hakkında Genel Bilgi Verebilir Misiniz?",
		TextQuestion:     "Metin hakkında genel bilgi verir misiniz?",
	}

	English = Locale{
		Code:             "en",
		Tag:              language.English,
		Interrogatives:   []string{"how", "why", "what", "who", "where", "which"},
		SentenceSuffix:   " - what do you know about this?",
		SentenceFallback: "What can you tell me about this sentence?",
		HeadingFormat:    "Can you give general information about %s?",
		TextQuestion:     "Can you give general information about the text?",
	}
)

// DefaultLocale is Turkish, the language of the source corpus.
var DefaultLocale = Turkish

// LocaleFor returns the locale for a language code such as "tr" or "en-US".
func LocaleFor(code string) (Locale, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Locale{}, fmt.Errorf("parse language %q: %w", code, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "tr":
		return Turkish, nil
	case "en":
		return English, nil
	}
	return Locale{}, fmt.Errorf("unsupported language: %s", code)
}

// Casers are stateful, so each call builds its own.

// Upper upper-cases s using the locale's rules.
func (l Locale) Upper(s string) string {
	return cases.Upper(l.Tag).String(s)
}

// Lower lower-cases s using the locale's rules.
func (l Locale) Lower(s string) string {
	return cases.Lower(l.Tag).String(s)
}

// Title capitalizes the first letter of every word and lower-cases the rest.
func (l Locale) Title(s string) string {
	return cases.Title(l.Tag).String(s)
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func (l Locale) Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return l.Upper(s[:size]) + l.Lower(s[size:])
}

func (l Locale) isInterrogative(word string) bool {
	for _, w := range l.Interrogatives {
		if w == word {
			return true
		}
	}
	return false
}
