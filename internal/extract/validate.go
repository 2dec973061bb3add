package extract

import (
	"regexp"
	"strings"
)

// ValidatePair drops blank answers from p and reports whether it is still
// worth emitting: a non-blank question and at least one answer.
func ValidatePair(p *Pair) bool {
	if p == nil {
		return false
	}
	if strings.TrimSpace(p.Question) == "" {
		return false
	}
	kept := p.Answers[:0]
	for _, a := range p.Answers {
		if strings.TrimSpace(a) != "" {
			kept = append(kept, a)
		}
	}
	p.Answers = kept
	return len(p.Answers) > 0
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	slugRepeat  = regexp.MustCompile(`-+`)
)

// Slugify converts a string to a URL/path-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugRepeat.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
