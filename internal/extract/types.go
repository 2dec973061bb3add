package extract

import (
	"strconv"
	"strings"
)

// Default answer lengths in words.
const (
	DefaultShortLimit  = 30
	DefaultMediumLimit = 50
	DefaultLongLimit   = 75
)

// Pair is one generated question with its answer variants. Answers behave as
// a set: no duplicates, first-seen order.
type Pair struct {
	Question string   `json:"question" yaml:"question"`
	Answers  []string `json:"answers" yaml:"answers"`
}

// Result is the ordered output of one extraction run.
type Result []Pair

// AnswerCount returns the total number of answers across all pairs.
func (r Result) AnswerCount() int {
	n := 0
	for _, p := range r {
		n += len(p.Answers)
	}
	return n
}

// WordLimits bounds the short, medium and long answer variants.
type WordLimits struct {
	Short  int `json:"short" yaml:"short"`
	Medium int `json:"medium" yaml:"medium"`
	Long   int `json:"long" yaml:"long"`
}

// DefaultWordLimits is 30/50/75 words.
var DefaultWordLimits = WordLimits{
	Short:  DefaultShortLimit,
	Medium: DefaultMediumLimit,
	Long:   DefaultLongLimit,
}

// Normalize replaces non-positive limits with their defaults and clamps the
// result into short <= medium <= long.
func (l WordLimits) Normalize() WordLimits {
	if l.Short <= 0 {
		l.Short = DefaultShortLimit
	}
	if l.Medium <= 0 {
		l.Medium = DefaultMediumLimit
	}
	if l.Long <= 0 {
		l.Long = DefaultLongLimit
	}
	if l.Short > l.Medium {
		l.Short = l.Medium
	}
	if l.Medium > l.Long {
		l.Medium = l.Long
	}
	// Lowering medium can leave short above it again.
	if l.Short > l.Medium {
		l.Short = l.Medium
	}
	return l
}

// ParseWordLimits reads limits as typed by a user. Entries that are not
// positive integers fall back to the defaults; it never fails.
func ParseWordLimits(short, medium, long string) WordLimits {
	return DefaultWordLimits.Parse(short, medium, long)
}

// Parse overrides l with any valid positive integers among short, medium and
// long. Blank or malformed values keep l's setting.
func (l WordLimits) Parse(short, medium, long string) WordLimits {
	if n := parseLimit(short); n > 0 {
		l.Short = n
	}
	if n := parseLimit(medium); n > 0 {
		l.Medium = n
	}
	if n := parseLimit(long); n > 0 {
		l.Long = n
	}
	return l.Normalize()
}

func parseLimit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
