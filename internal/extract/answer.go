package extract

import "strings"

// ellipsis marks a truncated answer.
const ellipsis = "..."

// AnswerVariants renders text at the short, medium and long limits. A variant
// that fits its limit is the unmodified text; a longer one is cut to the limit
// and gets an ellipsis. Identical variants collapse, so the result holds one
// to three answers ordered short to long, or none when text has no words.
func AnswerVariants(text string, limits WordLimits) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var variants []string
	for _, n := range []int{limits.Short, limits.Medium, limits.Long} {
		v := shorten(text, words, n)
		if !contains(variants, v) {
			variants = append(variants, v)
		}
	}
	return variants
}

func shorten(text string, words []string, maxWords int) string {
	if maxWords > 0 && len(words) > maxWords {
		return strings.Join(words[:maxWords], " ") + ellipsis
	}
	return text
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
