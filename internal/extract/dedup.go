package extract

// Dedupe merges pairs with byte-identical questions. The first occurrence
// keeps its position; answers are unioned in first-seen order. Running it on
// its own output changes nothing.
func Dedupe(pairs []Pair) Result {
	index := make(map[string]int, len(pairs))
	out := make(Result, 0, len(pairs))

	for _, p := range pairs {
		i, ok := index[p.Question]
		if !ok {
			index[p.Question] = len(out)
			out = append(out, Pair{
				Question: p.Question,
				Answers:  unionAnswers(nil, p.Answers),
			})
			continue
		}
		out[i].Answers = unionAnswers(out[i].Answers, p.Answers)
	}
	return out
}

func unionAnswers(dst, src []string) []string {
	for _, a := range src {
		if !contains(dst, a) {
			dst = append(dst, a)
		}
	}
	return dst
}
