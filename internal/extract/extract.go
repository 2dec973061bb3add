package extract

import (
	"strings"
	"time"

	"github.com/dgallion1/qagen/internal/chunker"
)

// ProgressFunc receives the share of paragraphs processed, 0 to 100.
type ProgressFunc func(percent float64)

// Options configure an Extractor. The zero value uses the default locale,
// the standard key-sentence threshold and no pacing.
type Options struct {
	Locale      Locale
	MinKeyWords int

	// Pace is slept after each non-empty paragraph so progress stays
	// visible to an interactive caller. It never shortens a run.
	Pace time.Duration
}

// Extractor derives question/answer pairs from prose. It holds no per-run
// state and may be shared.
type Extractor struct {
	locale   Locale
	minWords int
	pace     time.Duration
}

// New returns an Extractor for opts.
func New(opts Options) *Extractor {
	if opts.Locale.Code == "" {
		opts.Locale = DefaultLocale
	}
	if opts.MinKeyWords <= 0 {
		opts.MinKeyWords = chunker.MinKeyWords
	}
	if opts.Pace < 0 {
		opts.Pace = 0
	}
	return &Extractor{
		locale:   opts.Locale,
		minWords: opts.MinKeyWords,
		pace:     opts.Pace,
	}
}

// ExtractQAPairs runs the default Extractor over text.
func ExtractQAPairs(text string, limits WordLimits, progress ProgressFunc) Result {
	return New(Options{}).Extract(text, limits, progress)
}

// Locale returns the extractor's locale.
func (e *Extractor) Locale() Locale {
	return e.locale
}

// Extract segments text into paragraphs and builds pairs from each one in
// order, then merges duplicate questions. progress, if non-nil, is called
// once per paragraph, empty ones included. Empty text yields an empty Result.
func (e *Extractor) Extract(text string, limits WordLimits, progress ProgressFunc) Result {
	limits = limits.Normalize()
	paras := chunker.Paragraphs(text)
	total := len(paras)
	if total == 0 {
		total = 1
	}

	var pairs []Pair
	for i, p := range paras {
		if !p.Empty() {
			pairs = append(pairs, e.paragraphPairs(p, limits)...)
		}
		report(progress, float64(i+1)/float64(total)*100)
		if !p.Empty() && e.pace > 0 {
			time.Sleep(e.pace)
		}
	}

	result := Dedupe(pairs)
	if len(result) == 0 {
		if fallback, ok := e.textPair(text, limits); ok {
			result = append(result, fallback)
		}
	}
	return result
}

// paragraphPairs emits one pair for a heading paragraph, or one pair per key
// sentence otherwise.
func (e *Extractor) paragraphPairs(p chunker.Paragraph, limits WordLimits) []Pair {
	first := p.FirstLine()
	if LooksLikeHeading(first) {
		title := e.locale.Title(first)
		body := p.Rest()
		if body == "" {
			body = title
		}
		pair := Pair{
			Question: e.locale.HeadingQuestion(first),
			Answers:  AnswerVariants(body, limits),
		}
		if !ValidatePair(&pair) {
			return nil
		}
		return []Pair{pair}
	}

	var pairs []Pair
	for _, sentence := range chunker.KeySentences(p.Text, e.minWords) {
		pair := Pair{
			Question: e.locale.SentenceQuestion(sentence),
			Answers:  AnswerVariants(sentence, limits),
		}
		if ValidatePair(&pair) {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

// textPair is the single pair produced when no paragraph yielded any.
func (e *Extractor) textPair(text string, limits WordLimits) (Pair, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Pair{}, false
	}
	pair := Pair{
		Question: e.locale.TextQuestion,
		Answers:  AnswerVariants(text, limits),
	}
	return pair, ValidatePair(&pair)
}

// report calls progress, ignoring a nil sink and any panic it raises.
func report(progress ProgressFunc, percent float64) {
	if progress == nil {
		return
	}
	defer func() { _ = recover() }()
	progress(percent)
}
