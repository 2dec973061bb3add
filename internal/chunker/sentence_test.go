package chunker

import "testing"

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no terminal", "just some words", []string{"just some words"}},
		{"keeps punctuation", "One. Two! Three?", []string{"One.", "Two!", "Three?"}},
		{"consumes whitespace run", "One.  \n Two.", []string{"One.", "Two."}},
		{"no split without whitespace", "v1.2 is out.", []string{"v1.2 is out."}},
		{"stacked punctuation", "Really?! Yes.", []string{"Really?!", "Yes."}},
		{"no-break space", "Bitti artık.\u00a0İkinci cümle.", []string{"Bitti artık.", "İkinci cümle."}},
		{"em space", "One.\u2003Two.", []string{"One.", "Two."}},
		{"vertical tab", "One.\vTwo.", []string{"One.", "Two."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d sentences %q, got %d %q", len(tt.want), tt.want, len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sentence[%d]: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestKeySentences_FiltersShortSentences(t *testing.T) {
	long := "This sentence has exactly ten words in it for sure."
	short := "Too short to matter."
	nine := "Nine words here and no more than that ok."

	keys := KeySentences(short+" "+long+" "+nine, MinKeyWords)
	if len(keys) != 1 {
		t.Fatalf("expected 1 key sentence, got %d: %q", len(keys), keys)
	}
	if keys[0] != long {
		t.Errorf("expected %q, got %q", long, keys[0])
	}
}

func TestKeySentences_DefaultThreshold(t *testing.T) {
	long := "One two three four five six seven eight nine ten."
	if got := KeySentences(long, 0); len(got) != 1 {
		t.Errorf("expected zero threshold to fall back to %d words, got %q", MinKeyWords, got)
	}
}

func TestFirstWords(t *testing.T) {
	if got := FirstWords("a b c d", 2); len(got) != 2 || got[1] != "b" {
		t.Errorf("expected [a b], got %q", got)
	}
	if got := FirstWords("a b", 6); len(got) != 2 {
		t.Errorf("expected all words when fewer than n, got %q", got)
	}
	if got := FirstWords("   ", 6); len(got) != 0 {
		t.Errorf("expected no words, got %q", got)
	}
	if got := CountWords(" a\tb\nc "); got != 3 {
		t.Errorf("expected 3 words, got %d", got)
	}
}
