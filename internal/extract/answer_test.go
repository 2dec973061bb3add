package extract

import (
	"strings"
	"testing"
)

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = "w"
	}
	return strings.Join(w, " ")
}

func TestAnswerVariants_NoWords(t *testing.T) {
	if got := AnswerVariants("  \n\t ", DefaultWordLimits); len(got) != 0 {
		t.Errorf("expected no variants, got %q", got)
	}
}

func TestAnswerVariants_ShortSourceCollapses(t *testing.T) {
	text := "Short  answer with odd   spacing."
	got := AnswerVariants(text, DefaultWordLimits)
	if len(got) != 1 {
		t.Fatalf("expected 1 variant, got %d: %q", len(got), got)
	}
	if got[0] != text {
		t.Errorf("expected unmodified text %q, got %q", text, got[0])
	}
}

func TestAnswerVariants_ExactlyLongLimit(t *testing.T) {
	limits := WordLimits{Short: 3, Medium: 5, Long: 8}
	text := "one two three four five six seven eight"
	got := AnswerVariants(text, limits)

	want := []string{
		"one two three...",
		"one two three four five...",
		text,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d variants, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variant[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAnswerVariants_BeyondLongLimitAllTruncate(t *testing.T) {
	limits := WordLimits{Short: 3, Medium: 5, Long: 8}
	got := AnswerVariants(words(limits.Long+5), limits)
	if len(got) != 3 {
		t.Fatalf("expected 3 variants, got %d: %q", len(got), got)
	}
	for i, n := range []int{3, 5, 8} {
		want := words(n) + "..."
		if got[i] != want {
			t.Errorf("variant[%d]: expected %q, got %q", i, want, got[i])
		}
	}
}

func TestAnswerVariants_EqualLimitsCollapse(t *testing.T) {
	limits := WordLimits{Short: 4, Medium: 4, Long: 10}
	got := AnswerVariants(words(6), limits)
	if len(got) != 2 {
		t.Fatalf("expected 2 variants, got %d: %q", len(got), got)
	}
	if got[0] != words(4)+"..." || got[1] != words(6) {
		t.Errorf("unexpected variants %q", got)
	}
}

func TestParseWordLimits(t *testing.T) {
	tests := []struct {
		name                string
		short, medium, long string
		want                WordLimits
	}{
		{"defaults", "30", "50", "75", WordLimits{30, 50, 75}},
		{"non-numeric short", "abc", "50", "75", WordLimits{30, 50, 75}},
		{"all blank", "", "", "", WordLimits{30, 50, 75}},
		{"negative falls back", "-4", "50", "75", WordLimits{30, 50, 75}},
		{"whitespace tolerated", " 10 ", "20", "40", WordLimits{10, 20, 40}},
		{"short above medium", "60", "50", "75", WordLimits{50, 50, 75}},
		{"medium above long", "10", "90", "75", WordLimits{10, 75, 75}},
		{"fully reversed", "90", "60", "40", WordLimits{40, 40, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWordLimits(tt.short, tt.medium, tt.long)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestWordLimitsParseKeepsBase(t *testing.T) {
	base := WordLimits{Short: 5, Medium: 10, Long: 20}
	got := base.Parse("", "x", "40")
	want := WordLimits{Short: 5, Medium: 10, Long: 40}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if got := base.Parse("15", "", ""); got != (WordLimits{10, 10, 20}) {
		t.Errorf("expected short clamped to base medium, got %+v", got)
	}
}
