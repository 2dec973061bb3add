package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/dgallion1/qagen/internal/extract"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"notes.txt", false},
		{"data.JSON", false},
		{"readme.md", false},
		{"page.html", false},
		{"sheet.csv", false},
		{"paper.pdf", false},
		{"report.docx", false},
		{"image.png", true},
		{"noext", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q): error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
		if IsSupportedExtension(tt.filename) == tt.wantErr {
			t.Errorf("IsSupportedExtension(%q) disagrees with ForFile", tt.filename)
		}
	}
}

func TestLoad_MarkdownHeadingsBecomeUpperCaseLines(t *testing.T) {
	input := "# Giriş\n\nBu belge örnek bir belgedir.\n\nİkinci paragraf.\n"
	got, err := Loader{Heading: strings.ToUpper}.Load(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "GIRIŞ\nBu belge örnek bir belgedir.\n\nİkinci paragraf."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLoad_HeadingCaseFollowsLocale(t *testing.T) {
	tests := []struct {
		lang, input, want string
	}{
		{"tr", "# Giriş\n\nMetin.", "GİRİŞ\nMetin."},
		{"en", "# Introduction\n\nBody.", "INTRODUCTION\nBody."},
		// Turkish rules apply to every heading read under tr.
		{"tr", "# Introduction\n\nBody.", "İNTRODUCTİON\nBody."},
	}
	for _, tt := range tests {
		locale, err := extract.LocaleFor(tt.lang)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Loader{Heading: locale.Upper}.Load(strings.NewReader(tt.input), "doc.md")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.lang, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.lang, tt.want, got)
		}
	}
}

func TestLoad_PlainTextKeepsParagraphs(t *testing.T) {
	input := "Line one.\nLine two.\n\n\nNext paragraph."
	got, err := Loader{}.Load(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Line one.\nLine two.\n\nNext paragraph." {
		t.Errorf("unexpected text %q", got)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, err := Loader{}.Load(strings.NewReader("x"), "file.xyz"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestPDFParser_InvalidInput(t *testing.T) {
	p := &PDFParser{}
	if _, err := p.Parse(strings.NewReader("not a pdf"), "broken.pdf"); err == nil {
		t.Error("expected error for invalid PDF without fallback")
	}
}

func TestSpool(t *testing.T) {
	f, size, err := spool(strings.NewReader("hello"), "qagen-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()
	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}
	buf := make([]byte, 5)
	if _, err := f.ReadAt(buf, 0); err != nil || string(buf) != "hello" {
		t.Errorf("ReadAt = %q, %v", buf, err)
	}
}
