package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const progressWidth = 30

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	// boxStyle for the summary with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// summary describes a finished extraction.
type summary struct {
	Source  string
	Pairs   int
	Answers int
	Elapsed time.Duration
	Output  string
	Format  string
}

// progressBar renders percent as a fixed-width bar.
func progressBar(percent float64) string {
	percent = max(0, min(100, percent))
	filled := int(percent / 100 * progressWidth)
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", progressWidth-filled)) +
		fmt.Sprintf(" %3.0f%%", percent)
}

// drawProgress redraws the bar in place.
func drawProgress(w io.Writer, percent float64) {
	fmt.Fprintf(w, "\r%s %s", dimStyle.Render("Extracting"), progressBar(percent))
}

func clearProgress(w io.Writer) {
	fmt.Fprint(w, "\r\033[K")
}

// formatSummary renders the completion box.
func formatSummary(s summary) string {
	dest := s.Output
	if dest == "" {
		dest = "stdout"
	}
	content := fmt.Sprintf("%s\n%s %s\n%s %s\n%s %s\n%s %s (%s)",
		titleStyle.Render("Extraction complete"),
		dimStyle.Render("Source: "), s.Source,
		dimStyle.Render("Pairs:  "), successStyle.Render(fmt.Sprintf("%d questions, %d answers", s.Pairs, s.Answers)),
		dimStyle.Render("Elapsed:"), s.Elapsed.Round(time.Millisecond),
		dimStyle.Render("Output: "), dest, s.Format,
	)
	return boxStyle.Render(content)
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("Warning:"), msg)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
