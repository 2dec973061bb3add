package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dgallion1/qagen/internal/extract"
)

// writeTXT writes a "Question:" line, one "- " line per answer, and a blank
// separator line for every pair.
func writeTXT(w io.Writer, result extract.Result) error {
	bw := bufio.NewWriter(w)
	for _, pair := range result {
		fmt.Fprintf(bw, "Question: %s\n", pair.Question)
		for _, a := range pair.Answers {
			fmt.Fprintf(bw, "- %s\n", a)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// writeMarkdown writes a level-3 heading and a numbered answer list per pair.
func writeMarkdown(w io.Writer, result extract.Result) error {
	bw := bufio.NewWriter(w)
	for _, pair := range result {
		fmt.Fprintf(bw, "### %s\n\n", pair.Question)
		for i, a := range pair.Answers {
			fmt.Fprintf(bw, "%d. %s\n", i+1, a)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
