package export

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/dgallion1/qagen/internal/extract"
)

// AnswerSeparator joins answers inside one CSV cell.
const AnswerSeparator = " | "

// writeCSV writes a Question,Answers header and one row per pair.
func writeCSV(w io.Writer, result extract.Result) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write([]string{"Question", "Answers"}); err != nil {
		return err
	}
	for _, pair := range result {
		if err := cw.Write([]string{pair.Question, strings.Join(pair.Answers, AnswerSeparator)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
