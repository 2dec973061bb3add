package export

import (
	"encoding/json"
	"io"

	"github.com/dgallion1/qagen/internal/extract"
)

type jsonPair struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// writeJSON writes an indented array of {"question", "answers"} objects.
// Non-ASCII text and HTML characters are written as is.
func writeJSON(w io.Writer, result extract.Result) error {
	pairs := make([]jsonPair, len(result))
	for i, p := range result {
		answers := p.Answers
		if answers == nil {
			answers = []string{}
		}
		pairs[i] = jsonPair{Question: p.Question, Answers: answers}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(pairs)
}
