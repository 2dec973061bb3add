package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/qagen/internal/doctree"
)

// CSVParser handles CSV files. The header row names the columns; every data
// row becomes one paragraph of "column: value" clauses.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".csv"),
	}
	if len(records) == 0 {
		return tree, nil
	}

	headers := records[0]
	for i, row := range records[1:] {
		clauses := make([]string, 0, len(row))
		for j, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if j < len(headers) && strings.TrimSpace(headers[j]) != "" {
				cell = strings.TrimSpace(headers[j]) + ": " + cell
			}
			clauses = append(clauses, cell)
		}
		if len(clauses) == 0 {
			continue
		}
		tree.Children = append(tree.Children, &doctree.DocNode{
			Text: strings.Join(clauses, ", ") + ".",
			Page: i + 2, // 1-indexed, after the header
		})
	}

	return tree, nil
}
