package extract

import (
	"strings"

	"github.com/plancheck/plancheck/internal/catalog"
	"github.com/plancheck/plancheck/internal/document"
)

// Cell is one value of a plan-table row. Cost-like columns carry a parsed
// number when the cell contained one; everything else keeps the raw text.
type Cell struct {
	Text    string
	Number  float64
	Numeric bool
}

// PlanRow maps lower-cased header names to cell values for one non-header,
// non-empty row of a recognized media-plan table.
type PlanRow map[string]Cell

// Platform resolves the row's channel name through the platform field
// mapping, first mapped header present wins. Empty when the row has none.
func (r PlanRow) Platform() string {
	for _, field := range catalog.PlatformFields {
		if c, ok := r[field]; ok && c.Text != "" {
			return c.Text
		}
	}
	return ""
}

// MediaPlanTable extracts structured rows from every table recognized as a
// media-plan table: at least two rows, with a header row containing one of
// the plan keywords anywhere in its concatenated text. Rows whose values are
// all empty are dropped.
func MediaPlanTable(tables []document.Table) []PlanRow {
	var rows []PlanRow
	for _, table := range tables {
		if len(table.Rows) < 2 {
			continue
		}
		headers := make([]string, len(table.Rows[0]))
		for i, cell := range table.Rows[0] {
			headers[i] = strings.ToLower(strings.TrimSpace(cell))
		}
		if !isPlanHeader(strings.Join(headers, " ")) {
			continue
		}

		for _, raw := range table.Rows[1:] {
			row := PlanRow{}
			empty := true
			for i, cell := range raw {
				if i >= len(headers) {
					break
				}
				value := strings.TrimSpace(cell)
				if value != "" {
					empty = false
				}
				row[headers[i]] = parseCell(headers[i], value)
			}
			if len(row) > 0 && !empty {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func isPlanHeader(joined string) bool {
	for _, keyword := range catalog.PlanTableKeywords {
		if strings.Contains(joined, keyword) {
			return true
		}
	}
	return false
}

func parseCell(header, value string) Cell {
	if strings.Contains(header, "cost") || strings.Contains(header, "budget") || strings.Contains(header, "spend") {
		if n, ok := ParseAmount(value); ok {
			return Cell{Text: value, Number: n, Numeric: true}
		}
	}
	return Cell{Text: value}
}
