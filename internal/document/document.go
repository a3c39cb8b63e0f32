package document

import "strings"

// Document is the in-memory representation of a media-plan document: an
// ordered list of paragraph texts and an ordered list of tables. It is the
// only view of the source file the extraction pipeline ever sees; loaders
// (e.g. internal/docload) build it and the pipeline never mutates it.
type Document struct {
	Paragraphs []string
	Tables     []Table
}

// Table is an ordered grid of cell texts. Row 0 is treated as the header row
// by consumers that recognize plan tables.
type Table struct {
	Rows [][]string
}

// TextElement is one unit of linearized content. Index matches the element's
// position in the traversal order produced by Linearize and is the coordinate
// system for section boundaries and context windows.
type TextElement struct {
	Index int
	Text  string
}

// Linearize flattens the document into one ordered sequence of non-empty text
// elements: paragraphs first in document order, then table cells in
// row-major, table-major order. Empty (whitespace-only) paragraphs and cells
// are skipped, so indices are dense. The traversal order is a contract:
// boundary detection and before/after logic depend on it.
func Linearize(doc *Document) []TextElement {
	elements := make([]TextElement, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		if t := strings.TrimSpace(p); t != "" {
			elements = append(elements, TextElement{Index: len(elements), Text: t})
		}
	}
	for _, table := range doc.Tables {
		for _, row := range table.Rows {
			for _, cell := range row {
				if t := strings.TrimSpace(cell); t != "" {
					elements = append(elements, TextElement{Index: len(elements), Text: t})
				}
			}
		}
	}
	return elements
}

// CellTexts returns every non-empty cell of every table in row-major,
// table-major order. Used by extractors that scan cells without needing
// positional context.
func CellTexts(doc *Document) []string {
	var out []string
	for _, table := range doc.Tables {
		for _, row := range table.Rows {
			for _, cell := range row {
				if t := strings.TrimSpace(cell); t != "" {
					out = append(out, t)
				}
			}
		}
	}
	return out
}
