// Package docload reads a .docx media plan into the in-memory document
// model. Body paragraphs and tables keep their document order; table cells
// are concatenations of the cell's paragraph texts.
package docload

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/plancheck/plancheck/internal/document"
)

// Load parses the .docx file at path into a document.Document.
func Load(path string) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}

	parsed, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	doc := &document.Document{}
	for _, item := range parsed.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			doc.Paragraphs = append(doc.Paragraphs, paragraphText(v))
		case *docx.Table:
			if t := tableOf(v); len(t.Rows) > 0 {
				doc.Tables = append(doc.Tables, t)
			}
		}
	}
	return doc, nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}

func tableOf(t *docx.Table) document.Table {
	var table document.Table
	for _, row := range t.TableRows {
		var cells []string
		for _, cell := range row.TableCells {
			var parts []string
			for _, para := range cell.Paragraphs {
				if txt := strings.TrimSpace(paragraphText(para)); txt != "" {
					parts = append(parts, txt)
				}
			}
			cells = append(cells, strings.Join(parts, "\n"))
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}
