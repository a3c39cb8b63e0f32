package extract

import (
	"testing"

	"github.com/plancheck/plancheck/internal/document"
)

func TestMediaPlanTable_Recognition(t *testing.T) {
	tables := []document.Table{
		// No plan keywords in header: ignored.
		{Rows: [][]string{{"Name", "Phone"}, {"Alice", "123"}}},
		// Single row: ignored.
		{Rows: [][]string{{"Platform", "Budget"}}},
		// Recognized plan table.
		{Rows: [][]string{
			{"Platform", "Objective", "Budget"},
			{"Facebook", "Sales", "$500"},
			{"Google Search", "Traffic", "500.00"},
		}},
	}
	rows := MediaPlanTable(tables)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Platform() != "Facebook" {
		t.Fatalf("expected platform Facebook, got %q", rows[0].Platform())
	}
	budget := rows[0]["budget"]
	if !budget.Numeric || budget.Number != 500 {
		t.Fatalf("expected parsed budget 500, got %+v", budget)
	}
	if rows[1]["objective"].Text != "Traffic" {
		t.Fatalf("expected objective Traffic, got %+v", rows[1]["objective"])
	}
}

func TestMediaPlanTable_CostParsing(t *testing.T) {
	tables := []document.Table{{Rows: [][]string{
		{"Channel", "Total Cost"},
		{"YouTube", "€1,250.50"},
		{"TikTok", "TBD"},
	}}}
	rows := MediaPlanTable(tables)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	cost := rows[0]["total cost"]
	if !cost.Numeric || cost.Number != 1250.50 {
		t.Fatalf("expected parsed cost 1250.50, got %+v", cost)
	}
	// Non-numeric cost cells keep the raw text.
	if tbd := rows[1]["total cost"]; tbd.Numeric || tbd.Text != "TBD" {
		t.Fatalf("expected raw TBD, got %+v", tbd)
	}
}

func TestMediaPlanTable_DropsEmptyRows(t *testing.T) {
	tables := []document.Table{{Rows: [][]string{
		{"Platform", "Budget"},
		{"", ""},
		{"Instagram", "$100"},
	}}}
	rows := MediaPlanTable(tables)
	if len(rows) != 1 {
		t.Fatalf("expected empty row dropped, got %d rows", len(rows))
	}
}

func TestMediaPlanTable_NoTables(t *testing.T) {
	if rows := MediaPlanTable(nil); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
