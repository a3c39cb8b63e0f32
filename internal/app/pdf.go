package app

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/plancheck/plancheck/internal/check"
)

// writeReportPDF renders the validation report as a minimal PDF: a title
// block, the overall verdict and one section per check. Layout is
// intentionally simple; the JSON report is the authoritative artifact.
func writeReportPDF(report check.Report, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Media Plan Validation Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, fmt.Sprintf("Test case: %s", report.TestCase), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Brief: %s", report.BriefFile), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Media plan: %s", report.DocumentFile), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Generated: %s", report.Timestamp), "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Overall: %s", report.OverallStatus), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(2)

	for _, c := range report.Checks {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", c.CheckName, c.Status), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, c.Details, "", "L", false)
		if c.Expected != nil && c.Actual != nil {
			pdf.MultiCell(0, 5, fmt.Sprintf("Expected: %v", c.Expected), "", "L", false)
			pdf.MultiCell(0, 5, fmt.Sprintf("Actual: %v", c.Actual), "", "L", false)
		}
		pdf.Ln(2)
	}

	return pdf.OutputFileAndClose(outPath)
}
