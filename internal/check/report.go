package check

import "time"

// Report is the aggregate outcome of one validation run. It is assembled
// once after all checks have run and never mutated afterwards.
type Report struct {
	TestCase      string   `json:"test_case"`
	BriefFile     string   `json:"json_brief_file"`
	DocumentFile  string   `json:"word_doc_file"`
	Timestamp     string   `json:"timestamp"`
	OverallStatus Status   `json:"overall_status"`
	Checks        []Result `json:"checks"`
	Notes         []string `json:"notes"`
}

// NewReport derives the overall verdict from the check results and stamps
// the report.
func NewReport(testCase, briefFile, docFile string, results []Result, now time.Time) Report {
	return Report{
		TestCase:      testCase,
		BriefFile:     briefFile,
		DocumentFile:  docFile,
		Timestamp:     now.Format(time.RFC3339),
		OverallStatus: Overall(results),
		Checks:        results,
		Notes:         []string{},
	}
}
