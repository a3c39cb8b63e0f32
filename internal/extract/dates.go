package extract

import "regexp"

type dateKind int

const (
	dateStart dateKind = iota
	dateEnd
	datePair
)

// datePatterns are tried in order on every paragraph. Whether a match sets
// the start date, the end date or both is a property of the pattern, not of
// the surrounding text.
var datePatterns = []struct {
	re   *regexp.Regexp
	kind dateKind
}{
	{regexp.MustCompile(`(?i)campaign\s+start.*?(\d{4}-\d{2}-\d{2})`), dateStart},
	{regexp.MustCompile(`(?i)start\s+date.*?(\d{4}-\d{2}-\d{2})`), dateStart},
	{regexp.MustCompile(`(?i)campaign\s+end.*?(\d{4}-\d{2}-\d{2})`), dateEnd},
	{regexp.MustCompile(`(?i)end\s+date.*?(\d{4}-\d{2}-\d{2})`), dateEnd},
	{regexp.MustCompile(`(?i)duration.*?(\d{4}-\d{2}-\d{2}).*?to.*?(\d{4}-\d{2}-\d{2})`), datePair},
	{regexp.MustCompile(`(?i)(\d{4}-\d{2}-\d{2}).*?to.*?(\d{4}-\d{2}-\d{2})`), datePair},
}

// Dates scans every paragraph for campaign start and end dates and returns
// them as raw YYYY-MM-DD strings, empty when not found. The scan keeps the
// last match seen while walking forward, so a date restated later in the
// document overwrites an earlier one.
func Dates(paragraphs []string) (start, end string) {
	for _, text := range paragraphs {
		for _, p := range datePatterns {
			m := p.re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			switch p.kind {
			case dateStart:
				start = m[1]
			case dateEnd:
				end = m[1]
			case datePair:
				start, end = m[1], m[2]
			}
		}
	}
	return start, end
}
