package check

import (
	"fmt"
	"time"

	"github.com/plancheck/plancheck/internal/brief"
	"github.com/plancheck/plancheck/internal/catalog"
)

// checkDuration compares the day count between the extracted start and end
// dates (both days inclusive) against the brief's campaign duration.
func (e *Engine) checkDuration(b *brief.Brief, startDate, endDate string) Result {
	const name = "duration_check"

	if startDate == "" || endDate == "" {
		return Result{
			CheckName: name,
			Status:    Warning,
			Details:   "Could not extract campaign dates from document",
		}
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return Result{CheckName: name, Status: Fail, Details: fmt.Sprintf("Error validating duration: %v", err)}
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return Result{CheckName: name, Status: Fail, Details: fmt.Sprintf("Error validating duration: %v", err)}
	}

	actual := int(end.Sub(start).Hours()/24) + 1
	expected := b.DurationDays

	diff := actual - expected
	if diff < 0 {
		diff = -diff
	}

	var status Status
	var details string
	switch {
	case actual == expected:
		status = Pass
		details = "Campaign duration matches exactly"
	case diff <= catalog.DurationToleranceDays:
		status = Pass
		details = fmt.Sprintf("Campaign duration matches within %d day tolerance", catalog.DurationToleranceDays)
	default:
		status = Fail
		details = fmt.Sprintf("Duration mismatch: expected %d days, got %d days", expected, actual)
	}

	return Result{CheckName: name, Status: status, Details: details, Expected: expected, Actual: actual}
}
