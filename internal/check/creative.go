package check

import (
	"strings"

	"github.com/plancheck/plancheck/internal/brief"
)

// assetTypes are the creative asset kinds inferred from the brief's free-text
// asset description by substring search.
var assetTypes = []string{"image", "video", "banner", "carousel"}

// checkCreative compares the brief's declared creative assets against the
// document's creative checklist. The comparison is heuristic, so mismatches
// warn rather than fail.
func (e *Engine) checkCreative(b *brief.Brief, checklist []string) Result {
	const name = "creative_check"

	description := strings.ToLower(b.CreativeAssets.Description)

	if !b.CreativeAssets.HasAssets {
		if len(checklist) > 0 {
			return Result{CheckName: name, Status: Warning, Details: "Brief says no assets but checklist found in plan"}
		}
		return Result{CheckName: name, Status: Pass, Details: "No assets required and none found in plan"}
	}

	if len(checklist) == 0 {
		return Result{CheckName: name, Status: Warning, Details: "Assets mentioned in brief but no checklist found in plan"}
	}

	var required []string
	for _, t := range assetTypes {
		if strings.Contains(description, t) {
			required = append(required, t)
		}
	}

	checklistText := strings.ToLower(strings.Join(checklist, " "))
	var missing []string
	for _, t := range required {
		if !strings.Contains(checklistText, t) {
			missing = append(missing, t)
		}
	}

	status := Pass
	details := "All required asset types found in creative checklist"
	if len(missing) > 0 {
		status = Warning
		details = "Missing asset types in checklist: " + strings.Join(missing, ", ")
	}

	return Result{CheckName: name, Status: status, Details: details, Expected: required, Actual: checklist}
}
