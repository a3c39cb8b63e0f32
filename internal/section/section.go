// Package section locates the logical zones of a linearized media-plan
// document. The document splits into up to three zones around two markers:
// the "strategy explainer" heading and the "creative checklist" heading.
// Currency extraction must skip the narrative between the two so prose
// dollar figures inside the strategy story are not double-counted as channel
// budgets.
package section

import (
	"strings"

	"github.com/plancheck/plancheck/internal/catalog"
	"github.com/plancheck/plancheck/internal/document"
)

// Boundaries holds the linearized indices of the two section markers.
// A nil index means the marker was not found.
type Boundaries struct {
	StrategyIndex  *int
	ChecklistIndex *int
}

// Detect scans the elements once in order and fixes the two cut points.
// The strategy heading is tested on every element and the first match wins.
// The checklist marker stops the scan at its first occurrence, so a later
// repeat of the phrase never moves the boundary.
func Detect(elements []document.TextElement) Boundaries {
	var b Boundaries
	for i, el := range elements {
		lower := strings.ToLower(el.Text)

		if b.StrategyIndex == nil {
			for _, re := range catalog.StrategyExplainerPatterns {
				if re.MatchString(lower) {
					idx := i
					b.StrategyIndex = &idx
					break
				}
			}
		}

		if IsChecklistHeading(lower) {
			idx := i
			b.ChecklistIndex = &idx
			break
		}
	}
	return b
}

// IsChecklistHeading reports whether lower-cased text marks the creative
// checklist section.
func IsChecklistHeading(lower string) bool {
	return strings.Contains(lower, "creative") &&
		(strings.Contains(lower, "checklist") || strings.Contains(lower, "requirements"))
}

// Eligible is the zone predicate for currency extraction: an element
// participates when no strategy section exists, when it sits strictly before
// the strategy narrative, or when it sits at or after the creative checklist.
// Elements between the two markers are the narrative itself and are always
// excluded.
func (b Boundaries) Eligible(i int) bool {
	if b.StrategyIndex == nil {
		return true
	}
	if i < *b.StrategyIndex {
		return true
	}
	if b.ChecklistIndex != nil && i >= *b.ChecklistIndex {
		return true
	}
	return false
}
