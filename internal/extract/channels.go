package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/plancheck/plancheck/internal/document"
	"github.com/plancheck/plancheck/internal/section"
)

var (
	channelLabelRe   = regexp.MustCompile(`(?i)channel:\s*([^\n\r]+)`)
	leadingBulletRe  = regexp.MustCompile(`^[•\-\*\s]+`)
	trailingPunctRe  = regexp.MustCompile(`[.,:;]+$`)
	checklistStripRe = regexp.MustCompile(`^[✓✔•\-\s]+`)
)

// Channels finds every "Channel:" label across paragraphs and table cells
// and returns the cleaned remainders in first-seen order, dropping exact
// repeats. Cleaning strips leading bullet markers and trailing punctuation;
// de-duplication is case-sensitive on the cleaned string.
func Channels(doc *document.Document) []string {
	var texts []string
	for _, p := range doc.Paragraphs {
		if t := strings.TrimSpace(p); t != "" {
			texts = append(texts, t)
		}
	}
	texts = append(texts, document.CellTexts(doc)...)

	var channels []string
	seen := map[string]struct{}{}
	for _, text := range texts {
		for _, m := range channelLabelRe.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			name = leadingBulletRe.ReplaceAllString(name, "")
			name = trailingPunctRe.ReplaceAllString(name, "")
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			channels = append(channels, name)
		}
	}
	return channels
}

// Checklist collects creative-checklist items with a small state machine over
// the paragraphs. Collection turns on at the checklist heading (the heading
// itself is not an item), gathers paragraphs starting with a checkmark or
// bullet glyph, and turns off at the next section heading: a paragraph that
// starts with an uppercase letter, contains a colon and does not mention
// "creative".
func Checklist(paragraphs []string) []string {
	var items []string
	collecting := false
	for _, p := range paragraphs {
		text := strings.TrimSpace(p)
		if text == "" {
			continue
		}

		if section.IsChecklistHeading(strings.ToLower(text)) {
			collecting = true
			continue
		}

		if collecting && startsUpper(text) && strings.Contains(text, ":") &&
			!strings.Contains(strings.ToLower(text), "creative") {
			break
		}

		if collecting && hasChecklistGlyph(text) {
			if item := strings.TrimSpace(checklistStripRe.ReplaceAllString(text, "")); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

func hasChecklistGlyph(text string) bool {
	return strings.HasPrefix(text, "✓") || strings.HasPrefix(text, "✔") ||
		strings.HasPrefix(text, "•") || strings.HasPrefix(text, "-")
}

func startsUpper(text string) bool {
	return unicode.IsUpper([]rune(text)[0])
}
