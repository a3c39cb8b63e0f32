// Package extract turns a linearized media-plan document into typed facts:
// currency mentions, campaign dates, plan-table rows and channel lists. Each
// extractor is a pure single-pass function over the immutable element
// sequence; re-running one on the same document yields the same output.
package extract

import (
	"strconv"
	"strings"

	"github.com/plancheck/plancheck/internal/catalog"
	"github.com/plancheck/plancheck/internal/document"
	"github.com/plancheck/plancheck/internal/section"
)

// CurrencyMention is one monetary amount found in an eligible zone of the
// document, tagged with coarse context so the budget check can tell channel
// budgets from incidental figures.
type CurrencyMention struct {
	Amount          float64 `json:"amount"`
	RawText         string  `json:"original_text"`
	Context         string  `json:"context"`
	Platform        string  `json:"platform,omitempty"`
	NearObjective   bool    `json:"near_objective"`
	NearImpressions bool    `json:"near_impressions"`
}

// Currency extracts every currency amount from zone-eligible elements. The
// context window for tagging is the previous, current and next element text
// lower-cased, regardless of zone membership of the neighbours. Multiple
// matches inside one element are recorded independently.
func Currency(elements []document.TextElement, b section.Boundaries) []CurrencyMention {
	var mentions []CurrencyMention
	for i, el := range elements {
		if !b.Eligible(i) {
			continue
		}
		for _, re := range catalog.CurrencyPatterns {
			for _, raw := range re.FindAllString(el.Text, -1) {
				amount, ok := ParseAmount(raw)
				if !ok {
					continue
				}
				context := strings.ToLower(el.Text)
				if i > 0 {
					context = strings.ToLower(elements[i-1].Text) + " " + context
				}
				if i < len(elements)-1 {
					context = context + " " + strings.ToLower(elements[i+1].Text)
				}

				platform := ""
				for _, keyword := range catalog.PlatformKeywords {
					if strings.Contains(context, keyword) {
						platform = keyword
						break
					}
				}

				nearObjective := false
				for _, obj := range catalog.ObjectiveKeywords {
					if strings.Contains(context, obj) {
						nearObjective = true
						break
					}
				}

				mentions = append(mentions, CurrencyMention{
					Amount:          amount,
					RawText:         raw,
					Context:         snippet(el.Text),
					Platform:        platform,
					NearObjective:   nearObjective,
					NearImpressions: strings.Contains(context, "impression") || strings.Contains(context, "reach"),
				})
			}
		}
	}
	return mentions
}

// ParseAmount pulls the numeric value out of a currency match, stripping
// thousands separators first. Returns false when no parsable number remains.
func ParseAmount(raw string) (float64, bool) {
	token := catalog.NumericToken.FindString(strings.ReplaceAll(raw, ",", ""))
	if token == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func snippet(text string) string {
	// Truncate on a rune boundary so a multibyte character is never split.
	if r := []rune(text); len(r) > 100 {
		return string(r[:100]) + "..."
	}
	return text
}
