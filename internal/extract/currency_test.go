package extract

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/plancheck/plancheck/internal/document"
	"github.com/plancheck/plancheck/internal/section"
)

func elementsOf(texts ...string) []document.TextElement {
	out := make([]document.TextElement, len(texts))
	for i, t := range texts {
		out[i] = document.TextElement{Index: i, Text: t}
	}
	return out
}

func TestCurrency_Patterns(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"Budget: $500.00", 500},
		{"Budget: €1,000", 1000},
		{"Total 1,000€ for launch", 1000},
		{"Allocation EUR 1000", 1000},
		{"Allocation USD 500", 500},
		{"Allocation GBP 800", 800},
		{"Spend ₹12,345.50 overall", 12345.5},
	}
	for _, tc := range cases {
		mentions := Currency(elementsOf(tc.text), section.Boundaries{})
		if len(mentions) != 1 {
			t.Fatalf("%q: expected 1 mention, got %d", tc.text, len(mentions))
		}
		if mentions[0].Amount != tc.want {
			t.Fatalf("%q: expected amount %g, got %g", tc.text, tc.want, mentions[0].Amount)
		}
	}
}

func TestCurrency_ContextTruncatesOnRuneBoundary(t *testing.T) {
	long := "Budget: $500 réservé à la publicité numérique " + strings.Repeat("très ", 30)
	mentions := Currency(elementsOf(long), section.Boundaries{})
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	ctx := mentions[0].Context
	if !utf8.ValidString(ctx) {
		t.Fatalf("context is not valid UTF-8: %q", ctx)
	}
	if got := utf8.RuneCountInString(ctx); got != 103 { // 100 runes + "..."
		t.Fatalf("expected 103 runes in truncated context, got %d", got)
	}
}

func TestCurrency_NarrativeZoneExcluded(t *testing.T) {
	elements := elementsOf(
		"Budget overview: $1,000",     // pre-strategy
		"2. Strategy Explainer",       // strategy marker
		"We will spend $9,999 wisely", // narrative: excluded
		"Creative Checklist:",         // checklist marker
		"Plan table: $500",            // post-checklist
	)
	strategy, checklist := 1, 3
	b := section.Boundaries{StrategyIndex: &strategy, ChecklistIndex: &checklist}

	mentions := Currency(elements, b)
	var amounts []float64
	for _, m := range mentions {
		amounts = append(amounts, m.Amount)
	}
	want := []float64{1000, 500}
	if !reflect.DeepEqual(amounts, want) {
		t.Fatalf("expected amounts %v, got %v", want, amounts)
	}
}

func TestCurrency_StrategyWithoutChecklistExcludesTail(t *testing.T) {
	elements := elementsOf(
		"Budget: $100",
		"2. Strategy Explainer",
		"then $200 here",
		"and $300 there",
	)
	strategy := 1
	mentions := Currency(elements, section.Boundaries{StrategyIndex: &strategy})
	if len(mentions) != 1 || mentions[0].Amount != 100 {
		t.Fatalf("expected only the pre-strategy mention, got %+v", mentions)
	}
}

func TestCurrency_ContextTags(t *testing.T) {
	elements := elementsOf(
		"Objective: Sales",
		"Budget: $1,050",
		"Estimated reach 50,000 users on Facebook",
	)
	mentions := Currency(elements, section.Boundaries{})
	// $1,050 plus 50,000 suffix-less numbers are not currency; only the $ match
	// in the middle element carries tags from both neighbours.
	var target *CurrencyMention
	for i := range mentions {
		if mentions[i].Amount == 1050 {
			target = &mentions[i]
		}
	}
	if target == nil {
		t.Fatalf("expected a 1050 mention, got %+v", mentions)
	}
	if !target.NearObjective {
		t.Fatalf("expected nearObjective via previous element, got %+v", *target)
	}
	if !target.NearImpressions {
		t.Fatalf("expected nearImpressions via next element, got %+v", *target)
	}
	// "meta" precedes "facebook" in the catalog but is absent from context, so
	// the first catalog keyword present wins.
	if target.Platform != "facebook" {
		t.Fatalf("expected platform facebook, got %q", target.Platform)
	}
}

func TestCurrency_MultipleMatchesPerElement(t *testing.T) {
	mentions := Currency(elementsOf("Split: $300 for search and $700 for display"), section.Boundaries{})
	if len(mentions) != 2 {
		t.Fatalf("expected 2 mentions, got %d: %+v", len(mentions), mentions)
	}
	if mentions[0].Amount != 300 || mentions[1].Amount != 700 {
		t.Fatalf("expected 300 then 700, got %+v", mentions)
	}
}

func TestCurrency_Idempotent(t *testing.T) {
	elements := elementsOf("Objective: Traffic", "Budget: $1,000 and $2,000")
	a := Currency(elements, section.Boundaries{})
	b := Currency(elements, section.Boundaries{})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("extraction not deterministic: %+v vs %+v", a, b)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,234.56", 1234.56, true},
		{"EUR 1000", 1000, true},
		{"no number", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseAmount(%q) = %g,%t want %g,%t", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
