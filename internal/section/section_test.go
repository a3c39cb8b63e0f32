package section

import (
	"testing"

	"github.com/plancheck/plancheck/internal/document"
)

func elementsOf(texts ...string) []document.TextElement {
	out := make([]document.TextElement, len(texts))
	for i, t := range texts {
		out[i] = document.TextElement{Index: i, Text: t}
	}
	return out
}

func TestDetect_StrategyHeadingForms(t *testing.T) {
	forms := []string{
		"2. Strategy Explainer",
		"2) Strategy Explainer",
		"Strategy Explainer:",
		"2 - Strategy Explainer",
	}
	for _, form := range forms {
		b := Detect(elementsOf("intro", form, "narrative"))
		if b.StrategyIndex == nil || *b.StrategyIndex != 1 {
			t.Fatalf("form %q: expected strategy index 1, got %v", form, b.StrategyIndex)
		}
	}
}

func TestDetect_NoMarkers(t *testing.T) {
	b := Detect(elementsOf("just", "plain", "text"))
	if b.StrategyIndex != nil || b.ChecklistIndex != nil {
		t.Fatalf("expected no boundaries, got %+v", b)
	}
}

func TestDetect_ChecklistStopsAtFirstMatch(t *testing.T) {
	b := Detect(elementsOf(
		"intro",
		"Creative Requirements Checklist",
		"2. Strategy Explainer",
		"Creative checklist again",
	))
	if b.ChecklistIndex == nil || *b.ChecklistIndex != 1 {
		t.Fatalf("expected checklist index 1 (first match), got %v", b.ChecklistIndex)
	}
	// The scan stops at the checklist hit, so a strategy heading after it is
	// never seen.
	if b.StrategyIndex != nil {
		t.Fatalf("expected no strategy index after checklist stop, got %d", *b.StrategyIndex)
	}
}

func TestDetect_StrategyThenChecklist(t *testing.T) {
	b := Detect(elementsOf(
		"1. Campaign Overview",
		"2. Strategy Explainer",
		"the story",
		"Creative Checklist:",
		"✓ item",
	))
	if b.StrategyIndex == nil || *b.StrategyIndex != 1 {
		t.Fatalf("expected strategy index 1, got %v", b.StrategyIndex)
	}
	if b.ChecklistIndex == nil || *b.ChecklistIndex != 3 {
		t.Fatalf("expected checklist index 3, got %v", b.ChecklistIndex)
	}
}

func TestEligible(t *testing.T) {
	strategy, checklist := 2, 5

	cases := []struct {
		name string
		b    Boundaries
		want map[int]bool
	}{
		{
			name: "no strategy processes everything",
			b:    Boundaries{},
			want: map[int]bool{0: true, 3: true, 9: true},
		},
		{
			name: "strategy without checklist excludes the rest",
			b:    Boundaries{StrategyIndex: &strategy},
			want: map[int]bool{0: true, 1: true, 2: false, 5: false, 9: false},
		},
		{
			name: "narrative between markers excluded",
			b:    Boundaries{StrategyIndex: &strategy, ChecklistIndex: &checklist},
			want: map[int]bool{0: true, 1: true, 2: false, 3: false, 4: false, 5: true, 6: true},
		},
	}
	for _, tc := range cases {
		for i, want := range tc.want {
			if got := tc.b.Eligible(i); got != want {
				t.Fatalf("%s: element %d eligible=%t, want %t", tc.name, i, got, want)
			}
		}
	}
}
