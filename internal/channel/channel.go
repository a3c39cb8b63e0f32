// Package channel compares channel names across extraction sources. Two raw
// names denote the same channel iff their normalized forms are equal.
package channel

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/plancheck/plancheck/internal/catalog"
)

// Normalize maps a raw channel string to its canonical form: NFKC fold (docx
// text can carry no-break spaces and fullwidth forms), lower-case, trim, then
// normalization-table lookup with identity fallback.
func Normalize(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.TrimSpace(strings.ToLower(s))
	if canonical, ok := catalog.ChannelNormalizations[s]; ok {
		return canonical
	}
	return s
}

// NormalizeAll normalizes a list, preserving order and length.
func NormalizeAll(raw []string) []string {
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = Normalize(r)
	}
	return out
}

// Diff compares two normalized channel lists as sets.
type Diff struct {
	Matching        []string
	MissingInSecond []string
	MissingInFirst  []string
}

// Compare returns the set relationship between two normalized lists. Result
// slices keep first-seen order from their originating list so report details
// are deterministic.
func Compare(first, second []string) Diff {
	firstSet := toSet(first)
	secondSet := toSet(second)

	var d Diff
	seen := map[string]struct{}{}
	for _, c := range first {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := secondSet[c]; ok {
			d.Matching = append(d.Matching, c)
		} else {
			d.MissingInSecond = append(d.MissingInSecond, c)
		}
	}
	seen = map[string]struct{}{}
	for _, c := range second {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := firstSet[c]; !ok {
			d.MissingInFirst = append(d.MissingInFirst, c)
		}
	}
	return d
}

// Equal reports whether the two lists contain exactly the same channels as
// sets.
func (d Diff) Equal() bool {
	return len(d.MissingInFirst) == 0 && len(d.MissingInSecond) == 0
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, c := range list {
		set[c] = struct{}{}
	}
	return set
}
