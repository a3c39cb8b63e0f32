// Package check grades a media-plan document against a campaign brief. Five
// independent checks each consume the extracted facts plus the brief and
// produce a Result; no check sees or alters another's outcome. An error
// inside one check is caught there and reported as a fail on that check
// alone.
package check

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plancheck/plancheck/internal/brief"
	"github.com/plancheck/plancheck/internal/extract"
	"github.com/plancheck/plancheck/internal/llm"
)

// Status is the closed result vocabulary with a total severity order:
// fail > warning > pass > skip. Aggregation is a monotonic reduction over
// this order; skip never raises overall severity.
type Status int

const (
	Skip Status = iota
	Pass
	Warning
	Fail
)

var statusNames = map[Status]string{
	Skip:    "skip",
	Pass:    "pass",
	Warning: "warning",
	Fail:    "fail",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for st, n := range statusNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", name)
}

// Result is the graded outcome of a single check. Immutable once produced.
type Result struct {
	CheckName string `json:"check_name"`
	Status    Status `json:"status"`
	Details   string `json:"details"`
	Expected  any    `json:"expected,omitempty"`
	Actual    any    `json:"actual,omitempty"`
}

// Facts are the extraction outputs a validation run feeds into the engine.
// They are passed by value and never mutated by checks.
type Facts struct {
	Mentions         []extract.CurrencyMention
	StartDate        string
	EndDate          string
	PlanRows         []extract.PlanRow
	StrategyChannels []string
	ChecklistItems   []string
	StrategyText     string
}

// Engine runs the validation checks. The AI client is an optional capability:
// when nil, the strategy check reports skip.
type Engine struct {
	BudgetTolerance float64
	AI              llm.Client
	Model           string
}

// Run executes the checks in their fixed order (budget, duration, channel,
// creative, then optionally AI strategy) and returns the results in that
// order. The order exists purely for deterministic reporting; checks do not
// depend on each other.
func (e *Engine) Run(ctx context.Context, b *brief.Brief, f Facts, includeAI bool) []Result {
	results := []Result{
		e.checkBudget(b, f.Mentions),
		e.checkDuration(b, f.StartDate, f.EndDate),
		e.checkChannels(f.PlanRows, f.StrategyChannels),
		e.checkCreative(b, f.ChecklistItems),
	}
	if includeAI {
		results = append(results, e.checkStrategy(ctx, b, f.StrategyText))
	}
	return results
}

// Overall reduces check results to the run verdict: fail if any check
// failed, else warning if any warned, else pass.
func Overall(results []Result) Status {
	overall := Pass
	for _, r := range results {
		if r.Status > overall {
			overall = r.Status
		}
	}
	return overall
}
