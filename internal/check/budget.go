package check

import (
	"fmt"

	"github.com/plancheck/plancheck/internal/brief"
	"github.com/plancheck/plancheck/internal/extract"
)

// budgetActual is the structured actual value reported by the budget check.
type budgetActual struct {
	Total         float64                   `json:"total"`
	BudgetAmounts []extract.CurrencyMention `json:"budget_amounts"`
	AllMentions   []extract.CurrencyMention `json:"all_currency_data"`
}

// checkBudget sums the currency mentions that look like channel budgets and
// compares the total against the brief budget within the relative tolerance.
// A mention is a budget candidate when its amount falls in
// [100, 2×expected] and its context is near an objective or impression
// figure; when no mention qualifies, every in-range mention counts instead.
func (e *Engine) checkBudget(b *brief.Brief, mentions []extract.CurrencyMention) Result {
	const name = "budget_check"

	expected, err := b.BudgetValue()
	if err != nil {
		return Result{CheckName: name, Status: Fail, Details: fmt.Sprintf("Error validating budget from text: %v", err)}
	}

	if len(mentions) == 0 {
		return Result{
			CheckName: name,
			Status:    Fail,
			Details:   "No currency amounts found in document",
			Expected:  expected,
			Actual:    0.0,
		}
	}

	inRange := func(m extract.CurrencyMention) bool {
		return m.Amount >= 100 && m.Amount <= expected*2
	}

	var candidates []extract.CurrencyMention
	for _, m := range mentions {
		if (m.NearObjective || m.NearImpressions) && inRange(m) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		for _, m := range mentions {
			if inRange(m) {
				candidates = append(candidates, m)
			}
		}
	}
	if len(candidates) == 0 {
		return Result{
			CheckName: name,
			Status:    Warning,
			Details:   fmt.Sprintf("Found %d currency amounts but none appear to be channel budgets", len(mentions)),
			Expected:  expected,
			Actual:    mentions,
		}
	}

	var total float64
	for _, m := range candidates {
		total += m.Amount
	}

	difference := expected - total
	if difference < 0 {
		difference = -difference
	}
	allowed := expected * e.BudgetTolerance

	status := Pass
	details := fmt.Sprintf("Found %d budget amounts totaling %g, matches within %g%% tolerance",
		len(candidates), total, e.BudgetTolerance*100)
	if difference > allowed {
		status = Fail
		details = fmt.Sprintf("Found %d budget amounts totaling %g, difference of %.2f exceeds %.2f tolerance",
			len(candidates), total, difference, allowed)
	}

	return Result{
		CheckName: name,
		Status:    status,
		Details:   details,
		Expected:  expected,
		Actual:    budgetActual{Total: total, BudgetAmounts: candidates, AllMentions: mentions},
	}
}
