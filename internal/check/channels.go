package check

import (
	"fmt"
	"strings"

	"github.com/plancheck/plancheck/internal/channel"
	"github.com/plancheck/plancheck/internal/extract"
)

type channelExpected struct {
	PlanChannels       []string `json:"plan_channels"`
	StrategyChannels   []string `json:"strategy_channels"`
	NormalizedPlan     []string `json:"normalized_plan"`
	NormalizedStrategy []string `json:"normalized_strategy"`
}

type channelActual struct {
	Matching          []string `json:"matching"`
	MissingInStrategy []string `json:"missing_in_strategy"`
	MissingInPlan     []string `json:"missing_in_plan"`
}

// checkChannels verifies that the channels in the media-plan table and the
// "Channel:" labels of the strategy narrative name the same set after
// normalization. Passing additionally requires equal raw counts, so a
// duplicated channel on one side is still flagged.
func (e *Engine) checkChannels(rows []extract.PlanRow, strategyChannels []string) Result {
	const name = "channel_consistency_check"

	planChannels := planChannels(rows)

	if len(planChannels) == 0 {
		return Result{CheckName: name, Status: Warning, Details: "No channels found in media plan table"}
	}
	if len(strategyChannels) == 0 {
		return Result{CheckName: name, Status: Warning, Details: "No channels found in strategy explainer section"}
	}

	normalizedPlan := channel.NormalizeAll(planChannels)
	normalizedStrategy := channel.NormalizeAll(strategyChannels)
	diff := channel.Compare(normalizedPlan, normalizedStrategy)

	var parts []string
	countMatch := len(planChannels) == len(strategyChannels)
	if !countMatch {
		parts = append(parts, fmt.Sprintf("Channel count mismatch: %d in plan vs %d in strategy",
			len(planChannels), len(strategyChannels)))
	}
	if len(diff.MissingInSecond) > 0 {
		parts = append(parts, "Channels in plan but not in strategy: "+strings.Join(diff.MissingInSecond, ", "))
	}
	if len(diff.MissingInFirst) > 0 {
		parts = append(parts, "Channels in strategy but not in plan: "+strings.Join(diff.MissingInFirst, ", "))
	}

	status := Fail
	if diff.Equal() && countMatch {
		status = Pass
		parts = append(parts, fmt.Sprintf("All %d channels match between plan and strategy", len(diff.Matching)))
	} else if len(diff.Matching) > 0 {
		parts = append(parts, fmt.Sprintf("%d channels match, but inconsistencies found", len(diff.Matching)))
	} else {
		parts = append(parts, "No matching channels found between plan and strategy")
	}

	return Result{
		CheckName: name,
		Status:    status,
		Details:   strings.Join(parts, "; "),
		Expected: channelExpected{
			PlanChannels:       planChannels,
			StrategyChannels:   strategyChannels,
			NormalizedPlan:     normalizedPlan,
			NormalizedStrategy: normalizedStrategy,
		},
		Actual: channelActual{
			Matching:          diff.Matching,
			MissingInStrategy: diff.MissingInSecond,
			MissingInPlan:     diff.MissingInFirst,
		},
	}
}

// planChannels pulls the lower-cased channel name of each table row through
// the platform field mapping, de-duplicated in first-seen order.
func planChannels(rows []extract.PlanRow) []string {
	var channels []string
	seen := map[string]struct{}{}
	for _, row := range rows {
		name := strings.ToLower(strings.TrimSpace(row.Platform()))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		channels = append(channels, name)
	}
	return channels
}
