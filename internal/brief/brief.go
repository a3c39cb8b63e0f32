// Package brief loads and validates the structured JSON campaign brief the
// media plan is checked against. A malformed or incomplete brief is a load
// error that aborts the run before any check executes; it is never folded
// into the validation report.
package brief

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Brief is the campaign brief contract. Field names follow the JSON input.
type Brief struct {
	Business       Business        `json:"business"`
	TargetMarket   map[string]any  `json:"target_market"`
	Objectives     map[string]any  `json:"objectives"`
	Budget         json.RawMessage `json:"budget"`
	StartDate      string          `json:"start_date"`
	DurationDays   int             `json:"campaign_duration_days"`
	SocialAccounts []SocialAccount `json:"social_accounts"`
	// CreativeAssets is a pointer so an absent key is distinguishable from
	// an explicit {"has_assets": false}; validation guarantees it is
	// non-nil after a successful load.
	CreativeAssets *CreativeAssets `json:"creative_assets"`
}

type Business struct {
	Description string `json:"description"`
	Location    string `json:"location"`
}

type SocialAccount struct {
	Platform string   `json:"platform"`
	URLs     []string `json:"urls"`
}

type CreativeAssets struct {
	HasAssets   bool   `json:"has_assets"`
	Description string `json:"description"`
}

// Load reads and validates a brief from a JSON file.
func Load(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read brief: %w", err)
	}
	return Parse(data)
}

// Parse decodes a brief and enforces the required fields.
func Parse(data []byte) (*Brief, error) {
	var b Brief
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse brief: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("invalid brief: %w", err)
	}
	return &b, nil
}

func (b *Brief) validate() error {
	var missing []string
	if strings.TrimSpace(b.Business.Description) == "" {
		missing = append(missing, "business.description")
	}
	if strings.TrimSpace(b.Business.Location) == "" {
		missing = append(missing, "business.location")
	}
	if len(b.TargetMarket) == 0 {
		missing = append(missing, "target_market")
	}
	if len(b.Objectives) == 0 {
		missing = append(missing, "objectives")
	}
	if len(b.Budget) == 0 {
		missing = append(missing, "budget")
	}
	if strings.TrimSpace(b.StartDate) == "" && b.DurationDays == 0 {
		missing = append(missing, "start_date/campaign_duration_days")
	}
	if len(b.SocialAccounts) == 0 {
		missing = append(missing, "social_accounts")
	}
	if b.CreativeAssets == nil {
		missing = append(missing, "creative_assets")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if _, err := b.BudgetValue(); err != nil {
		return err
	}
	return nil
}

// BudgetValue returns the brief budget as a number. The JSON field accepts
// either a number or a numeric string.
func (b *Brief) BudgetValue() (float64, error) {
	raw := strings.TrimSpace(string(b.Budget))
	if raw == "" {
		return 0, fmt.Errorf("budget is empty")
	}
	var n float64
	if err := json.Unmarshal(b.Budget, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(b.Budget, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("budget %q is not numeric", s)
		}
		return v, nil
	}
	return 0, fmt.Errorf("budget %s is neither number nor numeric string", raw)
}

// BudgetText returns the budget as written in the brief, for prompts and
// report details.
func (b *Brief) BudgetText() string {
	s := strings.TrimSpace(string(b.Budget))
	return strings.Trim(s, `"`)
}

// Platforms lists the platforms of the brief's social accounts, in order.
func (b *Brief) Platforms() []string {
	out := make([]string, 0, len(b.SocialAccounts))
	for _, acc := range b.SocialAccounts {
		out = append(out, acc.Platform)
	}
	return out
}
