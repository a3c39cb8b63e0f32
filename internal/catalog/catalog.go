// Package catalog holds the static pattern configuration the extraction
// pipeline runs on: currency regexes, keyword lists, section boundary
// patterns, table field mappings, the channel normalization table and the
// validation tolerances. Everything here is read-only; concurrent validation
// runs share it without locking.
package catalog

import "regexp"

// CurrencyPatterns match monetary amounts in document text: symbol-prefixed
// (€1,000 / $500.00), symbol-suffixed (1,000€ / 500.00$) and
// three-letter-code-prefixed (EUR 1000, USD 500, GBP 800) forms.
var CurrencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[€$£¥₹₽][\s]*[\d,]+\.?\d*`),
	regexp.MustCompile(`[\d,]+\.?\d*[\s]*[€$£¥₹₽]`),
	regexp.MustCompile(`(?i)EUR[\s]+[\d,]+\.?\d*`),
	regexp.MustCompile(`(?i)USD[\s]+[\d,]+\.?\d*`),
	regexp.MustCompile(`(?i)GBP[\s]+[\d,]+\.?\d*`),
}

// NumericToken extracts the numeric part of a currency match after comma
// stripping.
var NumericToken = regexp.MustCompile(`[\d,]+\.?\d*`)

// PlatformKeywords tag currency mentions with a platform. Order matters:
// the first keyword found in a mention's context wins, by list order rather
// than proximity.
var PlatformKeywords = []string{
	"meta", "facebook", "instagram", "google", "youtube", "tiktok",
	"search", "display", "programmatic", "microsoft", "linkedin",
	"twitter", "snapchat", "pinterest",
}

// ObjectiveKeywords mark context that typically precedes channel budgets.
var ObjectiveKeywords = []string{
	"sales", "traffic", "awareness", "leads", "conversions", "visits",
	"installs", "subscriptions", "engagement", "reach", "impressions",
}

// StrategyExplainerPatterns are the accepted surface forms of the strategy
// explainer heading. Matched against lower-cased element text.
var StrategyExplainerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`2\.\s*strategy\s*explainer`),
	regexp.MustCompile(`2\)\s*strategy\s*explainer`),
	regexp.MustCompile(`strategy\s*explainer\s*:`),
	regexp.MustCompile(`2\s*-\s*strategy\s*explainer`),
}

// PlanTableKeywords recognize a table header row as a media-plan table.
var PlanTableKeywords = []string{"platform", "channel", "cost", "budget", "objective"}

// Field mappings for media-plan table rows, keyed by lower-cased header name.
var (
	CostFields      = []string{"cost", "budget", "spend", "total cost", "investment"}
	PlatformFields  = []string{"platform", "channel", "media channel", "advertising platform"}
	ObjectiveFields = []string{"objective", "goal", "target", "kpi", "campaign objective"}
)

// ChannelNormalizations maps raw lower-cased channel names to their canonical
// forms. Names absent from the table normalize to themselves.
var ChannelNormalizations = map[string]string{
	"facebook":                   "meta (facebook)",
	"instagram":                  "meta (instagram)",
	"meta combined":              "meta (combined)",
	"meta (fb)":                  "meta (facebook)",
	"meta (ig)":                  "meta (instagram)",
	"google search":              "google search",
	"google display network":     "google display",
	"google responsive display":  "google display",
	"youtube":                    "youtube ads",
	"tiktok":                     "tiktok ads",
	"microsoft search":           "microsoft search",
	"microsoft audience network": "microsoft audience",
}

// Validation tolerances.
const (
	// DefaultBudgetTolerance is the allowed relative deviation between the
	// brief budget and the summed document budget.
	DefaultBudgetTolerance = 0.05
	// DurationToleranceDays is the allowed absolute deviation in days.
	DurationToleranceDays = 1
)

// StrategyPromptTemplate is the fixed prompt contract for the AI strategy
// check. Placeholders are filled by fmt.Sprintf in order: business
// description, business location, target market, objectives, budget,
// platforms, strategy text.
const StrategyPromptTemplate = `
Compare this campaign brief with the media plan strategy and evaluate consistency:

CAMPAIGN BRIEF:
Business: %s in %s
Target Market: %s
Objectives: %s
Budget: %s
Existing Platforms (for reference only): %s

MEDIA PLAN STRATEGY:
%s

Evaluate if the strategy logically matches the brief. Note that platforms listed in the brief are existing user platforms for reference only - the strategy may choose different or additional platforms as appropriate.

Focus on:
1. Does the strategy address the right target audience?
2. Are the chosen platforms appropriate for the business and objectives?
3. Is the strategy realistic for the given budget?
4. Does the overall approach align with the business context and objectives?

Respond with: CONSISTENT, INCONSISTENT, or PARTIALLY_CONSISTENT followed by a brief explanation.
`

// StrategySystemMessage is the fixed system role for the AI strategy check.
const StrategySystemMessage = "You are a digital marketing expert evaluating campaign consistency."
