package app

import "github.com/plancheck/plancheck/internal/catalog"

// Config holds runtime configuration for one validation run.
type Config struct {
	BriefPath    string
	DocumentPath string
	OutputPath   string
	PDFPath      string

	// LLM (AI strategy check)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string
	AIValidate bool

	// BudgetTolerance is the allowed relative budget deviation, e.g. 0.05.
	BudgetTolerance float64

	Verbose bool
}

// withDefaults fills unset fields with the catalog defaults.
func (c Config) withDefaults() Config {
	if c.BudgetTolerance <= 0 {
		c.BudgetTolerance = catalog.DefaultBudgetTolerance
	}
	if c.LLMModel == "" {
		c.LLMModel = "gpt-4"
	}
	if c.OutputPath == "" {
		c.OutputPath = "test_report.json"
	}
	return c
}
