package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the flags.
type FileConfig struct {
	Brief    string `yaml:"brief" json:"brief"`
	Document string `yaml:"document" json:"document"`
	Output   string `yaml:"output" json:"output"`
	PDF      string `yaml:"pdf" json:"pdf"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	AIValidation bool    `yaml:"aiValidation" json:"aiValidation"`
	Tolerance    float64 `yaml:"tolerance" json:"tolerance"`
	Verbose      bool    `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Unknown extensions try
// YAML first, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still unset after
// flag parsing, so explicit flags win over the config file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.BriefPath == "" && fc.Brief != "" {
		cfg.BriefPath = fc.Brief
	}
	if cfg.DocumentPath == "" && fc.Document != "" {
		cfg.DocumentPath = fc.Document
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.PDFPath == "" && fc.PDF != "" {
		cfg.PDFPath = fc.PDF
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.BudgetTolerance == 0 && fc.Tolerance > 0 {
		cfg.BudgetTolerance = fc.Tolerance
	}
	if fc.AIValidation {
		cfg.AIValidate = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
