// Package app wires the validation pipeline: load the brief and document,
// linearize, detect section boundaries, extract facts, run the checks and
// write the report.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plancheck/plancheck/internal/brief"
	"github.com/plancheck/plancheck/internal/check"
	"github.com/plancheck/plancheck/internal/docload"
	"github.com/plancheck/plancheck/internal/document"
	"github.com/plancheck/plancheck/internal/extract"
	"github.com/plancheck/plancheck/internal/llm"
	"github.com/plancheck/plancheck/internal/section"
)

// Run validates one (brief, document) pair and returns the assembled report.
// Load failures return an error before any check executes; everything after
// loading surfaces through check results, never as an error.
func Run(ctx context.Context, cfg Config) (check.Report, error) {
	cfg = cfg.withDefaults()

	b, err := brief.Load(cfg.BriefPath)
	if err != nil {
		return check.Report{}, err
	}
	doc, err := docload.Load(cfg.DocumentPath)
	if err != nil {
		return check.Report{}, err
	}
	log.Debug().
		Int("paragraphs", len(doc.Paragraphs)).
		Int("tables", len(doc.Tables)).
		Msg("document loaded")

	facts := ExtractFacts(doc)
	log.Debug().
		Int("currency_mentions", len(facts.Mentions)).
		Int("plan_rows", len(facts.PlanRows)).
		Int("strategy_channels", len(facts.StrategyChannels)).
		Int("checklist_items", len(facts.ChecklistItems)).
		Str("start_date", facts.StartDate).
		Str("end_date", facts.EndDate).
		Msg("facts extracted")

	engine := &check.Engine{
		BudgetTolerance: cfg.BudgetTolerance,
		Model:           cfg.LLMModel,
	}
	if cfg.AIValidate && (cfg.LLMAPIKey != "" || cfg.LLMBaseURL != "") {
		engine.AI = llm.New(cfg.LLMAPIKey, cfg.LLMBaseURL)
	}

	started := time.Now()
	results := engine.Run(ctx, b, facts, cfg.AIValidate)
	log.Info().
		Int("checks", len(results)).
		Dur("elapsed", time.Since(started)).
		Msg("validation complete")

	report := check.NewReport(
		stem(cfg.DocumentPath),
		filepath.Base(cfg.BriefPath),
		filepath.Base(cfg.DocumentPath),
		results,
		time.Now(),
	)

	if cfg.OutputPath != "" {
		if err := WriteReport(report, cfg.OutputPath); err != nil {
			return report, err
		}
		log.Info().Str("out", cfg.OutputPath).Msg("wrote report")
	}
	if cfg.PDFPath != "" {
		if err := writeReportPDF(report, cfg.PDFPath); err != nil {
			return report, fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", cfg.PDFPath).Msg("wrote pdf report")
	}
	return report, nil
}

// ExtractFacts runs every extractor over the document and bundles the
// outputs for the check engine. Extraction ambiguity (nothing found) is not
// an error here; the affected checks downgrade themselves to warnings.
func ExtractFacts(doc *document.Document) check.Facts {
	elements := document.Linearize(doc)
	boundaries := section.Detect(elements)

	start, end := extract.Dates(doc.Paragraphs)
	return check.Facts{
		Mentions:         extract.Currency(elements, boundaries),
		StartDate:        start,
		EndDate:          end,
		PlanRows:         extract.MediaPlanTable(doc.Tables),
		StrategyChannels: extract.Channels(doc),
		ChecklistItems:   extract.Checklist(doc.Paragraphs),
		StrategyText:     extract.StrategyText(doc.Paragraphs),
	}
}

// WriteReport serializes the report as indented JSON.
func WriteReport(report check.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
