package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plancheck/plancheck/internal/app"
	"github.com/plancheck/plancheck/internal/check"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Credentials may live in a local .env; absence is fine.
	_ = godotenv.Load()

	var (
		briefPath    string
		docPath      string
		outputPath   string
		pdfPath      string
		configPath   string
		llmBaseURL   string
		llmModel     string
		llmKey       string
		aiValidation bool
		tolerance    float64
		verbose      bool
	)

	flag.StringVar(&briefPath, "brief", "", "Path to JSON campaign brief file")
	flag.StringVar(&docPath, "doc", "", "Path to Word media plan document (.docx)")
	flag.StringVar(&outputPath, "output", "test_report.json", "Output path for the test report JSON")
	flag.StringVar(&pdfPath, "pdf", "", "Optional output path for a PDF rendering of the report")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for AI strategy validation (default gpt-4)")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("OPENAI_API_KEY"), "API key for OpenAI-compatible server")
	flag.BoolVar(&aiValidation, "ai", false, "Include AI-powered strategy validation")
	flag.Float64Var(&tolerance, "tolerance", 0, "Budget tolerance fraction (default 0.05)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		BriefPath:       briefPath,
		DocumentPath:    docPath,
		OutputPath:      outputPath,
		PDFPath:         pdfPath,
		LLMBaseURL:      llmBaseURL,
		LLMModel:        llmModel,
		LLMAPIKey:       llmKey,
		AIValidate:      aiValidation,
		BudgetTolerance: tolerance,
		Verbose:         verbose,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if verbose || cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.BriefPath == "" || cfg.DocumentPath == "" {
		fmt.Fprintln(os.Stderr, "usage: plancheck -brief brief.json -doc plan.docx [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	report, err := app.Run(context.Background(), cfg)
	if err != nil {
		log.Error().Err(err).Msg("validation aborted")
		os.Exit(2)
	}

	printSummary(report)

	if report.OverallStatus == check.Pass {
		os.Exit(0)
	}
	os.Exit(1)
}

var statusGlyphs = map[check.Status]string{
	check.Pass:    "✅",
	check.Fail:    "❌",
	check.Warning: "⚠️",
	check.Skip:    "⏭️",
}

func printSummary(report check.Report) {
	line := "============================================================"
	fmt.Printf("\n%s\nMEDIA PLAN VALIDATION REPORT\n%s\n", line, line)
	fmt.Printf("Test Case: %s\n", report.TestCase)
	fmt.Printf("Overall Status: %s\n", upper(report.OverallStatus))
	fmt.Printf("Brief: %s\n", report.BriefFile)
	fmt.Printf("Media Plan: %s\n", report.DocumentFile)
	fmt.Printf("\nValidation Results:\n%s\n", "------------------------------------------------------------")

	for _, c := range report.Checks {
		glyph := statusGlyphs[c.Status]
		if glyph == "" {
			glyph = "❓"
		}
		fmt.Printf("%s %s: %s\n", glyph, c.CheckName, upper(c.Status))
		fmt.Printf("   %s\n", c.Details)
		if c.Expected != nil && c.Actual != nil {
			fmt.Printf("   Expected: %v\n", c.Expected)
			fmt.Printf("   Actual: %v\n", c.Actual)
		}
		fmt.Println()
	}
}

func upper(s check.Status) string {
	return strings.ToUpper(s.String())
}
