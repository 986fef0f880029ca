package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/koreg/sanctia/internal/llm"
	"github.com/koreg/sanctia/internal/pipeline"
	"github.com/koreg/sanctia/internal/quality"
	"github.com/spf13/cobra"
)

var (
	reportDataDir  string
	reportCSV      string
	reportJSON     string
	reportLLM      bool
	reportProvider string
	reportModel    string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the review CSV and extraction quality report",
	Long: `Report reads every stored document and writes two outputs:

- a flat CSV review sheet (UTF-8 with BOM, Excel-friendly)
- a quality report (JSON) with per-agency extraction gap counts

With --llm, a short natural-language digest of the gap statistics is
added to the quality report. Only aggregate counts are sent to the
provider, never document text.

Example:
  sanctia report
  sanctia report --csv out/sanctions.csv --json out/quality.json
  sanctia report --llm --llm-provider ollama`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportDataDir, "data-dir", "", "document store directory")
	reportCmd.Flags().StringVar(&reportCSV, "csv", "", "CSV output path (default from config)")
	reportCmd.Flags().StringVar(&reportJSON, "json", "data/quality.json", "quality report JSON path")

	reportCmd.Flags().BoolVar(&reportLLM, "llm", false, "add an LLM digest to the quality report")
	reportCmd.Flags().StringVar(&reportProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	reportCmd.Flags().StringVar(&reportModel, "llm-model", "", "LLM model name (empty = provider default)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if reportDataDir != "" {
		cfg.Output.DataDir = reportDataDir
	}
	if reportCSV != "" {
		cfg.Output.CSVPath = reportCSV
	}

	docs, err := pipeline.NewStore(cfg.Output.DataDir).LoadAll()
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("document store %s is empty; run 'sanctia crawl' first", cfg.Output.DataDir)
	}

	report := quality.Assess(docs)

	if reportLLM {
		cfg.LLM.Provider = reportProvider
		cfg.LLM.Model = reportModel

		switch reportProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}

		digester, err := llm.NewDigester(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return fmt.Errorf("llm setup: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := digester.Annotate(ctx, report); err != nil {
			// The digest is decoration; the report still stands without it.
			fmt.Fprintf(os.Stderr, "warning: llm digest: %v\n", err)
		}
	}

	if err := pipeline.RenderCSV(docs, cfg.Output.CSVPath); err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	if err := pipeline.RenderReportJSON(report, reportJSON); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	quality.RenderSummary(os.Stdout, report)
	fmt.Printf("\nCSV:    %s\nReport: %s\n", cfg.Output.CSVPath, reportJSON)
	return nil
}
