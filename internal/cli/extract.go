package cli

import (
	"fmt"

	"github.com/koreg/sanctia/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	extractDataDir   string
	extractOverrides string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [agency]",
	Short: "Re-run extraction over stored documents",
	Long: `Extract re-runs the extraction patterns over documents already in the
store, without touching the network. Use it after a pattern fix or a
change to the override table to bring old documents up to date.

Example:
  sanctia extract
  sanctia extract fss --overrides overrides.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractDataDir, "data-dir", "", "document store directory")
	extractCmd.Flags().StringVar(&extractOverrides, "overrides", "", "known-issue override table (YAML)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	agencies, err := resolveAgencies(args)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	cfg.OCR.Enabled = false // no documents are fetched or rasterized here
	if extractDataDir != "" {
		cfg.Output.DataDir = extractDataDir
	}
	if extractOverrides != "" {
		cfg.Extract.OverridesPath = extractOverrides
	}

	crawler, err := pipeline.NewCrawler(cfg)
	if err != nil {
		return err
	}

	total := 0
	for _, agency := range agencies {
		count, err := crawler.Reextract(agency)
		if err != nil {
			return fmt.Errorf("re-extract %s: %w", agency, err)
		}
		if count > 0 || verbose {
			fmt.Printf("%-6s re-extracted %d document(s)\n", agency, count)
		}
		total += count
	}

	if total == 0 {
		fmt.Println("Document store is empty; run 'sanctia crawl' first.")
	}
	return nil
}
