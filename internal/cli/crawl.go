package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/koreg/sanctia/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	crawlPages     int
	crawlWorkers   int
	crawlTimeout   time.Duration
	crawlUA        string
	crawlDataDir   string
	crawlOverrides string
	crawlNoCache   bool
	crawlNoRobots  bool
	crawlNoOCR     bool
	crawlInsecure  bool
)

// crawlCmd represents the crawl command
var crawlCmd = &cobra.Command{
	Use:   "crawl [agency]",
	Short: "Crawl agency boards and extract new sanction notices",
	Long: `Crawl lists the sanction notice boards of one agency (or all four),
downloads the PDF attachments of notices not seen before, extracts
their text (native first, OCR for scanned documents), runs the
extraction patterns, and appends the results to the document store.

Previously collected notices are skipped; re-running is cheap.

Example:
  sanctia crawl
  sanctia crawl fss --pages 5
  sanctia crawl bok --no-ocr --no-cache`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)

	crawlCmd.Flags().IntVar(&crawlPages, "pages", 0, "list pages per agency (0 = config default)")
	crawlCmd.Flags().IntVar(&crawlWorkers, "workers", 0, "concurrent notice workers (0 = config default)")
	crawlCmd.Flags().DurationVar(&crawlTimeout, "timeout", 15*time.Minute, "overall crawl timeout")
	crawlCmd.Flags().StringVar(&crawlUA, "ua", "", "HTTP User-Agent override")
	crawlCmd.Flags().StringVar(&crawlDataDir, "data-dir", "", "document store directory")
	crawlCmd.Flags().StringVar(&crawlOverrides, "overrides", "", "known-issue override table (YAML)")
	crawlCmd.Flags().BoolVar(&crawlNoCache, "no-cache", false, "disable the HTTP cache (force fresh fetches)")
	crawlCmd.Flags().BoolVar(&crawlNoRobots, "no-robots", false, "skip robots.txt checks")
	crawlCmd.Flags().BoolVar(&crawlNoOCR, "no-ocr", false, "disable the OCR fallback for scanned PDFs")
	crawlCmd.Flags().BoolVar(&crawlInsecure, "insecure", false, "skip TLS certificate verification")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	agencies, err := resolveAgencies(args)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	if crawlPages > 0 {
		cfg.Crawl.Pages = crawlPages
	}
	if crawlWorkers > 0 {
		cfg.Crawl.Workers = crawlWorkers
	}
	if crawlUA != "" {
		cfg.HTTP.UserAgent = crawlUA
	}
	if crawlDataDir != "" {
		cfg.Output.DataDir = crawlDataDir
	}
	if crawlOverrides != "" {
		cfg.Extract.OverridesPath = crawlOverrides
	}
	if crawlNoCache {
		cfg.Cache.Enabled = false
	}
	if crawlNoRobots {
		cfg.Crawl.RespectRobots = false
	}
	if crawlNoOCR {
		cfg.OCR.Enabled = false
	}
	if crawlInsecure {
		cfg.HTTP.InsecureTLS = true
	}

	crawler, err := pipeline.NewCrawler(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), crawlTimeout)
	defer cancel()

	failures := 0
	for _, agency := range agencies {
		if verbose {
			fmt.Fprintf(os.Stderr, "Crawling %s (%d pages)...\n", agency, cfg.Crawl.Pages)
		}

		result, err := crawler.Crawl(ctx, agency)
		if err != nil {
			// One broken board should not stop the rest of the run.
			fmt.Fprintf(os.Stderr, "Error: crawl %s: %v\n", agency, err)
			failures++
			continue
		}

		fmt.Printf("%-6s listed %3d  new %3d  downloaded %3d  extracted %3d  failures %d\n",
			result.Agency, result.Listed, result.New, result.Downloaded,
			result.Extracted, result.Failures)
		failures += result.Failures
	}

	if failures > 0 {
		return fmt.Errorf("crawl finished with %d failure(s)", failures)
	}
	return nil
}
