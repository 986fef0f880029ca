package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/koreg/sanctia/internal/extract"
	"github.com/koreg/sanctia/internal/model"
	"github.com/koreg/sanctia/internal/ocr"
	"github.com/koreg/sanctia/internal/pdftext"
	"github.com/koreg/sanctia/internal/scrape"
	"github.com/koreg/sanctia/internal/worker"
)

// Crawler orchestrates one agency crawl: list pages, new-notice detection,
// attachment download, text extraction, and the extraction core. Notices
// fail individually; a failed notice never halts the crawl.
type Crawler struct {
	cfg        *model.Config
	fetcher    *scrape.Fetcher
	registry   *scrape.Registry
	downloader *scrape.Downloader
	pdftext    *pdftext.Extractor
	extractor  *extract.Extractor
	store      *Store
	logW       io.Writer
}

// NewCrawler creates a crawler from configuration.
func NewCrawler(cfg *model.Config) (*Crawler, error) {
	overrides, err := extract.LoadOverrides(cfg.Extract.OverridesPath)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}

	var engine ocr.Engine
	if cfg.OCR.Enabled {
		engine = ocr.NewTesseract()
	}

	fetcher := scrape.NewFetcher(cfg)
	return &Crawler{
		cfg:        cfg,
		fetcher:    fetcher,
		registry:   scrape.NewRegistry(),
		downloader: scrape.NewDownloader(fetcher, cfg.Output.DataDir, cfg.Crawl.Workers, cfg.Crawl.DownloadRetries),
		pdftext:    pdftext.NewExtractor(cfg.OCR, engine),
		extractor:  extract.NewExtractor(overrides),
		store:      NewStore(cfg.Output.DataDir),
		logW:       os.Stderr,
	}, nil
}

// Store exposes the document store for the extract and report commands.
func (c *Crawler) Store() *Store {
	return c.store
}

// Crawl lists the configured number of pages for one agency, processes the
// notices not yet in the store, and saves the merged result.
func (c *Crawler) Crawl(ctx context.Context, agency model.Agency) (*model.CrawlResult, error) {
	adapter, err := c.registry.ByAgency(agency)
	if err != nil {
		return nil, err
	}

	existing, err := c.store.Load(agency)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, doc := range existing {
		known[doc.ID] = true
	}

	result := &model.CrawlResult{Agency: agency}
	var newNotices []model.Notice
	for page := 1; page <= c.cfg.Crawl.Pages; page++ {
		listURL := adapter.ListURL(page)
		doc, err := c.fetcher.FetchParsed(ctx, listURL)
		if err != nil {
			// The remaining pages are behind the same host; give up
			// on the listing rather than hammering it.
			fmt.Fprintf(c.logW, "warning: list page %d for %s: %v\n", page, agency, err)
			break
		}

		notices, err := adapter.ParseList(doc, listURL)
		if err != nil {
			return nil, fmt.Errorf("parse list page %d: %w", page, err)
		}
		if len(notices) == 0 {
			break // past the last page
		}

		result.Listed += len(notices)
		for _, n := range notices {
			if !known[n.ID] {
				known[n.ID] = true
				newNotices = append(newNotices, n)
			}
		}
	}
	result.New = len(newNotices)

	if len(newNotices) == 0 {
		return result, nil
	}

	batch := worker.NewBatchProcessor(c, c.cfg.Crawl.Workers)
	for _, r := range batch.ProcessNotices(ctx, newNotices) {
		if r.Err != nil {
			result.Failures++
			fmt.Fprintf(c.logW, "warning: notice %s/%s: %v\n", agency, r.Notice.ID, r.Err)
			continue
		}
		result.Extracted++
		for _, att := range r.Doc.Attachments {
			if att.Path != "" {
				result.Downloaded++
			}
		}
		existing = append(existing, *r.Doc)
	}

	if err := c.store.Save(agency, existing); err != nil {
		return nil, err
	}
	return result, nil
}

// ProcessNotice turns one notice into a stored document. It implements
// worker.NoticeProcessor.
func (c *Crawler) ProcessNotice(ctx context.Context, n model.Notice) (*model.Document, error) {
	if _, err := c.downloader.Download(ctx, &n); err != nil {
		return nil, err
	}

	doc := &model.Document{
		Agency:      n.Agency,
		ID:          n.ID,
		Title:       n.Title,
		PostedAt:    n.PostedAt,
		SourceURL:   n.DetailURL,
		Attachments: n.Attachments,
		CrawledAt:   time.Now().UTC(),
	}

	for _, att := range n.Attachments {
		if !pdftext.Exists(att.Path) {
			continue
		}
		text, method, err := c.pdftext.Extract(ctx, att.Path)
		if err != nil {
			fmt.Fprintf(c.logW, "warning: attachment %s: %v\n", att.Path, err)
			continue
		}
		if text != "" {
			doc.Body = text
			doc.OCRApplied = method == pdftext.MethodOCR
			break
		}
	}

	c.extractor.Process(doc)
	return doc, nil
}

// Reextract re-runs the extraction core over an agency's stored documents
// without touching the network, then saves them back. Derived fields are
// cleared first so pattern fixes take effect on old documents.
func (c *Crawler) Reextract(agency model.Agency) (int, error) {
	docs, err := c.store.Load(agency)
	if err != nil {
		return 0, err
	}

	for i := range docs {
		doc := &docs[i]
		doc.Institution = ""
		doc.SanctionDate = ""
		doc.SanctionTarget = ""
		doc.SanctionContent = ""
		doc.Incidents = nil
		doc.MissingFields = nil
		doc.OverrideApplied = false
		c.extractor.Process(doc)
	}

	if len(docs) > 0 {
		if err := c.store.Save(agency, docs); err != nil {
			return 0, err
		}
	}
	return len(docs), nil
}
