package scrape

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/koreg/sanctia/internal/model"
)

// Downloader fetches notice attachments to disk. A shared semaphore bounds
// concurrent downloads across all pool workers so a burst of new notices
// cannot hammer a board.
type Downloader struct {
	fetcher *Fetcher
	dir     string
	sem     chan struct{}
	retries int
}

// NewDownloader creates a downloader storing files under dir.
func NewDownloader(fetcher *Fetcher, dir string, concurrency, retries int) *Downloader {
	if concurrency <= 0 {
		concurrency = 1
	}
	if retries < 0 {
		retries = 0
	}
	return &Downloader{
		fetcher: fetcher,
		dir:     dir,
		sem:     make(chan struct{}, concurrency),
		retries: retries,
	}
}

// Download fetches the notice's PDF attachments and records their local
// paths on the notice. Non-PDF attachments (e.g. .hwp) are recorded but not
// fetched; their documents end up with an empty body, which surfaces as a
// quality gap. Returns the number of files downloaded.
func (d *Downloader) Download(ctx context.Context, n *model.Notice) (int, error) {
	downloaded := 0
	for i := range n.Attachments {
		att := &n.Attachments[i]
		if !att.IsPDF() {
			continue
		}

		path := filepath.Join(d.dir, string(n.Agency), fmt.Sprintf("%s-%d.pdf", n.ID, i))
		if _, err := os.Stat(path); err == nil {
			att.Path = path
			continue
		}

		data, err := d.fetchWithRetry(ctx, att.URL)
		if err != nil {
			return downloaded, fmt.Errorf("download %s: %w", att.URL, err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return downloaded, fmt.Errorf("create download dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return downloaded, fmt.Errorf("write attachment: %w", err)
		}

		att.Path = path
		downloaded++
	}
	return downloaded, nil
}

func (d *Downloader) fetchWithRetry(ctx context.Context, rawURL string) ([]byte, error) {
	select {
	case d.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-d.sem }()

	var lastErr error
	for attempt := 0; attempt <= d.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
		data, err := d.fetcher.FetchBytes(ctx, rawURL)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
