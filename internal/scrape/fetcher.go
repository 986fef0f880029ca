package scrape

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/koreg/sanctia/internal/cache"
	"github.com/koreg/sanctia/internal/model"
	"github.com/koreg/sanctia/internal/util"
	"github.com/koreg/sanctia/internal/worker"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves board pages and attachments politely: per-host rate
// limiting, optional robots.txt compliance, and a layered response cache
// for list pages. Board pages are decoded to UTF-8; several of the boards
// still serve EUC-KR.
type Fetcher struct {
	client    *http.Client
	cache     cache.Cache // nil when caching is disabled
	limiter   *worker.Limiter
	robots    *util.RobotsChecker // nil when robots checking is disabled
	userAgent string
	maxBytes  int64
}

// NewFetcher creates a fetcher from configuration.
func NewFetcher(cfg *model.Config) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, ""),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	f := &Fetcher{
		client: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("stopped after 5 redirects")
				}
				return nil
			},
		},
		limiter:   worker.NewLimiter(cfg.Crawl.RequestsPerSecond, cfg.Crawl.BurstSize),
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}
	if cfg.Cache.Enabled {
		f.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	if cfg.Crawl.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	return f
}

// FetchPage retrieves a board page as UTF-8 text, serving from the cache
// when possible.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (string, error) {
	key := cache.CacheKey(rawURL)
	if f.cache != nil {
		if data, found := f.cache.Get(key); found {
			return string(data), nil
		}
	}

	body, contentType, err := f.get(ctx, rawURL)
	if err != nil {
		return "", err
	}

	decoded, err := decodeToUTF8(body, contentType)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", rawURL, err)
	}

	if f.cache != nil {
		_ = f.cache.Set(key, []byte(decoded), 0)
	}
	return decoded, nil
}

// FetchParsed retrieves a board page and parses it into a node tree.
func (f *Fetcher) FetchParsed(ctx context.Context, rawURL string) (*html.Node, error) {
	page, err := f.FetchPage(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	return doc, nil
}

// FetchBytes retrieves an attachment verbatim. Attachments are persisted to
// disk by the downloader, so they bypass the response cache and any charset
// transform.
func (f *Fetcher) FetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	body, _, err := f.get(ctx, rawURL)
	return body, err
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, string, error) {
	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err == nil && !allowed {
			return nil, "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		if err := f.limiter.WaitWithDelay(ctx, rawURL, delay); err != nil {
			return nil, "", fmt.Errorf("rate limit: %w", err)
		}
	} else {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, "", fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// decodeToUTF8 converts a fetched page to UTF-8 using the Content-Type
// header and in-page hints. Already-UTF-8 pages pass through unchanged.
func decodeToUTF8(body []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
