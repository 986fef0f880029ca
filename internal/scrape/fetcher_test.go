package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/koreg/sanctia/internal/model"
	"golang.org/x/text/encoding/korean"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = t.TempDir()
	cfg.Crawl.RespectRobots = false
	cfg.Crawl.RequestsPerSecond = 1000
	cfg.Crawl.BurstSize = 100
	return cfg
}

func TestFetcher_FetchPage_EUCKR(t *testing.T) {
	// Several of the boards still serve EUC-KR; the fetcher must hand the
	// adapters UTF-8.
	page := "<html><body>기관 제재내용 공개</body></html>"
	encoded, err := korean.EUCKR.NewEncoder().String(page)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=euc-kr")
		_, _ = w.Write([]byte(encoded))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(t))
	got, err := f.FetchPage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if !strings.Contains(got, "기관 제재내용 공개") {
		t.Errorf("page not decoded to UTF-8: %q", got)
	}
}

func TestFetcher_FetchPage_Cached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>목록</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(t))
	ctx := context.Background()

	first, err := f.FetchPage(ctx, srv.URL)
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	second, err := f.FetchPage(ctx, srv.URL)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	if first != second {
		t.Error("cached page differs from fetched page")
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected 1 server hit, got %d", got)
	}
}

func TestFetcher_FetchPage_NoCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	f := NewFetcher(cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.FetchPage(ctx, srv.URL); err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("expected 2 server hits with cache disabled, got %d", got)
	}
}

func TestFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(t))
	if _, err := f.FetchPage(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetcher_FetchBytes(t *testing.T) {
	payload := []byte("%PDF-1.4 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(t))
	got, err := f.FetchBytes(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchBytes failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload altered: %q", got)
	}
}
