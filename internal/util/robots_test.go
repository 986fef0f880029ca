package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRobotsChecker_CanFetch(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		hits++
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\nCrawl-delay: 2\n"))
	}))
	defer srv.Close()

	checker := NewRobotsChecker("sanctia/0.3 (+https://github.com/koreg/sanctia)", 5*time.Second)
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, srv.URL+"/list.do")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("public path should be allowed")
	}
	if delay != 2*time.Second {
		t.Errorf("crawl delay = %v, want 2s", delay)
	}

	allowed, _, err = checker.CanFetch(ctx, srv.URL+"/private/view.do")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if allowed {
		t.Error("disallowed path should be blocked")
	}

	if hits != 1 {
		t.Errorf("robots.txt fetched %d times, want 1 (cached per host)", hits)
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	checker := NewRobotsChecker("sanctia/0.3", 5*time.Second)
	allowed, _, err := checker.CanFetch(context.Background(), srv.URL+"/anything")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("missing robots.txt must allow fetching")
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"sanctia/0.3 (+https://github.com/koreg/sanctia)", "sanctia"},
		{"sanctia", "sanctia"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeUserAgent(tc.in); got != tc.want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
