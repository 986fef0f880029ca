package scrape

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/koreg/sanctia/internal/model"
	"golang.org/x/net/html"
)

// Adapter knows one agency's notice board: where its list pages live and
// how to read rows out of them. The boards differ only in URL shapes and
// markup details, so adapters stay thin and repetitive.
type Adapter interface {
	// Name returns the adapter name.
	Name() string

	// Agency returns the agency this adapter crawls.
	Agency() model.Agency

	// ListURL returns the absolute URL of the given 1-based list page.
	ListURL(page int) string

	// ParseList extracts notice rows from a parsed list page.
	ParseList(doc *html.Node, baseURL string) ([]model.Notice, error)
}

// Registry holds the known agency adapters.
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates a registry with all built-in adapters.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewFSSAdapter())
	r.Register(NewBOKAdapter())
	r.Register(NewKOFIAAdapter())
	r.Register(NewKRXAdapter())
	return r
}

// Register registers a new adapter.
func (r *Registry) Register(adapter Adapter) {
	r.adapters = append(r.adapters, adapter)
}

// ByAgency returns the adapter for the given agency.
func (r *Registry) ByAgency(agency model.Agency) (Adapter, error) {
	for _, a := range r.adapters {
		if a.Agency() == agency {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no adapter for agency %q", agency)
}

// All returns every registered adapter in registration order.
func (r *Registry) All() []Adapter {
	return r.adapters
}

// BaseAdapter provides the node-walking helpers shared by all adapters.
type BaseAdapter struct{}

// FindAll returns all descendant elements with the given tag.
func (b *BaseAdapter) FindAll(n *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			nodes = append(nodes, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return nodes
}

// Attr returns the value of the named attribute, or "".
func (b *BaseAdapter) Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// Text returns the node's text content with collapsed whitespace.
func (b *BaseAdapter) Text(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
			buf.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

// ResolveURL resolves href against the page URL.
func (b *BaseAdapter) ResolveURL(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// DeriveID extracts a stable notice ID from a detail URL: the first of the
// named query parameters that is present, else a short hash of the URL for
// rows the board exposes without an identifier.
func (b *BaseAdapter) DeriveID(detailURL string, params ...string) string {
	if u, err := url.Parse(detailURL); err == nil {
		q := u.Query()
		for _, p := range params {
			if v := q.Get(p); v != "" {
				return v
			}
		}
	}
	hash := sha256.Sum256([]byte(detailURL))
	return hex.EncodeToString(hash[:])[:12]
}

var rowDateRe = regexp.MustCompile(`(\d{4})\s*[.\-/]\s*(\d{1,2})\s*[.\-/]\s*(\d{1,2})`)

// RowDate finds the first date-looking cell text in a row and normalizes it
// to YYYY-MM-DD. Returns "" when the row carries no date.
func (b *BaseAdapter) RowDate(row *html.Node) string {
	for _, cell := range b.FindAll(row, "td") {
		if m := rowDateRe.FindStringSubmatch(b.Text(cell)); m != nil {
			return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3]))
		}
	}
	return ""
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
