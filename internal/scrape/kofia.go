package scrape

import (
	"fmt"
	"strings"

	"github.com/koreg/sanctia/internal/model"
	"golang.org/x/net/html"
)

// KOFIAAdapter crawls the 금융투자협회 제재공표 board.
type KOFIAAdapter struct {
	BaseAdapter
}

// NewKOFIAAdapter creates the KOFIA adapter.
func NewKOFIAAdapter() *KOFIAAdapter {
	return &KOFIAAdapter{}
}

// Name returns the adapter name.
func (a *KOFIAAdapter) Name() string { return "kofia" }

// Agency returns the agency code.
func (a *KOFIAAdapter) Agency() model.Agency { return model.AgencyKOFIA }

// ListURL returns the list page URL.
func (a *KOFIAAdapter) ListURL(page int) string {
	return fmt.Sprintf("https://www.kofia.or.kr/brd/m_53/list.do?page=%d", page)
}

// ParseList reads notice rows from a list page.
func (a *KOFIAAdapter) ParseList(doc *html.Node, baseURL string) ([]model.Notice, error) {
	var notices []model.Notice

	for _, row := range a.FindAll(doc, "tr") {
		links := a.FindAll(row, "a")
		if len(links) == 0 {
			continue
		}

		n := model.Notice{Agency: model.AgencyKOFIA}
		for _, link := range links {
			href := a.Attr(link, "href")
			if href == "" || strings.HasPrefix(href, "javascript") {
				continue
			}
			abs := a.ResolveURL(baseURL, href)
			switch {
			case strings.Contains(href, "download.do") || strings.Contains(href, "file_down"):
				n.Attachments = append(n.Attachments, model.Attachment{
					Name: a.Text(link),
					URL:  abs,
				})
			case n.DetailURL == "":
				n.DetailURL = abs
				n.Title = a.Text(link)
			}
		}

		if n.DetailURL == "" {
			continue
		}
		n.ID = a.DeriveID(n.DetailURL, "seq", "num")
		n.PostedAt = a.RowDate(row)
		notices = append(notices, n)
	}

	return notices, nil
}
