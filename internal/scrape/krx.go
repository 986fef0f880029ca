package scrape

import (
	"fmt"
	"strings"

	"github.com/koreg/sanctia/internal/model"
	"golang.org/x/net/html"
)

// KRXAdapter crawls the 한국거래소 시장감시위원회 조치 board. Only the
// plain-HTML listing is handled; the script-driven market-data views are
// out of scope.
type KRXAdapter struct {
	BaseAdapter
}

// NewKRXAdapter creates the KRX adapter.
func NewKRXAdapter() *KRXAdapter {
	return &KRXAdapter{}
}

// Name returns the adapter name.
func (a *KRXAdapter) Name() string { return "krx" }

// Agency returns the agency code.
func (a *KRXAdapter) Agency() model.Agency { return model.AgencyKRX }

// ListURL returns the list page URL.
func (a *KRXAdapter) ListURL(page int) string {
	return fmt.Sprintf("https://open.krx.co.kr/contents/OPN/06/06010100/OPN06010100.jsp?pageIndex=%d", page)
}

// ParseList reads notice rows from a list page.
func (a *KRXAdapter) ParseList(doc *html.Node, baseURL string) ([]model.Notice, error) {
	var notices []model.Notice

	for _, row := range a.FindAll(doc, "tr") {
		links := a.FindAll(row, "a")
		if len(links) == 0 {
			continue
		}

		n := model.Notice{Agency: model.AgencyKRX}
		for _, link := range links {
			href := a.Attr(link, "href")
			if href == "" || strings.HasPrefix(href, "javascript") {
				continue
			}
			abs := a.ResolveURL(baseURL, href)
			switch {
			case strings.Contains(href, "fileDown") || strings.Contains(href, "attach"):
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
		n.ID = a.DeriveID(n.DetailURL, "bbsSeq", "idx")
		n.PostedAt = a.RowDate(row)
		notices = append(notices, n)
	}

	return notices, nil
}
