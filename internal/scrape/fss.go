package scrape

import (
	"fmt"
	"strings"

	"github.com/koreg/sanctia/internal/model"
	"golang.org/x/net/html"
)

// FSSAdapter crawls the 금융감독원 검사결과제재 board. Rows carry a detail
// link plus direct file-download links for the published sanction PDF.
type FSSAdapter struct {
	BaseAdapter
}

// NewFSSAdapter creates the FSS adapter.
func NewFSSAdapter() *FSSAdapter {
	return &FSSAdapter{}
}

// Name returns the adapter name.
func (a *FSSAdapter) Name() string { return "fss" }

// Agency returns the agency code.
func (a *FSSAdapter) Agency() model.Agency { return model.AgencyFSS }

// ListURL returns the list page URL.
func (a *FSSAdapter) ListURL(page int) string {
	return fmt.Sprintf("https://www.fss.or.kr/fss/job/openInfo/list.do?menuNo=200476&pageIndex=%d", page)
}

// ParseList reads notice rows from a list page.
func (a *FSSAdapter) ParseList(doc *html.Node, baseURL string) ([]model.Notice, error) {
	var notices []model.Notice

	for _, row := range a.FindAll(doc, "tr") {
		links := a.FindAll(row, "a")
		if len(links) == 0 {
			continue
		}

		n := model.Notice{Agency: model.AgencyFSS}
		for _, link := range links {
			href := a.Attr(link, "href")
			if href == "" || strings.HasPrefix(href, "javascript") {
				continue
			}
			abs := a.ResolveURL(baseURL, href)
			switch {
			case strings.Contains(href, "FileDown") || strings.Contains(href, "download"):
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
		n.ID = a.DeriveID(n.DetailURL, "examMgmtNo", "nttId")
		n.PostedAt = a.RowDate(row)
		notices = append(notices, n)
	}

	return notices, nil
}
