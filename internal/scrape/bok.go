package scrape

import (
	"fmt"
	"strings"

	"github.com/koreg/sanctia/internal/model"
	"golang.org/x/net/html"
)

// BOKAdapter crawls the 한국은행 제재·검사결과 board.
type BOKAdapter struct {
	BaseAdapter
}

// NewBOKAdapter creates the BOK adapter.
func NewBOKAdapter() *BOKAdapter {
	return &BOKAdapter{}
}

// Name returns the adapter name.
func (a *BOKAdapter) Name() string { return "bok" }

// Agency returns the agency code.
func (a *BOKAdapter) Agency() model.Agency { return model.AgencyBOK }

// ListURL returns the list page URL.
func (a *BOKAdapter) ListURL(page int) string {
	return fmt.Sprintf("https://www.bok.or.kr/portal/bbs/B0000245/list.do?menuNo=200727&pageIndex=%d", page)
}

// ParseList reads notice rows from a list page.
func (a *BOKAdapter) ParseList(doc *html.Node, baseURL string) ([]model.Notice, error) {
	var notices []model.Notice

	for _, row := range a.FindAll(doc, "tr") {
		links := a.FindAll(row, "a")
		if len(links) == 0 {
			continue
		}

		n := model.Notice{Agency: model.AgencyBOK}
		for _, link := range links {
			href := a.Attr(link, "href")
			if href == "" || strings.HasPrefix(href, "javascript") {
				continue
			}
			abs := a.ResolveURL(baseURL, href)
			switch {
			case strings.Contains(href, "fileDown") || strings.Contains(href, "atchFileId"):
				n.Attachments = append(n.Attachments, model.Attachment{
					Name: a.Text(link),
					URL:  abs,
				})
			case n.DetailURL == "" && strings.Contains(href, "view.do"):
				n.DetailURL = abs
				n.Title = a.Text(link)
			}
		}

		if n.DetailURL == "" {
			continue
		}
		n.ID = a.DeriveID(n.DetailURL, "nttId")
		n.PostedAt = a.RowDate(row)
		notices = append(notices, n)
	}

	return notices, nil
}
