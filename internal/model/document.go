package model

import (
	"strings"
	"time"
)

// Agency identifies a source regulator whose notice board is crawled.
type Agency string

const (
	AgencyFSS   Agency = "fss"   // 금융감독원 (Financial Supervisory Service)
	AgencyBOK   Agency = "bok"   // 한국은행 (Bank of Korea)
	AgencyKOFIA Agency = "kofia" // 금융투자협회 (Korea Financial Investment Association)
	AgencyKRX   Agency = "krx"   // 한국거래소 시장감시위원회 (KRX Market Oversight Commission)
)

// Agencies lists all supported agencies in crawl order.
func Agencies() []Agency {
	return []Agency{AgencyFSS, AgencyBOK, AgencyKOFIA, AgencyKRX}
}

// Attachment is one downloadable file referenced by a notice.
type Attachment struct {
	Name string `json:"name"`           // Display name from the board (e.g., "제재내용공개안.pdf")
	URL  string `json:"url"`            // Absolute download URL
	Path string `json:"path,omitempty"` // Local path once downloaded
}

// IsPDF reports whether the attachment looks like a PDF. Boards sometimes
// expose download endpoints without an extension in the URL, so the display
// name is checked as well.
func (a Attachment) IsPDF() bool {
	return strings.HasSuffix(strings.ToLower(a.Name), ".pdf") ||
		strings.HasSuffix(strings.ToLower(a.URL), ".pdf")
}

// Notice is one row scraped from an agency notice board, before any
// attachment has been fetched.
type Notice struct {
	Agency      Agency       `json:"agency"`
	ID          string       `json:"id"`                    // Board-assigned identifier (or derived from detail URL)
	Title       string       `json:"title"`                 // Posting title as listed
	PostedAt    string       `json:"posted_at,omitempty"`   // Publication date as listed (YYYY-MM-DD)
	DetailURL   string       `json:"detail_url,omitempty"`  // Absolute detail-page URL
	Attachments []Attachment `json:"attachments,omitempty"` // Files linked from the row or detail page
}

// Document is one collected sanction announcement. The scraper fills the
// source fields; extraction only attaches derived fields and never mutates
// the source fields.
type Document struct {
	Agency       Agency       `json:"agency"`
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	PostedAt     string       `json:"posted_at,omitempty"`
	SourceURL    string       `json:"source_url,omitempty"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	Body         string       `json:"body,omitempty"`        // Attachment text (native PDF text or OCR output)
	OCRApplied   bool         `json:"ocr_applied,omitempty"` // True when Body came from OCR of a scanned PDF
	CrawledAt    time.Time    `json:"crawled_at,omitempty"`

	// Fields derived by the extraction pipeline.
	Institution     string     `json:"institution,omitempty"`      // 제재대상 기관명
	SanctionDate    string     `json:"sanction_date,omitempty"`    // 제재조치일 (YYYY-MM-DD)
	SanctionTarget  string     `json:"sanction_target,omitempty"`  // 기관/임원/직원/임직원 ("-" when not found)
	SanctionContent string     `json:"sanction_content,omitempty"` // Free-text sanction description ("-" when not found)
	Incidents       []Incident `json:"incidents,omitempty"`        // Findings from the 제재대상사실 section
	MissingFields   []string   `json:"missing_fields,omitempty"`   // Quality gaps left after extraction
	OverrideApplied bool       `json:"override_applied,omitempty"` // True when the known-issue table patched this document
}

// Incident is one discrete finding inside a document's facts section.
// Title is never empty on an emitted incident; Body may be empty, which is
// recorded as a quality gap rather than an error.
type Incident struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Missing-field markers attached to a Document after extraction. They feed
// quality reporting and are never treated as failures.
const (
	MissingSanctionContent = "sanction_content"
	MissingIncidentTitle   = "title"
	MissingIncidentBody    = "body"
)

// Placeholder is the value reported for a field the heuristics could not
// locate. "Not found" is an expected outcome, not an error.
const Placeholder = "-"
