package model

import "time"

// QualityReport aggregates extraction gaps over a batch of documents.
// Gaps are data-quality statistics for downstream review, never failures:
// a document with missing fields still counts as processed.
type QualityReport struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Documents   int                    `json:"documents"`
	Incidents   int                    `json:"incidents"`
	OCRApplied  int                    `json:"ocr_applied"` // Documents whose body came from OCR
	Overridden  int                    `json:"overridden"`  // Documents patched by the override table
	Missing     MissingCounts          `json:"missing"`     // Batch-wide gap counts
	ByAgency    map[Agency]AgencyStats `json:"by_agency"`   // Per-agency breakdown
	Flagged     []FlaggedDocument      `json:"flagged,omitempty"`

	LLMDigest string `json:"llm_digest,omitempty"` // Optional model-written digest; informational only
}

// MissingCounts tallies how many documents ended extraction with each gap.
type MissingCounts struct {
	SanctionContent int `json:"sanction_content"` // SanctionContent stayed at the placeholder
	IncidentTitle   int `json:"title"`            // No incident could be segmented
	IncidentBody    int `json:"body"`             // At least one incident has an empty body
}

// AgencyStats is the per-agency slice of the batch.
type AgencyStats struct {
	Documents  int           `json:"documents"`
	Incidents  int           `json:"incidents"`
	OCRApplied int           `json:"ocr_applied"`
	Overridden int           `json:"overridden"`
	Missing    MissingCounts `json:"missing"`
}

// FlaggedDocument points a reviewer at one document with extraction gaps.
type FlaggedDocument struct {
	Agency        Agency   `json:"agency"`
	ID            string   `json:"id"`
	Title         string   `json:"title,omitempty"`
	MissingFields []string `json:"missing_fields"`
	OCRApplied    bool     `json:"ocr_applied,omitempty"`
}

// CrawlResult summarizes one agency crawl for console reporting.
type CrawlResult struct {
	Agency     Agency `json:"agency"`
	Listed     int    `json:"listed"`     // Notices seen on list pages
	New        int    `json:"new"`        // Notices not yet in the store
	Downloaded int    `json:"downloaded"` // Attachments fetched
	Extracted  int    `json:"extracted"`  // Documents run through extraction
	Failures   int    `json:"failures"`   // Notices that errored (logged, not fatal)
}
