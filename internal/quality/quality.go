// Package quality aggregates extraction gaps over a batch of documents.
// Gaps are statistics for downstream review: a document with missing
// fields still counts as processed, and nothing here is an error.
package quality

import (
	"fmt"
	"io"
	"time"

	"github.com/koreg/sanctia/internal/model"
)

// maxFlagged caps the per-report list of documents pointed out for manual
// review; the counts still cover the whole batch.
const maxFlagged = 50

// Assess builds the quality report for a batch of extracted documents.
func Assess(docs []model.Document) *model.QualityReport {
	report := &model.QualityReport{
		GeneratedAt: time.Now().UTC(),
		Documents:   len(docs),
		ByAgency:    make(map[model.Agency]model.AgencyStats),
	}

	for _, doc := range docs {
		stats := report.ByAgency[doc.Agency]
		stats.Documents++
		stats.Incidents += len(doc.Incidents)
		report.Incidents += len(doc.Incidents)

		if doc.OCRApplied {
			report.OCRApplied++
			stats.OCRApplied++
		}
		if doc.OverrideApplied {
			report.Overridden++
			stats.Overridden++
		}

		for _, f := range doc.MissingFields {
			switch f {
			case model.MissingSanctionContent:
				report.Missing.SanctionContent++
				stats.Missing.SanctionContent++
			case model.MissingIncidentTitle:
				report.Missing.IncidentTitle++
				stats.Missing.IncidentTitle++
			case model.MissingIncidentBody:
				report.Missing.IncidentBody++
				stats.Missing.IncidentBody++
			}
		}

		if len(doc.MissingFields) > 0 && len(report.Flagged) < maxFlagged {
			report.Flagged = append(report.Flagged, model.FlaggedDocument{
				Agency:        doc.Agency,
				ID:            doc.ID,
				Title:         doc.Title,
				MissingFields: doc.MissingFields,
				OCRApplied:    doc.OCRApplied,
			})
		}

		report.ByAgency[doc.Agency] = stats
	}

	return report
}

// RenderSummary writes a human-readable summary of the report.
func RenderSummary(w io.Writer, report *model.QualityReport) {
	fmt.Fprintf(w, "documents: %d, incidents: %d\n", report.Documents, report.Incidents)
	fmt.Fprintf(w, "ocr applied: %d, overrides applied: %d\n", report.OCRApplied, report.Overridden)
	fmt.Fprintf(w, "missing: sanction_content=%d title=%d body=%d\n",
		report.Missing.SanctionContent, report.Missing.IncidentTitle, report.Missing.IncidentBody)
	for _, agency := range model.Agencies() {
		stats, ok := report.ByAgency[agency]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-6s docs=%d incidents=%d ocr=%d missing_content=%d\n",
			agency, stats.Documents, stats.Incidents, stats.OCRApplied, stats.Missing.SanctionContent)
	}
}
