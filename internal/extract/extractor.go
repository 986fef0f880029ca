package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/koreg/sanctia/internal/model"
)

// Extractor runs the extraction pipeline over one document at a time. It is
// stateless across documents; every dependency is explicit configuration so
// results are reproducible.
type Extractor struct {
	normalizer *Normalizer
	segmenter  *Segmenter
	overrides  Overrides
	logW       io.Writer
}

// NewExtractor creates an extractor with the given override table. A nil
// table disables overrides.
func NewExtractor(overrides Overrides) *Extractor {
	return &Extractor{
		normalizer: NewNormalizer(nil),
		segmenter:  NewSegmenter(),
		overrides:  overrides,
		logW:       os.Stderr,
	}
}

// Process attaches the derived fields to doc: institution, sanction date,
// sanction target/content, the incident list, and the missing-field
// markers. Source fields are never mutated. No-match conditions produce
// placeholders or empty lists, never errors: a single unparsable document
// must not halt a batch.
func (e *Extractor) Process(doc *model.Document) {
	body := doc.Body
	if doc.OCRApplied {
		body = e.normalizer.Normalize(body)
	}

	if strings.TrimSpace(body) == "" {
		doc.SanctionTarget = model.Placeholder
		doc.SanctionContent = model.Placeholder
		doc.Incidents = nil
	} else {
		if doc.Institution == "" {
			doc.Institution = ExtractInstitution(doc.Title, body)
		}
		if doc.SanctionDate == "" {
			doc.SanctionDate = ExtractSanctionDate(body)
		}

		facts := Locate(body, FactsHeadings, BoundaryHeadings)
		doc.Incidents = e.segmenter.Segment(facts.Extract(body))

		doc.SanctionTarget, doc.SanctionContent = ExtractSanction(body)
	}

	if ov, ok := e.overrides[doc.ID]; ok {
		doc.SanctionTarget = ov.Target
		doc.SanctionContent = ov.Sanction
		doc.OverrideApplied = true
		fmt.Fprintf(e.logW, "override applied: %s/%s target=%q sanction=%q\n",
			doc.Agency, doc.ID, ov.Target, ov.Sanction)
	}

	doc.MissingFields = missingFields(doc)
}

// missingFields lists the extraction gaps left on doc. Gaps feed quality
// reporting and are never treated as failures.
func missingFields(doc *model.Document) []string {
	var missing []string
	if doc.SanctionContent == "" || doc.SanctionContent == model.Placeholder {
		missing = append(missing, model.MissingSanctionContent)
	}
	if len(doc.Incidents) == 0 {
		missing = append(missing, model.MissingIncidentTitle)
	}
	for _, inc := range doc.Incidents {
		if inc.Body == "" {
			missing = append(missing, model.MissingIncidentBody)
			break
		}
	}
	return missing
}
