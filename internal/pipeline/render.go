package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/koreg/sanctia/internal/model"
)

// utf8BOM makes Excel open the CSV as UTF-8; without it Korean cells come
// up as mojibake on Windows.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"agency", "id", "institution", "sanction_date", "sanction_target",
	"sanction_content", "incident_count", "first_incident_title",
	"missing_fields", "source_url",
}

// RenderCSV writes the flat review sheet for all documents.
func RenderCSV(docs []model.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, doc := range docs {
		firstTitle := ""
		if len(doc.Incidents) > 0 {
			firstTitle = doc.Incidents[0].Title
		}
		record := []string{
			string(doc.Agency),
			doc.ID,
			doc.Institution,
			doc.SanctionDate,
			doc.SanctionTarget,
			doc.SanctionContent,
			strconv.Itoa(len(doc.Incidents)),
			firstTitle,
			strings.Join(doc.MissingFields, "|"),
			doc.SourceURL,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record %s: %w", doc.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// RenderReportJSON writes the quality report as indented JSON.
func RenderReportJSON(report *model.QualityReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
