// Package llm generates an optional natural-language digest of a quality
// report. The digest is informational only: it is built strictly from
// aggregated counts, never from document text, and a digest failure never
// affects the report it describes.
package llm

import (
	"context"
	"fmt"

	"github.com/koreg/sanctia/internal/model"
)

// Provider is one LLM backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Digest generates a short prose digest of the quality report.
	Digest(ctx context.Context, req DigestRequest) (*DigestResponse, error)

	// IsAvailable checks if the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// DigestRequest is the input for digest generation.
type DigestRequest struct {
	// Report holds the aggregated numbers the digest describes. Document
	// bodies never reach the model.
	Report model.QualityReport

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model is the provider-specific model name.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// DigestResponse is the generated digest.
type DigestResponse struct {
	Digest     string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", or "" for disabled.
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for hosted providers.
	APIKey string

	// BaseURL for custom endpoints (e.g. Ollama).
	BaseURL string

	// Timeout in seconds for API requests.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// DefaultConfig returns sensible defaults with the digest disabled.
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		MaxTokens: 500,
	}
}

// BuildPrompt constructs the default digest prompt from the report's
// aggregated counts.
func BuildPrompt(report model.QualityReport) string {
	prompt := fmt.Sprintf(`You are summarizing extraction-quality statistics for a batch of Korean financial-regulator sanction notices. Describe data quality only; do not speculate about the sanctions themselves.

Batch:
- Documents: %d
- Incidents segmented: %d
- Documents from OCR: %d
- Manual overrides applied: %d
- Missing sanction content: %d
- Documents with no segmented incident: %d
- Documents with an empty incident body: %d

Per agency:
`, report.Documents, report.Incidents, report.OCRApplied, report.Overridden,
		report.Missing.SanctionContent, report.Missing.IncidentTitle, report.Missing.IncidentBody)

	for _, agency := range model.Agencies() {
		stats, ok := report.ByAgency[agency]
		if !ok {
			continue
		}
		prompt += fmt.Sprintf("- %s: %d documents, %d incidents, %d from OCR, %d missing sanction content\n",
			agency, stats.Documents, stats.Incidents, stats.OCRApplied, stats.Missing.SanctionContent)
	}

	prompt += "\nWrite a 3-4 sentence digest: overall extraction health, where the gaps concentrate, and whether OCR-derived documents fare worse."
	return prompt
}
