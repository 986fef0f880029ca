package llm

import (
	"context"
	"fmt"

	"github.com/koreg/sanctia/internal/model"
)

// Digester wraps a provider and attaches the generated digest to a quality
// report. A nil Digester (or one whose provider failed to initialize) is a
// no-op.
type Digester struct {
	provider Provider
	config   Config
}

// NewDigester creates a digester from configuration. Returns (nil, nil)
// when no provider is configured.
func NewDigester(config Config) (*Digester, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return &Digester{provider: provider, config: config}, nil
}

// Provider returns the underlying provider name.
func (d *Digester) Provider() string {
	return d.provider.Name()
}

// Annotate generates the digest and stores it on the report. The report's
// numbers are never modified.
func (d *Digester) Annotate(ctx context.Context, report *model.QualityReport) error {
	if d == nil {
		return nil
	}
	resp, err := d.provider.Digest(ctx, DigestRequest{
		Report:    *report,
		Model:     d.config.Model,
		MaxTokens: d.config.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("generate digest: %w", err)
	}
	report.LLMDigest = resp.Digest
	return nil
}
