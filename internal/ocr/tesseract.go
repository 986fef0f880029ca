package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements Engine over the gosseract client. A fresh client is
// created per recognition, since gosseract clients are not safe for
// concurrent use.
type Tesseract struct {
	clientFactory func() *gosseract.Client
}

// NewTesseract constructs a Tesseract-backed engine.
func NewTesseract() *Tesseract {
	return &Tesseract{clientFactory: gosseract.NewClient}
}

// Name returns the engine name.
func (t *Tesseract) Name() string { return "tesseract" }

// Recognize performs OCR on a single image.
func (t *Tesseract) Recognize(ctx context.Context, in Input) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	c := t.clientFactory()
	defer func() { _ = c.Close() }()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	// Notices are full pages with mixed headings and tables; automatic
	// page segmentation reads them better than the single-block default.
	if err := c.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return Result{}, fmt.Errorf("set page seg mode: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognize text: %w", err)
	}

	return Result{Text: strings.TrimSpace(text)}, nil
}
