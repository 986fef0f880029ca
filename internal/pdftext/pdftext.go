// Package pdftext extracts the text body from a downloaded notice
// attachment. Native PDF text is preferred; when a PDF turns out to be a
// scan (native extraction yields too little Hangul), recognition falls back
// to OCR and the document is flagged so the extraction core knows to run
// its noise normalizer.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/koreg/sanctia/internal/model"
	"github.com/koreg/sanctia/internal/ocr"
	"github.com/ledongthuc/pdf"
)

// Method records how an attachment's text was obtained.
type Method string

const (
	MethodNative Method = "native"
	MethodOCR    Method = "ocr"
	MethodNone   Method = "none"
)

// Extractor reads attachment text with an OCR fallback. A nil engine
// disables the fallback: scanned PDFs then produce an empty body, which
// surfaces as a quality gap downstream.
type Extractor struct {
	engine     ocr.Engine
	rasterizer *ocr.Rasterizer
	languages  []string
	minHangul  int
}

// NewExtractor creates an extractor from the OCR configuration. Pass a nil
// engine to disable the fallback regardless of cfg.Enabled.
func NewExtractor(cfg model.OCRConfig, engine ocr.Engine) *Extractor {
	if !cfg.Enabled {
		engine = nil
	}
	minHangul := cfg.MinHangul
	if minHangul <= 0 {
		minHangul = 40
	}
	return &Extractor{
		engine:     engine,
		rasterizer: ocr.NewRasterizer(cfg.PopplerPath, cfg.DPI),
		languages:  cfg.Languages,
		minHangul:  minHangul,
	}
}

// Extract returns the text of the PDF at path and the method that produced
// it. A scanned PDF without an OCR engine yields ("", MethodNone, nil):
// an empty body is a data-quality outcome, not an error.
func (e *Extractor) Extract(ctx context.Context, path string) (string, Method, error) {
	text, err := nativeText(path)
	if err != nil {
		return "", MethodNone, fmt.Errorf("native text: %w", err)
	}

	if !needsOCR(text, e.minHangul) {
		return text, MethodNative, nil
	}

	if e.engine == nil {
		return "", MethodNone, nil
	}

	recognized, err := ocr.RecognizePDF(ctx, e.engine, e.rasterizer, path, e.languages)
	if err != nil {
		return "", MethodNone, fmt.Errorf("ocr fallback: %w", err)
	}
	return recognized, MethodOCR, nil
}

// nativeText extracts the embedded text layer of a PDF.
func nativeText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	rd, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read text layer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return "", fmt.Errorf("read text layer: %w", err)
	}
	return buf.String(), nil
}

// needsOCR reports whether the native text layer is too thin to be the real
// body. Scanned notices either have no text layer at all or only a few
// stray Latin characters from the board's watermark.
func needsOCR(text string, minHangul int) bool {
	return countHangul(text) < minHangul
}

// countHangul counts precomposed Hangul syllables in text.
func countHangul(text string) int {
	n := 0
	for _, r := range text {
		if r >= 0xAC00 && r <= 0xD7A3 {
			n++
		}
	}
	return n
}

// Exists reports whether the attachment file is present on disk.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
