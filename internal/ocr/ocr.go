// Package ocr recognizes text in scanned sanction notices. It wraps the
// Tesseract engine via gosseract and rasterizes PDF pages with poppler's
// pdftoppm, which both need to be installed on the system:
//
//	apt-get install tesseract-ocr tesseract-ocr-kor poppler-utils
//
// The rest of the pipeline treats recognition as a black box producing raw
// text; compensation for its known degradation modes (inserted spaces,
// misread characters) lives in the extract package.
package ocr

import "context"

// Input is one image submitted for recognition.
type Input struct {
	Image     []byte   // Encoded image bytes (PNG, JPEG, TIFF)
	Languages []string // Tesseract language hints, e.g. ["kor", "eng"]
	DPI       int      // Source resolution; 0 leaves the engine default
}

// Result is the recognized text for one input.
type Result struct {
	Text string
}

// Engine is a pluggable OCR backend.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
