package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Rasterizer converts PDF pages into PNG images by shelling out to
// poppler's pdftoppm.
type Rasterizer struct {
	PdftoppmPath string // Binary path; empty means $PATH lookup
	DPI          int
}

// NewRasterizer creates a rasterizer. A zero dpi falls back to 300, the
// resolution Tesseract handles Korean scans best at.
func NewRasterizer(pdftoppmPath string, dpi int) *Rasterizer {
	if dpi <= 0 {
		dpi = 300
	}
	return &Rasterizer{PdftoppmPath: pdftoppmPath, DPI: dpi}
}

// Pages renders every page of the PDF at path and returns the encoded PNG
// bytes in page order.
func (r *Rasterizer) Pages(ctx context.Context, path string) ([][]byte, error) {
	bin := r.PdftoppmPath
	if bin == "" {
		bin = "pdftoppm"
	}

	tmpDir, err := os.MkdirTemp("", "sanctia-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, bin, "-png", "-r", strconv.Itoa(r.DPI), path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(out)))
	}

	entries, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(entries)

	pages := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		data, err := os.ReadFile(entry)
		if err != nil {
			return nil, fmt.Errorf("read page: %w", err)
		}
		pages = append(pages, data)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", path)
	}
	return pages, nil
}

// RecognizePDF rasterizes the PDF and recognizes each page, joining the
// page texts with blank lines.
func RecognizePDF(ctx context.Context, eng Engine, r *Rasterizer, path string, langs []string) (string, error) {
	pages, err := r.Pages(ctx, path)
	if err != nil {
		return "", fmt.Errorf("rasterize: %w", err)
	}

	var texts []string
	for i, img := range pages {
		res, err := eng.Recognize(ctx, Input{Image: img, Languages: langs, DPI: r.DPI})
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		if res.Text != "" {
			texts = append(texts, res.Text)
		}
	}

	return strings.Join(texts, "\n\n"), nil
}
