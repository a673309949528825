package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fiscaldata/nf-extractor/internal/common"
)

// rasterize renders the PDF pages to PNG files at the given resolution and
// returns their paths in page order. The cleanup removes the whole scratch
// directory.
func (e *Extractor) rasterize(ctx context.Context, path string, dpi int) ([]string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "nf-pages-*")
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	if _, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(dpi), "-png", path, prefix); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("pdftoppm: %w: %s", err, firstLine(errb))
	}

	// pdftoppm zero-pads page numbers, so the lexical order is page order.
	pages, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(pages)
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}
	if len(pages) == 0 {
		cleanup()
		return nil, nil, common.NewAppError("OCR_EMPTY", "rasterizer produced no pages", common.ErrOCRFailed)
	}
	return pages, cleanup, nil
}

// RenderPages rasterizes up to maxPages pages and returns the raw PNG bytes,
// for callers that feed page images to a vision model.
func (e *Extractor) RenderPages(ctx context.Context, pdf []byte, dpi, maxPages int) ([][]byte, error) {
	dpi = clampDPI(dpi, e.cfg.DPI)

	path, cleanup, err := tempPDF(pdf)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	pages, rmPages, err := e.rasterize(ctx, path, dpi)
	if err != nil {
		return nil, err
	}
	defer rmPages()

	if maxPages > 0 && len(pages) > maxPages {
		pages = pages[:maxPages]
	}
	out := make([][]byte, 0, len(pages))
	for _, p := range pages {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read page image: %w", err)
		}
		out = append(out, data)
	}
	return out, nil
}
