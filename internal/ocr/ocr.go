// Package ocr owns the PDF boundary: decoding page text and word geometry
// through poppler, rasterizing pages, and recognizing scanned pages with
// Tesseract. Recognition resolution is always a per-call parameter so one
// extractor instance is safe under concurrent batch workers.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fiscaldata/nf-extractor/internal/common"
)

// Recognition backends.
const (
	EngineExec      = "exec"
	EngineGosseract = "gosseract"
)

// DPI bounds enforced on every pass.
const (
	DefaultDPI = 300
	MinDPI     = 72
	MaxDPI     = 600
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language    string // Tesseract language, default "por"
	TessdataDir string // optional override for the trained data location
	DPI         int    // default rasterization resolution, clamped to 72..600
	MaxPages    int    // 0 = no limit

	Engine string // "exec" (default) or "gosseract"
	PSM    int    // page segmentation mode; 4 = single column of variable sizes
	OEM    int    // engine mode; 3 = default LSTM selection
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "por"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = DefaultDPI
	}
	if cfg.Engine == "" {
		cfg.Engine = EngineExec
	}
	if cfg.PSM == 0 {
		cfg.PSM = 4
	}
	if cfg.OEM == 0 {
		cfg.OEM = 3
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the process runner and returns the extractor. Tests use
// it to fake the poppler and tesseract binaries.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Recognize rasterizes the PDF at the given resolution and runs every page
// through the configured Tesseract backend. Page texts are joined with a
// form-feed marker. Empty output is an error, never a silent empty result.
func (e *Extractor) Recognize(ctx context.Context, pdf []byte, dpi int) (string, error) {
	dpi = clampDPI(dpi, e.cfg.DPI)

	path, cleanup, err := tempPDF(pdf)
	if err != nil {
		return "", err
	}
	defer cleanup()

	e.logger.Debug("ocr.pass.start", "dpi", dpi, "bytes", len(pdf))

	pages, rmPages, err := e.rasterize(ctx, path, dpi)
	if err != nil {
		return "", err
	}
	defer rmPages()

	rec := e.recognizer()
	var b strings.Builder
	for i, img := range pages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		txt, err := rec.recognize(ctx, img)
		if err != nil {
			return "", common.NewAppError("OCR_FAILED",
				fmt.Sprintf("page %d recognition failed: %v", i+1, err), common.ErrOCRFailed)
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(txt)
	}

	out := b.String()
	if strings.TrimSpace(out) == "" {
		return "", common.NewAppError("OCR_EMPTY", "ocr produced no text", common.ErrOCRFailed)
	}
	e.logger.Debug("ocr.pass.done", "dpi", dpi, "pages", len(pages), "chars", len(out))
	return out, nil
}

func (e *Extractor) recognizer() recognizer {
	if e.cfg.Engine == EngineGosseract {
		return gosseractEngine{lang: e.cfg.Language, psm: e.cfg.PSM, tessdata: e.cfg.TessdataDir}
	}
	return execTesseract{
		bin:      e.cfg.Tesseract,
		lang:     e.cfg.Language,
		psm:      e.cfg.PSM,
		oem:      e.cfg.OEM,
		tessdata: e.cfg.TessdataDir,
		runner:   e.runner,
	}
}

func clampDPI(dpi, fallback int) int {
	if dpi <= 0 {
		dpi = fallback
	}
	if dpi < MinDPI {
		return MinDPI
	}
	if dpi > MaxDPI {
		return MaxDPI
	}
	return dpi
}

// tempPDF writes the document bytes to a scratch file so the poppler
// binaries can read them. The returned cleanup removes the file.
func tempPDF(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "nf-*.pdf")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
