package pipeline

import (
	"log/slog"

	"github.com/fiscaldata/nf-extractor/internal/ai"
	"github.com/fiscaldata/nf-extractor/internal/ai/ollama"
	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/extract"
	"github.com/fiscaldata/nf-extractor/internal/mapping"
	"github.com/fiscaldata/nf-extractor/internal/ocr"
)

// FromConfig assembles the full extractor from the ambient configuration:
// heuristic engine, PDF decoding and OCR, the optional AI fallback, and the
// CNPJ mapping table. A missing mapping table degrades to an empty mapper.
func FromConfig(cfg *common.Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}

	engine := extract.NewEngine(cfg.OCR.MinTextLength, logger)
	pdfx := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.PageLimit,
		Engine:      cfg.OCR.Engine,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)

	var backend ai.Backend
	if cfg.AI.Enabled {
		backend = ollama.NewClient(ollama.Config{
			BaseURL:     cfg.AI.BaseURL,
			Model:       cfg.AI.Model,
			Temperature: float64(cfg.AI.Temperature),
			Timeout:     cfg.AI.Timeout,
		}, logger)
		logger.Info("ai fallback enabled", "model", cfg.AI.Model, "base_url", cfg.AI.BaseURL)
	} else {
		logger.Info("ai fallback disabled")
	}

	mapper := mapping.New(logger)
	if cfg.Mapping.Path != "" {
		m, err := mapping.Load(cfg.Mapping.Path, logger)
		if err != nil {
			logger.Warn("mapping table not loaded", "path", cfg.Mapping.Path, "error", err)
		}
		mapper = m
	}

	return NewExtractor(engine, pdfx, backend, mapper, cfg.OCR.DPI, logger)
}
