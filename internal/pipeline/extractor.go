// Package pipeline runs one document end to end: decode the embedded page
// text, classify it, extract fields directly or through the adaptive OCR
// controller, consult the AI backend when the result is poor, and apply the
// organizational mapping before finalizing the status.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/ai"
	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/extract"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/mapping"
	"github.com/fiscaldata/nf-extractor/internal/ocr"
)

// CancelCheck reports whether the batch this document belongs to was
// cancelled. The pipeline polls it before OCR and before AI inference.
type CancelCheck func() bool

// Extractor is the per-document pipeline. One instance serves a whole batch
// concurrently; the vision semaphore is the only shared mutable state.
type Extractor struct {
	engine     *extract.Engine
	ocr        *ocr.Extractor
	controller *ocr.Controller
	backend    ai.Backend // nil disables the quality-gate fallback
	mapper     *mapping.Mapper
	logger     *slog.Logger

	// Local inference servers degrade badly under concurrent image
	// requests, so vision calls serialize process-wide.
	visionSem *semaphore.Weighted
	dpi       int
}

func NewExtractor(engine *extract.Engine, pdfx *ocr.Extractor, backend ai.Backend, mapper *mapping.Mapper, dpi int, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		engine:     engine,
		ocr:        pdfx,
		controller: ocr.NewController(pdfx, engine, logger),
		backend:    backend,
		mapper:     mapper,
		visionSem:  semaphore.NewWeighted(1),
		dpi:        dpi,
		logger:     logger,
	}
}

// Process runs one document through the pipeline. The returned result
// always carries a document; failures live in its status and error message
// and never escape as errors.
func (x *Extractor) Process(ctx context.Context, filename string, pdf []byte, cancelled CancelCheck) fiscal.ProcessingResult {
	start := time.Now()
	if cancelled == nil {
		cancelled = func() bool { return false }
	}
	x.logger.Debug("pipeline.start", "file", filename, "bytes", len(pdf))

	doc := x.run(ctx, filename, pdf, cancelled)
	doc.ProcessingTime = time.Since(start)

	x.logger.Info("pipeline.done",
		"file", filename,
		"status", string(doc.Status),
		"scanned", doc.IsScanned,
		"elapsed_ms", doc.ProcessingTime.Milliseconds(),
	)
	return fiscal.ProcessingResult{Document: doc, Duration: doc.ProcessingTime}
}

func (x *Extractor) run(ctx context.Context, filename string, pdf []byte, cancelled CancelCheck) *fiscal.Document {
	decoded, err := x.ocr.Decode(ctx, pdf)
	if err != nil {
		// An undecodable text layer classifies as scanned instead of
		// aborting; the raster path still gets its chance.
		x.logger.Warn("pipeline.decode.failed", "file", filename, "error", err)
		decoded = ocr.Decoded{}
	}

	textBased := x.engine.IsTextBased(firstPage(decoded))

	var doc *fiscal.Document
	if textBased {
		doc, err = x.engine.Extract(extract.Input{Filename: filename, Text: decoded.Text, Words: decoded.Words})
	} else {
		if cancelled() {
			return cancelledDoc(filename)
		}
		doc, _, err = x.controller.Process(ctx, filename, pdf, x.dpi)
	}
	if err != nil {
		return failed(doc, filename, err)
	}

	if x.backend != nil && IsExtractionPoor(doc) {
		if cancelled() {
			doc.Status = constants.StatusCancelled
			return doc
		}
		if err := x.enhance(ctx, doc, decoded.Text, textBased, pdf, cancelled); err != nil {
			doc.Status = constants.StatusCancelled
			return doc
		}
		// The model answers for both invoice kinds, so a merge can refill a
		// slot the document type does not carry.
		doc.ClearDisallowedTaxes()
	}

	if x.mapper != nil {
		x.mapper.Apply(doc)
	}
	doc.Status = constants.StatusCompleted
	return doc
}

// enhance consults the secondary model and folds its answer into doc. Only
// cancellation surfaces as an error; an inference failure keeps the
// heuristic result and the document still completes.
func (x *Extractor) enhance(ctx context.Context, doc *fiscal.Document, text string, textBased bool, pdf []byte, cancelled CancelCheck) error {
	x.logger.Info("pipeline.quality.poor",
		"file", doc.Filename,
		"has_total", doc.Valores != nil && doc.Valores.ValorTotal != nil,
		"has_emitente", doc.Emitente != nil,
		"has_destinatario", doc.Destinatario != nil,
	)
	vision := x.backend.VisionCapable()
	if !vision && (!textBased || strings.TrimSpace(text) == "") {
		// A text model cannot read a scanned page, and feeding it the OCR
		// text would stack two error sources.
		x.logger.Info("pipeline.ai.skipped", "file", doc.Filename, "reason", "text model on scanned document")
		return nil
	}
	if !x.backend.Available(ctx) {
		x.logger.Warn("pipeline.ai.unavailable", "file", doc.Filename)
		return nil
	}

	var (
		aiDoc *fiscal.Document
		err   error
	)
	if vision {
		aiDoc, err = x.visionPass(ctx, doc.Filename, pdf, cancelled)
	} else {
		aiDoc, _, err = x.backend.ExtractFromText(ctx, text, doc.Filename)
	}

	switch {
	case err == nil:
		MergeDocuments(doc, aiDoc)
		x.logger.Info("pipeline.ai.merged", "file", doc.Filename, "still_poor", IsExtractionPoor(doc))
	case errors.Is(err, common.ErrCancelled), errors.Is(err, context.Canceled):
		return err
	default:
		x.logger.Warn("pipeline.ai.failed", "file", doc.Filename, "error", err)
	}
	return nil
}

// visionPass renders the leading pages and queries the vision model. A file
// can sit in the semaphore queue past its batch's cancellation, hence the
// re-check after acquiring.
func (x *Extractor) visionPass(ctx context.Context, filename string, pdf []byte, cancelled CancelCheck) (*fiscal.Document, error) {
	if err := x.visionSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer x.visionSem.Release(1)
	if cancelled() {
		return nil, common.ErrCancelled
	}

	pages, err := x.ocr.RenderPages(ctx, pdf, ai.VisionRenderDPI, ai.VisionMaxPages)
	if err != nil {
		return nil, err
	}
	aiDoc, _, err := x.backend.ExtractFromImages(ctx, pages, filename)
	return aiDoc, err
}

func failed(doc *fiscal.Document, filename string, err error) *fiscal.Document {
	if doc == nil {
		doc = fiscal.NewDocument(filename)
	}
	if errors.Is(err, context.Canceled) {
		doc.Status = constants.StatusCancelled
		return doc
	}
	doc.Status = constants.StatusError
	doc.ErrorMessage = err.Error()
	return doc
}

func cancelledDoc(filename string) *fiscal.Document {
	doc := fiscal.NewDocument(filename)
	doc.Status = constants.StatusCancelled
	return doc
}

func firstPage(d ocr.Decoded) string {
	if len(d.Pages) > 0 {
		return d.Pages[0]
	}
	return ""
}
