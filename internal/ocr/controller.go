package ocr

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/fiscaldata/nf-extractor/internal/extract"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// Controller drives recognition over at most two passes. The first pass runs
// at the caller's resolution; a second pass happens only when the cascades
// over the first-pass text leave the recipient missing or without a tax ID,
// and only when a known layout fingerprint suggests a better resolution.
type Controller struct {
	ocr    *Extractor
	engine *extract.Engine
	logger *slog.Logger
}

func NewController(ocr *Extractor, engine *extract.Engine, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{ocr: ocr, engine: engine, logger: logger}
}

// How far past a recipient label a tax ID is expected to appear.
const recipientWindow = 500

var (
	// Salvador layouts print the document number as bracketed OCR garble;
	// when the garble is missing the page was rendered too coarse.
	salvadorGarbleRe = regexp.MustCompile(`(?i)SALVADOR[^\n]*?[\[\(][moOnNs0-9]{6,10}[\s\?\]]`)
	recipientLabelRe = regexp.MustCompile(`(?i)TOMADOR|DESTINAT`)
	cnpjShapeRe      = regexp.MustCompile(`\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}`)
)

// Process recognizes the document and runs the extraction cascades, with the
// one-shot adaptive retry. The returned text is always the first-pass text;
// the retry only backfills the recipient.
func (c *Controller) Process(ctx context.Context, filename string, pdf []byte, dpi int) (*fiscal.Document, string, error) {
	text, err := c.ocr.Recognize(ctx, pdf, dpi)
	if err != nil {
		return nil, "", err
	}

	doc, err := c.engine.Extract(extract.Input{Filename: filename, Text: text})
	if err != nil {
		return doc, text, err
	}
	doc.IsScanned = true

	if hasRecipientID(doc) {
		return doc, text, nil
	}
	retry := retryResolution(text)
	if retry == 0 {
		return doc, text, nil
	}

	c.logger.Info("ocr.retry", "filename", filename, "dpi", retry)
	second, err := c.ocr.Recognize(ctx, pdf, retry)
	if err != nil {
		c.logger.Warn("ocr.retry.failed", "filename", filename, "error", err)
		return doc, text, nil
	}
	redo, err := c.engine.Extract(extract.Input{Filename: filename, Text: second})
	if err != nil {
		return doc, text, nil
	}
	backfillRecipient(doc, redo)
	return doc, text, nil
}

// retryResolution sniffs the first-pass text for layout fingerprints and
// picks the resolution of the second pass. Zero means no retry.
func retryResolution(text string) int {
	upper := strings.ToUpper(text)
	if strings.Contains(upper, "RECIFE") {
		// Recife prints an 8-digit number that fragments below 600 DPI.
		return 600
	}
	if strings.Contains(upper, "SALVADOR") && !salvadorGarbleRe.MatchString(text) {
		return 400
	}
	if loc := recipientLabelRe.FindStringIndex(text); loc != nil {
		end := loc[1] + recipientWindow
		if end > len(text) {
			end = len(text)
		}
		if !cnpjShapeRe.MatchString(text[loc[1]:end]) {
			// A recipient block with no tax ID nearby reads better coarse.
			return 200
		}
	}
	return 0
}

func hasRecipientID(doc *fiscal.Document) bool {
	return doc != nil && doc.Destinatario != nil && doc.Destinatario.CNPJ != ""
}

// backfillRecipient copies the second pass's recipient tax ID, and its name
// when that is also missing, into the first-pass document. Fields already
// present are never overwritten.
func backfillRecipient(first, second *fiscal.Document) {
	if second == nil || second.Destinatario == nil {
		return
	}
	if first.Destinatario == nil {
		first.Destinatario = second.Destinatario
		return
	}
	if first.Destinatario.CNPJ == "" && second.Destinatario.CNPJ != "" {
		first.Destinatario.CNPJ = second.Destinatario.CNPJ
	}
	if first.Destinatario.RazaoSocial == "" && second.Destinatario.RazaoSocial != "" {
		first.Destinatario.RazaoSocial = second.Destinatario.RazaoSocial
	}
}
