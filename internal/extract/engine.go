// Package extract implements the heuristic field cascades that turn decoded
// fiscal document text into structured records. Every field runs an ordered
// rule list: spatial proximity over word geometry when the source PDF had a
// text layer, then layout-specific regexes, then generic fallbacks. The first
// rule whose value survives the rejection filters wins.
package extract

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// DefaultMinTextLength is the rune threshold below which a first page is
// treated as scanned.
const DefaultMinTextLength = 50

// Engine runs the cascades. It is stateless across documents and safe for
// concurrent use.
type Engine struct {
	minTextLength int
	logger        *slog.Logger
}

// NewEngine builds an engine. A non-positive minTextLength falls back to the
// default; a nil logger falls back to slog.Default().
func NewEngine(minTextLength int, logger *slog.Logger) *Engine {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{minTextLength: minTextLength, logger: logger}
}

// Input is the decoded content of one document. Words carry per-page word
// rectangles when the text layer was decoded directly; OCR output has none
// and the cascades skip their spatial stages.
type Input struct {
	Filename string
	Text     string
	Words    []Word
}

// Extract runs the full cascade set over one document. It returns a document
// even on error so partial results are never lost; the only error condition
// is input with no text content.
func (e *Engine) Extract(in Input) (*fiscal.Document, error) {
	doc := fiscal.NewDocument(in.Filename)
	if strings.TrimSpace(in.Text) == "" {
		return doc, common.NewAppError("NO_TEXT", "document has no text content", common.ErrNoText)
	}

	doc.DocumentType = DetectDocumentType(in.Text)

	// The filename is the most reliable number source: batch exports name
	// files after the document. Text-derived numbers stay tentative so the
	// merge layer may still improve them.
	var numero fiscal.Field[string]
	if n, ok := numeroFromFilename(in.Filename, time.Now().Year()); ok {
		numero.Confirm(n)
		e.logger.Debug("extract.numero.filename", "numero", n, "filename", in.Filename)
	} else if n, ok := e.extractNumero(in.Text, in.Words); ok {
		numero.SetTentative(n)
	}
	doc.Numero = numero.Value()

	if s, ok := extractSerie(in.Text); ok {
		doc.Serie = s
	}
	if c, ok := extractChave(in.Text); ok {
		doc.ChaveAcesso = c
	}
	if d, ok := extractDataEmissao(in.Text); ok {
		doc.DataEmissao = d
	}
	if d, ok := extractDataSaidaEntrada(in.Text); ok {
		doc.DataSaidaEntrada = d
	}
	if d, ok := extractDataCompetencia(in.Text); ok {
		doc.DataCompetencia = d
	}

	doc.Emitente = e.extractEmitente(in.Text, in.Words)
	doc.Destinatario = e.extractDestinatario(in.Text, in.Words)
	doc.Valores = e.extractValores(in.Text, in.Words)

	// Service invoices restate their withholdings in a dedicated block that
	// is more reliable than the generic value pass, so the whole retention
	// set replaces what that pass found, clearing stale slots too.
	if doc.DocumentType == constants.DocTypeNFSE && doc.Valores != nil {
		ret := e.extractRetentions(in.Text)
		doc.Valores.PISRetido = ret.PISRetido
		doc.Valores.COFINSRetido = ret.COFINSRetido
		doc.Valores.CSLLRetida = ret.CSLLRetida
		doc.Valores.IR = ret.IRRF
		doc.Valores.INSS = ret.INSS
		doc.Valores.ISSRetido = ret.ISSRetido
	}

	doc.ClearDisallowedTaxes()

	e.logger.Debug("extract.done",
		"filename", in.Filename,
		"type", string(doc.DocumentType),
		"numero", doc.Numero,
		"has_emitente", doc.Emitente != nil,
		"has_destinatario", doc.Destinatario != nil,
	)
	return doc, nil
}
