package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/ai"
	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/extract"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/mapping"
	"github.com/fiscaldata/nf-extractor/internal/ocr"
)

// richText has a text layer good enough that no fallback is needed.
const richText = `NFS-e NOTA FISCAL DE SERVIÇOS ELETRÔNICA
PRESTADOR DE SERVIÇOS
CONSULTORIA EXEMPLO LTDA
CNPJ: 11.222.333/0001-44
TOMADOR DE SERVIÇOS
CLIENTE DEMONSTRATIVO LTDA
CNPJ: 98.765.432/0001-10
VALOR TOTAL DA NOTA R$ 1.500,00
`

// poorText is long enough to classify as text-based but yields neither a
// total nor a party, which trips the quality gate.
const poorText = `NFS-e NOTA FISCAL DE SERVIÇOS ELETRÔNICA
DISCRIMINAÇÃO DOS SERVIÇOS
Remuneração referente aos serviços prestados conforme contrato vigente.
`

// poorOCRText keeps the scanned path poor without any retry fingerprint.
const poorOCRText = "DOCUMENTO DIGITALIZADO COM BAIXA QUALIDADE DE IMAGEM"

// fakeRunner answers for the poppler and tesseract binaries. pdftoppm calls
// write placeholder page files so the raster glob finds them.
type fakeRunner struct {
	layout  string
	ocrText string
	pages   int
	fail    map[string]bool

	calls [][]string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	base := filepath.Base(name)
	if r.fail[base] {
		return nil, []byte("fake failure"), errors.New("exit status 1")
	}
	switch base {
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := 1; i <= r.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		return []byte(r.ocrText), nil, nil
	case "pdftotext":
		for _, a := range args {
			if a == "-bbox" {
				return nil, []byte("no bbox layer"), errors.New("exit status 1")
			}
		}
		return []byte(r.layout), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected binary %q", name)
}

func (r *fakeRunner) rasterDPIs() []string {
	var dpis []string
	for _, call := range r.calls {
		if filepath.Base(call[0]) != "pdftoppm" {
			continue
		}
		for i, a := range call {
			if a == "-r" && i+1 < len(call) {
				dpis = append(dpis, call[i+1])
			}
		}
	}
	return dpis
}

// stubBackend is a canned ai.Backend recording what it was asked.
type stubBackend struct {
	available bool
	vision    bool
	doc       *fiscal.Document
	err       error

	textCalls  []string
	imageCalls []int
}

func (s *stubBackend) ExtractFromText(_ context.Context, text, _ string) (*fiscal.Document, []byte, error) {
	s.textCalls = append(s.textCalls, text)
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.doc, nil, nil
}

func (s *stubBackend) ExtractFromImages(_ context.Context, pages [][]byte, _ string) (*fiscal.Document, []byte, error) {
	s.imageCalls = append(s.imageCalls, len(pages))
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.doc, nil, nil
}

func (s *stubBackend) VisionCapable() bool              { return s.vision }
func (s *stubBackend) Available(_ context.Context) bool { return s.available }

func aiModelDoc() *fiscal.Document {
	doc := fiscal.NewDocument("modelo.pdf")
	doc.Numero = "9001"
	doc.Emitente = &fiscal.Entity{CNPJ: "11222333000144", RazaoSocial: "EMISSOR MODELO LTDA"}
	doc.Valores = &fiscal.TaxValues{ValorTotal: fiscal.Float(2500), PIS: fiscal.Float(16.25)}
	return doc
}

func newPipeline(t *testing.T, r *fakeRunner, backend ai.Backend, mapper *mapping.Mapper) *Extractor {
	t.Helper()
	pdfx := ocr.NewExtractor(ocr.Config{}, nil).WithRunner(r)
	return NewExtractor(extract.NewEngine(0, nil), pdfx, backend, mapper, 0, nil)
}

func writeMappingTable(t *testing.T) *mapping.Mapper {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unidades.json")
	table := `{"98.765.432/0001-10": {"coligada": "01", "filial": "003", "nome": "FILIAL RECIFE"}}`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))
	m, err := mapping.Load(path, nil)
	require.NoError(t, err)
	return m
}

func TestProcessTextDocument(t *testing.T) {
	r := &fakeRunner{layout: richText, pages: 1}
	x := newPipeline(t, r, nil, writeMappingTable(t))

	res := x.Process(context.Background(), "nota_servico.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	doc := res.Document
	assert.Equal(t, constants.StatusCompleted, doc.Status)
	assert.False(t, doc.IsScanned)
	assert.Equal(t, constants.DocTypeNFSE, doc.DocumentType)

	require.NotNil(t, doc.Emitente)
	assert.Equal(t, "11222333000144", doc.Emitente.CNPJ)
	require.NotNil(t, doc.Destinatario)
	assert.Equal(t, "98765432000110", doc.Destinatario.CNPJ)
	require.NotNil(t, doc.Valores)
	require.NotNil(t, doc.Valores.ValorTotal)
	assert.InDelta(t, 1500.0, *doc.Valores.ValorTotal, 0.0001)

	assert.Equal(t, "01", doc.Coligada)
	assert.Equal(t, "003", doc.Filial)
	assert.Equal(t, "FILIAL RECIFE", doc.Destinatario.RazaoSocial)

	assert.Empty(t, r.rasterDPIs(), "text documents never rasterize")
	assert.Greater(t, doc.ProcessingTime.Nanoseconds(), int64(0))
	assert.Equal(t, doc.ProcessingTime, res.Duration)
}

func TestProcessScannedDocument(t *testing.T) {
	r := &fakeRunner{layout: "", ocrText: richText, pages: 1}
	x := newPipeline(t, r, nil, mapping.New(nil))

	res := x.Process(context.Background(), "digitalizado.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	doc := res.Document
	assert.True(t, doc.IsScanned)
	require.NotNil(t, doc.Valores)
	require.NotNil(t, doc.Valores.ValorTotal)
	assert.InDelta(t, 1500.0, *doc.Valores.ValorTotal, 0.0001)

	// Recipient resolved but absent from the empty mapping table.
	assert.Equal(t, mapping.Unmapped, doc.Coligada)
	assert.Equal(t, mapping.Unmapped, doc.Filial)

	assert.Equal(t, []string{"300"}, r.rasterDPIs())
}

func TestProcessDecodeFailureFallsBackToOCR(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"pdftotext": true}, ocrText: richText, pages: 1}
	x := newPipeline(t, r, nil, nil)

	res := x.Process(context.Background(), "corrompido.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	assert.True(t, res.Document.IsScanned)
	assert.Equal(t, []string{"300"}, r.rasterDPIs())
}

func TestProcessOCRFailure(t *testing.T) {
	r := &fakeRunner{layout: "", fail: map[string]bool{"tesseract": true}, pages: 1}
	x := newPipeline(t, r, nil, nil)

	res := x.Process(context.Background(), "ilegivel.pdf", []byte("%PDF-1.4"), nil)

	require.False(t, res.Success())
	doc := res.Document
	assert.Equal(t, constants.StatusError, doc.Status)
	assert.Contains(t, doc.ErrorMessage, "OCR_FAILED")
}

func TestProcessTextModelFallback(t *testing.T) {
	backend := &stubBackend{available: true, doc: aiModelDoc()}
	r := &fakeRunner{layout: poorText, pages: 1}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "incompleto.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	doc := res.Document

	require.Len(t, backend.textCalls, 1)
	assert.Contains(t, backend.textCalls[0], "DISCRIMINAÇÃO DOS SERVIÇOS")
	assert.Empty(t, backend.imageCalls)

	assert.Equal(t, "9001", doc.Numero)
	require.NotNil(t, doc.Emitente)
	assert.Equal(t, "EMISSOR MODELO LTDA", doc.Emitente.RazaoSocial)
	require.NotNil(t, doc.Valores)
	assert.InDelta(t, 2500.0, *doc.Valores.ValorTotal, 0.0001)
}

func TestProcessTextModelSkippedWhenScanned(t *testing.T) {
	backend := &stubBackend{available: true, doc: aiModelDoc()}
	r := &fakeRunner{layout: "", ocrText: poorOCRText, pages: 1}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "digitalizado.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	assert.Empty(t, backend.textCalls)
	assert.Empty(t, backend.imageCalls)
	assert.Nil(t, res.Document.Valores, "heuristic result kept as-is")
}

func TestProcessVisionFallback(t *testing.T) {
	backend := &stubBackend{available: true, vision: true, doc: aiModelDoc()}
	r := &fakeRunner{layout: "", ocrText: poorOCRText, pages: 2}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "digitalizado.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	doc := res.Document

	require.Len(t, backend.imageCalls, 1)
	assert.Equal(t, ai.VisionMaxPages, backend.imageCalls[0])
	assert.Empty(t, backend.textCalls)

	// One OCR pass at the default resolution, one render pass for the model.
	assert.Equal(t, []string{"300", "200"}, r.rasterDPIs())

	assert.True(t, doc.IsScanned)
	assert.Equal(t, "9001", doc.Numero)
	require.NotNil(t, doc.Valores)
	assert.InDelta(t, 2500.0, *doc.Valores.ValorTotal, 0.0001)
}

func TestProcessVisionOnTextDocument(t *testing.T) {
	backend := &stubBackend{available: true, vision: true, doc: aiModelDoc()}
	r := &fakeRunner{layout: poorText, pages: 1}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "incompleto.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	require.Len(t, backend.imageCalls, 1)
	assert.Empty(t, backend.textCalls)
	assert.False(t, res.Document.IsScanned)
	assert.Equal(t, []string{"200"}, r.rasterDPIs(), "render pass only, no OCR")
}

func TestProcessBackendUnavailable(t *testing.T) {
	backend := &stubBackend{available: false, doc: aiModelDoc()}
	r := &fakeRunner{layout: poorText, pages: 1}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "incompleto.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	assert.Empty(t, backend.textCalls)
	assert.Empty(t, backend.imageCalls)
	assert.Nil(t, res.Document.Valores)
}

func TestProcessAIFailureKeepsHeuristics(t *testing.T) {
	backend := &stubBackend{
		available: true,
		err:       common.NewAppError("AI_BAD_RESPONSE", "model answered prose", common.ErrAIUnavailable),
	}
	r := &fakeRunner{layout: poorText, pages: 1}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "incompleto.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	doc := res.Document
	assert.Equal(t, constants.StatusCompleted, doc.Status)
	assert.Empty(t, doc.ErrorMessage)
	assert.Nil(t, doc.Valores)
	require.Len(t, backend.textCalls, 1)
}

func TestProcessCancelledBeforeOCR(t *testing.T) {
	r := &fakeRunner{layout: "", ocrText: richText, pages: 1}
	x := newPipeline(t, r, nil, nil)

	res := x.Process(context.Background(), "digitalizado.pdf", []byte("%PDF-1.4"), func() bool { return true })

	doc := res.Document
	assert.Equal(t, constants.StatusCancelled, doc.Status)
	assert.Empty(t, doc.ErrorMessage)
	assert.Empty(t, r.rasterDPIs(), "no OCR after cancellation")
}

func TestProcessCancelledBeforeAI(t *testing.T) {
	backend := &stubBackend{available: true, doc: aiModelDoc()}
	r := &fakeRunner{layout: poorText, pages: 1}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "incompleto.pdf", []byte("%PDF-1.4"), func() bool { return true })

	assert.Equal(t, constants.StatusCancelled, res.Document.Status)
	assert.Empty(t, backend.textCalls)
	assert.Empty(t, backend.imageCalls)
}

func TestProcessCancelledInVisionQueue(t *testing.T) {
	backend := &stubBackend{available: true, vision: true, doc: aiModelDoc()}
	r := &fakeRunner{layout: "", ocrText: poorOCRText, pages: 1}
	x := newPipeline(t, r, backend, nil)

	// False for the pre-OCR and quality-gate checks, true once the vision
	// semaphore is held.
	checks := 0
	cancelled := func() bool {
		checks++
		return checks >= 3
	}

	res := x.Process(context.Background(), "digitalizado.pdf", []byte("%PDF-1.4"), cancelled)

	assert.Equal(t, constants.StatusCancelled, res.Document.Status)
	assert.Empty(t, backend.imageCalls)
	assert.Equal(t, []string{"300"}, r.rasterDPIs(), "no render pass after cancellation")
}

func TestProcessContextCancelled(t *testing.T) {
	r := &fakeRunner{layout: "", ocrText: richText, pages: 1}
	x := newPipeline(t, r, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := x.Process(ctx, "digitalizado.pdf", []byte("%PDF-1.4"), nil)

	doc := res.Document
	assert.Equal(t, constants.StatusCancelled, doc.Status)
	assert.Empty(t, doc.ErrorMessage)
}

func TestProcessKeepsHeuristicFieldsOverAI(t *testing.T) {
	// The heuristic pass finds the recipient; the model must not replace it.
	aiDoc := aiModelDoc()
	aiDoc.Destinatario = &fiscal.Entity{CNPJ: "00000000000000", RazaoSocial: "ERRADO SA"}
	backend := &stubBackend{available: true, doc: aiDoc}

	layout := poorText +
		"TOMADOR DE SERVIÇOS\n" +
		"CLIENTE DEMONSTRATIVO LTDA\n" +
		"CNPJ: 98.765.432/0001-10\n"
	r := &fakeRunner{layout: layout, pages: 1}
	x := newPipeline(t, r, backend, nil)

	res := x.Process(context.Background(), "incompleto.pdf", []byte("%PDF-1.4"), nil)

	require.True(t, res.Success())
	doc := res.Document
	require.Len(t, backend.textCalls, 1, "still poor without a total")
	require.NotNil(t, doc.Destinatario)
	assert.Equal(t, "98765432000110", doc.Destinatario.CNPJ)
	assert.Equal(t, "CLIENTE DEMONSTRATIVO LTDA", doc.Destinatario.RazaoSocial)
}

func TestProcessAIMergeClearsDisallowedTaxes(t *testing.T) {
	// The model answers with every tax slot filled regardless of invoice
	// kind; the type rules must hold on the merged document too. Built per
	// case because the merge may adopt the model's value struct directly.
	modelDoc := func() *fiscal.Document {
		d := aiModelDoc()
		d.Valores.IPI = fiscal.Float(120)
		d.Valores.ISS = fiscal.Float(75)
		d.Valores.ISSRetido = fiscal.Float(40)
		return d
	}

	tests := []struct {
		name   string
		layout string
		check  func(t *testing.T, v *fiscal.TaxValues)
	}{
		{
			name:   "service invoice drops ipi",
			layout: poorText,
			check: func(t *testing.T, v *fiscal.TaxValues) {
				assert.Nil(t, v.IPI)
				require.NotNil(t, v.ISS)
				assert.InDelta(t, 75.0, *v.ISS, 0.0001)
			},
		},
		{
			name: "goods invoice drops iss",
			layout: "DANFE DOCUMENTO AUXILIAR DA NOTA FISCAL ELETRÔNICA\n" +
				"NATUREZA DA OPERAÇÃO: VENDA DE MERCADORIA ADQUIRIDA\n",
			check: func(t *testing.T, v *fiscal.TaxValues) {
				assert.Nil(t, v.ISS)
				assert.Nil(t, v.ISSRetido)
				require.NotNil(t, v.IPI)
				assert.InDelta(t, 120.0, *v.IPI, 0.0001)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubBackend{available: true, doc: modelDoc()}
			r := &fakeRunner{layout: tt.layout, pages: 1}
			x := newPipeline(t, r, backend, nil)

			res := x.Process(context.Background(), "incompleto.pdf", []byte("%PDF-1.4"), nil)

			require.True(t, res.Success())
			require.Len(t, backend.textCalls, 1)
			require.NotNil(t, res.Document.Valores)
			tt.check(t, res.Document.Valores)
		})
	}
}
