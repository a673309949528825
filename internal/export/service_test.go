package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

func sampleDocs() []*fiscal.Document {
	completa := &fiscal.Document{
		Filename:     "nfse_consultoria.pdf",
		DocumentType: constants.DocTypeNFSE,
		Numero:       "482",
		DataEmissao:  "15/03/2026",
		Emitente: &fiscal.Entity{
			CNPJ:        "11.222.333/0001-44",
			RazaoSocial: "CONSULTORIA EXEMPLO LTDA",
			Endereco:    &fiscal.Address{Logradouro: "Rua das Flores", Numero: "100", Municipio: "Recife", UF: "PE"},
		},
		Destinatario: &fiscal.Entity{
			CNPJ:        "98.765.432/0001-10",
			RazaoSocial: "CLIENTE DEMONSTRATIVO LTDA",
		},
		Coligada: "01",
		Filial:   "003",
		Valores: &fiscal.TaxValues{
			ValorTotal: fiscal.Float(1500),
			ISS:        fiscal.Float(75.5),
			IR:         fiscal.Float(22.5),
		},
		Itens: []fiscal.ServiceItem{
			{Descricao: "Consultoria mensal", Quantidade: fiscal.Float(1), ValorUnitario: fiscal.Float(1500), ValorTotal: fiscal.Float(1500)},
		},
		Status: constants.StatusCompleted,
	}
	escaneada := &fiscal.Document{
		Filename:     "digitalizada.pdf",
		DocumentType: constants.DocTypeUnknown,
		IsScanned:    true,
		Status:       constants.StatusCompleted,
	}
	return []*fiscal.Document{completa, escaneada}
}

func openReport(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRenderDocumentsSheet(t *testing.T) {
	r := NewReporter(t.TempDir(), nil)
	data, err := r.Render(sampleDocs())
	require.NoError(t, err)

	f := openReport(t, data)
	assert.Equal(t, []string{sheetDocuments, sheetItems}, f.GetSheetList())

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetDocuments, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Tipo Documento", cell("A1"))
	assert.Equal(t, "Observações Extração", cell("AD1"))

	// Row 2 is the scanned document: rows sort by filename.
	assert.Equal(t, "Desconhecido", cell("A2"))
	assert.Equal(t, "Documento Escaneado", cell("AD2"))

	// Row 3 is the complete NFS-e.
	assert.Equal(t, "NFS-e", cell("A3"))
	assert.Equal(t, "482", cell("B3"))
	assert.Equal(t, "15/03/2026", cell("C3"))
	assert.Equal(t, "11222333000144", cell("E3"))
	assert.Equal(t, "CONSULTORIA EXEMPLO LTDA", cell("F3"))
	assert.Equal(t, "Rua das Flores, nº 100, Recife/PE", cell("G3"))
	assert.Equal(t, "98765432000110", cell("H3"))
	assert.Equal(t, "01", cell("I3"))
	assert.Equal(t, "003", cell("J3"))
	assert.Equal(t, "1500", cell("M3"))
	assert.Equal(t, "", cell("P3"), "frete is never extracted")
	assert.Equal(t, "75.5", cell("V3"))
	assert.Equal(t, "22.5", cell("W3"))
	assert.Equal(t, "", cell("AD3"))
}

func TestRenderItemsSheet(t *testing.T) {
	r := NewReporter(t.TempDir(), nil)
	data, err := r.Render(sampleDocs())
	require.NoError(t, err)

	f := openReport(t, data)
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetItems, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Arquivo", cell("A1"))
	assert.Equal(t, "Valor Total", cell("G1"))

	// The scanned document keeps a reference row even without items.
	assert.Equal(t, "digitalizada.pdf", cell("A2"))
	assert.Equal(t, "", cell("C2"))

	assert.Equal(t, "nfse_consultoria.pdf", cell("A3"))
	assert.Equal(t, "482", cell("B3"))
	assert.Equal(t, "1", cell("C3"))
	assert.Equal(t, "Consultoria mensal", cell("D3"))
	assert.Equal(t, "1500", cell("F3"))
	assert.Equal(t, "1500", cell("G3"))
}

func TestRenderNoDocuments(t *testing.T) {
	r := NewReporter(t.TempDir(), nil)
	_, err := r.Render(nil)
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "relatorios")
	r := NewReporter(dir, nil)

	path, err := r.WriteReport(sampleDocs())
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "relatorio_fiscal_"), base)
	assert.True(t, strings.HasSuffix(base, ".xlsx"), base)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetDocuments)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFromBatch(t *testing.T) {
	b := fiscal.NewBatchResult(2)
	b.Add(fiscal.ProcessingResult{Document: &fiscal.Document{Filename: "a.pdf", Status: constants.StatusCompleted}})
	b.Add(fiscal.ProcessingResult{Document: &fiscal.Document{Filename: "b.pdf", Status: constants.StatusError}})

	docs := FromBatch(b)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.pdf", docs[0].Filename)

	assert.Nil(t, FromBatch(nil))
}
