package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

func moneyEq(t *testing.T, got *float64, want float64) {
	t.Helper()
	require.NotNil(t, got)
	assert.InDelta(t, want, *got, 0.0001)
}

func TestFieldsDocument(t *testing.T) {
	f := FiscalFields{
		TipoDocumento: "NFS-e",
		Numero:        " 144 ",
		Serie:         "1",
		ChaveAcesso:   "3524 0898 7654 3200 0110 5500 3000 0551 2310 0098 7654",
		DataEmissao:   "2024-01-15",
		Emitente: &EntityFields{
			CNPJ:        "12.345.678/0001-90",
			RazaoSocial: " ACME SERVICOS LTDA ",
			Endereco:    "Rua das Flores, 123 - Centro",
		},
		Destinatario: &EntityFields{CNPJ: "98765432000110"},
		Valores: &ValueFields{
			ValorTotal:   fiscal.Float(1500),
			ValorLiquido: fiscal.Float(1167.75),
			CSLL:         fiscal.Float(15),
			PIS:          fiscal.Float(9.75),
		},
		Itens: []ItemFields{
			{Descricao: "Consultoria", Quantidade: fiscal.Float(2), ValorTotal: fiscal.Float(500)},
			{Descricao: "  "},
		},
	}

	doc := f.Document("nota.pdf")

	assert.Equal(t, "nota.pdf", doc.Filename)
	assert.Equal(t, constants.DocTypeNFSE, doc.DocumentType)
	assert.Equal(t, "144", doc.Numero)
	assert.Equal(t, "1", doc.Serie)
	assert.Equal(t, "35240898765432000110550030000551231000987654", doc.ChaveAcesso)
	assert.Equal(t, "15/01/2024", doc.DataEmissao)

	require.NotNil(t, doc.Emitente)
	assert.Equal(t, "12345678000190", doc.Emitente.CNPJ)
	assert.Equal(t, "ACME SERVICOS LTDA", doc.Emitente.RazaoSocial)
	require.NotNil(t, doc.Emitente.Endereco)
	assert.Equal(t, "Rua das Flores, 123 - Centro", doc.Emitente.Endereco.Logradouro)

	require.NotNil(t, doc.Destinatario)
	assert.Equal(t, "98765432000110", doc.Destinatario.CNPJ)
	assert.Nil(t, doc.Destinatario.Endereco)

	require.NotNil(t, doc.Valores)
	moneyEq(t, doc.Valores.ValorTotal, 1500)
	moneyEq(t, doc.Valores.ValorLiquido, 1167.75)
	moneyEq(t, doc.Valores.CSLLRetida, 15)
	moneyEq(t, doc.Valores.PIS, 9.75)
	assert.Nil(t, doc.Valores.ISS)

	require.Len(t, doc.Itens, 1)
	assert.Equal(t, "Consultoria", doc.Itens[0].Descricao)
	moneyEq(t, doc.Itens[0].ValorTotal, 500)
}

func TestFieldsDocumentTypes(t *testing.T) {
	tests := []struct {
		name string
		tipo string
		want constants.DocumentType
	}{
		{"nfse", "NFS-e", constants.DocTypeNFSE},
		{"nfse lower", "nfs-e", constants.DocTypeNFSE},
		{"nfe", "NF-e", constants.DocTypeNFE},
		{"nfe modelo", "NF-e Modelo 55", constants.DocTypeNFE},
		{"danfe", "DANFE", constants.DocTypeNFE},
		{"unknown", "Desconhecido", constants.DocTypeUnknown},
		{"empty", "", constants.DocTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FiscalFields{TipoDocumento: tt.tipo}.Document("x.pdf")
			assert.Equal(t, tt.want, doc.DocumentType)
		})
	}
}

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso date", "2024-01-15", "15/01/2024"},
		{"empty", "", ""},
		{"already display form", "15/01/2024", ""},
		{"prose", "janeiro de 2024", ""},
		{"impossible day", "2024-13-40", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayDate(tt.in))
		})
	}
}
