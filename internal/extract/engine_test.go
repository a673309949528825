package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/common"
)

func moneyEq(t *testing.T, got *float64, want float64) {
	t.Helper()
	require.NotNil(t, got)
	assert.InDelta(t, want, *got, 0.0001)
}

func TestExtractServiceInvoice(t *testing.T) {
	e := NewEngine(0, nil)

	text := "NOTA FISCAL DE SERVIÇOS ELETRÔNICA - NFS-e\n" +
		"Número da Nota\n" +
		"12345\n" +
		"Data e Hora de Emissão: 15/01/2024\n" +
		"Competência: 01/01/2024\n" +
		"Série: 1\n" +
		"PRESTADOR DE SERVIÇOS\n" +
		"ACME SERVICOS DE INFORMATICA LTDA\n" +
		"CNPJ: 12.345.678/0001-90\n" +
		"Endereço: Rua das Flores Nº 123\n" +
		"Bairro: Centro\n" +
		"Município: São Paulo UF: SP\n" +
		"CEP: 01310-100\n" +
		"TOMADOR DE SERVIÇOS\n" +
		"CLIENTE EXEMPLO COMERCIO SA\n" +
		"CNPJ: 98.765.432/0001-10\n" +
		"VALOR DOS SERVIÇOS: R$ 1.500,00\n" +
		"VALOR TOTAL DA NOTA R$ 1.500,00\n" +
		"VALOR DO ISS R$ 75,00\n" +
		"PIS RETIDO: R$ 9,75\n" +
		"COFINS RETIDO: R$ 45,00\n" +
		"CSLL RETIDA: R$ 15,00\n" +
		"IRRF: R$ 22,50\n" +
		"INSS RETIDO: R$ 165,00\n" +
		"ISS RETIDO: R$ 75,00\n" +
		"VALOR LÍQUIDO: R$ 1.167,75"

	doc, err := e.Extract(Input{Filename: "nota_fiscal_servico.pdf", Text: text})
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, constants.DocTypeNFSE, doc.DocumentType)
	assert.Equal(t, "12345", doc.Numero)
	assert.Equal(t, "1", doc.Serie)
	assert.Empty(t, doc.ChaveAcesso)
	assert.Equal(t, "15/01/2024", doc.DataEmissao)
	assert.Equal(t, "01/01/2024", doc.DataCompetencia)
	assert.Empty(t, doc.DataSaidaEntrada)

	require.NotNil(t, doc.Emitente)
	assert.Equal(t, "12345678000190", doc.Emitente.CNPJ)
	assert.Equal(t, "ACME SERVICOS DE INFORMATICA LTDA", doc.Emitente.RazaoSocial)
	require.NotNil(t, doc.Emitente.Endereco)
	assert.Equal(t, "Rua das Flores", doc.Emitente.Endereco.Logradouro)
	assert.Equal(t, "123", doc.Emitente.Endereco.Numero)
	assert.Equal(t, "Centro", doc.Emitente.Endereco.Bairro)
	assert.Equal(t, "São Paulo", doc.Emitente.Endereco.Municipio)
	assert.Equal(t, "SP", doc.Emitente.Endereco.UF)
	assert.Equal(t, "01310-100", doc.Emitente.Endereco.CEP)

	require.NotNil(t, doc.Destinatario)
	assert.Equal(t, "98765432000110", doc.Destinatario.CNPJ)
	assert.Equal(t, "CLIENTE EXEMPLO COMERCIO SA", doc.Destinatario.RazaoSocial)

	require.NotNil(t, doc.Valores)
	moneyEq(t, doc.Valores.ValorTotal, 1500)
	moneyEq(t, doc.Valores.ValorServicos, 1500)
	moneyEq(t, doc.Valores.ValorLiquido, 1167.75)
	moneyEq(t, doc.Valores.ISS, 75)
	moneyEq(t, doc.Valores.PISRetido, 9.75)
	moneyEq(t, doc.Valores.COFINSRetido, 45)
	moneyEq(t, doc.Valores.CSLLRetida, 15)
	moneyEq(t, doc.Valores.IR, 22.5)
	moneyEq(t, doc.Valores.INSS, 165)
	moneyEq(t, doc.Valores.ISSRetido, 75)
	assert.Nil(t, doc.Valores.IPI)
}

func TestExtractGoodsInvoice(t *testing.T) {
	e := NewEngine(0, nil)

	text := "DANFE - DOCUMENTO AUXILIAR DA NOTA FISCAL ELETRÔNICA\n" +
		"Nº: 000055123\n" +
		"Série: 3\n" +
		"Chave de Acesso: 3524 0898 7654 3200 0110 5500 3000 0551 2310 0098 7654\n" +
		"DATA DE EMISSÃO: 10/02/2024\n" +
		"Saída/Entrada: 11/02/2024\n" +
		"EMITENTE\n" +
		"INDUSTRIA DE COMPONENTES BRASIL LTDA\n" +
		"CNPJ: 11.222.333/0001-44\n" +
		"DESTINATÁRIO\n" +
		"COMERCIO VAREJISTA NACIONAL SA\n" +
		"CNPJ: 55.666.777/0001-88\n" +
		"VALOR TOTAL DA NOTA R$ 25.000,00\n" +
		"VALOR DO ICMS R$ 4.500,00\n" +
		"VALOR DO IPI R$ 1.250,00"

	doc, err := e.Extract(Input{Filename: "danfe_saida.pdf", Text: text})
	require.NoError(t, err)

	assert.Equal(t, constants.DocTypeNFE, doc.DocumentType)
	assert.Equal(t, "000055123", doc.Numero)
	assert.Equal(t, "3", doc.Serie)
	assert.Equal(t, "35240898765432000110550030000551231000987654", doc.ChaveAcesso)
	assert.Equal(t, "10/02/2024", doc.DataEmissao)
	assert.Equal(t, "11/02/2024", doc.DataSaidaEntrada)

	require.NotNil(t, doc.Emitente)
	assert.Equal(t, "11222333000144", doc.Emitente.CNPJ)
	assert.Equal(t, "INDUSTRIA DE COMPONENTES BRASIL LTDA", doc.Emitente.RazaoSocial)

	require.NotNil(t, doc.Destinatario)
	assert.Equal(t, "55666777000188", doc.Destinatario.CNPJ)
	assert.Equal(t, "COMERCIO VAREJISTA NACIONAL SA", doc.Destinatario.RazaoSocial)

	require.NotNil(t, doc.Valores)
	moneyEq(t, doc.Valores.ValorTotal, 25000)
	moneyEq(t, doc.Valores.ValorServicos, 25000)
	moneyEq(t, doc.Valores.ICMS, 4500)
	moneyEq(t, doc.Valores.IPI, 1250)
	assert.Nil(t, doc.Valores.ISS)
	assert.Nil(t, doc.Valores.ISSRetido)
}

func TestExtractNoText(t *testing.T) {
	e := NewEngine(0, nil)

	doc, err := e.Extract(Input{Filename: "vazio.pdf", Text: "   \n\t  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoText))
	require.NotNil(t, doc)
	assert.Equal(t, "vazio.pdf", doc.Filename)
}

func TestExtractNumeroFromFilenameWins(t *testing.T) {
	e := NewEngine(0, nil)

	text := "NOTA FISCAL DE SERVIÇOS ELETRÔNICA\n" +
		"Número da Nota\n" +
		"12345\n" +
		"VALOR TOTAL DA NOTA R$ 100,00"

	doc, err := e.Extract(Input{Filename: "NF-98765 cliente.pdf", Text: text})
	require.NoError(t, err)

	assert.Equal(t, constants.DocTypeNFSE, doc.DocumentType)
	assert.Equal(t, "98765", doc.Numero)
	moneyEq(t, doc.Valores.ValorTotal, 100)
}

func TestExtractRetentionOverwrite(t *testing.T) {
	e := NewEngine(0, nil)

	text := "NFS-e PREFEITURA\n" +
		"IR (1,5%) R$ 50,00\n" +
		"IRRF,CP,CSLL-Retidos PIS/COFINSRetidos INSSRetido\n" +
		"130,00 244,72 0,00"

	doc, err := e.Extract(Input{Filename: "consolidada.pdf", Text: text})
	require.NoError(t, err)

	assert.Equal(t, constants.DocTypeNFSE, doc.DocumentType)
	require.NotNil(t, doc.Valores)
	assert.Nil(t, doc.Valores.IR)
	moneyEq(t, doc.Valores.PISRetido, 43.56)
	moneyEq(t, doc.Valores.COFINSRetido, 201.16)
	moneyEq(t, doc.Valores.CSLLRetida, 130)
	moneyEq(t, doc.Valores.INSS, 130)
	assert.Nil(t, doc.Valores.ISSRetido)
}

func TestExtractUnknownTypeKeepsValues(t *testing.T) {
	e := NewEngine(0, nil)

	text := "DOCUMENTO GENERICO\n" +
		"VALOR TOTAL DA NOTA R$ 10,00\n" +
		"PIS RETIDO R$ 1,00"

	doc, err := e.Extract(Input{Filename: "generico.pdf", Text: text})
	require.NoError(t, err)

	assert.Equal(t, constants.DocTypeUnknown, doc.DocumentType)
	require.NotNil(t, doc.Valores)
	moneyEq(t, doc.Valores.ValorTotal, 10)
	moneyEq(t, doc.Valores.ValorServicos, 10)
	moneyEq(t, doc.Valores.PISRetido, 1)
}

func TestExtractDeterministic(t *testing.T) {
	e := NewEngine(0, nil)

	in := Input{
		Filename: "nota_servico.pdf",
		Text: "NFS-e PREFEITURA MUNICIPAL\n" +
			"Número da Nota\n" +
			"4711\n" +
			"PRESTADOR DE SERVIÇOS\n" +
			"ACME SERVICOS LTDA\n" +
			"CNPJ: 12.345.678/0001-90\n" +
			"TOMADOR DE SERVIÇOS\n" +
			"CLIENTE EXEMPLO SA\n" +
			"CNPJ: 98.765.432/0001-10\n" +
			"VALOR TOTAL DA NOTA R$ 350,00",
		Words: []Word{
			word(1, "Número", 10, 100, 50, 110),
			word(1, "4711", 60, 100, 90, 110),
		},
	}

	first, err := e.Extract(in)
	require.NoError(t, err)
	second, err := e.Extract(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
