package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiscaldata/nf-extractor/constants"
)

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.DocumentType
	}{
		{"nfse header", "NOTA FISCAL DE SERVIÇOS ELETRÔNICA - NFS-e", constants.DocTypeNFSE},
		{"lowercase nfse", "nota fiscal de serviço eletrônica", constants.DocTypeNFSE},
		{"danfe", "DANFE - DOCUMENTO AUXILIAR DA NOTA FISCAL ELETRÔNICA", constants.DocTypeNFE},
		{"service marker wins over goods marker", "DANFE PRESTADOR DE SERVIÇOS", constants.DocTypeNFSE},
		{"plain receipt", "RECIBO DE PAGAMENTO", constants.DocTypeUnknown},
		{"empty", "", constants.DocTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDocumentType(tt.text))
		})
	}
}

func TestIsTextBased(t *testing.T) {
	e := NewEngine(0, nil)

	assert.True(t, e.IsTextBased(strings.Repeat("a", DefaultMinTextLength)))
	assert.False(t, e.IsTextBased("CNPJ"))
	assert.False(t, e.IsTextBased("   \n\t  "))

	short := NewEngine(5, nil)
	assert.True(t, short.IsTextBased("header"))
}
