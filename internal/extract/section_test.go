package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSection(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		startLabels []string
		endLabels   []string
		want        string
		ok          bool
	}{
		{
			name:        "label on own line skips to next line",
			text:        "PRESTADOR DE SERVIÇOS\nACME SERVICOS LTDA\nCNPJ: 12.345.678/0001-90\nTOMADOR DE SERVIÇOS\nCLIENTE XYZ",
			startLabels: []string{"PRESTADOR DE SERVIÇOS"},
			endLabels:   []string{"TOMADOR"},
			want:        "ACME SERVICOS LTDA\nCNPJ: 12.345.678/0001-90\n",
			ok:          true,
		},
		{
			name:        "company suffix keeps the label line",
			text:        "PRESTADOR: ACME LTDA\nCNPJ: 11.222.333/0001-44\nTOMADOR",
			startLabels: []string{"PRESTADOR"},
			endLabels:   []string{"TOMADOR"},
			want:        ": ACME LTDA\nCNPJ: 11.222.333/0001-44\n",
			ok:          true,
		},
		{
			name:        "start label absent",
			text:        "DOCUMENTO SEM SECOES",
			startLabels: []string{"PRESTADOR"},
			endLabels:   []string{"TOMADOR"},
			ok:          false,
		},
		{
			name:        "section too short",
			text:        "EMITENTE\nABC LTDA\nTOTAL",
			startLabels: []string{"EMITENTE"},
			endLabels:   []string{"TOTAL"},
			ok:          false,
		},
		{
			name:        "label list order beats text order",
			text:        "TOMADOR APARECE PRIMEIRO NO TEXTO\nPRESTADOR\nEMPRESA EXEMPLO DE TESTE LTDA\nFIM",
			startLabels: []string{"PRESTADOR", "TOMADOR"},
			endLabels:   []string{"FIM"},
			want:        "EMPRESA EXEMPLO DE TESTE LTDA\n",
			ok:          true,
		},
		{
			name:        "missing end label runs to end of text",
			text:        "PRESTADOR DE SERVIÇO\nEMPRESA FINAL DO DOCUMENTO",
			startLabels: []string{"PRESTADOR DE SERVIÇO"},
			endLabels:   []string{"TOMADOR"},
			want:        "EMPRESA FINAL DO DOCUMENTO",
			ok:          true,
		},
		{
			name:        "long label line is not skipped",
			text:        "CLIENTE: " + strings.Repeat("X", 60) + "\nSEGUNDA LINHA",
			startLabels: []string{"CLIENTE:"},
			endLabels:   []string{"RODAPÉ"},
			want:        " " + strings.Repeat("X", 60) + "\nSEGUNDA LINHA",
			ok:          true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindSection(tt.text, tt.startLabels, tt.endLabels)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
