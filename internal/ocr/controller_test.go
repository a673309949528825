package ocr

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/internal/extract"
)

func TestRetryResolution(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "recife header forces high resolution",
			text: "PREFEITURA DO RECIFE\nNOTA DE SERVIÇOS",
			want: 600,
		},
		{
			name: "salvador without the bracketed garble",
			text: "PREFEITURA DE SALVADOR\nNUMERO ILEGIVEL",
			want: 400,
		},
		{
			name: "salvador with the garble needs no retry",
			text: "SALVADOR - CAPITAL [oon12345 ]",
			want: 0,
		},
		{
			name: "recipient label with no tax id nearby",
			text: "TOMADOR DE SERVIÇOS\nNOME RASURADO",
			want: 200,
		},
		{
			name: "recipient label with a tax id nearby",
			text: "TOMADOR DE SERVIÇOS\nCNPJ: 11.222.333/0001-44",
			want: 0,
		},
		{
			name: "tax id beyond the window",
			text: "DESTINATÁRIO\n" + strings.Repeat("x", 520) + "11.222.333/0001-44",
			want: 200,
		},
		{
			name: "recife wins over the recipient fingerprint",
			text: "RECIFE\nTOMADOR SEM ID",
			want: 600,
		},
		{
			name: "no fingerprint",
			text: "DOCUMENTO QUALQUER SEM PISTAS",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryResolution(tt.text))
		})
	}
}

func TestControllerProcess(t *testing.T) {
	pdf := []byte("%PDF-1.4")

	t.Run("backfills the recipient from the retry pass", func(t *testing.T) {
		first := "NFS-e PREFEITURA MUNICIPAL\nTOMADOR\nxx rasurado xx"
		second := "NFS-e PREFEITURA MUNICIPAL\n" +
			"TOMADOR DE SERVIÇOS\n" +
			"CLIENTE LEGIVEL AGORA LTDA\n" +
			"CNPJ: 98.765.432/0001-10\n" +
			"VALORES"

		r := &stubRunner{pages: 1, textByDPI: map[string]string{"300": first, "200": second}}
		c := NewController(newStubbedExtractor(Config{}, r), extract.NewEngine(0, nil), nil)

		doc, text, err := c.Process(context.Background(), "digitalizado.pdf", pdf, 300)
		require.NoError(t, err)

		assert.Equal(t, first, text)
		assert.True(t, doc.IsScanned)
		require.NotNil(t, doc.Destinatario)
		assert.Equal(t, "98765432000110", doc.Destinatario.CNPJ)
		assert.Equal(t, "CLIENTE LEGIVEL AGORA LTDA", doc.Destinatario.RazaoSocial)
		assert.Equal(t, []string{"300", "200"}, r.rasterCalls())
	})

	t.Run("no fingerprint means a single pass", func(t *testing.T) {
		first := "NFS-e PREFEITURA\nVALOR TOTAL DA NOTA R$ 10,00"

		r := &stubRunner{pages: 1, textByDPI: map[string]string{"300": first}}
		c := NewController(newStubbedExtractor(Config{}, r), extract.NewEngine(0, nil), nil)

		doc, text, err := c.Process(context.Background(), "digitalizado.pdf", pdf, 300)
		require.NoError(t, err)

		assert.Equal(t, first, text)
		assert.Nil(t, doc.Destinatario)
		require.NotNil(t, doc.Valores)
		require.NotNil(t, doc.Valores.ValorTotal)
		assert.InDelta(t, 10.0, *doc.Valores.ValorTotal, 0.0001)
		assert.Equal(t, []string{"300"}, r.rasterCalls())
	})

	t.Run("complete recipient suppresses the retry", func(t *testing.T) {
		first := "PREFEITURA DO RECIFE\n" +
			"TOMADOR DE SERVIÇOS\n" +
			"CLIENTE COMPLETO DO RECIFE LTDA\n" +
			"CNPJ: 11.222.333/0001-44\n" +
			"VALORES"

		r := &stubRunner{pages: 1, textByDPI: map[string]string{"300": first}}
		c := NewController(newStubbedExtractor(Config{}, r), extract.NewEngine(0, nil), nil)

		doc, _, err := c.Process(context.Background(), "digitalizado.pdf", pdf, 300)
		require.NoError(t, err)

		require.NotNil(t, doc.Destinatario)
		assert.Equal(t, "11222333000144", doc.Destinatario.CNPJ)
		assert.Equal(t, []string{"300"}, r.rasterCalls())
	})

	t.Run("failed retry keeps the first pass result", func(t *testing.T) {
		first := "NFS-e PREFEITURA MUNICIPAL\nTOMADOR\nxx rasurado xx"

		// The retry resolution has no registered text, so the second pass
		// comes back empty and fails.
		r := &stubRunner{pages: 1, textByDPI: map[string]string{"300": first}}
		c := NewController(newStubbedExtractor(Config{}, r), extract.NewEngine(0, nil), nil)

		doc, text, err := c.Process(context.Background(), "digitalizado.pdf", pdf, 300)
		require.NoError(t, err)

		assert.Equal(t, first, text)
		assert.Nil(t, doc.Destinatario)
		assert.Equal(t, []string{"300", "200"}, r.rasterCalls())
	})
}
