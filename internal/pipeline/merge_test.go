package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

func TestIsExtractionPoor(t *testing.T) {
	tests := []struct {
		name string
		doc  *fiscal.Document
		want bool
	}{
		{
			name: "nil document",
			doc:  nil,
			want: true,
		},
		{
			name: "no values at all",
			doc:  &fiscal.Document{Emitente: &fiscal.Entity{CNPJ: "11222333000144"}},
			want: true,
		},
		{
			name: "values without a total",
			doc: &fiscal.Document{
				Emitente: &fiscal.Entity{CNPJ: "11222333000144"},
				Valores:  &fiscal.TaxValues{ISS: fiscal.Float(75)},
			},
			want: true,
		},
		{
			name: "total but neither party",
			doc: &fiscal.Document{
				Valores: &fiscal.TaxValues{ValorTotal: fiscal.Float(1500)},
			},
			want: true,
		},
		{
			name: "total and issuer",
			doc: &fiscal.Document{
				Emitente: &fiscal.Entity{CNPJ: "11222333000144"},
				Valores:  &fiscal.TaxValues{ValorTotal: fiscal.Float(1500)},
			},
			want: false,
		},
		{
			name: "total and recipient",
			doc: &fiscal.Document{
				Destinatario: &fiscal.Entity{CNPJ: "98765432000110"},
				Valores:      &fiscal.TaxValues{ValorTotal: fiscal.Float(1500)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExtractionPoor(tt.doc))
		})
	}
}

func TestMergeDocuments(t *testing.T) {
	t.Run("fills only the missing identity fields", func(t *testing.T) {
		target := fiscal.NewDocument("a.pdf")
		target.Numero = "144"
		target.Emitente = &fiscal.Entity{CNPJ: "11222333000144", RazaoSocial: "EXTRAIDO LTDA"}

		source := fiscal.NewDocument("a.pdf")
		source.Numero = "999"
		source.Emitente = &fiscal.Entity{RazaoSocial: "MODELO LTDA"}
		source.Destinatario = &fiscal.Entity{CNPJ: "98765432000110"}

		MergeDocuments(target, source)

		assert.Equal(t, "144", target.Numero)
		assert.Equal(t, "EXTRAIDO LTDA", target.Emitente.RazaoSocial)
		require.NotNil(t, target.Destinatario)
		assert.Equal(t, "98765432000110", target.Destinatario.CNPJ)
	})

	t.Run("takes the whole value block when the target has none", func(t *testing.T) {
		target := fiscal.NewDocument("a.pdf")
		source := fiscal.NewDocument("a.pdf")
		source.Valores = &fiscal.TaxValues{ValorTotal: fiscal.Float(2500), PIS: fiscal.Float(16.25)}

		MergeDocuments(target, source)

		require.NotNil(t, target.Valores)
		assert.Same(t, source.Valores, target.Valores)
	})

	t.Run("total and iss fill gaps, retentions always transfer", func(t *testing.T) {
		target := fiscal.NewDocument("a.pdf")
		target.Valores = &fiscal.TaxValues{
			ValorTotal: fiscal.Float(1500),
			ISS:        fiscal.Float(75),
			PIS:        fiscal.Float(9.75),
			INSS:       fiscal.Float(165),
		}

		source := fiscal.NewDocument("a.pdf")
		source.Valores = &fiscal.TaxValues{
			ValorTotal:   fiscal.Float(9999),
			ISS:          fiscal.Float(1),
			PIS:          fiscal.Float(16.25),
			COFINS:       fiscal.Float(75),
			IR:           fiscal.Float(37.5),
			CSLLRetida:   fiscal.Float(25),
			ValorLiquido: fiscal.Float(1346.25),
		}

		MergeDocuments(target, source)

		assert.InDelta(t, 1500.0, *target.Valores.ValorTotal, 0.0001)
		assert.InDelta(t, 75.0, *target.Valores.ISS, 0.0001)
		assert.InDelta(t, 16.25, *target.Valores.PIS, 0.0001)
		assert.InDelta(t, 75.0, *target.Valores.COFINS, 0.0001)
		assert.InDelta(t, 37.5, *target.Valores.IR, 0.0001)
		assert.InDelta(t, 25.0, *target.Valores.CSLLRetida, 0.0001)
		assert.InDelta(t, 1346.25, *target.Valores.ValorLiquido, 0.0001)
		assert.Nil(t, target.Valores.INSS, "absent on the source clears the slot")
	})

	t.Run("gap fill picks up a missing total", func(t *testing.T) {
		target := fiscal.NewDocument("a.pdf")
		target.Valores = &fiscal.TaxValues{ISS: fiscal.Float(75)}

		source := fiscal.NewDocument("a.pdf")
		source.Valores = &fiscal.TaxValues{ValorTotal: fiscal.Float(2500)}

		MergeDocuments(target, source)

		require.NotNil(t, target.Valores.ValorTotal)
		assert.InDelta(t, 2500.0, *target.Valores.ValorTotal, 0.0001)
		assert.InDelta(t, 75.0, *target.Valores.ISS, 0.0001)
	})

	t.Run("items fill only when the target has none", func(t *testing.T) {
		target := fiscal.NewDocument("a.pdf")
		source := fiscal.NewDocument("a.pdf")
		source.Itens = []fiscal.ServiceItem{{Descricao: "CONSULTORIA", ValorTotal: fiscal.Float(2500)}}

		MergeDocuments(target, source)
		require.Len(t, target.Itens, 1)

		source.Itens = []fiscal.ServiceItem{{Descricao: "OUTRO SERVICO"}}
		MergeDocuments(target, source)
		assert.Equal(t, "CONSULTORIA", target.Itens[0].Descricao)
	})

	t.Run("nil source is a no-op", func(t *testing.T) {
		target := fiscal.NewDocument("a.pdf")
		target.Numero = "144"
		MergeDocuments(target, nil)
		assert.Equal(t, "144", target.Numero)
	})
}
