package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssDevidoGeneric(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"plain owed value", "VALOR DO ISS 30,00", 30, true},
		{"issqn spelling", "VALOR DO ISSQN 12,00", 12, true},
		{"retained match skipped then owed found", "VALOR DO ISS RETIDO 10,00 VALOR DO ISS 30,00", 30, true},
		{"retido right before the label", "RETIDO VALOR DO ISS 10,00", 0, false},
		{"below the floor", "VALOR DO ISS 0,50", 0, false},
		{"no iss", "SEM IMPOSTO", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := issDevidoGeneric(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestMoneyNear(t *testing.T) {
	words := []Word{
		word(1, "TOTAL", 10, 100, 50, 110),
		word(1, "R$", 60, 100, 75, 110),
		word(1, "150,00", 80, 100, 120, 110),
	}
	got, ok := moneyNear(words, []string{"TOTAL"})
	assert.True(t, ok)
	assert.InDelta(t, 150.0, got, 0.0001)

	zero := []Word{
		word(1, "TOTAL", 10, 100, 50, 110),
		word(1, "R$", 60, 100, 75, 110),
		word(1, "0,00", 80, 100, 120, 110),
	}
	_, ok = moneyNear(zero, []string{"TOTAL"})
	assert.False(t, ok)
}

func TestExtractValores(t *testing.T) {
	e := NewEngine(0, nil)

	money := func(t *testing.T, got *float64, want float64) {
		t.Helper()
		require.NotNil(t, got)
		assert.InDelta(t, want, *got, 0.0001)
	}

	t.Run("total copied to services", func(t *testing.T) {
		v := e.extractValores("VALOR TOTAL DA NOTA R$ 1.000,00", nil)
		money(t, v.ValorTotal, 1000)
		money(t, v.ValorServicos, 1000)
	})

	t.Run("services copied to total", func(t *testing.T) {
		v := e.extractValores("VALOR DOS SERVIÇOS: 800,00", nil)
		money(t, v.ValorServicos, 800)
		money(t, v.ValorTotal, 800)
	})

	t.Run("calculation base fills services", func(t *testing.T) {
		v := e.extractValores("BASE DE CÁLCULO: 530,00", nil)
		money(t, v.ValorServicos, 530)
		money(t, v.ValorTotal, 530)
	})

	t.Run("iss owed via the generic form", func(t *testing.T) {
		v := e.extractValores("VALOR DO ISS R$ 75,00", nil)
		money(t, v.ISS, 75)
		assert.Nil(t, v.ISSRetido)
	})

	t.Run("retained iss never fills the owed slot", func(t *testing.T) {
		v := e.extractValores("VALOR DO ISS RETIDO R$ 80,00", nil)
		assert.Nil(t, v.ISS)
		money(t, v.ISSRetido, 80)
	})

	t.Run("iss below the floor", func(t *testing.T) {
		v := e.extractValores("ISS DEVIDO R$ 0,50", nil)
		assert.Nil(t, v.ISS)
	})

	t.Run("inss below the floor", func(t *testing.T) {
		v := e.extractValores("INSS RETIDO R$ 5,00", nil)
		assert.Nil(t, v.INSS)
	})

	t.Run("inss above the floor", func(t *testing.T) {
		v := e.extractValores("INSS RETIDO R$ 50,00", nil)
		money(t, v.INSS, 50)
	})

	t.Run("irrf with ocr damaged currency mark", func(t *testing.T) {
		v := e.extractValores("IRRF (1,5%) RS 22,50", nil)
		money(t, v.IR, 22.5)
	})

	t.Run("desconto", func(t *testing.T) {
		v := e.extractValores("(-) DESCONTO INCONDICIONADO R$ 10,00", nil)
		money(t, v.Desconto, 10)
	})

	t.Run("total retentions", func(t *testing.T) {
		v := e.extractValores("TOTAL RETENÇÕES R$ 332,25", nil)
		money(t, v.OutrasRetencoes, 332.25)
	})

	t.Run("icms and ipi", func(t *testing.T) {
		v := e.extractValores("VALOR DO ICMS R$ 4.500,00\nVALOR DO IPI R$ 1.250,00", nil)
		money(t, v.ICMS, 4500)
		money(t, v.IPI, 1250)
	})

	t.Run("retained federal taxes", func(t *testing.T) {
		v := e.extractValores("PIS RETIDO R$ 9,75\nCOFINS RETIDO R$ 45,00\nCSLL RETIDA R$ 15,00", nil)
		money(t, v.PISRetido, 9.75)
		money(t, v.COFINSRetido, 45)
		money(t, v.CSLLRetida, 15)
	})

	t.Run("spatial total with regex services", func(t *testing.T) {
		words := []Word{
			word(1, "Valor Total", 10, 100, 70, 110),
			word(1, "R$", 75, 100, 85, 110),
			word(1, "1.000,00", 90, 100, 130, 110),
		}
		v := e.extractValores("VALOR DOS SERVIÇOS: 800,00", words)
		money(t, v.ValorTotal, 1000)
		money(t, v.ValorServicos, 800)
	})
}
