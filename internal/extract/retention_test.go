package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidatedPISCOFINS(t *testing.T) {
	t.Run("column position selects the value", func(t *testing.T) {
		text := "IRRF,CP,CSLL-Retidos PIS/COFINSRetidos INSSRetido\n130,00 244,72 0,00"
		v, ok := consolidatedPISCOFINS(text)
		require.True(t, ok)
		assert.InDelta(t, 244.72, v, 0.0001)
	})

	t.Run("single line form", func(t *testing.T) {
		v, ok := consolidatedPISCOFINS("PIS/COFINS - RETIDOS: R$ 100,00")
		require.True(t, ok)
		assert.InDelta(t, 100.0, v, 0.0001)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := consolidatedPISCOFINS("PIS RETIDO: R$ 1,00")
		assert.False(t, ok)
	})
}

func TestConsolidatedCSLL(t *testing.T) {
	t.Run("first value of the next line", func(t *testing.T) {
		text := "IRRF,CP,CSLL-Retidos PIS/COFINSRetidos\n130,00 244,72"
		v, ok := consolidatedCSLL(text)
		require.True(t, ok)
		assert.InDelta(t, 130.0, v, 0.0001)
	})

	t.Run("single line form", func(t *testing.T) {
		v, ok := consolidatedCSLL("IRRF,CP,CSLL-Retidos: 55,00")
		require.True(t, ok)
		assert.InDelta(t, 55.0, v, 0.0001)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := consolidatedCSLL("CSLL RETIDA: R$ 1,00")
		assert.False(t, ok)
	})
}

func TestRetentionValue(t *testing.T) {
	t.Run("value below the label within the window", func(t *testing.T) {
		got := retentionValue("PIS/PASEP (R$)\n12,34", pisRetentionRes, pisRetentionProximityRes)
		require.NotNil(t, got)
		assert.InDelta(t, 12.34, *got, 0.0001)
	})

	t.Run("value beyond the window", func(t *testing.T) {
		text := "COFINS (R$)" + strings.Repeat("x", 210) + "\n99,99"
		got := retentionValue(text, cofinsRetentionRes, cofinsRetentionProximityRes)
		assert.Nil(t, got)
	})

	t.Run("zero parses as not found", func(t *testing.T) {
		got := retentionValue("INSS RETIDO: R$ 0,00", inssRetentionRes, inssRetentionProximityRes)
		assert.Nil(t, got)
	})
}

func TestExtractRetentions(t *testing.T) {
	e := NewEngine(0, nil)

	money := func(t *testing.T, got *float64, want float64) {
		t.Helper()
		require.NotNil(t, got)
		assert.InDelta(t, want, *got, 0.0001)
	}

	t.Run("consolidated columns", func(t *testing.T) {
		text := "IRRF,CP,CSLL-Retidos PIS/COFINSRetidos INSSRetido\n130,00 244,72 0,00"
		ret := e.extractRetentions(text)
		money(t, ret.PISRetido, 43.56)
		money(t, ret.COFINSRetido, 201.16)
		money(t, ret.CSLLRetida, 130)
		money(t, ret.INSS, 130)
		assert.Nil(t, ret.IRRF)
		assert.Nil(t, ret.ISSRetido)
	})

	t.Run("federal section scopes the search", func(t *testing.T) {
		text := "PIS RETIDO: R$ 9,99\n" +
			"TRIBUTOS FEDERAIS\n" +
			"PIS RETIDO: R$ 2,00\n" +
			"VALOR TOTAL DA NOTA\n" +
			"ISS RETIDO: R$ 3,00\n" +
			"COFINS RETIDO: R$ 4,00"
		ret := e.extractRetentions(text)
		money(t, ret.PISRetido, 2)
		assert.Nil(t, ret.COFINSRetido)
		assert.Nil(t, ret.CSLLRetida)
		assert.Nil(t, ret.IRRF)
		assert.Nil(t, ret.INSS)
		money(t, ret.ISSRetido, 3)
	})

	t.Run("direct and proximity mixed", func(t *testing.T) {
		text := "PIS/PASEP (R$)\n12,34\nCOFINS RETIDO: R$ 45,00"
		ret := e.extractRetentions(text)
		money(t, ret.PISRetido, 12.34)
		money(t, ret.COFINSRetido, 45)
		assert.Nil(t, ret.CSLLRetida)
		assert.Nil(t, ret.IRRF)
		assert.Nil(t, ret.INSS)
		assert.Nil(t, ret.ISSRetido)
	})
}
