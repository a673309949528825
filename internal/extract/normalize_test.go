package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"thousands and decimal comma", "1.234,56", 1234.56, true},
		{"currency prefix", "R$ 150,00", 150.00, true},
		{"dot as decimal mark", "530.00", 530.00, true},
		{"comma only", "98,5", 98.5, true},
		{"plain integer", "1200", 1200, true},
		{"multiple thousand groups", "1.234.567,89", 1234567.89, true},
		{"captured zero", "0,00", 0, true},
		{"internal spaces", "1 234,50", 1234.50, true},
		{"empty", "", 0, false},
		{"garbage", "abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMoney(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

func TestLooksLikeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"ddmmyyyy", "15012024", true},
		{"single digit day", "1012024", true},
		{"slash separators", "15/01/2024", true},
		{"dot separators", "15.01.2024", true},
		{"day out of range", "32012024", false},
		{"month out of range", "15132024", false},
		{"year above window", "15013024", false},
		{"year below window", "15011999", false},
		{"zero day not a date", "00012345", false},
		{"bare year", "2024", false},
		{"six digits", "123456", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeDate(tt.in))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "ÁÉÍ", truncateRunes("ÁÉÍÓÚ", 3))
	assert.Equal(t, "abc", truncateRunes("abc", 10))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "primeira", firstLine("primeira\nsegunda"))
	assert.Equal(t, "sem quebra", firstLine("sem quebra"))
}
