package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeroFromLayout(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "zero padded number alone on its line",
			text: "NOTA FISCAL\n00012345\nEMITIDA",
			want: "00012345",
			ok:   true,
		},
		{
			name: "number after the NFS-e mark",
			text: "NFS-e 123456 PREFEITURA DE GUARULHOS",
			want: "123456",
			ok:   true,
		},
		{
			name: "split number groups are concatenated",
			text: "PREFEITURA DO RECIFE\nNOTA DE SERVIÇOS\n0001 2345",
			want: "00012345",
			ok:   true,
		},
		{
			name: "seven digit concatenation is padded",
			text: "PREFEITURA DO RECIFE\n000 1234",
			want: "00001234",
			ok:   true,
		},
		{
			name: "generic labeled number",
			text: "Nota: 789123",
			want: "789123",
			ok:   true,
		},
		{
			name: "date shaped capture is rejected",
			text: "Nº: 15012024",
			ok:   false,
		},
		{
			name: "no usable number",
			text: "TEXTO SEM NUMERO UTIL",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numeroFromLayout(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumeroFromSalvador(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"letters remapped to digits", "SALVADOR - CAPITAL [oon12345 ]", "00012345", true},
		{"short bracket run", "SALVADOR [oos123]", "008123", true},
		{"no bracketed number", "SALVADOR SEM NUMERO", "", false},
		{"run below minimum length", "SALVADOR [oo123]", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numeroFromSalvador(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumeroFromRPS(t *testing.T) {
	got, ok := numeroFromRPS("RPS Nº 42 SERIE UNICA")
	assert.True(t, ok)
	assert.Equal(t, "RPS-42", got)

	_, ok = numeroFromRPS("SEM RECIBO PROVISORIO")
	assert.False(t, ok)
}

func TestNumeroNearLabel(t *testing.T) {
	words := []Word{
		word(1, "Número da Nota", 10, 100, 90, 110),
		word(1, "000123", 12, 120, 60, 130),
	}
	got, ok := numeroNearLabel(words)
	assert.True(t, ok)
	assert.Equal(t, "000123", got)

	dated := []Word{
		word(1, "Número da Nota", 10, 100, 90, 110),
		word(1, "15012024", 12, 120, 60, 130),
	}
	_, ok = numeroNearLabel(dated)
	assert.False(t, ok)
}

func TestRejectNumero(t *testing.T) {
	tests := []struct {
		num  string
		want bool
	}{
		{"12345678901234567890123456789012345678901234", true},
		{"12345678000190", true},
		{"12345678901", true},
		{"12", true},
		{"2024", true},
		{"1024", false},
		{"15012024", true},
		{"123456", false},
	}
	for _, tt := range tests {
		t.Run(tt.num, func(t *testing.T) {
			assert.Equal(t, tt.want, rejectNumero(tt.num))
		})
	}
}

func TestNumeroFromFilename(t *testing.T) {
	const nowYear = 2025

	tests := []struct {
		name     string
		filename string
		want     string
		ok       bool
	}{
		{"number before underscore date", "NF 144_09122025.pdf", "144", true},
		{"leading zeros kept", "0001234_15012024.pdf", "001234", true},
		{"bare calendar year skipped", "Relatorio_2024_001234.pdf", "", false},
		{"four digits outside year window", "Nota_2031_15012024.pdf", "2031", true},
		{"zero led eight digit run is a date", "NF_07122024.pdf", "", false},
		{"date shaped run skipped", "NF 15012024.pdf", "", false},
		{"number after the NF mark", "NF-98765 Empresa.pdf", "98765", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numeroFromFilename(tt.filename, nowYear)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSerie(t *testing.T) {
	got, ok := extractSerie("Série: 1")
	assert.True(t, ok)
	assert.Equal(t, "1", got)

	got, ok = extractSerie("Serie5")
	assert.True(t, ok)
	assert.Equal(t, "5", got)

	_, ok = extractSerie("SEM SERIE")
	assert.False(t, ok)
}

func TestExtractChave(t *testing.T) {
	const chave = "35240112345678000190550010000551231000123456"

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "labeled key with spaced groups",
			text: "Chave de Acesso: 3524 0112 3456 7800 0190 5500 1000 0551 2310 0012 3456\nPROTOCOLO",
			want: chave,
			ok:   true,
		},
		{
			name: "bare 44 digit run",
			text: "AUTORIZAÇÃO " + chave + " CONCEDIDA",
			want: chave,
			ok:   true,
		},
		{
			name: "dot separated blocks",
			text: "3524.0112.3456.7800.0190.5500.1000.0551.2310.0012.3456",
			want: chave,
			ok:   true,
		},
		{
			name: "no key",
			text: "SEM CHAVE AQUI",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractChave(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
