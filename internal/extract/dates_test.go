package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDate(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year string
		minYear, maxYear int
		want             string
		ok               bool
	}{
		{"leap day on a leap year", "29", "02", "2024", 1900, 2100, "29/02/2024", true},
		{"leap day on a common year", "29", "02", "2023", 1900, 2100, "", false},
		{"single digit groups are padded", "5", "3", "2024", 1900, 2100, "05/03/2024", true},
		{"year below window", "01", "01", "1899", 1900, 2100, "", false},
		{"year above window", "01", "01", "2101", 1900, 2100, "", false},
		{"day zero", "00", "12", "2024", 1900, 2100, "", false},
		{"month thirteen", "15", "13", "2024", 1900, 2100, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calendarDate(tt.day, tt.month, tt.year, tt.minYear, tt.maxYear)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDataEmissao(t *testing.T) {
	long := strings.Repeat("A", 100) + " 15/05/2022"
	footer := []string{long}
	for i := 0; i < 22; i++ {
		footer = append(footer, "RODAPE")
	}
	footer = append(footer, "Emitida em: 20/07/2023")

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "labeled date in the header",
			text: "DATA DE EMISSÃO: 15/01/2024\nPREFEITURA MUNICIPAL",
			want: "15/01/2024",
			ok:   true,
		},
		{
			name: "bare date on a short early line",
			text: "NFS-e PREFEITURA\n10/03/2023\nEMITENTE ACME",
			want: "10/03/2023",
			ok:   true,
		},
		{
			name: "labeled header date beats earlier bare date",
			text: "05/05/2020\nData Emissão: 10/10/2021",
			want: "10/10/2021",
			ok:   true,
		},
		{
			name: "invalid calendar date falls to the next line",
			text: "Emissão: 31/02/2024\n01/03/2024",
			want: "01/03/2024",
			ok:   true,
		},
		{
			name: "long line skipped then labeled date in the footer",
			text: strings.Join(footer, "\n"),
			want: "20/07/2023",
			ok:   true,
		},
		{
			name: "bare date outside the year window",
			text: "01/01/1999",
			ok:   false,
		},
		{
			name: "no date",
			text: "SEM DATA NO DOCUMENTO",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDataEmissao(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDataSaidaEntrada(t *testing.T) {
	got, ok := extractDataSaidaEntrada("Saída/Entrada: 16/01/2024")
	assert.True(t, ok)
	assert.Equal(t, "16/01/2024", got)

	got, ok = extractDataSaidaEntrada("Data de Saída 17/02/2024")
	assert.True(t, ok)
	assert.Equal(t, "17/02/2024", got)

	_, ok = extractDataSaidaEntrada("SEM SAIDA")
	assert.False(t, ok)
}

func TestExtractDataCompetencia(t *testing.T) {
	got, ok := extractDataCompetencia("Competência: 01/01/2024")
	assert.True(t, ok)
	assert.Equal(t, "01/01/2024", got)

	got, ok = extractDataCompetencia("Mês Referência 01/12/2023")
	assert.True(t, ok)
	assert.Equal(t, "01/12/2023", got)

	_, ok = extractDataCompetencia("SEM COMPETENCIA")
	assert.False(t, ok)
}
