package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func word(page int, text string, left, top, right, bottom float64) Word {
	return Word{Page: page, Text: text, Left: left, Top: top, Right: right, Bottom: bottom}
}

func TestNearest(t *testing.T) {
	money := regexp.MustCompile(`[\d\.]+,\d{2}`)
	digits := regexp.MustCompile(`\d{3,}`)
	upperRun := regexp.MustCompile(`[A-Z]+(?:\s[A-Z]+)*`)

	tests := []struct {
		name  string
		words []Word
		q     locate
		want  string
		ok    bool
	}{
		{
			name: "value on the same line",
			words: []Word{
				word(1, "VALOR TOTAL:", 10, 100, 80, 110),
				word(1, "R$", 90, 100, 100, 110),
				word(1, "1.234,56", 105, 100, 150, 110),
			},
			q:    locate{labels: []string{"VALOR TOTAL"}, pattern: money},
			want: "1.234,56",
			ok:   true,
		},
		{
			name: "closest anchor wins across lines",
			words: []Word{
				word(1, "TOTAL", 10, 100, 50, 110),
				word(1, "999,99", 200, 100, 240, 110),
				word(1, "TOTAL", 10, 200, 50, 210),
				word(1, "150,00", 60, 200, 100, 210),
			},
			q:    locate{labels: []string{"TOTAL"}, pattern: money},
			want: "150,00",
			ok:   true,
		},
		{
			name: "value on the line below",
			words: []Word{
				word(1, "Número da Nota", 10, 100, 90, 110),
				word(1, "000123", 12, 120, 60, 130),
			},
			q:    locate{labels: []string{"número da nota"}, pattern: digits},
			want: "000123",
			ok:   true,
		},
		{
			name: "date shaped value to the right is skipped",
			words: []Word{
				word(1, "Número:", 10, 100, 60, 110),
				word(1, "20240115", 70, 100, 130, 110),
				word(1, "123456", 15, 125, 70, 135),
			},
			q:    locate{labels: []string{"Número"}, pattern: digits},
			want: "123456",
			ok:   true,
		},
		{
			name: "values with slashes are skipped",
			words: []Word{
				word(1, "DATA", 10, 100, 40, 110),
				word(1, "15/01/2024", 50, 100, 120, 110),
				word(1, "ABCDEF", 130, 100, 180, 110),
			},
			q:    locate{labels: []string{"DATA"}, pattern: regexp.MustCompile(`\S+`)},
			want: "ABCDEF",
			ok:   true,
		},
		{
			name: "horizontal value preferred without forceVertical",
			words: []Word{
				word(1, "Razão Social", 10, 100, 80, 110),
				word(1, "LATERAL", 82, 100, 140, 110),
				word(1, "EMPRESA", 10, 115, 60, 125),
				word(1, "MODELO", 65, 115, 110, 125),
				word(1, "LTDA", 115, 115, 140, 125),
			},
			q:    locate{labels: []string{"Razão Social"}, pattern: upperRun},
			want: "LATERAL",
			ok:   true,
		},
		{
			name: "forceVertical ignores the same line",
			words: []Word{
				word(1, "Razão Social", 10, 100, 80, 110),
				word(1, "LATERAL", 82, 100, 140, 110),
				word(1, "EMPRESA", 10, 115, 60, 125),
				word(1, "MODELO", 65, 115, 110, 125),
				word(1, "LTDA", 115, 115, 140, 125),
			},
			q:    locate{labels: []string{"Razão Social"}, pattern: upperRun, forceVertical: true},
			want: "EMPRESA MODELO LTDA",
			ok:   true,
		},
		{
			name: "words on another page are ignored",
			words: []Word{
				word(1, "TOTAL", 10, 100, 50, 110),
				word(2, "150,00", 60, 100, 100, 110),
			},
			q:  locate{labels: []string{"TOTAL"}, pattern: money},
			ok: false,
		},
		{
			name: "label absent",
			words: []Word{
				word(1, "SUBTOTAL", 10, 100, 50, 110),
				word(1, "150,00", 60, 100, 100, 110),
			},
			q:  locate{labels: []string{"CHAVE"}, pattern: money},
			ok: false,
		},
		{
			name: "no words",
			q:    locate{labels: []string{"TOTAL"}, pattern: money},
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nearest(tt.words, tt.q)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
