package extract

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

var numeroSpatialLabels = []string{
	"Número da NFS-e", "Número da Nota", "Nº da Nota",
	"Número do Documento", "Nº do Documento", "DANFE N",
	"NFS-e N", "Nota Fiscal N",
}

var digitRunRe = regexp.MustCompile(`(\d{3,})`)

// Layout-specific number patterns, ordered from the most specific municipal
// layouts down to generic labeled forms. The first capture that survives the
// rejection filters wins. Multi-group patterns are concatenated; a 7-digit
// concatenation starting with 000 is padded back to 8 (truncated leading
// zero).
var numeroLayoutPatterns = []*regexp.Regexp{
	// São Paulo: zero-padded 8-digit number alone on its line.
	regexp.MustCompile(`(?is)(?:\n|^)\s*(00\d{6})\s*(?:\n|$)`),
	// Guarulhos: number directly after the NFS-e mark.
	regexp.MustCompile(`(?is)NFS-e\s+(\d{5,6})`),
	// Barueri: number on its own line a few lines below the label.
	regexp.MustCompile(`(?is)N[úu]mero\s+da\s+Nota[^\n]*\n(?:[^\n]*\n){0,5}\s*(00\d{4,6})\s*$`),
	// Barueri: number after the authentication code on the same line.
	regexp.MustCompile(`(?is)[A-Z0-9]{3,4}[A-Z]?\.\d{4}\.\d{4}\.\d+-[A-Z]\s+(\d{5,8})`),
	regexp.MustCompile(`(?is)S[ée]rie\s+da\s+Nota\s*\n[^\n]*?(\d{6})`),
	// Itapevi: invoice number label preferred over the RPS number.
	regexp.MustCompile(`(?is)N[úu]mero\s+Nota\s+Fiscal[:\s]+(\d{5,8})`),
	regexp.MustCompile(`(?is)Fatura\s+Nro\s+(\d{5,8})`),
	regexp.MustCompile(`(?is)\d{5,6}\s+(\d{5,6})\]`),
	regexp.MustCompile(`(?is)N[úu]mero\s+da\s+Nota\s*\n\s*(\d{5,})`),
	regexp.MustCompile(`(?is)SÃO\s+PAULO[^\d\n]*(\d{5,8})`),
	// Recife at high resolution: full 8-digit number below a garbled label.
	regexp.MustCompile(`(?is)[MN][úu][úu]?mero\s+d[ae]\s+[MN]ota[^\d]*(\d{8})`),
	// Recife at low resolution: number split by a space, groups concatenated.
	regexp.MustCompile(`(?is)PREFEITURA.*?(\d{3,4})\s+(\d{3,5})`),
	regexp.MustCompile(`(?is)[\[\(](\d{6,8})\s*\n.*(?:Data|Emissão)`),
	// Caieiras: thousands-separated number followed by /series.
	regexp.MustCompile(`(?is)N[úu]mero\s+da\s+Nota/?S[ée]rie\s*[:\s]*(\d{1,3}(?:\.\d{3})*)/\w+`),
	// Itatiba: labels glued without spaces.
	regexp.MustCompile(`(?is)N[úu]merodaNFS-?e[^\d]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]merodaNota[^\d]*(\d{5,8})`),
	regexp.MustCompile(`(?is)(?:N[úu]mero|N[º°]|Doc|N\.|NF|Nota|Documento)\s*[:\.]\s*(\d{3,10})`),
	regexp.MustCompile(`(?is)NFS-e\s*n[º°o]\s*[:\s]*(\d{3,})`),
	regexp.MustCompile(`(?is)DANFE\s*N[º°o]\s*[:\s]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[º°o]\s*do\s*documento\s*[:\s]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]mero\s*do\s*Documento\s*[:\s]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]mero\s*Nota\s*Fiscal\s*[:\s]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]mero\s+da\s+Nota[^\d]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]mero da Nota\s*(\d{3,})`),
	regexp.MustCompile(`(?is)Numero da Nota\s*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]mero\s+(?:da\s+)?Nota\s+Fiscal[:\s]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]mero\s+(?:da\s+)?NFS-?e[:\s]*(\d{3,})`),
	regexp.MustCompile(`(?is)N[úu]mero\s+Nota[:\s]*(\d{3,})`),
	// Generic labels require 5+ digits to avoid loose captures.
	regexp.MustCompile(`(?is)N[úuÚU]MERO[^\d]*(\d{5,})`),
	regexp.MustCompile(`(?is)N[úu]mero[:\s]*(\d{5,})`),
	regexp.MustCompile(`(?is)N[º°5oO0][:\s]*(\d{5,})`),
	regexp.MustCompile(`(?is)N\.?[\sº°5oO0][:\s]*(\d{5,})`),
}

// Salvador prints the number bracketed on the header line; low-resolution
// OCR renders its digits as letters.
var salvadorNumeroRe = regexp.MustCompile(`(?i)SALVADOR[^\n]*?[\[\(]([moOnOs0-9]{6,10})[\s\?\]]`)

var rpsNumeroRe = regexp.MustCompile(`(?i)RPS\s*N[º°]?\s*(\d{1,6})`)

var filenameNumeroPatterns = []*regexp.Regexp{
	// Number followed by an underscore-joined date, e.g. "144_09122025".
	regexp.MustCompile(`(?i)[\s\-_](\d{3,6})_\d{6,8}(?:$|\s)`),
	regexp.MustCompile(`(?i)(\d{3,6})_\d{6,8}`),
	regexp.MustCompile(`(?i)(?:NF|Nota|NFS-?e)[_\-\s]*(\d{3,})`),
	regexp.MustCompile(`(?i)-\s*(\d{3,6})_`),
	regexp.MustCompile(`(?i)(\d{3,6})_`),
	regexp.MustCompile(`(?i)^(\d{3,6})[\s_\-]`),
}

// rejectNumero applies the shared size and shape filters: access keys (44),
// tax IDs (14), overlong runs, bare calendar years, short runs and
// date-shaped values are never document numbers.
func rejectNumero(num string) bool {
	switch {
	case len(num) == 44, len(num) == 14, len(num) > 10, len(num) < 3:
		return true
	case len(num) == 4 && strings.HasPrefix(num, "20"):
		return true
	}
	return looksLikeDate(num)
}

// extractNumero resolves the document number from the decoded text: spatial
// label proximity first, then the layout pattern list, then the Salvador
// letter remap, and finally the RPS number as a flagged last resort.
func (e *Engine) extractNumero(text string, words []Word) (string, bool) {
	return first(
		func() (string, bool) { return numeroNearLabel(words) },
		func() (string, bool) { return numeroFromLayout(text) },
		func() (string, bool) { return numeroFromSalvador(text) },
		func() (string, bool) { return numeroFromRPS(text) },
	)
}

func numeroNearLabel(words []Word) (string, bool) {
	raw, ok := nearest(words, locate{labels: numeroSpatialLabels, pattern: digitRunRe})
	if !ok {
		return "", false
	}
	m := digitRunRe.FindStringSubmatch(raw)
	if m == nil || looksLikeDate(m[1]) {
		return "", false
	}
	return m[1], true
}

func numeroFromLayout(text string) (string, bool) {
	for _, re := range numeroLayoutPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var num string
		if len(m) > 2 {
			var parts []string
			for _, g := range m[1:] {
				if g != "" {
					parts = append(parts, g)
				}
			}
			num = strings.Join(parts, "")
			if len(num) == 7 && strings.HasPrefix(num, "000") {
				num = "0" + num
			}
		} else {
			num = strings.TrimSpace(m[1])
		}
		num = strings.ReplaceAll(num, ".", "")
		if rejectNumero(num) {
			continue
		}
		return num, true
	}
	return "", false
}

func numeroFromSalvador(text string) (string, bool) {
	m := salvadorNumeroRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	num := strings.NewReplacer(
		"o", "0", "O", "0",
		"n", "0", "N", "0",
		"m", "0", "M", "0",
		"s", "8", "S", "8",
	).Replace(m[1])
	if !allDigits(num) {
		num = strings.NewReplacer("s", "3", "S", "3").Replace(num)
	}
	if allDigits(num) && len(num) >= 6 {
		return num, true
	}
	return "", false
}

func numeroFromRPS(text string) (string, bool) {
	m := rpsNumeroRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return "RPS-" + m[1], true
}

// numeroFromFilename scans the base filename for a plausible number. The
// layout filters apply, plus two filename-specific ones: a zero-led 8-digit
// run reads as a DDMMYYYY date and a bare four-digit calendar year between
// 2020 and nowYear+1 is the period, not the number.
func numeroFromFilename(filename string, nowYear int) (string, bool) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, re := range filenameNumeroPatterns {
		for _, m := range re.FindAllStringSubmatch(base, -1) {
			num := strings.TrimSpace(m[1])
			switch {
			case len(num) == 44, len(num) == 14, len(num) > 10, len(num) < 3:
				continue
			case len(num) == 8 && strings.HasPrefix(num, "0"):
				continue
			}
			if len(num) == 4 {
				if y, err := strconv.Atoi(num); err == nil && num[0] != '0' && y >= 2020 && y <= nowYear+1 {
					continue
				}
			}
			if looksLikeDate(num) {
				continue
			}
			return num, true
		}
	}
	return "", false
}

var seriePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)S[ée]rie[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)S[ée]rie\s*(\d+)`),
}

func extractSerie(text string) (string, bool) {
	for _, re := range seriePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

var (
	chaveLabelRe  = regexp.MustCompile(`(?i)(?:Chave\s+(?:de\s+)?Acesso|Chave\s+NFe)[:\s]*([\d\s\.]{44,60})`)
	chaveBareRe   = regexp.MustCompile(`\b(\d{44})\b`)
	chaveBlocksRe = regexp.MustCompile(`(\d{4}(?:[\s\.]\d{4}){10})`)
)

// extractChave resolves the 44-digit access key: a labeled block stripped of
// separators, a bare 44-digit run, or eleven 4-digit groups.
func extractChave(text string) (string, bool) {
	return first(
		func() (string, bool) {
			m := chaveLabelRe.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			digits := fiscal.DigitsOnly(m[1])
			return digits, len(digits) == 44
		},
		func() (string, bool) {
			m := chaveBareRe.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			return m[1], true
		},
		func() (string, bool) {
			m := chaveBlocksRe.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			digits := fiscal.DigitsOnly(m[1])
			return digits, len(digits) == 44
		},
	)
}
