package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dayMonthYear = `(\d{2})[/\-\.](\d{2})[/\-\.](\d{4})`

var bareDateRe = regexp.MustCompile(dayMonthYear)

func labelDatePatterns(labels []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(labels))
	for _, l := range labels {
		res = append(res, regexp.MustCompile(`(?i)`+l+`[:\s]*`+dayMonthYear))
	}
	return res
}

var (
	emissaoDatePatterns = labelDatePatterns([]string{
		`Data\s+e\s+Hora\s+(?:de\s+)?Emiss[ãa]o`,
		`Data\s+e\s+Hora\s+(?:da\s+)?emiss[ãa]o\s+(?:da\s+)?NFS-?e`,
		`DATA\s+DE\s+EMISS[ÃA]O`,
		`Emitida\s+em`,
		`Data\s+do\s+documento`,
		`Data\s+Emiss[ãa]o`,
		`Emiss[ãa]o`,
		`Dt\.?\s*Emiss`,
		`Data\s+da\s+Emiss[ãa]o`,
	})
	saidaDatePatterns = labelDatePatterns([]string{
		`Data\s+(?:de\s+)?Sa[ií]da`,
		`Sa[ií]da[/\\]?Entrada`,
		`Data\s+E/S`,
		`Data\s+Entrada`,
	})
	competenciaDatePatterns = labelDatePatterns([]string{
		`(?:Data\s+(?:de\s+)?)?Compet[êe]ncia`,
		`M[êe]s\s+Refer[êe]ncia`,
	})
)

// calendarDate validates the captured groups against the given year window
// and the calendar itself, returning the DD/MM/YYYY display form.
func calendarDate(dayS, monthS, yearS string, minYear, maxYear int) (string, bool) {
	day, _ := strconv.Atoi(dayS)
	month, _ := strconv.Atoi(monthS)
	year, _ := strconv.Atoi(yearS)
	if day < 1 || day > 31 || month < 1 || month > 12 || year < minYear || year > maxYear {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return "", false
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year), true
}

func dateNearLabel(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if d, ok := calendarDate(m[1], m[2], m[3], 1900, 2100); ok {
			return d, true
		}
	}
	return "", false
}

// extractDataEmissao resolves the issue date header-first: a labeled date in
// the first 20 lines, then any date on a short line among the first 10
// (restricted to years 2000-2030), then a labeled date anywhere.
func extractDataEmissao(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	headerEnd := len(lines)
	if headerEnd > 20 {
		headerEnd = 20
	}
	header := strings.Join(lines[:headerEnd], "\n")

	return first(
		func() (string, bool) { return dateNearLabel(header, emissaoDatePatterns) },
		func() (string, bool) {
			n := len(lines)
			if n > 10 {
				n = 10
			}
			for _, line := range lines[:n] {
				if runeLen(strings.TrimSpace(line)) >= 100 {
					continue
				}
				m := bareDateRe.FindStringSubmatch(line)
				if m == nil {
					continue
				}
				if d, ok := calendarDate(m[1], m[2], m[3], 2000, 2030); ok {
					return d, true
				}
			}
			return "", false
		},
		func() (string, bool) { return dateNearLabel(text, emissaoDatePatterns) },
	)
}

func extractDataSaidaEntrada(text string) (string, bool) {
	return dateNearLabel(text, saidaDatePatterns)
}

func extractDataCompetencia(text string) (string, bool) {
	return dateNearLabel(text, competenciaDatePatterns)
}
