package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// retentions holds the six withheld-at-source amounts of a service invoice.
// Nil means the amount was not found, and the caller copies the whole set
// onto the document, clearing stale slots.
type retentions struct {
	PISRetido    *float64
	COFINSRetido *float64
	CSLLRetida   *float64
	IRRF         *float64
	INSS         *float64
	ISSRetido    *float64
}

// tribSectionRe isolates the federal-withholding block of a service invoice
// so loose tax labels elsewhere on the page cannot shadow it. The label is
// matched loosely because OCR tends to mangle the word between TRIBUT and
// FEDERAL.
var tribSectionRe = regexp.MustCompile(`(?is)(TRIBUT[^\n]{0,20}FEDERAL.*?)(?:VALOR\s+TOTAL|DISCRIMINA|TOTAIS|INFORMA[ÇC]|\z)`)

// extractRetentions pulls the withheld amounts. Consolidated PIS/COFINS is
// tried first since layouts that consolidate never repeat the individual
// values, then each tax individually inside the federal section (or the full
// text when the section is absent). ISS withholding lives outside that
// section, so it always searches the whole document.
func (e *Engine) extractRetentions(text string) retentions {
	var ret retentions

	searchText := text
	if m := tribSectionRe.FindStringSubmatch(text); m != nil {
		searchText = m[1]
	}

	if v, ok := consolidatedPISCOFINS(text); ok {
		ret.PISRetido = fiscal.Float(round2(v * 0.178))
		ret.COFINSRetido = fiscal.Float(round2(v * 0.822))
	}

	if ret.PISRetido == nil {
		ret.PISRetido = retentionValue(searchText, pisRetentionRes, pisRetentionProximityRes)
	}
	if ret.COFINSRetido == nil {
		ret.COFINSRetido = retentionValue(searchText, cofinsRetentionRes, cofinsRetentionProximityRes)
	}
	ret.CSLLRetida = retentionValue(searchText, csllRetentionRes, csllRetentionProximityRes)
	ret.IRRF = retentionValue(searchText, irrfRetentionRes, irrfRetentionProximityRes)
	ret.INSS = retentionValue(searchText, inssRetentionRes, inssRetentionProximityRes)
	ret.ISSRetido = retentionValue(text, issRetentionRes, issRetentionProximityRes)

	if ret.CSLLRetida == nil {
		if v, ok := consolidatedCSLL(text); ok {
			ret.CSLLRetida = fiscal.Float(v)
		}
	}
	return ret
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Direct label-value patterns per tax. PIS carries the optional /PASEP
// suffix, IRRF matches its bare acronym, ISS also accepts "a reter".
var (
	pisRetentionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)PIS\s*(?:/PASEP)?\s+RETID[OA]\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)PISRetid[oa]\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)RETEN[ÇC][ÃA]O\s+(?:DE\s+)?PIS\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
	cofinsRetentionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)COFINS\s+RETID[OA]\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)COFINSRetid[oa]\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)RETEN[ÇC][ÃA]O\s+(?:DE\s+)?COFINS\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
	csllRetentionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)CSLL\s+RETID[OA]\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)CSLLRetid[oa]\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)RETEN[ÇC][ÃA]O\s+(?:DE\s+)?CSLL\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
	irrfRetentionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)IRRF\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)IR\s+RETIDO\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
	inssRetentionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)INSS\s+RETIDO\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)INSSRetido\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)RETEN[ÇC][ÃA]O\s+(?:DE\s+)?INSS\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
	issRetentionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ISS\s+RETIDO\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)ISS\s+A\s+RETER\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)RETEN[ÇC][ÃA]O\s+(?:DE\s+)?ISS(?:QN)?\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
)

// Proximity labels per tax: when the value sits on a following line (tabular
// layouts) the label match anchors a 200-char forward window.
var (
	pisRetentionProximityRes    = retentionProximityRes("PIS", true)
	cofinsRetentionProximityRes = retentionProximityRes("COFINS", false)
	csllRetentionProximityRes   = retentionProximityRes("CSLL", false)
	irrfRetentionProximityRes   = retentionProximityRes("IRRF", false)
	inssRetentionProximityRes   = retentionProximityRes("INSS", false)
	issRetentionProximityRes    = retentionProximityRes("ISS", false)
)

func retentionProximityRes(tax string, pasep bool) []*regexp.Regexp {
	suffix := ""
	if pasep {
		suffix = `(?:/PASEP)?`
	}
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + tax + `\s*` + suffix + `\s*[\(\[]?R\$[\)\]]?`),
		regexp.MustCompile(`(?i)` + tax + `\s+RETID[OA]`),
		regexp.MustCompile(`(?i)` + tax + `Retid[oa]`),
	}
}

const retentionWindow = 200

var retentionTokenRe = regexp.MustCompile(`R?\$?\s*([\d\.]+,\d{2})`)

// retentionValue tries the direct patterns, then the proximity window after
// each label form. Zero parses count as not found.
func retentionValue(text string, direct, proximity []*regexp.Regexp) *float64 {
	for _, re := range direct {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, ok := ParseMoney(m[1]); ok && v > 0 {
				return fiscal.Float(v)
			}
		}
	}
	for _, re := range proximity {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		end := loc[1] + retentionWindow
		if end > len(text) {
			end = len(text)
		}
		if m := retentionTokenRe.FindStringSubmatch(text[loc[1]:end]); m != nil {
			if v, ok := ParseMoney(m[1]); ok && v > 0 {
				return fiscal.Float(v)
			}
		}
	}
	return nil
}

// Consolidated PIS/COFINS: some layouts print one combined withholding. The
// label line lists columns ("IRRF,CP,CSLL-Retidos PIS/COFINSRetidos ...") and
// the values sit on the next line, so the column index of the label selects
// the value.
var (
	pisCofinsLabelRe    = regexp.MustCompile(`(?i)PIS/COFINS\s*Retid[OAoa]s?`)
	retidLabelRe        = regexp.MustCompile(`(?i)Retid[OAoa]s?`)
	consolidatedPCFalls = []*regexp.Regexp{
		regexp.MustCompile(`(?i)PIS/COFINS\s*-?\s*RETID[OA]S?\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)PIS/COFINSRetid[oa]s?\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)Reten[çc][ãa]o\s*do\s*PIS/COFINS\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
)

func consolidatedPISCOFINS(text string) (float64, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		loc := pisCofinsLabelRe.FindStringIndex(line)
		if loc == nil {
			continue
		}
		position := len(retidLabelRe.FindAllString(line[:loc[0]], -1))
		if i+1 >= len(lines) {
			continue
		}
		values := retentionTokenRe.FindAllStringSubmatch(lines[i+1], -1)
		if position >= len(values) {
			continue
		}
		if v, ok := ParseMoney(values[position][1]); ok && v > 0 {
			return v, true
		}
	}
	for _, re := range consolidatedPCFalls {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, ok := ParseMoney(m[1]); ok && v > 0 {
				return v, true
			}
		}
	}
	return 0, false
}

// Consolidated IRRF,CP,CSLL: that label is always the first column, so the
// first value of the next line is the CSLL amount.
var (
	irrfCsllLabelRe = regexp.MustCompile(`(?i)IRRF\s*,\s*CP\s*,\s*CSLL\s*-?\s*Retid[OAoa]s?`)
	irrfCsllFalls   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)IRRF\s*,\s*CP\s*,\s*CSLL\s*-?\s*RETID[OA]S?\s*[:\s]*R?\$?\s*([\d\.,]+)`),
		regexp.MustCompile(`(?i)IRRF,CP,CSLL-?Retid[oa]s?\s*[:\s]*R?\$?\s*([\d\.,]+)`),
	}
)

func consolidatedCSLL(text string) (float64, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !irrfCsllLabelRe.MatchString(line) {
			continue
		}
		if i+1 >= len(lines) {
			continue
		}
		values := retentionTokenRe.FindAllStringSubmatch(lines[i+1], -1)
		if len(values) == 0 {
			continue
		}
		if v, ok := ParseMoney(values[0][1]); ok && v > 0 {
			return v, true
		}
	}
	for _, re := range irrfCsllFalls {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, ok := ParseMoney(m[1]); ok && v > 0 {
				return v, true
			}
		}
	}
	return 0, false
}
