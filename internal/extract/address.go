package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

var logradouroPatterns = []*regexp.Regexp{
	// Multi-line street block bounded by the next registry line.
	regexp.MustCompile(`(?i)((?:RUA|AVENIDA|AV\.?)\s+[A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\,\.\-]+?)(?:\n[^\n]*(?:CNPJ|Inscrição|Telefone)|\z)`),
	// Glued layouts: the full address sits on the line under a combined header.
	regexp.MustCompile(`(?i)Endere[çc]o\s+Munic[íi]pio\s+CEP\n([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\,\s\.\-]+?)(?:\s+[A-ZÀ-Ú][a-zà-ú]+(?:Paulo|Janeiro)?-?[A-Z]{2})`),
	regexp.MustCompile(`(?i)(?:Endere[çc]o|Logradouro)[:\s]*([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\.\,\-]+?)(?:\s*(?:N[°ºo]|Num|,|\n|Bairro|CEP)|\s*\z)`),
	regexp.MustCompile(`(?i)(?:Rua|Avenida|Av\.|Travessa|Alameda)\s+([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\.\-]+?)(?:\s*(?:,|N[°º]|\n)|\s*\z)`),
}

var (
	addressNumeroRe = regexp.MustCompile(`(?i)(?:N[°ºo]|Num(?:ero)?)[:\.\s]*(\d+[A-Z]?)`)
	bairroRe        = regexp.MustCompile(`(?i)Bairro[:\s]*([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\.\-]+?)(?:\s*(?:Munic|Cidade|UF|CEP|\n)|\s*\z)`)
	municipioRe     = regexp.MustCompile(`(?i)(?:Munic[íi]pio|Cidade)[:\s]*([A-ZÀ-Ú][A-ZÀ-Ú\s\-]+?)(?:\s*(?:UF|Estado|CEP|/|\n)|\s*\z)`)
	cepLabeledRe    = regexp.MustCompile(`(?i)CEP[:\s]*(\d{5}-?\d{3})`)
	cepBareRe       = regexp.MustCompile(`\b(\d{5}-\d{3})\b`)
	ufLabeledRe     = regexp.MustCompile(`(?i)(?:UF|Estado)[:\s]*([A-Z]{2})\b`)
)

type ufToken struct {
	code string
	re   *regexp.Regexp
}

// Bare-token fallback scan, in code order so the result is deterministic.
var ufBareTokens = func() []ufToken {
	codes := make([]string, 0, len(constants.BrazilianStates))
	for code := range constants.BrazilianStates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	tokens := make([]ufToken, 0, len(codes))
	for _, code := range codes {
		tokens = append(tokens, ufToken{code, regexp.MustCompile(`\b` + code + `\b`)})
	}
	return tokens
}()

// extractAddress runs the address sub-cascades over an entity section. The
// address only attaches when at least one of street, district, city or
// postal code matched; a bare state code alone is not an address.
func extractAddress(text string) *fiscal.Address {
	addr := &fiscal.Address{}

	for _, re := range logradouroPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := strings.TrimRight(strings.TrimSpace(m[1]), ",")
		if runeLen(val) > 3 {
			addr.Logradouro = truncateRunes(val, 100)
			break
		}
	}

	if m := addressNumeroRe.FindStringSubmatch(text); m != nil {
		addr.Numero = m[1]
	}

	if m := bairroRe.FindStringSubmatch(text); m != nil {
		val := strings.TrimSpace(m[1])
		if runeLen(val) > 2 {
			addr.Bairro = truncateRunes(val, 50)
		}
	}

	if m := municipioRe.FindStringSubmatch(text); m != nil {
		val := strings.TrimSpace(m[1])
		if runeLen(val) > 2 {
			addr.Municipio = truncateRunes(val, 50)
		}
	}

	if m := cepLabeledRe.FindStringSubmatch(text); m != nil {
		addr.CEP = m[1]
	} else if m := cepBareRe.FindStringSubmatch(text); m != nil {
		addr.CEP = m[1]
	}

	if m := ufLabeledRe.FindStringSubmatch(text); m != nil {
		uf := strings.ToUpper(m[1])
		if constants.IsBrazilianState(uf) {
			addr.UF = uf
		}
	}
	if addr.UF == "" {
		for _, t := range ufBareTokens {
			if t.re.MatchString(text) {
				addr.UF = t.code
				break
			}
		}
	}

	if addr.Logradouro == "" && addr.Bairro == "" && addr.Municipio == "" && addr.CEP == "" {
		return nil
	}
	return addr
}
