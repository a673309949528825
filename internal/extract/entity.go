package extract

import (
	"regexp"
	"strings"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

var cnpjAnywhereRe = regexp.MustCompile(`\b\d{2}\.?\d{3}\.?\d{3}/?\.?\d{4}-?\d{2}\b`)

// findAllCNPJs returns every 14-digit tax ID found in the text, normalized
// to bare digits, in order of appearance.
func findAllCNPJs(text string) []string {
	var out []string
	for _, m := range cnpjAnywhereRe.FindAllString(text, -1) {
		digits := fiscal.DigitsOnly(m)
		if len(digits) == 14 {
			out = append(out, digits)
		}
	}
	return out
}

var nameArtifacts = []string{"E-MAIL", "CNPJ", "RAZÃO SOCIAL", "RAZAO SOCIAL", "NOME/", "/NOME", "MOMEI"}

// validEntityName rejects captures that are label debris rather than a
// company name: too short, purely numeric, or carrying label fragments.
func validEntityName(name string) bool {
	if runeLen(name) < 4 || allDigits(name) {
		return false
	}
	upper := strings.ToUpper(name)
	if upper == "EMPRESARIAL" || upper == "NOME" {
		return false
	}
	for _, frag := range nameArtifacts {
		if strings.Contains(upper, frag) {
			return false
		}
	}
	return true
}

var (
	emitenteStartLabels = []string{"PRESTADOR DE SERVIÇOS", "EMITENTE", "PRESTADOR", "DADOS DO PRESTADOR"}
	emitenteEndLabels   = []string{"TOMADOR DE SERVIÇOS", "DESTINAT", "TOMADOR", "DADOS DO TOMADOR", "VALORES", "ITENS", "DISCRIMINAÇÃO"}

	tomadorStartLabels = []string{"TOMADOR DE SERVIÇOS", "DESTINAT", "TOMADOR", "DADOS DO TOMADOR", "CLIENTE"}
	tomadorEndLabels   = []string{"INTERMEDIÁRIO", "VALORES", "ITENS", "DISCRIMINAÇÃO", "PRODUTOS", "TOTAL"}
)

var upperNameRe = regexp.MustCompile(`[A-ZÀ-Ú\s\.]+`)

var prestadorInlineRe = regexp.MustCompile(`(?i)Prestador\s+do\s+Servi[çc]o\s+([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.&\-]{3,30}?)(?:\n|$)`)

var emitenteCNPJPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)CPF/CNPJ[:\s]*([\d\.\/-]+)`),
	regexp.MustCompile(`(?i)CNPJ/CPF[:\s]*([\d\.\/-]+)`),
	regexp.MustCompile(`(?i)CNPJ[:\s]*([\d\.\/-]+)`),
	regexp.MustCompile(`(?i)(?:CNPJ\s+(?:do\s+)?(?:Emitente|Prestador))[:\s]*([\d\.\/-]+)`),
	regexp.MustCompile(`(?i)(?:Prestador|Emitente)[:\s]*CNPJ[:\s]*([\d\.\/-]+)`),
}

var emitenteNamePatterns = []*regexp.Regexp{
	// Name before a "Nº:" mark on the same line, tolerant of garbled glyphs.
	regexp.MustCompile(`(?i)(?:\n|^).{0,3}([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.&\-]{5,50}?)\s*N[º°5oO0]:\s*\d+`),
	regexp.MustCompile(`(?i)Prestador\s+do\s+Servi[çc]o\s+([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.&\-]{3,30}?)(?:\n|$)`),
	// Glued layouts: the line after the label starts with a partial tax ID.
	regexp.MustCompile(`(?i)Nome/?NomeEmpresarial[^\n]*\n[\d\.\-/]+([A-Z][A-Z]+(?:[A-Z]+)*)\s`),
	regexp.MustCompile(`(?i)\d{2}\.\d{3}\.\d{3}([A-Z][A-Z]+(?:[A-Z]+)*)\s`),
	regexp.MustCompile(`(?i)Nome\s*/?\.?\s*Nome\s+Empresarial[:\s]*[\d\.\-/]+\s*([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]+)`),
	regexp.MustCompile(`(?i)(?:EMITENTE|PRESTADOR)[^\n]*\n[^\n]*\n\s*([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]{5,})`),
	regexp.MustCompile(`(?i)Nome\s*/\s*Nome\s+Empresarial[:\s]*([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\.\&\-]+)`),
	regexp.MustCompile(`(?i)(?:Raz[ãa]o\s+Social|Nome\s+(?:do\s+)?(?:Emitente|Prestador))[:\s]*([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\.\&\-]+)`),
	regexp.MustCompile(`(?i)(?:Prestador|Emitente)[:\s]*(?:Raz[ãa]o\s+Social)?[:\s]*([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]{5,})`),
}

var tomadorCNPJPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:CNPJ\s+(?:do\s+)?(?:Destinat[áa]rio|Tomador|Cliente))[\s:]*([\d\.\/-]+)`),
	regexp.MustCompile(`(?i)(?:Destinat[áa]rio|Tomador)[:\s]*CNPJ[:\s]*([\d\.\/-]+)`),
	regexp.MustCompile(`(?i)(?:CPF/CNPJ\s+(?:do\s+)?(?:Tomador|Cliente))[:\s]*([\d\.\/-]+)`),
}

var tomadorNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Raz[ãa]o\s+Social|Nome\s+(?:do\s+)?(?:Destinat[áa]rio|Tomador|Cliente))[:\s]*([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\.\&\-]+)`),
	regexp.MustCompile(`(?i)(?:Destinat[áa]rio|Tomador)[:\s]*(?:Raz[ãa]o)?[:\s]*([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]{5,})`),
}

var (
	sectionLabelLineRe  = regexp.MustCompile(`(?i)^(?:Nome|Razão|Raz[ãa]o|CPF|CNPJ|Inscrição|Endereço)`)
	companySuffixWordRe = regexp.MustCompile(`(?i)(?:LTDA|S\.?A\.?|ME|EPP|EIRELI|S/A)\b`)
	pipeTailRe          = regexp.MustCompile(`\s*[|]\s*.*$`)
	leadingUpperRe      = regexp.MustCompile(`^[A-ZÀ-Ú]`)
	leadingDigitsRe     = regexp.MustCompile(`^[\d\.\-/]+`)
)

var placeNameWords = []string{"CIDADE", "BAIRRO", "CENTRO", "VILA", "JARDIM", "PARQUE"}

func looksLikePlaceName(name string) bool {
	upper := strings.ToUpper(name)
	for _, w := range placeNameWords {
		if strings.Contains(upper, w) {
			return true
		}
	}
	return false
}

// betterCompanyLine scans the section for a full company line when the
// parsed name is suspiciously short: a non-label line of 15+ characters
// ending in a company suffix, with any trailing pipe debris cut off.
func betterCompanyLine(section string) (string, bool) {
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if sectionLabelLineRe.MatchString(line) {
			continue
		}
		if runeLen(line) >= 15 && companySuffixWordRe.MatchString(line) {
			better := strings.TrimSpace(pipeTailRe.ReplaceAllString(line, ""))
			if leadingUpperRe.MatchString(better) && runeLen(better) >= 15 {
				return truncateRunes(better, 100), true
			}
		}
	}
	return "", false
}

// extractEmitente resolves the issuer: spatial name below its label, then
// the issuer section, then global tax ID patterns, then regex name
// fallbacks. Returns nil when neither a tax ID nor a name was found.
func (e *Engine) extractEmitente(text string, words []Word) *fiscal.Entity {
	var razao fiscal.Field[string]
	entity := &fiscal.Entity{}

	if name, ok := nearest(words, locate{
		labels:        []string{"Nome / Nome Empresarial", "Razão Social"},
		pattern:       upperNameRe,
		forceVertical: true,
	}); ok {
		name = strings.TrimSpace(name)
		if validEntityName(name) {
			razao.SetTentative(name)
		}
	}

	section, hasSection := FindSection(text, emitenteStartLabels, emitenteEndLabels)

	inline := ""
	if m := prestadorInlineRe.FindStringSubmatch(text); m != nil {
		inline = strings.TrimSpace(m[1])
	}

	if hasSection {
		se := parseEntitySection(section)
		if se.CNPJ != "" {
			if se.RazaoSocial != "" && runeLen(se.RazaoSocial) < 12 {
				if better, ok := betterCompanyLine(section); ok {
					se.RazaoSocial = better
				}
				if runeLen(se.RazaoSocial) < 12 && inline != "" {
					se.RazaoSocial = inline
				}
			}
			if se.RazaoSocial != "" && inline != "" && looksLikePlaceName(se.RazaoSocial) {
				se.RazaoSocial = inline
			}
			if name, ok := razao.Get(); ok {
				se.RazaoSocial = name
			}
			return se
		}
		if se.RazaoSocial != "" && validEntityName(se.RazaoSocial) {
			razao.Confirm(se.RazaoSocial)
		}
		if se.Endereco != nil {
			entity.Endereco = se.Endereco
		}
	}

	for _, re := range emitenteCNPJPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		digits := fiscal.DigitsOnly(m[1])
		if len(digits) == 11 || len(digits) == 14 {
			entity.CNPJ = digits
			break
		}
	}
	if entity.CNPJ == "" {
		if all := findAllCNPJs(text); len(all) > 0 {
			entity.CNPJ = all[0]
		}
	}

	if !razao.IsSet() {
		for _, re := range emitenteNamePatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[1])
			name = strings.TrimSpace(leadingDigitsRe.ReplaceAllString(name, ""))
			if validEntityName(name) {
				razao.SetTentative(truncateRunes(strings.TrimSpace(firstLine(name)), 100))
				break
			}
		}
	}
	entity.RazaoSocial = razao.Value()

	if hasSection && entity.Endereco == nil {
		entity.Endereco = extractAddress(section)
	}

	if entity.CNPJ == "" && entity.RazaoSocial == "" {
		return nil
	}
	return entity
}

// extractDestinatario resolves the recipient. The section parse wins when it
// carries a tax ID; otherwise the second global tax ID is taken, on the
// convention that the first belongs to the issuer.
func (e *Engine) extractDestinatario(text string, words []Word) *fiscal.Entity {
	var razao fiscal.Field[string]
	entity := &fiscal.Entity{}

	if name, ok := nearest(words, locate{
		labels: []string{
			"Nome / Nome Empresarial do Tomador", "Razão Social do Tomador",
			"Tomador de Serviços", "Destinatário",
		},
		pattern:       upperNameRe,
		forceVertical: true,
	}); ok {
		name = strings.TrimSpace(name)
		if validEntityName(name) {
			razao.SetTentative(name)
		}
	}

	section, hasSection := FindSection(text, tomadorStartLabels, tomadorEndLabels)
	if hasSection {
		se := parseEntitySection(section)
		if se.CNPJ != "" {
			return se
		}
		if se.RazaoSocial != "" && validEntityName(se.RazaoSocial) {
			razao.Confirm(se.RazaoSocial)
		}
	}

	for _, re := range tomadorCNPJPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		digits := fiscal.DigitsOnly(m[1])
		if len(digits) == 11 || len(digits) == 14 {
			entity.CNPJ = digits
			break
		}
	}
	if entity.CNPJ == "" {
		if all := findAllCNPJs(text); len(all) >= 2 {
			entity.CNPJ = all[1]
		}
	}

	if !razao.IsSet() {
		for _, re := range tomadorNamePatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[1])
			if validEntityName(name) {
				razao.SetTentative(truncateRunes(strings.TrimSpace(firstLine(name)), 100))
				break
			}
		}
	}
	entity.RazaoSocial = razao.Value()

	if hasSection {
		entity.Endereco = extractAddress(section)
	}

	if entity.CNPJ == "" && entity.RazaoSocial == "" {
		return nil
	}
	return entity
}

// Tax ID patterns inside an entity section, degraded-OCR tolerant: commas
// for dots, missing slash, glued label.
var sectionCNPJPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)C(?:PF[/\\I])?CN?PJ?[:\s.]+(\d{2}[.,]?\d{3}[.,]?\d{3}[/\\]?\d{4}[-]?\d{2})`),
	regexp.MustCompile(`(?i)\b(\d{2}[.,]\d{3}[.,]\d{3}[/\\]\d{4}[-]?\d{2})\b`),
	regexp.MustCompile(`(?i)\b(\d{2}[.,]\d{3}[.,]?\d{3,4}\d{4}[-]?\d{2})\b`),
}

var sectionNamePatterns = []*regexp.Regexp{
	// Company line alone at the start of the section, ending in a suffix.
	regexp.MustCompile(`(?im)^\s*([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]+(?:LTDA|S\.?A\.?|ME|EPP|EIRELI|S/A))\s*$`),
	regexp.MustCompile(`(?im)([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]{5,}(?:LTDA|S\.?A\.?|ME|EPP|EIRELI|S/A))`),
	// Name on the line after the label, last such layout seen in Salvador.
	regexp.MustCompile(`(?im)Nome/Raz[ãa]o\s+Social:[^\n]*\n([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]+(?:LTDA|S\.?A\.?|ME|EPP|EIRELI|S/A)[^\n]*)`),
	// Partial tax ID glued to an upper-case name.
	regexp.MustCompile(`(?im)\d{2}\.\d{3}\.\d{3}([A-Z][A-Z]+(?:[A-Z]+)*)\s`),
	regexp.MustCompile(`(?im)Nome/NomeEmpresarial\s+E-?mail\n([A-ZÀ-Ú][A-ZÀ-Ú0-9\.\,\-]+?)(?:\s+[A-Za-z0-9@\._-]+@|\n)`),
	regexp.MustCompile(`(?im)(?:Nome.?)?Raz[ãa]o\s+Social[:\.\s]+([A-ZÀ-Ú][A-ZÀ-Ú0-9\s\.\&\-]+)`),
	regexp.MustCompile(`(?im)Raz[ãa]o\s+Social[:\s]*([A-ZÀ-Ú0-9][A-ZÀ-Ú0-9\s\.\&\-]+)`),
}

var (
	labelDebrisRe    = regexp.MustCompile(`(?i)^.*?(?:Raz[ãa]o|Social|Nome|Razao)\s+(?:Social\s+)?`)
	gluedSARe        = regexp.MustCompile(`(?i)([A-ZÀ-Ú])(S\.A\.|S\.A|SA|S/A)$`)
	gluedSuffixRe    = regexp.MustCompile(`(?i)([A-ZÀ-Ú])(LTDA|ME|EPP|EIRELI)$`)
	companySuffixSet = []string{"LTDA", "S.A", "SA", "ME", "EPP", "EIRELI", "S/A"}
	logoNames        = []string{"polo it", "polo ir", "poloit", "logo"}
)

// parseEntitySection pulls a tax ID, a company name and an address out of a
// labeled entity section. Name candidates are cleaned of leading digits and
// label debris, de-glued from their company suffix, and accepted only with
// a suffix or 15+ characters.
func parseEntitySection(section string) *fiscal.Entity {
	entity := &fiscal.Entity{}

	for _, re := range sectionCNPJPatterns {
		if m := re.FindStringSubmatch(section); m != nil {
			entity.CNPJ = fiscal.DigitsOnly(m[1])
			break
		}
	}

	for _, re := range sectionNamePatterns {
		m := re.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		name = strings.TrimSpace(leadingDigitsRe.ReplaceAllString(name, ""))

		cleaned := strings.TrimSpace(labelDebrisRe.ReplaceAllString(name, ""))
		if runeLen(cleaned) >= 10 {
			name = cleaned
		}

		name = gluedSARe.ReplaceAllString(name, "${1} ${2}")
		name = gluedSuffixRe.ReplaceAllString(name, "${1} ${2}")

		if runeLen(name) < 10 {
			continue
		}
		if isLogoName(name) {
			continue
		}
		if hasCompanySuffix(name) || runeLen(name) >= 15 {
			entity.RazaoSocial = truncateRunes(strings.TrimSpace(firstLine(name)), 100)
			break
		}
	}

	entity.Endereco = extractAddress(section)
	return entity
}

func hasCompanySuffix(name string) bool {
	upper := strings.ToUpper(name)
	for _, s := range companySuffixSet {
		if strings.Contains(upper, s) {
			return true
		}
	}
	return false
}

func isLogoName(name string) bool {
	lower := strings.TrimSpace(strings.ToLower(name))
	for _, l := range logoNames {
		if lower == l {
			return true
		}
	}
	return false
}
