package extract

import (
	"regexp"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// Label synonyms driving the spatial pass. Single-token labels are the ones
// that actually anchor on word boxes; multi-word phrases cover layouts that
// glue their headers.
var (
	valorTotalLabels = []string{
		"Valor Total", "Total da Nota", "Valor a Pagar", "VALOR NF",
		"Total Geral", "Valor Total Nota", "TOTAL", "Vl Total",
		"Valor Líquido", "Líquido", "Total Líquido",
	}
	valorServicosLabels = []string{
		"Valor dos Serviços", "Total Serviços", "Base de Cálculo",
		"Valor Produtos", "Vl Serviços", "Base Cálculo ISS",
		"Valor Total dos Serviços", "VALOR DOS SERVIÇOS",
	}
	valorLiquidoLabels = []string{"Valor Líquido", "Líquido a Receber", "Total Líquido"}
	issLabels          = []string{"Valor do ISS", "ISSQN Devido", "ISS Retido", "Valor ISS", "ISSQN", "ISS a Reter", "ISS"}
	descontoLabels     = []string{"Desconto", "Descontos", "Desc.", "Total Descontos"}
	pisLabels          = []string{"PIS", "PIS Retido", "Valor PIS"}
	cofinsLabels       = []string{"COFINS", "COFINS Retido", "Valor COFINS"}
	irLabels           = []string{"IR", "IRRF", "IR Retido", "Imposto de Renda"}
	inssLabels         = []string{"INSS", "INSS Retido", "Valor INSS"}
	icmsLabels         = []string{"ICMS", "Valor ICMS", "ICMS Total"}
	ipiLabels          = []string{"IPI", "Valor IPI", "IPI Total"}
)

var moneyStripRe = regexp.MustCompile(`R?\$\s*([\d\.]+(?:,\d{2})?)`)

// moneyNear runs the spatial pass for one value type. A parsed zero counts
// as not found so the regex pass can still fill the slot.
func moneyNear(words []Word, labels []string) (float64, bool) {
	raw, ok := nearest(words, locate{labels: labels, pattern: moneyStripRe})
	if !ok {
		return 0, false
	}
	m := moneyStripRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	v, ok := ParseMoney(m[1])
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// firstAmount tries the label patterns in order and returns the first parsed
// capture at or above min.
func firstAmount(text string, patterns []*regexp.Regexp, min float64) (float64, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := ParseMoney(m[1]); ok && v >= min {
			return v, true
		}
	}
	return 0, false
}

var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)VALOR\s*TOTAL\s*(?:DO\s*)?(?:SERVIÇO|NOTA|DOCUMENTO)[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)VALOR\s*(?:DA\s*)?(?:NOTA|FATURA|DOCUMENTO)\s*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)TOTAL\s*(?:DA\s*)?NOTA[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)VALOR\s*BRUTO(?:\s*(?:DA\s*)?NOTA)?[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)VALOR\s*DOCUMENTO\s*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)VALOR\s*A\s*PAGAR[^\d]*R?\$?\s*([\d.,]+)`),
}

var servicosPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)VALOR\s*(?:TOTAL\s*)?(?:DOS?\s*)?SERVIÇOS?[^\d]*=?\s*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)SERVIÇOS?\s*\(R\$\)[^\d]*([\d.,]+)`),
	regexp.MustCompile(`(?i)TOTAL\s*(?:DOS?\s*)?SERVIÇOS[^\d]*R?\$?\s*([\d.,]+)`),
}

var liquidoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)VALOR\s*LÍQUIDO\s*(?:DA\s*)?(?:NOTA|NFS-?E|DOCUMENTO)?[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)LÍQUIDO\s*(?:A\s*)?(?:RECEBER|PAGAR)?[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)VALOR\s*LIQUIDO[^\d]*R?\$?\s*([\d.,]+)`),
}

var basePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)BASE\s*(?:DE\s*)?CÁLCULO[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)B\.\s*CÁLCULO[^\d]*R?\$?\s*([\d.,]+)`),
}

// ISS owed, not withheld: the generic form needs its RETIDO context checked
// in code because the match alone cannot tell the two apart.
var issDevidoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)VALOR\s*(?:DO\s*)?ISS(?:QN)?\s*(?:DEVIDO)?[^\d]*\(R\$\)[^\d]*([\d.,]+)`),
	regexp.MustCompile(`(?i)ISS(?:QN)?\s*DEST[AE]\s*NFS-?E[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)ISS(?:QN)?\s*DEVIDO[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)ISS(?:QN)?\s*APURADO[^\d]*R?\$?\s*([\d.,]+)`),
}

var (
	issGenericRe   = regexp.MustCompile(`(?i)VALOR\s*(?:DO\s*)?ISS(?:QN)?([^\d]*)R?\$?\s*([\d.,]+)`)
	retidoBeforeRe = regexp.MustCompile(`(?i)RETIDO\s$`)
	retidAfterRe   = regexp.MustCompile(`(?i)^\s*RETID`)
)

// issDevidoGeneric matches the bare "VALOR DO ISS" form. A match is real
// only when RETIDO does not directly precede it and RETID does not directly
// follow the ISS token; rejected positions resume the scan one byte later.
// Only the first real match counts, and it must reach the 1.00 floor.
func issDevidoGeneric(text string) (float64, bool) {
	for start := 0; start < len(text); {
		loc := issGenericRe.FindStringSubmatchIndex(text[start:])
		if loc == nil {
			return 0, false
		}
		mStart := start + loc[0]
		gap := text[start+loc[2] : start+loc[3]]
		if retidAfterRe.MatchString(gap) || retidoBeforeRe.MatchString(text[:mStart]) {
			start = mStart + 1
			continue
		}
		if v, ok := ParseMoney(text[start+loc[4] : start+loc[5]]); ok && v >= 1.0 {
			return v, true
		}
		return 0, false
	}
	return 0, false
}

var descontoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:\(-\)\s*)?DESCONTO(?:\s*INCONDICIONADO)?[^\d]*R?\$?\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)DESCONTOS?\s*(?:INCONDICIONADOS)?[^\d]*R?\$?\s*([\d.,]+)`),
}

// IRRF forms tolerate the R$->RS OCR damage seen on low-resolution scans.
var irrfPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)IRRF\s*\([^)]*[%$]?\)\s*R[S$]?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)IR\s*\([^)]*[%$]?\)\s*R[S$]?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)IR\s*RETIDO\s*[^\d]*R[S$]?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)IRRF\s+R[S$]?\s*([0-9][0-9.,]*)`),
}

var inssPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)INSS\s*RETIDO\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)INSS\s*\([^)]*%?\)\s*R?\$\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)RETENÇÃO\s*(?:DE\s*)?11%?\s*INSS\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
}

var pisRetidoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)PIS\s*RETIDO\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)RETENÇÃO\s*(?:NA\s*FONTE\s*)?(?:DE\s*)?PIS\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
}

var cofinsRetidoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)COFINS\s*RETIDO[S]?\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)RETENÇÃO\s*(?:NA\s*FONTE\s*)?(?:DE\s*)?COFINS\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
}

var csllRetidaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)CSLL\s*RETIDA?\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)RETENÇÃO\s*(?:DE\s*)?CSLL\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
}

var issRetidoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ISS\s*RETIDO\s*(?:NA\s*FONTE)?\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)ISSQN\s*RETIDO\s*(?:NA\s*FONTE)?\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
}

var icmsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)VALOR\s*(?:DO\s*)?ICMS\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)ICMS\s*\(R\$\)\s*[^\d]*([0-9][0-9.,]*)`),
}

var ipiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)VALOR\s*(?:DO\s*)?IPI\s*[^\d]*R?\$?\s*([0-9][0-9.,]*)`),
	regexp.MustCompile(`(?i)IPI\s*\(R\$\)\s*[^\d]*([0-9][0-9.,]*)`),
}

var outrasRetencoesPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:OUTRAS|TOTAL)\s*RETENÇÕES[^\d]*R?\$?\s*([\d.,]+)`),
}

// extractValores fills the monetary slots: the spatial pass first where word
// geometry exists, then the regex pass for everything still empty, then the
// total/services copy fallback.
func (e *Engine) extractValores(text string, words []Word) *fiscal.TaxValues {
	v := &fiscal.TaxValues{}

	if len(words) > 0 {
		setMoney(&v.ValorTotal, words, valorTotalLabels)
		setMoney(&v.ValorServicos, words, valorServicosLabels)
		setMoney(&v.ValorLiquido, words, valorLiquidoLabels)
		setMoney(&v.ISS, words, issLabels)
		setMoney(&v.Desconto, words, descontoLabels)
		setMoney(&v.PIS, words, pisLabels)
		setMoney(&v.COFINS, words, cofinsLabels)
		setMoney(&v.IR, words, irLabels)
		setMoney(&v.INSS, words, inssLabels)
		setMoney(&v.ICMS, words, icmsLabels)
		setMoney(&v.IPI, words, ipiLabels)
	}

	extractValoresRegex(text, v)

	if v.ValorTotal != nil && v.ValorServicos == nil {
		v.ValorServicos = fiscal.Float(*v.ValorTotal)
	} else if v.ValorServicos != nil && v.ValorTotal == nil {
		v.ValorTotal = fiscal.Float(*v.ValorServicos)
	}
	return v
}

func setMoney(dst **float64, words []Word, labels []string) {
	if *dst != nil {
		return
	}
	if v, ok := moneyNear(words, labels); ok {
		*dst = fiscal.Float(v)
	}
}

func fillAmount(dst **float64, text string, patterns []*regexp.Regexp, min float64) {
	if *dst != nil {
		return
	}
	if v, ok := firstAmount(text, patterns, min); ok {
		*dst = fiscal.Float(v)
	}
}

// extractValoresRegex is the label-pattern pass, the primary path for OCR
// text where word geometry is lost. PIS and COFINS owed amounts are not
// extracted here: on service invoices they only occur as retentions and the
// loose labels capture wrong values.
func extractValoresRegex(text string, v *fiscal.TaxValues) {
	fillAmount(&v.ValorTotal, text, totalPatterns, 0.01)
	fillAmount(&v.ValorServicos, text, servicosPatterns, 0.01)
	fillAmount(&v.ValorLiquido, text, liquidoPatterns, 0.01)
	fillAmount(&v.ValorServicos, text, basePatterns, 0.01)

	if v.ISS == nil {
		if amt, ok := firstAmount(text, issDevidoPatterns, 1.0); ok {
			v.ISS = fiscal.Float(amt)
		} else if amt, ok := issDevidoGeneric(text); ok {
			v.ISS = fiscal.Float(amt)
		}
	}

	fillAmount(&v.Desconto, text, descontoPatterns, 0.01)
	fillAmount(&v.IR, text, irrfPatterns, 1.0)
	fillAmount(&v.INSS, text, inssPatterns, 10.0)
	fillAmount(&v.PISRetido, text, pisRetidoPatterns, 0.01)
	fillAmount(&v.COFINSRetido, text, cofinsRetidoPatterns, 0.01)
	fillAmount(&v.CSLLRetida, text, csllRetidaPatterns, 0.01)
	fillAmount(&v.ISSRetido, text, issRetidoPatterns, 1.0)
	fillAmount(&v.ICMS, text, icmsPatterns, 1.0)
	fillAmount(&v.IPI, text, ipiPatterns, 1.0)
	fillAmount(&v.OutrasRetencoes, text, outrasRetencoesPatterns, 0.01)
}
