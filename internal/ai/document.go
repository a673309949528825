package ai

import (
	"strings"
	"time"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// Document folds the model response into a fiscal document. Dates are
// reformatted to the DD/MM/YYYY display form the cascades produce, tax IDs
// are reduced to digits, and the consolidated csll key lands on the
// retention slot the report reads.
func (f FiscalFields) Document(filename string) *fiscal.Document {
	doc := fiscal.NewDocument(filename)

	tipo := strings.ToUpper(f.TipoDocumento)
	switch {
	case strings.Contains(tipo, "NFS"):
		doc.DocumentType = constants.DocTypeNFSE
	case strings.Contains(tipo, "NF-E"), strings.Contains(tipo, "DANFE"):
		doc.DocumentType = constants.DocTypeNFE
	}

	doc.Numero = strings.TrimSpace(f.Numero)
	doc.Serie = strings.TrimSpace(f.Serie)
	if f.ChaveAcesso != "" {
		doc.ChaveAcesso = fiscal.NormalizeChave(f.ChaveAcesso)
	}
	doc.DataEmissao = displayDate(f.DataEmissao)
	doc.DataCompetencia = displayDate(f.DataCompetencia)

	if f.Emitente != nil {
		doc.Emitente = f.Emitente.entity()
	}
	if f.Destinatario != nil {
		doc.Destinatario = f.Destinatario.entity()
	}

	if f.Valores != nil {
		doc.Valores = &fiscal.TaxValues{
			ValorTotal:    f.Valores.ValorTotal,
			ValorServicos: f.Valores.ValorServicos,
			BaseCalculo:   f.Valores.BaseCalculo,
			ISS:           f.Valores.ISS,
			PIS:           f.Valores.PIS,
			COFINS:        f.Valores.COFINS,
			INSS:          f.Valores.INSS,
			IR:            f.Valores.IR,
			CSLLRetida:    f.Valores.CSLL,
			ValorLiquido:  f.Valores.ValorLiquido,
		}
	}

	for _, it := range f.Itens {
		desc := strings.TrimSpace(it.Descricao)
		if desc == "" && it.ValorTotal == nil {
			continue
		}
		doc.Itens = append(doc.Itens, fiscal.ServiceItem{
			Descricao:     desc,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			ValorTotal:    it.ValorTotal,
		})
	}

	return doc
}

func (e EntityFields) entity() *fiscal.Entity {
	ent := &fiscal.Entity{
		CNPJ:        fiscal.DigitsOnly(e.CNPJ),
		RazaoSocial: strings.TrimSpace(e.RazaoSocial),
	}
	if addr := strings.TrimSpace(e.Endereco); addr != "" {
		ent.Endereco = &fiscal.Address{Logradouro: addr}
	}
	return ent
}

// displayDate converts a model YYYY-MM-DD date to the DD/MM/YYYY display
// form. A date that does not parse is discarded rather than carried through
// malformed.
func displayDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ""
	}
	return t.Format("02/01/2006")
}
