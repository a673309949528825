// Package fiscal defines the document model produced by the extraction
// pipeline: the fiscal document itself, its parties, amounts, and the
// per-file and per-batch processing outcomes.
package fiscal

import (
	"strings"
	"time"

	"github.com/fiscaldata/nf-extractor/constants"
)

// Document is a fiscal document record. It is created empty at pipeline
// entry, filled field-by-field by the extraction cascades, and has its
// status finalized exactly once before being handed back to the batch.
type Document struct {
	Filename     string                 `json:"filename"`
	DocumentType constants.DocumentType `json:"tipo_documento"`

	Numero      string `json:"numero,omitempty"`
	Serie       string `json:"serie,omitempty"`
	ChaveAcesso string `json:"chave_acesso,omitempty"`

	// Dates are kept as captured (DD/MM/YYYY display form).
	DataEmissao      string `json:"data_emissao,omitempty"`
	DataSaidaEntrada string `json:"data_saida_entrada,omitempty"`
	DataCompetencia  string `json:"data_competencia,omitempty"`

	Emitente     *Entity `json:"emitente,omitempty"`
	Destinatario *Entity `json:"destinatario,omitempty"`

	Valores *TaxValues    `json:"valores,omitempty"`
	Itens   []ServiceItem `json:"itens,omitempty"`

	// Organizational mapping resolved from the recipient (or issuer) tax ID.
	Coligada string `json:"coligada,omitempty"`
	Filial   string `json:"filial,omitempty"`

	Status         constants.ProcessingStatus `json:"status"`
	ErrorMessage   string                     `json:"error_message,omitempty"`
	IsScanned      bool                       `json:"is_scanned"`
	ProcessingTime time.Duration              `json:"processing_time,omitempty"`
}

// NewDocument returns a pending document for the given source filename.
func NewDocument(filename string) *Document {
	return &Document{
		Filename:     filename,
		DocumentType: constants.DocTypeUnknown,
		Status:       constants.StatusPending,
	}
}

// EnsureValores returns the document's tax values, allocating them on first use.
func (d *Document) EnsureValores() *TaxValues {
	if d.Valores == nil {
		d.Valores = &TaxValues{}
	}
	return d.Valores
}

// IdentifierCNPJ returns the tax ID used for organizational mapping.
// The recipient takes priority over the issuer.
func (d *Document) IdentifierCNPJ() string {
	if d.Destinatario != nil && d.Destinatario.CNPJ != "" {
		return d.Destinatario.CNPJ
	}
	if d.Emitente != nil && d.Emitente.CNPJ != "" {
		return d.Emitente.CNPJ
	}
	return ""
}

// ClearDisallowedTaxes drops tax slots the document type cannot carry: IPI
// exists only on goods invoices, ISS only on service invoices. Runs after
// extraction and again after any merge that may have refilled a slot.
func (d *Document) ClearDisallowedTaxes() {
	if d.Valores == nil {
		return
	}
	switch d.DocumentType {
	case constants.DocTypeNFSE:
		d.Valores.IPI = nil
	case constants.DocTypeNFE:
		d.Valores.ISS = nil
		d.Valores.ISSRetido = nil
	}
}

// Entity is one party of a fiscal document (issuer or recipient). Entities
// are value objects and are never shared between the two slots.
type Entity struct {
	CNPJ        string   `json:"cnpj,omitempty"`
	RazaoSocial string   `json:"razao_social,omitempty"`
	Endereco    *Address `json:"endereco,omitempty"`
}

// Address holds the free-text address sub-fields captured for an entity.
type Address struct {
	Logradouro string `json:"logradouro,omitempty"`
	Numero     string `json:"numero,omitempty"`
	Bairro     string `json:"bairro,omitempty"`
	Municipio  string `json:"municipio,omitempty"`
	UF         string `json:"uf,omitempty"`
	CEP        string `json:"cep,omitempty"`
}

// Empty reports whether no sub-field was captured.
func (a *Address) Empty() bool {
	if a == nil {
		return true
	}
	return a.Logradouro == "" && a.Numero == "" && a.Bairro == "" &&
		a.Municipio == "" && a.UF == "" && a.CEP == ""
}

// String renders the address in the report display form.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	var parts []string
	if a.Logradouro != "" {
		parts = append(parts, a.Logradouro)
	}
	if a.Numero != "" {
		parts = append(parts, "nº "+a.Numero)
	}
	if a.Bairro != "" {
		parts = append(parts, a.Bairro)
	}
	if a.Municipio != "" {
		if a.UF != "" {
			parts = append(parts, a.Municipio+"/"+a.UF)
		} else {
			parts = append(parts, a.Municipio)
		}
	} else if a.UF != "" {
		parts = append(parts, a.UF)
	}
	if a.CEP != "" {
		parts = append(parts, "CEP: "+a.CEP)
	}
	return strings.Join(parts, ", ")
}

// TaxValues carries the monetary fields of a document. Nil means the value
// was never captured; zero is a captured zero.
type TaxValues struct {
	ValorTotal    *float64 `json:"valor_total,omitempty"`
	ValorLiquido  *float64 `json:"valor_liquido,omitempty"`
	ValorServicos *float64 `json:"valor_servicos,omitempty"`
	BaseCalculo   *float64 `json:"base_calculo,omitempty"`
	Desconto      *float64 `json:"desconto,omitempty"`

	// NF-e taxes (devido).
	ICMS   *float64 `json:"icms,omitempty"`
	IPI    *float64 `json:"ipi,omitempty"`
	PIS    *float64 `json:"pis,omitempty"`
	COFINS *float64 `json:"cofins,omitempty"`
	ISS    *float64 `json:"iss,omitempty"`

	// Retentions, primarily NFS-e.
	IR              *float64 `json:"ir,omitempty"`
	INSS            *float64 `json:"inss,omitempty"`
	PISRetido       *float64 `json:"pis_retido,omitempty"`
	COFINSRetido    *float64 `json:"cofins_retido,omitempty"`
	CSLLRetida      *float64 `json:"csll_retida,omitempty"`
	ISSRetido       *float64 `json:"iss_retido,omitempty"`
	OutrasRetencoes *float64 `json:"outras_retencoes,omitempty"`
}

// ServiceItem is one line item of a service invoice.
type ServiceItem struct {
	Descricao     string   `json:"descricao"`
	Quantidade    *float64 `json:"quantidade,omitempty"`
	ValorUnitario *float64 `json:"valor_unitario,omitempty"`
	ValorTotal    *float64 `json:"valor_total,omitempty"`
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// NormalizeChave reduces an access key candidate to its 44 digits. When the
// digit count is not exactly 44 the original trimmed capture is returned so
// the partial value is not silently destroyed.
func NormalizeChave(s string) string {
	digits := DigitsOnly(s)
	if len(digits) == 44 {
		return digits
	}
	return strings.TrimSpace(s)
}

// Float pointer helper used across the extraction and merge layers.
func Float(v float64) *float64 { return &v }
