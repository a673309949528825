// Package ai defines the contract with the secondary inference backend that
// runs when heuristic extraction comes back poor: the response shape the
// models are prompted for, its JSON schema, and the lenient cleanup applied
// before validation. The Ollama client under ai/ollama implements it.
package ai

import (
	"context"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// Vision page rendering parameters. Two pages at 200 DPI keep the request
// inside the model context window while staying readable.
const (
	VisionMaxPages  = 2
	VisionRenderDPI = 200
)

// FiscalFields is the normalized shape we want from the model.
type FiscalFields struct {
	TipoDocumento   string        `json:"tipo_documento,omitempty"`
	Numero          string        `json:"numero,omitempty"`
	Serie           string        `json:"serie,omitempty"`
	ChaveAcesso     string        `json:"chave_acesso,omitempty"`
	DataEmissao     string        `json:"data_emissao,omitempty"`     // YYYY-MM-DD
	DataCompetencia string        `json:"data_competencia,omitempty"` // YYYY-MM-DD
	Emitente        *EntityFields `json:"emitente,omitempty"`
	Destinatario    *EntityFields `json:"destinatario,omitempty"`
	Valores         *ValueFields  `json:"valores,omitempty"`
	Itens           []ItemFields  `json:"itens,omitempty"`
}

// EntityFields is one document party as the model reports it. The address
// comes back as a single free-text line, not the decomposed sub-fields the
// cascades produce.
type EntityFields struct {
	CNPJ        string `json:"cnpj,omitempty"`
	RazaoSocial string `json:"razao_social,omitempty"`
	Endereco    string `json:"endereco_completo,omitempty"`
}

// ValueFields mirrors the monetary block of the prompt. The prompt asks for
// one consolidated key per tax; whether a value is devido or retido is
// resolved when the fields are folded into a document.
type ValueFields struct {
	ValorTotal    *float64 `json:"valor_total,omitempty"`
	ValorServicos *float64 `json:"valor_servicos,omitempty"`
	BaseCalculo   *float64 `json:"base_calculo,omitempty"`
	ISS           *float64 `json:"iss,omitempty"`
	PIS           *float64 `json:"pis,omitempty"`
	COFINS        *float64 `json:"cofins,omitempty"`
	INSS          *float64 `json:"inss,omitempty"`
	IR            *float64 `json:"ir,omitempty"`
	CSLL          *float64 `json:"csll,omitempty"`
	ValorLiquido  *float64 `json:"valor_liquido,omitempty"`
}

// ItemFields is one invoice line item as the model reports it.
type ItemFields struct {
	Descricao     string   `json:"descricao,omitempty"`
	Quantidade    *float64 `json:"quantidade,omitempty"`
	ValorUnitario *float64 `json:"valor_unitario,omitempty"`
	ValorTotal    *float64 `json:"valor_total,omitempty"`
}

// TextExtractor runs inference over decoded page text.
type TextExtractor interface {
	ExtractFromText(ctx context.Context, text, filename string) (*fiscal.Document, []byte /*rawJSON*/, error)
}

// VisionExtractor runs inference over rendered page images.
type VisionExtractor interface {
	ExtractFromImages(ctx context.Context, pages [][]byte, filename string) (*fiscal.Document, []byte /*rawJSON*/, error)
}

// Backend is the inference surface the pipeline depends on. One model is
// configured; its name decides which of the two extract calls the quality
// gate makes.
type Backend interface {
	TextExtractor
	VisionExtractor

	// VisionCapable reports whether the configured model reads images.
	VisionCapable() bool

	// Available reports whether the backend currently serves the configured
	// model. Probed before each fallback attempt so a dead backend fails in
	// seconds instead of a full generate timeout.
	Available(ctx context.Context) bool
}
