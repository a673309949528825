package pipeline

import (
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// IsExtractionPoor reports whether the cascades missed the fields that make
// a record usable: the total value, or both document parties.
func IsExtractionPoor(doc *fiscal.Document) bool {
	if doc == nil {
		return true
	}
	if doc.Valores == nil || doc.Valores.ValorTotal == nil {
		return true
	}
	return doc.Emitente == nil && doc.Destinatario == nil
}

// MergeDocuments folds an AI-derived document into the heuristic one.
// Identity fields only fill gaps; the cascades keep everything they
// captured. The withheld-tax values and the net value are what the model is
// consulted for, so those transfer unconditionally, including nil.
func MergeDocuments(target, source *fiscal.Document) {
	if target == nil || source == nil {
		return
	}

	if target.Numero == "" {
		target.Numero = source.Numero
	}
	if target.Emitente == nil {
		target.Emitente = source.Emitente
	}
	if target.Destinatario == nil {
		target.Destinatario = source.Destinatario
	}

	if source.Valores != nil {
		if target.Valores == nil {
			target.Valores = source.Valores
		} else {
			mergeValues(target.Valores, source.Valores)
		}
	}

	if len(target.Itens) == 0 {
		target.Itens = source.Itens
	}
}

func mergeValues(target, source *fiscal.TaxValues) {
	if target.ValorTotal == nil {
		target.ValorTotal = source.ValorTotal
	}
	if target.ISS == nil {
		target.ISS = source.ISS
	}
	target.PIS = source.PIS
	target.COFINS = source.COFINS
	target.INSS = source.INSS
	target.IR = source.IR
	target.CSLLRetida = source.CSLLRetida
	target.ValorLiquido = source.ValorLiquido
}
