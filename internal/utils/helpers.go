// Package utils holds the row-to-wire conversions shared by the gRPC
// handlers.
package utils

import (
	"fmt"
	"time"

	"github.com/fiscaldata/nf-extractor/gen/ent"
	fiscalpb "github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToPBBatch maps an extract_batch row onto the wire shape.
func ToPBBatch(b *ent.ExtractBatch) *fiscalpb.Batch {
	pb := &fiscalpb.Batch{
		Id:         b.ID.String(),
		Source:     b.Source,
		Status:     b.Status,
		TotalFiles: uint32(b.TotalFiles),
		Succeeded:  uint32(b.Succeeded),
		Failed:     uint32(b.Failed),
		Cancelled:  uint32(b.Cancelled),
		StartedAt:  b.StartedAt.UTC().Format(time.RFC3339),
		ReportPath: strOrEmpty(b.ReportPath),
	}
	if b.FinishedAt != nil {
		pb.FinishedAt = b.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

// ToPBRecord maps a fiscal_record row onto the wire shape. Dates stay in the
// DD/MM/YYYY form they were extracted in.
func ToPBRecord(r *ent.FiscalRecord) *fiscalpb.Record {
	pb := &fiscalpb.Record{
		Id:               r.ID.String(),
		Filename:         r.Filename,
		DocumentType:     r.DocumentType,
		Status:           r.Status,
		Numero:           strOrEmpty(r.Numero),
		ChaveAcesso:      strOrEmpty(r.ChaveAcesso),
		DataEmissao:      strOrEmpty(r.DataEmissao),
		EmitenteCnpj:     strOrEmpty(r.EmitenteCnpj),
		EmitenteNome:     strOrEmpty(r.EmitenteNome),
		DestinatarioCnpj: strOrEmpty(r.DestinatarioCnpj),
		DestinatarioNome: strOrEmpty(r.DestinatarioNome),
		Coligada:         strOrEmpty(r.Coligada),
		Filial:           strOrEmpty(r.Filial),
		IsScanned:        r.IsScanned,
		ErrorMessage:     strOrEmpty(r.ErrorMessage),
		ProcessingMs:     r.ProcessingMs,
	}
	if r.ValorTotal != nil {
		pb.ValorTotal = fmt.Sprintf("%.2f", *r.ValorTotal)
	}
	return pb
}
