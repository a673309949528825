package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fiscaldata/nf-extractor/gen/ent"
	entrecord "github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

type RecordRepository interface {
	SaveResults(ctx context.Context, batchID uuid.UUID, results []fiscal.ProcessingResult) error
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*ent.FiscalRecord, error)
}

type recordRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(entc *ent.Client, logger *slog.Logger) RecordRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &recordRepo{ent: entc, logger: logger}
}

// SaveResults bulk-inserts one record per processed document. The whole
// document is stored as JSON alongside the promoted query columns.
func (r *recordRepo) SaveResults(ctx context.Context, batchID uuid.UUID, results []fiscal.ProcessingResult) error {
	builders := make([]*ent.FiscalRecordCreate, 0, len(results))
	for _, res := range results {
		doc := res.Document
		if doc == nil {
			continue
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			r.logger.Error("record marshal failed", "filename", doc.Filename, "error", err)
			continue
		}

		b := r.ent.FiscalRecord.Create().
			SetBatchID(batchID).
			SetFilename(doc.Filename).
			SetDocumentType(string(doc.DocumentType)).
			SetStatus(string(doc.Status)).
			SetIsScanned(doc.IsScanned).
			SetProcessingMs(res.Duration.Milliseconds()).
			SetDocument(raw)

		if doc.Numero != "" {
			b.SetNumero(doc.Numero)
		}
		if doc.ChaveAcesso != "" {
			b.SetChaveAcesso(doc.ChaveAcesso)
		}
		if doc.DataEmissao != "" {
			b.SetDataEmissao(doc.DataEmissao)
		}
		if e := doc.Emitente; e != nil {
			if e.CNPJ != "" {
				b.SetEmitenteCnpj(fiscal.DigitsOnly(e.CNPJ))
			}
			if e.RazaoSocial != "" {
				b.SetEmitenteNome(e.RazaoSocial)
			}
		}
		if d := doc.Destinatario; d != nil {
			if d.CNPJ != "" {
				b.SetDestinatarioCnpj(fiscal.DigitsOnly(d.CNPJ))
			}
			if d.RazaoSocial != "" {
				b.SetDestinatarioNome(d.RazaoSocial)
			}
		}
		if doc.Coligada != "" {
			b.SetColigada(doc.Coligada)
		}
		if doc.Filial != "" {
			b.SetFilial(doc.Filial)
		}
		if doc.Valores != nil && doc.Valores.ValorTotal != nil {
			b.SetValorTotal(*doc.Valores.ValorTotal)
		}
		if doc.ErrorMessage != "" {
			b.SetErrorMessage(doc.ErrorMessage)
		}
		builders = append(builders, b)
	}
	if len(builders) == 0 {
		return nil
	}

	if _, err := r.ent.FiscalRecord.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("records save failed", "batch_id", batchID, "count", len(builders), "error", err)
		return err
	}
	r.logger.Info("records saved", "batch_id", batchID, "count", len(builders))
	return nil
}

func (r *recordRepo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*ent.FiscalRecord, error) {
	rows, err := r.ent.FiscalRecord.Query().
		Where(entrecord.BatchID(batchID)).
		Order(entrecord.ByFilename()).
		All(ctx)
	if err != nil {
		r.logger.Error("records list failed", "batch_id", batchID, "error", err)
		return nil, err
	}
	return rows, nil
}
