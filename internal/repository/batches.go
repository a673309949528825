package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/gen/ent"
	entbatch "github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

type BatchRepository interface {
	Create(ctx context.Context, source string, totalFiles int) (*ent.ExtractBatch, error)
	Finish(ctx context.Context, id uuid.UUID, result *fiscal.BatchResult, status constants.BatchStatus, reportPath string) error
	Get(ctx context.Context, id uuid.UUID) (*ent.ExtractBatch, error)
	ListRecent(ctx context.Context, limit int) ([]*ent.ExtractBatch, error)
}

type batchRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(entc *ent.Client, logger *slog.Logger) BatchRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &batchRepo{ent: entc, logger: logger}
}

func (r *batchRepo) Create(ctx context.Context, source string, totalFiles int) (*ent.ExtractBatch, error) {
	row, err := r.ent.ExtractBatch.Create().
		SetSource(source).
		SetTotalFiles(totalFiles).
		Save(ctx)
	if err != nil {
		r.logger.Error("batch create failed", "source", source, "error", err)
		return nil, err
	}
	r.logger.Info("batch created", "batch_id", row.ID, "total_files", totalFiles)
	return row, nil
}

func (r *batchRepo) Finish(ctx context.Context, id uuid.UUID, result *fiscal.BatchResult, status constants.BatchStatus, reportPath string) error {
	upd := r.ent.ExtractBatch.UpdateOneID(id).
		SetStatus(string(status)).
		SetSucceeded(result.Succeeded).
		SetFailed(result.Failed).
		SetCancelled(result.Cancelled).
		SetFinishedAt(time.Now())
	if reportPath != "" {
		upd = upd.SetReportPath(reportPath)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("batch finish failed", "batch_id", id, "error", err)
		return err
	}
	r.logger.Info("batch finished",
		"batch_id", id,
		"status", status,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"cancelled", result.Cancelled,
	)
	return nil
}

func (r *batchRepo) Get(ctx context.Context, id uuid.UUID) (*ent.ExtractBatch, error) {
	return r.ent.ExtractBatch.Get(ctx, id)
}

func (r *batchRepo) ListRecent(ctx context.Context, limit int) ([]*ent.ExtractBatch, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.ent.ExtractBatch.Query().
		Order(entbatch.ByStartedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("batch list failed", "error", err)
		return nil, err
	}
	return rows, nil
}
