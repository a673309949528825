// Package server exposes the batch pipeline over gRPC.
package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1"
	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/async"
	"github.com/fiscaldata/nf-extractor/internal/export"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/ingest"
	"github.com/fiscaldata/nf-extractor/internal/repository"
)

// persistTimeout bounds the storage work that runs after a batch finishes,
// detached from any request context.
const persistTimeout = 30 * time.Second

type BatchService struct {
	v1.UnimplementedBatchServiceServer
	collector *ingest.Collector
	runner    *async.Runner
	batches   repository.BatchRepository
	records   repository.RecordRepository
	reporter  *export.Reporter
	logger    *slog.Logger
}

func NewBatchService(
	collector *ingest.Collector,
	runner *async.Runner,
	batches repository.BatchRepository,
	records repository.RecordRepository,
	reporter *export.Reporter,
	logger *slog.Logger,
) *BatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchService{
		collector: collector,
		runner:    runner,
		batches:   batches,
		records:   records,
		reporter:  reporter,
		logger:    logger,
	}
}

func parseBatchID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "batch_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "batch_id must be a UUID")
	}
	return id, nil
}

// persist is the DoneFunc for a submitted run: it stores the per-document
// records, writes the XLSX report, and closes out the batch row. The submit
// request context is long gone by the time this fires.
func (s *BatchService) persist(id uuid.UUID) async.DoneFunc {
	return func(res *fiscal.BatchResult, cancelled bool) {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.records.SaveResults(ctx, id, res.Results); err != nil {
			s.logger.Error("failed to save batch records", "batch_id", id, "error", err)
		}

		reportPath := ""
		if docs := export.FromBatch(res); len(docs) > 0 {
			p, err := s.reporter.WriteReport(docs)
			if err != nil {
				s.logger.Error("failed to write batch report", "batch_id", id, "error", err)
			} else {
				reportPath = p
			}
		}

		st := constants.BatchCompleted
		if cancelled {
			st = constants.BatchCancelled
		}
		if err := s.batches.Finish(ctx, id, res, st, reportPath); err != nil {
			s.logger.Error("failed to finish batch", "batch_id", id, "error", err)
		}
	}
}
