package server

import (
	"context"
	"encoding/json"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fiscaldata/nf-extractor/gen/ent"
	v1 "github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1"
	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/export"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

// ExportReport renders the XLSX report for a finished batch from its stored
// documents and returns the bytes inline.
func (s *BatchService) ExportReport(ctx context.Context, req *v1.ExportReportRequest) (*v1.ExportReportResponse, error) {
	id, err := parseBatchID(req.GetBatchId())
	if err != nil {
		return nil, err
	}

	row, err := s.batches.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "batch not found")
		}
		s.logger.Error("failed to load batch", "batch_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get batch: %v", err)
	}
	if row.Status == string(constants.BatchRunning) {
		return nil, status.Error(codes.FailedPrecondition, "batch is still running")
	}

	recs, err := s.records.ListByBatch(ctx, id)
	if err != nil {
		s.logger.Error("failed to list batch records", "batch_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "list records: %v", err)
	}

	docs := make([]*fiscal.Document, 0, len(recs))
	for _, r := range recs {
		if len(r.Document) == 0 {
			continue
		}
		var d fiscal.Document
		if err := json.Unmarshal(r.Document, &d); err != nil {
			s.logger.Warn("skipping undecodable document row", "record_id", r.ID, "error", err)
			continue
		}
		docs = append(docs, &d)
	}
	if len(docs) == 0 {
		return nil, status.Error(codes.NotFound, "batch has no documents")
	}

	xlsx, err := s.reporter.Render(docs)
	if err != nil {
		s.logger.Error("failed to render report", "batch_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "render report: %v", err)
	}

	s.logger.Info("report exported", "batch_id", id, "documents", len(docs), "bytes", len(xlsx))
	return &v1.ExportReportResponse{
		Filename: export.ReportFilename(time.Now()),
		Xlsx:     xlsx,
	}, nil
}
