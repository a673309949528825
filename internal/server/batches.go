package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fiscaldata/nf-extractor/gen/ent"
	v1 "github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1"
	"github.com/fiscaldata/nf-extractor/internal/batch"
	"github.com/fiscaldata/nf-extractor/internal/utils"
)

// SubmitBatch collects the given paths and starts extraction in the
// background. The response carries the persisted batch id; progress is
// available through WatchBatch.
func (s *BatchService) SubmitBatch(ctx context.Context, req *v1.SubmitBatchRequest) (*v1.SubmitBatchResponse, error) {
	paths := make([]string, 0, len(req.GetPaths()))
	for _, p := range req.GetPaths() {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		s.logger.Error("submit request missing paths")
		return nil, status.Error(codes.InvalidArgument, "at least one path is required")
	}

	items, err := s.collector.CollectPaths(paths)
	if err != nil {
		s.logger.Error("submit collect failed", "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "collect: %v", err)
	}
	if len(items) == 0 {
		return nil, status.Error(codes.InvalidArgument, "no processable documents under the given paths")
	}

	row, err := s.SubmitItems(ctx, strings.Join(paths, ","), items)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create batch: %v", err)
	}
	return &v1.SubmitBatchResponse{
		BatchId:    row.ID.String(),
		TotalFiles: uint32(len(items)),
	}, nil
}

// SubmitItems persists a batch row for already collected items and starts
// the run. It backs the SubmitBatch RPC and the daemon's watched-inbox path.
func (s *BatchService) SubmitItems(ctx context.Context, source string, items []batch.Item) (*ent.ExtractBatch, error) {
	row, err := s.batches.Create(ctx, source, len(items))
	if err != nil {
		s.logger.Error("failed to create batch", "source", source, "error", err)
		return nil, err
	}
	s.runner.Submit(row.ID, source, items, s.persist(row.ID))
	s.logger.Info("batch submitted", "batch_id", row.ID, "source", source, "files", len(items))
	return row, nil
}

// GetBatch returns one batch row and its per-document records.
func (s *BatchService) GetBatch(ctx context.Context, req *v1.GetBatchRequest) (*v1.GetBatchResponse, error) {
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
	recs, err := s.records.ListByBatch(ctx, id)
	if err != nil {
		s.logger.Error("failed to list batch records", "batch_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "list records: %v", err)
	}

	out := &v1.GetBatchResponse{
		Batch:   utils.ToPBBatch(row),
		Records: make([]*v1.Record, 0, len(recs)),
	}
	for _, r := range recs {
		out.Records = append(out.Records, utils.ToPBRecord(r))
	}
	return out, nil
}

// ListBatches returns recent batches, newest first.
func (s *BatchService) ListBatches(ctx context.Context, req *v1.ListBatchesRequest) (*v1.ListBatchesResponse, error) {
	rows, err := s.batches.ListRecent(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to list batches", "error", err)
		return nil, status.Errorf(codes.Internal, "list batches: %v", err)
	}
	out := &v1.ListBatchesResponse{Batches: make([]*v1.Batch, 0, len(rows))}
	for _, b := range rows {
		out.Batches = append(out.Batches, utils.ToPBBatch(b))
	}
	return out, nil
}

// CancelBatch flips the cancel flag on an in-flight batch. Cancelling an
// already finished batch is not an error; the response just reports that
// nothing was running.
func (s *BatchService) CancelBatch(ctx context.Context, req *v1.CancelBatchRequest) (*v1.CancelBatchResponse, error) {
	id, err := parseBatchID(req.GetBatchId())
	if err != nil {
		return nil, err
	}

	if s.runner.Cancel(id) {
		s.logger.Info("batch cancel requested", "batch_id", id)
		return &v1.CancelBatchResponse{Cancelling: true}, nil
	}

	if _, err := s.batches.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "batch not found")
		}
		s.logger.Error("failed to load batch", "batch_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get batch: %v", err)
	}
	return &v1.CancelBatchResponse{Cancelling: false}, nil
}
