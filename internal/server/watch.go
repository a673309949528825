package server

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fiscaldata/nf-extractor/gen/ent"
	v1 "github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1"
	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/async"
)

// WatchBatch streams progress updates until the batch finishes. Watching a
// batch that already finished yields a single terminal frame.
func (s *BatchService) WatchBatch(req *v1.WatchBatchRequest, stream v1.BatchService_WatchBatchServer) error {
	id, err := parseBatchID(req.GetBatchId())
	if err != nil {
		return err
	}
	ctx := stream.Context()

	run, ok := s.runner.Get(id)
	if !ok {
		// Not in flight; answer from the database so finished batches still
		// resolve instead of erroring.
		row, err := s.batches.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return status.Error(codes.NotFound, "batch not found")
			}
			s.logger.Error("failed to load batch", "batch_id", id, "error", err)
			return status.Errorf(codes.Internal, "get batch: %v", err)
		}
		return stream.Send(rowProgress(row))
	}

	updates, stop := run.Watch()
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, open := <-updates:
			if !open {
				return stream.Send(runProgress(run))
			}
			frame := &v1.BatchProgress{
				BatchId:    id.String(),
				Current:    uint32(u.Current),
				Total:      uint32(u.Total),
				Filename:   u.Filename,
				Status:     string(u.Status),
				Percentage: u.Percentage(),
			}
			if err := stream.Send(frame); err != nil {
				return err
			}
		}
	}
}

// runProgress builds the terminal frame for a run that finished while being
// watched.
func runProgress(run *async.Run) *v1.BatchProgress {
	res := run.Result()
	st := constants.BatchCompleted
	if run.Cancelled() {
		st = constants.BatchCancelled
	}
	pct := float64(0)
	if res.TotalFiles > 0 {
		pct = float64(len(res.Results)) / float64(res.TotalFiles) * 100
	}
	return &v1.BatchProgress{
		BatchId:    run.ID.String(),
		Current:    uint32(len(res.Results)),
		Total:      uint32(res.TotalFiles),
		Status:     string(st),
		Percentage: pct,
	}
}

// rowProgress builds the terminal frame for a batch only known from storage.
func rowProgress(b *ent.ExtractBatch) *v1.BatchProgress {
	done := b.Succeeded + b.Failed + b.Cancelled
	pct := float64(0)
	if b.TotalFiles > 0 {
		pct = float64(done) / float64(b.TotalFiles) * 100
	}
	return &v1.BatchProgress{
		BatchId:    b.ID.String(),
		Current:    uint32(done),
		Total:      uint32(b.TotalFiles),
		Status:     b.Status,
		Percentage: pct,
	}
}
