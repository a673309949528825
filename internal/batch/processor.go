// Package batch fans a set of documents out over a fixed worker pool with
// cooperative cancellation and progress reporting.
package batch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/pipeline"
)

// Worker pool bounds. One document per worker; OCR passes are already
// process-heavy, so the pool stays small.
const (
	DefaultWorkers = 3
	MinWorkers     = 1
	MaxWorkers     = 10
)

// Pipeline is the per-document surface the pool drives. A *pipeline.Extractor
// satisfies it.
type Pipeline interface {
	Process(ctx context.Context, filename string, pdf []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult
}

// Item is one queued document: its display name and raw bytes. Archives are
// flattened into items before submission.
type Item struct {
	Filename string
	Data     []byte
}

// ProgressFunc receives an update at task start and at every fold. Callbacks
// run on worker goroutines and must be cheap; panics are swallowed.
type ProgressFunc func(fiscal.ProgressUpdate)

// Processor runs batches over a shared pipeline. A Processor is reusable
// but runs one batch at a time; the cancel flag is whole-batch.
type Processor struct {
	pipe    Pipeline
	logger  *slog.Logger
	workers int

	progress  ProgressFunc
	cancelled atomic.Bool
}

type Option func(*Processor)

// WithWorkers sets the pool width, clamped to the documented bounds.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n < MinWorkers {
			n = MinWorkers
		}
		if n > MaxWorkers {
			n = MaxWorkers
		}
		p.workers = n
	}
}

// WithProgress registers the progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Processor) { p.progress = fn }
}

func NewProcessor(pipe Pipeline, logger *slog.Logger, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{pipe: pipe, logger: logger, workers: DefaultWorkers}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Cancel flips the batch cancel flag. Queued documents are marked CANCELLED
// without running; in-flight documents finish their current step and fold as
// CANCELLED.
func (p *Processor) Cancel() {
	p.logger.Warn("batch.cancel.requested")
	p.cancelled.Store(true)
}

// IsCancelled reports the cancel flag. It is the check threaded through the
// pipeline.
func (p *Processor) IsCancelled() bool {
	return p.cancelled.Load()
}

// Run processes every item and returns the aggregate. The result always
// holds exactly one entry per input item, folded in completion order.
func (p *Processor) Run(ctx context.Context, items []Item) *fiscal.BatchResult {
	p.cancelled.Store(false)

	batch := fiscal.NewBatchResult(len(items))
	total := len(items)
	if total == 0 {
		p.logger.Warn("batch.empty")
		batch.Finalize()
		return batch
	}

	workers := p.workers
	if workers > total {
		workers = total
	}
	p.logger.Info("batch.start", "batch_id", batch.ID, "files", total, "workers", workers)

	queue := make(chan Item, total)
	for _, it := range items {
		queue <- it
	}
	close(queue)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for it := range queue {
				var res fiscal.ProcessingResult
				if p.cancelled.Load() {
					p.logger.Info("batch.skip", "worker_id", workerID, "file", it.Filename)
					res = cancelledResult(it.Filename)
				} else {
					mu.Lock()
					started := len(batch.Results)
					mu.Unlock()
					p.notify(fiscal.ProgressUpdate{
						Current:  started,
						Total:    total,
						Filename: it.Filename,
						Status:   constants.StatusProcessing,
					})

					res = p.pipe.Process(ctx, it.Filename, it.Data, p.cancelled.Load)

					// The flag may have flipped while this document was
					// mid-pipeline; it still folds, but as cancelled.
					if p.cancelled.Load() {
						res.Document.Status = constants.StatusCancelled
					}
				}

				mu.Lock()
				batch.Add(res)
				done := len(batch.Results)
				mu.Unlock()

				p.notify(fiscal.ProgressUpdate{
					Current:  done,
					Total:    total,
					Filename: it.Filename,
					Status:   res.Document.Status,
				})
			}
		}(w + 1)
	}
	wg.Wait()

	batch.Finalize()
	p.logger.Info("batch.done",
		"batch_id", batch.ID,
		"succeeded", batch.Succeeded,
		"failed", batch.Failed,
		"cancelled", batch.Cancelled,
		"elapsed_ms", batch.FinishedAt.Sub(batch.StartedAt).Milliseconds(),
	)
	return batch
}

func (p *Processor) notify(u fiscal.ProgressUpdate) {
	if p.progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("batch.progress.panic", "file", u.Filename, "panic", r)
		}
	}()
	p.progress(u)
}

func cancelledResult(filename string) fiscal.ProcessingResult {
	doc := fiscal.NewDocument(filename)
	doc.Status = constants.StatusCancelled
	return fiscal.ProcessingResult{Document: doc}
}
