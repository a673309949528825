package fiscal

import (
	"time"

	"github.com/google/uuid"

	"github.com/fiscaldata/nf-extractor/constants"
)

// ProcessingResult is the outcome of running one file through the pipeline.
// The document is always present; failures are carried in its status and
// error message rather than as a separate error value.
type ProcessingResult struct {
	Document *Document     `json:"document"`
	Duration time.Duration `json:"duration"`
}

// Success reports whether the file completed extraction.
func (r ProcessingResult) Success() bool {
	return r.Document != nil && r.Document.Status == constants.StatusCompleted
}

// BatchResult aggregates the outcomes of a whole batch run. Results are
// folded in completion order; callers needing per-file order sort by filename.
type BatchResult struct {
	ID         uuid.UUID          `json:"id"`
	Results    []ProcessingResult `json:"results"`
	TotalFiles int                `json:"total_files"`
	Succeeded  int                `json:"succeeded"`
	Failed     int                `json:"failed"`
	Cancelled  int                `json:"cancelled"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
}

// NewBatchResult starts an aggregate for the given number of input files.
func NewBatchResult(total int) *BatchResult {
	return &BatchResult{
		ID:         uuid.New(),
		Results:    make([]ProcessingResult, 0, total),
		TotalFiles: total,
		StartedAt:  time.Now(),
	}
}

// Add folds one result into the aggregate, bumping the matching counter.
func (b *BatchResult) Add(r ProcessingResult) {
	b.Results = append(b.Results, r)
	switch r.Document.Status {
	case constants.StatusCompleted:
		b.Succeeded++
	case constants.StatusCancelled:
		b.Cancelled++
	default:
		b.Failed++
	}
}

// Finalize stamps the end time. Called exactly once, after the last Add.
func (b *BatchResult) Finalize() {
	b.FinishedAt = time.Now()
}

// SuccessRate returns the completed fraction in [0, 1].
func (b *BatchResult) SuccessRate() float64 {
	if b.TotalFiles == 0 {
		return 0
	}
	return float64(b.Succeeded) / float64(b.TotalFiles)
}

// ProgressUpdate is delivered to the batch progress callback at task start
// and completion. Callbacks run on worker goroutines and must be cheap.
type ProgressUpdate struct {
	Current  int                        `json:"current"`
	Total    int                        `json:"total"`
	Filename string                     `json:"filename"`
	Status   constants.ProcessingStatus `json:"status"`
}

// Percentage returns overall progress in [0, 100].
func (p ProgressUpdate) Percentage() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total) * 100
}
