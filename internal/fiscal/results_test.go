package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiscaldata/nf-extractor/constants"
)

func resultWithStatus(st constants.ProcessingStatus) ProcessingResult {
	doc := NewDocument("nota.pdf")
	doc.Status = st
	return ProcessingResult{Document: doc}
}

func TestProcessingResultSuccess(t *testing.T) {
	assert.True(t, resultWithStatus(constants.StatusCompleted).Success())
	assert.False(t, resultWithStatus(constants.StatusError).Success())
	assert.False(t, ProcessingResult{}.Success())
}

func TestBatchResultCounters(t *testing.T) {
	b := NewBatchResult(4)

	b.Add(resultWithStatus(constants.StatusCompleted))
	b.Add(resultWithStatus(constants.StatusCompleted))
	b.Add(resultWithStatus(constants.StatusError))
	b.Add(resultWithStatus(constants.StatusCancelled))
	b.Finalize()

	assert.Equal(t, 4, b.TotalFiles)
	assert.Equal(t, 2, b.Succeeded)
	assert.Equal(t, 1, b.Failed)
	assert.Equal(t, 1, b.Cancelled)
	assert.Len(t, b.Results, 4)
	assert.InDelta(t, 0.5, b.SuccessRate(), 0.0001)
	assert.False(t, b.FinishedAt.IsZero())
}

func TestSuccessRateEmptyBatch(t *testing.T) {
	assert.Zero(t, NewBatchResult(0).SuccessRate())
}

func TestProgressPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, ProgressUpdate{Current: 1, Total: 2}.Percentage(), 0.0001)
	assert.InDelta(t, 100.0, ProgressUpdate{Current: 3, Total: 3}.Percentage(), 0.0001)
	assert.Zero(t, ProgressUpdate{}.Percentage())
}
