package constants

// ProcessingStatus is the canonical lifecycle state for a document inside a batch.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ProcessingStatus = "PENDING"    // queued, not yet picked up by a worker
	StatusProcessing ProcessingStatus = "PROCESSING" // a worker is running the pipeline
	StatusCompleted  ProcessingStatus = "COMPLETED"  // terminal success
	StatusError      ProcessingStatus = "ERROR"      // terminal failure, see error message
	StatusCancelled  ProcessingStatus = "CANCELLED"  // batch was cancelled before or during the run
)

// ProcessingStatuses holds the allowed values for record status columns.
var ProcessingStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusError),
	string(StatusCancelled),
}

// BatchStatus is the aggregate state of a whole extraction batch.
type BatchStatus string

const (
	BatchRunning   BatchStatus = "RUNNING"
	BatchCompleted BatchStatus = "COMPLETED"
	BatchCancelled BatchStatus = "CANCELLED"
)

// BatchStatuses holds the allowed values for the batch status column.
var BatchStatuses = []string{
	string(BatchRunning),
	string(BatchCompleted),
	string(BatchCancelled),
}
