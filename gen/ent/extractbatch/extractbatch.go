// Code generated by ent, DO NOT EDIT.

package extractbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractbatch type in the database.
	Label = "extract_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalFiles holds the string denoting the total_files field in the database.
	FieldTotalFiles = "total_files"
	// FieldSucceeded holds the string denoting the succeeded field in the database.
	FieldSucceeded = "succeeded"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldCancelled holds the string denoting the cancelled field in the database.
	FieldCancelled = "cancelled"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldReportPath holds the string denoting the report_path field in the database.
	FieldReportPath = "report_path"
	// EdgeRecords holds the string denoting the records edge name in mutations.
	EdgeRecords = "records"
	// Table holds the table name of the extractbatch in the database.
	Table = "extract_batch"
	// RecordsTable is the table that holds the records relation/edge.
	RecordsTable = "fiscal_record"
	// RecordsInverseTable is the table name for the FiscalRecord entity.
	// It exists in this package in order to avoid circular dependency with the "fiscalrecord" package.
	RecordsInverseTable = "fiscal_record"
	// RecordsColumn is the table column denoting the records relation/edge.
	RecordsColumn = "batch_id"
)

// Columns holds all SQL columns for extractbatch fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldStatus,
	FieldTotalFiles,
	FieldSucceeded,
	FieldFailed,
	FieldCancelled,
	FieldStartedAt,
	FieldFinishedAt,
	FieldReportPath,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	TotalFilesValidator func(int) error
	// DefaultSucceeded holds the default value on creation for the "succeeded" field.
	DefaultSucceeded int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultCancelled holds the default value on creation for the "cancelled" field.
	DefaultCancelled int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalFiles orders the results by the total_files field.
func ByTotalFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFiles, opts...).ToFunc()
}

// BySucceeded orders the results by the succeeded field.
func BySucceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSucceeded, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByCancelled orders the results by the cancelled field.
func ByCancelled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelled, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByReportPath orders the results by the report_path field.
func ByReportPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportPath, opts...).ToFunc()
}

// ByRecordsCount orders the results by records count.
func ByRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecordsStep(), opts...)
	}
}

// ByRecords orders the results by records terms.
func ByRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
	)
}
