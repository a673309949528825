// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/google/uuid"
)

// ExtractBatch is the model entity for the ExtractBatch schema.
type ExtractBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TotalFiles holds the value of the "total_files" field.
	TotalFiles int `json:"total_files,omitempty"`
	// Succeeded holds the value of the "succeeded" field.
	Succeeded int `json:"succeeded,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed int `json:"failed,omitempty"`
	// Cancelled holds the value of the "cancelled" field.
	Cancelled int `json:"cancelled,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// ReportPath holds the value of the "report_path" field.
	ReportPath *string `json:"report_path,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractBatchQuery when eager-loading is set.
	Edges        ExtractBatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractBatchEdges holds the relations/edges for other nodes in the graph.
type ExtractBatchEdges struct {
	// Records holds the value of the records edge.
	Records []*FiscalRecord `json:"records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordsOrErr returns the Records value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractBatchEdges) RecordsOrErr() ([]*FiscalRecord, error) {
	if e.loadedTypes[0] {
		return e.Records, nil
	}
	return nil, &NotLoadedError{edge: "records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractbatch.FieldTotalFiles, extractbatch.FieldSucceeded, extractbatch.FieldFailed, extractbatch.FieldCancelled:
			values[i] = new(sql.NullInt64)
		case extractbatch.FieldSource, extractbatch.FieldStatus, extractbatch.FieldReportPath:
			values[i] = new(sql.NullString)
		case extractbatch.FieldStartedAt, extractbatch.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extractbatch.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractBatch fields.
func (_m *ExtractBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractbatch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractbatch.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case extractbatch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractbatch.FieldTotalFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_files", values[i])
			} else if value.Valid {
				_m.TotalFiles = int(value.Int64)
			}
		case extractbatch.FieldSucceeded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field succeeded", values[i])
			} else if value.Valid {
				_m.Succeeded = int(value.Int64)
			}
		case extractbatch.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case extractbatch.FieldCancelled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled", values[i])
			} else if value.Valid {
				_m.Cancelled = int(value.Int64)
			}
		case extractbatch.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case extractbatch.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case extractbatch.FieldReportPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_path", values[i])
			} else if value.Valid {
				_m.ReportPath = new(string)
				*_m.ReportPath = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractBatch.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecords queries the "records" edge of the ExtractBatch entity.
func (_m *ExtractBatch) QueryRecords() *FiscalRecordQuery {
	return NewExtractBatchClient(_m.config).QueryRecords(_m)
}

// Update returns a builder for updating this ExtractBatch.
// Note that you need to call ExtractBatch.Unwrap() before calling this method if this ExtractBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractBatch) Update() *ExtractBatchUpdateOne {
	return NewExtractBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractBatch) Unwrap() *ExtractBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractBatch) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFiles))
	builder.WriteString(", ")
	builder.WriteString("succeeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Succeeded))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("cancelled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancelled))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReportPath; v != nil {
		builder.WriteString("report_path=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExtractBatches is a parsable slice of ExtractBatch.
type ExtractBatches []*ExtractBatch
