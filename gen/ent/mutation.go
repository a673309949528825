// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/fiscaldata/nf-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractBatch = "ExtractBatch"
	TypeFiscalRecord = "FiscalRecord"
)

// ExtractBatchMutation represents an operation that mutates the ExtractBatch nodes in the graph.
type ExtractBatchMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	source         *string
	status         *string
	total_files    *int
	addtotal_files *int
	succeeded      *int
	addsucceeded   *int
	failed         *int
	addfailed      *int
	cancelled      *int
	addcancelled   *int
	started_at     *time.Time
	finished_at    *time.Time
	report_path    *string
	clearedFields  map[string]struct{}
	records        map[uuid.UUID]struct{}
	removedrecords map[uuid.UUID]struct{}
	clearedrecords bool
	done           bool
	oldValue       func(context.Context) (*ExtractBatch, error)
	predicates     []predicate.ExtractBatch
}

var _ ent.Mutation = (*ExtractBatchMutation)(nil)

// extractbatchOption allows management of the mutation configuration using functional options.
type extractbatchOption func(*ExtractBatchMutation)

// newExtractBatchMutation creates new mutation for the ExtractBatch entity.
func newExtractBatchMutation(c config, op Op, opts ...extractbatchOption) *ExtractBatchMutation {
	m := &ExtractBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractBatchID sets the ID field of the mutation.
func withExtractBatchID(id uuid.UUID) extractbatchOption {
	return func(m *ExtractBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractBatch
		)
		m.oldValue = func(ctx context.Context) (*ExtractBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractBatch sets the old ExtractBatch of the mutation.
func withExtractBatch(node *ExtractBatch) extractbatchOption {
	return func(m *ExtractBatchMutation) {
		m.oldValue = func(context.Context) (*ExtractBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractBatch entities.
func (m *ExtractBatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractBatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractBatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *ExtractBatchMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ExtractBatchMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ExtractBatchMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *ExtractBatchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractBatchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractBatchMutation) ResetStatus() {
	m.status = nil
}

// SetTotalFiles sets the "total_files" field.
func (m *ExtractBatchMutation) SetTotalFiles(i int) {
	m.total_files = &i
	m.addtotal_files = nil
}

// TotalFiles returns the value of the "total_files" field in the mutation.
func (m *ExtractBatchMutation) TotalFiles() (r int, exists bool) {
	v := m.total_files
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFiles returns the old "total_files" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldTotalFiles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFiles: %w", err)
	}
	return oldValue.TotalFiles, nil
}

// AddTotalFiles adds i to the "total_files" field.
func (m *ExtractBatchMutation) AddTotalFiles(i int) {
	if m.addtotal_files != nil {
		*m.addtotal_files += i
	} else {
		m.addtotal_files = &i
	}
}

// AddedTotalFiles returns the value that was added to the "total_files" field in this mutation.
func (m *ExtractBatchMutation) AddedTotalFiles() (r int, exists bool) {
	v := m.addtotal_files
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFiles resets all changes to the "total_files" field.
func (m *ExtractBatchMutation) ResetTotalFiles() {
	m.total_files = nil
	m.addtotal_files = nil
}

// SetSucceeded sets the "succeeded" field.
func (m *ExtractBatchMutation) SetSucceeded(i int) {
	m.succeeded = &i
	m.addsucceeded = nil
}

// Succeeded returns the value of the "succeeded" field in the mutation.
func (m *ExtractBatchMutation) Succeeded() (r int, exists bool) {
	v := m.succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceeded returns the old "succeeded" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldSucceeded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceeded: %w", err)
	}
	return oldValue.Succeeded, nil
}

// AddSucceeded adds i to the "succeeded" field.
func (m *ExtractBatchMutation) AddSucceeded(i int) {
	if m.addsucceeded != nil {
		*m.addsucceeded += i
	} else {
		m.addsucceeded = &i
	}
}

// AddedSucceeded returns the value that was added to the "succeeded" field in this mutation.
func (m *ExtractBatchMutation) AddedSucceeded() (r int, exists bool) {
	v := m.addsucceeded
	if v == nil {
		return
	}
	return *v, true
}

// ResetSucceeded resets all changes to the "succeeded" field.
func (m *ExtractBatchMutation) ResetSucceeded() {
	m.succeeded = nil
	m.addsucceeded = nil
}

// SetFailed sets the "failed" field.
func (m *ExtractBatchMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *ExtractBatchMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *ExtractBatchMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *ExtractBatchMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *ExtractBatchMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetCancelled sets the "cancelled" field.
func (m *ExtractBatchMutation) SetCancelled(i int) {
	m.cancelled = &i
	m.addcancelled = nil
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *ExtractBatchMutation) Cancelled() (r int, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldCancelled(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// AddCancelled adds i to the "cancelled" field.
func (m *ExtractBatchMutation) AddCancelled(i int) {
	if m.addcancelled != nil {
		*m.addcancelled += i
	} else {
		m.addcancelled = &i
	}
}

// AddedCancelled returns the value that was added to the "cancelled" field in this mutation.
func (m *ExtractBatchMutation) AddedCancelled() (r int, exists bool) {
	v := m.addcancelled
	if v == nil {
		return
	}
	return *v, true
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *ExtractBatchMutation) ResetCancelled() {
	m.cancelled = nil
	m.addcancelled = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractBatchMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractBatchMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractBatchMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractBatchMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractBatchMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractBatchMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractbatch.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractBatchMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractbatch.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractBatchMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractbatch.FieldFinishedAt)
}

// SetReportPath sets the "report_path" field.
func (m *ExtractBatchMutation) SetReportPath(s string) {
	m.report_path = &s
}

// ReportPath returns the value of the "report_path" field in the mutation.
func (m *ExtractBatchMutation) ReportPath() (r string, exists bool) {
	v := m.report_path
	if v == nil {
		return
	}
	return *v, true
}

// OldReportPath returns the old "report_path" field's value of the ExtractBatch entity.
// If the ExtractBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractBatchMutation) OldReportPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportPath: %w", err)
	}
	return oldValue.ReportPath, nil
}

// ClearReportPath clears the value of the "report_path" field.
func (m *ExtractBatchMutation) ClearReportPath() {
	m.report_path = nil
	m.clearedFields[extractbatch.FieldReportPath] = struct{}{}
}

// ReportPathCleared returns if the "report_path" field was cleared in this mutation.
func (m *ExtractBatchMutation) ReportPathCleared() bool {
	_, ok := m.clearedFields[extractbatch.FieldReportPath]
	return ok
}

// ResetReportPath resets all changes to the "report_path" field.
func (m *ExtractBatchMutation) ResetReportPath() {
	m.report_path = nil
	delete(m.clearedFields, extractbatch.FieldReportPath)
}

// AddRecordIDs adds the "records" edge to the FiscalRecord entity by ids.
func (m *ExtractBatchMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the FiscalRecord entity.
func (m *ExtractBatchMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the FiscalRecord entity was cleared.
func (m *ExtractBatchMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the FiscalRecord entity by IDs.
func (m *ExtractBatchMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the FiscalRecord entity.
func (m *ExtractBatchMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *ExtractBatchMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *ExtractBatchMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the ExtractBatchMutation builder.
func (m *ExtractBatchMutation) Where(ps ...predicate.ExtractBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractBatch).
func (m *ExtractBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractBatchMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source != nil {
		fields = append(fields, extractbatch.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, extractbatch.FieldStatus)
	}
	if m.total_files != nil {
		fields = append(fields, extractbatch.FieldTotalFiles)
	}
	if m.succeeded != nil {
		fields = append(fields, extractbatch.FieldSucceeded)
	}
	if m.failed != nil {
		fields = append(fields, extractbatch.FieldFailed)
	}
	if m.cancelled != nil {
		fields = append(fields, extractbatch.FieldCancelled)
	}
	if m.started_at != nil {
		fields = append(fields, extractbatch.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractbatch.FieldFinishedAt)
	}
	if m.report_path != nil {
		fields = append(fields, extractbatch.FieldReportPath)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractbatch.FieldSource:
		return m.Source()
	case extractbatch.FieldStatus:
		return m.Status()
	case extractbatch.FieldTotalFiles:
		return m.TotalFiles()
	case extractbatch.FieldSucceeded:
		return m.Succeeded()
	case extractbatch.FieldFailed:
		return m.Failed()
	case extractbatch.FieldCancelled:
		return m.Cancelled()
	case extractbatch.FieldStartedAt:
		return m.StartedAt()
	case extractbatch.FieldFinishedAt:
		return m.FinishedAt()
	case extractbatch.FieldReportPath:
		return m.ReportPath()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractbatch.FieldSource:
		return m.OldSource(ctx)
	case extractbatch.FieldStatus:
		return m.OldStatus(ctx)
	case extractbatch.FieldTotalFiles:
		return m.OldTotalFiles(ctx)
	case extractbatch.FieldSucceeded:
		return m.OldSucceeded(ctx)
	case extractbatch.FieldFailed:
		return m.OldFailed(ctx)
	case extractbatch.FieldCancelled:
		return m.OldCancelled(ctx)
	case extractbatch.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractbatch.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractbatch.FieldReportPath:
		return m.OldReportPath(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractbatch.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case extractbatch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractbatch.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFiles(v)
		return nil
	case extractbatch.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceeded(v)
		return nil
	case extractbatch.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case extractbatch.FieldCancelled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case extractbatch.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractbatch.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractbatch.FieldReportPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportPath(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractBatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_files != nil {
		fields = append(fields, extractbatch.FieldTotalFiles)
	}
	if m.addsucceeded != nil {
		fields = append(fields, extractbatch.FieldSucceeded)
	}
	if m.addfailed != nil {
		fields = append(fields, extractbatch.FieldFailed)
	}
	if m.addcancelled != nil {
		fields = append(fields, extractbatch.FieldCancelled)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractbatch.FieldTotalFiles:
		return m.AddedTotalFiles()
	case extractbatch.FieldSucceeded:
		return m.AddedSucceeded()
	case extractbatch.FieldFailed:
		return m.AddedFailed()
	case extractbatch.FieldCancelled:
		return m.AddedCancelled()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractbatch.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFiles(v)
		return nil
	case extractbatch.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSucceeded(v)
		return nil
	case extractbatch.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	case extractbatch.FieldCancelled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCancelled(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractBatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractbatch.FieldFinishedAt) {
		fields = append(fields, extractbatch.FieldFinishedAt)
	}
	if m.FieldCleared(extractbatch.FieldReportPath) {
		fields = append(fields, extractbatch.FieldReportPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractBatchMutation) ClearField(name string) error {
	switch name {
	case extractbatch.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractbatch.FieldReportPath:
		m.ClearReportPath()
		return nil
	}
	return fmt.Errorf("unknown ExtractBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractBatchMutation) ResetField(name string) error {
	switch name {
	case extractbatch.FieldSource:
		m.ResetSource()
		return nil
	case extractbatch.FieldStatus:
		m.ResetStatus()
		return nil
	case extractbatch.FieldTotalFiles:
		m.ResetTotalFiles()
		return nil
	case extractbatch.FieldSucceeded:
		m.ResetSucceeded()
		return nil
	case extractbatch.FieldFailed:
		m.ResetFailed()
		return nil
	case extractbatch.FieldCancelled:
		m.ResetCancelled()
		return nil
	case extractbatch.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractbatch.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractbatch.FieldReportPath:
		m.ResetReportPath()
		return nil
	}
	return fmt.Errorf("unknown ExtractBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.records != nil {
		edges = append(edges, extractbatch.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractBatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractbatch.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrecords != nil {
		edges = append(edges, extractbatch.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractBatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractbatch.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecords {
		edges = append(edges, extractbatch.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractBatchMutation) EdgeCleared(name string) bool {
	switch name {
	case extractbatch.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractBatchMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractBatchMutation) ResetEdge(name string) error {
	switch name {
	case extractbatch.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown ExtractBatch edge %s", name)
}

// FiscalRecordMutation represents an operation that mutates the FiscalRecord nodes in the graph.
type FiscalRecordMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	filename          *string
	document_type     *string
	status            *string
	numero            *string
	chave_acesso      *string
	data_emissao      *string
	emitente_cnpj     *string
	emitente_nome     *string
	destinatario_cnpj *string
	destinatario_nome *string
	coligada          *string
	filial            *string
	valor_total       *float64
	addvalor_total    *float64
	is_scanned        *bool
	error_message     *string
	processing_ms     *int64
	addprocessing_ms  *int64
	document          *json.RawMessage
	appenddocument    json.RawMessage
	created_at        *time.Time
	clearedFields     map[string]struct{}
	batch             *uuid.UUID
	clearedbatch      bool
	done              bool
	oldValue          func(context.Context) (*FiscalRecord, error)
	predicates        []predicate.FiscalRecord
}

var _ ent.Mutation = (*FiscalRecordMutation)(nil)

// fiscalrecordOption allows management of the mutation configuration using functional options.
type fiscalrecordOption func(*FiscalRecordMutation)

// newFiscalRecordMutation creates new mutation for the FiscalRecord entity.
func newFiscalRecordMutation(c config, op Op, opts ...fiscalrecordOption) *FiscalRecordMutation {
	m := &FiscalRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFiscalRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFiscalRecordID sets the ID field of the mutation.
func withFiscalRecordID(id uuid.UUID) fiscalrecordOption {
	return func(m *FiscalRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FiscalRecord
		)
		m.oldValue = func(ctx context.Context) (*FiscalRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FiscalRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFiscalRecord sets the old FiscalRecord of the mutation.
func withFiscalRecord(node *FiscalRecord) fiscalrecordOption {
	return func(m *FiscalRecordMutation) {
		m.oldValue = func(context.Context) (*FiscalRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FiscalRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FiscalRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FiscalRecord entities.
func (m *FiscalRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FiscalRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FiscalRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FiscalRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *FiscalRecordMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *FiscalRecordMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldBatchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *FiscalRecordMutation) ResetBatchID() {
	m.batch = nil
}

// SetFilename sets the "filename" field.
func (m *FiscalRecordMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *FiscalRecordMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *FiscalRecordMutation) ResetFilename() {
	m.filename = nil
}

// SetDocumentType sets the "document_type" field.
func (m *FiscalRecordMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *FiscalRecordMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *FiscalRecordMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetStatus sets the "status" field.
func (m *FiscalRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *FiscalRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FiscalRecordMutation) ResetStatus() {
	m.status = nil
}

// SetNumero sets the "numero" field.
func (m *FiscalRecordMutation) SetNumero(s string) {
	m.numero = &s
}

// Numero returns the value of the "numero" field in the mutation.
func (m *FiscalRecordMutation) Numero() (r string, exists bool) {
	v := m.numero
	if v == nil {
		return
	}
	return *v, true
}

// OldNumero returns the old "numero" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldNumero(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumero is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumero requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumero: %w", err)
	}
	return oldValue.Numero, nil
}

// ClearNumero clears the value of the "numero" field.
func (m *FiscalRecordMutation) ClearNumero() {
	m.numero = nil
	m.clearedFields[fiscalrecord.FieldNumero] = struct{}{}
}

// NumeroCleared returns if the "numero" field was cleared in this mutation.
func (m *FiscalRecordMutation) NumeroCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldNumero]
	return ok
}

// ResetNumero resets all changes to the "numero" field.
func (m *FiscalRecordMutation) ResetNumero() {
	m.numero = nil
	delete(m.clearedFields, fiscalrecord.FieldNumero)
}

// SetChaveAcesso sets the "chave_acesso" field.
func (m *FiscalRecordMutation) SetChaveAcesso(s string) {
	m.chave_acesso = &s
}

// ChaveAcesso returns the value of the "chave_acesso" field in the mutation.
func (m *FiscalRecordMutation) ChaveAcesso() (r string, exists bool) {
	v := m.chave_acesso
	if v == nil {
		return
	}
	return *v, true
}

// OldChaveAcesso returns the old "chave_acesso" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldChaveAcesso(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChaveAcesso is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChaveAcesso requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChaveAcesso: %w", err)
	}
	return oldValue.ChaveAcesso, nil
}

// ClearChaveAcesso clears the value of the "chave_acesso" field.
func (m *FiscalRecordMutation) ClearChaveAcesso() {
	m.chave_acesso = nil
	m.clearedFields[fiscalrecord.FieldChaveAcesso] = struct{}{}
}

// ChaveAcessoCleared returns if the "chave_acesso" field was cleared in this mutation.
func (m *FiscalRecordMutation) ChaveAcessoCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldChaveAcesso]
	return ok
}

// ResetChaveAcesso resets all changes to the "chave_acesso" field.
func (m *FiscalRecordMutation) ResetChaveAcesso() {
	m.chave_acesso = nil
	delete(m.clearedFields, fiscalrecord.FieldChaveAcesso)
}

// SetDataEmissao sets the "data_emissao" field.
func (m *FiscalRecordMutation) SetDataEmissao(s string) {
	m.data_emissao = &s
}

// DataEmissao returns the value of the "data_emissao" field in the mutation.
func (m *FiscalRecordMutation) DataEmissao() (r string, exists bool) {
	v := m.data_emissao
	if v == nil {
		return
	}
	return *v, true
}

// OldDataEmissao returns the old "data_emissao" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldDataEmissao(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataEmissao is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataEmissao requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataEmissao: %w", err)
	}
	return oldValue.DataEmissao, nil
}

// ClearDataEmissao clears the value of the "data_emissao" field.
func (m *FiscalRecordMutation) ClearDataEmissao() {
	m.data_emissao = nil
	m.clearedFields[fiscalrecord.FieldDataEmissao] = struct{}{}
}

// DataEmissaoCleared returns if the "data_emissao" field was cleared in this mutation.
func (m *FiscalRecordMutation) DataEmissaoCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldDataEmissao]
	return ok
}

// ResetDataEmissao resets all changes to the "data_emissao" field.
func (m *FiscalRecordMutation) ResetDataEmissao() {
	m.data_emissao = nil
	delete(m.clearedFields, fiscalrecord.FieldDataEmissao)
}

// SetEmitenteCnpj sets the "emitente_cnpj" field.
func (m *FiscalRecordMutation) SetEmitenteCnpj(s string) {
	m.emitente_cnpj = &s
}

// EmitenteCnpj returns the value of the "emitente_cnpj" field in the mutation.
func (m *FiscalRecordMutation) EmitenteCnpj() (r string, exists bool) {
	v := m.emitente_cnpj
	if v == nil {
		return
	}
	return *v, true
}

// OldEmitenteCnpj returns the old "emitente_cnpj" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldEmitenteCnpj(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmitenteCnpj is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmitenteCnpj requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmitenteCnpj: %w", err)
	}
	return oldValue.EmitenteCnpj, nil
}

// ClearEmitenteCnpj clears the value of the "emitente_cnpj" field.
func (m *FiscalRecordMutation) ClearEmitenteCnpj() {
	m.emitente_cnpj = nil
	m.clearedFields[fiscalrecord.FieldEmitenteCnpj] = struct{}{}
}

// EmitenteCnpjCleared returns if the "emitente_cnpj" field was cleared in this mutation.
func (m *FiscalRecordMutation) EmitenteCnpjCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldEmitenteCnpj]
	return ok
}

// ResetEmitenteCnpj resets all changes to the "emitente_cnpj" field.
func (m *FiscalRecordMutation) ResetEmitenteCnpj() {
	m.emitente_cnpj = nil
	delete(m.clearedFields, fiscalrecord.FieldEmitenteCnpj)
}

// SetEmitenteNome sets the "emitente_nome" field.
func (m *FiscalRecordMutation) SetEmitenteNome(s string) {
	m.emitente_nome = &s
}

// EmitenteNome returns the value of the "emitente_nome" field in the mutation.
func (m *FiscalRecordMutation) EmitenteNome() (r string, exists bool) {
	v := m.emitente_nome
	if v == nil {
		return
	}
	return *v, true
}

// OldEmitenteNome returns the old "emitente_nome" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldEmitenteNome(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmitenteNome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmitenteNome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmitenteNome: %w", err)
	}
	return oldValue.EmitenteNome, nil
}

// ClearEmitenteNome clears the value of the "emitente_nome" field.
func (m *FiscalRecordMutation) ClearEmitenteNome() {
	m.emitente_nome = nil
	m.clearedFields[fiscalrecord.FieldEmitenteNome] = struct{}{}
}

// EmitenteNomeCleared returns if the "emitente_nome" field was cleared in this mutation.
func (m *FiscalRecordMutation) EmitenteNomeCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldEmitenteNome]
	return ok
}

// ResetEmitenteNome resets all changes to the "emitente_nome" field.
func (m *FiscalRecordMutation) ResetEmitenteNome() {
	m.emitente_nome = nil
	delete(m.clearedFields, fiscalrecord.FieldEmitenteNome)
}

// SetDestinatarioCnpj sets the "destinatario_cnpj" field.
func (m *FiscalRecordMutation) SetDestinatarioCnpj(s string) {
	m.destinatario_cnpj = &s
}

// DestinatarioCnpj returns the value of the "destinatario_cnpj" field in the mutation.
func (m *FiscalRecordMutation) DestinatarioCnpj() (r string, exists bool) {
	v := m.destinatario_cnpj
	if v == nil {
		return
	}
	return *v, true
}

// OldDestinatarioCnpj returns the old "destinatario_cnpj" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldDestinatarioCnpj(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestinatarioCnpj is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestinatarioCnpj requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestinatarioCnpj: %w", err)
	}
	return oldValue.DestinatarioCnpj, nil
}

// ClearDestinatarioCnpj clears the value of the "destinatario_cnpj" field.
func (m *FiscalRecordMutation) ClearDestinatarioCnpj() {
	m.destinatario_cnpj = nil
	m.clearedFields[fiscalrecord.FieldDestinatarioCnpj] = struct{}{}
}

// DestinatarioCnpjCleared returns if the "destinatario_cnpj" field was cleared in this mutation.
func (m *FiscalRecordMutation) DestinatarioCnpjCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldDestinatarioCnpj]
	return ok
}

// ResetDestinatarioCnpj resets all changes to the "destinatario_cnpj" field.
func (m *FiscalRecordMutation) ResetDestinatarioCnpj() {
	m.destinatario_cnpj = nil
	delete(m.clearedFields, fiscalrecord.FieldDestinatarioCnpj)
}

// SetDestinatarioNome sets the "destinatario_nome" field.
func (m *FiscalRecordMutation) SetDestinatarioNome(s string) {
	m.destinatario_nome = &s
}

// DestinatarioNome returns the value of the "destinatario_nome" field in the mutation.
func (m *FiscalRecordMutation) DestinatarioNome() (r string, exists bool) {
	v := m.destinatario_nome
	if v == nil {
		return
	}
	return *v, true
}

// OldDestinatarioNome returns the old "destinatario_nome" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldDestinatarioNome(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestinatarioNome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestinatarioNome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestinatarioNome: %w", err)
	}
	return oldValue.DestinatarioNome, nil
}

// ClearDestinatarioNome clears the value of the "destinatario_nome" field.
func (m *FiscalRecordMutation) ClearDestinatarioNome() {
	m.destinatario_nome = nil
	m.clearedFields[fiscalrecord.FieldDestinatarioNome] = struct{}{}
}

// DestinatarioNomeCleared returns if the "destinatario_nome" field was cleared in this mutation.
func (m *FiscalRecordMutation) DestinatarioNomeCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldDestinatarioNome]
	return ok
}

// ResetDestinatarioNome resets all changes to the "destinatario_nome" field.
func (m *FiscalRecordMutation) ResetDestinatarioNome() {
	m.destinatario_nome = nil
	delete(m.clearedFields, fiscalrecord.FieldDestinatarioNome)
}

// SetColigada sets the "coligada" field.
func (m *FiscalRecordMutation) SetColigada(s string) {
	m.coligada = &s
}

// Coligada returns the value of the "coligada" field in the mutation.
func (m *FiscalRecordMutation) Coligada() (r string, exists bool) {
	v := m.coligada
	if v == nil {
		return
	}
	return *v, true
}

// OldColigada returns the old "coligada" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldColigada(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColigada is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColigada requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColigada: %w", err)
	}
	return oldValue.Coligada, nil
}

// ClearColigada clears the value of the "coligada" field.
func (m *FiscalRecordMutation) ClearColigada() {
	m.coligada = nil
	m.clearedFields[fiscalrecord.FieldColigada] = struct{}{}
}

// ColigadaCleared returns if the "coligada" field was cleared in this mutation.
func (m *FiscalRecordMutation) ColigadaCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldColigada]
	return ok
}

// ResetColigada resets all changes to the "coligada" field.
func (m *FiscalRecordMutation) ResetColigada() {
	m.coligada = nil
	delete(m.clearedFields, fiscalrecord.FieldColigada)
}

// SetFilial sets the "filial" field.
func (m *FiscalRecordMutation) SetFilial(s string) {
	m.filial = &s
}

// Filial returns the value of the "filial" field in the mutation.
func (m *FiscalRecordMutation) Filial() (r string, exists bool) {
	v := m.filial
	if v == nil {
		return
	}
	return *v, true
}

// OldFilial returns the old "filial" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldFilial(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilial: %w", err)
	}
	return oldValue.Filial, nil
}

// ClearFilial clears the value of the "filial" field.
func (m *FiscalRecordMutation) ClearFilial() {
	m.filial = nil
	m.clearedFields[fiscalrecord.FieldFilial] = struct{}{}
}

// FilialCleared returns if the "filial" field was cleared in this mutation.
func (m *FiscalRecordMutation) FilialCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldFilial]
	return ok
}

// ResetFilial resets all changes to the "filial" field.
func (m *FiscalRecordMutation) ResetFilial() {
	m.filial = nil
	delete(m.clearedFields, fiscalrecord.FieldFilial)
}

// SetValorTotal sets the "valor_total" field.
func (m *FiscalRecordMutation) SetValorTotal(f float64) {
	m.valor_total = &f
	m.addvalor_total = nil
}

// ValorTotal returns the value of the "valor_total" field in the mutation.
func (m *FiscalRecordMutation) ValorTotal() (r float64, exists bool) {
	v := m.valor_total
	if v == nil {
		return
	}
	return *v, true
}

// OldValorTotal returns the old "valor_total" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldValorTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValorTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValorTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValorTotal: %w", err)
	}
	return oldValue.ValorTotal, nil
}

// AddValorTotal adds f to the "valor_total" field.
func (m *FiscalRecordMutation) AddValorTotal(f float64) {
	if m.addvalor_total != nil {
		*m.addvalor_total += f
	} else {
		m.addvalor_total = &f
	}
}

// AddedValorTotal returns the value that was added to the "valor_total" field in this mutation.
func (m *FiscalRecordMutation) AddedValorTotal() (r float64, exists bool) {
	v := m.addvalor_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearValorTotal clears the value of the "valor_total" field.
func (m *FiscalRecordMutation) ClearValorTotal() {
	m.valor_total = nil
	m.addvalor_total = nil
	m.clearedFields[fiscalrecord.FieldValorTotal] = struct{}{}
}

// ValorTotalCleared returns if the "valor_total" field was cleared in this mutation.
func (m *FiscalRecordMutation) ValorTotalCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldValorTotal]
	return ok
}

// ResetValorTotal resets all changes to the "valor_total" field.
func (m *FiscalRecordMutation) ResetValorTotal() {
	m.valor_total = nil
	m.addvalor_total = nil
	delete(m.clearedFields, fiscalrecord.FieldValorTotal)
}

// SetIsScanned sets the "is_scanned" field.
func (m *FiscalRecordMutation) SetIsScanned(b bool) {
	m.is_scanned = &b
}

// IsScanned returns the value of the "is_scanned" field in the mutation.
func (m *FiscalRecordMutation) IsScanned() (r bool, exists bool) {
	v := m.is_scanned
	if v == nil {
		return
	}
	return *v, true
}

// OldIsScanned returns the old "is_scanned" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldIsScanned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsScanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsScanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsScanned: %w", err)
	}
	return oldValue.IsScanned, nil
}

// ResetIsScanned resets all changes to the "is_scanned" field.
func (m *FiscalRecordMutation) ResetIsScanned() {
	m.is_scanned = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *FiscalRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FiscalRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FiscalRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[fiscalrecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FiscalRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FiscalRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, fiscalrecord.FieldErrorMessage)
}

// SetProcessingMs sets the "processing_ms" field.
func (m *FiscalRecordMutation) SetProcessingMs(i int64) {
	m.processing_ms = &i
	m.addprocessing_ms = nil
}

// ProcessingMs returns the value of the "processing_ms" field in the mutation.
func (m *FiscalRecordMutation) ProcessingMs() (r int64, exists bool) {
	v := m.processing_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMs returns the old "processing_ms" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldProcessingMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMs: %w", err)
	}
	return oldValue.ProcessingMs, nil
}

// AddProcessingMs adds i to the "processing_ms" field.
func (m *FiscalRecordMutation) AddProcessingMs(i int64) {
	if m.addprocessing_ms != nil {
		*m.addprocessing_ms += i
	} else {
		m.addprocessing_ms = &i
	}
}

// AddedProcessingMs returns the value that was added to the "processing_ms" field in this mutation.
func (m *FiscalRecordMutation) AddedProcessingMs() (r int64, exists bool) {
	v := m.addprocessing_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingMs resets all changes to the "processing_ms" field.
func (m *FiscalRecordMutation) ResetProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
}

// SetDocument sets the "document" field.
func (m *FiscalRecordMutation) SetDocument(jm json.RawMessage) {
	m.document = &jm
	m.appenddocument = nil
}

// Document returns the value of the "document" field in the mutation.
func (m *FiscalRecordMutation) Document() (r json.RawMessage, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldDocument(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// AppendDocument adds jm to the "document" field.
func (m *FiscalRecordMutation) AppendDocument(jm json.RawMessage) {
	m.appenddocument = append(m.appenddocument, jm...)
}

// AppendedDocument returns the list of values that were appended to the "document" field in this mutation.
func (m *FiscalRecordMutation) AppendedDocument() (json.RawMessage, bool) {
	if len(m.appenddocument) == 0 {
		return nil, false
	}
	return m.appenddocument, true
}

// ClearDocument clears the value of the "document" field.
func (m *FiscalRecordMutation) ClearDocument() {
	m.document = nil
	m.appenddocument = nil
	m.clearedFields[fiscalrecord.FieldDocument] = struct{}{}
}

// DocumentCleared returns if the "document" field was cleared in this mutation.
func (m *FiscalRecordMutation) DocumentCleared() bool {
	_, ok := m.clearedFields[fiscalrecord.FieldDocument]
	return ok
}

// ResetDocument resets all changes to the "document" field.
func (m *FiscalRecordMutation) ResetDocument() {
	m.document = nil
	m.appenddocument = nil
	delete(m.clearedFields, fiscalrecord.FieldDocument)
}

// SetCreatedAt sets the "created_at" field.
func (m *FiscalRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FiscalRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FiscalRecord entity.
// If the FiscalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FiscalRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBatch clears the "batch" edge to the ExtractBatch entity.
func (m *FiscalRecordMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[fiscalrecord.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the ExtractBatch entity was cleared.
func (m *FiscalRecordMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *FiscalRecordMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *FiscalRecordMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the FiscalRecordMutation builder.
func (m *FiscalRecordMutation) Where(ps ...predicate.FiscalRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FiscalRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FiscalRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FiscalRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FiscalRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FiscalRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FiscalRecord).
func (m *FiscalRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FiscalRecordMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.batch != nil {
		fields = append(fields, fiscalrecord.FieldBatchID)
	}
	if m.filename != nil {
		fields = append(fields, fiscalrecord.FieldFilename)
	}
	if m.document_type != nil {
		fields = append(fields, fiscalrecord.FieldDocumentType)
	}
	if m.status != nil {
		fields = append(fields, fiscalrecord.FieldStatus)
	}
	if m.numero != nil {
		fields = append(fields, fiscalrecord.FieldNumero)
	}
	if m.chave_acesso != nil {
		fields = append(fields, fiscalrecord.FieldChaveAcesso)
	}
	if m.data_emissao != nil {
		fields = append(fields, fiscalrecord.FieldDataEmissao)
	}
	if m.emitente_cnpj != nil {
		fields = append(fields, fiscalrecord.FieldEmitenteCnpj)
	}
	if m.emitente_nome != nil {
		fields = append(fields, fiscalrecord.FieldEmitenteNome)
	}
	if m.destinatario_cnpj != nil {
		fields = append(fields, fiscalrecord.FieldDestinatarioCnpj)
	}
	if m.destinatario_nome != nil {
		fields = append(fields, fiscalrecord.FieldDestinatarioNome)
	}
	if m.coligada != nil {
		fields = append(fields, fiscalrecord.FieldColigada)
	}
	if m.filial != nil {
		fields = append(fields, fiscalrecord.FieldFilial)
	}
	if m.valor_total != nil {
		fields = append(fields, fiscalrecord.FieldValorTotal)
	}
	if m.is_scanned != nil {
		fields = append(fields, fiscalrecord.FieldIsScanned)
	}
	if m.error_message != nil {
		fields = append(fields, fiscalrecord.FieldErrorMessage)
	}
	if m.processing_ms != nil {
		fields = append(fields, fiscalrecord.FieldProcessingMs)
	}
	if m.document != nil {
		fields = append(fields, fiscalrecord.FieldDocument)
	}
	if m.created_at != nil {
		fields = append(fields, fiscalrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FiscalRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fiscalrecord.FieldBatchID:
		return m.BatchID()
	case fiscalrecord.FieldFilename:
		return m.Filename()
	case fiscalrecord.FieldDocumentType:
		return m.DocumentType()
	case fiscalrecord.FieldStatus:
		return m.Status()
	case fiscalrecord.FieldNumero:
		return m.Numero()
	case fiscalrecord.FieldChaveAcesso:
		return m.ChaveAcesso()
	case fiscalrecord.FieldDataEmissao:
		return m.DataEmissao()
	case fiscalrecord.FieldEmitenteCnpj:
		return m.EmitenteCnpj()
	case fiscalrecord.FieldEmitenteNome:
		return m.EmitenteNome()
	case fiscalrecord.FieldDestinatarioCnpj:
		return m.DestinatarioCnpj()
	case fiscalrecord.FieldDestinatarioNome:
		return m.DestinatarioNome()
	case fiscalrecord.FieldColigada:
		return m.Coligada()
	case fiscalrecord.FieldFilial:
		return m.Filial()
	case fiscalrecord.FieldValorTotal:
		return m.ValorTotal()
	case fiscalrecord.FieldIsScanned:
		return m.IsScanned()
	case fiscalrecord.FieldErrorMessage:
		return m.ErrorMessage()
	case fiscalrecord.FieldProcessingMs:
		return m.ProcessingMs()
	case fiscalrecord.FieldDocument:
		return m.Document()
	case fiscalrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FiscalRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fiscalrecord.FieldBatchID:
		return m.OldBatchID(ctx)
	case fiscalrecord.FieldFilename:
		return m.OldFilename(ctx)
	case fiscalrecord.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case fiscalrecord.FieldStatus:
		return m.OldStatus(ctx)
	case fiscalrecord.FieldNumero:
		return m.OldNumero(ctx)
	case fiscalrecord.FieldChaveAcesso:
		return m.OldChaveAcesso(ctx)
	case fiscalrecord.FieldDataEmissao:
		return m.OldDataEmissao(ctx)
	case fiscalrecord.FieldEmitenteCnpj:
		return m.OldEmitenteCnpj(ctx)
	case fiscalrecord.FieldEmitenteNome:
		return m.OldEmitenteNome(ctx)
	case fiscalrecord.FieldDestinatarioCnpj:
		return m.OldDestinatarioCnpj(ctx)
	case fiscalrecord.FieldDestinatarioNome:
		return m.OldDestinatarioNome(ctx)
	case fiscalrecord.FieldColigada:
		return m.OldColigada(ctx)
	case fiscalrecord.FieldFilial:
		return m.OldFilial(ctx)
	case fiscalrecord.FieldValorTotal:
		return m.OldValorTotal(ctx)
	case fiscalrecord.FieldIsScanned:
		return m.OldIsScanned(ctx)
	case fiscalrecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case fiscalrecord.FieldProcessingMs:
		return m.OldProcessingMs(ctx)
	case fiscalrecord.FieldDocument:
		return m.OldDocument(ctx)
	case fiscalrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FiscalRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FiscalRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fiscalrecord.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case fiscalrecord.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case fiscalrecord.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case fiscalrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fiscalrecord.FieldNumero:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumero(v)
		return nil
	case fiscalrecord.FieldChaveAcesso:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChaveAcesso(v)
		return nil
	case fiscalrecord.FieldDataEmissao:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataEmissao(v)
		return nil
	case fiscalrecord.FieldEmitenteCnpj:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmitenteCnpj(v)
		return nil
	case fiscalrecord.FieldEmitenteNome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmitenteNome(v)
		return nil
	case fiscalrecord.FieldDestinatarioCnpj:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestinatarioCnpj(v)
		return nil
	case fiscalrecord.FieldDestinatarioNome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestinatarioNome(v)
		return nil
	case fiscalrecord.FieldColigada:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColigada(v)
		return nil
	case fiscalrecord.FieldFilial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilial(v)
		return nil
	case fiscalrecord.FieldValorTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValorTotal(v)
		return nil
	case fiscalrecord.FieldIsScanned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsScanned(v)
		return nil
	case fiscalrecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case fiscalrecord.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMs(v)
		return nil
	case fiscalrecord.FieldDocument:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case fiscalrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FiscalRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FiscalRecordMutation) AddedFields() []string {
	var fields []string
	if m.addvalor_total != nil {
		fields = append(fields, fiscalrecord.FieldValorTotal)
	}
	if m.addprocessing_ms != nil {
		fields = append(fields, fiscalrecord.FieldProcessingMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FiscalRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fiscalrecord.FieldValorTotal:
		return m.AddedValorTotal()
	case fiscalrecord.FieldProcessingMs:
		return m.AddedProcessingMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FiscalRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fiscalrecord.FieldValorTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValorTotal(v)
		return nil
	case fiscalrecord.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingMs(v)
		return nil
	}
	return fmt.Errorf("unknown FiscalRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FiscalRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fiscalrecord.FieldNumero) {
		fields = append(fields, fiscalrecord.FieldNumero)
	}
	if m.FieldCleared(fiscalrecord.FieldChaveAcesso) {
		fields = append(fields, fiscalrecord.FieldChaveAcesso)
	}
	if m.FieldCleared(fiscalrecord.FieldDataEmissao) {
		fields = append(fields, fiscalrecord.FieldDataEmissao)
	}
	if m.FieldCleared(fiscalrecord.FieldEmitenteCnpj) {
		fields = append(fields, fiscalrecord.FieldEmitenteCnpj)
	}
	if m.FieldCleared(fiscalrecord.FieldEmitenteNome) {
		fields = append(fields, fiscalrecord.FieldEmitenteNome)
	}
	if m.FieldCleared(fiscalrecord.FieldDestinatarioCnpj) {
		fields = append(fields, fiscalrecord.FieldDestinatarioCnpj)
	}
	if m.FieldCleared(fiscalrecord.FieldDestinatarioNome) {
		fields = append(fields, fiscalrecord.FieldDestinatarioNome)
	}
	if m.FieldCleared(fiscalrecord.FieldColigada) {
		fields = append(fields, fiscalrecord.FieldColigada)
	}
	if m.FieldCleared(fiscalrecord.FieldFilial) {
		fields = append(fields, fiscalrecord.FieldFilial)
	}
	if m.FieldCleared(fiscalrecord.FieldValorTotal) {
		fields = append(fields, fiscalrecord.FieldValorTotal)
	}
	if m.FieldCleared(fiscalrecord.FieldErrorMessage) {
		fields = append(fields, fiscalrecord.FieldErrorMessage)
	}
	if m.FieldCleared(fiscalrecord.FieldDocument) {
		fields = append(fields, fiscalrecord.FieldDocument)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FiscalRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FiscalRecordMutation) ClearField(name string) error {
	switch name {
	case fiscalrecord.FieldNumero:
		m.ClearNumero()
		return nil
	case fiscalrecord.FieldChaveAcesso:
		m.ClearChaveAcesso()
		return nil
	case fiscalrecord.FieldDataEmissao:
		m.ClearDataEmissao()
		return nil
	case fiscalrecord.FieldEmitenteCnpj:
		m.ClearEmitenteCnpj()
		return nil
	case fiscalrecord.FieldEmitenteNome:
		m.ClearEmitenteNome()
		return nil
	case fiscalrecord.FieldDestinatarioCnpj:
		m.ClearDestinatarioCnpj()
		return nil
	case fiscalrecord.FieldDestinatarioNome:
		m.ClearDestinatarioNome()
		return nil
	case fiscalrecord.FieldColigada:
		m.ClearColigada()
		return nil
	case fiscalrecord.FieldFilial:
		m.ClearFilial()
		return nil
	case fiscalrecord.FieldValorTotal:
		m.ClearValorTotal()
		return nil
	case fiscalrecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case fiscalrecord.FieldDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown FiscalRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FiscalRecordMutation) ResetField(name string) error {
	switch name {
	case fiscalrecord.FieldBatchID:
		m.ResetBatchID()
		return nil
	case fiscalrecord.FieldFilename:
		m.ResetFilename()
		return nil
	case fiscalrecord.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case fiscalrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case fiscalrecord.FieldNumero:
		m.ResetNumero()
		return nil
	case fiscalrecord.FieldChaveAcesso:
		m.ResetChaveAcesso()
		return nil
	case fiscalrecord.FieldDataEmissao:
		m.ResetDataEmissao()
		return nil
	case fiscalrecord.FieldEmitenteCnpj:
		m.ResetEmitenteCnpj()
		return nil
	case fiscalrecord.FieldEmitenteNome:
		m.ResetEmitenteNome()
		return nil
	case fiscalrecord.FieldDestinatarioCnpj:
		m.ResetDestinatarioCnpj()
		return nil
	case fiscalrecord.FieldDestinatarioNome:
		m.ResetDestinatarioNome()
		return nil
	case fiscalrecord.FieldColigada:
		m.ResetColigada()
		return nil
	case fiscalrecord.FieldFilial:
		m.ResetFilial()
		return nil
	case fiscalrecord.FieldValorTotal:
		m.ResetValorTotal()
		return nil
	case fiscalrecord.FieldIsScanned:
		m.ResetIsScanned()
		return nil
	case fiscalrecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case fiscalrecord.FieldProcessingMs:
		m.ResetProcessingMs()
		return nil
	case fiscalrecord.FieldDocument:
		m.ResetDocument()
		return nil
	case fiscalrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FiscalRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FiscalRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, fiscalrecord.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FiscalRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fiscalrecord.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FiscalRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FiscalRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FiscalRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, fiscalrecord.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FiscalRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case fiscalrecord.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FiscalRecordMutation) ClearEdge(name string) error {
	switch name {
	case fiscalrecord.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown FiscalRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FiscalRecordMutation) ResetEdge(name string) error {
	switch name {
	case fiscalrecord.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown FiscalRecord edge %s", name)
}
