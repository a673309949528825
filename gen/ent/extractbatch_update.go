// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/fiscaldata/nf-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractBatchUpdate is the builder for updating ExtractBatch entities.
type ExtractBatchUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractBatchMutation
}

// Where appends a list predicates to the ExtractBatchUpdate builder.
func (_u *ExtractBatchUpdate) Where(ps ...predicate.ExtractBatch) *ExtractBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *ExtractBatchUpdate) SetSource(v string) *ExtractBatchUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableSource(v *string) *ExtractBatchUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractBatchUpdate) SetStatus(v string) *ExtractBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableStatus(v *string) *ExtractBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *ExtractBatchUpdate) SetTotalFiles(v int) *ExtractBatchUpdate {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableTotalFiles(v *int) *ExtractBatchUpdate {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *ExtractBatchUpdate) AddTotalFiles(v int) *ExtractBatchUpdate {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *ExtractBatchUpdate) SetSucceeded(v int) *ExtractBatchUpdate {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableSucceeded(v *int) *ExtractBatchUpdate {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *ExtractBatchUpdate) AddSucceeded(v int) *ExtractBatchUpdate {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ExtractBatchUpdate) SetFailed(v int) *ExtractBatchUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableFailed(v *int) *ExtractBatchUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ExtractBatchUpdate) AddFailed(v int) *ExtractBatchUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *ExtractBatchUpdate) SetCancelled(v int) *ExtractBatchUpdate {
	_u.mutation.ResetCancelled()
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableCancelled(v *int) *ExtractBatchUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// AddCancelled adds value to the "cancelled" field.
func (_u *ExtractBatchUpdate) AddCancelled(v int) *ExtractBatchUpdate {
	_u.mutation.AddCancelled(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractBatchUpdate) SetStartedAt(v time.Time) *ExtractBatchUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableStartedAt(v *time.Time) *ExtractBatchUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractBatchUpdate) SetFinishedAt(v time.Time) *ExtractBatchUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableFinishedAt(v *time.Time) *ExtractBatchUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractBatchUpdate) ClearFinishedAt() *ExtractBatchUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ExtractBatchUpdate) SetReportPath(v string) *ExtractBatchUpdate {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ExtractBatchUpdate) SetNillableReportPath(v *string) *ExtractBatchUpdate {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *ExtractBatchUpdate) ClearReportPath() *ExtractBatchUpdate {
	_u.mutation.ClearReportPath()
	return _u
}

// AddRecordIDs adds the "records" edge to the FiscalRecord entity by IDs.
func (_u *ExtractBatchUpdate) AddRecordIDs(ids ...uuid.UUID) *ExtractBatchUpdate {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the FiscalRecord entity.
func (_u *ExtractBatchUpdate) AddRecords(v ...*FiscalRecord) *ExtractBatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the ExtractBatchMutation object of the builder.
func (_u *ExtractBatchUpdate) Mutation() *ExtractBatchMutation {
	return _u.mutation
}

// ClearRecords clears all "records" edges to the FiscalRecord entity.
func (_u *ExtractBatchUpdate) ClearRecords() *ExtractBatchUpdate {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to FiscalRecord entities by IDs.
func (_u *ExtractBatchUpdate) RemoveRecordIDs(ids ...uuid.UUID) *ExtractBatchUpdate {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to FiscalRecord entities.
func (_u *ExtractBatchUpdate) RemoveRecords(v ...*FiscalRecord) *ExtractBatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractBatchUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := extractbatch.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := extractbatch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.total_files": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractbatch.Table, extractbatch.Columns, sqlgraph.NewFieldSpec(extractbatch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(extractbatch.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(extractbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(extractbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(extractbatch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(extractbatch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(extractbatch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(extractbatch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(extractbatch.FieldCancelled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancelled(); ok {
		_spec.AddField(extractbatch.FieldCancelled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractbatch.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractbatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractbatch.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(extractbatch.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(extractbatch.FieldReportPath, field.TypeString)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractbatch.RecordsTable,
			Columns: []string{extractbatch.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractbatch.RecordsTable,
			Columns: []string{extractbatch.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractbatch.RecordsTable,
			Columns: []string{extractbatch.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractBatchUpdateOne is the builder for updating a single ExtractBatch entity.
type ExtractBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractBatchMutation
}

// SetSource sets the "source" field.
func (_u *ExtractBatchUpdateOne) SetSource(v string) *ExtractBatchUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableSource(v *string) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractBatchUpdateOne) SetStatus(v string) *ExtractBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableStatus(v *string) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *ExtractBatchUpdateOne) SetTotalFiles(v int) *ExtractBatchUpdateOne {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableTotalFiles(v *int) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *ExtractBatchUpdateOne) AddTotalFiles(v int) *ExtractBatchUpdateOne {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *ExtractBatchUpdateOne) SetSucceeded(v int) *ExtractBatchUpdateOne {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableSucceeded(v *int) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *ExtractBatchUpdateOne) AddSucceeded(v int) *ExtractBatchUpdateOne {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ExtractBatchUpdateOne) SetFailed(v int) *ExtractBatchUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableFailed(v *int) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ExtractBatchUpdateOne) AddFailed(v int) *ExtractBatchUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *ExtractBatchUpdateOne) SetCancelled(v int) *ExtractBatchUpdateOne {
	_u.mutation.ResetCancelled()
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableCancelled(v *int) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// AddCancelled adds value to the "cancelled" field.
func (_u *ExtractBatchUpdateOne) AddCancelled(v int) *ExtractBatchUpdateOne {
	_u.mutation.AddCancelled(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractBatchUpdateOne) SetStartedAt(v time.Time) *ExtractBatchUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractBatchUpdateOne) SetFinishedAt(v time.Time) *ExtractBatchUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractBatchUpdateOne) ClearFinishedAt() *ExtractBatchUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ExtractBatchUpdateOne) SetReportPath(v string) *ExtractBatchUpdateOne {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ExtractBatchUpdateOne) SetNillableReportPath(v *string) *ExtractBatchUpdateOne {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *ExtractBatchUpdateOne) ClearReportPath() *ExtractBatchUpdateOne {
	_u.mutation.ClearReportPath()
	return _u
}

// AddRecordIDs adds the "records" edge to the FiscalRecord entity by IDs.
func (_u *ExtractBatchUpdateOne) AddRecordIDs(ids ...uuid.UUID) *ExtractBatchUpdateOne {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the FiscalRecord entity.
func (_u *ExtractBatchUpdateOne) AddRecords(v ...*FiscalRecord) *ExtractBatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the ExtractBatchMutation object of the builder.
func (_u *ExtractBatchUpdateOne) Mutation() *ExtractBatchMutation {
	return _u.mutation
}

// ClearRecords clears all "records" edges to the FiscalRecord entity.
func (_u *ExtractBatchUpdateOne) ClearRecords() *ExtractBatchUpdateOne {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to FiscalRecord entities by IDs.
func (_u *ExtractBatchUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *ExtractBatchUpdateOne {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to FiscalRecord entities.
func (_u *ExtractBatchUpdateOne) RemoveRecords(v ...*FiscalRecord) *ExtractBatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the ExtractBatchUpdate builder.
func (_u *ExtractBatchUpdateOne) Where(ps ...predicate.ExtractBatch) *ExtractBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractBatchUpdateOne) Select(field string, fields ...string) *ExtractBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractBatch entity.
func (_u *ExtractBatchUpdateOne) Save(ctx context.Context) (*ExtractBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractBatchUpdateOne) SaveX(ctx context.Context) *ExtractBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractBatchUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := extractbatch.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := extractbatch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.total_files": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractBatchUpdateOne) sqlSave(ctx context.Context) (_node *ExtractBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractbatch.Table, extractbatch.Columns, sqlgraph.NewFieldSpec(extractbatch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractbatch.FieldID)
		for _, f := range fields {
			if !extractbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(extractbatch.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(extractbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(extractbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(extractbatch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(extractbatch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(extractbatch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(extractbatch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(extractbatch.FieldCancelled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancelled(); ok {
		_spec.AddField(extractbatch.FieldCancelled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractbatch.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractbatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractbatch.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(extractbatch.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(extractbatch.FieldReportPath, field.TypeString)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractbatch.RecordsTable,
			Columns: []string{extractbatch.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractbatch.RecordsTable,
			Columns: []string{extractbatch.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractbatch.RecordsTable,
			Columns: []string{extractbatch.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
