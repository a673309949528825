// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/google/uuid"
)

// ExtractBatchCreate is the builder for creating a ExtractBatch entity.
type ExtractBatchCreate struct {
	config
	mutation *ExtractBatchMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *ExtractBatchCreate) SetSource(v string) *ExtractBatchCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractBatchCreate) SetStatus(v string) *ExtractBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableStatus(v *string) *ExtractBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalFiles sets the "total_files" field.
func (_c *ExtractBatchCreate) SetTotalFiles(v int) *ExtractBatchCreate {
	_c.mutation.SetTotalFiles(v)
	return _c
}

// SetSucceeded sets the "succeeded" field.
func (_c *ExtractBatchCreate) SetSucceeded(v int) *ExtractBatchCreate {
	_c.mutation.SetSucceeded(v)
	return _c
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableSucceeded(v *int) *ExtractBatchCreate {
	if v != nil {
		_c.SetSucceeded(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *ExtractBatchCreate) SetFailed(v int) *ExtractBatchCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableFailed(v *int) *ExtractBatchCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *ExtractBatchCreate) SetCancelled(v int) *ExtractBatchCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableCancelled(v *int) *ExtractBatchCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractBatchCreate) SetStartedAt(v time.Time) *ExtractBatchCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableStartedAt(v *time.Time) *ExtractBatchCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractBatchCreate) SetFinishedAt(v time.Time) *ExtractBatchCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableFinishedAt(v *time.Time) *ExtractBatchCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetReportPath sets the "report_path" field.
func (_c *ExtractBatchCreate) SetReportPath(v string) *ExtractBatchCreate {
	_c.mutation.SetReportPath(v)
	return _c
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableReportPath(v *string) *ExtractBatchCreate {
	if v != nil {
		_c.SetReportPath(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractBatchCreate) SetID(v uuid.UUID) *ExtractBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractBatchCreate) SetNillableID(v *uuid.UUID) *ExtractBatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRecordIDs adds the "records" edge to the FiscalRecord entity by IDs.
func (_c *ExtractBatchCreate) AddRecordIDs(ids ...uuid.UUID) *ExtractBatchCreate {
	_c.mutation.AddRecordIDs(ids...)
	return _c
}

// AddRecords adds the "records" edges to the FiscalRecord entity.
func (_c *ExtractBatchCreate) AddRecords(v ...*FiscalRecord) *ExtractBatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordIDs(ids...)
}

// Mutation returns the ExtractBatchMutation object of the builder.
func (_c *ExtractBatchCreate) Mutation() *ExtractBatchMutation {
	return _c.mutation
}

// Save creates the ExtractBatch in the database.
func (_c *ExtractBatchCreate) Save(ctx context.Context) (*ExtractBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractBatchCreate) SaveX(ctx context.Context) *ExtractBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractBatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractbatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		v := extractbatch.DefaultSucceeded
		_c.mutation.SetSucceeded(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := extractbatch.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := extractbatch.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := extractbatch.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractbatch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractBatchCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ExtractBatch.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := extractbatch.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractBatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "ExtractBatch.total_files"`)}
	}
	if v, ok := _c.mutation.TotalFiles(); ok {
		if err := extractbatch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ExtractBatch.total_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		return &ValidationError{Name: "succeeded", err: errors.New(`ent: missing required field "ExtractBatch.succeeded"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "ExtractBatch.failed"`)}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "ExtractBatch.cancelled"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExtractBatch.started_at"`)}
	}
	return nil
}

func (_c *ExtractBatchCreate) sqlSave(ctx context.Context) (*ExtractBatch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractBatchCreate) createSpec() (*ExtractBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractbatch.Table, sqlgraph.NewFieldSpec(extractbatch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(extractbatch.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractbatch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalFiles(); ok {
		_spec.SetField(extractbatch.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := _c.mutation.Succeeded(); ok {
		_spec.SetField(extractbatch.FieldSucceeded, field.TypeInt, value)
		_node.Succeeded = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(extractbatch.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(extractbatch.FieldCancelled, field.TypeInt, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractbatch.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractbatch.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ReportPath(); ok {
		_spec.SetField(extractbatch.FieldReportPath, field.TypeString, value)
		_node.ReportPath = &value
	}
	if nodes := _c.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractBatchCreateBulk is the builder for creating many ExtractBatch entities in bulk.
type ExtractBatchCreateBulk struct {
	config
	err      error
	builders []*ExtractBatchCreate
}

// Save creates the ExtractBatch entities in the database.
func (_c *ExtractBatchCreateBulk) Save(ctx context.Context) ([]*ExtractBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractBatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractBatchCreateBulk) SaveX(ctx context.Context) []*ExtractBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
