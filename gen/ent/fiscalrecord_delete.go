// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/fiscaldata/nf-extractor/gen/ent/predicate"
)

// FiscalRecordDelete is the builder for deleting a FiscalRecord entity.
type FiscalRecordDelete struct {
	config
	hooks    []Hook
	mutation *FiscalRecordMutation
}

// Where appends a list predicates to the FiscalRecordDelete builder.
func (_d *FiscalRecordDelete) Where(ps ...predicate.FiscalRecord) *FiscalRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FiscalRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FiscalRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FiscalRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fiscalrecord.Table, sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FiscalRecordDeleteOne is the builder for deleting a single FiscalRecord entity.
type FiscalRecordDeleteOne struct {
	_d *FiscalRecordDelete
}

// Where appends a list predicates to the FiscalRecordDelete builder.
func (_d *FiscalRecordDeleteOne) Where(ps ...predicate.FiscalRecord) *FiscalRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FiscalRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fiscalrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FiscalRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
