// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/gen/ent/predicate"
)

// CaptureInputDelete is the builder for deleting a CaptureInput entity.
type CaptureInputDelete struct {
	config
	hooks    []Hook
	mutation *CaptureInputMutation
}

// Where appends a list predicates to the CaptureInputDelete builder.
func (_d *CaptureInputDelete) Where(ps ...predicate.CaptureInput) *CaptureInputDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CaptureInputDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaptureInputDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CaptureInputDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(captureinput.Table, sqlgraph.NewFieldSpec(captureinput.FieldID, field.TypeUUID))
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

// CaptureInputDeleteOne is the builder for deleting a single CaptureInput entity.
type CaptureInputDeleteOne struct {
	_d *CaptureInputDelete
}

// Where appends a list predicates to the CaptureInputDelete builder.
func (_d *CaptureInputDeleteOne) Where(ps ...predicate.CaptureInput) *CaptureInputDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CaptureInputDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{captureinput.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaptureInputDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
