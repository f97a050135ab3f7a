// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/clinical-features/gen/ent/checkpoint"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/google/uuid"
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
}

// SetCohortID sets the "cohort_id" field.
func (_c *CheckpointCreate) SetCohortID(v uuid.UUID) *CheckpointCreate {
	_c.mutation.SetCohortID(v)
	return _c
}

// SetLastProcessedUnitID sets the "last_processed_unit_id" field.
func (_c *CheckpointCreate) SetLastProcessedUnitID(v string) *CheckpointCreate {
	_c.mutation.SetLastProcessedUnitID(v)
	return _c
}

// SetNillableLastProcessedUnitID sets the "last_processed_unit_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableLastProcessedUnitID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetLastProcessedUnitID(*v)
	}
	return _c
}

// SetProcessedUnitIds sets the "processed_unit_ids" field.
func (_c *CheckpointCreate) SetProcessedUnitIds(v []string) *CheckpointCreate {
	_c.mutation.SetProcessedUnitIds(v)
	return _c
}

// SetTotalUnits sets the "total_units" field.
func (_c *CheckpointCreate) SetTotalUnits(v int) *CheckpointCreate {
	_c.mutation.SetTotalUnits(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *CheckpointCreate) SetStartTime(v time.Time) *CheckpointCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetLastCheckpointTime sets the "last_checkpoint_time" field.
func (_c *CheckpointCreate) SetLastCheckpointTime(v time.Time) *CheckpointCreate {
	_c.mutation.SetLastCheckpointTime(v)
	return _c
}

// SetNillableLastCheckpointTime sets the "last_checkpoint_time" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableLastCheckpointTime(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetLastCheckpointTime(*v)
	}
	return _c
}

// SetDerivedRecordCount sets the "derived_record_count" field.
func (_c *CheckpointCreate) SetDerivedRecordCount(v int) *CheckpointCreate {
	_c.mutation.SetDerivedRecordCount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v uuid.UUID) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableID(v *uuid.UUID) *CheckpointCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_c *CheckpointCreate) SetCohort(v *Cohort) *CheckpointCreate {
	return _c.SetCohortID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.LastCheckpointTime(); !ok {
		v := checkpoint.DefaultLastCheckpointTime()
		_c.mutation.SetLastCheckpointTime(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := checkpoint.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.CohortID(); !ok {
		return &ValidationError{Name: "cohort_id", err: errors.New(`ent: missing required field "Checkpoint.cohort_id"`)}
	}
	if _, ok := _c.mutation.ProcessedUnitIds(); !ok {
		return &ValidationError{Name: "processed_unit_ids", err: errors.New(`ent: missing required field "Checkpoint.processed_unit_ids"`)}
	}
	if _, ok := _c.mutation.TotalUnits(); !ok {
		return &ValidationError{Name: "total_units", err: errors.New(`ent: missing required field "Checkpoint.total_units"`)}
	}
	if v, ok := _c.mutation.TotalUnits(); ok {
		if err := checkpoint.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.total_units": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Checkpoint.start_time"`)}
	}
	if _, ok := _c.mutation.LastCheckpointTime(); !ok {
		return &ValidationError{Name: "last_checkpoint_time", err: errors.New(`ent: missing required field "Checkpoint.last_checkpoint_time"`)}
	}
	if _, ok := _c.mutation.DerivedRecordCount(); !ok {
		return &ValidationError{Name: "derived_record_count", err: errors.New(`ent: missing required field "Checkpoint.derived_record_count"`)}
	}
	if v, ok := _c.mutation.DerivedRecordCount(); ok {
		if err := checkpoint.DerivedRecordCountValidator(v); err != nil {
			return &ValidationError{Name: "derived_record_count", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.derived_record_count": %w`, err)}
		}
	}
	if len(_c.mutation.CohortIDs()) == 0 {
		return &ValidationError{Name: "cohort", err: errors.New(`ent: missing required edge "Checkpoint.cohort"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LastProcessedUnitID(); ok {
		_spec.SetField(checkpoint.FieldLastProcessedUnitID, field.TypeString, value)
		_node.LastProcessedUnitID = value
	}
	if value, ok := _c.mutation.ProcessedUnitIds(); ok {
		_spec.SetField(checkpoint.FieldProcessedUnitIds, field.TypeJSON, value)
		_node.ProcessedUnitIds = value
	}
	if value, ok := _c.mutation.TotalUnits(); ok {
		_spec.SetField(checkpoint.FieldTotalUnits, field.TypeInt, value)
		_node.TotalUnits = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(checkpoint.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.LastCheckpointTime(); ok {
		_spec.SetField(checkpoint.FieldLastCheckpointTime, field.TypeTime, value)
		_node.LastCheckpointTime = value
	}
	if value, ok := _c.mutation.DerivedRecordCount(); ok {
		_spec.SetField(checkpoint.FieldDerivedRecordCount, field.TypeInt, value)
		_node.DerivedRecordCount = value
	}
	if nodes := _c.mutation.CohortIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.CohortTable,
			Columns: []string{checkpoint.CohortColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CohortID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
