// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/clinical-features/gen/ent/checkpoint"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/chartpull/clinical-features/gen/ent/predicate"
	"github.com/google/uuid"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCohortID sets the "cohort_id" field.
func (_u *CheckpointUpdate) SetCohortID(v uuid.UUID) *CheckpointUpdate {
	_u.mutation.SetCohortID(v)
	return _u
}

// SetNillableCohortID sets the "cohort_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCohortID(v *uuid.UUID) *CheckpointUpdate {
	if v != nil {
		_u.SetCohortID(*v)
	}
	return _u
}

// SetLastProcessedUnitID sets the "last_processed_unit_id" field.
func (_u *CheckpointUpdate) SetLastProcessedUnitID(v string) *CheckpointUpdate {
	_u.mutation.SetLastProcessedUnitID(v)
	return _u
}

// SetNillableLastProcessedUnitID sets the "last_processed_unit_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableLastProcessedUnitID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetLastProcessedUnitID(*v)
	}
	return _u
}

// ClearLastProcessedUnitID clears the value of the "last_processed_unit_id" field.
func (_u *CheckpointUpdate) ClearLastProcessedUnitID() *CheckpointUpdate {
	_u.mutation.ClearLastProcessedUnitID()
	return _u
}

// SetProcessedUnitIds sets the "processed_unit_ids" field.
func (_u *CheckpointUpdate) SetProcessedUnitIds(v []string) *CheckpointUpdate {
	_u.mutation.SetProcessedUnitIds(v)
	return _u
}

// AppendProcessedUnitIds appends value to the "processed_unit_ids" field.
func (_u *CheckpointUpdate) AppendProcessedUnitIds(v []string) *CheckpointUpdate {
	_u.mutation.AppendProcessedUnitIds(v)
	return _u
}

// SetTotalUnits sets the "total_units" field.
func (_u *CheckpointUpdate) SetTotalUnits(v int) *CheckpointUpdate {
	_u.mutation.ResetTotalUnits()
	_u.mutation.SetTotalUnits(v)
	return _u
}

// SetNillableTotalUnits sets the "total_units" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableTotalUnits(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetTotalUnits(*v)
	}
	return _u
}

// AddTotalUnits adds value to the "total_units" field.
func (_u *CheckpointUpdate) AddTotalUnits(v int) *CheckpointUpdate {
	_u.mutation.AddTotalUnits(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *CheckpointUpdate) SetStartTime(v time.Time) *CheckpointUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableStartTime(v *time.Time) *CheckpointUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetLastCheckpointTime sets the "last_checkpoint_time" field.
func (_u *CheckpointUpdate) SetLastCheckpointTime(v time.Time) *CheckpointUpdate {
	_u.mutation.SetLastCheckpointTime(v)
	return _u
}

// SetDerivedRecordCount sets the "derived_record_count" field.
func (_u *CheckpointUpdate) SetDerivedRecordCount(v int) *CheckpointUpdate {
	_u.mutation.ResetDerivedRecordCount()
	_u.mutation.SetDerivedRecordCount(v)
	return _u
}

// SetNillableDerivedRecordCount sets the "derived_record_count" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableDerivedRecordCount(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetDerivedRecordCount(*v)
	}
	return _u
}

// AddDerivedRecordCount adds value to the "derived_record_count" field.
func (_u *CheckpointUpdate) AddDerivedRecordCount(v int) *CheckpointUpdate {
	_u.mutation.AddDerivedRecordCount(v)
	return _u
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_u *CheckpointUpdate) SetCohort(v *Cohort) *CheckpointUpdate {
	return _u.SetCohortID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (_u *CheckpointUpdate) ClearCohort() *CheckpointUpdate {
	_u.mutation.ClearCohort()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckpointUpdate) defaults() {
	if _, ok := _u.mutation.LastCheckpointTime(); !ok {
		v := checkpoint.UpdateDefaultLastCheckpointTime()
		_u.mutation.SetLastCheckpointTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if v, ok := _u.mutation.TotalUnits(); ok {
		if err := checkpoint.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.total_units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DerivedRecordCount(); ok {
		if err := checkpoint.DerivedRecordCountValidator(v); err != nil {
			return &ValidationError{Name: "derived_record_count", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.derived_record_count": %w`, err)}
		}
	}
	if _u.mutation.CohortCleared() && len(_u.mutation.CohortIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.cohort"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastProcessedUnitID(); ok {
		_spec.SetField(checkpoint.FieldLastProcessedUnitID, field.TypeString, value)
	}
	if _u.mutation.LastProcessedUnitIDCleared() {
		_spec.ClearField(checkpoint.FieldLastProcessedUnitID, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedUnitIds(); ok {
		_spec.SetField(checkpoint.FieldProcessedUnitIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessedUnitIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldProcessedUnitIds, value)
		})
	}
	if value, ok := _u.mutation.TotalUnits(); ok {
		_spec.SetField(checkpoint.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUnits(); ok {
		_spec.AddField(checkpoint.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(checkpoint.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastCheckpointTime(); ok {
		_spec.SetField(checkpoint.FieldLastCheckpointTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DerivedRecordCount(); ok {
		_spec.SetField(checkpoint.FieldDerivedRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDerivedRecordCount(); ok {
		_spec.AddField(checkpoint.FieldDerivedRecordCount, field.TypeInt, value)
	}
	if _u.mutation.CohortCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CohortIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetCohortID sets the "cohort_id" field.
func (_u *CheckpointUpdateOne) SetCohortID(v uuid.UUID) *CheckpointUpdateOne {
	_u.mutation.SetCohortID(v)
	return _u
}

// SetNillableCohortID sets the "cohort_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCohortID(v *uuid.UUID) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCohortID(*v)
	}
	return _u
}

// SetLastProcessedUnitID sets the "last_processed_unit_id" field.
func (_u *CheckpointUpdateOne) SetLastProcessedUnitID(v string) *CheckpointUpdateOne {
	_u.mutation.SetLastProcessedUnitID(v)
	return _u
}

// SetNillableLastProcessedUnitID sets the "last_processed_unit_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableLastProcessedUnitID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetLastProcessedUnitID(*v)
	}
	return _u
}

// ClearLastProcessedUnitID clears the value of the "last_processed_unit_id" field.
func (_u *CheckpointUpdateOne) ClearLastProcessedUnitID() *CheckpointUpdateOne {
	_u.mutation.ClearLastProcessedUnitID()
	return _u
}

// SetProcessedUnitIds sets the "processed_unit_ids" field.
func (_u *CheckpointUpdateOne) SetProcessedUnitIds(v []string) *CheckpointUpdateOne {
	_u.mutation.SetProcessedUnitIds(v)
	return _u
}

// AppendProcessedUnitIds appends value to the "processed_unit_ids" field.
func (_u *CheckpointUpdateOne) AppendProcessedUnitIds(v []string) *CheckpointUpdateOne {
	_u.mutation.AppendProcessedUnitIds(v)
	return _u
}

// SetTotalUnits sets the "total_units" field.
func (_u *CheckpointUpdateOne) SetTotalUnits(v int) *CheckpointUpdateOne {
	_u.mutation.ResetTotalUnits()
	_u.mutation.SetTotalUnits(v)
	return _u
}

// SetNillableTotalUnits sets the "total_units" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableTotalUnits(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetTotalUnits(*v)
	}
	return _u
}

// AddTotalUnits adds value to the "total_units" field.
func (_u *CheckpointUpdateOne) AddTotalUnits(v int) *CheckpointUpdateOne {
	_u.mutation.AddTotalUnits(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *CheckpointUpdateOne) SetStartTime(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableStartTime(v *time.Time) *CheckpointUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetLastCheckpointTime sets the "last_checkpoint_time" field.
func (_u *CheckpointUpdateOne) SetLastCheckpointTime(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetLastCheckpointTime(v)
	return _u
}

// SetDerivedRecordCount sets the "derived_record_count" field.
func (_u *CheckpointUpdateOne) SetDerivedRecordCount(v int) *CheckpointUpdateOne {
	_u.mutation.ResetDerivedRecordCount()
	_u.mutation.SetDerivedRecordCount(v)
	return _u
}

// SetNillableDerivedRecordCount sets the "derived_record_count" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableDerivedRecordCount(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetDerivedRecordCount(*v)
	}
	return _u
}

// AddDerivedRecordCount adds value to the "derived_record_count" field.
func (_u *CheckpointUpdateOne) AddDerivedRecordCount(v int) *CheckpointUpdateOne {
	_u.mutation.AddDerivedRecordCount(v)
	return _u
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_u *CheckpointUpdateOne) SetCohort(v *Cohort) *CheckpointUpdateOne {
	return _u.SetCohortID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (_u *CheckpointUpdateOne) ClearCohort() *CheckpointUpdateOne {
	_u.mutation.ClearCohort()
	return _u
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckpointUpdateOne) defaults() {
	if _, ok := _u.mutation.LastCheckpointTime(); !ok {
		v := checkpoint.UpdateDefaultLastCheckpointTime()
		_u.mutation.SetLastCheckpointTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.TotalUnits(); ok {
		if err := checkpoint.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.total_units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DerivedRecordCount(); ok {
		if err := checkpoint.DerivedRecordCountValidator(v); err != nil {
			return &ValidationError{Name: "derived_record_count", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.derived_record_count": %w`, err)}
		}
	}
	if _u.mutation.CohortCleared() && len(_u.mutation.CohortIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.cohort"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.LastProcessedUnitID(); ok {
		_spec.SetField(checkpoint.FieldLastProcessedUnitID, field.TypeString, value)
	}
	if _u.mutation.LastProcessedUnitIDCleared() {
		_spec.ClearField(checkpoint.FieldLastProcessedUnitID, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedUnitIds(); ok {
		_spec.SetField(checkpoint.FieldProcessedUnitIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessedUnitIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldProcessedUnitIds, value)
		})
	}
	if value, ok := _u.mutation.TotalUnits(); ok {
		_spec.SetField(checkpoint.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUnits(); ok {
		_spec.AddField(checkpoint.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(checkpoint.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastCheckpointTime(); ok {
		_spec.SetField(checkpoint.FieldLastCheckpointTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DerivedRecordCount(); ok {
		_spec.SetField(checkpoint.FieldDerivedRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDerivedRecordCount(); ok {
		_spec.AddField(checkpoint.FieldDerivedRecordCount, field.TypeInt, value)
	}
	if _u.mutation.CohortCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CohortIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
