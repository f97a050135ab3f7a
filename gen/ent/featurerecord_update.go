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
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/chartpull/clinical-features/gen/ent/featurerecord"
	"github.com/chartpull/clinical-features/gen/ent/predicate"
	"github.com/google/uuid"
)

// FeatureRecordUpdate is the builder for updating FeatureRecord entities.
type FeatureRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FeatureRecordMutation
}

// Where appends a list predicates to the FeatureRecordUpdate builder.
func (_u *FeatureRecordUpdate) Where(ps ...predicate.FeatureRecord) *FeatureRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCohortID sets the "cohort_id" field.
func (_u *FeatureRecordUpdate) SetCohortID(v uuid.UUID) *FeatureRecordUpdate {
	_u.mutation.SetCohortID(v)
	return _u
}

// SetNillableCohortID sets the "cohort_id" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableCohortID(v *uuid.UUID) *FeatureRecordUpdate {
	if v != nil {
		_u.SetCohortID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *FeatureRecordUpdate) SetPatientID(v string) *FeatureRecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillablePatientID(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *FeatureRecordUpdate) SetUnitID(v string) *FeatureRecordUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableUnitID(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFeatureCode sets the "feature_code" field.
func (_u *FeatureRecordUpdate) SetFeatureCode(v string) *FeatureRecordUpdate {
	_u.mutation.SetFeatureCode(v)
	return _u
}

// SetNillableFeatureCode sets the "feature_code" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableFeatureCode(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetFeatureCode(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FeatureRecordUpdate) SetValue(v string) *FeatureRecordUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableValue(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *FeatureRecordUpdate) ClearValue() *FeatureRecordUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *FeatureRecordUpdate) SetUnit(v string) *FeatureRecordUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableUnit(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *FeatureRecordUpdate) ClearUnit() *FeatureRecordUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *FeatureRecordUpdate) SetEffectiveDate(v time.Time) *FeatureRecordUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableEffectiveDate(v *time.Time) *FeatureRecordUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *FeatureRecordUpdate) ClearEffectiveDate() *FeatureRecordUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *FeatureRecordUpdate) SetSourceRef(v string) *FeatureRecordUpdate {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableSourceRef(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// ClearSourceRef clears the value of the "source_ref" field.
func (_u *FeatureRecordUpdate) ClearSourceRef() *FeatureRecordUpdate {
	_u.mutation.ClearSourceRef()
	return _u
}

// SetNaturalKey sets the "natural_key" field.
func (_u *FeatureRecordUpdate) SetNaturalKey(v string) *FeatureRecordUpdate {
	_u.mutation.SetNaturalKey(v)
	return _u
}

// SetNillableNaturalKey sets the "natural_key" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableNaturalKey(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetNaturalKey(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FeatureRecordUpdate) SetSource(v string) *FeatureRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableSource(v *string) *FeatureRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *FeatureRecordUpdate) SetExtractedAt(v time.Time) *FeatureRecordUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *FeatureRecordUpdate) SetNillableExtractedAt(v *time.Time) *FeatureRecordUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_u *FeatureRecordUpdate) SetCohort(v *Cohort) *FeatureRecordUpdate {
	return _u.SetCohortID(v.ID)
}

// Mutation returns the FeatureRecordMutation object of the builder.
func (_u *FeatureRecordUpdate) Mutation() *FeatureRecordMutation {
	return _u.mutation
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (_u *FeatureRecordUpdate) ClearCohort() *FeatureRecordUpdate {
	_u.mutation.ClearCohort()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeatureRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeatureRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureRecordUpdate) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := featurerecord.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := featurerecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeatureCode(); ok {
		if err := featurerecord.FeatureCodeValidator(v); err != nil {
			return &ValidationError{Name: "feature_code", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.feature_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NaturalKey(); ok {
		if err := featurerecord.NaturalKeyValidator(v); err != nil {
			return &ValidationError{Name: "natural_key", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.natural_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := featurerecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.source": %w`, err)}
		}
	}
	if _u.mutation.CohortCleared() && len(_u.mutation.CohortIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureRecord.cohort"`)
	}
	return nil
}

func (_u *FeatureRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(featurerecord.Table, featurerecord.Columns, sqlgraph.NewFieldSpec(featurerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(featurerecord.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(featurerecord.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureCode(); ok {
		_spec.SetField(featurerecord.FieldFeatureCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(featurerecord.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(featurerecord.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(featurerecord.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(featurerecord.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(featurerecord.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(featurerecord.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(featurerecord.FieldSourceRef, field.TypeString, value)
	}
	if _u.mutation.SourceRefCleared() {
		_spec.ClearField(featurerecord.FieldSourceRef, field.TypeString)
	}
	if value, ok := _u.mutation.NaturalKey(); ok {
		_spec.SetField(featurerecord.FieldNaturalKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(featurerecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(featurerecord.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.CohortCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   featurerecord.CohortTable,
			Columns: []string{featurerecord.CohortColumn},
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
			Table:   featurerecord.CohortTable,
			Columns: []string{featurerecord.CohortColumn},
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
			err = &NotFoundError{featurerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeatureRecordUpdateOne is the builder for updating a single FeatureRecord entity.
type FeatureRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeatureRecordMutation
}

// SetCohortID sets the "cohort_id" field.
func (_u *FeatureRecordUpdateOne) SetCohortID(v uuid.UUID) *FeatureRecordUpdateOne {
	_u.mutation.SetCohortID(v)
	return _u
}

// SetNillableCohortID sets the "cohort_id" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableCohortID(v *uuid.UUID) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetCohortID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *FeatureRecordUpdateOne) SetPatientID(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillablePatientID(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *FeatureRecordUpdateOne) SetUnitID(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableUnitID(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFeatureCode sets the "feature_code" field.
func (_u *FeatureRecordUpdateOne) SetFeatureCode(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetFeatureCode(v)
	return _u
}

// SetNillableFeatureCode sets the "feature_code" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableFeatureCode(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetFeatureCode(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FeatureRecordUpdateOne) SetValue(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableValue(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *FeatureRecordUpdateOne) ClearValue() *FeatureRecordUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *FeatureRecordUpdateOne) SetUnit(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableUnit(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *FeatureRecordUpdateOne) ClearUnit() *FeatureRecordUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *FeatureRecordUpdateOne) SetEffectiveDate(v time.Time) *FeatureRecordUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableEffectiveDate(v *time.Time) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *FeatureRecordUpdateOne) ClearEffectiveDate() *FeatureRecordUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *FeatureRecordUpdateOne) SetSourceRef(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableSourceRef(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// ClearSourceRef clears the value of the "source_ref" field.
func (_u *FeatureRecordUpdateOne) ClearSourceRef() *FeatureRecordUpdateOne {
	_u.mutation.ClearSourceRef()
	return _u
}

// SetNaturalKey sets the "natural_key" field.
func (_u *FeatureRecordUpdateOne) SetNaturalKey(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetNaturalKey(v)
	return _u
}

// SetNillableNaturalKey sets the "natural_key" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableNaturalKey(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetNaturalKey(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FeatureRecordUpdateOne) SetSource(v string) *FeatureRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableSource(v *string) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *FeatureRecordUpdateOne) SetExtractedAt(v time.Time) *FeatureRecordUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *FeatureRecordUpdateOne) SetNillableExtractedAt(v *time.Time) *FeatureRecordUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_u *FeatureRecordUpdateOne) SetCohort(v *Cohort) *FeatureRecordUpdateOne {
	return _u.SetCohortID(v.ID)
}

// Mutation returns the FeatureRecordMutation object of the builder.
func (_u *FeatureRecordUpdateOne) Mutation() *FeatureRecordMutation {
	return _u.mutation
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (_u *FeatureRecordUpdateOne) ClearCohort() *FeatureRecordUpdateOne {
	_u.mutation.ClearCohort()
	return _u
}

// Where appends a list predicates to the FeatureRecordUpdate builder.
func (_u *FeatureRecordUpdateOne) Where(ps ...predicate.FeatureRecord) *FeatureRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeatureRecordUpdateOne) Select(field string, fields ...string) *FeatureRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeatureRecord entity.
func (_u *FeatureRecordUpdateOne) Save(ctx context.Context) (*FeatureRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureRecordUpdateOne) SaveX(ctx context.Context) *FeatureRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeatureRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureRecordUpdateOne) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := featurerecord.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := featurerecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeatureCode(); ok {
		if err := featurerecord.FeatureCodeValidator(v); err != nil {
			return &ValidationError{Name: "feature_code", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.feature_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NaturalKey(); ok {
		if err := featurerecord.NaturalKeyValidator(v); err != nil {
			return &ValidationError{Name: "natural_key", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.natural_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := featurerecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.source": %w`, err)}
		}
	}
	if _u.mutation.CohortCleared() && len(_u.mutation.CohortIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureRecord.cohort"`)
	}
	return nil
}

func (_u *FeatureRecordUpdateOne) sqlSave(ctx context.Context) (_node *FeatureRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(featurerecord.Table, featurerecord.Columns, sqlgraph.NewFieldSpec(featurerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeatureRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, featurerecord.FieldID)
		for _, f := range fields {
			if !featurerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != featurerecord.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(featurerecord.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(featurerecord.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureCode(); ok {
		_spec.SetField(featurerecord.FieldFeatureCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(featurerecord.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(featurerecord.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(featurerecord.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(featurerecord.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(featurerecord.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(featurerecord.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(featurerecord.FieldSourceRef, field.TypeString, value)
	}
	if _u.mutation.SourceRefCleared() {
		_spec.ClearField(featurerecord.FieldSourceRef, field.TypeString)
	}
	if value, ok := _u.mutation.NaturalKey(); ok {
		_spec.SetField(featurerecord.FieldNaturalKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(featurerecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(featurerecord.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.CohortCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   featurerecord.CohortTable,
			Columns: []string{featurerecord.CohortColumn},
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
			Table:   featurerecord.CohortTable,
			Columns: []string{featurerecord.CohortColumn},
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
	_node = &FeatureRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{featurerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
