// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/chartpull/clinical-features/gen/ent/featurerecord"
	"github.com/google/uuid"
)

// FeatureRecordCreate is the builder for creating a FeatureRecord entity.
type FeatureRecordCreate struct {
	config
	mutation *FeatureRecordMutation
	hooks    []Hook
}

// SetCohortID sets the "cohort_id" field.
func (_c *FeatureRecordCreate) SetCohortID(v uuid.UUID) *FeatureRecordCreate {
	_c.mutation.SetCohortID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *FeatureRecordCreate) SetPatientID(v string) *FeatureRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *FeatureRecordCreate) SetUnitID(v string) *FeatureRecordCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetFeatureCode sets the "feature_code" field.
func (_c *FeatureRecordCreate) SetFeatureCode(v string) *FeatureRecordCreate {
	_c.mutation.SetFeatureCode(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *FeatureRecordCreate) SetValue(v string) *FeatureRecordCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *FeatureRecordCreate) SetNillableValue(v *string) *FeatureRecordCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *FeatureRecordCreate) SetUnit(v string) *FeatureRecordCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *FeatureRecordCreate) SetNillableUnit(v *string) *FeatureRecordCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetEffectiveDate sets the "effective_date" field.
func (_c *FeatureRecordCreate) SetEffectiveDate(v time.Time) *FeatureRecordCreate {
	_c.mutation.SetEffectiveDate(v)
	return _c
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_c *FeatureRecordCreate) SetNillableEffectiveDate(v *time.Time) *FeatureRecordCreate {
	if v != nil {
		_c.SetEffectiveDate(*v)
	}
	return _c
}

// SetSourceRef sets the "source_ref" field.
func (_c *FeatureRecordCreate) SetSourceRef(v string) *FeatureRecordCreate {
	_c.mutation.SetSourceRef(v)
	return _c
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_c *FeatureRecordCreate) SetNillableSourceRef(v *string) *FeatureRecordCreate {
	if v != nil {
		_c.SetSourceRef(*v)
	}
	return _c
}

// SetNaturalKey sets the "natural_key" field.
func (_c *FeatureRecordCreate) SetNaturalKey(v string) *FeatureRecordCreate {
	_c.mutation.SetNaturalKey(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *FeatureRecordCreate) SetSource(v string) *FeatureRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *FeatureRecordCreate) SetExtractedAt(v time.Time) *FeatureRecordCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *FeatureRecordCreate) SetNillableExtractedAt(v *time.Time) *FeatureRecordCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeatureRecordCreate) SetID(v uuid.UUID) *FeatureRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FeatureRecordCreate) SetNillableID(v *uuid.UUID) *FeatureRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_c *FeatureRecordCreate) SetCohort(v *Cohort) *FeatureRecordCreate {
	return _c.SetCohortID(v.ID)
}

// Mutation returns the FeatureRecordMutation object of the builder.
func (_c *FeatureRecordCreate) Mutation() *FeatureRecordMutation {
	return _c.mutation
}

// Save creates the FeatureRecord in the database.
func (_c *FeatureRecordCreate) Save(ctx context.Context) (*FeatureRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeatureRecordCreate) SaveX(ctx context.Context) *FeatureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeatureRecordCreate) defaults() {
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := featurerecord.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := featurerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeatureRecordCreate) check() error {
	if _, ok := _c.mutation.CohortID(); !ok {
		return &ValidationError{Name: "cohort_id", err: errors.New(`ent: missing required field "FeatureRecord.cohort_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "FeatureRecord.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := featurerecord.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.patient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "FeatureRecord.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := featurerecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureCode(); !ok {
		return &ValidationError{Name: "feature_code", err: errors.New(`ent: missing required field "FeatureRecord.feature_code"`)}
	}
	if v, ok := _c.mutation.FeatureCode(); ok {
		if err := featurerecord.FeatureCodeValidator(v); err != nil {
			return &ValidationError{Name: "feature_code", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.feature_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NaturalKey(); !ok {
		return &ValidationError{Name: "natural_key", err: errors.New(`ent: missing required field "FeatureRecord.natural_key"`)}
	}
	if v, ok := _c.mutation.NaturalKey(); ok {
		if err := featurerecord.NaturalKeyValidator(v); err != nil {
			return &ValidationError{Name: "natural_key", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.natural_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "FeatureRecord.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := featurerecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FeatureRecord.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "FeatureRecord.extracted_at"`)}
	}
	if len(_c.mutation.CohortIDs()) == 0 {
		return &ValidationError{Name: "cohort", err: errors.New(`ent: missing required edge "FeatureRecord.cohort"`)}
	}
	return nil
}

func (_c *FeatureRecordCreate) sqlSave(ctx context.Context) (*FeatureRecord, error) {
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

func (_c *FeatureRecordCreate) createSpec() (*FeatureRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FeatureRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(featurerecord.Table, sqlgraph.NewFieldSpec(featurerecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(featurerecord.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(featurerecord.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.FeatureCode(); ok {
		_spec.SetField(featurerecord.FieldFeatureCode, field.TypeString, value)
		_node.FeatureCode = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(featurerecord.FieldValue, field.TypeString, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(featurerecord.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.EffectiveDate(); ok {
		_spec.SetField(featurerecord.FieldEffectiveDate, field.TypeTime, value)
		_node.EffectiveDate = &value
	}
	if value, ok := _c.mutation.SourceRef(); ok {
		_spec.SetField(featurerecord.FieldSourceRef, field.TypeString, value)
		_node.SourceRef = &value
	}
	if value, ok := _c.mutation.NaturalKey(); ok {
		_spec.SetField(featurerecord.FieldNaturalKey, field.TypeString, value)
		_node.NaturalKey = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(featurerecord.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(featurerecord.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.CohortIDs(); len(nodes) > 0 {
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
		_node.CohortID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeatureRecordCreateBulk is the builder for creating many FeatureRecord entities in bulk.
type FeatureRecordCreateBulk struct {
	config
	err      error
	builders []*FeatureRecordCreate
}

// Save creates the FeatureRecord entities in the database.
func (_c *FeatureRecordCreateBulk) Save(ctx context.Context) ([]*FeatureRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeatureRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeatureRecordMutation)
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
func (_c *FeatureRecordCreateBulk) SaveX(ctx context.Context) []*FeatureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
