// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chartpull/clinical-features/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldID, id))
}

// CohortID applies equality check predicate on the "cohort_id" field. It's identical to CohortIDEQ.
func CohortID(v uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCohortID, v))
}

// LastProcessedUnitID applies equality check predicate on the "last_processed_unit_id" field. It's identical to LastProcessedUnitIDEQ.
func LastProcessedUnitID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLastProcessedUnitID, v))
}

// TotalUnits applies equality check predicate on the "total_units" field. It's identical to TotalUnitsEQ.
func TotalUnits(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTotalUnits, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStartTime, v))
}

// LastCheckpointTime applies equality check predicate on the "last_checkpoint_time" field. It's identical to LastCheckpointTimeEQ.
func LastCheckpointTime(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLastCheckpointTime, v))
}

// DerivedRecordCount applies equality check predicate on the "derived_record_count" field. It's identical to DerivedRecordCountEQ.
func DerivedRecordCount(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldDerivedRecordCount, v))
}

// CohortIDEQ applies the EQ predicate on the "cohort_id" field.
func CohortIDEQ(v uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCohortID, v))
}

// CohortIDNEQ applies the NEQ predicate on the "cohort_id" field.
func CohortIDNEQ(v uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCohortID, v))
}

// CohortIDIn applies the In predicate on the "cohort_id" field.
func CohortIDIn(vs ...uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCohortID, vs...))
}

// CohortIDNotIn applies the NotIn predicate on the "cohort_id" field.
func CohortIDNotIn(vs ...uuid.UUID) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCohortID, vs...))
}

// LastProcessedUnitIDEQ applies the EQ predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDNEQ applies the NEQ predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDIn applies the In predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldLastProcessedUnitID, vs...))
}

// LastProcessedUnitIDNotIn applies the NotIn predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldLastProcessedUnitID, vs...))
}

// LastProcessedUnitIDGT applies the GT predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDGTE applies the GTE predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDLT applies the LT predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDLTE applies the LTE predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDContains applies the Contains predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDHasPrefix applies the HasPrefix predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDHasSuffix applies the HasSuffix predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDIsNil applies the IsNil predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldLastProcessedUnitID))
}

// LastProcessedUnitIDNotNil applies the NotNil predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldLastProcessedUnitID))
}

// LastProcessedUnitIDEqualFold applies the EqualFold predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldLastProcessedUnitID, v))
}

// LastProcessedUnitIDContainsFold applies the ContainsFold predicate on the "last_processed_unit_id" field.
func LastProcessedUnitIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldLastProcessedUnitID, v))
}

// TotalUnitsEQ applies the EQ predicate on the "total_units" field.
func TotalUnitsEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTotalUnits, v))
}

// TotalUnitsNEQ applies the NEQ predicate on the "total_units" field.
func TotalUnitsNEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldTotalUnits, v))
}

// TotalUnitsIn applies the In predicate on the "total_units" field.
func TotalUnitsIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldTotalUnits, vs...))
}

// TotalUnitsNotIn applies the NotIn predicate on the "total_units" field.
func TotalUnitsNotIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldTotalUnits, vs...))
}

// TotalUnitsGT applies the GT predicate on the "total_units" field.
func TotalUnitsGT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldTotalUnits, v))
}

// TotalUnitsGTE applies the GTE predicate on the "total_units" field.
func TotalUnitsGTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldTotalUnits, v))
}

// TotalUnitsLT applies the LT predicate on the "total_units" field.
func TotalUnitsLT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldTotalUnits, v))
}

// TotalUnitsLTE applies the LTE predicate on the "total_units" field.
func TotalUnitsLTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldTotalUnits, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldStartTime, v))
}

// LastCheckpointTimeEQ applies the EQ predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldLastCheckpointTime, v))
}

// LastCheckpointTimeNEQ applies the NEQ predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldLastCheckpointTime, v))
}

// LastCheckpointTimeIn applies the In predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldLastCheckpointTime, vs...))
}

// LastCheckpointTimeNotIn applies the NotIn predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldLastCheckpointTime, vs...))
}

// LastCheckpointTimeGT applies the GT predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldLastCheckpointTime, v))
}

// LastCheckpointTimeGTE applies the GTE predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldLastCheckpointTime, v))
}

// LastCheckpointTimeLT applies the LT predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldLastCheckpointTime, v))
}

// LastCheckpointTimeLTE applies the LTE predicate on the "last_checkpoint_time" field.
func LastCheckpointTimeLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldLastCheckpointTime, v))
}

// DerivedRecordCountEQ applies the EQ predicate on the "derived_record_count" field.
func DerivedRecordCountEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldDerivedRecordCount, v))
}

// DerivedRecordCountNEQ applies the NEQ predicate on the "derived_record_count" field.
func DerivedRecordCountNEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldDerivedRecordCount, v))
}

// DerivedRecordCountIn applies the In predicate on the "derived_record_count" field.
func DerivedRecordCountIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldDerivedRecordCount, vs...))
}

// DerivedRecordCountNotIn applies the NotIn predicate on the "derived_record_count" field.
func DerivedRecordCountNotIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldDerivedRecordCount, vs...))
}

// DerivedRecordCountGT applies the GT predicate on the "derived_record_count" field.
func DerivedRecordCountGT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldDerivedRecordCount, v))
}

// DerivedRecordCountGTE applies the GTE predicate on the "derived_record_count" field.
func DerivedRecordCountGTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldDerivedRecordCount, v))
}

// DerivedRecordCountLT applies the LT predicate on the "derived_record_count" field.
func DerivedRecordCountLT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldDerivedRecordCount, v))
}

// DerivedRecordCountLTE applies the LTE predicate on the "derived_record_count" field.
func DerivedRecordCountLTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldDerivedRecordCount, v))
}

// HasCohort applies the HasEdge predicate on the "cohort" edge.
func HasCohort() predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CohortTable, CohortColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCohortWith applies the HasEdge predicate on the "cohort" edge with a given conditions (other predicates).
func HasCohortWith(preds ...predicate.Cohort) predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := newCohortStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.NotPredicates(p))
}
