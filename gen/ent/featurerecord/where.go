// Code generated by ent, DO NOT EDIT.

package featurerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chartpull/clinical-features/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldID, id))
}

// CohortID applies equality check predicate on the "cohort_id" field. It's identical to CohortIDEQ.
func CohortID(v uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldCohortID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldPatientID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldUnitID, v))
}

// FeatureCode applies equality check predicate on the "feature_code" field. It's identical to FeatureCodeEQ.
func FeatureCode(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldFeatureCode, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldUnit, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldEffectiveDate, v))
}

// SourceRef applies equality check predicate on the "source_ref" field. It's identical to SourceRefEQ.
func SourceRef(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldSourceRef, v))
}

// NaturalKey applies equality check predicate on the "natural_key" field. It's identical to NaturalKeyEQ.
func NaturalKey(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldNaturalKey, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldSource, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldExtractedAt, v))
}

// CohortIDEQ applies the EQ predicate on the "cohort_id" field.
func CohortIDEQ(v uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldCohortID, v))
}

// CohortIDNEQ applies the NEQ predicate on the "cohort_id" field.
func CohortIDNEQ(v uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldCohortID, v))
}

// CohortIDIn applies the In predicate on the "cohort_id" field.
func CohortIDIn(vs ...uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldCohortID, vs...))
}

// CohortIDNotIn applies the NotIn predicate on the "cohort_id" field.
func CohortIDNotIn(vs ...uuid.UUID) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldCohortID, vs...))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldPatientID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldUnitID, v))
}

// FeatureCodeEQ applies the EQ predicate on the "feature_code" field.
func FeatureCodeEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldFeatureCode, v))
}

// FeatureCodeNEQ applies the NEQ predicate on the "feature_code" field.
func FeatureCodeNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldFeatureCode, v))
}

// FeatureCodeIn applies the In predicate on the "feature_code" field.
func FeatureCodeIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldFeatureCode, vs...))
}

// FeatureCodeNotIn applies the NotIn predicate on the "feature_code" field.
func FeatureCodeNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldFeatureCode, vs...))
}

// FeatureCodeGT applies the GT predicate on the "feature_code" field.
func FeatureCodeGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldFeatureCode, v))
}

// FeatureCodeGTE applies the GTE predicate on the "feature_code" field.
func FeatureCodeGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldFeatureCode, v))
}

// FeatureCodeLT applies the LT predicate on the "feature_code" field.
func FeatureCodeLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldFeatureCode, v))
}

// FeatureCodeLTE applies the LTE predicate on the "feature_code" field.
func FeatureCodeLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldFeatureCode, v))
}

// FeatureCodeContains applies the Contains predicate on the "feature_code" field.
func FeatureCodeContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldFeatureCode, v))
}

// FeatureCodeHasPrefix applies the HasPrefix predicate on the "feature_code" field.
func FeatureCodeHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldFeatureCode, v))
}

// FeatureCodeHasSuffix applies the HasSuffix predicate on the "feature_code" field.
func FeatureCodeHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldFeatureCode, v))
}

// FeatureCodeEqualFold applies the EqualFold predicate on the "feature_code" field.
func FeatureCodeEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldFeatureCode, v))
}

// FeatureCodeContainsFold applies the ContainsFold predicate on the "feature_code" field.
func FeatureCodeContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldFeatureCode, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotNull(FieldValue))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldUnit, v))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotNull(FieldEffectiveDate))
}

// SourceRefEQ applies the EQ predicate on the "source_ref" field.
func SourceRefEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldSourceRef, v))
}

// SourceRefNEQ applies the NEQ predicate on the "source_ref" field.
func SourceRefNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldSourceRef, v))
}

// SourceRefIn applies the In predicate on the "source_ref" field.
func SourceRefIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldSourceRef, vs...))
}

// SourceRefNotIn applies the NotIn predicate on the "source_ref" field.
func SourceRefNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldSourceRef, vs...))
}

// SourceRefGT applies the GT predicate on the "source_ref" field.
func SourceRefGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldSourceRef, v))
}

// SourceRefGTE applies the GTE predicate on the "source_ref" field.
func SourceRefGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldSourceRef, v))
}

// SourceRefLT applies the LT predicate on the "source_ref" field.
func SourceRefLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldSourceRef, v))
}

// SourceRefLTE applies the LTE predicate on the "source_ref" field.
func SourceRefLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldSourceRef, v))
}

// SourceRefContains applies the Contains predicate on the "source_ref" field.
func SourceRefContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldSourceRef, v))
}

// SourceRefHasPrefix applies the HasPrefix predicate on the "source_ref" field.
func SourceRefHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldSourceRef, v))
}

// SourceRefHasSuffix applies the HasSuffix predicate on the "source_ref" field.
func SourceRefHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldSourceRef, v))
}

// SourceRefIsNil applies the IsNil predicate on the "source_ref" field.
func SourceRefIsNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIsNull(FieldSourceRef))
}

// SourceRefNotNil applies the NotNil predicate on the "source_ref" field.
func SourceRefNotNil() predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotNull(FieldSourceRef))
}

// SourceRefEqualFold applies the EqualFold predicate on the "source_ref" field.
func SourceRefEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldSourceRef, v))
}

// SourceRefContainsFold applies the ContainsFold predicate on the "source_ref" field.
func SourceRefContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldSourceRef, v))
}

// NaturalKeyEQ applies the EQ predicate on the "natural_key" field.
func NaturalKeyEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldNaturalKey, v))
}

// NaturalKeyNEQ applies the NEQ predicate on the "natural_key" field.
func NaturalKeyNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldNaturalKey, v))
}

// NaturalKeyIn applies the In predicate on the "natural_key" field.
func NaturalKeyIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldNaturalKey, vs...))
}

// NaturalKeyNotIn applies the NotIn predicate on the "natural_key" field.
func NaturalKeyNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldNaturalKey, vs...))
}

// NaturalKeyGT applies the GT predicate on the "natural_key" field.
func NaturalKeyGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldNaturalKey, v))
}

// NaturalKeyGTE applies the GTE predicate on the "natural_key" field.
func NaturalKeyGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldNaturalKey, v))
}

// NaturalKeyLT applies the LT predicate on the "natural_key" field.
func NaturalKeyLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldNaturalKey, v))
}

// NaturalKeyLTE applies the LTE predicate on the "natural_key" field.
func NaturalKeyLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldNaturalKey, v))
}

// NaturalKeyContains applies the Contains predicate on the "natural_key" field.
func NaturalKeyContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldNaturalKey, v))
}

// NaturalKeyHasPrefix applies the HasPrefix predicate on the "natural_key" field.
func NaturalKeyHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldNaturalKey, v))
}

// NaturalKeyHasSuffix applies the HasSuffix predicate on the "natural_key" field.
func NaturalKeyHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldNaturalKey, v))
}

// NaturalKeyEqualFold applies the EqualFold predicate on the "natural_key" field.
func NaturalKeyEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldNaturalKey, v))
}

// NaturalKeyContainsFold applies the ContainsFold predicate on the "natural_key" field.
func NaturalKeyContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldNaturalKey, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldContainsFold(FieldSource, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.FieldLTE(FieldExtractedAt, v))
}

// HasCohort applies the HasEdge predicate on the "cohort" edge.
func HasCohort() predicate.FeatureRecord {
	return predicate.FeatureRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CohortTable, CohortColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCohortWith applies the HasEdge predicate on the "cohort" edge with a given conditions (other predicates).
func HasCohortWith(preds ...predicate.Cohort) predicate.FeatureRecord {
	return predicate.FeatureRecord(func(s *sql.Selector) {
		step := newCohortStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeatureRecord) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeatureRecord) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeatureRecord) predicate.FeatureRecord {
	return predicate.FeatureRecord(sql.NotPredicates(p))
}
