// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/chartpull/clinical-features/db/ent/schema"
	"github.com/chartpull/clinical-features/gen/ent/checkpoint"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/chartpull/clinical-features/gen/ent/featurerecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescTotalUnits is the schema descriptor for total_units field.
	checkpointDescTotalUnits := checkpointFields[4].Descriptor()
	// checkpoint.TotalUnitsValidator is a validator for the "total_units" field. It is called by the builders before save.
	checkpoint.TotalUnitsValidator = checkpointDescTotalUnits.Validators[0].(func(int) error)
	// checkpointDescLastCheckpointTime is the schema descriptor for last_checkpoint_time field.
	checkpointDescLastCheckpointTime := checkpointFields[6].Descriptor()
	// checkpoint.DefaultLastCheckpointTime holds the default value on creation for the last_checkpoint_time field.
	checkpoint.DefaultLastCheckpointTime = checkpointDescLastCheckpointTime.Default.(func() time.Time)
	// checkpoint.UpdateDefaultLastCheckpointTime holds the default value on update for the last_checkpoint_time field.
	checkpoint.UpdateDefaultLastCheckpointTime = checkpointDescLastCheckpointTime.UpdateDefault.(func() time.Time)
	// checkpointDescDerivedRecordCount is the schema descriptor for derived_record_count field.
	checkpointDescDerivedRecordCount := checkpointFields[7].Descriptor()
	// checkpoint.DerivedRecordCountValidator is a validator for the "derived_record_count" field. It is called by the builders before save.
	checkpoint.DerivedRecordCountValidator = checkpointDescDerivedRecordCount.Validators[0].(func(int) error)
	// checkpointDescID is the schema descriptor for id field.
	checkpointDescID := checkpointFields[0].Descriptor()
	// checkpoint.DefaultID holds the default value on creation for the id field.
	checkpoint.DefaultID = checkpointDescID.Default.(func() uuid.UUID)
	cohortFields := schema.Cohort{}.Fields()
	_ = cohortFields
	// cohortDescName is the schema descriptor for name field.
	cohortDescName := cohortFields[1].Descriptor()
	// cohort.NameValidator is a validator for the "name" field. It is called by the builders before save.
	cohort.NameValidator = cohortDescName.Validators[0].(func(string) error)
	// cohortDescCreatedAt is the schema descriptor for created_at field.
	cohortDescCreatedAt := cohortFields[3].Descriptor()
	// cohort.DefaultCreatedAt holds the default value on creation for the created_at field.
	cohort.DefaultCreatedAt = cohortDescCreatedAt.Default.(func() time.Time)
	// cohortDescUpdatedAt is the schema descriptor for updated_at field.
	cohortDescUpdatedAt := cohortFields[4].Descriptor()
	// cohort.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cohort.DefaultUpdatedAt = cohortDescUpdatedAt.Default.(func() time.Time)
	// cohort.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cohort.UpdateDefaultUpdatedAt = cohortDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cohortDescID is the schema descriptor for id field.
	cohortDescID := cohortFields[0].Descriptor()
	// cohort.DefaultID holds the default value on creation for the id field.
	cohort.DefaultID = cohortDescID.Default.(func() uuid.UUID)
	featurerecordFields := schema.FeatureRecord{}.Fields()
	_ = featurerecordFields
	// featurerecordDescPatientID is the schema descriptor for patient_id field.
	featurerecordDescPatientID := featurerecordFields[2].Descriptor()
	// featurerecord.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	featurerecord.PatientIDValidator = featurerecordDescPatientID.Validators[0].(func(string) error)
	// featurerecordDescUnitID is the schema descriptor for unit_id field.
	featurerecordDescUnitID := featurerecordFields[3].Descriptor()
	// featurerecord.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	featurerecord.UnitIDValidator = featurerecordDescUnitID.Validators[0].(func(string) error)
	// featurerecordDescFeatureCode is the schema descriptor for feature_code field.
	featurerecordDescFeatureCode := featurerecordFields[4].Descriptor()
	// featurerecord.FeatureCodeValidator is a validator for the "feature_code" field. It is called by the builders before save.
	featurerecord.FeatureCodeValidator = featurerecordDescFeatureCode.Validators[0].(func(string) error)
	// featurerecordDescNaturalKey is the schema descriptor for natural_key field.
	featurerecordDescNaturalKey := featurerecordFields[9].Descriptor()
	// featurerecord.NaturalKeyValidator is a validator for the "natural_key" field. It is called by the builders before save.
	featurerecord.NaturalKeyValidator = featurerecordDescNaturalKey.Validators[0].(func(string) error)
	// featurerecordDescSource is the schema descriptor for source field.
	featurerecordDescSource := featurerecordFields[10].Descriptor()
	// featurerecord.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	featurerecord.SourceValidator = featurerecordDescSource.Validators[0].(func(string) error)
	// featurerecordDescExtractedAt is the schema descriptor for extracted_at field.
	featurerecordDescExtractedAt := featurerecordFields[11].Descriptor()
	// featurerecord.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	featurerecord.DefaultExtractedAt = featurerecordDescExtractedAt.Default.(func() time.Time)
	// featurerecordDescID is the schema descriptor for id field.
	featurerecordDescID := featurerecordFields[0].Descriptor()
	// featurerecord.DefaultID holds the default value on creation for the id field.
	featurerecord.DefaultID = featurerecordDescID.Default.(func() uuid.UUID)
}
