package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/constants"
)

// FeatureRecord represents one derived clinical feature for data transfer
// between layers. Reference imports and extracted records share the shape;
// Source tells them apart.
type FeatureRecord struct {
	ID            uuid.UUID              `json:"id"`
	CohortID      uuid.UUID              `json:"cohort_id"`
	PatientID     string                 `json:"patient_id"`
	UnitID        string                 `json:"unit_id"`
	FeatureCode   string                 `json:"feature_code"`
	Value         *string                `json:"value,omitempty"`
	Unit          *string                `json:"unit,omitempty"`
	EffectiveDate *time.Time             `json:"effective_date,omitempty"`
	SourceRef     *string                `json:"source_ref,omitempty"`
	Source        constants.RecordSource `json:"source"`
	ExtractedAt   time.Time              `json:"extracted_at"`
}
