package entity

import (
	"time"

	"github.com/google/uuid"
)

// Checkpoint is the durable progress snapshot for one cohort's run.
// At most one live checkpoint exists per cohort.
type Checkpoint struct {
	CohortID            uuid.UUID `json:"cohort_id"`
	LastProcessedUnitID string    `json:"last_processed_unit_id"`
	CompletedUnitIDs    []string  `json:"completed_unit_ids"`
	TotalUnits          int       `json:"total_units"`
	StartTime           time.Time `json:"start_time"`
	LastCheckpointTime  time.Time `json:"last_checkpoint_time"`
	DerivedRecordCount  int       `json:"derived_record_count"`
}

// CompletedSet returns the completed unit ids as a set for resume filtering.
func (c *Checkpoint) CompletedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.CompletedUnitIDs))
	for _, id := range c.CompletedUnitIDs {
		set[id] = struct{}{}
	}
	return set
}
