package entity

import (
	"time"

	"github.com/chartpull/clinical-features/constants"
)

// RunSummary is the sole success/failure signal of a pipeline run. Callers
// inspect the counts; partial failure never surfaces as an error.
type RunSummary struct {
	// Processed counts units completed for the whole logical run, including
	// units restored from a loaded checkpoint after a restart.
	Processed int `json:"processed"`
	// Skipped counts units filtered out this run because the checkpoint
	// already listed them as completed.
	Skipped int `json:"skipped"`
	// Failed counts units whose extraction failed this run.
	Failed int `json:"failed"`
	// DerivedCount counts records produced per completed unit. Reprocessed
	// units produce identical records, so the count stays exact across a
	// crash/resume even though the dedup layer absorbs the rewrites.
	DerivedCount int           `json:"derived_count"`
	Elapsed      time.Duration `json:"elapsed"`
}

// RowResult is the per-row outcome of a dedup import.
type RowResult struct {
	Index   int                  `json:"index"`
	Outcome constants.RowOutcome `json:"outcome"`
	Detail  string               `json:"detail,omitempty"`
}

// ImportSummary aggregates a dedup import batch.
type ImportSummary struct {
	Added   int         `json:"added"`
	Skipped int         `json:"skipped"`
	Errored int         `json:"errored"`
	Rows    []RowResult `json:"rows,omitempty"`
}
