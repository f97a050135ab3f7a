package constants

// UnitOutcome is the terminal state of one work unit within a run.
type UnitOutcome string

// Stable values (store these exact strings in DB).
const (
	UnitPending UnitOutcome = "PENDING" // not yet processed
	UnitSuccess UnitOutcome = "SUCCESS" // all records extracted
	UnitPartial UnitOutcome = "PARTIAL" // some records extracted, some input rejected
	UnitFailed  UnitOutcome = "FAILED"  // extraction failed for the whole unit
)

// Terminal reports whether the outcome marks the unit done for checkpoint
// purposes. All three terminal outcomes do; none triggers an in-run retry.
func (o UnitOutcome) Terminal() bool {
	return o == UnitSuccess || o == UnitPartial || o == UnitFailed
}

// RowOutcome is the per-row result of a dedup import.
type RowOutcome string

const (
	RowAdded   RowOutcome = "ADDED"   // no existing row matched the natural key
	RowSkipped RowOutcome = "SKIPPED" // duplicate of an existing row
	RowErrored RowOutcome = "ERRORED" // write failed for a non-duplicate reason
)
