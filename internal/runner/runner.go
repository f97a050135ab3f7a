// Package runner coordinates resumable extraction runs: it walks an ordered
// work-unit source, persists progress through a checkpoint store, and resumes
// after a restart without redoing completed units.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/entity"
)

// CheckpointStore is the durable progress handle passed into the coordinator
// per run. Satisfied by repository.CheckpointRepository.
type CheckpointStore interface {
	Save(ctx context.Context, snap *entity.Checkpoint) error
	Load(ctx context.Context, cohortID uuid.UUID) (*entity.Checkpoint, error)
	Clear(ctx context.Context, cohortID uuid.UUID) error
}

// UnitSource yields the run's work units. Ordering must be deterministic
// across restarts; resume correctness depends on it.
type UnitSource interface {
	Units(ctx context.Context) ([]entity.WorkUnit, error)
}

// UnitResult is what the per-unit callback reports back.
type UnitResult struct {
	Outcome      constants.UnitOutcome
	DerivedCount int
	Detail       string
}

// ProcessFunc handles one work unit: extract, persist derived records, report
// the outcome. All writes must be durable before it returns; the coordinator
// saves checkpoints strictly after.
type ProcessFunc func(ctx context.Context, unit entity.WorkUnit) (UnitResult, error)

// Options tune one run.
type Options struct {
	// CheckpointInterval is the number of completed units between checkpoint
	// saves. Zero selects constants.DefaultCheckpointInterval.
	CheckpointInterval int
}

// Coordinator drives runs. Units are processed strictly sequentially; the
// only concurrency across the pipeline is separate runs for separate cohorts.
type Coordinator struct {
	store  CheckpointStore
	logger *slog.Logger
}

func New(store CheckpointStore, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		store:  store,
		logger: logger,
	}
}

// Run executes one pipeline run for a cohort. A single unit's failure is
// counted, never fatal; the returned summary is the sole success signal.
// Store errors during load surface to the caller with the last saved
// checkpoint intact.
func (c *Coordinator) Run(ctx context.Context, cohortID uuid.UUID, source UnitSource, process ProcessFunc, opts Options) (*entity.RunSummary, error) {
	if cohortID == uuid.Nil {
		return nil, common.NewAppError("RUN_CONFIG", "cohort id is required", common.ErrInvalidInput)
	}
	if source == nil || process == nil {
		return nil, common.NewAppError("RUN_CONFIG", "work-unit source and process callback are required", common.ErrInvalidInput)
	}
	interval := opts.CheckpointInterval
	if interval <= 0 {
		interval = constants.DefaultCheckpointInterval
	}

	start := time.Now()

	units, err := source.Units(ctx)
	if err != nil {
		return nil, common.NewAppError("RUN_CONFIG", "work-unit source failed", common.WrapError(common.ErrInvalidInput, err.Error()))
	}

	snap, err := c.store.Load(ctx, cohortID)
	if err != nil {
		return nil, common.WrapError(err, "load checkpoint")
	}
	if snap == nil {
		snap = &entity.Checkpoint{
			CohortID:  cohortID,
			StartTime: start,
		}
	} else {
		c.logger.Info("resuming from checkpoint",
			"cohort_id", cohortID,
			"completed", len(snap.CompletedUnitIDs),
			"last_unit", snap.LastProcessedUnitID)
	}
	snap.TotalUnits = len(units)
	completed := snap.CompletedSet()

	var skipped, failed, sinceSave int
	for _, unit := range units {
		select {
		case <-ctx.Done():
			// aborting between units loses at most one interval of progress
			c.saveQuietly(ctx, snap)
			return c.summary(snap, skipped, failed, start), ctx.Err()
		default:
		}

		if _, done := completed[unit.ID]; done {
			skipped++
			continue
		}

		res := c.processUnit(ctx, unit, process)
		if res.Outcome == constants.UnitFailed {
			failed++
		}

		// every terminal outcome marks the unit done; reconciliation of
		// FAILED units happens out of core by comparing expected vs actual
		// derived-record counts
		completed[unit.ID] = struct{}{}
		snap.CompletedUnitIDs = append(snap.CompletedUnitIDs, unit.ID)
		snap.LastProcessedUnitID = unit.ID
		snap.DerivedRecordCount += res.DerivedCount
		sinceSave++

		if sinceSave >= interval {
			if err := c.save(ctx, snap); err == nil {
				sinceSave = 0
			}
		}
	}

	if err := c.store.Clear(ctx, cohortID); err != nil {
		c.logger.Error("checkpoint clear failed after completion", "cohort_id", cohortID, "error", err)
		return c.summary(snap, skipped, failed, start), common.WrapError(err, "clear checkpoint")
	}

	summary := c.summary(snap, skipped, failed, start)
	c.logger.Info("run complete",
		"cohort_id", cohortID,
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"derived_count", summary.DerivedCount,
		"elapsed_ms", summary.Elapsed.Milliseconds())
	return summary, nil
}

func (c *Coordinator) processUnit(ctx context.Context, unit entity.WorkUnit, process ProcessFunc) UnitResult {
	res, err := process(ctx, unit)
	if err != nil {
		c.logger.Warn("unit processing failed",
			"unit_id", unit.ID,
			"patient_id", unit.PatientID,
			"error", err)
		return UnitResult{Outcome: constants.UnitFailed, Detail: err.Error()}
	}
	if !res.Outcome.Terminal() {
		res.Outcome = constants.UnitSuccess
	}
	if res.Outcome != constants.UnitSuccess {
		c.logger.Warn("unit finished degraded",
			"unit_id", unit.ID,
			"outcome", res.Outcome,
			"detail", res.Detail)
	}
	return res
}

// save persists the snapshot. Failures are logged, not raised: progress
// continues in-memory until the next successful save.
func (c *Coordinator) save(ctx context.Context, snap *entity.Checkpoint) error {
	snap.LastCheckpointTime = time.Now()
	if err := c.store.Save(ctx, snap); err != nil {
		c.logger.Error("checkpoint save failed, progress held in-memory",
			"cohort_id", snap.CohortID,
			"completed", len(snap.CompletedUnitIDs),
			"error", err)
		return err
	}
	return nil
}

func (c *Coordinator) saveQuietly(ctx context.Context, snap *entity.Checkpoint) {
	// the run context is already cancelled; give the store its own deadline
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	_ = c.save(saveCtx, snap)
}

func (c *Coordinator) summary(snap *entity.Checkpoint, skipped, failed int, start time.Time) *entity.RunSummary {
	return &entity.RunSummary{
		Processed:    len(snap.CompletedUnitIDs),
		Skipped:      skipped,
		Failed:       failed,
		DerivedCount: snap.DerivedRecordCount,
		Elapsed:      time.Since(start),
	}
}
