package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/gen/ent"
	entcheckpoint "github.com/chartpull/clinical-features/gen/ent/checkpoint"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/entity"
)

// CheckpointRepository is the durable progress store for runs. One live row
// per cohort; Save replaces any prior snapshot. The single-run-per-owner
// precondition is enforced by callers, not here.
type CheckpointRepository interface {
	Save(ctx context.Context, snap *entity.Checkpoint) error
	Load(ctx context.Context, cohortID uuid.UUID) (*entity.Checkpoint, error)
	Clear(ctx context.Context, cohortID uuid.UUID) error
}

type checkpointRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCheckpointRepository(client *ent.Client, logger *slog.Logger) CheckpointRepository {
	return &checkpointRepo{
		client: client,
		logger: logger,
	}
}

func (r *checkpointRepo) Save(ctx context.Context, snap *entity.Checkpoint) error {
	existing, err := r.client.Checkpoint.Query().
		Where(entcheckpoint.CohortID(snap.CohortID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetLastProcessedUnitID(snap.LastProcessedUnitID).
			SetProcessedUnitIds(snap.CompletedUnitIDs).
			SetTotalUnits(snap.TotalUnits).
			SetStartTime(snap.StartTime).
			SetDerivedRecordCount(snap.DerivedRecordCount).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.Checkpoint.Create().
			SetCohortID(snap.CohortID).
			SetLastProcessedUnitID(snap.LastProcessedUnitID).
			SetProcessedUnitIds(snap.CompletedUnitIDs).
			SetTotalUnits(snap.TotalUnits).
			SetStartTime(snap.StartTime).
			SetDerivedRecordCount(snap.DerivedRecordCount).
			Save(ctx)
	default:
		r.logger.Error("checkpoint lookup failed", "cohort_id", snap.CohortID, "error", err)
		return common.WrapError(common.ErrTransientStore, err.Error())
	}
	if err != nil {
		r.logger.Error("checkpoint save failed", "cohort_id", snap.CohortID, "error", err)
		return err
	}
	r.logger.Debug("checkpoint saved",
		"cohort_id", snap.CohortID,
		"completed", len(snap.CompletedUnitIDs),
		"last_unit", snap.LastProcessedUnitID)
	return nil
}

func (r *checkpointRepo) Load(ctx context.Context, cohortID uuid.UUID) (*entity.Checkpoint, error) {
	row, err := r.client.Checkpoint.Query().
		Where(entcheckpoint.CohortID(cohortID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("checkpoint load failed", "cohort_id", cohortID, "error", err)
		return nil, common.WrapError(common.ErrTransientStore, err.Error())
	}
	return toCheckpoint(row), nil
}

func (r *checkpointRepo) Clear(ctx context.Context, cohortID uuid.UUID) error {
	n, err := r.client.Checkpoint.Delete().
		Where(entcheckpoint.CohortID(cohortID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("checkpoint clear failed", "cohort_id", cohortID, "error", err)
		return err
	}
	r.logger.Info("checkpoint cleared", "cohort_id", cohortID, "deleted", n)
	return nil
}

func toCheckpoint(e *ent.Checkpoint) *entity.Checkpoint {
	return &entity.Checkpoint{
		CohortID:            e.CohortID,
		LastProcessedUnitID: e.LastProcessedUnitID,
		CompletedUnitIDs:    e.ProcessedUnitIds,
		TotalUnits:          e.TotalUnits,
		StartTime:           e.StartTime,
		LastCheckpointTime:  e.LastCheckpointTime,
		DerivedRecordCount:  e.DerivedRecordCount,
	}
}
