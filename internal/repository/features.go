package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/gen/ent"
	entfeature "github.com/chartpull/clinical-features/gen/ent/featurerecord"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/entity"
)

// FeatureRepository stores derived and reference feature records. The natural
// key column is computed by the dedup projection before rows reach this layer.
type FeatureRepository interface {
	ExistsByNaturalKey(ctx context.Context, cohortID uuid.UUID, key string) (bool, error)
	Insert(ctx context.Context, rec *entity.FeatureRecord, key string) (*entity.FeatureRecord, error)
	ListByCohort(ctx context.Context, cohortID uuid.UUID, from, to *time.Time) ([]*entity.FeatureRecord, error)
	CountByCohort(ctx context.Context, cohortID uuid.UUID) (int, error)
}

type featureRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFeatureRepository(client *ent.Client, logger *slog.Logger) FeatureRepository {
	return &featureRepo{
		client: client,
		logger: logger,
	}
}

func (r *featureRepo) ExistsByNaturalKey(ctx context.Context, cohortID uuid.UUID, key string) (bool, error) {
	exists, err := r.client.FeatureRecord.Query().
		Where(
			entfeature.CohortID(cohortID),
			entfeature.NaturalKey(key),
		).Exist(ctx)
	if err != nil {
		r.logger.Error("natural key existence check failed", "cohort_id", cohortID, "error", err)
		return false, err
	}
	return exists, nil
}

// Insert writes one record. The check-then-insert pattern is not atomic:
// writers racing the same natural key can both pass the check, so the unique
// index violation here is classified as ErrRecordConflict for the caller to
// treat as a benign duplicate.
func (r *featureRepo) Insert(ctx context.Context, rec *entity.FeatureRecord, key string) (*entity.FeatureRecord, error) {
	builder := r.client.FeatureRecord.Create().
		SetCohortID(rec.CohortID).
		SetPatientID(rec.PatientID).
		SetUnitID(rec.UnitID).
		SetFeatureCode(rec.FeatureCode).
		SetNaturalKey(key).
		SetSource(string(rec.Source)).
		SetNillableValue(rec.Value).
		SetNillableUnit(rec.Unit).
		SetNillableEffectiveDate(rec.EffectiveDate).
		SetNillableSourceRef(rec.SourceRef)
	if !rec.ExtractedAt.IsZero() {
		builder = builder.SetExtractedAt(rec.ExtractedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.WrapError(common.ErrRecordConflict, key)
		}
		r.logger.Error("feature record insert failed",
			"cohort_id", rec.CohortID,
			"patient_id", rec.PatientID,
			"feature_code", rec.FeatureCode,
			"error", err)
		return nil, err
	}
	return toFeatureRecord(row), nil
}

func (r *featureRepo) ListByCohort(ctx context.Context, cohortID uuid.UUID, from, to *time.Time) ([]*entity.FeatureRecord, error) {
	q := r.client.FeatureRecord.Query().Where(entfeature.CohortID(cohortID))
	if from != nil {
		q = q.Where(entfeature.EffectiveDateGTE(*from))
	}
	if to != nil {
		q = q.Where(entfeature.EffectiveDateLTE(*to))
	}
	rows, err := q.Order(entfeature.ByPatientID(), entfeature.ByFeatureCode()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list feature records", "cohort_id", cohortID, "error", err)
		return nil, err
	}

	result := make([]*entity.FeatureRecord, len(rows))
	for i, row := range rows {
		result[i] = toFeatureRecord(row)
	}
	return result, nil
}

func (r *featureRepo) CountByCohort(ctx context.Context, cohortID uuid.UUID) (int, error) {
	n, err := r.client.FeatureRecord.Query().
		Where(entfeature.CohortID(cohortID)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count feature records", "cohort_id", cohortID, "error", err)
		return 0, err
	}
	return n, nil
}

func toFeatureRecord(e *ent.FeatureRecord) *entity.FeatureRecord {
	return &entity.FeatureRecord{
		ID:            e.ID,
		CohortID:      e.CohortID,
		PatientID:     e.PatientID,
		UnitID:        e.UnitID,
		FeatureCode:   e.FeatureCode,
		Value:         e.Value,
		Unit:          e.Unit,
		EffectiveDate: e.EffectiveDate,
		SourceRef:     e.SourceRef,
		Source:        constants.RecordSource(e.Source),
		ExtractedAt:   e.ExtractedAt,
	}
}
