package dedup

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/entity"
)

// Target is the storage the dedup layer writes through. Satisfied by
// repository.FeatureRepository.
type Target interface {
	ExistsByNaturalKey(ctx context.Context, cohortID uuid.UUID, key string) (bool, error)
	Insert(ctx context.Context, rec *entity.FeatureRecord, key string) (*entity.FeatureRecord, error)
}

// Importer performs check-then-insert writes against a target store.
type Importer struct {
	target    Target
	keyFields []KeyField
	logger    *slog.Logger
}

func NewImporter(target Target, keyFields []KeyField, logger *slog.Logger) *Importer {
	if len(keyFields) == 0 {
		keyFields = DefaultKeyFields()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		target:    target,
		keyFields: keyFields,
		logger:    logger,
	}
}

// Upsert writes one record unless a row with the same natural key exists.
// The check and the insert are not one transaction; a concurrent writer can
// slip between them, in which case the store's uniqueness violation comes
// back as ErrRecordConflict and counts as a skip, same as a check hit.
func (im *Importer) Upsert(ctx context.Context, rec *entity.FeatureRecord) (constants.RowOutcome, error) {
	key := ProjectKey(rec, im.keyFields)

	exists, err := im.target.ExistsByNaturalKey(ctx, rec.CohortID, key)
	if err != nil {
		return constants.RowErrored, err
	}
	if exists {
		return constants.RowSkipped, nil
	}

	if _, err := im.target.Insert(ctx, rec, key); err != nil {
		if common.IsConflict(err) {
			im.logger.Debug("lost check-then-insert race, treating as duplicate",
				"cohort_id", rec.CohortID, "patient_id", rec.PatientID, "feature_code", rec.FeatureCode)
			return constants.RowSkipped, nil
		}
		return constants.RowErrored, err
	}
	return constants.RowAdded, nil
}

// ImportBatch runs Upsert over a batch of candidate rows and aggregates
// per-row outcomes. Row errors are recorded, not raised; the summary is the
// result.
func (im *Importer) ImportBatch(ctx context.Context, rows []*entity.FeatureRecord) (*entity.ImportSummary, error) {
	summary := &entity.ImportSummary{
		Rows: make([]entity.RowResult, 0, len(rows)),
	}

	for i, rec := range rows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome, err := im.Upsert(ctx, rec)
		result := entity.RowResult{Index: i, Outcome: outcome}
		switch outcome {
		case constants.RowAdded:
			summary.Added++
		case constants.RowSkipped:
			summary.Skipped++
		case constants.RowErrored:
			summary.Errored++
			result.Detail = err.Error()
			im.logger.Warn("reference row import failed",
				"index", i, "patient_id", rec.PatientID, "feature_code", rec.FeatureCode, "error", err)
		}
		summary.Rows = append(summary.Rows, result)
	}

	im.logger.Info("import batch complete",
		"rows", len(rows),
		"added", summary.Added,
		"skipped", summary.Skipped,
		"errored", summary.Errored)
	return summary, nil
}
