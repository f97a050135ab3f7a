// Package pipeline is the service facade over the run coordinator and the
// dedup layer: request validation, the per-cohort single-flight guard, and
// the wiring that persists extractor output through dedup.
package pipeline

import (
	"context"
	"strings"
	"sync"

	"log/slog"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/dedup"
	"github.com/chartpull/clinical-features/internal/entity"
	"github.com/chartpull/clinical-features/internal/extract"
	"github.com/chartpull/clinical-features/internal/runner"
)

// CohortChecker is the slice of the cohort repository the service needs.
// Satisfied by repository.CohortRepository.
type CohortChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service handles pipeline business logic.
type Service struct {
	coordinator *runner.Coordinator
	extractor   extract.Extractor
	importer    *dedup.Importer
	cohortRepo  CohortChecker
	logger      *slog.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewService creates a new pipeline service.
func NewService(coord *runner.Coordinator, ex extract.Extractor, im *dedup.Importer, cohorts CohortChecker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		coordinator: coord,
		extractor:   ex,
		importer:    im,
		cohortRepo:  cohorts,
		logger:      logger,
		inFlight:    make(map[uuid.UUID]struct{}),
	}
}

// RunRequest represents extraction-run parameters.
type RunRequest struct {
	CohortID           string
	Source             runner.UnitSource
	CheckpointInterval int
}

// RunExtraction validates the request, takes the single-flight slot for the
// cohort, and drives one run. Concurrent runs for the same cohort are
// rejected; the checkpoint store offers no distributed locking, so this guard
// is the caller-side prevention the design requires.
func (s *Service) RunExtraction(ctx context.Context, req RunRequest) (*entity.RunSummary, error) {
	cohortID, err := uuid.Parse(strings.TrimSpace(req.CohortID))
	if err != nil {
		s.logger.Error("invalid cohort_id format for run", "cohort_id", req.CohortID, "error", err)
		return nil, common.InvalidArgumentError("cohort_id must be a UUID")
	}
	if req.Source == nil {
		s.logger.Error("run request missing work-unit source", "cohort_id", cohortID)
		return nil, common.InvalidArgumentError("work-unit source is required")
	}

	if exists, _ := s.cohortRepo.Exists(ctx, cohortID); !exists {
		s.logger.Error("cohort not found for run", "cohort_id", cohortID)
		return nil, common.InvalidArgumentError("cohort not found")
	}

	if !s.acquire(cohortID) {
		s.logger.Warn("run already in flight for cohort", "cohort_id", cohortID)
		return nil, common.FailedPreconditionError("a run is already in progress for this cohort")
	}
	defer s.release(cohortID)

	s.logger.Info("starting extraction run", "cohort_id", cohortID, "checkpoint_interval", req.CheckpointInterval)
	summary, err := s.coordinator.Run(ctx, cohortID, req.Source, s.processUnit, runner.Options{
		CheckpointInterval: req.CheckpointInterval,
	})
	if err != nil {
		return summary, err
	}

	s.logger.Info("extraction run finished",
		"cohort_id", cohortID,
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"derived_count", summary.DerivedCount)
	return summary, nil
}

// processUnit extracts one unit and persists its records through the dedup
// layer. A write failure surfaces as the unit's FAILED outcome; the run keeps
// going.
func (s *Service) processUnit(ctx context.Context, unit entity.WorkUnit) (runner.UnitResult, error) {
	res, err := s.extractor.Extract(ctx, unit)
	if err != nil {
		return runner.UnitResult{}, common.WrapError(common.ErrUnitProcessing, err.Error())
	}
	if res.Outcome == constants.UnitFailed {
		return runner.UnitResult{Outcome: constants.UnitFailed, Detail: res.Detail}, nil
	}

	written := 0
	for _, rec := range res.Records {
		// a skipped row is already durable from an earlier pass, so it
		// counts the same as an added one
		if _, err := s.importer.Upsert(ctx, rec); err != nil {
			return runner.UnitResult{
				Outcome:      constants.UnitFailed,
				DerivedCount: written,
				Detail:       "persist derived records: " + err.Error(),
			}, nil
		}
		written++
	}

	return runner.UnitResult{
		Outcome:      res.Outcome,
		DerivedCount: written,
		Detail:       res.Detail,
	}, nil
}

// ImportReference imports candidate reference rows for a cohort through the
// dedup layer and returns the per-row outcomes.
func (s *Service) ImportReference(ctx context.Context, cohortIDStr string, rows []*entity.FeatureRecord) (*entity.ImportSummary, error) {
	cohortID, err := uuid.Parse(strings.TrimSpace(cohortIDStr))
	if err != nil {
		s.logger.Error("invalid cohort_id format for import", "cohort_id", cohortIDStr, "error", err)
		return nil, common.InvalidArgumentError("cohort_id must be a UUID")
	}
	if exists, _ := s.cohortRepo.Exists(ctx, cohortID); !exists {
		s.logger.Error("cohort not found for import", "cohort_id", cohortID)
		return nil, common.InvalidArgumentError("cohort not found")
	}

	for _, rec := range rows {
		rec.CohortID = cohortID
		if rec.Source == "" {
			rec.Source = constants.SourceReference
		}
	}

	s.logger.Info("starting reference import", "cohort_id", cohortID, "rows", len(rows))
	return s.importer.ImportBatch(ctx, rows)
}

func (s *Service) acquire(cohortID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[cohortID]; busy {
		return false
	}
	s.inFlight[cohortID] = struct{}{}
	return true
}

func (s *Service) release(cohortID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, cohortID)
}
