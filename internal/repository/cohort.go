package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/gen/ent"
	entcohort "github.com/chartpull/clinical-features/gen/ent/cohort"
)

type CohortRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Cohort, error)
	GetOrCreateByName(ctx context.Context, name string) (*ent.Cohort, error)
	ListCohorts(ctx context.Context) ([]*ent.Cohort, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type cohortRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCohortRepository(client *ent.Client, logger *slog.Logger) CohortRepository {
	return &cohortRepository{
		client: client,
		logger: logger,
	}
}

func (r *cohortRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Cohort, error) {
	return r.client.Cohort.
		Query().
		Where(entcohort.ID(id)).
		Only(ctx)
}

func (r *cohortRepository) GetOrCreateByName(ctx context.Context, name string) (*ent.Cohort, error) {
	existing, err := r.client.Cohort.Query().
		Where(entcohort.Name(name)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up cohort", "name", name, "error", err)
		return nil, err
	}

	c, err := r.client.Cohort.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create cohort", "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("cohort created", "cohort_id", c.ID, "name", name)
	return c, nil
}

func (r *cohortRepository) ListCohorts(ctx context.Context) ([]*ent.Cohort, error) {
	list, err := r.client.Cohort.Query().Order(entcohort.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list cohorts", "error", err)
		return nil, err
	}
	return list, nil
}

func (r *cohortRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Cohort.Query().Where(entcohort.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check cohort existence", "cohort_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
