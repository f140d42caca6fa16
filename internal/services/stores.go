package services

import (
	"context"

	"github.com/google/uuid"

	"project-catalog/internal/models"
	"project-catalog/internal/repositories"
)

// The store interfaces are the record-store contract the services are
// written against. The pgx repositories satisfy them in production; tests
// substitute in-memory fakes.

type ProjectStore interface {
	FindMany(ctx context.Context, q repositories.ProjectQuery) ([]models.Project, int, error)
	FindOne(ctx context.Context, id uuid.UUID) (*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, id uuid.UUID, patch repositories.ProjectPatch) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	IsSlugUnique(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	SetTags(ctx context.Context, projectID uuid.UUID, tagIDs []uuid.UUID) error
}

type ReleaseStore interface {
	FindMany(ctx context.Context, q repositories.ReleaseQuery) ([]models.Release, int, error)
	FindOne(ctx context.Context, id uuid.UUID) (*models.Release, error)
	Create(ctx context.Context, release *models.Release) error
	Update(ctx context.Context, id uuid.UUID, patch repositories.ReleasePatch) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	IsVersionUnique(ctx context.Context, projectID uuid.UUID, version string, excludeID *uuid.UUID) (bool, error)
}

type TagStore interface {
	FindMany(ctx context.Context, q repositories.TagQuery) ([]models.Tag, int, error)
	FindOne(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, id uuid.UUID, patch repositories.TagPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	IsNameUnique(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}
