package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "project-catalog/internal/errors"
	"project-catalog/internal/models"
	"project-catalog/internal/pagination"
	"project-catalog/internal/repositories"
	"project-catalog/internal/storage"
)

// Icon upload limits.
const MaxIconSizeBytes = 2 * 1024 * 1024

var allowedIconMimeTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

type ProjectService struct {
	projects ProjectStore
	tags     TagStore
	blobs    storage.BlobStore
	log      zerolog.Logger
}

func NewProjectService(projects ProjectStore, tags TagStore, blobs storage.BlobStore, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, tags: tags, blobs: blobs, log: log}
}

type CreateProjectRequest struct {
	Name            string                  `json:"name" binding:"required"`
	Slug            string                  `json:"slug" binding:"required"`
	Description     *string                 `json:"description,omitempty"`
	Emoji           *string                 `json:"emoji,omitempty"`
	Status          *models.ProjectStatus   `json:"status,omitempty"`
	OwnerID         *uuid.UUID              `json:"ownerId,omitempty"`
	LifecycleStages []models.LifecycleStage `json:"lifecycleStages,omitempty"`
	TagIDs          []uuid.UUID             `json:"tagIds,omitempty"`
	Metadata        models.JSONMap          `json:"metadata,omitempty"`
}

type UpdateProjectRequest struct {
	Name            *string                  `json:"name,omitempty"`
	Slug            *string                  `json:"slug,omitempty"`
	Description     *string                  `json:"description,omitempty"`
	Emoji           *string                  `json:"emoji,omitempty"`
	Status          *models.ProjectStatus    `json:"status,omitempty"`
	OwnerID         *uuid.UUID               `json:"ownerId,omitempty"`
	LifecycleStages *[]models.LifecycleStage `json:"lifecycleStages,omitempty"`
	TagIDs          *[]uuid.UUID             `json:"tagIds,omitempty"`
	Metadata        *models.JSONMap          `json:"metadata,omitempty"`
}

type ListProjectsQuery struct {
	Page      int
	PageSize  int
	OwnerID   *uuid.UUID
	Status    *models.ProjectStatus
	Search    string
	TagIDs    []uuid.UUID
	SortBy    string
	SortOrder string
}

func (s *ProjectService) List(ctx context.Context, query ListProjectsQuery) (pagination.Page[models.Project], error) {
	if query.Status != nil && !query.Status.Valid() {
		return pagination.Page[models.Project]{}, apperrors.Validation("unknown project status %q", *query.Status)
	}
	params := pagination.Paginate(query.Page, query.PageSize)

	projects, total, err := s.projects.FindMany(ctx, repositories.ProjectQuery{
		OwnerID:   query.OwnerID,
		Status:    query.Status,
		Search:    query.Search,
		TagIDs:    query.TagIDs,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Skip:      params.Skip,
		Take:      params.Take,
	})
	if err != nil {
		return pagination.Page[models.Project]{}, err
	}
	return pagination.NewPage(projects, total, query.Page, params), nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("project with ID %s not found", id)
	}
	return project, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	project, err := s.projects.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("project with slug %q not found", slug)
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	status := models.ProjectStatusActive
	if req.Status != nil {
		status = *req.Status
	}
	if !status.Valid() {
		return nil, apperrors.Validation("unknown project status %q", status)
	}
	for _, stage := range req.LifecycleStages {
		if !stage.Valid() {
			return nil, apperrors.Validation("unknown lifecycle stage %q", stage)
		}
	}

	unique, err := s.projects.IsSlugUnique(ctx, req.Slug, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperrors.Conflict("project with slug %q already exists", req.Slug)
	}
	if err := s.validateTagIDs(ctx, req.TagIDs); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     req.Description,
		Emoji:           req.Emoji,
		Status:          status,
		OwnerID:         req.OwnerID,
		LifecycleStages: req.LifecycleStages,
		Metadata:        req.Metadata,
	}
	if project.LifecycleStages == nil {
		project.LifecycleStages = []models.LifecycleStage{}
	}
	if project.Metadata == nil {
		project.Metadata = models.JSONMap{}
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	// The project exists at this point even if associating tags fails; the
	// two writes are deliberately not transactional.
	if len(req.TagIDs) > 0 {
		if err := s.projects.SetTags(ctx, project.ID, req.TagIDs); err != nil {
			return nil, err
		}
	}

	s.log.Info().Str("project_id", project.ID.String()).Str("slug", project.Slug).Msg("project created")
	return s.Get(ctx, project.ID)
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, apperrors.Validation("unknown project status %q", *req.Status)
	}
	if req.LifecycleStages != nil {
		for _, stage := range *req.LifecycleStages {
			if !stage.Valid() {
				return nil, apperrors.Validation("unknown lifecycle stage %q", stage)
			}
		}
	}

	// Uniqueness is re-checked only when the slug actually changes.
	if req.Slug != nil && *req.Slug != project.Slug {
		unique, err := s.projects.IsSlugUnique(ctx, *req.Slug, &id)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, apperrors.Conflict("project with slug %q already exists", *req.Slug)
		}
	}
	if req.TagIDs != nil {
		if err := s.validateTagIDs(ctx, *req.TagIDs); err != nil {
			return nil, err
		}
	}

	err = s.projects.Update(ctx, id, repositories.ProjectPatch{
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     req.Description,
		Emoji:           req.Emoji,
		Status:          req.Status,
		OwnerID:         req.OwnerID,
		LifecycleStages: req.LifecycleStages,
		Metadata:        req.Metadata,
	})
	if err != nil {
		return nil, err
	}

	// An explicitly supplied tagIds list replaces the association set
	// wholesale; an empty list clears it.
	if req.TagIDs != nil {
		if err := s.projects.SetTags(ctx, id, *req.TagIDs); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *ProjectService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.projects.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("project_id", id.String()).Msg("project soft-deleted")
	return nil
}

// Exists is the lightweight probe used by the release service to validate
// project references without loading the entity.
func (s *ProjectService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.projects.Exists(ctx, id)
}

// UploadIcon validates and stores an icon image, then persists the public
// URL on the project.
func (s *ProjectService) UploadIcon(ctx context.Context, id uuid.UUID, data []byte, mimeType, originalName string) (*models.Project, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if !mimeTypeAllowed(mimeType) {
		return nil, apperrors.Validation("invalid file type %q, allowed: image/png, image/jpeg, image/gif, image/webp", mimeType)
	}
	if len(data) > MaxIconSizeBytes {
		return nil, apperrors.Validation("file too large, max size: %d MB", MaxIconSizeBytes/1024/1024)
	}

	result, err := s.blobs.Save(ctx, data, mimeType, originalName)
	if err != nil {
		return nil, err
	}

	err = s.projects.Update(ctx, id, repositories.ProjectPatch{ImageURL: &result.PublicURL})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", id.String()).Str("key", result.StorageKey).Msg("project icon uploaded")
	return s.Get(ctx, id)
}

// validateTagIDs rejects references to tags that do not exist, so the
// association insert cannot trip a foreign key error later.
func (s *ProjectService) validateTagIDs(ctx context.Context, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	found, err := s.tags.FindByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	if len(found) != len(dedupe(tagIDs)) {
		return apperrors.Validation("one or more tag IDs do not exist")
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mimeTypeAllowed(mimeType string) bool {
	for _, allowed := range allowedIconMimeTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
