package services

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "project-catalog/internal/errors"
	"project-catalog/internal/models"
	"project-catalog/internal/pagination"
	"project-catalog/internal/repositories"
)

// hexColorPattern matches the #RRGGBB form required for tag colors.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type TagService struct {
	tags TagStore
	log  zerolog.Logger
}

func NewTagService(tags TagStore, log zerolog.Logger) *TagService {
	return &TagService{tags: tags, log: log}
}

type CreateTagRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type UpdateTagRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type ListTagsQuery struct {
	Page     int
	PageSize int
	Search   string
}

func (s *TagService) List(ctx context.Context, query ListTagsQuery) (pagination.Page[models.Tag], error) {
	params := pagination.Paginate(query.Page, query.PageSize)

	tags, total, err := s.tags.FindMany(ctx, repositories.TagQuery{
		Search: query.Search,
		Skip:   params.Skip,
		Take:   params.Take,
	})
	if err != nil {
		return pagination.Page[models.Tag]{}, err
	}
	return pagination.NewPage(tags, total, query.Page, params), nil
}

func (s *TagService) Get(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	tag, err := s.tags.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperrors.NotFound("tag with ID %s not found", id)
	}
	return tag, nil
}

func (s *TagService) Create(ctx context.Context, req CreateTagRequest) (*models.Tag, error) {
	if err := validateColor(req.Color); err != nil {
		return nil, err
	}

	// Name matching is case-sensitive and exact.
	unique, err := s.tags.IsNameUnique(ctx, req.Name, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperrors.Conflict("tag with name %q already exists", req.Name)
	}

	tag := &models.Tag{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}

	s.log.Info().Str("tag_id", tag.ID.String()).Str("name", tag.Name).Msg("tag created")
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, id uuid.UUID, req UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateColor(req.Color); err != nil {
		return nil, err
	}

	// Renaming to the current name is a no-op, not a conflict.
	if req.Name != nil && *req.Name != tag.Name {
		unique, err := s.tags.IsNameUnique(ctx, *req.Name, &id)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, apperrors.Conflict("tag with name %q already exists", *req.Name)
		}
	}

	err = s.tags.Update(ctx, id, repositories.TagPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *TagService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("tag_id", id.String()).Msg("tag deleted")
	return nil
}

func validateColor(color *string) error {
	if color == nil {
		return nil
	}
	if !hexColorPattern.MatchString(*color) {
		return apperrors.Validation("color must match #RRGGBB, got %q", *color)
	}
	return nil
}
