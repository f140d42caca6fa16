package services

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "project-catalog/internal/errors"
	"project-catalog/internal/models"
	"project-catalog/internal/pagination"
	"project-catalog/internal/repositories"
)

// strictTransitions is the optional transition table enforced by
// UpdateStatus when the service runs in strict mode. UpdateStructure is
// exempt; it always lands on "created".
var strictTransitions = map[models.ReleaseStatus][]models.ReleaseStatus{
	models.ReleaseStatusDraft:      {models.ReleaseStatusCreated},
	models.ReleaseStatusCreated:    {models.ReleaseStatusDelivering},
	models.ReleaseStatusDelivering: {models.ReleaseStatusDelivered, models.ReleaseStatusFailed},
	models.ReleaseStatusDelivered:  {},
	models.ReleaseStatusFailed:     {models.ReleaseStatusDelivering},
}

type ReleaseService struct {
	releases ReleaseStore
	projects *ProjectService
	strict   bool
	log      zerolog.Logger
}

func NewReleaseService(releases ReleaseStore, projects *ProjectService, strict bool, log zerolog.Logger) *ReleaseService {
	return &ReleaseService{releases: releases, projects: projects, strict: strict, log: log}
}

type CreateReleaseRequest struct {
	Version   string         `json:"version" binding:"required"`
	Changelog *string        `json:"changelog,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
	Structure models.JSONMap `json:"structure,omitempty"`
	Metadata  models.JSONMap `json:"metadata,omitempty"`
}

type UpdateReleaseRequest struct {
	SnapshotID *string         `json:"snapshotId,omitempty"`
	Changelog  *string         `json:"changelog,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	Structure  *models.JSONMap `json:"structure,omitempty"`
	Metadata   *models.JSONMap `json:"metadata,omitempty"`
}

type ListReleasesQuery struct {
	Page     int
	PageSize int
	Status   *models.ReleaseStatus
	Version  string
}

func (s *ReleaseService) List(ctx context.Context, projectID uuid.UUID, query ListReleasesQuery) (pagination.Page[models.Release], error) {
	if query.Status != nil && !query.Status.Valid() {
		return pagination.Page[models.Release]{}, apperrors.Validation("unknown release status %q", *query.Status)
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return pagination.Page[models.Release]{}, err
	}

	params := pagination.Paginate(query.Page, query.PageSize)
	releases, total, err := s.releases.FindMany(ctx, repositories.ReleaseQuery{
		ProjectID: projectID,
		Status:    query.Status,
		Version:   query.Version,
		Skip:      params.Skip,
		Take:      params.Take,
	})
	if err != nil {
		return pagination.Page[models.Release]{}, err
	}
	return pagination.NewPage(releases, total, query.Page, params), nil
}

// Get loads a release. When projectID is non-nil and the release belongs to
// a different project it reports NotFound, never the release of the other
// project.
func (s *ReleaseService) Get(ctx context.Context, id uuid.UUID, projectID *uuid.UUID) (*models.Release, error) {
	release, err := s.releases.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if release == nil {
		return nil, apperrors.NotFound("release with ID %s not found", id)
	}
	if projectID != nil && release.ProjectID != *projectID {
		return nil, apperrors.NotFound("release with ID %s not found", id)
	}
	return release, nil
}

func (s *ReleaseService) Create(ctx context.Context, projectID uuid.UUID, req CreateReleaseRequest) (*models.Release, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := ValidateVersion(req.Version); err != nil {
		return nil, err
	}

	unique, err := s.releases.IsVersionUnique(ctx, projectID, req.Version, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperrors.Conflict("release with version %q already exists for this project", req.Version)
	}

	release := &models.Release{
		ProjectID: projectID,
		Version:   req.Version,
		Status:    models.ReleaseStatusDraft,
		Changelog: req.Changelog,
		Notes:     req.Notes,
		Structure: req.Structure,
		Metadata:  req.Metadata,
	}
	if release.Structure == nil {
		release.Structure = models.JSONMap{}
	}
	if release.Metadata == nil {
		release.Metadata = models.JSONMap{}
	}

	if err := s.releases.Create(ctx, release); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("release_id", release.ID.String()).
		Str("project_id", projectID.String()).
		Str("version", release.Version).
		Msg("release created")
	return s.Get(ctx, release.ID, nil)
}

func (s *ReleaseService) Update(ctx context.Context, id uuid.UUID, req UpdateReleaseRequest, projectID *uuid.UUID) (*models.Release, error) {
	if _, err := s.Get(ctx, id, projectID); err != nil {
		return nil, err
	}

	err := s.releases.Update(ctx, id, repositories.ReleasePatch{
		SnapshotID: req.SnapshotID,
		Changelog:  req.Changelog,
		Notes:      req.Notes,
		Structure:  req.Structure,
		Metadata:   req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id, nil)
}

// UpdateStructure attaches a structure snapshot produced by the build
// pipeline. The status is forced to "created" unconditionally, even when
// the release had already moved further along.
func (s *ReleaseService) UpdateStructure(ctx context.Context, id uuid.UUID, snapshotID string, structure models.JSONMap) (*models.Release, error) {
	if _, err := s.Get(ctx, id, nil); err != nil {
		return nil, err
	}

	status := models.ReleaseStatusCreated
	if structure == nil {
		structure = models.JSONMap{}
	}
	err := s.releases.Update(ctx, id, repositories.ReleasePatch{
		SnapshotID: &snapshotID,
		Structure:  &structure,
		Status:     &status,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("release_id", id.String()).Str("snapshot_id", snapshotID).Msg("release structure updated")
	return s.Get(ctx, id, nil)
}

func (s *ReleaseService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReleaseStatus) (*models.Release, error) {
	if !status.Valid() {
		return nil, apperrors.Validation("unknown release status %q", status)
	}
	release, err := s.Get(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if s.strict && release.Status != status && !transitionAllowed(release.Status, status) {
		return nil, apperrors.Validation("release status cannot move from %q to %q", release.Status, status)
	}

	err = s.releases.Update(ctx, id, repositories.ReleasePatch{Status: &status})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("release_id", id.String()).
		Str("from", string(release.Status)).
		Str("to", string(status)).
		Msg("release status updated")
	return s.Get(ctx, id, nil)
}

func (s *ReleaseService) Remove(ctx context.Context, id uuid.UUID, projectID *uuid.UUID) error {
	if _, err := s.Get(ctx, id, projectID); err != nil {
		return err
	}
	if err := s.releases.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("release_id", id.String()).Msg("release soft-deleted")
	return nil
}

// GetStructure returns the structure view for a release. An empty stored
// structure counts as absent.
func (s *ReleaseService) GetStructure(ctx context.Context, id uuid.UUID) (*models.ReleaseStructure, error) {
	release, err := s.Get(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.Get(ctx, release.ProjectID)
	if err != nil {
		return nil, err
	}

	if !release.HasStructure() {
		return nil, apperrors.NotFound("release structure not found for release %s", id)
	}

	view := &models.ReleaseStructure{
		ProjectID:   release.ProjectID,
		ProjectName: project.Name,
		Version:     release.Version,
		Config: models.ReleaseConfig{
			Processes: []models.Process{},
			Variables: map[string]string{},
			Assets:    []models.Asset{},
		},
		Metadata: map[string]string{},
	}
	if release.SnapshotID != nil {
		view.SnapshotID = *release.SnapshotID
	}

	if raw, ok := release.Structure["config"]; ok {
		if err := reshape(raw, &view.Config); err != nil {
			return nil, apperrors.Validation("release structure config is malformed: %v", err)
		}
		if view.Config.Processes == nil {
			view.Config.Processes = []models.Process{}
		}
		if view.Config.Variables == nil {
			view.Config.Variables = map[string]string{}
		}
		if view.Config.Assets == nil {
			view.Config.Assets = []models.Asset{}
		}
	}
	if raw, ok := release.Structure["metadata"]; ok {
		if err := reshape(raw, &view.Metadata); err != nil {
			return nil, apperrors.Validation("release structure metadata is malformed: %v", err)
		}
		if view.Metadata == nil {
			view.Metadata = map[string]string{}
		}
	}

	return view, nil
}

func (s *ReleaseService) requireProject(ctx context.Context, projectID uuid.UUID) error {
	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("project with ID %s not found", projectID)
	}
	return nil
}

// ValidateVersion enforces the strict semantic-version grammar:
// MAJOR.MINOR.PATCH[-prerelease][+build], numeric components without
// leading zeros, no "v" prefix.
func ValidateVersion(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return apperrors.Validation("version %q is not a valid semantic version (e.g. 1.0.0, 1.0.0-alpha.1, 1.0.0+build.5)", version)
	}
	return nil
}

func transitionAllowed(from, to models.ReleaseStatus) bool {
	for _, next := range strictTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// reshape re-decodes an opaque JSON value into a typed view.
func reshape(raw any, target any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
