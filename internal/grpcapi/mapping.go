package grpcapi

import (
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "project-catalog/internal/errors"
	"project-catalog/internal/models"
	"project-catalog/internal/pagination"
)

// wirePageSize maps the zero value, an omitted field on the wire, to the
// default page size. Out-of-range values are clamped later.
func wirePageSize(raw int32) int {
	if raw == 0 {
		return pagination.DefaultPageSize
	}
	return int(raw)
}

// statusError translates a service error into a gRPC status error.
func statusError(err error) error {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrNotFound:
		return status.Error(codes.NotFound, err.Error())
	case apperrors.ErrConflict:
		return status.Error(codes.AlreadyExists, err.Error())
	case apperrors.ErrValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func projectStatusToWire(s models.ProjectStatus) ProjectStatus {
	switch s {
	case models.ProjectStatusActive:
		return ProjectStatusActive
	case models.ProjectStatusArchived:
		return ProjectStatusArchived
	case models.ProjectStatusSuspended:
		return ProjectStatusSuspended
	default:
		return ProjectStatusUnspecified
	}
}

func projectStatusFromWire(s ProjectStatus) (models.ProjectStatus, bool) {
	switch s {
	case ProjectStatusActive:
		return models.ProjectStatusActive, true
	case ProjectStatusArchived:
		return models.ProjectStatusArchived, true
	case ProjectStatusSuspended:
		return models.ProjectStatusSuspended, true
	default:
		return models.ProjectStatusActive, false
	}
}

func lifecycleStageToWire(s models.LifecycleStage) LifecycleStage {
	switch s {
	case models.LifecycleStageDevelopment:
		return LifecycleStageDevelopment
	case models.LifecycleStageTesting:
		return LifecycleStageTesting
	case models.LifecycleStageStaging:
		return LifecycleStageStaging
	case models.LifecycleStageProduction:
		return LifecycleStageProduction
	default:
		return LifecycleStageUnspecified
	}
}

func lifecycleStageFromWire(s LifecycleStage) (models.LifecycleStage, bool) {
	switch s {
	case LifecycleStageDevelopment:
		return models.LifecycleStageDevelopment, true
	case LifecycleStageTesting:
		return models.LifecycleStageTesting, true
	case LifecycleStageStaging:
		return models.LifecycleStageStaging, true
	case LifecycleStageProduction:
		return models.LifecycleStageProduction, true
	default:
		return models.LifecycleStageDevelopment, false
	}
}

func releaseStatusToWire(s models.ReleaseStatus) ReleaseStatus {
	switch s {
	case models.ReleaseStatusDraft:
		return ReleaseStatusDraft
	case models.ReleaseStatusCreated:
		return ReleaseStatusCreated
	case models.ReleaseStatusDelivering:
		return ReleaseStatusDelivering
	case models.ReleaseStatusDelivered:
		return ReleaseStatusDelivered
	case models.ReleaseStatusFailed:
		return ReleaseStatusFailed
	default:
		return ReleaseStatusUnspecified
	}
}

func releaseStatusFromWire(s ReleaseStatus) (models.ReleaseStatus, bool) {
	switch s {
	case ReleaseStatusDraft:
		return models.ReleaseStatusDraft, true
	case ReleaseStatusCreated:
		return models.ReleaseStatusCreated, true
	case ReleaseStatusDelivering:
		return models.ReleaseStatusDelivering, true
	case ReleaseStatusDelivered:
		return models.ReleaseStatusDelivered, true
	case ReleaseStatusFailed:
		return models.ReleaseStatusFailed, true
	default:
		return models.ReleaseStatusDraft, false
	}
}

func projectToWire(p *models.Project) *Project {
	wire := &Project{
		Id:              p.ID.String(),
		Name:            p.Name,
		Slug:            p.Slug,
		Status:          projectStatusToWire(p.Status),
		LifecycleStages: []LifecycleStage{},
		TagIds:          []string{},
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Description != nil {
		wire.Description = *p.Description
	}
	if p.ImageURL != nil {
		wire.ImageUrl = *p.ImageURL
	}
	if p.Emoji != nil {
		wire.Emoji = *p.Emoji
	}
	if p.OwnerID != nil {
		wire.OwnerId = p.OwnerID.String()
	}
	for _, stage := range p.LifecycleStages {
		wire.LifecycleStages = append(wire.LifecycleStages, lifecycleStageToWire(stage))
	}
	for _, tag := range p.Tags {
		wire.TagIds = append(wire.TagIds, tag.ID.String())
	}
	return wire
}

func releaseToWire(r *models.Release) *Release {
	wire := &Release{
		Id:        r.ID.String(),
		ProjectId: r.ProjectID.String(),
		Version:   r.Version,
		Status:    releaseStatusToWire(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
	if r.SnapshotID != nil {
		wire.SnapshotId = *r.SnapshotID
	}
	if r.Changelog != nil {
		wire.Changelog = *r.Changelog
	}
	if r.Notes != nil {
		wire.Notes = *r.Notes
	}
	return wire
}

func tagToWire(t *models.Tag) *Tag {
	wire := &Tag{
		Id:        t.ID.String(),
		Name:      t.Name,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	if t.Description != nil {
		wire.Description = *t.Description
	}
	if t.Color != nil {
		wire.Color = *t.Color
	}
	return wire
}

func structureToWire(s *models.ReleaseStructure) *GetReleaseStructureResponse {
	config := &ReleaseStructureConfig{
		Processes: []*ReleaseProcess{},
		Variables: s.Config.Variables,
		Assets:    []*ReleaseAsset{},
	}
	if config.Variables == nil {
		config.Variables = map[string]string{}
	}
	for _, p := range s.Config.Processes {
		config.Processes = append(config.Processes, &ReleaseProcess{
			Id:     p.ID,
			Name:   p.Name,
			Config: p.Config,
		})
	}
	for _, a := range s.Config.Assets {
		config.Assets = append(config.Assets, &ReleaseAsset{
			Id:       a.ID,
			Name:     a.Name,
			Url:      a.URL,
			Metadata: a.Metadata,
		})
	}

	metadata := s.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	return &GetReleaseStructureResponse{
		ProjectId:   s.ProjectID.String(),
		ProjectName: s.ProjectName,
		Version:     s.Version,
		SnapshotId:  s.SnapshotID,
		Config:      config,
		Metadata:    metadata,
	}
}
