package grpcapi

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"project-catalog/internal/models"
	"project-catalog/internal/services"
)

type ReleasesServer struct {
	releases *services.ReleaseService
}

func NewReleasesServer(releases *services.ReleaseService) *ReleasesServer {
	return &ReleasesServer{releases: releases}
}

func (s *ReleasesServer) GetRelease(ctx context.Context, req *GetReleaseRequest) (*Release, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	var scope *uuid.UUID
	if req.ProjectId != "" {
		projectID, err := parseID(req.ProjectId, "projectId")
		if err != nil {
			return nil, err
		}
		scope = &projectID
	}

	release, err := s.releases.Get(ctx, id, scope)
	if err != nil {
		return nil, statusError(err)
	}
	return releaseToWire(release), nil
}

func (s *ReleasesServer) ListReleases(ctx context.Context, req *ListReleasesRequest) (*ListReleasesResponse, error) {
	projectID, err := parseID(req.ProjectId, "projectId")
	if err != nil {
		return nil, err
	}

	query := services.ListReleasesQuery{
		Page:     int(req.Page),
		PageSize: wirePageSize(req.PageSize),
		Version:  req.Version,
	}
	if req.Status != ReleaseStatusUnspecified {
		internal, _ := releaseStatusFromWire(req.Status)
		query.Status = &internal
	}

	page, err := s.releases.List(ctx, projectID, query)
	if err != nil {
		return nil, statusError(err)
	}

	resp := &ListReleasesResponse{
		Items:    []*Release{},
		Total:    int32(page.Total),
		Page:     int32(page.Page),
		PageSize: int32(page.PageSize),
	}
	for i := range page.Items {
		resp.Items = append(resp.Items, releaseToWire(&page.Items[i]))
	}
	return resp, nil
}

func (s *ReleasesServer) CreateRelease(ctx context.Context, req *CreateReleaseRequest) (*Release, error) {
	projectID, err := parseID(req.ProjectId, "projectId")
	if err != nil {
		return nil, err
	}

	release, err := s.releases.Create(ctx, projectID, services.CreateReleaseRequest{
		Version:   req.Version,
		Changelog: req.Changelog,
		Notes:     req.Notes,
		Structure: models.JSONMap(req.Structure),
		Metadata:  models.JSONMap(req.Metadata),
	})
	if err != nil {
		return nil, statusError(err)
	}
	return releaseToWire(release), nil
}

func (s *ReleasesServer) UpdateRelease(ctx context.Context, req *UpdateReleaseRequest) (*Release, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}

	release, err := s.releases.Update(ctx, id, services.UpdateReleaseRequest{
		SnapshotID: req.SnapshotId,
		Changelog:  req.Changelog,
		Notes:      req.Notes,
	}, nil)
	if err != nil {
		return nil, statusError(err)
	}
	return releaseToWire(release), nil
}

func (s *ReleasesServer) UpdateReleaseStructure(ctx context.Context, req *UpdateReleaseStructureRequest) (*Release, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	if req.SnapshotId == "" {
		return nil, status.Error(codes.InvalidArgument, "snapshotId is required")
	}

	release, err := s.releases.UpdateStructure(ctx, id, req.SnapshotId, req.Structure)
	if err != nil {
		return nil, statusError(err)
	}
	return releaseToWire(release), nil
}

func (s *ReleasesServer) UpdateReleaseStatus(ctx context.Context, req *UpdateReleaseStatusRequest) (*Release, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	// Unknown and unspecified codes fall back to the mapping's default
	// rather than failing the call.
	internal, _ := releaseStatusFromWire(req.Status)

	release, err := s.releases.UpdateStatus(ctx, id, internal)
	if err != nil {
		return nil, statusError(err)
	}
	return releaseToWire(release), nil
}

func (s *ReleasesServer) DeleteRelease(ctx context.Context, req *DeleteReleaseRequest) (*DeleteReleaseResponse, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	var scope *uuid.UUID
	if req.ProjectId != "" {
		projectID, err := parseID(req.ProjectId, "projectId")
		if err != nil {
			return nil, err
		}
		scope = &projectID
	}

	if err := s.releases.Remove(ctx, id, scope); err != nil {
		return nil, statusError(err)
	}
	return &DeleteReleaseResponse{}, nil
}

func (s *ReleasesServer) GetReleaseStructure(ctx context.Context, req *GetReleaseStructureRequest) (*GetReleaseStructureResponse, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	structure, err := s.releases.GetStructure(ctx, id)
	if err != nil {
		return nil, statusError(err)
	}
	return structureToWire(structure), nil
}

const releasesServiceName = "catalog.v1.ReleasesService"

func (s *ReleasesServer) ServiceDesc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: releasesServiceName,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			methodDesc(releasesServiceName, "GetRelease", s.GetRelease),
			methodDesc(releasesServiceName, "ListReleases", s.ListReleases),
			methodDesc(releasesServiceName, "CreateRelease", s.CreateRelease),
			methodDesc(releasesServiceName, "UpdateRelease", s.UpdateRelease),
			methodDesc(releasesServiceName, "UpdateReleaseStructure", s.UpdateReleaseStructure),
			methodDesc(releasesServiceName, "UpdateReleaseStatus", s.UpdateReleaseStatus),
			methodDesc(releasesServiceName, "DeleteRelease", s.DeleteRelease),
			methodDesc(releasesServiceName, "GetReleaseStructure", s.GetReleaseStructure),
		},
		Streams: []grpc.StreamDesc{},
	}
}
