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

type ProjectsServer struct {
	projects *services.ProjectService
}

func NewProjectsServer(projects *services.ProjectService) *ProjectsServer {
	return &ProjectsServer{projects: projects}
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is not a valid UUID", field)
	}
	return id, nil
}

func (s *ProjectsServer) HealthCheck(ctx context.Context, req *HealthCheckRequest) (*HealthCheckResponse, error) {
	return &HealthCheckResponse{Status: "SERVING", Service: req.Service}, nil
}

func (s *ProjectsServer) GetProject(ctx context.Context, req *GetProjectRequest) (*Project, error) {
	var (
		project *models.Project
		err     error
	)
	switch {
	case req.Id != "":
		var id uuid.UUID
		if id, err = parseID(req.Id, "id"); err != nil {
			return nil, err
		}
		project, err = s.projects.Get(ctx, id)
	case req.Slug != "":
		project, err = s.projects.GetBySlug(ctx, req.Slug)
	default:
		return nil, status.Error(codes.InvalidArgument, "either id or slug is required")
	}
	if err != nil {
		return nil, statusError(err)
	}
	return projectToWire(project), nil
}

func (s *ProjectsServer) ListProjects(ctx context.Context, req *ListProjectsRequest) (*ListProjectsResponse, error) {
	query := services.ListProjectsQuery{
		Page:      int(req.Page),
		PageSize:  wirePageSize(req.PageSize),
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.Status != ProjectStatusUnspecified {
		internal, _ := projectStatusFromWire(req.Status)
		query.Status = &internal
	}
	if req.OwnerId != "" {
		owner, err := parseID(req.OwnerId, "ownerId")
		if err != nil {
			return nil, err
		}
		query.OwnerID = &owner
	}
	for _, raw := range req.TagIds {
		tagID, err := parseID(raw, "tagIds")
		if err != nil {
			return nil, err
		}
		query.TagIDs = append(query.TagIDs, tagID)
	}

	page, err := s.projects.List(ctx, query)
	if err != nil {
		return nil, statusError(err)
	}

	resp := &ListProjectsResponse{
		Items:    []*Project{},
		Total:    int32(page.Total),
		Page:     int32(page.Page),
		PageSize: int32(page.PageSize),
	}
	for i := range page.Items {
		resp.Items = append(resp.Items, projectToWire(&page.Items[i]))
	}
	return resp, nil
}

func (s *ProjectsServer) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	create := services.CreateProjectRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Emoji:       req.Emoji,
		Metadata:    models.JSONMap(req.Metadata),
	}
	if req.Status != ProjectStatusUnspecified {
		internal, _ := projectStatusFromWire(req.Status)
		create.Status = &internal
	}
	if req.OwnerId != "" {
		owner, err := parseID(req.OwnerId, "ownerId")
		if err != nil {
			return nil, err
		}
		create.OwnerID = &owner
	}
	for _, stage := range req.LifecycleStages {
		internal, _ := lifecycleStageFromWire(stage)
		create.LifecycleStages = append(create.LifecycleStages, internal)
	}
	for _, raw := range req.TagIds {
		tagID, err := parseID(raw, "tagIds")
		if err != nil {
			return nil, err
		}
		create.TagIDs = append(create.TagIDs, tagID)
	}

	project, err := s.projects.Create(ctx, create)
	if err != nil {
		return nil, statusError(err)
	}
	return projectToWire(project), nil
}

func (s *ProjectsServer) UpdateProject(ctx context.Context, req *UpdateProjectRequest) (*Project, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}

	update := services.UpdateProjectRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Emoji:       req.Emoji,
	}
	if req.OwnerId != nil {
		owner, err := parseID(*req.OwnerId, "ownerId")
		if err != nil {
			return nil, err
		}
		update.OwnerID = &owner
	}
	if req.Metadata != nil {
		metadata := models.JSONMap(*req.Metadata)
		update.Metadata = &metadata
	}
	if req.Status != ProjectStatusUnspecified {
		internal, _ := projectStatusFromWire(req.Status)
		update.Status = &internal
	}
	if req.LifecycleStages != nil {
		stages := []models.LifecycleStage{}
		for _, stage := range *req.LifecycleStages {
			internal, _ := lifecycleStageFromWire(stage)
			stages = append(stages, internal)
		}
		update.LifecycleStages = &stages
	}
	if req.TagIds != nil {
		tagIDs := []uuid.UUID{}
		for _, raw := range *req.TagIds {
			tagID, err := parseID(raw, "tagIds")
			if err != nil {
				return nil, err
			}
			tagIDs = append(tagIDs, tagID)
		}
		update.TagIDs = &tagIDs
	}

	project, err := s.projects.Update(ctx, id, update)
	if err != nil {
		return nil, statusError(err)
	}
	return projectToWire(project), nil
}

func (s *ProjectsServer) DeleteProject(ctx context.Context, req *DeleteProjectRequest) (*DeleteProjectResponse, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	if err := s.projects.Remove(ctx, id); err != nil {
		return nil, statusError(err)
	}
	return &DeleteProjectResponse{}, nil
}

func (s *ProjectsServer) ProjectExists(ctx context.Context, req *ProjectExistsRequest) (*ProjectExistsResponse, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	exists, err := s.projects.Exists(ctx, id)
	if err != nil {
		return nil, statusError(err)
	}
	return &ProjectExistsResponse{Exists: exists}, nil
}

const projectsServiceName = "catalog.v1.ProjectsService"

// ServiceDesc describes the service for grpc.Server registration.
func (s *ProjectsServer) ServiceDesc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: projectsServiceName,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			methodDesc(projectsServiceName, "HealthCheck", s.HealthCheck),
			methodDesc(projectsServiceName, "GetProject", s.GetProject),
			methodDesc(projectsServiceName, "ListProjects", s.ListProjects),
			methodDesc(projectsServiceName, "CreateProject", s.CreateProject),
			methodDesc(projectsServiceName, "UpdateProject", s.UpdateProject),
			methodDesc(projectsServiceName, "DeleteProject", s.DeleteProject),
			methodDesc(projectsServiceName, "ProjectExists", s.ProjectExists),
		},
		Streams: []grpc.StreamDesc{},
	}
}
