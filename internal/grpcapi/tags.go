package grpcapi

import (
	"context"

	"google.golang.org/grpc"

	"project-catalog/internal/services"
)

type TagsServer struct {
	tags *services.TagService
}

func NewTagsServer(tags *services.TagService) *TagsServer {
	return &TagsServer{tags: tags}
}

func (s *TagsServer) GetTag(ctx context.Context, req *GetTagRequest) (*Tag, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	tag, err := s.tags.Get(ctx, id)
	if err != nil {
		return nil, statusError(err)
	}
	return tagToWire(tag), nil
}

func (s *TagsServer) ListTags(ctx context.Context, req *ListTagsRequest) (*ListTagsResponse, error) {
	page, err := s.tags.List(ctx, services.ListTagsQuery{
		Page:     int(req.Page),
		PageSize: wirePageSize(req.PageSize),
		Search:   req.Search,
	})
	if err != nil {
		return nil, statusError(err)
	}

	resp := &ListTagsResponse{
		Items:    []*Tag{},
		Total:    int32(page.Total),
		Page:     int32(page.Page),
		PageSize: int32(page.PageSize),
	}
	for i := range page.Items {
		resp.Items = append(resp.Items, tagToWire(&page.Items[i]))
	}
	return resp, nil
}

func (s *TagsServer) CreateTag(ctx context.Context, req *CreateTagRequest) (*Tag, error) {
	tag, err := s.tags.Create(ctx, services.CreateTagRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return nil, statusError(err)
	}
	return tagToWire(tag), nil
}

func (s *TagsServer) UpdateTag(ctx context.Context, req *UpdateTagRequest) (*Tag, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	tag, err := s.tags.Update(ctx, id, services.UpdateTagRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return nil, statusError(err)
	}
	return tagToWire(tag), nil
}

func (s *TagsServer) DeleteTag(ctx context.Context, req *DeleteTagRequest) (*DeleteTagResponse, error) {
	id, err := parseID(req.Id, "id")
	if err != nil {
		return nil, err
	}
	if err := s.tags.Remove(ctx, id); err != nil {
		return nil, statusError(err)
	}
	return &DeleteTagResponse{}, nil
}

const tagsServiceName = "catalog.v1.TagsService"

func (s *TagsServer) ServiceDesc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: tagsServiceName,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			methodDesc(tagsServiceName, "GetTag", s.GetTag),
			methodDesc(tagsServiceName, "ListTags", s.ListTags),
			methodDesc(tagsServiceName, "CreateTag", s.CreateTag),
			methodDesc(tagsServiceName, "UpdateTag", s.UpdateTag),
			methodDesc(tagsServiceName, "DeleteTag", s.DeleteTag),
		},
		Streams: []grpc.StreamDesc{},
	}
}
