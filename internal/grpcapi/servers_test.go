package grpcapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Malformed IDs are rejected before any service call, so a nil service is
// safe here.

func TestTagsServerRejectsMalformedID(t *testing.T) {
	s := NewTagsServer(nil)

	_, err := s.GetTag(context.Background(), &GetTagRequest{Id: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestProjectsServerRequiresIDOrSlug(t *testing.T) {
	s := NewProjectsServer(nil)

	_, err := s.GetProject(context.Background(), &GetProjectRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReleasesServerRequiresSnapshotID(t *testing.T) {
	s := NewReleasesServer(nil)

	_, err := s.UpdateReleaseStructure(context.Background(), &UpdateReleaseStructureRequest{
		Id: "5a0ddca5-3b9a-4f7c-9f0c-0a4f1d2e3b4c",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestProjectsServerHealthCheck(t *testing.T) {
	s := NewProjectsServer(nil)

	resp, err := s.HealthCheck(context.Background(), &HealthCheckRequest{Service: "catalog.v1.ProjectsService"})
	require.NoError(t, err)
	assert.Equal(t, "SERVING", resp.Status)
	assert.Equal(t, "catalog.v1.ProjectsService", resp.Service)
}
