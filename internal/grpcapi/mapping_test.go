package grpcapi

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "project-catalog/internal/errors"
	"project-catalog/internal/models"
)

func TestProjectStatusRoundTrip(t *testing.T) {
	for _, s := range []models.ProjectStatus{
		models.ProjectStatusActive,
		models.ProjectStatusArchived,
		models.ProjectStatusSuspended,
	} {
		wire := projectStatusToWire(s)
		require.NotEqual(t, ProjectStatusUnspecified, wire)
		back, ok := projectStatusFromWire(wire)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}

	// Unspecified and out-of-range codes map to the first substantive
	// value.
	def, ok := projectStatusFromWire(ProjectStatusUnspecified)
	assert.False(t, ok)
	assert.Equal(t, models.ProjectStatusActive, def)
	def, ok = projectStatusFromWire(ProjectStatus(99))
	assert.False(t, ok)
	assert.Equal(t, models.ProjectStatusActive, def)
}

func TestReleaseStatusRoundTrip(t *testing.T) {
	for _, s := range []models.ReleaseStatus{
		models.ReleaseStatusDraft,
		models.ReleaseStatusCreated,
		models.ReleaseStatusDelivering,
		models.ReleaseStatusDelivered,
		models.ReleaseStatusFailed,
	} {
		wire := releaseStatusToWire(s)
		require.NotEqual(t, ReleaseStatusUnspecified, wire)
		back, ok := releaseStatusFromWire(wire)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}

	def, ok := releaseStatusFromWire(ReleaseStatus(99))
	assert.False(t, ok)
	assert.Equal(t, models.ReleaseStatusDraft, def)
}

func TestLifecycleStageRoundTrip(t *testing.T) {
	for _, s := range []models.LifecycleStage{
		models.LifecycleStageDevelopment,
		models.LifecycleStageTesting,
		models.LifecycleStageStaging,
		models.LifecycleStageProduction,
	} {
		wire := lifecycleStageToWire(s)
		require.NotEqual(t, LifecycleStageUnspecified, wire)
		back, ok := lifecycleStageFromWire(wire)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}

	def, ok := lifecycleStageFromWire(LifecycleStage(77))
	assert.False(t, ok)
	assert.Equal(t, models.LifecycleStageDevelopment, def)
}

func TestProjectToWire(t *testing.T) {
	owner := uuid.New()
	desc := "catalogue service"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	project := &models.Project{
		ID:              uuid.New(),
		Name:            "Orion",
		Slug:            "orion",
		Description:     &desc,
		Status:          models.ProjectStatusActive,
		OwnerID:         &owner,
		LifecycleStages: []models.LifecycleStage{models.LifecycleStageProduction},
		Tags:            []models.Tag{{ID: uuid.New(), Name: "backend"}},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	wire := projectToWire(project)
	assert.Equal(t, project.ID.String(), wire.Id)
	assert.Equal(t, "Orion", wire.Name)
	assert.Equal(t, desc, wire.Description)
	assert.Equal(t, ProjectStatusActive, wire.Status)
	assert.Equal(t, owner.String(), wire.OwnerId)
	assert.Equal(t, []LifecycleStage{LifecycleStageProduction}, wire.LifecycleStages)
	assert.Len(t, wire.TagIds, 1)
	assert.Equal(t, "2025-06-01T12:00:00Z", wire.CreatedAt)
}

func TestProjectToWireEmptyCollections(t *testing.T) {
	wire := projectToWire(&models.Project{ID: uuid.New(), Name: "X", Slug: "x"})
	assert.NotNil(t, wire.LifecycleStages)
	assert.NotNil(t, wire.TagIds)
}

func TestStructureToWireDefaults(t *testing.T) {
	wire := structureToWire(&models.ReleaseStructure{
		ProjectID:   uuid.New(),
		ProjectName: "Orion",
		Version:     "1.0.0",
		SnapshotID:  "snap-1",
	})
	require.NotNil(t, wire.Config)
	assert.NotNil(t, wire.Config.Processes)
	assert.NotNil(t, wire.Config.Variables)
	assert.NotNil(t, wire.Config.Assets)
	assert.NotNil(t, wire.Metadata)
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{apperrors.NotFound("missing"), codes.NotFound},
		{apperrors.Conflict("duplicate"), codes.AlreadyExists},
		{apperrors.Validation("bad input"), codes.InvalidArgument},
		{apperrors.Internal("boom", nil), codes.Internal},
	}
	for _, tt := range tests {
		st, ok := status.FromError(statusError(tt.err))
		require.True(t, ok)
		assert.Equal(t, tt.code, st.Code())
	}
}

func TestStatusErrorHidesInternalDetail(t *testing.T) {
	st, _ := status.FromError(statusError(apperrors.Internal("connection string with secrets", nil)))
	assert.Equal(t, "internal server error", st.Message())
}
