package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "project-catalog/internal/errors"
	"project-catalog/internal/models"
)

type projectFixture struct {
	svc      *ProjectService
	projects *fakeProjectStore
	tags     *fakeTagStore
	blobs    *fakeBlobStore
}

func newProjectFixture() *projectFixture {
	projects := newFakeProjectStore()
	tags := newFakeTagStore()
	blobs := &fakeBlobStore{}
	return &projectFixture{
		svc:      NewProjectService(projects, tags, blobs, zerolog.Nop()),
		projects: projects,
		tags:     tags,
		blobs:    blobs,
	}
}

func TestProjectServiceCreateDefaults(t *testing.T) {
	f := newProjectFixture()

	project, err := f.svc.Create(context.Background(), CreateProjectRequest{
		Name: "Orion",
		Slug: "orion",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusActive, project.Status)
	assert.NotNil(t, project.LifecycleStages)
	assert.NotNil(t, project.Metadata)
	assert.NotEqual(t, uuid.Nil, project.ID)
}

func TestProjectServiceCreateSlugConflict(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, CreateProjectRequest{Name: "Orion II", Slug: "orion"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestProjectServiceSlugReusableAfterDelete(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	project, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)
	require.NoError(t, f.svc.Remove(ctx, project.ID))

	_, err = f.svc.Create(ctx, CreateProjectRequest{Name: "Orion II", Slug: "orion"})
	assert.NoError(t, err)
}

func TestProjectServiceCreateInvalidStatus(t *testing.T) {
	f := newProjectFixture()

	bad := models.ProjectStatus("paused")
	_, err := f.svc.Create(context.Background(), CreateProjectRequest{Name: "X", Slug: "x", Status: &bad})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProjectServiceCreateUnknownTagIDs(t *testing.T) {
	f := newProjectFixture()

	_, err := f.svc.Create(context.Background(), CreateProjectRequest{
		Name:   "X",
		Slug:   "x",
		TagIDs: []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProjectServiceCreateWithTags(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	tag := &models.Tag{Name: "backend"}
	require.NoError(t, f.tags.Create(ctx, tag))

	project, err := f.svc.Create(ctx, CreateProjectRequest{
		Name:   "Orion",
		Slug:   "orion",
		TagIDs: []uuid.UUID{tag.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tag.ID}, f.projects.tags[project.ID])
}

func TestProjectServiceGetBySlug(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)

	found, err := f.svc.GetBySlug(ctx, "orion")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = f.svc.GetBySlug(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProjectServiceUpdateSlugUnchanged(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	project, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)

	// Re-submitting the current slug must not trip the uniqueness check.
	updated, err := f.svc.Update(ctx, project.ID, UpdateProjectRequest{
		Name: strPtr("Orion Prime"),
		Slug: strPtr("orion"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Orion Prime", updated.Name)
}

func TestProjectServiceUpdateTagReplacement(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	tagA := &models.Tag{Name: "a"}
	tagB := &models.Tag{Name: "b"}
	require.NoError(t, f.tags.Create(ctx, tagA))
	require.NoError(t, f.tags.Create(ctx, tagB))

	project, err := f.svc.Create(ctx, CreateProjectRequest{
		Name:   "Orion",
		Slug:   "orion",
		TagIDs: []uuid.UUID{tagA.ID},
	})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, project.ID, UpdateProjectRequest{TagIDs: &[]uuid.UUID{tagB.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tagB.ID}, f.projects.tags[project.ID])

	// Empty list clears the associations; nil leaves them alone.
	_, err = f.svc.Update(ctx, project.ID, UpdateProjectRequest{TagIDs: &[]uuid.UUID{}})
	require.NoError(t, err)
	assert.Empty(t, f.projects.tags[project.ID])
}

func TestProjectServiceRemoveThenGet(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	project, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(ctx, project.ID))

	_, err = f.svc.Get(ctx, project.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = f.svc.Remove(ctx, project.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProjectServiceListFilterByStatus(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	archived := models.ProjectStatusArchived
	_, err := f.svc.Create(ctx, CreateProjectRequest{Name: "A", Slug: "a"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, CreateProjectRequest{Name: "B", Slug: "b", Status: &archived})
	require.NoError(t, err)

	page, err := f.svc.List(ctx, ListProjectsQuery{Status: &archived})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "B", page.Items[0].Name)
}

func TestProjectServiceListInvalidStatus(t *testing.T) {
	f := newProjectFixture()

	bad := models.ProjectStatus("limbo")
	_, err := f.svc.List(context.Background(), ListProjectsQuery{Status: &bad})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProjectServiceUploadIcon(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	project, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)

	updated, err := f.svc.UploadIcon(ctx, project.ID, []byte("png-bytes"), "image/png", "icon.png")
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, 1, f.blobs.saved)
}

func TestProjectServiceUploadIconRejectsMimeType(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	project, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)

	_, err = f.svc.UploadIcon(ctx, project.ID, []byte("<svg/>"), "image/svg+xml", "icon.svg")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, f.blobs.saved)
}

func TestProjectServiceUploadIconRejectsOversize(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	project, err := f.svc.Create(ctx, CreateProjectRequest{Name: "Orion", Slug: "orion"})
	require.NoError(t, err)

	data := bytes.Repeat([]byte{0x89}, MaxIconSizeBytes+1)
	_, err = f.svc.UploadIcon(ctx, project.ID, data, "image/png", "big.png")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
