package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"project-catalog/internal/models"
	"project-catalog/internal/repositories"
	"project-catalog/internal/storage"
)

// In-memory store fakes. They mirror the row-visibility rules of the pgx
// repositories: soft-deleted rows are invisible everywhere, including the
// uniqueness checks. Listings return newest rows first, matching the
// repository ordering.

type fakeProjectStore struct {
	rows map[uuid.UUID]*models.Project
	tags map[uuid.UUID][]uuid.UUID
	seq  int64
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{
		rows: map[uuid.UUID]*models.Project{},
		tags: map[uuid.UUID][]uuid.UUID{},
	}
}

func (f *fakeProjectStore) live() []*models.Project {
	var out []*models.Project
	for _, p := range f.rows {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeProjectStore) FindMany(_ context.Context, q repositories.ProjectQuery) ([]models.Project, int, error) {
	var matched []models.Project
	for _, p := range f.live() {
		if q.Status != nil && p.Status != *q.Status {
			continue
		}
		if q.OwnerID != nil && (p.OwnerID == nil || *p.OwnerID != *q.OwnerID) {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, *p)
	}
	total := len(matched)
	if q.Skip >= len(matched) {
		return []models.Project{}, total, nil
	}
	matched = matched[q.Skip:]
	if q.Take < len(matched) {
		matched = matched[:q.Take]
	}
	return matched, total, nil
}

func (f *fakeProjectStore) FindOne(_ context.Context, id uuid.UUID) (*models.Project, error) {
	p, ok := f.rows[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProjectStore) FindBySlug(_ context.Context, slug string) (*models.Project, error) {
	for _, p := range f.rows {
		if p.DeletedAt == nil && p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) Create(_ context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.seq++
	now := time.Unix(f.seq, 0)
	project.CreatedAt = now
	project.UpdatedAt = now
	clone := *project
	f.rows[project.ID] = &clone
	return nil
}

func (f *fakeProjectStore) Update(_ context.Context, id uuid.UUID, patch repositories.ProjectPatch) error {
	p, ok := f.rows[id]
	if !ok || p.DeletedAt != nil {
		return nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = patch.ImageURL
	}
	if patch.Emoji != nil {
		p.Emoji = patch.Emoji
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.OwnerID != nil {
		p.OwnerID = patch.OwnerID
	}
	if patch.LifecycleStages != nil {
		p.LifecycleStages = *patch.LifecycleStages
	}
	if patch.Metadata != nil {
		p.Metadata = *patch.Metadata
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (f *fakeProjectStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := f.rows[id]; ok {
		now := time.Now()
		p.DeletedAt = &now
	}
	return nil
}

func (f *fakeProjectStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	p, ok := f.rows[id]
	return ok && p.DeletedAt == nil, nil
}

func (f *fakeProjectStore) IsSlugUnique(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for _, p := range f.rows {
		if p.DeletedAt != nil || p.Slug != slug {
			continue
		}
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		return false, nil
	}
	return true, nil
}

func (f *fakeProjectStore) SetTags(_ context.Context, projectID uuid.UUID, tagIDs []uuid.UUID) error {
	f.tags[projectID] = append([]uuid.UUID{}, tagIDs...)
	return nil
}

type fakeReleaseStore struct {
	rows map[uuid.UUID]*models.Release
	seq  int64
}

func newFakeReleaseStore() *fakeReleaseStore {
	return &fakeReleaseStore{rows: map[uuid.UUID]*models.Release{}}
}

func (f *fakeReleaseStore) FindMany(_ context.Context, q repositories.ReleaseQuery) ([]models.Release, int, error) {
	var matched []models.Release
	var live []*models.Release
	for _, r := range f.rows {
		if r.DeletedAt == nil {
			live = append(live, r)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].CreatedAt.After(live[j].CreatedAt) })
	for _, r := range live {
		if r.ProjectID != q.ProjectID {
			continue
		}
		if q.Status != nil && r.Status != *q.Status {
			continue
		}
		if q.Version != "" && !strings.Contains(r.Version, q.Version) {
			continue
		}
		matched = append(matched, *r)
	}
	total := len(matched)
	if q.Skip >= len(matched) {
		return []models.Release{}, total, nil
	}
	matched = matched[q.Skip:]
	if q.Take < len(matched) {
		matched = matched[:q.Take]
	}
	return matched, total, nil
}

func (f *fakeReleaseStore) FindOne(_ context.Context, id uuid.UUID) (*models.Release, error) {
	r, ok := f.rows[id]
	if !ok || r.DeletedAt != nil {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeReleaseStore) Create(_ context.Context, release *models.Release) error {
	if release.ID == uuid.Nil {
		release.ID = uuid.New()
	}
	f.seq++
	now := time.Unix(f.seq, 0)
	release.CreatedAt = now
	release.UpdatedAt = now
	clone := *release
	f.rows[release.ID] = &clone
	return nil
}

func (f *fakeReleaseStore) Update(_ context.Context, id uuid.UUID, patch repositories.ReleasePatch) error {
	r, ok := f.rows[id]
	if !ok || r.DeletedAt != nil {
		return nil
	}
	if patch.SnapshotID != nil {
		r.SnapshotID = patch.SnapshotID
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.Changelog != nil {
		r.Changelog = patch.Changelog
	}
	if patch.Notes != nil {
		r.Notes = patch.Notes
	}
	if patch.Structure != nil {
		r.Structure = *patch.Structure
	}
	if patch.Metadata != nil {
		r.Metadata = *patch.Metadata
	}
	r.UpdatedAt = time.Now()
	return nil
}

func (f *fakeReleaseStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	if r, ok := f.rows[id]; ok {
		now := time.Now()
		r.DeletedAt = &now
	}
	return nil
}

func (f *fakeReleaseStore) IsVersionUnique(_ context.Context, projectID uuid.UUID, version string, excludeID *uuid.UUID) (bool, error) {
	for _, r := range f.rows {
		if r.DeletedAt != nil || r.ProjectID != projectID || r.Version != version {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		return false, nil
	}
	return true, nil
}

type fakeTagStore struct {
	rows map[uuid.UUID]*models.Tag
	seq  int64
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{rows: map[uuid.UUID]*models.Tag{}}
}

func (f *fakeTagStore) FindMany(_ context.Context, q repositories.TagQuery) ([]models.Tag, int, error) {
	var matched []models.Tag
	var all []*models.Tag
	for _, t := range f.rows {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	for _, t := range all {
		if q.Search != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, *t)
	}
	total := len(matched)
	if q.Skip >= len(matched) {
		return []models.Tag{}, total, nil
	}
	matched = matched[q.Skip:]
	if q.Take < len(matched) {
		matched = matched[:q.Take]
	}
	return matched, total, nil
}

func (f *fakeTagStore) FindOne(_ context.Context, id uuid.UUID) (*models.Tag, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTagStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	var out []models.Tag
	seen := map[uuid.UUID]struct{}{}
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if t, ok := f.rows[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTagStore) Create(_ context.Context, tag *models.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	f.seq++
	now := time.Unix(f.seq, 0)
	tag.CreatedAt = now
	tag.UpdatedAt = now
	clone := *tag
	f.rows[tag.ID] = &clone
	return nil
}

func (f *fakeTagStore) Update(_ context.Context, id uuid.UUID, patch repositories.TagPatch) error {
	t, ok := f.rows[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Color != nil {
		t.Color = patch.Color
	}
	t.UpdatedAt = time.Now()
	return nil
}

func (f *fakeTagStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeTagStore) IsNameUnique(_ context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	for _, t := range f.rows {
		if t.Name != name {
			continue
		}
		if excludeID != nil && t.ID == *excludeID {
			continue
		}
		return false, nil
	}
	return true, nil
}

type fakeBlobStore struct {
	saved int
}

func (f *fakeBlobStore) Save(_ context.Context, _ []byte, mimeType, _ string) (*storage.SaveResult, error) {
	f.saved++
	return &storage.SaveResult{
		PublicURL:  "http://blobs.local/icon-" + mimeType,
		StorageKey: "icon-key",
	}, nil
}
