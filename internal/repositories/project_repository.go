package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project-catalog/internal/models"
)

// ProjectQuery is the filter set accepted by FindMany. Zero values mean "no
// filter"; Skip/Take are expected to be pre-clamped by the caller.
type ProjectQuery struct {
	OwnerID   *uuid.UUID
	Status    *models.ProjectStatus
	Search    string
	TagIDs    []uuid.UUID
	SortBy    string
	SortOrder string
	Skip      int
	Take      int
}

// ProjectPatch carries the fields of a partial update. Nil means "leave
// unchanged".
type ProjectPatch struct {
	Name            *string
	Slug            *string
	Description     *string
	ImageURL        *string
	Emoji           *string
	Status          *models.ProjectStatus
	OwnerID         *uuid.UUID
	LifecycleStages *[]models.LifecycleStage
	Metadata        *models.JSONMap
}

// projectSortColumns whitelists sortable fields against injection.
var projectSortColumns = map[string]string{
	"name":      "name",
	"slug":      "slug",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, name, slug, description, image_url, emoji, status, owner_id, lifecycle_stages, metadata, created_at, updated_at, deleted_at`

func (r *ProjectRepository) FindMany(ctx context.Context, q ProjectQuery) ([]models.Project, int, error) {
	where := []string{"p.deleted_at IS NULL"}
	args := []any{}

	if q.OwnerID != nil {
		args = append(args, *q.OwnerID)
		where = append(where, fmt.Sprintf("p.owner_id = $%d", len(args)))
	}
	if q.Status != nil {
		args = append(args, *q.Status)
		where = append(where, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(p.name ILIKE $%d OR p.slug ILIKE $%d OR p.description ILIKE $%d)", n, n, n))
	}
	if len(q.TagIDs) > 0 {
		args = append(args, q.TagIDs)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM project_tags pt WHERE pt.project_id = p.id AND pt.tag_id = ANY($%d))", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM projects p WHERE " + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := projectSortColumns[q.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		direction = "ASC"
	}

	args = append(args, q.Take, q.Skip)
	query := fmt.Sprintf(
		"SELECT %s FROM projects p WHERE %s ORDER BY p.%s %s LIMIT $%d OFFSET $%d",
		qualify(projectColumns, "p"), whereClause, sortColumn, direction, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadTags(ctx, projects); err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *ProjectRepository) FindOne(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = $1 AND deleted_at IS NULL", projectColumns)
	return r.findOneBy(ctx, query, id)
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE slug = $1 AND deleted_at IS NULL", projectColumns)
	return r.findOneBy(ctx, query, slug)
}

func (r *ProjectRepository) findOneBy(ctx context.Context, query string, arg any) (*models.Project, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	project, err := scanProject(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	single := []models.Project{*project}
	if err := r.loadTags(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	stagesJSON, err := json.Marshal(project.LifecycleStages)
	if err != nil {
		return err
	}
	metadataJSON, err := json.Marshal(project.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, name, slug, description, image_url, emoji, status, owner_id, lifecycle_stages, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10::jsonb)
		RETURNING created_at, updated_at
	`
	err = r.pool.QueryRow(ctx, query,
		project.ID,
		project.Name,
		project.Slug,
		project.Description,
		project.ImageURL,
		project.Emoji,
		project.Status,
		project.OwnerID,
		stagesJSON,
		metadataJSON,
	).Scan(&project.CreatedAt, &project.UpdatedAt)

	return translateError(err)
}

func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, patch ProjectPatch) error {
	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.Emoji != nil {
		add("emoji", *patch.Emoji)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.OwnerID != nil {
		add("owner_id", *patch.OwnerID)
	}
	if patch.LifecycleStages != nil {
		stagesJSON, err := json.Marshal(*patch.LifecycleStages)
		if err != nil {
			return err
		}
		add("lifecycle_stages", stagesJSON)
	}
	if patch.Metadata != nil {
		metadataJSON, err := json.Marshal(*patch.Metadata)
		if err != nil {
			return err
		}
		add("metadata", metadataJSON)
	}
	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(set, ", "), len(args))

	_, err := r.pool.Exec(ctx, query, args...)
	return translateError(err)
}

func (r *ProjectRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE projects SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *ProjectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1 AND deleted_at IS NULL)`
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *ProjectRepository) IsSlugUnique(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int
	var err error
	if excludeID != nil {
		query := `SELECT COUNT(*) FROM projects WHERE slug = $1 AND deleted_at IS NULL AND id != $2`
		err = r.pool.QueryRow(ctx, query, slug, *excludeID).Scan(&count)
	} else {
		query := `SELECT COUNT(*) FROM projects WHERE slug = $1 AND deleted_at IS NULL`
		err = r.pool.QueryRow(ctx, query, slug).Scan(&count)
	}
	return count == 0, err
}

// SetTags replaces the full tag association set for a project.
func (r *ProjectRepository) SetTags(ctx context.Context, projectID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM project_tags WHERE project_id = $1`, projectID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		query := `INSERT INTO project_tags (project_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := r.pool.Exec(ctx, query, projectID, tagID); err != nil {
			return translateError(err)
		}
	}
	return nil
}

// loadTags populates Tags for every project in the slice with one query.
func (r *ProjectRepository) loadTags(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
		projects[i].Tags = []models.Tag{}
	}

	query := `
		SELECT pt.project_id, t.id, t.name, t.description, t.color, t.created_at, t.updated_at
		FROM project_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.project_id = ANY($1)
		ORDER BY t.name
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]models.Tag)
	for rows.Next() {
		var projectID uuid.UUID
		var tag models.Tag
		if err := rows.Scan(&projectID, &tag.ID, &tag.Name, &tag.Description, &tag.Color, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return err
		}
		byProject[projectID] = append(byProject[projectID], tag)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range projects {
		if tags, ok := byProject[projects[i].ID]; ok {
			projects[i].Tags = tags
		}
	}
	return nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	var stagesJSON, metadataJSON []byte

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Slug,
		&project.Description,
		&project.ImageURL,
		&project.Emoji,
		&project.Status,
		&project.OwnerID,
		&stagesJSON,
		&metadataJSON,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(stagesJSON, &project.LifecycleStages); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(metadataJSON, &project.Metadata); err != nil {
		return nil, err
	}
	if project.LifecycleStages == nil {
		project.LifecycleStages = []models.LifecycleStage{}
	}
	if project.Metadata == nil {
		project.Metadata = models.JSONMap{}
	}
	return &project, nil
}

// qualify prefixes every column in a comma-separated list with an alias.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
