package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project-catalog/internal/models"
)

// TagQuery filters the tag listing. Search matches the name as a
// case-insensitive substring.
type TagQuery struct {
	Search string
	Skip   int
	Take   int
}

// TagPatch carries the fields of a partial update. Nil means "leave
// unchanged".
type TagPatch struct {
	Name        *string
	Description *string
	Color       *string
}

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

const tagColumns = `id, name, description, color, created_at, updated_at`

func (r *TagRepository) FindMany(ctx context.Context, q TagQuery) ([]models.Tag, int, error) {
	where := "TRUE"
	args := []any{}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		where = "name ILIKE $1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM tags WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Take, q.Skip)
	query := fmt.Sprintf(
		"SELECT %s FROM tags WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		tagColumns, where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Description, &tag.Color, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, 0, err
		}
		tags = append(tags, tag)
	}
	return tags, total, rows.Err()
}

func (r *TagRepository) FindOne(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	query := fmt.Sprintf("SELECT %s FROM tags WHERE id = $1", tagColumns)

	var tag models.Tag
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tag.ID, &tag.Name, &tag.Description, &tag.Color, &tag.CreatedAt, &tag.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// FindByIDs returns the tags matching ids, in name order. Missing ids are
// silently dropped.
func (r *TagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	query := fmt.Sprintf("SELECT %s FROM tags WHERE id = ANY($1) ORDER BY name", tagColumns)

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Description, &tag.Color, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	query := `
		INSERT INTO tags (id, name, description, color)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, tag.ID, tag.Name, tag.Description, tag.Color).
		Scan(&tag.CreatedAt, &tag.UpdatedAt)
	return translateError(err)
}

func (r *TagRepository) Update(ctx context.Context, id uuid.UUID, patch TagPatch) error {
	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Color != nil {
		add("color", *patch.Color)
	}
	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE tags SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	_, err := r.pool.Exec(ctx, query, args...)
	return translateError(err)
}

// Delete removes the row physically; tags have no soft-delete.
func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	return err
}

func (r *TagRepository) IsNameUnique(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	var count int
	var err error
	if excludeID != nil {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tags WHERE name = $1 AND id != $2`, name, *excludeID).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tags WHERE name = $1`, name).Scan(&count)
	}
	return count == 0, err
}
