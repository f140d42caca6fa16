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

// ReleaseQuery filters the releases of one project. Version is matched as a
// case-insensitive substring.
type ReleaseQuery struct {
	ProjectID uuid.UUID
	Status    *models.ReleaseStatus
	Version   string
	Skip      int
	Take      int
}

// ReleasePatch carries the fields of a partial update. Nil means "leave
// unchanged".
type ReleasePatch struct {
	SnapshotID *string
	Status     *models.ReleaseStatus
	Changelog  *string
	Notes      *string
	Structure  *models.JSONMap
	Metadata   *models.JSONMap
}

type ReleaseRepository struct {
	pool *pgxpool.Pool
}

func NewReleaseRepository(pool *pgxpool.Pool) *ReleaseRepository {
	return &ReleaseRepository{pool: pool}
}

const releaseColumns = `id, project_id, version, snapshot_id, status, changelog, notes, structure, metadata, created_at, updated_at, deleted_at`

func (r *ReleaseRepository) FindMany(ctx context.Context, q ReleaseQuery) ([]models.Release, int, error) {
	where := []string{"project_id = $1", "deleted_at IS NULL"}
	args := []any{q.ProjectID}

	if q.Status != nil {
		args = append(args, *q.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.Version != "" {
		args = append(args, "%"+q.Version+"%")
		where = append(where, fmt.Sprintf("version ILIKE $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM releases WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Take, q.Skip)
	query := fmt.Sprintf(
		"SELECT %s FROM releases WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		releaseColumns, whereClause, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var releases []models.Release
	for rows.Next() {
		release, err := scanRelease(rows)
		if err != nil {
			return nil, 0, err
		}
		releases = append(releases, *release)
	}
	return releases, total, rows.Err()
}

func (r *ReleaseRepository) FindOne(ctx context.Context, id uuid.UUID) (*models.Release, error) {
	query := fmt.Sprintf("SELECT %s FROM releases WHERE id = $1 AND deleted_at IS NULL", releaseColumns)
	return scanRelease(r.pool.QueryRow(ctx, query, id))
}

func (r *ReleaseRepository) Create(ctx context.Context, release *models.Release) error {
	if release.ID == uuid.Nil {
		release.ID = uuid.New()
	}
	structureJSON, err := json.Marshal(release.Structure)
	if err != nil {
		return err
	}
	metadataJSON, err := json.Marshal(release.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO releases (id, project_id, version, snapshot_id, status, changelog, notes, structure, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb)
		RETURNING created_at, updated_at
	`
	err = r.pool.QueryRow(ctx, query,
		release.ID,
		release.ProjectID,
		release.Version,
		release.SnapshotID,
		release.Status,
		release.Changelog,
		release.Notes,
		structureJSON,
		metadataJSON,
	).Scan(&release.CreatedAt, &release.UpdatedAt)

	return translateError(err)
}

func (r *ReleaseRepository) Update(ctx context.Context, id uuid.UUID, patch ReleasePatch) error {
	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.SnapshotID != nil {
		add("snapshot_id", *patch.SnapshotID)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Changelog != nil {
		add("changelog", *patch.Changelog)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Structure != nil {
		structureJSON, err := json.Marshal(*patch.Structure)
		if err != nil {
			return err
		}
		add("structure", structureJSON)
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
	query := fmt.Sprintf("UPDATE releases SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(set, ", "), len(args))

	_, err := r.pool.Exec(ctx, query, args...)
	return translateError(err)
}

func (r *ReleaseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE releases SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *ReleaseRepository) IsVersionUnique(ctx context.Context, projectID uuid.UUID, version string, excludeID *uuid.UUID) (bool, error) {
	var count int
	var err error
	if excludeID != nil {
		query := `SELECT COUNT(*) FROM releases WHERE project_id = $1 AND version = $2 AND deleted_at IS NULL AND id != $3`
		err = r.pool.QueryRow(ctx, query, projectID, version, *excludeID).Scan(&count)
	} else {
		query := `SELECT COUNT(*) FROM releases WHERE project_id = $1 AND version = $2 AND deleted_at IS NULL`
		err = r.pool.QueryRow(ctx, query, projectID, version).Scan(&count)
	}
	return count == 0, err
}

func scanRelease(row pgx.Row) (*models.Release, error) {
	var release models.Release
	var structureJSON, metadataJSON []byte

	err := row.Scan(
		&release.ID,
		&release.ProjectID,
		&release.Version,
		&release.SnapshotID,
		&release.Status,
		&release.Changelog,
		&release.Notes,
		&structureJSON,
		&metadataJSON,
		&release.CreatedAt,
		&release.UpdatedAt,
		&release.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(structureJSON, &release.Structure); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(metadataJSON, &release.Metadata); err != nil {
		return nil, err
	}
	if release.Structure == nil {
		release.Structure = models.JSONMap{}
	}
	if release.Metadata == nil {
		release.Metadata = models.JSONMap{}
	}
	return &release, nil
}
