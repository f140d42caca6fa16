package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// RunMigrations applies the schema statements in order. Every statement is
// idempotent so startup can re-run the full list.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	migrations := []string{
		createProjectsTable,
		createTagsTable,
		createProjectTagsTable,
		createReleasesTable,
	}

	for i, migration := range migrations {
		log.Debug().Int("step", i+1).Int("total", len(migrations)).Msg("running migration")
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Int("count", len(migrations)).Msg("migrations completed")
	return nil
}

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name VARCHAR(255) NOT NULL,
  slug VARCHAR(255) NOT NULL,
  description TEXT,
  image_url TEXT,
  emoji VARCHAR(16),
  status VARCHAR(20) NOT NULL DEFAULT 'active'
    CHECK (status IN ('active', 'archived', 'suspended')),
  owner_id UUID,
  lifecycle_stages JSONB NOT NULL DEFAULT '[]',
  metadata JSONB NOT NULL DEFAULT '{}',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at TIMESTAMPTZ
);

-- Slug uniqueness holds only over live rows; a deleted project's slug may
-- be reused.
CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_slug_live
  ON projects (slug) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS idx_projects_owner ON projects (owner_id, deleted_at);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects (status, deleted_at);
`

const createTagsTable = `
CREATE TABLE IF NOT EXISTS tags (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name VARCHAR(100) NOT NULL UNIQUE,
  description TEXT,
  color VARCHAR(7),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const createProjectTagsTable = `
CREATE TABLE IF NOT EXISTS project_tags (
  project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  tag_id UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
  PRIMARY KEY (project_id, tag_id)
);

CREATE INDEX IF NOT EXISTS idx_project_tags_tag ON project_tags (tag_id);
`

const createReleasesTable = `
CREATE TABLE IF NOT EXISTS releases (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  version VARCHAR(50) NOT NULL,
  snapshot_id TEXT,
  status VARCHAR(20) NOT NULL DEFAULT 'draft'
    CHECK (status IN ('draft', 'created', 'delivering', 'delivered', 'failed')),
  changelog TEXT,
  notes TEXT,
  structure JSONB NOT NULL DEFAULT '{}',
  metadata JSONB NOT NULL DEFAULT '{}',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at TIMESTAMPTZ
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_releases_project_version_live
  ON releases (project_id, version) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS idx_releases_project ON releases (project_id, deleted_at);
CREATE INDEX IF NOT EXISTS idx_releases_status ON releases (status, deleted_at);
`
