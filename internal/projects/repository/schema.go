package repository

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id               BIGSERIAL PRIMARY KEY,
    project_code     TEXT        NOT NULL UNIQUE,
    project_name     TEXT        NOT NULL,
    detail           TEXT        NOT NULL DEFAULT '',
    start_date       TIMESTAMPTZ NULL,
    end_date         TIMESTAMPTZ NULL,
    status           TEXT        NOT NULL DEFAULT 'OPEN',
    assigned_manager TEXT        NOT NULL,
    is_deleted       BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_projects_assigned_manager
    ON projects (assigned_manager) WHERE is_deleted = FALSE;
`

// EnsureSchema creates the projects table if it does not exist yet.
// The UNIQUE constraint on project_code holds across deleted rows too,
// which is fine: soft-delete renames the code to "{code}-{id}".
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure projects schema: %w", err)
	}
	return nil
}
