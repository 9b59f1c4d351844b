package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DennisSalmazs/project-service/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, project_code, project_name, detail, start_date, end_date, status, assigned_manager, is_deleted, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Detail, &p.StartDate, &p.EndDate,
		&p.Status, &p.AssignedManager, &p.Deleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByCode looks a project up by its exact stored code. Soft-deleted
// projects are renamed on deletion, so their original codes never match
// here again.
func (r *ProjectRepository) FindByCode(ctx context.Context, code string) (*domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE project_code = $1;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project by code: %w", err)
	}
	return p, nil
}

// FindAll returns every project, deleted ones included.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC;`
	return r.queryProjects(ctx, q)
}

// FindAllByManager returns the non-deleted projects assigned to a manager.
func (r *ProjectRepository) FindAllByManager(ctx context.Context, manager string) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects
WHERE assigned_manager = $1 AND is_deleted = FALSE
ORDER BY created_at DESC;`
	return r.queryProjects(ctx, q, manager)
}

// CountNonCompletedByManager counts the manager's open, non-deleted projects.
func (r *ProjectRepository) CountNonCompletedByManager(ctx context.Context, manager string) (int, error) {
	const q = `
SELECT COUNT(*) FROM projects
WHERE assigned_manager = $1 AND status <> $2 AND is_deleted = FALSE;
`
	var n int
	if err := r.db.QueryRowContext(ctx, q, manager, domain.StatusCompleted).Scan(&n); err != nil {
		return 0, fmt.Errorf("count non-completed projects: %w", err)
	}
	return n, nil
}

// Save inserts the project when it has no ID yet, otherwise updates the
// existing row. The stored row is returned in both cases.
func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p.ID == 0 {
		return r.insert(ctx, p)
	}
	return r.update(ctx, p)
}

func (r *ProjectRepository) insert(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := `
INSERT INTO projects (project_code, project_name, detail, start_date, end_date, status, assigned_manager, is_deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + projectColumns + `;`

	saved, err := scanProject(r.db.QueryRowContext(ctx, q,
		p.Code, p.Name, p.Detail, p.StartDate, p.EndDate, p.Status, p.AssignedManager, p.Deleted))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return saved, nil
}

func (r *ProjectRepository) update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := `
UPDATE projects
SET project_code = $2, project_name = $3, detail = $4, start_date = $5, end_date = $6,
    status = $7, assigned_manager = $8, is_deleted = $9, updated_at = now()
WHERE id = $1
RETURNING ` + projectColumns + `;`

	saved, err := scanProject(r.db.QueryRowContext(ctx, q,
		p.ID, p.Code, p.Name, p.Detail, p.StartDate, p.EndDate, p.Status, p.AssignedManager, p.Deleted))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return saved, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
