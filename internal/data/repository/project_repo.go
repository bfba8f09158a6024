package repository

import (
	"context"
	"fmt"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	FindAll(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
}

type projectRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProjectRepository(db database.PgxIface, log *zap.Logger) ProjectRepository {
	return &projectRepository{
		db:  db,
		log: log.With(zap.String("repository", "project")),
	}
}

const projectColumns = `id, name, description, client_id, status, start_date,
	       end_date, progress, budget, spent, created_at, updated_at, deleted_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.ClientID,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.Progress,
		&p.Budget,
		&p.Spent,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (id, name, description, client_id, status, start_date,
		                      end_date, progress, budget, spent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.ClientID,
		project.Status,
		project.StartDate,
		project.EndDate,
		project.Progress,
		project.Budget,
		project.Spent,
		project.CreatedAt,
		project.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create project",
			zap.Error(err),
			zap.String("name", project.Name),
		)
		return fmt.Errorf("create project %s: %w", project.Name, err)
	}

	return nil
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND deleted_at IS NULL`

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find project",
			zap.Error(err),
			zap.String("project_id", id.String()),
		)
		return nil, fmt.Errorf("find project %s: %w", id.String(), err)
	}

	return project, nil
}

func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all projects", zap.Error(err))
		return nil, fmt.Errorf("find all projects: %w", err)
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			r.log.Error("Failed to scan project row", zap.Error(err))
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects rows: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, client_id = $4, status = $5,
		    start_date = $6, end_date = $7, progress = $8, budget = $9,
		    spent = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.ClientID,
		project.Status,
		project.StartDate,
		project.EndDate,
		project.Progress,
		project.Budget,
		project.Spent,
		project.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update project",
			zap.Error(err),
			zap.String("project_id", project.ID.String()),
		)
		return fmt.Errorf("update project %s: %w", project.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found", project.ID.String())
	}

	return nil
}
