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

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	FindAll(ctx context.Context) ([]*entity.Task, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
}

type taskRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTaskRepository(db database.PgxIface, log *zap.Logger) TaskRepository {
	return &taskRepository{
		db:  db,
		log: log.With(zap.String("repository", "task")),
	}
}

const taskColumns = `id, project_id, name, description, assignee_id, status,
	       priority, due_date, created_at, updated_at, deleted_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Name,
		&t.Description,
		&t.AssigneeID,
		&t.Status,
		&t.Priority,
		&t.DueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, project_id, name, description, assignee_id,
		                   status, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		task.ID,
		task.ProjectID,
		task.Name,
		task.Description,
		task.AssigneeID,
		task.Status,
		task.Priority,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create task",
			zap.Error(err),
			zap.String("name", task.Name),
		)
		return fmt.Errorf("create task %s: %w", task.Name, err)
	}

	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND deleted_at IS NULL`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find task",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return nil, fmt.Errorf("find task %s: %w", id.String(), err)
	}

	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE deleted_at IS NULL
		ORDER BY due_date ASC
	`

	return r.queryTasks(ctx, query)
}

func (r *taskRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE project_id = $1 AND deleted_at IS NULL
		ORDER BY due_date ASC
	`

	return r.queryTasks(ctx, query, projectID)
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*entity.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query tasks", zap.Error(err))
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.log.Error("Failed to scan task row", zap.Error(err))
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks rows: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks
		SET project_id = $2, name = $3, description = $4, assignee_id = $5,
		    status = $6, priority = $7, due_date = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		task.ID,
		task.ProjectID,
		task.Name,
		task.Description,
		task.AssigneeID,
		task.Status,
		task.Priority,
		task.DueDate,
		task.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update task",
			zap.Error(err),
			zap.String("task_id", task.ID.String()),
		)
		return fmt.Errorf("update task %s: %w", task.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s not found", task.ID.String())
	}

	return nil
}
