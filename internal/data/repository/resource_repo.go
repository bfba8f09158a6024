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

type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) (*entity.Resource, error)
	FindAll(ctx context.Context) ([]*entity.Resource, error)
	Update(ctx context.Context, resource *entity.Resource) error
}

type resourceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResourceRepository(db database.PgxIface, log *zap.Logger) ResourceRepository {
	return &resourceRepository{
		db:  db,
		log: log.With(zap.String("repository", "resource")),
	}
}

const resourceColumns = `id, project_id, team_member_count, equipment_utilization,
	       team_members, created_at, updated_at, deleted_at`

func scanResource(row pgx.Row) (*entity.Resource, error) {
	var res entity.Resource
	err := row.Scan(
		&res.ID,
		&res.ProjectID,
		&res.TeamMemberCount,
		&res.EquipmentUtilization,
		&res.TeamMembers,
		&res.CreatedAt,
		&res.UpdatedAt,
		&res.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	query := `
		INSERT INTO resources (id, project_id, team_member_count,
		                       equipment_utilization, team_members,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		resource.ID,
		resource.ProjectID,
		resource.TeamMemberCount,
		resource.EquipmentUtilization,
		resource.TeamMembers,
		resource.CreatedAt,
		resource.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create resource",
			zap.Error(err),
			zap.String("project_id", resource.ProjectID.String()),
		)
		return fmt.Errorf("create resource for project %s: %w", resource.ProjectID.String(), err)
	}

	return nil
}

func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1 AND deleted_at IS NULL`

	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource",
			zap.Error(err),
			zap.String("resource_id", id.String()),
		)
		return nil, fmt.Errorf("find resource %s: %w", id.String(), err)
	}

	return resource, nil
}

func (r *resourceRepository) FindByProject(ctx context.Context, projectID uuid.UUID) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE project_id = $1 AND deleted_at IS NULL`

	resource, err := scanResource(r.db.QueryRow(ctx, query, projectID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource by project",
			zap.Error(err),
			zap.String("project_id", projectID.String()),
		)
		return nil, fmt.Errorf("find resource for project %s: %w", projectID.String(), err)
	}

	return resource, nil
}

func (r *resourceRepository) FindAll(ctx context.Context) ([]*entity.Resource, error) {
	query := `
		SELECT ` + resourceColumns + `
		FROM resources
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all resources", zap.Error(err))
		return nil, fmt.Errorf("find all resources: %w", err)
	}
	defer rows.Close()

	var resources []*entity.Resource
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			r.log.Error("Failed to scan resource row", zap.Error(err))
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources rows: %w", err)
	}

	return resources, nil
}

func (r *resourceRepository) Update(ctx context.Context, resource *entity.Resource) error {
	query := `
		UPDATE resources
		SET team_member_count = $2, equipment_utilization = $3,
		    team_members = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		resource.ID,
		resource.TeamMemberCount,
		resource.EquipmentUtilization,
		resource.TeamMembers,
		resource.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update resource",
			zap.Error(err),
			zap.String("resource_id", resource.ID.String()),
		)
		return fmt.Errorf("update resource %s: %w", resource.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("resource %s not found", resource.ID.String())
	}

	return nil
}
