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

type EquipmentRepository interface {
	Create(ctx context.Context, eq *entity.Equipment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)
	FindAll(ctx context.Context) ([]*entity.Equipment, error)
	Update(ctx context.Context, eq *entity.Equipment) error
}

type equipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEquipmentRepository(db database.PgxIface, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "equipment")),
	}
}

const equipmentColumns = `id, name, type, status, assigned_project_id, created_at`

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.Status,
		&e.AssignedProjectID,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepository) Create(ctx context.Context, eq *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, type, status, assigned_project_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		eq.ID,
		eq.Name,
		eq.Type,
		eq.Status,
		eq.AssignedProjectID,
		eq.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create equipment",
			zap.Error(err),
			zap.String("name", eq.Name),
		)
		return fmt.Errorf("create equipment %s: %w", eq.Name, err)
	}

	return nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`

	eq, err := scanEquipment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find equipment",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
		)
		return nil, fmt.Errorf("find equipment %s: %w", id.String(), err)
	}

	return eq, nil
}

func (r *equipmentRepository) FindAll(ctx context.Context) ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all equipment", zap.Error(err))
		return nil, fmt.Errorf("find all equipment: %w", err)
	}
	defer rows.Close()

	var list []*entity.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			r.log.Error("Failed to scan equipment row", zap.Error(err))
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		list = append(list, eq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate equipment rows: %w", err)
	}

	return list, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *entity.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $2, type = $3, status = $4, assigned_project_id = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		eq.ID,
		eq.Name,
		eq.Type,
		eq.Status,
		eq.AssignedProjectID,
	)

	if err != nil {
		r.log.Error("Failed to update equipment",
			zap.Error(err),
			zap.String("equipment_id", eq.ID.String()),
		)
		return fmt.Errorf("update equipment %s: %w", eq.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s not found", eq.ID.String())
	}

	return nil
}
