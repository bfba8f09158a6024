package repository

import (
	"context"
	"fmt"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/pkg/database"

	"go.uber.org/zap"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindAll(ctx context.Context) ([]*entity.Activity, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, project_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.UserID,
		activity.ProjectID,
		activity.Action,
		activity.Details,
		activity.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("action", activity.Action),
		)
		return fmt.Errorf("create activity: %w", err)
	}

	return nil
}

func (r *activityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	query := `
		SELECT id, user_id, project_id, action, details, created_at
		FROM activities
		ORDER BY created_at DESC
	`

	return r.queryActivities(ctx, query)
}

func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, user_id, project_id, action, details, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1
	`

	return r.queryActivities(ctx, query, limit)
}

func (r *activityRepository) queryActivities(ctx context.Context, query string, args ...any) ([]*entity.Activity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query activities", zap.Error(err))
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.ProjectID,
			&a.Action,
			&a.Details,
			&a.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities rows: %w", err)
	}

	return activities, nil
}
