package repository

import (
	"context"
	"fmt"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Document, error)
}

type documentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDocumentRepository(db database.PgxIface, log *zap.Logger) DocumentRepository {
	return &documentRepository{
		db:  db,
		log: log.With(zap.String("repository", "document")),
	}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, project_id, name, type, url, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		doc.ID,
		doc.ProjectID,
		doc.Name,
		doc.Type,
		doc.URL,
		doc.UploadedBy,
		doc.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create document",
			zap.Error(err),
			zap.String("name", doc.Name),
		)
		return fmt.Errorf("create document %s: %w", doc.Name, err)
	}

	return nil
}

func (r *documentRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Document, error) {
	query := `
		SELECT id, project_id, name, type, url, uploaded_by, created_at
		FROM documents
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		r.log.Error("Failed to get project documents",
			zap.Error(err),
			zap.String("project_id", projectID.String()),
		)
		return nil, fmt.Errorf("find documents for project %s: %w", projectID.String(), err)
	}
	defer rows.Close()

	var docs []*entity.Document
	for rows.Next() {
		var d entity.Document
		err := rows.Scan(
			&d.ID,
			&d.ProjectID,
			&d.Name,
			&d.Type,
			&d.URL,
			&d.UploadedBy,
			&d.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan document row", zap.Error(err))
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		docs = append(docs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents rows: %w", err)
	}

	return docs, nil
}
