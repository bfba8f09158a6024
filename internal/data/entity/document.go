package entity

import "github.com/google/uuid"

type Document struct {
	BaseSimple
	ProjectID  uuid.UUID `db:"project_id"`
	Name       string    `db:"name"`
	Type       string    `db:"type"`
	URL        string    `db:"url"`
	UploadedBy uuid.UUID `db:"uploaded_by"`
}
