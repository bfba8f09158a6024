package entity

import "github.com/google/uuid"

type Activity struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	ProjectID *uuid.UUID `db:"project_id"`
	Action    string     `db:"action"`
	Details   *string    `db:"details"`
}
