package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectOnTrack   ProjectStatus = "on track"
	ProjectAtRisk    ProjectStatus = "at risk"
	ProjectDelayed   ProjectStatus = "delayed"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectOnTrack, ProjectAtRisk, ProjectDelayed, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	Base
	Name        string        `db:"name"`
	Description string        `db:"description"`
	ClientID    uuid.UUID     `db:"client_id"`
	Status      ProjectStatus `db:"status"`
	StartDate   time.Time     `db:"start_date"`
	EndDate     time.Time     `db:"end_date"`
	Progress    int           `db:"progress"`
	Budget      float64       `db:"budget"`
	Spent       float64       `db:"spent"`
}
