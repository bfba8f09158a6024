package request

import "time"

type CreateProjectRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	ClientID    string    `json:"clientId" validate:"required,uuid"`
	Status      string    `json:"status" validate:"required"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
	Progress    int       `json:"progress" validate:"min=0,max=100"`
	Budget      float64   `json:"budget" validate:"min=0"`
	Spent       float64   `json:"spent" validate:"min=0"`
}

// UpdateProjectRequest carries a partial update; nil fields are left alone.
type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Progress    *int       `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	Budget      *float64   `json:"budget,omitempty" validate:"omitempty,min=0"`
	Spent       *float64   `json:"spent,omitempty" validate:"omitempty,min=0"`
}
