package request

import "time"

type CreateTaskRequest struct {
	ProjectID   string    `json:"projectId" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required,max=200"`
	Description *string   `json:"description,omitempty"`
	AssigneeID  *string   `json:"assigneeId,omitempty" validate:"omitempty,uuid"`
	Status      string    `json:"status" validate:"required"`
	Priority    string    `json:"priority" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

type UpdateTaskRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty"`
	AssigneeID  *string    `json:"assigneeId,omitempty" validate:"omitempty,uuid"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}
