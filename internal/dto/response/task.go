package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

type TaskResponse struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"projectId"`
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	AssigneeID  *string             `json:"assigneeId,omitempty"`
	Status      entity.TaskStatus   `json:"status"`
	Priority    entity.TaskPriority `json:"priority"`
	DueDate     time.Time           `json:"dueDate"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func TaskToResponse(t *entity.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID.String(),
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssigneeID != nil {
		id := t.AssigneeID.String()
		resp.AssigneeID = &id
	}
	return resp
}

func TasksToResponse(tasks []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskToResponse(t))
	}
	return out
}
