package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

type ActivityResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProjectID *string   `json:"projectId,omitempty"`
	Action    string    `json:"action"`
	Details   *string   `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func ActivityToResponse(a *entity.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Action:    a.Action,
		Details:   a.Details,
		Timestamp: a.CreatedAt,
	}
	if a.ProjectID != nil {
		id := a.ProjectID.String()
		resp.ProjectID = &id
	}
	return resp
}

func ActivitiesToResponse(activities []*entity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ActivityToResponse(a))
	}
	return out
}
