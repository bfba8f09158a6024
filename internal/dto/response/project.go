package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

type ProjectResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	ClientID    string               `json:"clientId"`
	Status      entity.ProjectStatus `json:"status"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     time.Time            `json:"endDate"`
	Progress    int                  `json:"progress"`
	Budget      float64              `json:"budget"`
	Spent       float64              `json:"spent"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func ProjectToResponse(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		ClientID:    p.ClientID.String(),
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Progress:    p.Progress,
		Budget:      p.Budget,
		Spent:       p.Spent,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ProjectsToResponse(projects []*entity.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectToResponse(p))
	}
	return out
}
