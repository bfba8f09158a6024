package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

type ResourceResponse struct {
	ID                   string    `json:"id"`
	ProjectID            string    `json:"projectId"`
	TeamMemberCount      int       `json:"teamMemberCount"`
	EquipmentUtilization int       `json:"equipmentUtilization"`
	TeamMembers          []string  `json:"teamMembers"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func ResourceToResponse(r *entity.Resource) ResourceResponse {
	members := make([]string, 0, len(r.TeamMembers))
	for _, id := range r.TeamMembers {
		members = append(members, id.String())
	}

	return ResourceResponse{
		ID:                   r.ID.String(),
		ProjectID:            r.ProjectID.String(),
		TeamMemberCount:      r.TeamMemberCount,
		EquipmentUtilization: r.EquipmentUtilization,
		TeamMembers:          members,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func ResourcesToResponse(resources []*entity.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, ResourceToResponse(r))
	}
	return out
}
