package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

type EquipmentResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Type              string                 `json:"type"`
	Status            entity.EquipmentStatus `json:"status"`
	AssignedProjectID *string                `json:"assignedProjectId,omitempty"`
	CreatedAt         time.Time              `json:"createdAt"`
}

func EquipmentToResponse(e *entity.Equipment) EquipmentResponse {
	resp := EquipmentResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Type:      e.Type,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
	if e.AssignedProjectID != nil {
		id := e.AssignedProjectID.String()
		resp.AssignedProjectID = &id
	}
	return resp
}

func EquipmentListToResponse(list []*entity.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, EquipmentToResponse(e))
	}
	return out
}
