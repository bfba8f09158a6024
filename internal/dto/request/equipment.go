package request

type CreateEquipmentRequest struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Type              string  `json:"type" validate:"required,max=100"`
	Status            string  `json:"status" validate:"required"`
	AssignedProjectID *string `json:"assignedProjectId,omitempty" validate:"omitempty,uuid"`
}

type UpdateEquipmentRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Type              *string `json:"type,omitempty" validate:"omitempty,max=100"`
	Status            *string `json:"status,omitempty"`
	AssignedProjectID *string `json:"assignedProjectId,omitempty" validate:"omitempty,uuid"`
}
