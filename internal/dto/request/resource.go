package request

type CreateResourceRequest struct {
	ProjectID            string   `json:"projectId" validate:"required,uuid"`
	TeamMemberCount      int      `json:"teamMemberCount" validate:"min=0"`
	EquipmentUtilization int      `json:"equipmentUtilization" validate:"min=0,max=100"`
	TeamMembers          []string `json:"teamMembers" validate:"dive,uuid"`
}

type UpdateResourceRequest struct {
	TeamMemberCount      *int     `json:"teamMemberCount,omitempty" validate:"omitempty,min=0"`
	EquipmentUtilization *int     `json:"equipmentUtilization,omitempty" validate:"omitempty,min=0,max=100"`
	TeamMembers          []string `json:"teamMembers,omitempty" validate:"omitempty,dive,uuid"`
}
