package request

type CreateActivityRequest struct {
	ProjectID *string `json:"projectId,omitempty" validate:"omitempty,uuid"`
	Action    string  `json:"action" validate:"required,max=200"`
	Details   *string `json:"details,omitempty"`
}
