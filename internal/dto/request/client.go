package request

type CreateClientRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Address       *string `json:"address,omitempty"`
	ContactPerson string  `json:"contactPerson" validate:"required,max=200"`
}
