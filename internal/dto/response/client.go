package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	ContactPerson string    `json:"contactPerson"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ClientToResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactPerson: c.ContactPerson,
		CreatedAt:     c.CreatedAt,
	}
}

func ClientsToResponse(clients []*entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientToResponse(c))
	}
	return out
}
