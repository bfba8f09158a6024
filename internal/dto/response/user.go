package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

// UserResponse is the serialized account. The credential hash never leaves
// the service.
type UserResponse struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Role          entity.Role `json:"role"`
	Avatar        *string     `json:"avatar,omitempty"`
	EmailVerified bool        `json:"emailVerified"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Role:          user.Role,
		Avatar:        user.Avatar,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}
