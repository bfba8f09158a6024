package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

// RegisterResponse returns the new account and a reference to the pending
// verification token.
type RegisterResponse struct {
	User              UserResponse `json:"user"`
	VerificationToken string       `json:"verificationToken,omitempty"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// SessionResponse is the payload of /api/auth/check. Absence of a session is
// a normal state, not an error.
type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *SessionSnapshot `json:"user,omitempty"`
}

type SessionSnapshot struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Role          entity.Role `json:"role"`
	EmailVerified bool        `json:"emailVerified"`
}

func SessionToResponse(sess *entity.Session) SessionResponse {
	if sess == nil {
		return SessionResponse{Authenticated: false}
	}
	return SessionResponse{
		Authenticated: true,
		User: &SessionSnapshot{
			ID:            sess.UserID.String(),
			Username:      sess.Username,
			Email:         sess.Email,
			FirstName:     sess.FirstName,
			LastName:      sess.LastName,
			Role:          sess.Role,
			EmailVerified: sess.EmailVerified,
		},
	}
}
