package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind the session cookie. It carries a
// snapshot of the user taken at login time; later user mutations do not bleed
// into an existing session until it is re-issued.
type Session struct {
	BaseSimple
	Token         uuid.UUID  `db:"token"`
	UserID        uuid.UUID  `db:"user_id"`
	Username      string     `db:"username"`
	Email         string     `db:"email"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Role          Role       `db:"role"`
	EmailVerified bool       `db:"email_verified"`
	ExpiresAt     time.Time  `db:"expires_at"`
	RevokedAt     *time.Time `db:"revoked_at"`
}
