package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerification is a single-use, expiring proof of email control. Only the
// SHA-256 digest of the token is stored; the plaintext goes out in the email.
type EmailVerification struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Email     string    `db:"email"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
}
