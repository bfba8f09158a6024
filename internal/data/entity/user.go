package entity

type User struct {
	Base
	Username      string  `db:"username"`
	Email         string  `db:"email"`
	PasswordHash  string  `db:"password"`
	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	Role          Role    `db:"role"`
	Avatar        *string `db:"avatar"`
	EmailVerified bool    `db:"email_verified"`
	ResetToken    *string `db:"reset_token"`
}
