package models

import (
	"time"
)

// Credential is the 1:1 satellite of User holding the password hash and an
// optional single-use reset token. It is created alongside the user and
// removed when the user is deleted.
type Credential struct {
	UserID              string     `json:"-" db:"user_id"`
	PasswordHash        string     `json:"-" db:"password_hash"`
	ResetToken          *string    `json:"-" db:"reset_token"`
	ResetTokenCreatedAt *time.Time `json:"-" db:"reset_token_created_at"`
}
