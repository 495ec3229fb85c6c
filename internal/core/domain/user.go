package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User models an account holder. Email is the authentication identifier;
// username exists for display purposes only. Both are globally unique.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrUsernameTaken      = errors.New("a user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid email/password combination")
	ErrAccountDisabled    = errors.New("user account is disabled")

	// ErrInvalidRefreshToken covers malformed, expired, revoked, and
	// foreign refresh tokens alike; callers never learn which.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidToken        = errors.New("invalid or expired token")

	// ErrIntegrity is the generic fallback for store constraint violations
	// that cannot be attributed to a specific field.
	ErrIntegrity = errors.New("data integrity error")
)
