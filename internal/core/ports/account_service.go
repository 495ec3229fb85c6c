package ports

import (
	"context"

	"github.com/google/uuid"
)

// SignupInput carries the raw, unvalidated signup fields.
type SignupInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// SignupResult is returned after a successful signup.
type SignupResult struct {
	ID    uuid.UUID
	Email string
}

// LoginResult carries the authenticated identity and its token pair.
type LoginResult struct {
	ID     uuid.UUID
	Email  string
	Tokens TokenPair
}

// Profile is the caller-visible account view.
type Profile struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Username  string
	Email     string
}

// UpdateProfileInput carries the only mutable profile fields.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Username  string
}

// AccountService defines the account and authentication use cases.
// GetProfile and UpdateProfile take both the caller and the target id; a
// mismatch yields domain.ErrUserNotFound, never a forbidden error, so the
// existence of other accounts is not disclosed.
type AccountService interface {
	Signup(ctx context.Context, in SignupInput) (*SignupResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, callerID uuid.UUID, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetProfile(ctx context.Context, callerID, targetID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, callerID, targetID uuid.UUID, in UpdateProfileInput) error
}
