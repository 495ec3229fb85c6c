package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is one short-lived access token plus one revocable refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshClaims is the decoded identity of a verified refresh token.
type RefreshClaims struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues and verifies the JWT pair. VerifyRefresh consults the
// blacklist on every call; a revoked token is indistinguishable from an
// invalid one.
type TokenService interface {
	IssuePair(ctx context.Context, userID uuid.UUID) (TokenPair, error)
	VerifyAccess(token string) (uuid.UUID, error)
	VerifyRefresh(ctx context.Context, token string) (*RefreshClaims, error)
	Revoke(ctx context.Context, claims *RefreshClaims) error
}

// AccessVerifier is the narrow view of TokenService the HTTP auth middleware
// needs.
type AccessVerifier interface {
	VerifyAccess(token string) (uuid.UUID, error)
}

// TokenBlacklist is an insert-only set of revoked refresh token ids. Entries
// expire on their own once the underlying token would have expired anyway.
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
