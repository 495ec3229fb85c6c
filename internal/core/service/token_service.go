package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
	"github.com/fintrack/expense-tracker-api/internal/core/ports"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// tokenClaims is the signed payload of both token kinds. Subject carries the
// user id; ID (jti) is the revocation handle for refresh tokens.
type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access/refresh token pairs and
// consults the blacklist on every refresh verification.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	blacklist  ports.TokenBlacklist
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, blacklist ports.TokenBlacklist) *TokenService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		blacklist:  blacklist,
	}
}

// IssuePair mints a fresh access/refresh pair for the user.
func (s *TokenService) IssuePair(_ context.Context, userID uuid.UUID) (ports.TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.sign(tokenTypeAccess, userID, now, s.accessTTL)
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.sign(tokenTypeRefresh, userID, now, s.refreshTTL)
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess validates an access token and returns the caller's user id.
func (s *TokenService) VerifyAccess(token string) (uuid.UUID, error) {
	claims, err := s.parse(token, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return userID, nil
}

// VerifyRefresh validates a refresh token, rejecting revoked ones.
func (s *TokenService) VerifyRefresh(ctx context.Context, token string) (*ports.RefreshClaims, error) {
	claims, err := s.parse(token, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidToken
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("blacklist check: %w", err)
	}
	if revoked {
		return nil, domain.ErrInvalidToken
	}

	return &ports.RefreshClaims{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke adds the refresh token to the blacklist for its remaining lifetime.
// A token that already expired needs no blacklist entry.
func (s *TokenService) Revoke(ctx context.Context, claims *ports.RefreshClaims) error {
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Revoke(ctx, claims.TokenID, ttl)
}

func (s *TokenService) sign(tokenType string, userID uuid.UUID, now time.Time, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) parse(token, wantType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
