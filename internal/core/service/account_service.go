package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/expense-tracker-api/internal/api/metrics"
	"github.com/fintrack/expense-tracker-api/internal/core/domain"
	"github.com/fintrack/expense-tracker-api/internal/core/ports"
	"github.com/fintrack/expense-tracker-api/internal/core/validation"
)

// dummyHash is compared against when a login targets an unknown email, so
// the request costs one bcrypt comparison either way and response timing does
// not reveal whether the email exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("expense-tracker-timing-pad"), bcrypt.DefaultCost)

// AccountService implements signup, login, logout, token refresh, and the
// owner-gated profile operations.
type AccountService struct {
	repo   ports.AccountRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenService, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, tokens: tokens, logger: logger}
}

// Signup validates every field, hashes the password, and persists the user.
// All failing fields are reported together as validation.FieldErrors.
func (s *AccountService) Signup(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
	fe := validation.FieldErrors{}

	email := validation.Email(in.Email, fe)
	username := validation.Username(in.Username, fe)
	firstName := validation.PersonName("first_name", "First name", in.FirstName, fe)
	lastName := validation.PersonName("last_name", "Last name", in.LastName, fe)
	validation.Password(in.Password, []string{email, username, firstName, lastName}, fe)

	// Uniqueness pre-checks give the friendly message; the store's unique
	// constraints remain the source of truth for racing signups.
	if !fe.Has("email") {
		taken, err := s.repo.EmailExists(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("email uniqueness check: %w", err)
		}
		if taken {
			fe.Add("email", "A user with this email already exists.")
		}
	}
	if !fe.Has("username") {
		taken, err := s.repo.UsernameExists(ctx, username, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("username uniqueness check: %w", err)
		}
		if taken {
			fe.Add("username", "A user with this username already exists.")
		}
	}
	if !fe.Empty() {
		return nil, fe
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the pre-check; the constraint
		// violation still maps back to the field-specific message.
		if errors.Is(err, domain.ErrEmailTaken) {
			fe.Add("email", "A user with this email already exists.")
			return nil, fe
		}
		if errors.Is(err, domain.ErrUsernameTaken) {
			fe.Add("username", "A user with this username already exists.")
			return nil, fe
		}
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	s.logger.Info().Str("user_id", user.ID.String()).Msg("user created")

	return &ports.SignupResult{ID: user.ID, Email: user.Email}, nil
}

// Login verifies the credentials and issues a token pair. Failures never
// disclose whether the email exists, and the unknown-email path still runs a
// bcrypt comparison to keep its timing in line with the wrong-password path.
func (s *AccountService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		return nil, domain.ErrAccountDisabled
	}

	pair, err := s.tokens.IssuePair(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	return &ports.LoginResult{ID: user.ID, Email: user.Email, Tokens: pair}, nil
}

// Logout revokes the caller's refresh token. A token whose subject is not
// the caller is rejected without being blacklisted, so it stays usable by
// its real owner.
func (s *AccountService) Logout(ctx context.Context, callerID uuid.UUID, refreshToken string) error {
	claims, err := s.tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return domain.ErrInvalidRefreshToken
	}
	if claims.UserID != callerID {
		return domain.ErrInvalidRefreshToken
	}
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}

	metrics.TokensRevokedTotal.WithLabelValues("logout").Inc()
	s.logger.Info().Str("user_id", callerID.String()).Msg("user logged out")
	return nil
}

// Refresh rotates a refresh token: the old one is revoked and a fresh pair
// is issued.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	pair, err := s.tokens.IssuePair(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return nil, fmt.Errorf("revoke rotated token: %w", err)
	}

	metrics.TokensRevokedTotal.WithLabelValues("rotation").Inc()
	return &pair, nil
}

// GetProfile returns the target profile only when the caller asks for their
// own id; anything else reads as not found.
func (s *AccountService) GetProfile(ctx context.Context, callerID, targetID uuid.UUID) (*ports.Profile, error) {
	if callerID != targetID {
		return nil, domain.ErrUserNotFound
	}
	user, err := s.repo.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
	}, nil
}

// UpdateProfile mutates the caller's first/last name and username. Email and
// timestamps are never client-writable.
func (s *AccountService) UpdateProfile(ctx context.Context, callerID, targetID uuid.UUID, in ports.UpdateProfileInput) error {
	if callerID != targetID {
		return domain.ErrUserNotFound
	}

	fe := validation.FieldErrors{}
	firstName := validation.PersonName("first_name", "First name", in.FirstName, fe)
	lastName := validation.PersonName("last_name", "Last name", in.LastName, fe)
	username := validation.Username(in.Username, fe)

	if !fe.Has("username") {
		taken, err := s.repo.UsernameExists(ctx, username, callerID)
		if err != nil {
			return fmt.Errorf("username uniqueness check: %w", err)
		}
		if taken {
			fe.Add("username", "A user with this username already exists.")
		}
	}
	if !fe.Empty() {
		return fe
	}

	user, err := s.repo.FindByID(ctx, callerID)
	if err != nil {
		return err
	}
	user.FirstName = firstName
	user.LastName = lastName
	user.Username = username
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			fe.Add("username", "A user with this username already exists.")
			return fe
		}
		return err
	}

	s.logger.Info().Str("user_id", callerID.String()).Msg("profile updated")
	return nil
}
