package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
)

// AccountRepository defines persistence operations for user accounts.
// Create must enforce the email/username unique constraints and return
// domain.ErrEmailTaken / domain.ErrUsernameTaken when they fire, so that a
// write racing past the pre-check still maps to a field-specific error.
type AccountRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// UsernameExists ignores the row identified by exclude, for profile
	// updates re-checking the caller's own username.
	UsernameExists(ctx context.Context, username string, exclude uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}
