package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
)

// IncomeRepository defines persistence for income records. Every read and
// write is filtered by the owning user id; a record owned by someone else is
// reported as domain.ErrIncomeNotFound, identical to a missing one.
type IncomeRepository interface {
	Create(ctx context.Context, income *domain.Income) error
	// ListByUser returns the user's records ordered newest-first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Income, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Income, error)
	Update(ctx context.Context, income *domain.Income) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ExpenditureRepository mirrors IncomeRepository for expenditure records.
type ExpenditureRepository interface {
	Create(ctx context.Context, exp *domain.Expenditure) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Expenditure, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expenditure, error)
	Update(ctx context.Context, exp *domain.Expenditure) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
