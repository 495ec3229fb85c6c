package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
)

// IncomeInput carries the raw income fields as received on the wire.
// Amount stays a RawDecimal so that precision violations surface as field
// errors instead of bind failures.
type IncomeInput struct {
	NameOfRevenue string
	Amount        domain.RawDecimal
}

// IncomeRecord is the caller-visible income view.
type IncomeRecord struct {
	ID            uuid.UUID
	NameOfRevenue string
	Amount        domain.Amount
}

// IncomeService defines the owner-scoped income use cases. Every operation
// takes the authenticated caller's id; records of other users are invisible.
type IncomeService interface {
	List(ctx context.Context, userID uuid.UUID) ([]IncomeRecord, error)
	Create(ctx context.Context, userID uuid.UUID, in IncomeInput) error
	Get(ctx context.Context, userID, id uuid.UUID) (*IncomeRecord, error)
	Update(ctx context.Context, userID, id uuid.UUID, in IncomeInput) (*IncomeRecord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ExpenditureInput carries the raw expenditure fields as received on the wire.
type ExpenditureInput struct {
	Category        string
	NameOfItem      string
	EstimatedAmount domain.RawDecimal
}

// ExpenditureRecord is the caller-visible expenditure view.
type ExpenditureRecord struct {
	ID              uuid.UUID
	Category        string
	NameOfItem      string
	EstimatedAmount domain.Amount
}

// ExpenditureService mirrors IncomeService for expenditure records.
type ExpenditureService interface {
	List(ctx context.Context, userID uuid.UUID) ([]ExpenditureRecord, error)
	Create(ctx context.Context, userID uuid.UUID, in ExpenditureInput) error
	Get(ctx context.Context, userID, id uuid.UUID) (*ExpenditureRecord, error)
	Update(ctx context.Context, userID, id uuid.UUID, in ExpenditureInput) (*ExpenditureRecord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
