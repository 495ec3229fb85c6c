package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fintrack/expense-tracker-api/internal/api/metrics"
	"github.com/fintrack/expense-tracker-api/internal/core/domain"
	"github.com/fintrack/expense-tracker-api/internal/core/ports"
	"github.com/fintrack/expense-tracker-api/internal/core/validation"
)

// IncomeService implements the owner-scoped income use cases.
type IncomeService struct {
	repo   ports.IncomeRepository
	logger zerolog.Logger
}

func NewIncomeService(repo ports.IncomeRepository, logger zerolog.Logger) *IncomeService {
	return &IncomeService{repo: repo, logger: logger}
}

// validateIncome applies the field rules and returns the cleaned values.
func validateIncome(in ports.IncomeInput) (string, domain.Amount, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	name := validation.RequiredString("nameOfRevenue", "Revenue name", in.NameOfRevenue, 120, fe)
	amount := validation.AmountField("amount", "Amount", in.Amount, fe)
	return name, amount, fe
}

func (s *IncomeService) List(ctx context.Context, userID uuid.UUID) ([]ports.IncomeRecord, error) {
	incomes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	records := make([]ports.IncomeRecord, 0, len(incomes))
	for _, inc := range incomes {
		records = append(records, ports.IncomeRecord{
			ID:            inc.ID,
			NameOfRevenue: inc.NameOfRevenue,
			Amount:        inc.Amount,
		})
	}
	return records, nil
}

func (s *IncomeService) Create(ctx context.Context, userID uuid.UUID, in ports.IncomeInput) error {
	name, amount, fe := validateIncome(in)
	if !fe.Empty() {
		return fe
	}

	now := time.Now().UTC()
	income := &domain.Income{
		ID:            uuid.New(),
		UserID:        userID,
		NameOfRevenue: name,
		Amount:        amount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, income); err != nil {
		return err
	}

	metrics.FinanceWritesTotal.WithLabelValues("income", "create").Inc()
	s.logger.Info().Str("income_id", income.ID.String()).Str("user_id", userID.String()).Msg("income created")
	return nil
}

func (s *IncomeService) Get(ctx context.Context, userID, id uuid.UUID) (*ports.IncomeRecord, error) {
	income, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return &ports.IncomeRecord{
		ID:            income.ID,
		NameOfRevenue: income.NameOfRevenue,
		Amount:        income.Amount,
	}, nil
}

func (s *IncomeService) Update(ctx context.Context, userID, id uuid.UUID, in ports.IncomeInput) (*ports.IncomeRecord, error) {
	income, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	name, amount, fe := validateIncome(in)
	if !fe.Empty() {
		return nil, fe
	}

	income.NameOfRevenue = name
	income.Amount = amount
	income.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, income); err != nil {
		return nil, err
	}

	metrics.FinanceWritesTotal.WithLabelValues("income", "update").Inc()
	return &ports.IncomeRecord{
		ID:            income.ID,
		NameOfRevenue: income.NameOfRevenue,
		Amount:        income.Amount,
	}, nil
}

func (s *IncomeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	metrics.FinanceWritesTotal.WithLabelValues("income", "delete").Inc()
	s.logger.Info().Str("income_id", id.String()).Str("user_id", userID.String()).Msg("income deleted")
	return nil
}
