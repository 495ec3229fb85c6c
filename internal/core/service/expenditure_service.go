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

// ExpenditureService implements the owner-scoped expenditure use cases.
type ExpenditureService struct {
	repo   ports.ExpenditureRepository
	logger zerolog.Logger
}

func NewExpenditureService(repo ports.ExpenditureRepository, logger zerolog.Logger) *ExpenditureService {
	return &ExpenditureService{repo: repo, logger: logger}
}

func validateExpenditure(in ports.ExpenditureInput) (string, string, domain.Amount, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	category := validation.RequiredString("category", "Category", in.Category, 60, fe)
	name := validation.RequiredString("nameOfItem", "Item name", in.NameOfItem, 120, fe)
	amount := validation.AmountField("estimatedAmount", "Estimated amount", in.EstimatedAmount, fe)
	return category, name, amount, fe
}

func (s *ExpenditureService) List(ctx context.Context, userID uuid.UUID) ([]ports.ExpenditureRecord, error) {
	exps, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	records := make([]ports.ExpenditureRecord, 0, len(exps))
	for _, exp := range exps {
		records = append(records, ports.ExpenditureRecord{
			ID:              exp.ID,
			Category:        exp.Category,
			NameOfItem:      exp.NameOfItem,
			EstimatedAmount: exp.EstimatedAmount,
		})
	}
	return records, nil
}

func (s *ExpenditureService) Create(ctx context.Context, userID uuid.UUID, in ports.ExpenditureInput) error {
	category, name, amount, fe := validateExpenditure(in)
	if !fe.Empty() {
		return fe
	}

	now := time.Now().UTC()
	exp := &domain.Expenditure{
		ID:              uuid.New(),
		UserID:          userID,
		Category:        category,
		NameOfItem:      name,
		EstimatedAmount: amount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, exp); err != nil {
		return err
	}

	metrics.FinanceWritesTotal.WithLabelValues("expenditure", "create").Inc()
	s.logger.Info().Str("expenditure_id", exp.ID.String()).Str("user_id", userID.String()).Msg("expenditure created")
	return nil
}

func (s *ExpenditureService) Get(ctx context.Context, userID, id uuid.UUID) (*ports.ExpenditureRecord, error) {
	exp, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return &ports.ExpenditureRecord{
		ID:              exp.ID,
		Category:        exp.Category,
		NameOfItem:      exp.NameOfItem,
		EstimatedAmount: exp.EstimatedAmount,
	}, nil
}

func (s *ExpenditureService) Update(ctx context.Context, userID, id uuid.UUID, in ports.ExpenditureInput) (*ports.ExpenditureRecord, error) {
	exp, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	category, name, amount, fe := validateExpenditure(in)
	if !fe.Empty() {
		return nil, fe
	}

	exp.Category = category
	exp.NameOfItem = name
	exp.EstimatedAmount = amount
	exp.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, exp); err != nil {
		return nil, err
	}

	metrics.FinanceWritesTotal.WithLabelValues("expenditure", "update").Inc()
	return &ports.ExpenditureRecord{
		ID:              exp.ID,
		Category:        exp.Category,
		NameOfItem:      exp.NameOfItem,
		EstimatedAmount: exp.EstimatedAmount,
	}, nil
}

func (s *ExpenditureService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	metrics.FinanceWritesTotal.WithLabelValues("expenditure", "delete").Inc()
	s.logger.Info().Str("expenditure_id", id.String()).Str("user_id", userID.String()).Msg("expenditure deleted")
	return nil
}
