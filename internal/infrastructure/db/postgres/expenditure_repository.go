package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
)

// ExpenditureRepository persists expenditure records with the same
// owner-filtered access as IncomeRepository.
type ExpenditureRepository struct {
	pool *pgxpool.Pool
}

func NewExpenditureRepository(pool *pgxpool.Pool) *ExpenditureRepository {
	return &ExpenditureRepository{pool: pool}
}

func (r *ExpenditureRepository) Create(ctx context.Context, exp *domain.Expenditure) error {
	const q = `
		INSERT INTO expenditures (id, user_id, category, name_of_item, estimated_amount_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, q,
		exp.ID, exp.UserID, exp.Category, exp.NameOfItem, exp.EstimatedAmount.Cents(),
		exp.CreatedAt, exp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert expenditure: %w", err)
	}
	return nil
}

func (r *ExpenditureRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Expenditure, error) {
	const q = `
		SELECT id, user_id, category, name_of_item, estimated_amount_cents, created_at, updated_at
		FROM expenditures
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenditures: %w", err)
	}
	defer rows.Close()

	exps := []domain.Expenditure{}
	for rows.Next() {
		exp, err := scanExpenditure(rows)
		if err != nil {
			return nil, err
		}
		exps = append(exps, *exp)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("list expenditures: %w", rows.Err())
	}
	return exps, nil
}

func (r *ExpenditureRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expenditure, error) {
	const q = `
		SELECT id, user_id, category, name_of_item, estimated_amount_cents, created_at, updated_at
		FROM expenditures
		WHERE id = $1 AND user_id = $2`

	exp, err := scanExpenditure(r.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenditureNotFound
		}
		return nil, err
	}
	return exp, nil
}

func (r *ExpenditureRepository) Update(ctx context.Context, exp *domain.Expenditure) error {
	const q = `
		UPDATE expenditures
		SET category = $1, name_of_item = $2, estimated_amount_cents = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6`

	tag, err := r.pool.Exec(ctx, q,
		exp.Category, exp.NameOfItem, exp.EstimatedAmount.Cents(), exp.UpdatedAt,
		exp.ID, exp.UserID)
	if err != nil {
		return fmt.Errorf("update expenditure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenditureNotFound
	}
	return nil
}

func (r *ExpenditureRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM expenditures WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete expenditure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenditureNotFound
	}
	return nil
}

func scanExpenditure(row pgx.Row) (*domain.Expenditure, error) {
	var exp domain.Expenditure
	var cents int64
	err := row.Scan(&exp.ID, &exp.UserID, &exp.Category, &exp.NameOfItem, &cents, &exp.CreatedAt, &exp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan expenditure: %w", err)
	}
	exp.EstimatedAmount = domain.AmountFromCents(cents)
	return &exp, nil
}
