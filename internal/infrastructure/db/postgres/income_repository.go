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

// IncomeRepository persists income records. Every query is filtered by the
// owning user id, so a foreign record and a missing record are the same
// domain.ErrIncomeNotFound.
type IncomeRepository struct {
	pool *pgxpool.Pool
}

func NewIncomeRepository(pool *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{pool: pool}
}

func (r *IncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	const q = `
		INSERT INTO incomes (id, user_id, name_of_revenue, amount_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, q,
		income.ID, income.UserID, income.NameOfRevenue, income.Amount.Cents(),
		income.CreatedAt, income.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert income: %w", err)
	}
	return nil
}

func (r *IncomeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Income, error) {
	const q = `
		SELECT id, user_id, name_of_revenue, amount_cents, created_at, updated_at
		FROM incomes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		inc, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, *inc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("list incomes: %w", rows.Err())
	}
	return incomes, nil
}

func (r *IncomeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Income, error) {
	const q = `
		SELECT id, user_id, name_of_revenue, amount_cents, created_at, updated_at
		FROM incomes
		WHERE id = $1 AND user_id = $2`

	inc, err := scanIncome(r.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIncomeNotFound
		}
		return nil, err
	}
	return inc, nil
}

func (r *IncomeRepository) Update(ctx context.Context, income *domain.Income) error {
	const q = `
		UPDATE incomes
		SET name_of_revenue = $1, amount_cents = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5`

	tag, err := r.pool.Exec(ctx, q,
		income.NameOfRevenue, income.Amount.Cents(), income.UpdatedAt,
		income.ID, income.UserID)
	if err != nil {
		return fmt.Errorf("update income: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeNotFound
	}
	return nil
}

func (r *IncomeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM incomes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeNotFound
	}
	return nil
}

func scanIncome(row pgx.Row) (*domain.Income, error) {
	var inc domain.Income
	var cents int64
	err := row.Scan(&inc.ID, &inc.UserID, &inc.NameOfRevenue, &cents, &inc.CreatedAt, &inc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan income: %w", err)
	}
	inc.Amount = domain.AmountFromCents(cents)
	return &inc, nil
}
