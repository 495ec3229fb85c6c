package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
	"github.com/fintrack/expense-tracker-api/internal/core/ports"
	"github.com/fintrack/expense-tracker-api/internal/core/validation"
)

type stubExpenditureRepo struct {
	exps []domain.Expenditure
}

func (r *stubExpenditureRepo) Create(_ context.Context, exp *domain.Expenditure) error {
	r.exps = append([]domain.Expenditure{*exp}, r.exps...)
	return nil
}

func (r *stubExpenditureRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Expenditure, error) {
	out := []domain.Expenditure{}
	for _, exp := range r.exps {
		if exp.UserID == userID {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (r *stubExpenditureRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*domain.Expenditure, error) {
	for _, exp := range r.exps {
		if exp.ID == id && exp.UserID == userID {
			found := exp
			return &found, nil
		}
	}
	return nil, domain.ErrExpenditureNotFound
}

func (r *stubExpenditureRepo) Update(_ context.Context, exp *domain.Expenditure) error {
	for i, e := range r.exps {
		if e.ID == exp.ID && e.UserID == exp.UserID {
			r.exps[i] = *exp
			return nil
		}
	}
	return domain.ErrExpenditureNotFound
}

func (r *stubExpenditureRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, exp := range r.exps {
		if exp.ID == id && exp.UserID == userID {
			r.exps = append(r.exps[:i], r.exps[i+1:]...)
			return nil
		}
	}
	return domain.ErrExpenditureNotFound
}

func TestExpenditureService_CreateAndGet(t *testing.T) {
	repo := &stubExpenditureRepo{}
	svc := NewExpenditureService(repo, zerolog.Nop())
	userID := uuid.New()

	if err := svc.Create(context.Background(), userID, ports.ExpenditureInput{
		Category:        "groceries",
		NameOfItem:      "weekly shop",
		EstimatedAmount: "89.99",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	id := repo.exps[0].ID
	rec, err := svc.Get(context.Background(), userID, id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Category != "groceries" || rec.NameOfItem != "weekly shop" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.EstimatedAmount.String() != "89.99" {
		t.Fatalf("unexpected amount: %s", rec.EstimatedAmount)
	}
}

func TestExpenditureService_Create_Validation(t *testing.T) {
	repo := &stubExpenditureRepo{}
	svc := NewExpenditureService(repo, zerolog.Nop())

	err := svc.Create(context.Background(), uuid.New(), ports.ExpenditureInput{
		Category:        "",
		NameOfItem:      "",
		EstimatedAmount: "12.345",
	})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"category", "nameOfItem", "estimatedAmount"} {
		if !fe.Has(field) {
			t.Fatalf("expected error on %q, got %v", field, fe)
		}
	}
	if len(repo.exps) != 0 {
		t.Fatalf("invalid input must not be persisted")
	}
}

func TestExpenditureService_OwnerIsolation(t *testing.T) {
	repo := &stubExpenditureRepo{}
	svc := NewExpenditureService(repo, zerolog.Nop())
	alice := uuid.New()
	mallory := uuid.New()

	if err := svc.Create(context.Background(), alice, ports.ExpenditureInput{
		Category:        "rent",
		NameOfItem:      "apartment",
		EstimatedAmount: "1500",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	id := repo.exps[0].ID

	if _, err := svc.Get(context.Background(), mallory, id); err != domain.ErrExpenditureNotFound {
		t.Fatalf("foreign get: expected ErrExpenditureNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), mallory, id, ports.ExpenditureInput{
		Category: "x", NameOfItem: "y", EstimatedAmount: "1",
	}); err != domain.ErrExpenditureNotFound {
		t.Fatalf("foreign update: expected ErrExpenditureNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), mallory, id); err != domain.ErrExpenditureNotFound {
		t.Fatalf("foreign delete: expected ErrExpenditureNotFound, got %v", err)
	}

	records, err := svc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("owner's record must survive foreign access attempts, got %d", len(records))
	}
}

func TestExpenditureService_Update(t *testing.T) {
	repo := &stubExpenditureRepo{}
	svc := NewExpenditureService(repo, zerolog.Nop())
	alice := uuid.New()

	if err := svc.Create(context.Background(), alice, ports.ExpenditureInput{
		Category:        "transport",
		NameOfItem:      "bus pass",
		EstimatedAmount: "40",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	id := repo.exps[0].ID

	rec, err := svc.Update(context.Background(), alice, id, ports.ExpenditureInput{
		Category:        "transport",
		NameOfItem:      "monthly pass",
		EstimatedAmount: "55.50",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.NameOfItem != "monthly pass" || rec.EstimatedAmount.String() != "55.50" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
