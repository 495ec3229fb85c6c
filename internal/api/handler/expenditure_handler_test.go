package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker-api/internal/api/middleware"
	"github.com/fintrack/expense-tracker-api/internal/core/domain"
	"github.com/fintrack/expense-tracker-api/internal/core/ports"
)

type stubExpenditureService struct {
	listFn   func(ctx context.Context, userID uuid.UUID) ([]ports.ExpenditureRecord, error)
	createFn func(ctx context.Context, userID uuid.UUID, in ports.ExpenditureInput) error
	getFn    func(ctx context.Context, userID, id uuid.UUID) (*ports.ExpenditureRecord, error)
	updateFn func(ctx context.Context, userID, id uuid.UUID, in ports.ExpenditureInput) (*ports.ExpenditureRecord, error)
	deleteFn func(ctx context.Context, userID, id uuid.UUID) error
}

func (s *stubExpenditureService) List(ctx context.Context, userID uuid.UUID) ([]ports.ExpenditureRecord, error) {
	return s.listFn(ctx, userID)
}

func (s *stubExpenditureService) Create(ctx context.Context, userID uuid.UUID, in ports.ExpenditureInput) error {
	return s.createFn(ctx, userID, in)
}

func (s *stubExpenditureService) Get(ctx context.Context, userID, id uuid.UUID) (*ports.ExpenditureRecord, error) {
	return s.getFn(ctx, userID, id)
}

func (s *stubExpenditureService) Update(ctx context.Context, userID, id uuid.UUID, in ports.ExpenditureInput) (*ports.ExpenditureRecord, error) {
	return s.updateFn(ctx, userID, id, in)
}

func (s *stubExpenditureService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteFn(ctx, userID, id)
}

func TestExpenditureHandler_Create_Success(t *testing.T) {
	stub := &stubExpenditureService{
		createFn: func(ctx context.Context, userID uuid.UUID, in ports.ExpenditureInput) error {
			if in.Category != "groceries" || in.NameOfItem != "weekly shop" || string(in.EstimatedAmount) != "89.99" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil
		},
	}
	h := NewExpenditureHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/user/expenditure",
		`{"category":"groceries","nameOfItem":"weekly shop","estimatedAmount":"89.99"}`)
	c.Set(middleware.UserIDKey, uuid.New())

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "new expenditure added" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestExpenditureHandler_List(t *testing.T) {
	recID := uuid.New()
	stub := &stubExpenditureService{
		listFn: func(ctx context.Context, userID uuid.UUID) ([]ports.ExpenditureRecord, error) {
			return []ports.ExpenditureRecord{
				{ID: recID, Category: "rent", NameOfItem: "apartment", EstimatedAmount: domain.AmountFromCents(150000)},
			}, nil
		},
	}
	h := NewExpenditureHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/user/expenditure", "")
	c.Set(middleware.UserIDKey, uuid.New())

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp))
	}
	if resp[0]["category"] != "rent" || resp[0]["nameOfItem"] != "apartment" {
		t.Fatalf("unexpected record: %v", resp[0])
	}
	if resp[0]["estimatedAmount"] != "1500.00" {
		t.Fatalf("unexpected amount: %v", resp[0]["estimatedAmount"])
	}
}

func TestExpenditureHandler_InvalidID(t *testing.T) {
	stub := &stubExpenditureService{
		getFn: func(ctx context.Context, userID, id uuid.UUID) (*ports.ExpenditureRecord, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewExpenditureHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/user/expenditure/oops", "")
	c.Set(middleware.UserIDKey, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("oops")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["detail"] != "Invalid expenditure ID" {
		t.Fatalf("unexpected detail: %v", resp["detail"])
	}
}

func TestExpenditureHandler_Delete_Success(t *testing.T) {
	id := uuid.New()
	stub := &stubExpenditureService{
		deleteFn: func(ctx context.Context, userID, gotID uuid.UUID) error {
			return nil
		},
	}
	h := NewExpenditureHandler(stub)

	c, rec := newJSONContext(t, http.MethodDelete, "/user/expenditure/"+id.String(), "")
	c.Set(middleware.UserIDKey, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "expenditure deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
