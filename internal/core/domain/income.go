package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Income is a revenue record owned by exactly one user. The owning user id
// is the sole authorization boundary: no other caller can see the record.
type Income struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	NameOfRevenue string
	Amount        Amount
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var ErrIncomeNotFound = errors.New("income not found")
