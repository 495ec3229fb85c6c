package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Expenditure is a planned or recorded expense owned by exactly one user.
type Expenditure struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Category        string
	NameOfItem      string
	EstimatedAmount Amount
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var ErrExpenditureNotFound = errors.New("expenditure not found")
