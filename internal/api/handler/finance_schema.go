package handler

import "github.com/fintrack/expense-tracker-api/internal/core/domain"

// The finance JSON contract is camelCase on the wire (nameOfRevenue,
// estimatedAmount) even though storage uses snake_case columns; the mapping
// lives here and nowhere else. Amounts serialize as decimal strings with
// exactly two places, never binary floats.

type messageResponse struct {
	Message string `json:"message"`
}

type incomeRequest struct {
	NameOfRevenue string            `json:"nameOfRevenue"`
	Amount        domain.RawDecimal `json:"amount"`
}

type incomeResponse struct {
	ID            string        `json:"id"`
	NameOfRevenue string        `json:"nameOfRevenue"`
	Amount        domain.Amount `json:"amount"`
}

type expenditureRequest struct {
	Category        string            `json:"category"`
	NameOfItem      string            `json:"nameOfItem"`
	EstimatedAmount domain.RawDecimal `json:"estimatedAmount"`
}

type expenditureResponse struct {
	ID              string        `json:"id"`
	Category        string        `json:"category"`
	NameOfItem      string        `json:"nameOfItem"`
	EstimatedAmount domain.Amount `json:"estimatedAmount"`
}
