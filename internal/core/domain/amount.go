package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value held as an exact number of cents.
// The external contract requires at most 2 fractional digits (rejected, not
// rounded), a minimum of 0.01, a maximum of 100,000,000,000, and string
// serialization with exactly two decimals.
type Amount int64

// MaxAmount is 100 billion, the upper bound for any stored amount.
const MaxAmount Amount = 100_000_000_000_00

var (
	ErrAmountNotNumeric  = errors.New("amount is not a valid number")
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrAmountPrecision   = errors.New("amount cannot have more than 2 decimal places")
	ErrAmountTooLarge    = errors.New("amount exceeds maximum limit")
)

// ParseAmount converts a decimal literal into cents. Unlike everyday money
// input parsing there is no rounding: a third fractional digit is an error.
func ParseAmount(raw string) (Amount, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrAmountNotNumeric
	}
	if strings.HasPrefix(s, "-") {
		// Parse the digits anyway so "-abc" reports a format error,
		// but any well-formed negative value is a minimum violation.
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return 0, ErrAmountNotNumeric
		}
		return 0, ErrAmountNotPositive
	}
	s = strings.TrimPrefix(s, "+")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, ErrAmountNotNumeric
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, ErrAmountNotNumeric
		}
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, ErrAmountNotNumeric
		}
	}
	if hasFrac && len(fracPart) > 2 {
		// Trailing zeros beyond 2 places are still precision the caller
		// asked for; reject rather than normalize.
		return 0, ErrAmountPrecision
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrAmountTooLarge
	}
	if iv > int64(MaxAmount/100) {
		return 0, ErrAmountTooLarge
	}

	cents := iv * 100
	switch len(fracPart) {
	case 1:
		cents += int64(fracPart[0]-'0') * 10
	case 2:
		cents += int64(fracPart[0]-'0')*10 + int64(fracPart[1]-'0')
	}

	a := Amount(cents)
	if a > MaxAmount {
		return 0, ErrAmountTooLarge
	}
	if a < 1 {
		return 0, ErrAmountNotPositive
	}
	return a, nil
}

// Cents returns the raw cent count, for storage.
func (a Amount) Cents() int64 { return int64(a) }

// AmountFromCents rebuilds an Amount from its stored representation.
func AmountFromCents(cents int64) Amount { return Amount(cents) }

// String renders the amount with exactly two decimals, e.g. "5000.00".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

// MarshalJSON serializes the amount as a decimal string, never a binary float.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// RawDecimal captures an amount field from a JSON body before validation.
// It accepts both string and number literals so that malformed values reach
// the validation layer as field errors instead of failing the bind.
type RawDecimal string

func (r *RawDecimal) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawDecimal(s)
		return nil
	}
	*r = RawDecimal(b)
	return nil
}
