// Package validation holds the deterministic, stateless field rules applied
// before any persistence. Rules trim surrounding whitespace first, accumulate
// one message per violated rule, and report every failing field rather than
// stopping at the first.
package validation

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
)

// validate backs the structural rules (email shape) shared by all checks.
var validate = validator.New()

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FieldErrors maps a field name to every message it accumulated.
// It implements error so services can return it directly.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Has reports whether the field already failed an earlier rule. Uniqueness
// checks are skipped for fields that are already invalid.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Email normalizes (trim + lowercase) and validates an email address.
// Returns the normalized value; uniqueness is checked by the caller.
func Email(raw string, fe FieldErrors) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		fe.Add("email", "Email cannot be empty.")
		return v
	}
	if len(v) > 254 { // RFC 5321 limit
		fe.Add("email", "Email address is too long.")
		return v
	}
	if err := validate.Var(v, "email"); err != nil {
		fe.Add("email", "Enter a valid email address.")
	}
	return v
}

// Username validates length and character set. Returns the trimmed value.
func Username(raw string, fe FieldErrors) string {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		fe.Add("username", "Username cannot be empty.")
	case len(v) < 3:
		fe.Add("username", "Username must be at least 3 characters long.")
	case len(v) > 150:
		fe.Add("username", "Username cannot exceed 150 characters.")
	case !usernamePattern.MatchString(v):
		fe.Add("username", "Username can only contain letters, numbers, underscores, and hyphens.")
	}
	return v
}

// PersonName validates a first or last name. label is the human-readable
// field name used in messages ("First name", "Last name").
func PersonName(field, label, raw string, fe FieldErrors) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.Add(field, label+" cannot be empty.")
		return v
	}
	if len(v) > 150 {
		fe.Add(field, label+" cannot exceed 150 characters.")
	}
	return v
}

// RequiredString validates a required free-text field with a length cap.
// Used for the finance string fields (revenue name, item name, category).
func RequiredString(field, label, raw string, max int, fe FieldErrors) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.Add(field, label+" cannot be empty.")
		return v
	}
	if len(v) > max {
		fe.Add(field, label+" cannot exceed "+strconv.Itoa(max)+" characters.")
	}
	return v
}

// AmountField parses and range-checks a monetary field. On failure the zero
// Amount is returned alongside the accumulated message.
func AmountField(field, label string, raw domain.RawDecimal, fe FieldErrors) domain.Amount {
	a, err := domain.ParseAmount(string(raw))
	switch err {
	case nil:
		return a
	case domain.ErrAmountNotPositive:
		fe.Add(field, label+" must be positive.")
	case domain.ErrAmountPrecision:
		fe.Add(field, label+" cannot have more than 2 decimal places.")
	case domain.ErrAmountTooLarge:
		fe.Add(field, label+" exceeds maximum limit.")
	default:
		fe.Add(field, label+" must be a valid number.")
	}
	return 0
}
