package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
	"github.com/fintrack/expense-tracker-api/internal/core/validation"
)

// errorResponse is the canonical error envelope. Detail carries the
// human-readable message; Fields carries per-field validation messages.
type errorResponse struct {
	Detail string                 `json:"detail,omitempty"`
	Fields validation.FieldErrors `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 400 with every failing field listed.
//   - Maps known domain errors to their contractual HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var fe validation.FieldErrors
		if errors.As(err, &fe) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{Fields: fe})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Ownership violations
	// surface as the same 404 as a missing record; 403 would confirm that
	// another user's record exists.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrIncomeNotFound):
		return http.StatusNotFound, "Income not found"
	case errors.Is(err, domain.ErrExpenditureNotFound):
		return http.StatusNotFound, "Expenditure not found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid email/password combination."
	case errors.Is(err, domain.ErrAccountDisabled):
		return http.StatusBadRequest, "User account is disabled."
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		return http.StatusBadRequest, "Invalid refresh token"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrIntegrity):
		return http.StatusBadRequest, "Data integrity error"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
