package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fintrack/expense-tracker-api/internal/api/middleware"
)

// ctxUserID extracts the caller id injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake and fails closed with 401.
func ctxUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
