package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fintrack/expense-tracker-api/internal/core/ports"
)

// AccountHandler handles HTTP requests for signup, login, logout, token
// refresh, and profile operations.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Signup registers a new user account.
//
// @Summary      Register user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.accounts.Signup(c.Request().Context(), ports.SignupInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupResponse{
		ID:      result.ID.String(),
		Email:   result.Email,
		Message: "User created successfully",
	})
}

// Login authenticates a user and returns an access/refresh token pair.
//
// @Summary      Logs user into the system
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Data: loginData{
			ID:    result.ID.String(),
			Email: result.Email,
			Tokens: tokensPayload{
				AccessToken:  result.Tokens.AccessToken,
				RefreshToken: result.Tokens.RefreshToken,
			},
		},
	})
}

// Logout blacklists the caller's refresh token.
//
// @Summary      Logs out current logged in user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logoutRequest  true  "Refresh token to revoke"
// @Success      200   {object}  detailResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AccountHandler) Logout(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.accounts.Logout(c.Request().Context(), callerID, req.Refresh); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detailResponse{Detail: "User logged out successfully"})
}

// Refresh rotates a refresh token and returns a fresh token pair.
//
// @Summary      Refresh the token pair
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Current refresh token"
// @Success      200   {object}  refreshResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/token/refresh [post]
func (h *AccountHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	pair, err := h.accounts.Refresh(c.Request().Context(), req.Refresh)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, refreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// GetProfile returns the caller's own profile.
//
// @Summary      Get user by user ID
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/user/{id}/profile [get]
func (h *AccountHandler) GetProfile(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid user ID"})
	}

	profile, err := h.accounts.GetProfile(c.Request().Context(), callerID, targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:        profile.ID.String(),
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Username:  profile.Username,
		Email:     profile.Email,
	})
}

// UpdateProfile updates the caller's first/last name and username.
//
// @Summary      Update user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User ID"
// @Param        body  body      profileUpdateRequest  true  "Profile fields"
// @Success      200   {object}  detailResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/user/{id}/profile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid user ID"})
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.accounts.UpdateProfile(c.Request().Context(), callerID, targetID, ports.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detailResponse{Detail: "User details updated successfully!"})
}
