package handler

import "github.com/fintrack/expense-tracker-api/internal/core/validation"

// errorResponse documents the error envelope in the OpenAPI output. The
// actual rendering happens in the central error handler.
type errorResponse struct {
	Detail string                 `json:"detail,omitempty"`
	Fields validation.FieldErrors `json:"fields,omitempty"`
}

// detailResponse is the single-message success envelope.
type detailResponse struct {
	Detail string `json:"detail"`
}

// --- Request / Response types ---
//
// One fixed schema pair per (entity, operation), resolved at compile time;
// there is no per-request serializer selection.

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type signupResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokensPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type loginData struct {
	ID     string        `json:"id"`
	Email  string        `json:"email"`
	Tokens tokensPayload `json:"tokens"`
}

type loginResponse struct {
	Data loginData `json:"data"`
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type profileResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

type profileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}
