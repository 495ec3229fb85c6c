package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fintrack/expense-tracker-api/internal/core/ports"
)

// IncomeHandler handles HTTP requests for the caller's income records.
type IncomeHandler struct {
	incomes ports.IncomeService
}

func NewIncomeHandler(incomes ports.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

// List returns the caller's income records, newest first.
//
// @Summary      Get user's income data
// @Tags         income
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   incomeResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/income [get]
func (h *IncomeHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	records, err := h.incomes.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]incomeResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, incomeResponse{
			ID:            r.ID.String(),
			NameOfRevenue: r.NameOfRevenue,
			Amount:        r.Amount,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a new income record owned by the caller.
//
// @Summary      Add income data
// @Tags         income
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      incomeRequest  true  "Income fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /user/income [post]
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req incomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.incomes.Create(c.Request().Context(), userID, ports.IncomeInput{
		NameOfRevenue: req.NameOfRevenue,
		Amount:        req.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "new income added"})
}

// Get returns a single income record by id.
//
// @Summary      Get income data by ID
// @Tags         income
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Income ID"
// @Success      200  {object}  incomeResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/income/{id} [get]
func (h *IncomeHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid income ID"})
	}

	record, err := h.incomes.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, incomeResponse{
		ID:            record.ID.String(),
		NameOfRevenue: record.NameOfRevenue,
		Amount:        record.Amount,
	})
}

// Update replaces the fields of an income record and returns the updated
// record. Asymmetric with Create, which returns only a confirmation message.
//
// @Summary      Update income data by ID
// @Tags         income
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Income ID"
// @Param        body  body      incomeRequest  true  "Income fields"
// @Success      200   {object}  incomeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/income/{id} [put]
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid income ID"})
	}

	var req incomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.incomes.Update(c.Request().Context(), userID, id, ports.IncomeInput{
		NameOfRevenue: req.NameOfRevenue,
		Amount:        req.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, incomeResponse{
		ID:            record.ID.String(),
		NameOfRevenue: record.NameOfRevenue,
		Amount:        record.Amount,
	})
}

// Delete removes an income record.
//
// @Summary      Delete income data by ID
// @Tags         income
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Income ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/income/{id} [delete]
func (h *IncomeHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid income ID"})
	}

	if err := h.incomes.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "income deleted successfully"})
}
