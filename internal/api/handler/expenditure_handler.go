package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fintrack/expense-tracker-api/internal/core/ports"
)

// ExpenditureHandler handles HTTP requests for the caller's expenditure
// records. It mirrors IncomeHandler endpoint for endpoint.
type ExpenditureHandler struct {
	expenditures ports.ExpenditureService
}

func NewExpenditureHandler(expenditures ports.ExpenditureService) *ExpenditureHandler {
	return &ExpenditureHandler{expenditures: expenditures}
}

// List returns the caller's expenditure records, newest first.
//
// @Summary      Get user's expenditure data
// @Tags         expenditure
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   expenditureResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/expenditure [get]
func (h *ExpenditureHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	records, err := h.expenditures.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]expenditureResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, expenditureResponse{
			ID:              r.ID.String(),
			Category:        r.Category,
			NameOfItem:      r.NameOfItem,
			EstimatedAmount: r.EstimatedAmount,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a new expenditure record owned by the caller.
//
// @Summary      Add expenditure data
// @Tags         expenditure
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      expenditureRequest  true  "Expenditure fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /user/expenditure [post]
func (h *ExpenditureHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req expenditureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.expenditures.Create(c.Request().Context(), userID, ports.ExpenditureInput{
		Category:        req.Category,
		NameOfItem:      req.NameOfItem,
		EstimatedAmount: req.EstimatedAmount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "new expenditure added"})
}

// Get returns a single expenditure record by id.
//
// @Summary      Get expenditure data by ID
// @Tags         expenditure
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Expenditure ID"
// @Success      200  {object}  expenditureResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/expenditure/{id} [get]
func (h *ExpenditureHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid expenditure ID"})
	}

	record, err := h.expenditures.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expenditureResponse{
		ID:              record.ID.String(),
		Category:        record.Category,
		NameOfItem:      record.NameOfItem,
		EstimatedAmount: record.EstimatedAmount,
	})
}

// Update replaces the fields of an expenditure record and returns the
// updated record.
//
// @Summary      Update expenditure data by ID
// @Tags         expenditure
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Expenditure ID"
// @Param        body  body      expenditureRequest  true  "Expenditure fields"
// @Success      200   {object}  expenditureResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/expenditure/{id} [put]
func (h *ExpenditureHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid expenditure ID"})
	}

	var req expenditureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.expenditures.Update(c.Request().Context(), userID, id, ports.ExpenditureInput{
		Category:        req.Category,
		NameOfItem:      req.NameOfItem,
		EstimatedAmount: req.EstimatedAmount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expenditureResponse{
		ID:              record.ID.String(),
		Category:        record.Category,
		NameOfItem:      record.NameOfItem,
		EstimatedAmount: record.EstimatedAmount,
	})
}

// Delete removes an expenditure record.
//
// @Summary      Delete expenditure data by ID
// @Tags         expenditure
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Expenditure ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/expenditure/{id} [delete]
func (h *ExpenditureHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid expenditure ID"})
	}

	if err := h.expenditures.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "expenditure deleted successfully"})
}
