package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/service"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

type ExpenseHandler struct {
	service service.ExpenseService
	logger  *logger.Logger
}

func NewExpenseHandler(svc service.ExpenseService, log *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{service: svc, logger: log}
}

func (h *ExpenseHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.AddExpenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	expense, err := h.service.AddExpense(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "transaction already recorded",
			})
		}

		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	expenseID := c.Param("id")
	if expenseID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "expense id is required",
		})
	}

	expense, err := h.service.GetExpense(ctx, expenseID)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "expense not found",
			})
		}

		h.logger.Error(ctx, "Failed to get expense", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get expense",
		})
	}

	return c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = 20
	}

	filter := domain.ExpenseFilter{
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
		Category:  c.QueryParam("category"),
		Page:      page,
		PerPage:   perPage,
	}

	expenses, total, err := h.service.ListExpenses(ctx, filter)
	if err != nil {
		h.logger.Error(ctx, "Failed to list expenses", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list expenses",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":    expenses,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

func (h *ExpenseHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	yearMonth := c.QueryParam("year_month")
	if yearMonth == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "year_month is required (YYYY-MM)",
		})
	}

	summary, err := h.service.MonthlySummary(ctx, yearMonth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"year_month": yearMonth,
		"summary":    summary,
	})
}

func (h *ExpenseHandler) TotalFees(c echo.Context) error {
	ctx := c.Request().Context()

	startDate := c.QueryParam("start_date")
	endDate := c.QueryParam("end_date")

	total, err := h.service.TotalFees(ctx, startDate, endDate)
	if err != nil {
		h.logger.Error(ctx, "Failed to total fees", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to total fees",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"start_date": startDate,
		"end_date":   endDate,
		"total_fees": total,
	})
}
