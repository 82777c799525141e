package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/service"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

type SMSHandler struct {
	service service.SMSService
	logger  *logger.Logger
}

func NewSMSHandler(svc service.SMSService, log *logger.Logger) *SMSHandler {
	return &SMSHandler{service: svc, logger: log}
}

type parseSMSRequest struct {
	SMSMessage string `json:"sms_message"`
}

type saveSMSRequest struct {
	SMSMessage string `json:"sms_message"`
	Category   string `json:"category"`
}

func (h *SMSHandler) Parse(c echo.Context) error {
	ctx := c.Request().Context()

	var req parseSMSRequest
	if err := c.Bind(&req); err != nil || req.SMSMessage == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "sms_message is required",
		})
	}

	result, err := h.service.ParseMessage(ctx, req.SMSMessage)
	if err != nil {
		if errors.Is(err, domain.ErrUnparseableMessage) {
			// Not a defect: the caller should fall back to manual entry.
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "could not parse SMS message",
			})
		}

		h.logger.Error(ctx, "Failed to parse SMS", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to parse SMS",
		})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *SMSHandler) Save(c echo.Context) error {
	ctx := c.Request().Context()

	var req saveSMSRequest
	if err := c.Bind(&req); err != nil || req.SMSMessage == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "sms_message is required",
		})
	}

	result, err := h.service.ParseMessage(ctx, req.SMSMessage)
	if err != nil {
		if errors.Is(err, domain.ErrUnparseableMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "could not parse SMS message",
			})
		}

		h.logger.Error(ctx, "Failed to parse SMS", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to parse SMS",
		})
	}

	expense, err := h.service.SaveParsed(ctx, result, req.Category)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "transaction already recorded",
			})
		}

		h.logger.Error(ctx, "Failed to save parsed SMS", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to save expense",
		})
	}

	return c.JSON(http.StatusCreated, expense)
}
