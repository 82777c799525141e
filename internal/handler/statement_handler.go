package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/service"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

type StatementHandler struct {
	service service.StatementService
	logger  *logger.Logger
}

func NewStatementHandler(svc service.StatementService, log *logger.Logger) *StatementHandler {
	return &StatementHandler{service: svc, logger: log}
}

// Upload accepts the extracted plain text of an M-Pesa statement as a
// multipart file and kicks off asynchronous extraction.
func (h *StatementHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	uploadID, err := h.service.UploadStatement(ctx, src)
	if err != nil {
		h.logger.Error(ctx, "Failed to upload statement", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to upload statement",
		})
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"upload_id": uploadID,
		"status":    "processing",
	})
}

func (h *StatementHandler) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()

	uploadID := c.Param("id")
	if uploadID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "upload id is required",
		})
	}

	upload, err := h.service.GetUploadStatus(ctx, uploadID)
	if err != nil {
		if errors.Is(err, domain.ErrUploadNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "upload not found",
			})
		}

		h.logger.Error(ctx, "Failed to get upload status", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get upload status",
		})
	}

	return c.JSON(http.StatusOK, upload)
}
