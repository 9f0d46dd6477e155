package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// LabelHandler handles label-related requests
type LabelHandler struct {
	labelService ports.LabelService
	logger       *logger.Logger
}

// NewLabelHandler creates a new label handler
func NewLabelHandler(labelService ports.LabelService, logger *logger.Logger) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
		logger:       logger,
	}
}

// ListLabels handles listing labels ordered by name
func (h *LabelHandler) ListLabels(c echo.Context) error {
	labels, err := h.labelService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, labels)
}

// CreateLabel handles label creation
func (h *LabelHandler) CreateLabel(c echo.Context) error {
	var req ports.CreateLabelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}

	label, err := h.labelService.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, label)
}

// UpdateLabel handles partial label updates; the label id travels in the body.
func (h *LabelHandler) UpdateLabel(c echo.Context) error {
	var req ports.UpdateLabelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}

	label, err := h.labelService.Update(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, label)
}

// DeleteLabel handles label deletion; the label id travels as a query parameter.
func (h *LabelHandler) DeleteLabel(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return respondError(c, entities.NewParameterError("Label ID is required"))
	}

	if err := h.labelService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Label deleted successfully",
	})
}
