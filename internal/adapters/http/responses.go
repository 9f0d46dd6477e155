package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/domain/entities"
)

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Message string             `json:"message"`
	Type    entities.ErrorType `json:"type"`
	Details map[string]string  `json:"details,omitempty"`
}

// MessageResponse is the success body for delete operations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondError translates a service error into the taxonomy's status code
// and body. Anything that is not an OperationError is treated as a server
// failure with a generic message.
func respondError(c echo.Context, err error) error {
	opErr, ok := entities.AsOperationError(err)
	if !ok {
		opErr = entities.NewServerError("An unexpected error occurred", err)
	}

	switch opErr.Type {
	case entities.ErrorTypeValidation:
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation Failed",
			Message: opErr.Message,
			Type:    opErr.Type,
			Details: opErr.Details,
		})
	case entities.ErrorTypeParameter:
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Bad Request",
			Message: opErr.Message,
			Type:    opErr.Type,
		})
	case entities.ErrorTypeDuplicate:
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "Conflict",
			Message: opErr.Message,
			Type:    opErr.Type,
		})
	case entities.ErrorTypeNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Not Found",
			Message: opErr.Message,
			Type:    opErr.Type,
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: opErr.Message,
			Type:    entities.ErrorTypeServer,
		})
	}
}

func badRequest(c echo.Context, message string) error {
	return respondError(c, entities.NewValidationError(message, nil))
}
