package utils

import (
	"errors"

	"movieweb/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse is the envelope every endpoint answers with.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse sends a success response.
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error response.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// ServiceErrorResponse maps service-layer errors onto HTTP codes: validation
// problems become 400, missing entities 404, catalog misses and unavailable
// collaborators 400/503, everything else a generic 500 so store internals
// never reach the client.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrMovieNotFound):
		return ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrMetadataUnavailable),
		errors.Is(err, services.ErrRecommendationsMissing):
		return ErrorResponse(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
