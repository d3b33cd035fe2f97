package utils

import (
	"emptyleg-marketplace/logger"
	"emptyleg-marketplace/types"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse maps a service error to its HTTP status and renders the
// standard error body. Internal details are logged, not leaked.
func ErrorResponse(c *fiber.Ctx, err error) error {
	status := types.StatusCode(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		logger.Error("Request failed", err)
		message = "Internal server error"
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: message,
		Status:  status,
	})
}
