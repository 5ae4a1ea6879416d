// error_utils.go
package utils

import (
	"errors"

	"Backend-BrainBattle/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps a service error kind to its HTTP status.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var svcErr *models.ServiceError
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case models.ErrValidation:
			return HandleError(c, fiber.StatusBadRequest, svcErr.Message)
		case models.ErrAuth:
			return HandleError(c, fiber.StatusUnauthorized, svcErr.Message)
		case models.ErrForbidden:
			return HandleError(c, fiber.StatusForbidden, svcErr.Message)
		case models.ErrNotFound:
			return HandleError(c, fiber.StatusNotFound, svcErr.Message)
		case models.ErrPersistence:
			return HandleError(c, fiber.StatusInternalServerError, svcErr.Message)
		}
	}
	return HandleError(c, fiber.StatusInternalServerError, err.Error())
}
