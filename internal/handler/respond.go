package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/pkg/logger"
)

// respondError is the single place where service failures become HTTP
// status codes. Error bodies are always {"message": ...}.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, model.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	case errors.Is(err, model.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		logger.Error("unhandled error", logger.String("path", c.Path()), logger.ErrorF(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
