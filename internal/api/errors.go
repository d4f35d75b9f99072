package api

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thenoetrevino/techradar/internal/models"
)

// parseID reads the :id path parameter. Anything but a positive integer is
// reported as a malformed id.
func parseID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID format"})
}

func notFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": entity + " not found"})
}

// invalidData reports a request body that failed decoding or validation.
func invalidData(c *fiber.Ctx, entity string, problems ...error) error {
	details := make([]fiber.Map, 0, len(problems))
	for _, p := range problems {
		details = append(details, fiber.Map{"message": p.Error()})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid " + strings.ToLower(entity) + " data",
		"errors":  details,
	})
}

// respondError maps service errors onto status codes: not found is 404,
// invalid input is 400, anything else is logged and reported as 500
// "Failed to <action>".
func respondError(c *fiber.Ctx, err error, entity, action string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return notFound(c, entity)
	case errors.Is(err, models.ErrInvalidInput):
		return invalidData(c, entity, err)
	default:
		slog.Error("api request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to " + action})
	}
}
