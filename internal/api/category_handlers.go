package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thenoetrevino/techradar/internal/models"
	quadrantservice "github.com/thenoetrevino/techradar/internal/services/quadrant"
	ringservice "github.com/thenoetrevino/techradar/internal/services/ring"
)

// ============================================================================
// Quadrants
// ============================================================================

func listQuadrants(svc quadrantservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quadrants, err := svc.ListQuadrants(c.UserContext())
		if err != nil {
			return respondError(c, err, "Quadrant", "fetch quadrants")
		}
		return c.JSON(quadrants)
	}
}

func getQuadrant(svc quadrantservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		quadrant, err := svc.GetQuadrant(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Quadrant", "fetch quadrant")
		}
		return c.JSON(quadrant)
	}
}

func createQuadrant(svc quadrantservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.NewQuadrant
		if err := c.BodyParser(&body); err != nil {
			return invalidData(c, "Quadrant", err)
		}
		quadrant, err := svc.CreateQuadrant(c.UserContext(), quadrantservice.CreateQuadrantRequest{
			Name:        body.Name,
			Description: body.Description,
			Color:       body.Color,
		})
		if err != nil {
			return respondError(c, err, "Quadrant", "create quadrant")
		}
		return c.Status(fiber.StatusCreated).JSON(quadrant)
	}
}

func updateQuadrant(svc quadrantservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		var patch models.QuadrantPatch
		if err := c.BodyParser(&patch); err != nil {
			return invalidData(c, "Quadrant", err)
		}
		quadrant, err := svc.UpdateQuadrant(c.UserContext(), quadrantservice.UpdateQuadrantRequest{ID: id, QuadrantPatch: patch})
		if err != nil {
			return respondError(c, err, "Quadrant", "update quadrant")
		}
		return c.JSON(quadrant)
	}
}

// ============================================================================
// Rings
// ============================================================================

func listRings(svc ringservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rings, err := svc.ListRings(c.UserContext())
		if err != nil {
			return respondError(c, err, "Ring", "fetch rings")
		}
		return c.JSON(rings)
	}
}

func getRing(svc ringservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		ring, err := svc.GetRing(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Ring", "fetch ring")
		}
		return c.JSON(ring)
	}
}

func createRing(svc ringservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.NewRing
		if err := c.BodyParser(&body); err != nil {
			return invalidData(c, "Ring", err)
		}
		ring, err := svc.CreateRing(c.UserContext(), ringservice.CreateRingRequest{
			Name:        body.Name,
			Description: body.Description,
			Color:       body.Color,
		})
		if err != nil {
			return respondError(c, err, "Ring", "create ring")
		}
		return c.Status(fiber.StatusCreated).JSON(ring)
	}
}

func updateRing(svc ringservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		var patch models.RingPatch
		if err := c.BodyParser(&patch); err != nil {
			return invalidData(c, "Ring", err)
		}
		ring, err := svc.UpdateRing(c.UserContext(), ringservice.UpdateRingRequest{ID: id, RingPatch: patch})
		if err != nil {
			return respondError(c, err, "Ring", "update ring")
		}
		return c.JSON(ring)
	}
}
