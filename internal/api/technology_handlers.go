package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/query"
	projectservice "github.com/thenoetrevino/techradar/internal/services/project"
	technologyservice "github.com/thenoetrevino/techradar/internal/services/technology"
)

type createTechnologyBody struct {
	Name             string   `json:"name"`
	Quadrant         *int     `json:"quadrant"`
	Ring             *int     `json:"ring"`
	Description      string   `json:"description"`
	Website          *string  `json:"website"`
	Tags             []string `json:"tags"`
	CustomProperties *string  `json:"custom_properties"`
}

// parseFilter reads ?q=, ?quadrant= and ?ring=. Absent parameters leave
// that part of the filter open.
func parseFilter(c *fiber.Ctx) (query.Filter, error) {
	filter := query.Filter{Query: c.Query("q")}

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"quadrant", &filter.Quadrant},
		{"ring", &filter.Ring},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errors.New(p.name + " must be an integer")
		}
		*p.dst = &v
	}
	return filter, nil
}

func listTechnologies(svc technologyservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}

		technologies, err := svc.Query(c.UserContext(), filter)
		if err != nil {
			return respondError(c, err, "Technology", "fetch technologies")
		}
		return c.JSON(technologies)
	}
}

func getTechnology(svc technologyservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		tech, err := svc.GetTechnology(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Technology", "fetch technology")
		}
		return c.JSON(tech)
	}
}

func createTechnology(svc technologyservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body createTechnologyBody
		if err := c.BodyParser(&body); err != nil {
			return invalidData(c, "Technology", err)
		}

		var missing []error
		if body.Quadrant == nil {
			missing = append(missing, errors.New("quadrant is required"))
		}
		if body.Ring == nil {
			missing = append(missing, errors.New("ring is required"))
		}
		if len(missing) > 0 {
			return invalidData(c, "Technology", missing...)
		}

		tech, err := svc.CreateTechnology(c.UserContext(), technologyservice.CreateTechnologyRequest{
			Name:             body.Name,
			Quadrant:         *body.Quadrant,
			Ring:             *body.Ring,
			Description:      body.Description,
			Website:          body.Website,
			Tags:             body.Tags,
			CustomProperties: body.CustomProperties,
		})
		if err != nil {
			return respondError(c, err, "Technology", "create technology")
		}
		return c.Status(fiber.StatusCreated).JSON(tech)
	}
}

func updateTechnology(svc technologyservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		var patch models.TechnologyPatch
		if err := c.BodyParser(&patch); err != nil {
			return invalidData(c, "Technology", err)
		}

		tech, err := svc.UpdateTechnology(c.UserContext(), technologyservice.UpdateTechnologyRequest{
			ID:              id,
			TechnologyPatch: patch,
		})
		if err != nil {
			return respondError(c, err, "Technology", "update technology")
		}
		return c.JSON(tech)
	}
}

func projectsForTechnology(techs technologyservice.Service, projects projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		if _, err := techs.GetTechnology(c.UserContext(), id); err != nil {
			return respondError(c, err, "Technology", "fetch technology")
		}
		linked, err := projects.ProjectsForTechnology(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Technology", "fetch projects")
		}
		return c.JSON(linked)
	}
}
