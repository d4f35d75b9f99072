package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/radar"
	quadrantservice "github.com/thenoetrevino/techradar/internal/services/quadrant"
	technologyservice "github.com/thenoetrevino/techradar/internal/services/technology"
)

const (
	defaultRadarWidth  = 800
	defaultRadarHeight = 800
)

// QuadrantCount is one row of the radar overview
type QuadrantCount struct {
	Quadrant int    `json:"quadrant"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// RadarResponse is a computed layout. Seed reproduces it on a later request.
type RadarResponse struct {
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Seed       uint64            `json:"seed"`
	Geometry   radar.Geometry    `json:"geometry"`
	Placements []radar.Placement `json:"placements"`
}

func overview(techs technologyservice.Service, quadrants quadrantservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := techs.CountByQuadrant(c.UserContext())
		if err != nil {
			return respondError(c, err, "Technology", "count technologies")
		}
		qs, err := quadrants.ListQuadrants(c.UserContext())
		if err != nil {
			return respondError(c, err, "Quadrant", "fetch quadrants")
		}

		rows := make([]QuadrantCount, 0, len(counts))
		for i, n := range counts {
			row := QuadrantCount{Quadrant: i, Count: n}
			if i < len(qs) {
				row.Name = qs[i].Name
			}
			rows = append(rows, row)
		}
		return c.JSON(rows)
	}
}

// radarLayout lays out the technologies matching the list filters. The seed
// comes from ?seed=, then the configured seed, then the clock.
func radarLayout(techs technologyservice.Service, cfg config.RadarConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}

		width := c.QueryFloat("width", defaultRadarWidth)
		height := c.QueryFloat("height", defaultRadarHeight)
		if width <= 0 || height <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "width and height must be positive"})
		}

		seed := radar.ClockSeed()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		if raw := c.Query("seed"); raw != "" {
			seed, err = strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "seed must be an unsigned integer"})
			}
		}

		technologies, err := techs.Query(c.UserContext(), filter)
		if err != nil {
			return respondError(c, err, "Technology", "fetch technologies")
		}

		geometry, placements, err := radar.Compute(technologies, width, height, cfg.Margin, seed)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(RadarResponse{
			Width:      width,
			Height:     height,
			Seed:       seed,
			Geometry:   geometry,
			Placements: placements,
		})
	}
}
