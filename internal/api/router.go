package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/thenoetrevino/techradar/internal/app"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(f *fiber.App, a *app.App, schema graphql.Schema) {
	api := f.Group("/api")

	api.Post("/graphql", GraphQLHandler(schema))

	technologies := api.Group("/technologies")
	technologies.Get("/", listTechnologies(a.TechnologyService))
	technologies.Post("/", createTechnology(a.TechnologyService))
	technologies.Get("/:id", getTechnology(a.TechnologyService))
	technologies.Patch("/:id", updateTechnology(a.TechnologyService))
	technologies.Get("/:id/projects", projectsForTechnology(a.TechnologyService, a.ProjectService))

	quadrants := api.Group("/quadrants")
	quadrants.Get("/", listQuadrants(a.QuadrantService))
	quadrants.Post("/", createQuadrant(a.QuadrantService))
	quadrants.Get("/:id", getQuadrant(a.QuadrantService))
	quadrants.Patch("/:id", updateQuadrant(a.QuadrantService))

	rings := api.Group("/rings")
	rings.Get("/", listRings(a.RingService))
	rings.Post("/", createRing(a.RingService))
	rings.Get("/:id", getRing(a.RingService))
	rings.Patch("/:id", updateRing(a.RingService))

	projects := api.Group("/projects")
	projects.Get("/", listProjects(a.ProjectService))
	projects.Post("/", createProject(a.ProjectService))
	projects.Get("/:id", getProject(a.ProjectService))
	projects.Patch("/:id", updateProject(a.ProjectService))
	projects.Get("/:id/technologies", technologiesForProject(a.ProjectService))

	api.Get("/technology-projects", listLinks(a.ProjectService))
	api.Post("/technology-projects", linkTechnology(a.ProjectService))

	api.Get("/overview", overview(a.TechnologyService, a.QuadrantService))
	api.Get("/radar", radarLayout(a.TechnologyService, a.Config().Radar))
}
