package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thenoetrevino/techradar/internal/models"
	projectservice "github.com/thenoetrevino/techradar/internal/services/project"
)

type linkBody struct {
	TechnologyID int     `json:"technology_id"`
	ProjectID    int     `json:"project_id"`
	Notes        *string `json:"notes"`
}

func listProjects(svc projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projects, err := svc.ListProjects(c.UserContext())
		if err != nil {
			return respondError(c, err, "Project", "fetch projects")
		}
		return c.JSON(projects)
	}
}

func getProject(svc projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		project, err := svc.GetProject(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Project", "fetch project")
		}
		return c.JSON(project)
	}
}

func createProject(svc projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.NewProject
		if err := c.BodyParser(&body); err != nil {
			return invalidData(c, "Project", err)
		}
		if body.Status == "" {
			body.Status = models.ProjectStatusActive
		}
		project, err := svc.CreateProject(c.UserContext(), projectservice.CreateProjectRequest{
			Name:        body.Name,
			Description: body.Description,
			Image:       body.Image,
			Website:     body.Website,
			Repository:  body.Repository,
			Status:      body.Status,
		})
		if err != nil {
			return respondError(c, err, "Project", "create project")
		}
		return c.Status(fiber.StatusCreated).JSON(project)
	}
}

func updateProject(svc projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		var patch models.ProjectPatch
		if err := c.BodyParser(&patch); err != nil {
			return invalidData(c, "Project", err)
		}
		project, err := svc.UpdateProject(c.UserContext(), projectservice.UpdateProjectRequest{ID: id, ProjectPatch: patch})
		if err != nil {
			return respondError(c, err, "Project", "update project")
		}
		return c.JSON(project)
	}
}

func technologiesForProject(svc projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		if _, err := svc.GetProject(c.UserContext(), id); err != nil {
			return respondError(c, err, "Project", "fetch project")
		}
		technologies, err := svc.TechnologiesForProject(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Project", "fetch technologies")
		}
		return c.JSON(technologies)
	}
}

func listLinks(svc projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		links, err := svc.ListLinks(c.UserContext())
		if err != nil {
			return respondError(c, err, "Link", "fetch links")
		}
		return c.JSON(links)
	}
}

// linkTechnology accepts dangling ids and repeated pairs.
func linkTechnology(svc projectservice.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body linkBody
		if err := c.BodyParser(&body); err != nil {
			return invalidData(c, "Link", err)
		}
		link, err := svc.Link(c.UserContext(), projectservice.LinkRequest{
			TechnologyID: body.TechnologyID,
			ProjectID:    body.ProjectID,
			Notes:        body.Notes,
		})
		if err != nil {
			return respondError(c, err, "Link", "link technology")
		}
		return c.Status(fiber.StatusCreated).JSON(link)
	}
}
