// Package category implements the quadrant and ring subcommands. Both kinds
// share one shape: a named, colored record addressed by id whose position in
// the list is what technologies point at.
package category

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/models"
	quadrantservice "github.com/thenoetrevino/techradar/internal/services/quadrant"
	ringservice "github.com/thenoetrevino/techradar/internal/services/ring"
)

// Category is a quadrant or ring together with its position and how many
// technologies sit in it
type Category struct {
	ID           int     `json:"id"`
	Position     int     `json:"position"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Color        *string `json:"color"`
	Technologies int     `json:"technologies"`
}

// GetID returns the record id
func (c *Category) GetID() int { return c.ID }

type patch struct {
	Name        *string
	Description *string
	Color       models.Nullable[string]
}

type kind struct {
	noun   string
	plural string
	list   func(ctx context.Context, c *cli.CLI) ([]*Category, error)
	update func(ctx context.Context, c *cli.CLI, id int, p patch) error
}

// QuadrantCmd returns the quadrant parent command
func QuadrantCmd() *cobra.Command {
	return newCmd(quadrants)
}

// RingCmd returns the ring parent command
func RingCmd() *cobra.Command {
	return newCmd(rings)
}

func newCmd(k kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   k.noun,
		Short: fmt.Sprintf("Browse and edit %s", k.plural),
	}

	cmd.AddCommand(listCmd(k))
	cmd.AddCommand(showCmd(k))
	cmd.AddCommand(updateCmd(k))

	return cmd
}

var quadrants = kind{
	noun:   "quadrant",
	plural: "quadrants",
	list: func(ctx context.Context, c *cli.CLI) ([]*Category, error) {
		qs, err := c.App.QuadrantService.ListQuadrants(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*Category, len(qs))
		for i, q := range qs {
			out[i] = &Category{ID: q.ID, Position: i, Name: q.Name, Description: q.Description, Color: q.Color}
		}
		return out, countTechnologies(ctx, c, out, func(t *models.Technology) int { return t.Quadrant })
	},
	update: func(ctx context.Context, c *cli.CLI, id int, p patch) error {
		_, err := c.App.QuadrantService.UpdateQuadrant(ctx, quadrantservice.UpdateQuadrantRequest{
			ID:            id,
			QuadrantPatch: models.QuadrantPatch{Name: p.Name, Description: p.Description, Color: p.Color},
		})
		return err
	},
}

var rings = kind{
	noun:   "ring",
	plural: "rings",
	list: func(ctx context.Context, c *cli.CLI) ([]*Category, error) {
		rs, err := c.App.RingService.ListRings(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*Category, len(rs))
		for i, r := range rs {
			out[i] = &Category{ID: r.ID, Position: i, Name: r.Name, Description: r.Description, Color: r.Color}
		}
		return out, countTechnologies(ctx, c, out, func(t *models.Technology) int { return t.Ring })
	},
	update: func(ctx context.Context, c *cli.CLI, id int, p patch) error {
		_, err := c.App.RingService.UpdateRing(ctx, ringservice.UpdateRingRequest{
			ID:        id,
			RingPatch: models.RingPatch{Name: p.Name, Description: p.Description, Color: p.Color},
		})
		return err
	},
}

func countTechnologies(ctx context.Context, c *cli.CLI, categories []*Category, position func(*models.Technology) int) error {
	technologies, err := c.App.TechnologyService.ListTechnologies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list technologies: %w", err)
	}
	for _, t := range technologies {
		if p := position(t); p >= 0 && p < len(categories) {
			categories[p].Technologies++
		}
	}
	return nil
}

// find returns the category with the given id
func (k kind) find(ctx context.Context, c *cli.CLI, id int) (*Category, error) {
	all, err := k.list(ctx, c)
	if err != nil {
		return nil, err
	}
	for _, cat := range all {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("%s %d: %w", k.noun, id, models.ErrNotFound)
}
