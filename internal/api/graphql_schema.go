package api

import (
	"errors"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/thenoetrevino/techradar/internal/app"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/query"
	"github.com/thenoetrevino/techradar/internal/radar"
)

// CreateSchema builds the read-only GraphQL schema over the app's services.
// Field names follow the REST JSON contract.
func CreateSchema(a *app.App) (graphql.Schema, error) {
	categoryFields := func() graphql.Fields {
		return graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"color":       &graphql.Field{Type: graphql.String},
		}
	}

	quadrantType := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Quadrant",
		Fields: categoryFields(),
	})

	ringType := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Ring",
		Fields: categoryFields(),
	})

	projectType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"image":       &graphql.Field{Type: graphql.String},
			"website":     &graphql.Field{Type: graphql.String},
			"repository":  &graphql.Field{Type: graphql.String},
			"status":      &graphql.Field{Type: graphql.String},
		},
	})

	technologyType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Technology",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.Int},
			"name":              &graphql.Field{Type: graphql.String},
			"quadrant":          &graphql.Field{Type: graphql.Int},
			"ring":              &graphql.Field{Type: graphql.Int},
			"description":       &graphql.Field{Type: graphql.String},
			"website":           &graphql.Field{Type: graphql.String},
			"tags":              &graphql.Field{Type: graphql.NewList(graphql.String)},
			"custom_properties": &graphql.Field{Type: graphql.String},
			"projects": &graphql.Field{
				Type: graphql.NewList(projectType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					tech, ok := p.Source.(*models.Technology)
					if !ok {
						return nil, nil
					}
					return a.ProjectService.ProjectsForTechnology(p.Context, tech.ID)
				},
			},
		},
	})

	projectType.AddFieldConfig("technologies", &graphql.Field{
		Type: graphql.NewList(technologyType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			project, ok := p.Source.(*models.Project)
			if !ok {
				return nil, nil
			}
			return a.ProjectService.TechnologiesForProject(p.Context, project.ID)
		},
	})

	placementType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Placement",
		Fields: graphql.Fields{
			"technology_id": &graphql.Field{Type: graphql.Int},
			"name":          &graphql.Field{Type: graphql.String},
			"quadrant":      &graphql.Field{Type: graphql.Int},
			"ring":          &graphql.Field{Type: graphql.Int},
			"angle":         &graphql.Field{Type: graphql.Float},
			"radius":        &graphql.Field{Type: graphql.Float},
			"x":             &graphql.Field{Type: graphql.Float},
			"y":             &graphql.Field{Type: graphql.Float},
		},
	})

	radarType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Radar",
		Fields: graphql.Fields{
			"seed":       &graphql.Field{Type: graphql.String},
			"radius":     &graphql.Field{Type: graphql.Float},
			"placements": &graphql.Field{Type: graphql.NewList(placementType)},
		},
	})

	idArgs := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
	filterArgs := graphql.FieldConfigArgument{
		"q":        &graphql.ArgumentConfig{Type: graphql.String},
		"quadrant": &graphql.ArgumentConfig{Type: graphql.Int},
		"ring":     &graphql.ArgumentConfig{Type: graphql.Int},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"technologies": &graphql.Field{
				Type: graphql.NewList(technologyType),
				Args: filterArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.TechnologyService.Query(p.Context, filterFromArgs(p.Args))
				},
			},
			"technology": &graphql.Field{
				Type: technologyType,
				Args: idArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nilIfNotFound(a.TechnologyService.GetTechnology(p.Context, p.Args["id"].(int)))
				},
			},
			"quadrants": &graphql.Field{
				Type: graphql.NewList(quadrantType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.QuadrantService.ListQuadrants(p.Context)
				},
			},
			"quadrant": &graphql.Field{
				Type: quadrantType,
				Args: idArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nilIfNotFound(a.QuadrantService.GetQuadrant(p.Context, p.Args["id"].(int)))
				},
			},
			"rings": &graphql.Field{
				Type: graphql.NewList(ringType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.RingService.ListRings(p.Context)
				},
			},
			"ring": &graphql.Field{
				Type: ringType,
				Args: idArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nilIfNotFound(a.RingService.GetRing(p.Context, p.Args["id"].(int)))
				},
			},
			"projects": &graphql.Field{
				Type: graphql.NewList(projectType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.ProjectService.ListProjects(p.Context)
				},
			},
			"project": &graphql.Field{
				Type: projectType,
				Args: idArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nilIfNotFound(a.ProjectService.GetProject(p.Context, p.Args["id"].(int)))
				},
			},
			"radar": &graphql.Field{
				Type: radarType,
				Args: graphql.FieldConfigArgument{
					"width":    &graphql.ArgumentConfig{Type: graphql.Float, DefaultValue: float64(defaultRadarWidth)},
					"height":   &graphql.ArgumentConfig{Type: graphql.Float, DefaultValue: float64(defaultRadarHeight)},
					"seed":     &graphql.ArgumentConfig{Type: graphql.Int},
					"q":        &graphql.ArgumentConfig{Type: graphql.String},
					"quadrant": &graphql.ArgumentConfig{Type: graphql.Int},
					"ring":     &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return resolveRadar(p, a)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}

func filterFromArgs(args map[string]any) query.Filter {
	var f query.Filter
	if q, ok := args["q"].(string); ok {
		f.Query = q
	}
	if v, ok := args["quadrant"].(int); ok {
		f.Quadrant = &v
	}
	if v, ok := args["ring"].(int); ok {
		f.Ring = &v
	}
	return f
}

// nilIfNotFound turns a missing record into a null field rather than an error.
func nilIfNotFound[T any](v *T, err error) (any, error) {
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func resolveRadar(p graphql.ResolveParams, a *app.App) (any, error) {
	cfg := a.Config().Radar

	seed := radar.ClockSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	if v, ok := p.Args["seed"].(int); ok {
		if v < 0 {
			return nil, errors.New("seed must not be negative")
		}
		seed = uint64(v)
	}

	technologies, err := a.TechnologyService.Query(p.Context, filterFromArgs(p.Args))
	if err != nil {
		return nil, err
	}

	geometry, placements, err := radar.Compute(technologies, p.Args["width"].(float64), p.Args["height"].(float64), cfg.Margin, seed)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(placements))
	for _, pl := range placements {
		pt := pl.Point()
		rows = append(rows, map[string]any{
			"technology_id": pl.TechnologyID,
			"name":          pl.Name,
			"quadrant":      pl.Quadrant,
			"ring":          pl.Ring,
			"angle":         pl.Angle,
			"radius":        pl.Radius,
			"x":             pt.X,
			"y":             pt.Y,
		})
	}

	// seed is a string since GraphQL Int is 32-bit
	return map[string]any{
		"seed":       strconv.FormatUint(seed, 10),
		"radius":     geometry.Radius,
		"placements": rows,
	}, nil
}
