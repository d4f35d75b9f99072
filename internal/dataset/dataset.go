// Package dataset loads and saves whole radars as YAML.
//
// Technologies reference quadrants and rings by position, so import order is
// significant: quadrants and rings are inserted first, in file order, into an
// empty store.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/techradar/internal/database"
	"github.com/thenoetrevino/techradar/internal/models"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	// ErrIntegrity marks a dataset whose records contradict each other
	ErrIntegrity = errors.New("dataset integrity violation")

	// ErrStoreNotEmpty is returned when importing quadrants or rings into a store that already has some
	ErrStoreNotEmpty = errors.New("store already has quadrants or rings")
)

// Category is a quadrant or ring record
type Category struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Color       *string `yaml:"color,omitempty"`
}

// Technology is a technology record with positional quadrant and ring
type Technology struct {
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	Quadrant         int      `yaml:"quadrant"`
	Ring             int      `yaml:"ring"`
	Website          *string  `yaml:"website,omitempty"`
	Tags             []string `yaml:"tags,omitempty"`
	CustomProperties *string  `yaml:"custom_properties,omitempty"`
}

// Project is a project record
type Project struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Status      string  `yaml:"status"`
	Image       *string `yaml:"image,omitempty"`
	Website     *string `yaml:"website,omitempty"`
	Repository  *string `yaml:"repository,omitempty"`
}

// Link associates a technology and a project by name
type Link struct {
	Technology string  `yaml:"technology"`
	Project    string  `yaml:"project"`
	Notes      *string `yaml:"notes,omitempty"`
}

// Dataset is a complete radar
type Dataset struct {
	Quadrants    []Category   `yaml:"quadrants"`
	Rings        []Category   `yaml:"rings"`
	Technologies []Technology `yaml:"technologies"`
	Projects     []Project    `yaml:"projects,omitempty"`
	Links        []Link       `yaml:"links,omitempty"`
}

// Summary counts what an import inserted
type Summary struct {
	Quadrants    int
	Rings        int
	Technologies int
	Projects     int
	Links        int
}

// Default returns the built-in sample radar
func Default() (*Dataset, error) {
	ds, err := Decode(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("failed to decode built-in dataset: %w", err)
	}
	return ds, nil
}

// Load reads a dataset file
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses YAML, rejecting unknown keys so typos surface early
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return &ds, nil
		}
		return nil, err
	}
	return &ds, nil
}

// Encode writes the dataset as YAML
func (d *Dataset) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return enc.Close()
}

// Validate reports every record that cannot be placed on the radar or
// resolved, joined into one error. Each problem matches ErrIntegrity.
func (d *Dataset) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrIntegrity}, args...)...))
	}

	quadrants := min(len(d.Quadrants), models.QuadrantCount)
	rings := min(len(d.Rings), models.RingCount)
	if len(d.Quadrants) > models.QuadrantCount {
		fail("%d quadrants defined, the radar draws only %d", len(d.Quadrants), models.QuadrantCount)
	}
	if len(d.Rings) > models.RingCount {
		fail("%d rings defined, the radar draws only %d", len(d.Rings), models.RingCount)
	}

	techNames := make(map[string]bool, len(d.Technologies))
	for i, t := range d.Technologies {
		if t.Name == "" {
			fail("technology #%d has no name", i+1)
		}
		if t.Quadrant < 0 || t.Quadrant >= quadrants {
			fail("technology %q: quadrant %d outside [0,%d)", t.Name, t.Quadrant, quadrants)
		}
		if t.Ring < 0 || t.Ring >= rings {
			fail("technology %q: ring %d outside [0,%d)", t.Name, t.Ring, rings)
		}
		techNames[t.Name] = true
	}

	projectNames := make(map[string]bool, len(d.Projects))
	for _, p := range d.Projects {
		projectNames[p.Name] = true
	}
	for _, l := range d.Links {
		if !techNames[l.Technology] {
			fail("link references unknown technology %q", l.Technology)
		}
		if !projectNames[l.Project] {
			fail("link references unknown project %q", l.Project)
		}
	}

	return errors.Join(errs...)
}

// Import validates the dataset and inserts it into an empty store
func Import(ctx context.Context, store database.DataStore, d *Dataset) (*Summary, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	existingQuadrants, err := store.CountQuadrants(ctx)
	if err != nil {
		return nil, err
	}
	existingRings, err := store.CountRings(ctx)
	if err != nil {
		return nil, err
	}
	if existingQuadrants > 0 || existingRings > 0 {
		return nil, ErrStoreNotEmpty
	}

	summary := &Summary{}
	for _, q := range d.Quadrants {
		if _, err := store.CreateQuadrant(ctx, models.NewQuadrant{Name: q.Name, Description: q.Description, Color: q.Color}); err != nil {
			return nil, fmt.Errorf("failed to import quadrant %q: %w", q.Name, err)
		}
		summary.Quadrants++
	}
	for _, r := range d.Rings {
		if _, err := store.CreateRing(ctx, models.NewRing{Name: r.Name, Description: r.Description, Color: r.Color}); err != nil {
			return nil, fmt.Errorf("failed to import ring %q: %w", r.Name, err)
		}
		summary.Rings++
	}

	techIDs := make(map[string]int, len(d.Technologies))
	for _, t := range d.Technologies {
		created, err := store.CreateTechnology(ctx, models.NewTechnology{
			Name:             t.Name,
			Quadrant:         t.Quadrant,
			Ring:             t.Ring,
			Description:      t.Description,
			Website:          t.Website,
			Tags:             t.Tags,
			CustomProperties: t.CustomProperties,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to import technology %q: %w", t.Name, err)
		}
		techIDs[t.Name] = created.ID
		summary.Technologies++
	}

	projectIDs := make(map[string]int, len(d.Projects))
	for _, p := range d.Projects {
		created, err := store.CreateProject(ctx, models.NewProject{
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Website:     p.Website,
			Repository:  p.Repository,
			Status:      p.Status,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to import project %q: %w", p.Name, err)
		}
		projectIDs[p.Name] = created.ID
		summary.Projects++
	}

	for _, l := range d.Links {
		if _, err := store.LinkTechnologyToProject(ctx, techIDs[l.Technology], projectIDs[l.Project], l.Notes); err != nil {
			return nil, fmt.Errorf("failed to import link %s -> %s: %w", l.Technology, l.Project, err)
		}
		summary.Links++
	}

	return summary, nil
}

// FromStore snapshots the store as a dataset. Links whose technology or
// project no longer resolves are skipped since names cannot express them.
func FromStore(ctx context.Context, store database.DataStore) (*Dataset, error) {
	quadrants, err := store.GetAllQuadrants(ctx)
	if err != nil {
		return nil, err
	}
	rings, err := store.GetAllRings(ctx)
	if err != nil {
		return nil, err
	}
	technologies, err := store.GetAllTechnologies(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := store.GetAllProjects(ctx)
	if err != nil {
		return nil, err
	}
	links, err := store.GetAllLinks(ctx)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for _, q := range quadrants {
		ds.Quadrants = append(ds.Quadrants, Category{Name: q.Name, Description: q.Description, Color: q.Color})
	}
	for _, r := range rings {
		ds.Rings = append(ds.Rings, Category{Name: r.Name, Description: r.Description, Color: r.Color})
	}
	techNames := make(map[int]string, len(technologies))
	for _, t := range technologies {
		techNames[t.ID] = t.Name
		ds.Technologies = append(ds.Technologies, Technology{
			Name:             t.Name,
			Description:      t.Description,
			Quadrant:         t.Quadrant,
			Ring:             t.Ring,
			Website:          t.Website,
			Tags:             t.Tags,
			CustomProperties: t.CustomProperties,
		})
	}
	projectNames := make(map[int]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
		ds.Projects = append(ds.Projects, Project{
			Name:        p.Name,
			Description: p.Description,
			Status:      p.Status,
			Image:       p.Image,
			Website:     p.Website,
			Repository:  p.Repository,
		})
	}
	for _, l := range links {
		tech, okTech := techNames[l.TechnologyID]
		project, okProject := projectNames[l.ProjectID]
		if !okTech || !okProject {
			continue
		}
		ds.Links = append(ds.Links, Link{Technology: tech, Project: project, Notes: l.Notes})
	}
	return ds, nil
}

// Export writes the current store as dataset YAML
func Export(ctx context.Context, store database.DataStore, w io.Writer) error {
	ds, err := FromStore(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to snapshot store: %w", err)
	}
	return ds.Encode(w)
}
