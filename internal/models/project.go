package models

// Project is a piece of work that uses technologies from the radar
type Project struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Image       *string `json:"image" yaml:"image,omitempty"`
	Website     *string `json:"website" yaml:"website,omitempty"`
	Repository  *string `json:"repository" yaml:"repository,omitempty"`
	Status      string  `json:"status" yaml:"status"`
}

// NewProject is the payload for creating a project
type NewProject struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
	Website     *string `json:"website,omitempty"`
	Repository  *string `json:"repository,omitempty"`
	Status      string  `json:"status"`
}

// ProjectPatch is a partial update of a project
type ProjectPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Image       Nullable[string] `json:"image"`
	Website     Nullable[string] `json:"website"`
	Repository  Nullable[string] `json:"repository"`
	Status      *string          `json:"status,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (patch ProjectPatch) IsEmpty() bool {
	return patch.Name == nil && patch.Description == nil && patch.Status == nil &&
		!patch.Image.Set && !patch.Website.Set && !patch.Repository.Set
}

// Apply returns a copy of p with the patch merged on top.
func (patch ProjectPatch) Apply(p *Project) *Project {
	out := *p
	out.Image = cloneString(p.Image)
	out.Website = cloneString(p.Website)
	out.Repository = cloneString(p.Repository)
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Description != nil {
		out.Description = *patch.Description
	}
	if patch.Image.Set {
		out.Image = cloneString(patch.Image.Value)
	}
	if patch.Website.Set {
		out.Website = cloneString(patch.Website.Value)
	}
	if patch.Repository.Set {
		out.Repository = cloneString(patch.Repository.Value)
	}
	if patch.Status != nil {
		out.Status = *patch.Status
	}
	return &out
}

// TechnologyProject links a technology to a project. Neither side is
// checked for existence and the same pair may be linked more than once.
type TechnologyProject struct {
	ID           int     `json:"id" yaml:"id"`
	TechnologyID int     `json:"technology_id" yaml:"technology_id"`
	ProjectID    int     `json:"project_id" yaml:"project_id"`
	Notes        *string `json:"notes" yaml:"notes,omitempty"`
}

// GetID returns the project id
func (p *Project) GetID() int { return p.ID }

// GetID returns the join record id
func (l *TechnologyProject) GetID() int { return l.ID }
