package models

// Quadrant is one of the four categorical sectors of the radar
type Quadrant struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Color       *string `json:"color" yaml:"color,omitempty"`
}

// NewQuadrant is the payload for creating a quadrant
type NewQuadrant struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color,omitempty"`
}

// QuadrantPatch is a partial update of a quadrant
type QuadrantPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Color       Nullable[string] `json:"color"`
}

func (p QuadrantPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && !p.Color.Set
}

// Apply returns a copy of q with the patch merged on top.
func (p QuadrantPatch) Apply(q *Quadrant) *Quadrant {
	out := *q
	out.Color = cloneString(q.Color)
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Color.Set {
		out.Color = cloneString(p.Color.Value)
	}
	return &out
}

// GetID returns the quadrant id
func (q *Quadrant) GetID() int { return q.ID }
