package models

// Ring is one of the four concentric maturity bands.
// Rings are ordered innermost to outermost by insertion order.
type Ring struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Color       *string `json:"color" yaml:"color,omitempty"`
}

// NewRing is the payload for creating a ring
type NewRing struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color,omitempty"`
}

// RingPatch is a partial update of a ring
type RingPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Color       Nullable[string] `json:"color"`
}

func (p RingPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && !p.Color.Set
}

// Apply returns a copy of r with the patch merged on top.
func (p RingPatch) Apply(r *Ring) *Ring {
	out := *r
	out.Color = cloneString(r.Color)
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

// GetID returns the ring id
func (r *Ring) GetID() int { return r.ID }
