package models

// Technology is a single blip on the radar.
// Quadrant and Ring are positional indices into the quadrant and ring
// collections in insertion order, not record ids.
type Technology struct {
	ID               int      `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Quadrant         int      `json:"quadrant" yaml:"quadrant"`
	Ring             int      `json:"ring" yaml:"ring"`
	Description      string   `json:"description" yaml:"description"`
	Website          *string  `json:"website" yaml:"website,omitempty"`
	Tags             []string `json:"tags" yaml:"tags"`
	CustomProperties *string  `json:"custom_properties" yaml:"custom_properties,omitempty"`
}

// NewTechnology is the payload for creating a technology.
// Absent optional fields take their defaults: no website, no tags, no custom properties.
type NewTechnology struct {
	Name             string   `json:"name"`
	Quadrant         int      `json:"quadrant"`
	Ring             int      `json:"ring"`
	Description      string   `json:"description"`
	Website          *string  `json:"website,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	CustomProperties *string  `json:"custom_properties,omitempty"`
}

// Build returns the technology this payload creates, before an id is assigned.
func (n NewTechnology) Build() *Technology {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)
	return &Technology{
		Name:             n.Name,
		Quadrant:         n.Quadrant,
		Ring:             n.Ring,
		Description:      n.Description,
		Website:          cloneString(n.Website),
		Tags:             tags,
		CustomProperties: cloneString(n.CustomProperties),
	}
}

// TechnologyPatch is a partial update. Nil pointers and unset Nullable fields
// leave the stored value untouched. The id is never patchable.
type TechnologyPatch struct {
	Name             *string          `json:"name,omitempty"`
	Quadrant         *int             `json:"quadrant,omitempty"`
	Ring             *int             `json:"ring,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Website          Nullable[string] `json:"website"`
	Tags             *[]string        `json:"tags,omitempty"`
	CustomProperties Nullable[string] `json:"custom_properties"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TechnologyPatch) IsEmpty() bool {
	return p.Name == nil && p.Quadrant == nil && p.Ring == nil && p.Description == nil &&
		!p.Website.Set && p.Tags == nil && !p.CustomProperties.Set
}

// Apply returns a copy of t with the patch merged on top.
func (p TechnologyPatch) Apply(t *Technology) *Technology {
	out := t.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Quadrant != nil {
		out.Quadrant = *p.Quadrant
	}
	if p.Ring != nil {
		out.Ring = *p.Ring
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Website.Set {
		out.Website = cloneString(p.Website.Value)
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.CustomProperties.Set {
		out.CustomProperties = cloneString(p.CustomProperties.Value)
	}
	return out
}

// Clone returns a deep copy so callers never alias store-owned data.
func (t *Technology) Clone() *Technology {
	if t == nil {
		return nil
	}
	out := *t
	out.Tags = append([]string{}, t.Tags...)
	out.Website = cloneString(t.Website)
	out.CustomProperties = cloneString(t.CustomProperties)
	return &out
}

// GetID returns the technology id
func (t *Technology) GetID() int { return t.ID }
