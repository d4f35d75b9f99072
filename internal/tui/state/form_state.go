package state

import (
	"strings"

	"charm.land/huh/v2"
)

// TechnologyFormValues are bound to the fields of the technology form.
type TechnologyFormValues struct {
	Name        string
	Description string
	Quadrant    int
	Ring        int
	Website     string
	Tags        string // comma separated
	Confirm     bool
}

// TagList splits the comma separated tags, dropping blanks.
func (v *TechnologyFormValues) TagList() []string {
	tags := []string{}
	for _, tag := range strings.Split(v.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// LinkFormValues are bound to the fields of the link form.
type LinkFormValues struct {
	ProjectID int
	Notes     string
	Confirm   bool
}

// FormState holds the active huh form and the values it edits.
type FormState struct {
	TechnologyForm *huh.Form
	Technology     TechnologyFormValues

	// EditingTechnologyID is 0 when the form creates a new technology
	EditingTechnologyID int

	LinkForm *huh.Form
	Link     LinkFormValues

	// LinkTechnologyID is the technology the link form attaches to
	LinkTechnologyID int
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// ResetTechnology clears the technology form and its values.
func (s *FormState) ResetTechnology() {
	s.TechnologyForm = nil
	s.Technology = TechnologyFormValues{}
	s.EditingTechnologyID = 0
}

// ResetLink clears the link form and its values.
func (s *FormState) ResetLink() {
	s.LinkForm = nil
	s.Link = LinkFormValues{}
	s.LinkTechnologyID = 0
}
