package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// CreateLinkForm creates a form that links a technology to one of projects
func CreateLinkForm(values *state.LinkFormValues, technologyName string, projects []*models.Project) *huh.Form {
	opts := make([]huh.Option[int], len(projects))
	for i, p := range projects {
		opts[i] = huh.NewOption(p.Name, p.ID)
	}

	fields := []huh.Field{
		huh.NewSelect[int]().
			Key("project").
			Title("Link " + technologyName + " to project").
			Options(opts...).
			Value(&values.ProjectID),

		huh.NewInput().
			Key("notes").
			Title("Notes (optional)").
			Placeholder("How the project uses it...").
			Value(&values.Notes),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this link?").
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(CreateKeyMap()).
		WithShowHelp(false)
}
