package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/techradar/internal/models"
	projectservice "github.com/thenoetrevino/techradar/internal/services/project"
	technologyservice "github.com/thenoetrevino/techradar/internal/services/technology"
	"github.com/thenoetrevino/techradar/internal/tui/huhforms"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// openTechnologyForm opens the add form, or the edit form prefilled from t
func (m *Model) openTechnologyForm(t *models.Technology) tea.Cmd {
	if len(m.Quadrants) == 0 || len(m.Rings) == 0 {
		m.NotificationState.Add(state.LevelError, "Add quadrants and rings before technologies")
		return nil
	}

	m.FormState.ResetTechnology()
	values := &m.FormState.Technology
	values.Confirm = true
	if t != nil {
		m.FormState.EditingTechnologyID = t.ID
		values.Name = t.Name
		values.Description = t.Description
		values.Quadrant = t.Quadrant
		values.Ring = t.Ring
		values.Tags = strings.Join(t.Tags, ", ")
		if t.Website != nil {
			values.Website = *t.Website
		}
	}

	m.FormState.TechnologyForm = huhforms.CreateTechnologyForm(values, m.QuadrantNames(), m.RingNames(), t != nil).
		WithTheme(huhforms.CreateRadarTheme(m.Config.ColorScheme)).
		WithWidth(formWidth(m.UiState.Width()))
	m.UiState.SetMode(state.TechnologyFormMode)
	return m.FormState.TechnologyForm.Init()
}

// openLinkForm opens the project picker for the selected technology
func (m *Model) openLinkForm() tea.Cmd {
	selected := m.RadarState.Selected()
	if selected == nil {
		m.NotificationState.Add(state.LevelWarning, "Select a technology to link")
		return nil
	}
	if len(m.Projects) == 0 {
		m.NotificationState.Add(state.LevelWarning, "No projects to link to")
		return nil
	}

	m.FormState.ResetLink()
	m.FormState.LinkTechnologyID = selected.ID
	m.FormState.Link.ProjectID = m.Projects[0].ID
	m.FormState.Link.Confirm = true

	m.FormState.LinkForm = huhforms.CreateLinkForm(&m.FormState.Link, selected.Name, m.Projects).
		WithTheme(huhforms.CreateRadarTheme(m.Config.ColorScheme)).
		WithWidth(formWidth(m.UiState.Width()))
	m.UiState.SetMode(state.LinkFormMode)
	return m.FormState.LinkForm.Init()
}

func formWidth(screen int) int {
	return min(max(screen-10, 30), 70)
}

// updateTechnologyForm forwards msg to the form and saves on completion
func (m *Model) updateTechnologyForm(msg tea.Msg) tea.Cmd {
	form := m.FormState.TechnologyForm
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.TechnologyForm = f
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		if m.FormState.Technology.Confirm {
			m.saveTechnology()
		}
		m.FormState.ResetTechnology()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case huh.StateAborted:
		m.FormState.ResetTechnology()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return cmd
}

// saveTechnology creates or updates the technology from the form values
func (m *Model) saveTechnology() {
	v := m.FormState.Technology
	ctx, cancel := m.DbContext()
	defer cancel()

	var website *string
	if w := strings.TrimSpace(v.Website); w != "" {
		website = &w
	}
	name := strings.TrimSpace(v.Name)
	description := strings.TrimSpace(v.Description)
	tags := v.TagList()

	if id := m.FormState.EditingTechnologyID; id != 0 {
		patch := models.TechnologyPatch{
			Name:        &name,
			Description: &description,
			Quadrant:    &v.Quadrant,
			Ring:        &v.Ring,
			Tags:        &tags,
			Website:     models.Nullable[string]{Set: true, Value: website},
		}
		updated, err := m.App.TechnologyService.UpdateTechnology(ctx, technologyservice.UpdateTechnologyRequest{ID: id, TechnologyPatch: patch})
		if err != nil {
			m.HandleDBError(err, "update technology")
			return
		}
		m.Reload()
		m.NotificationState.Add(state.LevelInfo, "Updated "+updated.Name)
		return
	}

	created, err := m.App.TechnologyService.CreateTechnology(ctx, technologyservice.CreateTechnologyRequest{
		Name:        name,
		Quadrant:    v.Quadrant,
		Ring:        v.Ring,
		Description: description,
		Website:     website,
		Tags:        tags,
	})
	if err != nil {
		m.HandleDBError(err, "create technology")
		return
	}
	m.Reload()
	m.selectTechnology(created.ID)
	m.NotificationState.Add(state.LevelInfo, "Added "+created.Name)
}

// updateLinkForm forwards msg to the link form and links on completion
func (m *Model) updateLinkForm(msg tea.Msg) tea.Cmd {
	form := m.FormState.LinkForm
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.LinkForm = f
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		if m.FormState.Link.Confirm {
			m.saveLink()
		}
		m.FormState.ResetLink()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case huh.StateAborted:
		m.FormState.ResetLink()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return cmd
}

func (m *Model) saveLink() {
	v := m.FormState.Link
	ctx, cancel := m.DbContext()
	defer cancel()

	var notes *string
	if n := strings.TrimSpace(v.Notes); n != "" {
		notes = &n
	}
	_, err := m.App.ProjectService.Link(ctx, projectservice.LinkRequest{
		TechnologyID: m.FormState.LinkTechnologyID,
		ProjectID:    v.ProjectID,
		Notes:        notes,
	})
	if err != nil {
		m.HandleDBError(err, "link project")
		return
	}
	m.loadSelectedProjects()
	m.NotificationState.Add(state.LevelInfo, "Linked to project")
}
