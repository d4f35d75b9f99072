package huhforms

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// Field limits match the original add-technology dialog.
const (
	NameMinLength        = 2
	NameMaxLength        = 50
	DescriptionMinLength = 10
)

// CreateTechnologyForm creates a huh form bound to values. Quadrant and ring
// options carry the positional index as their value.
func CreateTechnologyForm(values *state.TechnologyFormValues, quadrants, rings []string, editing bool) *huh.Form {
	confirmTitle := "Add this technology?"
	if editing {
		confirmTitle = "Save changes?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("e.g. GraphQL").
			CharLimit(NameMaxLength).
			Validate(ValidateName).
			Value(&values.Name),

		huh.NewSelect[int]().
			Key("quadrant").
			Title("Quadrant").
			Options(indexOptions(quadrants)...).
			Value(&values.Quadrant),

		huh.NewSelect[int]().
			Key("ring").
			Title("Ring").
			Options(indexOptions(rings)...).
			Value(&values.Ring),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What is it and why does it sit in this ring? Markdown is fine.").
			Lines(4).
			Validate(ValidateDescription).
			Value(&values.Description),

		huh.NewInput().
			Key("website").
			Title("Website (optional)").
			Placeholder("https://...").
			Validate(ValidateWebsite).
			Value(&values.Website),

		huh.NewInput().
			Key("tags").
			Title("Tags (comma separated)").
			Placeholder("ai, llm").
			Value(&values.Tags),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(CreateKeyMap()).
		WithShowHelp(false)
}

func indexOptions(names []string) []huh.Option[int] {
	opts := make([]huh.Option[int], len(names))
	for i, name := range names {
		opts[i] = huh.NewOption(name, i)
	}
	return opts
}

// ValidateName requires 2 to 50 characters after trimming.
func ValidateName(s string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < NameMinLength {
		return errors.New("name must be at least 2 characters")
	}
	if n > NameMaxLength {
		return errors.New("name must be at most 50 characters")
	}
	return nil
}

// ValidateDescription requires at least 10 characters after trimming.
func ValidateDescription(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < DescriptionMinLength {
		return errors.New("description must be at least 10 characters")
	}
	return nil
}

// ValidateWebsite accepts an empty value or an absolute http(s) URL.
func ValidateWebsite(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("website must be a valid http(s) URL")
	}
	return nil
}
