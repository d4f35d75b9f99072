package project

import (
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

// Project-related errors
var (
	// Validation errors
	ErrEmptyName           = fmt.Errorf("%w: name cannot be empty", models.ErrInvalidInput)
	ErrNameTooLong         = fmt.Errorf("%w: name cannot exceed %d characters", models.ErrInvalidInput, MaxNameLength)
	ErrEmptyDescription    = fmt.Errorf("%w: description cannot be empty", models.ErrInvalidInput)
	ErrEmptyStatus         = fmt.Errorf("%w: status cannot be empty", models.ErrInvalidInput)
	ErrInvalidURL          = fmt.Errorf("%w: website and repository must be http(s) URLs", models.ErrInvalidInput)
	ErrInvalidProjectID    = fmt.Errorf("%w: invalid project ID", models.ErrInvalidInput)
	ErrInvalidTechnologyID = fmt.Errorf("%w: invalid technology ID", models.ErrInvalidInput)
)
