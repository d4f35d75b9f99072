package technology

import (
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

// Technology-related validation errors. All of them match models.ErrInvalidInput.
var (
	ErrEmptyName           = fmt.Errorf("%w: name cannot be empty", models.ErrInvalidInput)
	ErrNameTooLong         = fmt.Errorf("%w: name cannot exceed %d characters", models.ErrInvalidInput, MaxNameLength)
	ErrEmptyDescription    = fmt.Errorf("%w: description cannot be empty", models.ErrInvalidInput)
	ErrInvalidQuadrant     = fmt.Errorf("%w: quadrant must reference an existing quadrant", models.ErrInvalidInput)
	ErrInvalidRing         = fmt.Errorf("%w: ring must reference an existing ring", models.ErrInvalidInput)
	ErrInvalidWebsite      = fmt.Errorf("%w: website must be an http(s) URL", models.ErrInvalidInput)
	ErrEmptyTag            = fmt.Errorf("%w: tags cannot be empty strings", models.ErrInvalidInput)
	ErrInvalidTechnologyID = fmt.Errorf("%w: invalid technology ID", models.ErrInvalidInput)
)
