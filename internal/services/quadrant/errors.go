package quadrant

import (
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

// Quadrant-related validation errors
var (
	ErrEmptyName         = fmt.Errorf("%w: name cannot be empty", models.ErrInvalidInput)
	ErrEmptyDescription  = fmt.Errorf("%w: description cannot be empty", models.ErrInvalidInput)
	ErrInvalidColor      = fmt.Errorf("%w: invalid color format (must be hex color like #FFFFFF)", models.ErrInvalidInput)
	ErrInvalidQuadrantID = fmt.Errorf("%w: invalid quadrant ID", models.ErrInvalidInput)
)
