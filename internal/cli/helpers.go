package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/models"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// ParseID reads a record id from the first positional argument or, failing
// that, from the --id flag. Ids must be positive.
func ParseID(cmd *cobra.Command, args []string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("id must be a positive integer, got %q", args[0])
		}
		return id, nil
	}

	id, err := cmd.Flags().GetInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("id is required")
	}
	return id, nil
}

// ResolvePosition turns a quadrant or ring reference into a position. The
// reference may be a zero-based index or a case-insensitive name.
func ResolvePosition(ref string, names []string) (int, error) {
	ref = strings.TrimSpace(ref)
	if idx, err := strconv.Atoi(ref); err == nil {
		return idx, nil
	}
	for i, name := range names {
		if strings.EqualFold(name, ref) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q matches no name in [%s]", models.ErrInvalidInput, ref, strings.Join(names, ", "))
}

// QuadrantNames lists quadrant names in position order
func QuadrantNames(quadrants []*models.Quadrant) []string {
	names := make([]string, len(quadrants))
	for i, q := range quadrants {
		names[i] = q.Name
	}
	return names
}

// RingNames lists ring names in position order
func RingNames(rings []*models.Ring) []string {
	names := make([]string, len(rings))
	for i, r := range rings {
		names[i] = r.Name
	}
	return names
}

// NameAt returns names[i], or a placeholder for positions with no record
func NameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("#%d", i)
	}
	return names[i]
}
