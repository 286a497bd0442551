// Package validation provides input validation for scene descriptions.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Limits applied to scene input
const (
	MaxShapeNameLen = 64
	MaxSceneShapes  = 10000
)

// Shape names are identifiers: letters, digits, and a few separators.
var validShapeNameChars = regexp.MustCompile(`^[a-zA-Z0-9\-_.:]+$`)

// ValidateShapeName validates and trims a shape name
func ValidateShapeName(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("shape name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("shape name cannot be empty")
	}
	if len(trimmed) > MaxShapeNameLen {
		return "", fmt.Errorf("shape name too long: %d characters (max %d)", len(trimmed), MaxShapeNameLen)
	}
	if !validShapeNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("shape name %q contains invalid characters (only alphanumeric, '-', '_', '.', ':' allowed)", trimmed)
	}

	return trimmed, nil
}

// ValidateFinite rejects NaN and infinite values
func ValidateFinite(field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", field, v)
		}
	}
	return nil
}

// ValidateRadius validates a circle radius
func ValidateRadius(radius float64) error {
	if err := ValidateFinite("radius", radius); err != nil {
		return err
	}
	if radius < 0 {
		return fmt.Errorf("radius cannot be negative: %v", radius)
	}
	return nil
}

// ValidateSegment rejects segments whose endpoints coincide
func ValidateSegment(x1, y1, x2, y2 float64) error {
	if err := ValidateFinite("segment endpoint", x1, y1, x2, y2); err != nil {
		return err
	}
	if x1 == x2 && y1 == y2 {
		return fmt.Errorf("segment endpoints coincide at (%v, %v)", x1, y1)
	}
	return nil
}

// ValidateShapeCount validates the number of shapes in a scene
func ValidateShapeCount(n int) error {
	if n > MaxSceneShapes {
		return fmt.Errorf("too many shapes: %d (max %d)", n, MaxSceneShapes)
	}
	return nil
}
