// Package scene reads and writes named sets of shapes. Scenes are YAML or
// JSON documents; each entry converts into a value from package physics.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-sat/pkg/physics"
	"github.com/opd-ai/go-sat/pkg/validation"
)

// Kind names a shape type in a scene file
type Kind string

const (
	KindCircle            Kind = "circle"
	KindRectangle         Kind = "rectangle"
	KindOrientedRectangle Kind = "oriented_rectangle"
	KindSegment           Kind = "segment"
)

// Format selects the scene encoding
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// Point is a 2D coordinate pair in a scene file
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vector converts the point into a physics vector
func (p Point) Vector() physics.Vector2D {
	return physics.NewVector(p.X, p.Y)
}

func pointOf(v physics.Vector2D) Point {
	return Point{X: v.X, Y: v.Y}
}

// Shape is one entry of a scene. Which fields apply depends on Kind.
type Shape struct {
	Name     string  `json:"name" yaml:"name"`
	Kind     Kind    `json:"kind" yaml:"kind"`
	Center   Point   `json:"center,omitempty" yaml:"center,omitempty"`
	Size     Point   `json:"size,omitempty" yaml:"size,omitempty"`
	Radius   float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Point1   Point   `json:"point1,omitempty" yaml:"point1,omitempty"`
	Point2   Point   `json:"point2,omitempty" yaml:"point2,omitempty"`

	// generatedName is set when Validate assigned Name
	generatedName bool
}

// Scene is an ordered list of shapes
type Scene struct {
	Shapes []Shape `json:"shapes" yaml:"shapes"`
}

// Build converts the entry into its physics value
func (s Shape) Build() (physics.Hulled, error) {
	switch s.Kind {
	case KindCircle:
		return physics.NewCircle(s.Center.Vector(), s.Radius), nil
	case KindRectangle:
		return physics.NewRectangle(s.Center.Vector(), s.Size.Vector()), nil
	case KindOrientedRectangle:
		rect := physics.NewRectangle(s.Center.Vector(), s.Size.Vector())
		return physics.NewOrientedRectangle(rect, s.Rotation), nil
	case KindSegment:
		return physics.NewLineSegment(s.Point1.Vector(), s.Point2.Vector()), nil
	default:
		return nil, fmt.Errorf("shape %q: unknown kind %q", s.Name, s.Kind)
	}
}

// FromShape describes a physics value as a scene entry
func FromShape(name string, shape physics.Hulled) (Shape, error) {
	switch v := shape.(type) {
	case physics.Circle:
		return Shape{Name: name, Kind: KindCircle, Center: pointOf(v.Center), Radius: v.Radius}, nil
	case physics.Rectangle:
		return Shape{Name: name, Kind: KindRectangle, Center: pointOf(v.Center), Size: pointOf(v.Size)}, nil
	case physics.OrientedRectangle:
		return Shape{
			Name:     name,
			Kind:     KindOrientedRectangle,
			Center:   pointOf(v.Center()),
			Size:     pointOf(v.Size()),
			Rotation: v.RotationDegrees,
		}, nil
	case physics.LineSegment:
		return Shape{Name: name, Kind: KindSegment, Point1: pointOf(v.Point1), Point2: pointOf(v.Point2)}, nil
	default:
		return Shape{}, fmt.Errorf("shape %q: unsupported type %T", name, shape)
	}
}

// Validate checks every entry, trims names and names unnamed shapes with a
// random UUID. Names must be unique.
func (sc *Scene) Validate() error {
	if err := validation.ValidateShapeCount(len(sc.Shapes)); err != nil {
		return err
	}

	seen := make(map[string]int, len(sc.Shapes))
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		if strings.TrimSpace(s.Name) == "" {
			s.Name = uuid.NewString()
			s.generatedName = true
		}
		name, err := validation.ValidateShapeName(s.Name)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		s.Name = name
		if j, dup := seen[name]; dup {
			return fmt.Errorf("shape %d: name %q already used by shape %d", i, name, j)
		}
		seen[name] = i

		if err := s.validateGeometry(); err != nil {
			return fmt.Errorf("shape %q: %w", name, err)
		}
	}
	return nil
}

func (s Shape) validateGeometry() error {
	switch s.Kind {
	case KindCircle:
		if err := validation.ValidateFinite("center", s.Center.X, s.Center.Y); err != nil {
			return err
		}
		return validation.ValidateRadius(s.Radius)
	case KindRectangle, KindOrientedRectangle:
		return validation.ValidateFinite("geometry", s.Center.X, s.Center.Y, s.Size.X, s.Size.Y, s.Rotation)
	case KindSegment:
		return validation.ValidateSegment(s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y)
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
}

// Decode reads a scene in the given format and validates it
func Decode(r io.Reader, format Format) (*Scene, error) {
	var sc Scene
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&sc)
	default:
		err = yaml.NewDecoder(r).Decode(&sc)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &sc, nil
}

// Encode writes the scene in the given format
func Encode(w io.Writer, sc *Scene, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sc)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Digest returns a 64-bit xxhash of the scene's JSON encoding as 16 hex
// digits. Names generated by Validate are hashed as empty, so decoding the
// same document twice gives the same digest regardless of the source format.
func (sc *Scene) Digest() (string, error) {
	hashed := Scene{Shapes: make([]Shape, len(sc.Shapes))}
	for i, s := range sc.Shapes {
		if s.generatedName {
			s.Name = ""
		}
		hashed.Shapes[i] = s
	}

	h := xxhash.New()
	if err := json.NewEncoder(h).Encode(&hashed); err != nil {
		return "", fmt.Errorf("failed to hash scene: %w", err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Load reads a scene file; .json files are JSON, anything else is YAML
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	return Decode(f, FormatForPath(path))
}

// FormatForPath picks the encoding from a file extension
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}
