// pkg/physics/vector.go
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerance is the absolute and relative margin used by approximate
// comparisons such as IsParallel.
const Tolerance = 1e-9

// Vector2D represents a 2D vector with x and y components.
// It is used both as a point and as a free vector.
type Vector2D struct {
	X float64
	Y float64
}

// NewVector creates a vector from its components
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// FromR2 converts a gonum r2.Vec into a Vector2D
func FromR2(v r2.Vec) Vector2D {
	return Vector2D{X: v.X, Y: v.Y}
}

// R2 converts the vector into a gonum r2.Vec
func (v Vector2D) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Neg returns the vector pointing the opposite way
func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Distance returns the distance between two points
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle creates a vector from an angle (radians) and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Rotate rotates the vector counter-clockwise by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	r := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{v.X, v.Y})
	return Vector2D{X: r.X(), Y: r.Y()}
}

// RotateDegrees rotates the vector counter-clockwise by angle (in degrees)
func (v Vector2D) RotateDegrees(angle float64) Vector2D {
	return v.Rotate(mgl64.DegToRad(angle))
}

// Rotate90 rotates the vector by exactly 90 degrees counter-clockwise.
// The result is the left-hand normal of a direction.
func (v Vector2D) Rotate90() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// IsParallel reports whether v and other point along the same or opposite
// directions, within Tolerance.
func (v Vector2D) IsParallel(other Vector2D) bool {
	return ApproxZero(v.Rotate90().Dot(other))
}

// Project returns the projection of v onto the given vector. Projecting onto
// the zero vector returns the zero vector unchanged.
func (v Vector2D) Project(onto Vector2D) Vector2D {
	d := onto.Dot(onto)
	if d > 0 {
		return onto.Scale(v.Dot(onto) / d)
	}
	return onto
}

// ApproxEqual compares two vectors component-wise within Tolerance
func (v Vector2D) ApproxEqual(other Vector2D) bool {
	return ApproxEqual(v.X, other.X) && ApproxEqual(v.Y, other.Y)
}

// ApproxEqual compares two scalars within Tolerance
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Tolerance, Tolerance)
}

// ApproxZero reports whether f is zero within Tolerance
func ApproxZero(f float64) bool {
	return ApproxEqual(0, f)
}
