// pkg/physics/circle.go
package physics

// Circle represents a circular shape. Radius is expected to be
// non-negative but is not checked.
type Circle struct {
	Center Vector2D
	Radius float64
}

// NewCircle creates a circle from its center and radius
func NewCircle(center Vector2D, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// RectangleHull returns the bounding square of the circle
func (c Circle) RectangleHull() Rectangle {
	return NewRectangle(c.Center, Vector2D{X: c.Radius * 2, Y: c.Radius * 2})
}

// CircleHull returns the circle itself
func (c Circle) CircleHull() Circle { return c }

// ContainsPoint reports whether p lies inside the circle or on its border
func (c Circle) ContainsPoint(p Vector2D) bool {
	return c.Center.Sub(p).LengthSquared() <= c.Radius*c.Radius
}
