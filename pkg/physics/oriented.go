// pkg/physics/oriented.go
package physics

// OrientedRectangle is a rectangle rotated counter-clockwise around its
// center by RotationDegrees.
type OrientedRectangle struct {
	Rectangle       Rectangle
	RotationDegrees float64
}

// NewOrientedRectangle creates an oriented rectangle from an unrotated
// rectangle and a rotation in degrees
func NewOrientedRectangle(rectangle Rectangle, rotationDegrees float64) OrientedRectangle {
	return OrientedRectangle{Rectangle: rectangle, RotationDegrees: rotationDegrees}
}

// Center returns the rotation center
func (o OrientedRectangle) Center() Vector2D { return o.Rectangle.Center }

// Size returns the unrotated width and height
func (o OrientedRectangle) Size() Vector2D { return o.Rectangle.Size }

// Width returns the unrotated width
func (o OrientedRectangle) Width() float64 { return o.Rectangle.Width() }

// Height returns the unrotated height
func (o OrientedRectangle) Height() float64 { return o.Rectangle.Height() }

// HalfExtent returns half the unrotated size
func (o OrientedRectangle) HalfExtent() Vector2D { return o.Rectangle.HalfExtent() }

// localCorners maps a half extent to the unrotated corner offsets, in the
// order 0=(-x,+y), 1=(+x,+y), 2=(+x,-y), 3=(-x,-y).
var localCorners = [4]func(Vector2D) Vector2D{
	func(h Vector2D) Vector2D { return Vector2D{X: -h.X, Y: h.Y} },
	func(h Vector2D) Vector2D { return h },
	func(h Vector2D) Vector2D { return Vector2D{X: h.X, Y: -h.Y} },
	Vector2D.Neg,
}

// toWorld rotates a local offset and moves it to the rectangle's center
func (o OrientedRectangle) toWorld(offset Vector2D) Vector2D {
	return offset.RotateDegrees(o.RotationDegrees).Add(o.Center())
}

// Corner returns rotated corner n mod 4
func (o OrientedRectangle) Corner(n uint) Vector2D {
	return o.toWorld(localCorners[n%4](o.HalfExtent()))
}

// Edge returns rotated edge n mod 4, running from Corner(n) to Corner(n+1)
func (o OrientedRectangle) Edge(n uint) LineSegment {
	return NewLineSegment(o.Corner(n), o.Corner(n+1))
}

// Corners returns all four rotated corners
func (o OrientedRectangle) Corners() [4]Vector2D {
	var corners [4]Vector2D
	for i := range corners {
		corners[i] = o.Corner(uint(i))
	}
	return corners
}

// HasSeparatingAxis reports whether the direction of axis separates the
// rotated rectangle from the axis segment.
func (o OrientedRectangle) HasSeparatingAxis(axis LineSegment) bool {
	return hasSeparatingAxis(o.Edge(0), o.Edge(2), axis)
}

// RectangleHull returns the smallest axis-aligned box containing the
// rotated rectangle
func (o OrientedRectangle) RectangleHull() Rectangle {
	hull := NewRectangle(o.Center(), Vector2D{})
	for _, corner := range o.Corners() {
		hull = hull.EnlargeToPoint(corner)
	}
	return hull
}

// CircleHull returns the circle through all four corners
func (o OrientedRectangle) CircleHull() Circle {
	return NewCircle(o.Center(), o.HalfExtent().Length())
}

// ToLocalRectangle returns the rectangle in its own unrotated frame, with
// its bottom-left corner at the origin.
func (o OrientedRectangle) ToLocalRectangle() Rectangle {
	return NewRectangle(o.HalfExtent(), o.Size())
}

// ToLocal maps a world point into the frame of ToLocalRectangle
func (o OrientedRectangle) ToLocal(p Vector2D) Vector2D {
	return p.Sub(o.Center()).RotateDegrees(-o.RotationDegrees).Add(o.HalfExtent())
}
