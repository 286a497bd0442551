// pkg/physics/line.go
package physics

import "gonum.org/v1/gonum/spatial/r2"

// LineSegment is the bounded segment between two points. Zero-length
// segments are allowed but cannot be used as projection axes.
type LineSegment struct {
	Point1 Vector2D
	Point2 Vector2D
}

// NewLineSegment creates a segment between two points
func NewLineSegment(point1, point2 Vector2D) LineSegment {
	return LineSegment{Point1: point1, Point2: point2}
}

// Direction returns the vector from Point1 to Point2
func (s LineSegment) Direction() Vector2D {
	return s.Point2.Sub(s.Point1)
}

// Length returns the distance between the endpoints
func (s LineSegment) Length() float64 {
	return s.Point1.Distance(s.Point2)
}

// IsDegenerate reports whether both endpoints coincide
func (s LineSegment) IsDegenerate() bool {
	return s.Point1 == s.Point2
}

// Project maps the segment onto the given direction and returns the sorted
// interval it covers. A zero direction yields NaN bounds.
func (s LineSegment) Project(direction Vector2D) Range {
	unit := r2.Unit(direction.R2())
	return NewRange(
		r2.Dot(unit, s.Point1.R2()),
		r2.Dot(unit, s.Point2.R2()),
	).Sort()
}

// RectangleHull returns the axis-aligned box spanned by the endpoints
func (s LineSegment) RectangleHull() Rectangle {
	return NewRectangle(s.Point1, Vector2D{}).EnlargeToPoint(s.Point2)
}

// CircleHull returns the circle having the segment as diameter
func (s LineSegment) CircleHull() Circle {
	return NewCircle(s.Point1.Add(s.Point2).Scale(0.5), s.Length()/2)
}

// Line is an infinite line through Base along Direction.
type Line struct {
	Base      Vector2D
	Direction Vector2D
}

// NewLine creates a line from a point on it and its direction
func NewLine(base, direction Vector2D) Line {
	return Line{Base: base, Direction: direction}
}

// OnOneSide reports whether both endpoints of segment lie strictly on the
// same side of the line. An endpoint on the line gives false.
func (l Line) OnOneSide(segment LineSegment) bool {
	n := l.Direction.Rotate90()
	d1 := segment.Point1.Sub(l.Base)
	d2 := segment.Point2.Sub(l.Base)
	return n.Dot(d1)*n.Dot(d2) > 0
}

// IsEquivalent reports whether both lines are collinear
func (l Line) IsEquivalent(other Line) bool {
	if !l.Direction.IsParallel(other.Direction) {
		return false
	}
	return l.Base.Sub(other.Base).IsParallel(l.Direction)
}
