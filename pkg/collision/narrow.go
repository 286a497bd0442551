// Package collision answers whether two convex shapes overlap. It drives the
// separating axis primitives of package physics over the full set of axes
// for each shape pair, and runs those tests for whole entity sets through an
// ECS system.
package collision

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-sat/pkg/physics"
)

var (
	// ErrUnsupportedPair is returned by Overlaps for shape types it cannot pair.
	ErrUnsupportedPair = errors.New("unsupported shape pair")
	// ErrDegenerateShape is returned when a shape has no usable axis, such as
	// a segment with coincident endpoints.
	ErrDegenerateShape = errors.New("degenerate shape")
)

// Circles reports whether two circles overlap; touching circles overlap.
func Circles(a, b physics.Circle) bool {
	radiusSum := a.Radius + b.Radius
	return a.Center.Sub(b.Center).LengthSquared() <= radiusSum*radiusSum
}

// Rectangles reports whether two axis-aligned rectangles overlap.
func Rectangles(a, b physics.Rectangle) bool {
	return a.XRange().Sort().Intersects(b.XRange().Sort()) &&
		a.YRange().Sort().Intersects(b.YRange().Sort())
}

// OrientedRectangles reports whether two rotated rectangles overlap.
func OrientedRectangles(a, b physics.OrientedRectangle) bool {
	return !separated(a, b)
}

// RectangleOrientedRectangle reports whether an axis-aligned rectangle and a
// rotated one overlap.
func RectangleOrientedRectangle(r physics.Rectangle, o physics.OrientedRectangle) bool {
	return !separated(physics.NewOrientedRectangle(r, 0), o)
}

// separated tests edges 0 and 1 of each shape, which carry both of its axes.
func separated(a, b physics.Separable) bool {
	for n := uint(0); n < 2; n++ {
		if b.HasSeparatingAxis(a.Edge(n)) || a.HasSeparatingAxis(b.Edge(n)) {
			return true
		}
	}
	return false
}

// CircleRectangle reports whether a circle and an axis-aligned rectangle
// overlap.
func CircleRectangle(c physics.Circle, r physics.Rectangle) bool {
	return c.ContainsPoint(normalized(r).CornerClosestToPoint(c.Center))
}

// CircleOrientedRectangle reports whether a circle and a rotated rectangle
// overlap. The circle is moved into the rectangle's local frame.
func CircleOrientedRectangle(c physics.Circle, o physics.OrientedRectangle) bool {
	local := physics.NewCircle(o.ToLocal(c.Center), c.Radius)
	return CircleRectangle(local, o.ToLocalRectangle())
}

// Lines reports whether two infinite lines meet.
func Lines(a, b physics.Line) bool {
	if a.Direction.IsParallel(b.Direction) {
		return a.IsEquivalent(b)
	}
	return true
}

// LineSegments reports whether two segments touch or cross.
func LineSegments(a, b physics.LineSegment) bool {
	axisA := physics.NewLine(a.Point1, a.Direction())
	if axisA.OnOneSide(b) {
		return false
	}
	axisB := physics.NewLine(b.Point1, b.Direction())
	if axisB.OnOneSide(a) {
		return false
	}
	if a.Direction().IsParallel(b.Direction()) {
		return a.Project(a.Direction()).Intersects(b.Project(a.Direction()))
	}
	return true
}

// SegmentSeparable reports whether a segment overlaps a rectangle shape.
func SegmentSeparable(s physics.LineSegment, shape physics.Separable) bool {
	carrier := physics.NewLine(s.Point1, s.Direction())
	if carrier.OnOneSide(shape.Edge(0)) && carrier.OnOneSide(shape.Edge(1)) && carrier.OnOneSide(shape.Edge(2)) {
		return false
	}
	for n := uint(0); n < 2; n++ {
		edge := shape.Edge(n)
		axis := edge.Direction()
		if !edge.Project(axis).Intersects(s.Project(axis)) {
			return false
		}
	}
	return true
}

// CircleSegment reports whether a circle and a segment overlap.
func CircleSegment(c physics.Circle, s physics.LineSegment) bool {
	if c.ContainsPoint(s.Point1) || c.ContainsPoint(s.Point2) {
		return true
	}
	d := s.Direction()
	p := c.Center.Sub(s.Point1).Project(d)
	nearest := s.Point1.Add(p)
	return c.ContainsPoint(nearest) &&
		p.LengthSquared() <= d.LengthSquared() &&
		p.Dot(d) >= 0
}

// PointInCircle reports whether p lies in c, border included.
func PointInCircle(p physics.Vector2D, c physics.Circle) bool {
	return c.ContainsPoint(p)
}

// PointInRectangle reports whether p lies in r, border included.
func PointInRectangle(p physics.Vector2D, r physics.Rectangle) bool {
	return normalized(r).ContainsPoint(p)
}

// PointInOrientedRectangle reports whether p lies in o, border included.
func PointInOrientedRectangle(p physics.Vector2D, o physics.OrientedRectangle) bool {
	return PointInRectangle(o.ToLocal(p), o.ToLocalRectangle())
}

// normalized returns r with a non-negative size covering the same area.
// Rectangles with a negative size have swapped sides, which the closest
// point and containment tests cannot take.
func normalized(r physics.Rectangle) physics.Rectangle {
	x := r.XRange().Sort()
	y := r.YRange().Sort()
	return physics.RectangleFromBounds(x.Min, y.Min, x.Max, y.Max)
}

// Overlaps dispatches to the matching pair test. Segments with coincident
// endpoints and rectangles without area return ErrDegenerateShape, since
// their edges cannot serve as projection axes.
func Overlaps(a, b physics.Hulled) (bool, error) {
	if err := checkDegenerate(a); err != nil {
		return false, err
	}
	if err := checkDegenerate(b); err != nil {
		return false, err
	}

	switch sa := a.(type) {
	case physics.Circle:
		switch sb := b.(type) {
		case physics.Circle:
			return Circles(sa, sb), nil
		case physics.Rectangle:
			return CircleRectangle(sa, sb), nil
		case physics.OrientedRectangle:
			return CircleOrientedRectangle(sa, sb), nil
		case physics.LineSegment:
			return CircleSegment(sa, sb), nil
		}
	case physics.Rectangle:
		switch sb := b.(type) {
		case physics.Circle:
			return CircleRectangle(sb, sa), nil
		case physics.Rectangle:
			return Rectangles(sa, sb), nil
		case physics.OrientedRectangle:
			return RectangleOrientedRectangle(sa, sb), nil
		case physics.LineSegment:
			return SegmentSeparable(sb, sa), nil
		}
	case physics.OrientedRectangle:
		switch sb := b.(type) {
		case physics.Circle:
			return CircleOrientedRectangle(sb, sa), nil
		case physics.Rectangle:
			return RectangleOrientedRectangle(sb, sa), nil
		case physics.OrientedRectangle:
			return OrientedRectangles(sa, sb), nil
		case physics.LineSegment:
			return SegmentSeparable(sb, sa), nil
		}
	case physics.LineSegment:
		switch sb := b.(type) {
		case physics.Circle:
			return CircleSegment(sb, sa), nil
		case physics.Rectangle:
			return SegmentSeparable(sa, sb), nil
		case physics.OrientedRectangle:
			return SegmentSeparable(sa, sb), nil
		case physics.LineSegment:
			return LineSegments(sa, sb), nil
		}
	}
	return false, fmt.Errorf("%w: %T and %T", ErrUnsupportedPair, a, b)
}

func checkDegenerate(shape physics.Hulled) error {
	switch s := shape.(type) {
	case physics.LineSegment:
		if s.IsDegenerate() {
			return fmt.Errorf("%w: segment %v has coincident endpoints", ErrDegenerateShape, s)
		}
	case physics.OrientedRectangle:
		if s.Width() == 0 || s.Height() == 0 {
			return fmt.Errorf("%w: oriented rectangle %v has no area", ErrDegenerateShape, s)
		}
	case physics.Rectangle:
		if s.Width() == 0 || s.Height() == 0 {
			return fmt.Errorf("%w: rectangle %v has no area", ErrDegenerateShape, s)
		}
	}
	return nil
}
