// pkg/physics/rectangle.go
package physics

// Rectangle is an axis-aligned box described by its center and its full
// width and height. Negative sizes are kept as given, which swaps
// left/right or top/bottom.
type Rectangle struct {
	Center Vector2D
	Size   Vector2D
}

// NewRectangle creates a rectangle from its center and size
func NewRectangle(center, size Vector2D) Rectangle {
	return Rectangle{Center: center, Size: size}
}

// RectangleFromBounds creates a rectangle spanning [left,right] x [bottom,top]
func RectangleFromBounds(left, bottom, right, top float64) Rectangle {
	sizeX := right - left
	sizeY := top - bottom
	return Rectangle{
		Center: Vector2D{X: left + sizeX*0.5, Y: bottom + sizeY*0.5},
		Size:   Vector2D{X: sizeX, Y: sizeY},
	}
}

// Width returns the horizontal size
func (r Rectangle) Width() float64 { return r.Size.X }

// Height returns the vertical size
func (r Rectangle) Height() float64 { return r.Size.Y }

// HalfExtent returns the offset from the center to the top-right corner
func (r Rectangle) HalfExtent() Vector2D { return r.Size.Scale(0.5) }

// Left returns the x coordinate of the left side
func (r Rectangle) Left() float64 { return r.Center.X - r.Width()*0.5 }

// Right returns the x coordinate of the right side
func (r Rectangle) Right() float64 { return r.Center.X + r.Width()*0.5 }

// Top returns the y coordinate of the top side
func (r Rectangle) Top() float64 { return r.Center.Y + r.Height()*0.5 }

// Bottom returns the y coordinate of the bottom side
func (r Rectangle) Bottom() float64 { return r.Center.Y - r.Height()*0.5 }

// TopLeft returns the corner at (Left, Top)
func (r Rectangle) TopLeft() Vector2D { return Vector2D{X: r.Left(), Y: r.Top()} }

// TopRight returns the corner at (Right, Top)
func (r Rectangle) TopRight() Vector2D { return Vector2D{X: r.Right(), Y: r.Top()} }

// BottomLeft returns the corner at (Left, Bottom)
func (r Rectangle) BottomLeft() Vector2D { return Vector2D{X: r.Left(), Y: r.Bottom()} }

// BottomRight returns the corner at (Right, Bottom)
func (r Rectangle) BottomRight() Vector2D { return Vector2D{X: r.Right(), Y: r.Bottom()} }

// XRange returns the horizontal extent
func (r Rectangle) XRange() Range { return NewRange(r.Left(), r.Right()) }

// YRange returns the vertical extent
func (r Rectangle) YRange() Range { return NewRange(r.Bottom(), r.Top()) }

// rectangleCorners lists corner accessors clockwise from the bottom-right.
var rectangleCorners = [4]func(Rectangle) Vector2D{
	Rectangle.BottomRight,
	Rectangle.TopRight,
	Rectangle.TopLeft,
	Rectangle.BottomLeft,
}

// Corner returns corner n mod 4: bottom-right, top-right, top-left,
// bottom-left.
func (r Rectangle) Corner(n uint) Vector2D {
	return rectangleCorners[n%4](r)
}

// Edge returns edge n mod 4, running from Corner(n) to Corner(n+1).
// Edge 0 is the right side.
func (r Rectangle) Edge(n uint) LineSegment {
	return NewLineSegment(r.Corner(n), r.Corner(n+1))
}

// CornerClosestToPoint returns the point of the rectangle nearest to p.
// Points inside the rectangle are returned unchanged.
func (r Rectangle) CornerClosestToPoint(p Vector2D) Vector2D {
	return Vector2D{
		X: clamp(p.X, r.Left(), r.Right()),
		Y: clamp(p.Y, r.Bottom(), r.Top()),
	}
}

// ContainsPoint reports whether p lies inside the rectangle or on its border
func (r Rectangle) ContainsPoint(p Vector2D) bool {
	return r.XRange().Contains(p.X) && r.YRange().Contains(p.Y)
}

// HasSeparatingAxis reports whether the direction of axis separates the
// rectangle from the axis segment. Opposite edges 0 and 2 together span the
// whole rectangle along any direction.
func (r Rectangle) HasSeparatingAxis(axis LineSegment) bool {
	return hasSeparatingAxis(r.Edge(0), r.Edge(2), axis)
}

// EnlargeToPoint returns the smallest rectangle containing both r and p
func (r Rectangle) EnlargeToPoint(p Vector2D) Rectangle {
	return RectangleFromBounds(
		min(r.Left(), p.X),
		min(r.Bottom(), p.Y),
		max(r.Right(), p.X),
		max(r.Top(), p.Y),
	)
}

// RectangleHull returns the rectangle itself
func (r Rectangle) RectangleHull() Rectangle { return r }

// CircleHull returns the circle through all four corners
func (r Rectangle) CircleHull() Circle {
	return NewCircle(r.Center, r.HalfExtent().Length())
}

func hasSeparatingAxis(edgeA, edgeB, axis LineSegment) bool {
	n := axis.Point1.Sub(axis.Point2)
	axisRange := axis.Project(n)
	shapeRange := edgeA.Project(n).Hull(edgeB.Project(n))
	return !axisRange.Intersects(shapeRange)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
