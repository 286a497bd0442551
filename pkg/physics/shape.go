// pkg/physics/shape.go
package physics

// Hulled is implemented by every shape that can be bounded by a rectangle
// and a circle.
type Hulled interface {
	RectangleHull() Rectangle
	CircleHull() Circle
}

// Separable is implemented by shapes that answer the separating axis test
// and expose their edges as candidate axes.
type Separable interface {
	Hulled
	Edge(n uint) LineSegment
	HasSeparatingAxis(axis LineSegment) bool
}

var (
	_ Hulled    = Circle{}
	_ Hulled    = LineSegment{}
	_ Separable = Rectangle{}
	_ Separable = OrientedRectangle{}
)
