// pkg/physics/rectangle_test.go
package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangle_Accessors(t *testing.T) {
	center := Vector2D{X: 5, Y: 5}
	size := Vector2D{X: 6, Y: 4}
	r := NewRectangle(center, size)

	assert.Equal(t, center, r.Center)
	assert.Equal(t, size, r.Size)
	assert.Equal(t, 6.0, r.Width())
	assert.Equal(t, 4.0, r.Height())
	assert.Equal(t, 2.0, r.Left())
	assert.Equal(t, 8.0, r.Right())
	assert.Equal(t, 7.0, r.Top())
	assert.Equal(t, 3.0, r.Bottom())
	assert.Equal(t, Vector2D{X: 2, Y: 7}, r.TopLeft())
	assert.Equal(t, Vector2D{X: 8, Y: 7}, r.TopRight())
	assert.Equal(t, Vector2D{X: 8, Y: 3}, r.BottomRight())
	assert.Equal(t, Vector2D{X: 2, Y: 3}, r.BottomLeft())
	assert.Equal(t, Vector2D{X: 3, Y: 2}, r.HalfExtent())
}

func TestRectangle_NegativeSize(t *testing.T) {
	r := NewRectangle(Vector2D{X: 0, Y: 0}, Vector2D{X: -4, Y: 2})

	if r.Left() <= r.Right() {
		t.Errorf("negative width should invert sides, got left=%v right=%v", r.Left(), r.Right())
	}
}

func TestRectangle_Corner(t *testing.T) {
	r := NewRectangle(Vector2D{X: 5, Y: 5}, Vector2D{X: 6, Y: 4})

	tests := []struct {
		name     string
		n        uint
		expected Vector2D
	}{
		{"bottom_right", 0, Vector2D{X: 8, Y: 3}},
		{"top_right", 1, Vector2D{X: 8, Y: 7}},
		{"top_left", 2, Vector2D{X: 2, Y: 7}},
		{"bottom_left", 3, Vector2D{X: 2, Y: 3}},
		{"wraps_to_bottom_right", 4, Vector2D{X: 8, Y: 3}},
		{"wraps_to_bottom_left", 11, Vector2D{X: 2, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Corner(tt.n); got != tt.expected {
				t.Errorf("Corner(%d) = %v, expected %v", tt.n, got, tt.expected)
			}
		})
	}

	assert.Equal(t, r.Right(), r.Corner(0).X)
	assert.Equal(t, r.Bottom(), r.Corner(0).Y)
	assert.Equal(t, r.Top(), r.Corner(1).Y)
	assert.Equal(t, r.Left(), r.Corner(2).X)
}

func TestRectangle_Edge(t *testing.T) {
	r := NewRectangle(Vector2D{X: 5, Y: 5}, Vector2D{X: 6, Y: 4})

	tests := []struct {
		n        uint
		expected LineSegment
	}{
		{0, NewLineSegment(Vector2D{X: 8, Y: 3}, Vector2D{X: 8, Y: 7})},
		{1, NewLineSegment(Vector2D{X: 8, Y: 7}, Vector2D{X: 2, Y: 7})},
		{2, NewLineSegment(Vector2D{X: 2, Y: 7}, Vector2D{X: 2, Y: 3})},
		{3, NewLineSegment(Vector2D{X: 2, Y: 3}, Vector2D{X: 8, Y: 3})},
		{6, NewLineSegment(Vector2D{X: 2, Y: 7}, Vector2D{X: 2, Y: 3})},
	}

	for _, tt := range tests {
		if got := r.Edge(tt.n); got != tt.expected {
			t.Errorf("Edge(%d) = %v, expected %v", tt.n, got, tt.expected)
		}
	}
}

func TestRectangle_CornerClosestToPoint(t *testing.T) {
	r := NewRectangle(Vector2D{X: 5, Y: 5}, Vector2D{X: 6, Y: 4})

	tests := []struct {
		name     string
		point    Vector2D
		expected Vector2D
	}{
		{"top_left", Vector2D{X: 1.9, Y: 7.1}, Vector2D{X: 2, Y: 7}},
		{"top_right", Vector2D{X: 8.1, Y: 7.1}, Vector2D{X: 8, Y: 7}},
		{"bottom_right", Vector2D{X: 8.1, Y: 2.9}, Vector2D{X: 8, Y: 3}},
		{"bottom_left", Vector2D{X: 1.9, Y: 2.9}, Vector2D{X: 2, Y: 3}},
		{"center", Vector2D{X: 5, Y: 5}, Vector2D{X: 5, Y: 5}},
		{"inside", Vector2D{X: 3.5, Y: 6.5}, Vector2D{X: 3.5, Y: 6.5}},
		{"beside_right_edge", Vector2D{X: 20, Y: 4}, Vector2D{X: 8, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.CornerClosestToPoint(tt.point); got != tt.expected {
				t.Errorf("CornerClosestToPoint(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRectangle_ContainsPoint(t *testing.T) {
	r := NewRectangle(Vector2D{X: 5, Y: 5}, Vector2D{X: 6, Y: 4})

	assert.True(t, r.ContainsPoint(Vector2D{X: 5, Y: 5}))
	assert.True(t, r.ContainsPoint(Vector2D{X: 2, Y: 3}))
	assert.False(t, r.ContainsPoint(Vector2D{X: 1.9, Y: 5}))
	assert.False(t, r.ContainsPoint(Vector2D{X: 5, Y: 7.1}))
}

func TestRectangle_HasSeparatingAxis(t *testing.T) {
	r := NewRectangle(Vector2D{X: 5, Y: 5}, Vector2D{X: 6, Y: 4})

	tests := []struct {
		name     string
		axis     LineSegment
		expected bool
	}{
		{"separated_right", NewLineSegment(Vector2D{X: 10, Y: 9}, Vector2D{X: 15, Y: 9}), true},
		{"overlapping_x", NewLineSegment(Vector2D{X: 3, Y: 9}, Vector2D{X: 4, Y: 9}), false},
		{"touching_right_side", NewLineSegment(Vector2D{X: 8, Y: 0}, Vector2D{X: 9, Y: 0}), false},
		{"separated_above", NewLineSegment(Vector2D{X: 0, Y: 8}, Vector2D{X: 0, Y: 10}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HasSeparatingAxis(tt.axis); got != tt.expected {
				t.Errorf("HasSeparatingAxis() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRectangle_EnlargeToPoint(t *testing.T) {
	r := NewRectangle(Vector2D{X: 4, Y: 4}, Vector2D{X: 2, Y: 2})

	enlarged := r.EnlargeToPoint(Vector2D{X: 2, Y: 6})
	assert.Equal(t, 2.0, enlarged.Left())
	assert.Equal(t, 5.0, enlarged.Right())
	assert.Equal(t, 6.0, enlarged.Top())
	assert.Equal(t, 3.0, enlarged.Bottom())

	inside := r.EnlargeToPoint(Vector2D{X: 4.5, Y: 3.5})
	assert.Equal(t, r, inside)
}

func TestRectangle_Hulls(t *testing.T) {
	r := NewRectangle(Vector2D{X: 4, Y: 4}, Vector2D{X: 2, Y: 2})

	c := r.CircleHull()
	assert.Equal(t, r.Center, c.Center)
	assert.InDelta(t, math.Sqrt2, c.Radius, 1e-12)

	wide := NewRectangle(Vector2D{X: 0, Y: 0}, Vector2D{X: 6, Y: 8})
	assert.Equal(t, 5.0, wide.CircleHull().Radius)
	assert.Equal(t, wide.HalfExtent().Length(), wide.CircleHull().Radius)

	assert.Equal(t, r, r.RectangleHull())
}

func TestRectangleFromBounds(t *testing.T) {
	r := RectangleFromBounds(-1, 2, 3, 8)

	assert.Equal(t, Vector2D{X: 1, Y: 5}, r.Center)
	assert.Equal(t, Vector2D{X: 4, Y: 6}, r.Size)
}
