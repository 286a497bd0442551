// pkg/physics/range.go
package physics

// Range is a closed 1-D interval. Min and Max are not required to be
// ordered at construction; call Sort when the order is unknown.
type Range struct {
	Min float64
	Max float64
}

// NewRange creates a range from two bounds
func NewRange(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Intersects reports whether two sorted ranges overlap. Touching endpoints
// count as overlapping.
func (r Range) Intersects(other Range) bool {
	return other.Min <= r.Max && r.Min <= other.Max
}

// Contains reports whether value lies within the range, bounds included
func (r Range) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

// Sort returns the range with Min <= Max
func (r Range) Sort() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// Hull returns the smallest range containing both ranges
func (r Range) Hull(other Range) Range {
	return Range{
		Min: min(r.Min, other.Min),
		Max: max(r.Max, other.Max),
	}
}

// Length returns the distance between the bounds
func (r Range) Length() float64 {
	return r.Max - r.Min
}
