package pong

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports whether a and b overlap on both axes.
// Boxes that only share an edge do not intersect.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W && a.Y < b.Y+b.H && b.X < a.X+a.W && b.Y < a.Y+a.H
}

// clamp pins v into [lo, hi]. If the range is empty, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
