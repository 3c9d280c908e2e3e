// Package router computes orthogonal connector paths between diagram
// entities. The grid pathfinder avoids entity bounding boxes; the
// direct route is a cheaper policy that ignores obstacles.
package router

// DefaultCellSize is the routing grid resolution in canvas units.
const DefaultCellSize = 20.0

// Point is a position in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an entity bounding box in canvas coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds is the routable canvas area, anchored at the origin.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// contains reports whether the point falls inside the rect expanded by
// the given buffer on all sides. The buffer edge itself counts as
// outside, so routes may run along it.
func (r Rect) contains(x, y, buffer float64) bool {
	return x > r.X-buffer && x < r.X+r.Width+buffer &&
		y > r.Y-buffer && y < r.Y+r.Height+buffer
}
