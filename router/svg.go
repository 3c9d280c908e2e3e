package router

import (
	"fmt"
	"strings"
)

// ToSVGPath serializes a point sequence into an SVG path description:
// a move to the first point followed by one line segment per subsequent
// point. Zero points yield an empty string, a single point a bare move.
func ToSVGPath(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %g %g", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		fmt.Fprintf(&b, " L %g %g", p.X, p.Y)
	}
	return b.String()
}
