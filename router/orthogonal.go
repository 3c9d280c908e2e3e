package router

import (
	"fmt"
	"math"
	"strings"
)

// cornerRadius rounds the two turns of a direct route.
const cornerRadius = 8.0

// DirectRoute computes an H-V-H route with rounded corners between two
// entities without obstacle avoidance. The exit side of each entity is
// chosen by comparing entity centers so the shorter horizontal run is
// preferred. fromY and toY are the connector row heights in canvas
// coordinates. This is a distinct, cheaper routing policy; it is not a
// shortcut into the grid pathfinder.
func DirectRoute(from, to Rect, fromY, toY float64) string {
	var sx, ex float64
	if from.CenterX() < to.CenterX() {
		sx = from.X + from.Width
		ex = to.X
	} else {
		sx = from.X
		ex = to.X + to.Width
	}
	mx := (sx + ex) / 2

	if fromY == toY {
		return fmt.Sprintf("M %g %g L %g %g", sx, fromY, ex, toY)
	}

	// Corner radius shrinks on short runs so the arcs never overlap.
	r := cornerRadius
	r = math.Min(r, math.Abs(mx-sx))
	r = math.Min(r, math.Abs(ex-mx))
	r = math.Min(r, math.Abs(toY-fromY)/2)

	hdir1 := dir(mx - sx)
	hdir2 := dir(ex - mx)
	vdir := dir(toY - fromY)

	var b strings.Builder
	fmt.Fprintf(&b, "M %g %g", sx, fromY)
	fmt.Fprintf(&b, " L %g %g", mx-r*hdir1, fromY)
	fmt.Fprintf(&b, " Q %g %g %g %g", mx, fromY, mx, fromY+r*vdir)
	fmt.Fprintf(&b, " L %g %g", mx, toY-r*vdir)
	fmt.Fprintf(&b, " Q %g %g %g %g", mx, toY, mx+r*hdir2, toY)
	fmt.Fprintf(&b, " L %g %g", ex, toY)
	return b.String()
}

func dir(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
