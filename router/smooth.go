package router

// SmoothPath drops interior points that do not change travel direction,
// reducing a dense grid walk to its turning points. A point is
// redundant when the displacement signs before and after it match on
// both axes. Sequences shorter than 3 points come back unchanged.
// Applying SmoothPath to its own output is a no-op.
func SmoothPath(points []Point) []Point {
	if len(points) < 3 {
		return points
	}
	out := []Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		prev := out[len(out)-1]
		dx1, dy1 := sign(points[i].X-prev.X), sign(points[i].Y-prev.Y)
		dx2, dy2 := sign(points[i+1].X-points[i].X), sign(points[i+1].Y-points[i].Y)
		if dx1 == dx2 && dy1 == dy2 {
			continue
		}
		out = append(out, points[i])
	}
	return append(out, points[len(points)-1])
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
