package router

import "math"

type gridKey struct {
	x, y int
}

type gridNode struct {
	x, y   int
	g, f   float64
	parent *gridNode
	closed bool
}

// FindPath routes from start to end around the given obstacles using
// the default grid resolution. It never fails: when no route exists the
// direct two-point segment comes back instead.
func FindPath(start, end Point, obstacles []Rect, bounds Bounds) []Point {
	return FindPathCell(start, end, obstacles, bounds, DefaultCellSize)
}

// FindPathCell is FindPath with an explicit grid cell size.
//
// The search is A* over an implicit uniform grid: endpoints snap to the
// nearest grid node, expansion is 4-directional with edge cost equal to
// the cell size, and the heuristic is Manhattan distance to the snapped
// goal. A node within one cell of the goal on both axes counts as
// reached. Obstacles are inflated by one cell so routes never hug
// entity edges. Each call builds its own search state, so concurrent
// calls are independent.
func FindPathCell(start, end Point, obstacles []Rect, bounds Bounds, cell float64) []Point {
	if cell <= 0 {
		cell = DefaultCellSize
	}

	sx, sy := snap(start.X, cell), snap(start.Y, cell)
	gx, gy := snap(end.X, cell), snap(end.Y, cell)

	nodes := make(map[gridKey]*gridNode)
	startNode := &gridNode{x: sx, y: sy}
	startNode.f = manhattan(sx, sy, gx, gy, cell)
	nodes[gridKey{sx, sy}] = startNode
	open := []*gridNode{startNode}

	var goal *gridNode
	for len(open) > 0 {
		// Linear scan for the lowest total cost; the first node found
		// wins ties. Fine at diagram scale.
		best := 0
		for i := 1; i < len(open); i++ {
			if open[i].f < open[best].f {
				best = i
			}
		}
		current := open[best]
		open = append(open[:best], open[best+1:]...)
		current.closed = true

		if abs(current.x-gx) <= 1 && abs(current.y-gy) <= 1 {
			goal = current
			break
		}

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := current.x+d[0], current.y+d[1]
			px, py := float64(nx)*cell, float64(ny)*cell
			if px < 0 || py < 0 || px > bounds.Width || py > bounds.Height {
				continue
			}
			if blocked(px, py, obstacles, cell) {
				continue
			}
			g := current.g + cell
			key := gridKey{nx, ny}
			if n, ok := nodes[key]; ok {
				// Relax in place instead of re-inserting.
				if !n.closed && g < n.g {
					n.g = g
					n.f = g + manhattan(nx, ny, gx, gy, cell)
					n.parent = current
				}
				continue
			}
			n := &gridNode{x: nx, y: ny, g: g, parent: current}
			n.f = g + manhattan(nx, ny, gx, gy, cell)
			nodes[key] = n
			open = append(open, n)
		}
	}

	if goal == nil {
		// No feasible route: a straight overlapping line beats no line.
		return []Point{start, end}
	}
	return reconstruct(goal, start, end, cell)
}

// reconstruct walks parent links back to the start and re-anchors the
// endpoints to the exact requested points.
func reconstruct(goal *gridNode, start, end Point, cell float64) []Point {
	var points []Point
	for n := goal; n != nil; n = n.parent {
		points = append(points, Point{X: float64(n.x) * cell, Y: float64(n.y) * cell})
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	if len(points) < 2 {
		return []Point{start, end}
	}
	points[0] = start
	points[len(points)-1] = end
	return points
}

func blocked(x, y float64, obstacles []Rect, buffer float64) bool {
	for _, r := range obstacles {
		if r.contains(x, y, buffer) {
			return true
		}
	}
	return false
}

func snap(v, cell float64) int {
	return int(math.Round(v / cell))
}

func manhattan(x, y, gx, gy int, cell float64) float64 {
	return float64(abs(x-gx)+abs(y-gy)) * cell
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
