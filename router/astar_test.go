package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPath_OpenField(t *testing.T) {
	start := Point{X: 0, Y: 100}
	end := Point{X: 400, Y: 100}
	bounds := Bounds{Width: 1000, Height: 1000}

	path := FindPath(start, end, nil, bounds)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
}

func TestFindPath_AvoidsBufferedObstacle(t *testing.T) {
	start := Point{X: 0, Y: 200}
	end := Point{X: 600, Y: 200}
	obstacle := Rect{X: 250, Y: 100, Width: 100, Height: 200}
	bounds := Bounds{Width: 1000, Height: 1000}

	path := FindPath(start, end, []Rect{obstacle}, bounds)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])

	// No interior node may fall strictly inside the buffered bounds.
	buffer := DefaultCellSize
	for _, p := range path[1 : len(path)-1] {
		inside := p.X > obstacle.X-buffer && p.X < obstacle.X+obstacle.Width+buffer &&
			p.Y > obstacle.Y-buffer && p.Y < obstacle.Y+obstacle.Height+buffer
		assert.False(t, inside, "point %v crosses buffered obstacle", p)
	}
}

func TestFindPath_InfeasibleFallsBackToSegment(t *testing.T) {
	// The obstacle swallows the start and everything around it.
	start := Point{X: 100, Y: 100}
	end := Point{X: 900, Y: 100}
	wall := Rect{X: 0, Y: 0, Width: 300, Height: 300}
	bounds := Bounds{Width: 1000, Height: 1000}

	path := FindPath(start, end, []Rect{wall}, bounds)
	assert.Equal(t, []Point{start, end}, path)
}

func TestFindPath_EndOutsideBoundsFallsBack(t *testing.T) {
	start := Point{X: 50, Y: 50}
	end := Point{X: 500, Y: 50}
	bounds := Bounds{Width: 100, Height: 100}

	path := FindPath(start, end, nil, bounds)
	assert.Equal(t, []Point{start, end}, path)
}

func TestFindPath_CoincidentEndpoints(t *testing.T) {
	p := Point{X: 40, Y: 40}
	path := FindPath(p, p, nil, Bounds{Width: 200, Height: 200})
	require.Len(t, path, 2)
	assert.Equal(t, p, path[0])
	assert.Equal(t, p, path[1])
}

func TestFindPath_CustomCellSize(t *testing.T) {
	start := Point{X: 0, Y: 50}
	end := Point{X: 200, Y: 50}
	path := FindPathCell(start, end, nil, Bounds{Width: 400, Height: 400}, 10)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
}

func TestFindPath_IndependentCalls(t *testing.T) {
	// Two identical searches share no state and agree exactly.
	start := Point{X: 0, Y: 200}
	end := Point{X: 600, Y: 200}
	obstacle := Rect{X: 250, Y: 100, Width: 100, Height: 200}
	bounds := Bounds{Width: 1000, Height: 1000}

	a := FindPath(start, end, []Rect{obstacle}, bounds)
	b := FindPath(start, end, []Rect{obstacle}, bounds)
	assert.Equal(t, a, b)
}
