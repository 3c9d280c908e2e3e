package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothPath_ShortSequencesUnchanged(t *testing.T) {
	assert.Empty(t, SmoothPath(nil))
	one := []Point{{X: 1, Y: 2}}
	assert.Equal(t, one, SmoothPath(one))
	two := []Point{{X: 0, Y: 0}, {X: 20, Y: 0}}
	assert.Equal(t, two, SmoothPath(two))
}

func TestSmoothPath_CollinearRunCollapses(t *testing.T) {
	walk := []Point{{0, 0}, {20, 0}, {40, 0}, {60, 0}}
	assert.Equal(t, []Point{{0, 0}, {60, 0}}, SmoothPath(walk))
}

func TestSmoothPath_KeepsTurningPoints(t *testing.T) {
	walk := []Point{{0, 0}, {20, 0}, {40, 0}, {40, 20}, {40, 40}, {60, 40}}
	assert.Equal(t, []Point{{0, 0}, {40, 0}, {40, 40}, {60, 40}}, SmoothPath(walk))
}

func TestSmoothPath_Idempotent(t *testing.T) {
	walk := []Point{{0, 0}, {20, 0}, {40, 0}, {40, 20}, {40, 40}, {60, 40}, {80, 40}}
	once := SmoothPath(walk)
	twice := SmoothPath(once)
	assert.Equal(t, once, twice)
}

func TestToSVGPath(t *testing.T) {
	assert.Equal(t, "", ToSVGPath(nil))
	assert.Equal(t, "M 5 10", ToSVGPath([]Point{{5, 10}}))
	assert.Equal(t, "M 0 0 L 20 0 L 20 40", ToSVGPath([]Point{{0, 0}, {20, 0}, {20, 40}}))
}
