// Package layout derives diagram geometry from the schema model: entity
// card sizes, connector point locations and an automatic grid
// placement. The router consumes only the positions and sizes produced
// here; it never sees schema data.
package layout

import (
	"math"

	"github.com/ridoystarlord/schemaviz/router"
	"github.com/ridoystarlord/schemaviz/schema"
)

const (
	HeaderHeight  = 36.0
	RowHeight     = 28.0
	MinWidth      = 180.0
	charWidth     = 8.0
	namePadding   = 48.0
	layoutMargin  = 60.0
	layoutSpacing = 80.0
)

// EntitySize computes the rendered card size for a table: a header plus
// one row per column, wide enough for the longest name/type pair.
func EntitySize(t schema.Table) (width, height float64) {
	width = MinWidth
	for _, c := range t.Columns {
		w := float64(len(c.Name)+len(c.Type))*charWidth + namePadding
		if w > width {
			width = w
		}
	}
	height = HeaderHeight + float64(len(t.Columns))*RowHeight
	return width, height
}

// EntityRect places a table's card at the given position.
func EntityRect(t schema.Table, pos router.Point) router.Rect {
	w, h := EntitySize(t)
	return router.Rect{X: pos.X, Y: pos.Y, Width: w, Height: h}
}

// ConnectorY returns the vertical center of a column row. Out-of-range
// indexes fall back to the card's vertical center.
func ConnectorY(rect router.Rect, columnIndex int) float64 {
	rows := (rect.Height - HeaderHeight) / RowHeight
	if columnIndex < 0 || float64(columnIndex) >= rows {
		return rect.Y + rect.Height/2
	}
	return rect.Y + HeaderHeight + float64(columnIndex)*RowHeight + RowHeight/2
}

// ConnectorPoints returns the left and right attachment points for a
// column row, on the entity boundary.
func ConnectorPoints(rect router.Rect, columnIndex int) (left, right router.Point) {
	y := ConnectorY(rect, columnIndex)
	return router.Point{X: rect.X, Y: y}, router.Point{X: rect.X + rect.Width, Y: y}
}

// AutoLayout places every table on a square-ish grid inside the bounds.
// Spacing is uniform, based on the largest card, so freshly imported
// schemas never start out overlapping.
func AutoLayout(s *schema.Schema, bounds router.Bounds) map[string]router.Point {
	positions := make(map[string]router.Point, len(s.Tables))
	if len(s.Tables) == 0 {
		return positions
	}

	var maxW, maxH float64
	for _, t := range s.Tables {
		w, h := EntitySize(t)
		maxW = math.Max(maxW, w)
		maxH = math.Max(maxH, h)
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(s.Tables)))))
	if bounds.Width > 0 {
		if fit := int((bounds.Width - layoutMargin) / (maxW + layoutSpacing)); fit > 0 && fit < cols {
			cols = fit
		}
	}

	for i, t := range s.Tables {
		col := i % cols
		row := i / cols
		positions[t.ID] = router.Point{
			X: layoutMargin + float64(col)*(maxW+layoutSpacing),
			Y: layoutMargin + float64(row)*(maxH+layoutSpacing),
		}
	}
	return positions
}

// Obstacles builds the routing obstacle set for one relationship: every
// placed entity except the two endpoint tables.
func Obstacles(s *schema.Schema, positions map[string]router.Point, fromID, toID string) []router.Rect {
	var rects []router.Rect
	for _, t := range s.Tables {
		if t.ID == fromID || t.ID == toID {
			continue
		}
		pos, ok := positions[t.ID]
		if !ok {
			continue
		}
		rects = append(rects, EntityRect(t, pos))
	}
	return rects
}
