package layout

import (
	"github.com/ridoystarlord/schemaviz/router"
	"github.com/ridoystarlord/schemaviz/schema"
)

// Route is one routed relationship ready for rendering.
type Route struct {
	RelationshipID string         `json:"relationshipId"`
	Points         []router.Point `json:"points"`
	Path           string         `json:"path"`
}

// RouteRelationship routes a single relationship over the placed
// diagram: connector sides are chosen by comparing entity centers, the
// grid pathfinder avoids every other placed entity, and the raw walk is
// simplified before emission. Endpoint tables without a position fall
// back to the origin rather than failing.
func RouteRelationship(s *schema.Schema, positions map[string]router.Point, rel schema.Relationship, bounds router.Bounds, cell float64) Route {
	fromID := schema.TableID(rel.FromTable)
	toID := schema.TableID(rel.ToTable)

	start, end := connectorPair(s, positions, rel)
	obstacles := Obstacles(s, positions, fromID, toID)

	points := router.SmoothPath(router.FindPathCell(start, end, obstacles, bounds, cell))
	return Route{
		RelationshipID: rel.ID,
		Points:         points,
		Path:           router.ToSVGPath(points),
	}
}

// RouteAll routes every relationship in the schema. Each call is
// independent; total cost scales linearly with the edge count.
func RouteAll(s *schema.Schema, positions map[string]router.Point, bounds router.Bounds, cell float64) []Route {
	routes := make([]Route, 0, len(s.Relationships))
	for _, rel := range s.Relationships {
		routes = append(routes, RouteRelationship(s, positions, rel, bounds, cell))
	}
	return routes
}

// DirectRelationship renders the cheaper no-avoidance policy for one
// relationship.
func DirectRelationship(s *schema.Schema, positions map[string]router.Point, rel schema.Relationship) string {
	fromRect, fromIdx := endpointRect(s, positions, rel.FromTable, rel.FromColumn)
	toRect, toIdx := endpointRect(s, positions, rel.ToTable, rel.ToColumn)
	return router.DirectRoute(fromRect, toRect, ConnectorY(fromRect, fromIdx), ConnectorY(toRect, toIdx))
}

func connectorPair(s *schema.Schema, positions map[string]router.Point, rel schema.Relationship) (start, end router.Point) {
	fromRect, fromIdx := endpointRect(s, positions, rel.FromTable, rel.FromColumn)
	toRect, toIdx := endpointRect(s, positions, rel.ToTable, rel.ToColumn)

	fromLeft, fromRight := ConnectorPoints(fromRect, fromIdx)
	toLeft, toRight := ConnectorPoints(toRect, toIdx)
	if fromRect.CenterX() < toRect.CenterX() {
		return fromRight, toLeft
	}
	return fromLeft, toRight
}

func endpointRect(s *schema.Schema, positions map[string]router.Point, tableName, columnName string) (router.Rect, int) {
	table, ok := s.TableByID(tableName)
	if !ok {
		return router.Rect{}, -1
	}
	pos := positions[table.ID]
	return EntityRect(*table, pos), table.ColumnIndex(columnName)
}
