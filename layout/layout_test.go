package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/schemaviz/router"
	"github.com/ridoystarlord/schemaviz/schema"
)

func twoTableSchema() *schema.Schema {
	users := schema.NewTable("users")
	users.Columns = []schema.Column{
		{Name: "id", Type: "uuid", PrimaryKey: true},
		{Name: "name", Type: "text", Nullable: true},
	}
	posts := schema.NewTable("posts")
	posts.Columns = []schema.Column{
		{Name: "id", Type: "uuid", PrimaryKey: true},
		{Name: "user_id", Type: "uuid", ForeignKey: true, Nullable: true,
			References: &schema.Reference{Table: "users", Column: "id"}},
	}
	return &schema.Schema{
		Tables:        []schema.Table{users, posts},
		Relationships: []schema.Relationship{schema.NewRelationship("posts", "user_id", "users", "id")},
	}
}

func TestEntitySize(t *testing.T) {
	table := schema.NewTable("users")
	table.Columns = []schema.Column{{Name: "id", Type: "uuid"}, {Name: "name", Type: "text"}}

	w, h := EntitySize(table)
	assert.Equal(t, MinWidth, w)
	assert.Equal(t, HeaderHeight+2*RowHeight, h)

	table.Columns = append(table.Columns, schema.Column{
		Name: "a_very_long_column_name_indeed", Type: "character varying(255)",
	})
	w2, _ := EntitySize(table)
	assert.Greater(t, w2, MinWidth)
}

func TestConnectorY(t *testing.T) {
	rect := router.Rect{X: 0, Y: 100, Width: 180, Height: HeaderHeight + 3*RowHeight}
	assert.Equal(t, 100+HeaderHeight+RowHeight/2, ConnectorY(rect, 0))
	assert.Equal(t, 100+HeaderHeight+RowHeight*2+RowHeight/2, ConnectorY(rect, 2))
	// Out-of-range indexes anchor at the card center.
	assert.Equal(t, 100+rect.Height/2, ConnectorY(rect, -1))
	assert.Equal(t, 100+rect.Height/2, ConnectorY(rect, 9))
}

func TestConnectorPoints(t *testing.T) {
	rect := router.Rect{X: 50, Y: 0, Width: 200, Height: HeaderHeight + RowHeight}
	left, right := ConnectorPoints(rect, 0)
	assert.Equal(t, 50.0, left.X)
	assert.Equal(t, 250.0, right.X)
	assert.Equal(t, left.Y, right.Y)
}

func TestAutoLayout_NoOverlap(t *testing.T) {
	s := &schema.Schema{}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		table := schema.NewTable(name)
		table.Columns = []schema.Column{{Name: "id", Type: "int"}}
		s.Tables = append(s.Tables, table)
	}

	positions := AutoLayout(s, router.Bounds{Width: 2000, Height: 2000})
	require.Len(t, positions, 5)

	var rects []router.Rect
	for _, table := range s.Tables {
		rects = append(rects, EntityRect(table, positions[table.ID]))
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			overlap := rects[i].X < rects[j].X+rects[j].Width &&
				rects[j].X < rects[i].X+rects[i].Width &&
				rects[i].Y < rects[j].Y+rects[j].Height &&
				rects[j].Y < rects[i].Y+rects[i].Height
			assert.False(t, overlap, "tables %d and %d overlap", i, j)
		}
	}
}

func TestObstacles_ExcludesEndpoints(t *testing.T) {
	s := twoTableSchema()
	extra := schema.NewTable("tags")
	extra.Columns = []schema.Column{{Name: "id", Type: "int"}}
	s.Tables = append(s.Tables, extra)

	positions := AutoLayout(s, router.Bounds{Width: 2000, Height: 2000})
	obstacles := Obstacles(s, positions, "posts", "users")
	// Only the uninvolved table remains an obstacle.
	require.Len(t, obstacles, 1)
}

func TestRouteRelationship_EndToEnd(t *testing.T) {
	s := twoTableSchema()
	positions := AutoLayout(s, router.Bounds{Width: 2000, Height: 2000})
	bounds := router.Bounds{Width: 2000, Height: 2000}

	route := RouteRelationship(s, positions, s.Relationships[0], bounds, router.DefaultCellSize)
	assert.Equal(t, s.Relationships[0].ID, route.RelationshipID)
	require.GreaterOrEqual(t, len(route.Points), 2)
	assert.NotEmpty(t, route.Path)
	assert.Contains(t, route.Path, "M ")
}

func TestRouteAll(t *testing.T) {
	s := twoTableSchema()
	positions := AutoLayout(s, router.Bounds{Width: 2000, Height: 2000})
	routes := RouteAll(s, positions, router.Bounds{Width: 2000, Height: 2000}, router.DefaultCellSize)
	require.Len(t, routes, 1)
}

func TestDirectRelationship(t *testing.T) {
	s := twoTableSchema()
	positions := AutoLayout(s, router.Bounds{Width: 2000, Height: 2000})
	path := DirectRelationship(s, positions, s.Relationships[0])
	assert.Contains(t, path, "M ")
	assert.Contains(t, path, "L ")
}
