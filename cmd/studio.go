package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ridoystarlord/schemaviz/document"
	"github.com/ridoystarlord/schemaviz/layout"
	"github.com/ridoystarlord/schemaviz/router"
)

var studioCmd = &cobra.Command{
	Use:   "studio <diagram file>",
	Short: "Launch a local web viewer for a diagram document",
	Long: `Launch Schemaviz Studio - a local web viewer that renders the diagram
document with routed connector paths.

The interface will be available at http://localhost:4600 by default.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := document.Load(args[0])
		if err != nil {
			fmt.Printf("❌ Error loading document: %v\n", err)
			os.Exit(1)
		}

		port := viper.GetString("studio.port")
		if port == "" {
			port = "4600"
		}

		fmt.Printf("🚀 Starting Schemaviz Studio on http://localhost:%s\n", port)
		fmt.Println("Press Ctrl+C to stop the server")

		if err := startStudioServer(doc, port); err != nil {
			fmt.Printf("❌ Studio server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	studioCmd.Flags().String("port", "4600", "Port to run the web server on")
	studioCmd.Flags().Float64("cell", router.DefaultCellSize, "Routing grid cell size")
	studioCmd.Flags().Float64("width", 2000, "Canvas width")
	studioCmd.Flags().Float64("height", 2000, "Canvas height")
	viper.BindPFlag("studio.port", studioCmd.Flags().Lookup("port"))
	viper.BindPFlag("studio.cell", studioCmd.Flags().Lookup("cell"))
	viper.BindPFlag("studio.width", studioCmd.Flags().Lookup("width"))
	viper.BindPFlag("studio.height", studioCmd.Flags().Lookup("height"))
}

// studioEntity is one table card with its resolved geometry.
type studioEntity struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Rect   router.Rect `json:"rect"`
	Fields []string    `json:"fields"`
}

func startStudioServer(doc *document.Document, port string) error {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	engine.Use(cors.Default())

	positions := toRouterPositions(doc.Positions)
	bounds := router.Bounds{
		Width:  viper.GetFloat64("studio.width"),
		Height: viper.GetFloat64("studio.height"),
	}
	cell := viper.GetFloat64("studio.cell")

	engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(studioHTML))
	})

	engine.GET("/api/schema", func(c *gin.Context) {
		c.JSON(http.StatusOK, doc.Schema)
	})

	engine.GET("/api/entities", func(c *gin.Context) {
		entities := make([]studioEntity, 0, len(doc.Schema.Tables))
		for _, t := range doc.Schema.Tables {
			fields := make([]string, 0, len(t.Columns))
			for _, col := range t.Columns {
				fields = append(fields, fmt.Sprintf("%s %s", col.Name, col.Type))
			}
			entities = append(entities, studioEntity{
				ID:     t.ID,
				Name:   t.Name,
				Rect:   layout.EntityRect(t, positions[t.ID]),
				Fields: fields,
			})
		}
		c.JSON(http.StatusOK, entities)
	})

	engine.GET("/api/routes", func(c *gin.Context) {
		c.JSON(http.StatusOK, layout.RouteAll(doc.Schema, positions, bounds, cell))
	})

	return engine.Run(":" + port)
}

const studioHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Schemaviz Studio</title>
<style>
  body { margin: 0; font-family: sans-serif; background: #f4f4f5; }
  svg { width: 100vw; height: 100vh; }
  .card { fill: #fff; stroke: #d4d4d8; rx: 6; }
  .header { fill: #3b82f6; }
  .title { fill: #fff; font-weight: bold; font-size: 13px; }
  .field { fill: #3f3f46; font-size: 12px; }
  .edge { fill: none; stroke: #6366f1; stroke-width: 2; }
</style>
</head>
<body>
<svg id="canvas" viewBox="0 0 2000 2000"></svg>
<script>
async function render() {
  const svg = document.getElementById('canvas');
  const ns = 'http://www.w3.org/2000/svg';
  const entities = await (await fetch('/api/entities')).json();
  const routes = await (await fetch('/api/routes')).json();
  for (const route of routes) {
    const p = document.createElementNS(ns, 'path');
    p.setAttribute('d', route.path);
    p.setAttribute('class', 'edge');
    svg.appendChild(p);
  }
  for (const e of entities) {
    const g = document.createElementNS(ns, 'g');
    const r = e.rect;
    g.innerHTML =
      '<rect class="card" x="' + r.x + '" y="' + r.y + '" width="' + r.width + '" height="' + r.height + '"/>' +
      '<rect class="header" x="' + r.x + '" y="' + r.y + '" width="' + r.width + '" height="30"/>' +
      '<text class="title" x="' + (r.x + 10) + '" y="' + (r.y + 20) + '">' + e.name + '</text>' +
      e.fields.map(function (f, i) {
        return '<text class="field" x="' + (r.x + 10) + '" y="' + (r.y + 36 + 28 * i + 18) + '">' + f + '</text>';
      }).join('');
    svg.appendChild(g);
  }
}
render();
</script>
</body>
</html>
`
