package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemaviz/document"
	"github.com/ridoystarlord/schemaviz/layout"
	"github.com/ridoystarlord/schemaviz/router"
)

var (
	routeRelID  string
	routeDirect bool
	routeCell   float64
	routeWidth  float64
	routeHeight float64
)

var routeCmd = &cobra.Command{
	Use:   "route <diagram file>",
	Short: "Route connector paths for a diagram document",
	Long: `Route the relationship connectors of a diagram document and print the
resulting point sequences and SVG path descriptions.

Examples:
  schemaviz route diagram.json                      # Route every relationship
  schemaviz route diagram.json -r posts.user_id->users.id
  schemaviz route diagram.json --direct             # No-avoidance orthogonal routes
  schemaviz route diagram.json --cell 10            # Finer routing grid
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := document.Load(args[0])
		if err != nil {
			fmt.Printf("❌ Error loading document: %v\n", err)
			os.Exit(1)
		}

		positions := toRouterPositions(doc.Positions)
		bounds := router.Bounds{Width: routeWidth, Height: routeHeight}
		cyan := color.New(color.FgCyan)

		routed := 0
		for _, rel := range doc.Schema.Relationships {
			if routeRelID != "" && rel.ID != routeRelID {
				continue
			}
			routed++
			cyan.Printf("🔗 %s\n", rel.ID)
			if routeDirect {
				fmt.Printf("  path: %s\n", layout.DirectRelationship(doc.Schema, positions, rel))
				continue
			}
			route := layout.RouteRelationship(doc.Schema, positions, rel, bounds, routeCell)
			fmt.Printf("  points: %v\n", route.Points)
			fmt.Printf("  path: %s\n", route.Path)
		}

		if routed == 0 {
			if routeRelID != "" {
				fmt.Printf("❌ No relationship with id %q in document\n", routeRelID)
				os.Exit(1)
			}
			fmt.Println("✅ No relationships to route")
		}
	},
}

func init() {
	routeCmd.Flags().StringVarP(&routeRelID, "relationship", "r", "", "Route only the relationship with this id")
	routeCmd.Flags().BoolVar(&routeDirect, "direct", false, "Use the direct orthogonal policy (no obstacle avoidance)")
	routeCmd.Flags().Float64Var(&routeCell, "cell", router.DefaultCellSize, "Routing grid cell size")
	routeCmd.Flags().Float64Var(&routeWidth, "width", 2000, "Canvas width")
	routeCmd.Flags().Float64Var(&routeHeight, "height", 2000, "Canvas height")
}

func toRouterPositions(positions map[string]document.Position) map[string]router.Point {
	out := make(map[string]router.Point, len(positions))
	for id, p := range positions {
		out[id] = router.Point{X: p.X, Y: p.Y}
	}
	return out
}
