package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemaviz/document"
	"github.com/ridoystarlord/schemaviz/layout"
	"github.com/ridoystarlord/schemaviz/router"
)

var (
	exportOutput string
	exportWidth  float64
	exportHeight float64
)

var exportCmd = &cobra.Command{
	Use:   "export <schema file>",
	Short: "Build a diagram document from a schema file",
	Long: `Parse a schema file, lay the tables out automatically and write a
diagram document (schema + positions + view state).

Examples:
  schemaviz export schema.sql                  # Write diagram_<timestamp>.json
  schemaviz export schema.json -o diagram.json # Write a named document
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSchemaFile(args[0])
		if err != nil {
			fmt.Printf("❌ Error parsing schema: %v\n", err)
			os.Exit(1)
		}

		bounds := router.Bounds{Width: exportWidth, Height: exportHeight}
		positions := toDocumentPositions(layout.AutoLayout(s, bounds))
		doc := document.New(s, positions)

		filename := exportOutput
		if filename == "" {
			filename = document.DefaultFilename()
		}
		if err := doc.Save(filename); err != nil {
			fmt.Printf("❌ Error writing document: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✅ Diagram document written:", filename)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: diagram_<timestamp>.json)")
	exportCmd.Flags().Float64Var(&exportWidth, "width", 2000, "Canvas width")
	exportCmd.Flags().Float64Var(&exportHeight, "height", 2000, "Canvas height")
}
