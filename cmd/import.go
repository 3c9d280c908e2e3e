package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemaviz/document"
)

var importCmd = &cobra.Command{
	Use:   "import <diagram file>",
	Short: "Validate and summarize a diagram document",
	Long: `Import a previously exported diagram document, validate its format
and print a summary. The current diagram is left untouched when the
document is rejected.

Examples:
  schemaviz import diagram.json
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := document.Load(args[0])
		if err != nil {
			fmt.Printf("❌ Error importing document: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen, color.Bold)
		green.Println("✅ Valid diagram document")
		fmt.Printf("  version: %d\n", doc.Version)
		fmt.Printf("  tables: %d\n", len(doc.Schema.Tables))
		fmt.Printf("  relationships: %d\n", len(doc.Schema.Relationships))
		fmt.Printf("  positions: %d\n", len(doc.Positions))
		fmt.Printf("  zoom: %g, pan: (%g, %g)\n", doc.ViewState.Zoom, doc.ViewState.Pan.X, doc.ViewState.Pan.Y)

		if warnings := doc.Schema.Validate(); len(warnings) > 0 {
			yellow := color.New(color.FgYellow)
			yellow.Printf("⚠️  Warnings (%d):\n", len(warnings))
			for _, w := range warnings {
				fmt.Printf("  %s\n", w.Message)
			}
		}
	},
}
