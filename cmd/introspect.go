package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemaviz/database"
	"github.com/ridoystarlord/schemaviz/document"
	"github.com/ridoystarlord/schemaviz/introspect"
	"github.com/ridoystarlord/schemaviz/layout"
	"github.com/ridoystarlord/schemaviz/router"
)

var introspectOutput string

var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Extract the schema from a live PostgreSQL database",
	Long: `Connect to the database from DATABASE_URL (in .env or the environment)
and extract its tables, columns and foreign keys into the canonical
model.

Examples:
  schemaviz introspect                       # Print the extracted schema
  schemaviz introspect -o diagram.json       # Write a diagram document
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		defer database.ClosePool()

		s, err := introspect.IntrospectSchema(ctx)
		if err != nil {
			fmt.Printf("❌ Error introspecting database: %v\n", err)
			os.Exit(1)
		}

		if introspectOutput != "" {
			positions := toDocumentPositions(layout.AutoLayout(s, router.Bounds{}))
			if err := document.New(s, positions).Save(introspectOutput); err != nil {
				fmt.Printf("❌ Error writing document: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("✅ Diagram document written:", introspectOutput)
			return
		}

		printSchema(s)
	},
}

func init() {
	introspectCmd.Flags().StringVarP(&introspectOutput, "output", "o", "", "Write a diagram document instead of printing")
}
