package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemaviz/document"
	"github.com/ridoystarlord/schemaviz/layout"
	"github.com/ridoystarlord/schemaviz/router"
	"github.com/ridoystarlord/schemaviz/schema"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <schema file>",
	Short: "Parse a schema file and show what was extracted",
	Long: `Parse a SQL, JSON or YAML schema file into the canonical model and
print the extracted tables, columns and relationships.

Examples:
  schemaviz parse schema.sql           # Show extracted schema
  schemaviz parse schema.json --json   # Emit a diagram document instead
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSchemaFile(args[0])
		if err != nil {
			fmt.Printf("❌ Error parsing schema: %v\n", err)
			os.Exit(1)
		}

		if parseJSON {
			positions := toDocumentPositions(layout.AutoLayout(s, router.Bounds{}))
			data, err := document.New(s, positions).Export()
			if err != nil {
				fmt.Printf("❌ Error encoding document: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			return
		}

		printSchema(s)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Emit a diagram document as JSON")
}

func printSchema(s *schema.Schema) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	bold.Printf("📋 Tables (%d):\n", len(s.Tables))
	for _, t := range s.Tables {
		cyan.Printf("  %s\n", t.Name)
		for _, c := range t.Columns {
			markers := ""
			if c.PrimaryKey {
				markers += " PK"
			}
			if c.ForeignKey && c.References != nil {
				markers += fmt.Sprintf(" FK → %s.%s", c.References.Table, c.References.Column)
			}
			if !c.Nullable {
				markers += " NOT NULL"
			}
			fmt.Printf("    %s %s%s\n", c.Name, c.Type, markers)
		}
	}

	bold.Printf("\n🔗 Relationships (%d):\n", len(s.Relationships))
	for _, r := range s.Relationships {
		fmt.Printf("  %s.%s → %s.%s\n", r.FromTable, r.FromColumn, r.ToTable, r.ToColumn)
	}

	if warnings := s.Validate(); len(warnings) > 0 {
		yellow.Printf("\n⚠️  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  %s\n", w.Message)
		}
	}
}

func toDocumentPositions(positions map[string]router.Point) map[string]document.Position {
	out := make(map[string]document.Position, len(positions))
	for id, p := range positions {
		out[id] = document.Position{X: p.X, Y: p.Y}
	}
	return out
}
