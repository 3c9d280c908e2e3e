package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemaviz/schema"
)

var (
	docsFormat string
	docsOutput string
)

var docsCmd = &cobra.Command{
	Use:   "docs <schema file>",
	Short: "Generate an ERD diagram description from a schema",
	Long: `Generate an entity-relationship diagram description from a schema file.

Supported formats:
  - mermaid: Mermaid erDiagram
  - dot: Graphviz DOT digraph

Examples:
  schemaviz docs schema.sql --format mermaid --output erd.md
  schemaviz docs schema.json --format dot
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSchemaFile(args[0])
		if err != nil {
			fmt.Printf("❌ Error parsing schema: %v\n", err)
			os.Exit(1)
		}

		var out string
		switch docsFormat {
		case "mermaid":
			out = mermaidERD(s)
		case "dot":
			out = dotERD(s)
		default:
			fmt.Printf("❌ Unknown format %q (expected mermaid or dot)\n", docsFormat)
			os.Exit(1)
		}

		if docsOutput == "" {
			fmt.Print(out)
			return
		}
		if err := os.WriteFile(docsOutput, []byte(out), 0644); err != nil {
			fmt.Printf("❌ Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Diagram written:", docsOutput)
	},
}

func init() {
	docsCmd.Flags().StringVar(&docsFormat, "format", "mermaid", "Output format (mermaid, dot)")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Output file (default: stdout)")
}

func mermaidERD(s *schema.Schema) string {
	var b strings.Builder
	b.WriteString("erDiagram\n")
	for _, t := range s.Tables {
		fmt.Fprintf(&b, "    %s {\n", t.ID)
		for _, c := range t.Columns {
			typ := baseType(c.Type)
			marker := ""
			if c.PrimaryKey {
				marker = " PK"
			} else if c.ForeignKey {
				marker = " FK"
			}
			fmt.Fprintf(&b, "        %s %s%s\n", typ, c.Name, marker)
		}
		b.WriteString("    }\n")
	}
	for _, r := range s.Relationships {
		fmt.Fprintf(&b, "    %s }o--|| %s : %q\n",
			schema.TableID(r.FromTable), schema.TableID(r.ToTable), r.FromColumn)
	}
	return b.String()
}

func dotERD(s *schema.Schema) string {
	var b strings.Builder
	b.WriteString("digraph erd {\n    rankdir=LR;\n    node [shape=record];\n")
	for _, t := range s.Tables {
		var rows []string
		for _, c := range t.Columns {
			rows = append(rows, fmt.Sprintf("%s: %s", c.Name, baseType(c.Type)))
		}
		fmt.Fprintf(&b, "    %s [label=\"%s|%s\"];\n", t.ID, t.Name, strings.Join(rows, `\l`))
	}
	for _, r := range s.Relationships {
		fmt.Fprintf(&b, "    %s -> %s [label=%q];\n",
			schema.TableID(r.FromTable), schema.TableID(r.ToTable), r.FromColumn)
	}
	b.WriteString("}\n")
	return b.String()
}

// baseType strips the size/precision suffix, which erDiagram syntax
// cannot carry.
func baseType(typ string) string {
	if i := strings.IndexByte(typ, '('); i >= 0 {
		return typ[:i]
	}
	return typ
}
