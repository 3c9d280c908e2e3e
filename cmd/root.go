package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemaviz/loader"
	"github.com/ridoystarlord/schemaviz/schema"
	"github.com/ridoystarlord/schemaviz/sqlparser"
)

var rootCmd = &cobra.Command{
	Use:   "schemaviz",
	Short: "Extract relational schemas and route ER diagram connectors",
	Long: `schemaviz turns CREATE TABLE SQL, JSON/YAML schema documents or a live
PostgreSQL database into a canonical schema model, lays the tables out on
a canvas and routes collision-avoiding connector paths between related
tables.

Examples:

  schemaviz parse schema.sql
  schemaviz export schema.json -o diagram.json
  schemaviz route diagram.json
  schemaviz studio diagram.json
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(introspectCmd)
	rootCmd.AddCommand(studioCmd)
	rootCmd.AddCommand(initCmd)
}

// loadSchemaFile parses a schema input file by extension: .sql goes to
// the SQL extractor, .json and .yaml/.yml to the document loaders.
func loadSchemaFile(filename string) (*schema.Schema, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".sql":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading schema file: %w", err)
		}
		return sqlparser.ParseSQL(string(data))
	case ".json":
		return loader.LoadSchemaFromJSON(filename)
	case ".yaml", ".yml":
		return loader.LoadSchemaFromYAML(filename)
	default:
		return nil, fmt.Errorf("unsupported schema file %q (expected .sql, .json or .yaml)", filename)
	}
}
