package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initJSON bool

const starterSQL = `-- Example schema for schemaviz
CREATE TABLE users (
    id uuid PRIMARY KEY,
    email text NOT NULL,
    name text NOT NULL,
    created_at timestamp
);

CREATE TABLE posts (
    id uuid PRIMARY KEY,
    title text NOT NULL,
    body text,
    user_id uuid REFERENCES users(id)
);

CREATE TABLE comments (
    id uuid PRIMARY KEY,
    body text NOT NULL,
    post_id uuid,
    author_id uuid REFERENCES users(id),
    FOREIGN KEY (post_id) REFERENCES posts(id)
);
`

const starterJSON = `{
  "tables": [
    {
      "name": "users",
      "columns": [
        {"name": "id", "type": "uuid", "primaryKey": true},
        {"name": "email", "type": "text", "nullable": false},
        {"name": "name", "type": "text"}
      ]
    },
    {
      "name": "posts",
      "columns": [
        {"name": "id", "type": "uuid", "primaryKey": true},
        {"name": "title", "type": "text", "nullable": false},
        {"name": "user_id", "type": "uuid", "foreignKey": {"table": "users", "column": "id"}}
      ]
    }
  ]
}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter schema file",
	Long: `Create a starter schema file in the current directory.

Examples:
  schemaviz init          # Create schema.sql
  schemaviz init --json   # Create schema.json
`,
	Run: func(cmd *cobra.Command, args []string) {
		filename, content := "schema.sql", starterSQL
		if initJSON {
			filename, content = "schema.json", starterJSON
		}

		if _, err := os.Stat(filename); err == nil {
			fmt.Printf("❌ %s already exists!\n", filename)
			return
		}
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			fmt.Printf("❌ Error creating %s: %v\n", filename, err)
			return
		}

		fmt.Printf("✅ Created %s example file.\n", filename)
		fmt.Printf("📝 Edit %s to define your schema\n", filename)
		fmt.Printf("🚀 Run 'schemaviz export %s' to build a diagram document\n", filename)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initJSON, "json", false, "Create a JSON schema file instead of SQL")
}
