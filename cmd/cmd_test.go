package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSchemaFile_DispatchesByExtension(t *testing.T) {
	sqlPath := writeFile(t, "schema.sql", `CREATE TABLE users (id int PRIMARY KEY);`)
	jsonPath := writeFile(t, "schema.json", `{"tables":[{"name":"users","columns":[{"name":"id","type":"int"}]}]}`)
	yamlPath := writeFile(t, "schema.yaml", "tables:\n  - name: users\n    columns:\n      - name: id\n        type: int\n")

	for _, path := range []string{sqlPath, jsonPath, yamlPath} {
		s, err := loadSchemaFile(path)
		require.NoError(t, err, path)
		require.Len(t, s.Tables, 1)
		assert.Equal(t, "users", s.Tables[0].ID)
	}

	_, err := loadSchemaFile(writeFile(t, "schema.txt", "whatever"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema file")
}

func TestMermaidERD(t *testing.T) {
	s, err := loadSchemaFile(writeFile(t, "schema.sql", `
CREATE TABLE users (id uuid PRIMARY KEY, name varchar(80));
CREATE TABLE posts (id uuid PRIMARY KEY, user_id uuid REFERENCES users(id));`))
	require.NoError(t, err)

	out := mermaidERD(s)
	assert.Contains(t, out, "erDiagram")
	assert.Contains(t, out, "users {")
	assert.Contains(t, out, "uuid id PK")
	// Size suffixes cannot appear in mermaid type tokens.
	assert.Contains(t, out, "varchar name")
	assert.Contains(t, out, `posts }o--|| users : "user_id"`)
}

func TestDotERD(t *testing.T) {
	s, err := loadSchemaFile(writeFile(t, "schema.sql", `
CREATE TABLE a (id int PRIMARY KEY);
CREATE TABLE b (id int PRIMARY KEY, a_id int REFERENCES a(id));`))
	require.NoError(t, err)

	out := dotERD(s)
	assert.Contains(t, out, "digraph erd")
	assert.Contains(t, out, `b -> a [label="a_id"];`)
}
