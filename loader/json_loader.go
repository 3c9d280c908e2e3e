// Package loader reads declarative schema documents (JSON or YAML) into
// the canonical schema model.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ridoystarlord/schemaviz/schema"
)

type jsonFile struct {
	Tables []jsonTable `json:"tables"`
}

type jsonTable struct {
	Name    string       `json:"name"`
	Columns []jsonColumn `json:"columns"`
}

type jsonColumn struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	PrimaryKey bool            `json:"primaryKey"`
	Nullable   *bool           `json:"nullable"`
	ForeignKey *jsonForeignKey `json:"foreignKey"`
}

type jsonForeignKey struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// ParseJSON decodes a JSON schema document into the canonical model.
// Decode failures and documents without a tables array are format
// errors; both come back with an empty schema, never a partial one.
func ParseJSON(data []byte) (*schema.Schema, error) {
	var jf jsonFile
	if err := json.Unmarshal(data, &jf); err != nil {
		return &schema.Schema{}, fmt.Errorf("invalid JSON schema: %w", err)
	}
	if jf.Tables == nil {
		return &schema.Schema{}, fmt.Errorf("invalid schema document: missing \"tables\" array")
	}
	return buildSchema(jf), nil
}

// LoadSchemaFromJSON reads and parses a JSON schema file.
func LoadSchemaFromJSON(filename string) (*schema.Schema, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return ParseJSON(data)
}

func buildSchema(jf jsonFile) *schema.Schema {
	s := &schema.Schema{}
	for _, t := range jf.Tables {
		table := schema.NewTable(t.Name)
		for _, c := range t.Columns {
			col := schema.Column{
				Name:       c.Name,
				Type:       c.Type,
				PrimaryKey: c.PrimaryKey,
				// Unlike SQL column definitions, an absent nullable
				// flag means nullable here.
				Nullable: c.Nullable == nil || *c.Nullable,
			}
			if c.PrimaryKey {
				col.Nullable = false
			}
			if c.ForeignKey != nil {
				col.ForeignKey = true
				col.References = &schema.Reference{
					Table:  c.ForeignKey.Table,
					Column: c.ForeignKey.Column,
				}
				s.Relationships = append(s.Relationships,
					schema.NewRelationship(t.Name, c.Name, c.ForeignKey.Table, c.ForeignKey.Column))
			}
			table.Columns = append(table.Columns, col)
		}
		s.Tables = append(s.Tables, table)
	}
	return s
}
