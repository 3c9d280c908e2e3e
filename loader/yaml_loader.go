package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/schemaviz/schema"
)

type yamlFile struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Name       string          `yaml:"name"`
	Type       string          `yaml:"type"`
	PrimaryKey bool            `yaml:"primaryKey"`
	Nullable   *bool           `yaml:"nullable"`
	ForeignKey *yamlForeignKey `yaml:"foreignKey"`
}

type yamlForeignKey struct {
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
}

// ParseYAML decodes the YAML flavor of the schema document. Defaults
// match the JSON flavor: columns are nullable unless stated otherwise.
func ParseYAML(data []byte) (*schema.Schema, error) {
	var yf yamlFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return &schema.Schema{}, fmt.Errorf("invalid YAML schema: %w", err)
	}
	if yf.Tables == nil {
		return &schema.Schema{}, fmt.Errorf("invalid schema document: missing \"tables\" list")
	}

	jf := jsonFile{}
	for _, t := range yf.Tables {
		jt := jsonTable{Name: t.Name}
		for _, c := range t.Columns {
			jc := jsonColumn{
				Name:       c.Name,
				Type:       c.Type,
				PrimaryKey: c.PrimaryKey,
				Nullable:   c.Nullable,
			}
			if c.ForeignKey != nil {
				jc.ForeignKey = &jsonForeignKey{Table: c.ForeignKey.Table, Column: c.ForeignKey.Column}
			}
			jt.Columns = append(jt.Columns, jc)
		}
		jf.Tables = append(jf.Tables, jt)
	}
	return buildSchema(jf), nil
}

// LoadSchemaFromYAML reads and parses a YAML schema file.
func LoadSchemaFromYAML(filename string) (*schema.Schema, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return ParseYAML(data)
}
