package schema

import (
	"fmt"
	"strings"
)

// Schema is the canonical in-memory model both extractors produce.
// Tables keep declaration order; Relationships keep discovery order.
type Schema struct {
	Tables        []Table        `json:"tables"`
	Relationships []Relationship `json:"relationships"`
}

// Table represents one entity and its ordered columns.
type Table struct {
	// ID is the lowercased name, used as the stable join key across
	// tables, relationships and diagram positions.
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Column represents a table column.
type Column struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	PrimaryKey bool       `json:"primaryKey"`
	ForeignKey bool       `json:"foreignKey"`
	Nullable   bool       `json:"nullable"`
	References *Reference `json:"references,omitempty"`
}

// Reference is the target of a foreign key column.
type Reference struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// Relationship is a directed foreign-key edge between two columns.
// Endpoint names preserve the original case from the source text.
type Relationship struct {
	ID         string `json:"id"`
	FromTable  string `json:"fromTable"`
	FromColumn string `json:"fromColumn"`
	ToTable    string `json:"toTable"`
	ToColumn   string `json:"toColumn"`
}

// TableID derives the stable id for a table name.
func TableID(name string) string {
	return strings.ToLower(name)
}

// NewTable builds a table with its id derived from the name.
func NewTable(name string) Table {
	return Table{ID: TableID(name), Name: name}
}

// NewRelationship builds a relationship with a deterministic id derived
// from its endpoints. Duplicate edges get duplicate ids; de-duplication
// is intentionally not performed.
func NewRelationship(fromTable, fromColumn, toTable, toColumn string) Relationship {
	id := strings.ToLower(fmt.Sprintf("%s.%s->%s.%s", fromTable, fromColumn, toTable, toColumn))
	return Relationship{
		ID:         id,
		FromTable:  fromTable,
		FromColumn: fromColumn,
		ToTable:    toTable,
		ToColumn:   toColumn,
	}
}

// TableByID looks a table up by its id. Lookups lowercase first, since
// display names preserve original case.
func (s *Schema) TableByID(id string) (*Table, bool) {
	id = strings.ToLower(id)
	for i := range s.Tables {
		if s.Tables[i].ID == id {
			return &s.Tables[i], true
		}
	}
	return nil, false
}

// ColumnByName finds a column by case-insensitive name match.
func (t *Table) ColumnByName(name string) (*Column, bool) {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// ColumnIndex returns the declaration index of a column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return i
		}
	}
	return -1
}
