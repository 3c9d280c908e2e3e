package schema

import (
	"fmt"
	"strings"
)

// Warning describes a structural problem found during validation.
type Warning struct {
	Table   string `json:"table,omitempty"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

// Validate runs existence checks over the schema and returns a list of
// warnings. Extraction is best-effort, so nothing here is fatal: callers
// may print the warnings and keep going.
func (s *Schema) Validate() []Warning {
	var warnings []Warning

	seen := make(map[string]bool)
	for _, t := range s.Tables {
		if t.Name == "" {
			warnings = append(warnings, Warning{Message: "table with empty name"})
			continue
		}
		if seen[t.ID] {
			warnings = append(warnings, Warning{
				Table:   t.Name,
				Message: fmt.Sprintf("duplicate table %q", t.Name),
			})
		}
		seen[t.ID] = true

		cols := make(map[string]bool)
		for _, c := range t.Columns {
			key := strings.ToLower(c.Name)
			if cols[key] {
				warnings = append(warnings, Warning{
					Table:   t.Name,
					Column:  c.Name,
					Message: fmt.Sprintf("duplicate column %q in table %q", c.Name, t.Name),
				})
			}
			cols[key] = true

			if c.ForeignKey && c.References == nil {
				warnings = append(warnings, Warning{
					Table:   t.Name,
					Column:  c.Name,
					Message: fmt.Sprintf("column %q marked foreign key without a reference target", c.Name),
				})
			}
		}
	}

	for _, r := range s.Relationships {
		if _, ok := s.TableByID(r.FromTable); !ok {
			warnings = append(warnings, Warning{
				Table:   r.FromTable,
				Column:  r.FromColumn,
				Message: fmt.Sprintf("relationship %s references undeclared table %q", r.ID, r.FromTable),
			})
		}
		if _, ok := s.TableByID(r.ToTable); !ok {
			warnings = append(warnings, Warning{
				Table:   r.ToTable,
				Column:  r.ToColumn,
				Message: fmt.Sprintf("relationship %s references undeclared table %q", r.ID, r.ToTable),
			})
		}
	}

	return warnings
}
