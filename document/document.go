// Package document serializes a diagram — schema, entity positions and
// view state — to and from its JSON export format.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ridoystarlord/schemaviz/schema"
)

// CurrentVersion is written into every exported document.
const CurrentVersion = 1

// Position is a table card position on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ViewState captures the viewport transform.
type ViewState struct {
	Zoom float64  `json:"zoom"`
	Pan  Position `json:"pan"`
}

// Document is the export/import envelope for a diagram.
type Document struct {
	Version   int                 `json:"version"`
	Schema    *schema.Schema      `json:"schema"`
	Positions map[string]Position `json:"positions"`
	ViewState ViewState           `json:"viewState"`
}

// requiredKeys must all be present at the top level of an imported
// document before any field decoding happens.
var requiredKeys = []string{"version", "schema", "positions", "viewState"}

// New builds a document around a schema with default view state.
func New(s *schema.Schema, positions map[string]Position) *Document {
	if positions == nil {
		positions = make(map[string]Position)
	}
	return &Document{
		Version:   CurrentVersion,
		Schema:    s,
		Positions: positions,
		ViewState: ViewState{Zoom: 1},
	}
}

// Export serializes the document as indented JSON.
func (d *Document) Export() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding diagram document: %w", err)
	}
	return data, nil
}

// Import parses an exported document. All four top-level keys must be
// present; anything else is rejected with a format error.
func Import(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid diagram document: %w", err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("invalid diagram document: missing %q", key)
		}
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("invalid diagram document: %w", err)
	}
	if d.Schema == nil {
		d.Schema = &schema.Schema{}
	}
	if d.Positions == nil {
		d.Positions = make(map[string]Position)
	}
	return &d, nil
}

// Save writes the document to a file.
func (d *Document) Save(filename string) error {
	data, err := d.Export()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing diagram document: %w", err)
	}
	return nil
}

// Load reads and imports a document file.
func Load(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading diagram document: %w", err)
	}
	return Import(data)
}

// DefaultFilename returns a timestamped document name.
func DefaultFilename() string {
	return fmt.Sprintf("diagram_%s.json", time.Now().Format("20060102_150405"))
}
