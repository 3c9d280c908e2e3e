package document

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/schemaviz/schema"
)

func sampleSchema() *schema.Schema {
	users := schema.NewTable("users")
	users.Columns = []schema.Column{
		{Name: "id", Type: "uuid", PrimaryKey: true},
		{Name: "name", Type: "text", Nullable: true},
	}
	posts := schema.NewTable("posts")
	posts.Columns = []schema.Column{
		{Name: "id", Type: "uuid", PrimaryKey: true},
		{Name: "user_id", Type: "uuid", ForeignKey: true, Nullable: true,
			References: &schema.Reference{Table: "users", Column: "id"}},
	}
	return &schema.Schema{
		Tables:        []schema.Table{users, posts},
		Relationships: []schema.Relationship{schema.NewRelationship("posts", "user_id", "users", "id")},
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := New(sampleSchema(), map[string]Position{
		"users": {X: 60, Y: 60},
		"posts": {X: 400, Y: 120},
	})
	doc.ViewState = ViewState{Zoom: 1.5, Pan: Position{X: -40, Y: 25}}

	data, err := doc.Export()
	require.NoError(t, err)

	got, err := Import(data)
	require.NoError(t, err)

	if diff := cmp.Diff(doc.Schema, got.Schema); diff != "" {
		t.Errorf("schema mismatch after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(doc.Positions, got.Positions); diff != "" {
		t.Errorf("positions mismatch after round trip (-want +got):\n%s", diff)
	}
	assert.Equal(t, doc.ViewState, got.ViewState)
	assert.Equal(t, CurrentVersion, got.Version)
}

func TestImport_MissingKeyRejected(t *testing.T) {
	for _, missing := range []string{"version", "schema", "positions", "viewState"} {
		doc := New(sampleSchema(), nil)
		data, err := doc.Export()
		require.NoError(t, err)

		var stripped map[string]any
		require.NoError(t, json.Unmarshal(data, &stripped))
		delete(stripped, missing)
		data, err = json.Marshal(stripped)
		require.NoError(t, err)

		_, err = Import(data)
		require.Error(t, err, "expected rejection when %q is missing", missing)
		assert.Contains(t, err.Error(), missing)
	}
}

func TestImport_MalformedJSONRejected(t *testing.T) {
	_, err := Import([]byte(`{"version": 1,`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid diagram document")
}

func TestSave_Load(t *testing.T) {
	doc := New(sampleSchema(), map[string]Position{"users": {X: 1, Y: 2}})
	path := t.TempDir() + "/diagram.json"
	require.NoError(t, doc.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Positions, got.Positions)
}
