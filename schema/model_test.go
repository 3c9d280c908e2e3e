package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableID(t *testing.T) {
	assert.Equal(t, "users", TableID("Users"))
	assert.Equal(t, "order_items", TableID("ORDER_ITEMS"))
}

func TestNewRelationship_DeterministicID(t *testing.T) {
	a := NewRelationship("Posts", "user_id", "Users", "id")
	b := NewRelationship("Posts", "user_id", "Users", "id")
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "posts.user_id->users.id", a.ID)
	// Endpoints keep their original case.
	assert.Equal(t, "Posts", a.FromTable)
	assert.Equal(t, "Users", a.ToTable)
}

func TestTableByID_LowercasesLookup(t *testing.T) {
	s := &Schema{Tables: []Table{NewTable("Users")}}
	got, ok := s.TableByID("USERS")
	require.True(t, ok)
	assert.Equal(t, "Users", got.Name)

	_, ok = s.TableByID("missing")
	assert.False(t, ok)
}

func TestColumnByName_CaseInsensitive(t *testing.T) {
	table := NewTable("t")
	table.Columns = []Column{{Name: "UserID", Type: "int"}}
	col, ok := table.ColumnByName("userid")
	require.True(t, ok)
	assert.Equal(t, "UserID", col.Name)
	assert.Equal(t, 0, table.ColumnIndex("USERID"))
	assert.Equal(t, -1, table.ColumnIndex("nope"))
}

func TestValidate(t *testing.T) {
	dup := NewTable("users")
	dup.Columns = []Column{{Name: "id"}, {Name: "ID"}}
	s := &Schema{
		Tables: []Table{dup},
		Relationships: []Relationship{
			NewRelationship("users", "id", "ghosts", "id"),
		},
	}

	warnings := s.Validate()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0].Message, "duplicate column")
	assert.Contains(t, warnings[1].Message, "undeclared table")
}
