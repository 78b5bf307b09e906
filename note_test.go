package notenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotes(t *testing.T) {
	notes := Notes{
		{ID: "1", Title: "Groceries", Content: "eggs"},
		{ID: "2", Title: "Standup", Content: "blocked on review"},
	}

	notes = notes.Append(Note{ID: "3", Title: "Ideas", Content: "notes cli"})
	assert.Len(t, notes, 3)

	notes = notes.Replace(Note{ID: "2", Title: "Standup", Content: "unblocked"})
	n, ok := notes.Find("2")
	assert.True(t, ok)
	assert.Equal(t, "unblocked", n.Content)
	assert.Equal(t, "3", notes[2].ID, "order is kept on replace")

	unchanged := notes.Replace(Note{ID: "42", Title: "Ghost"})
	assert.Equal(t, notes, unchanged)

	notes = notes.Remove("1")
	assert.Len(t, notes, 2)
	_, ok = notes.Find("1")
	assert.False(t, ok)

	assert.Len(t, notes.Remove("42"), 2)
}

func TestRoleAndPlan(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleMember.Valid())
	assert.False(t, Role("owner").Valid())

	assert.Equal(t, "Pro Plan", PlanPro.Label())
	assert.Equal(t, "Free Plan", PlanFree.Label())
	assert.Equal(t, "Free Plan", Plan("").Label())
}
