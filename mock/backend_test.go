package mock

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
)

func createBackend(t *testing.T) *Backend {
	b, err := Seeded()
	require.NoError(t, err, "seed backend")
	return b
}

func TestBackend_Authenticate(t *testing.T) {
	b := createBackend(t)

	tts := []struct {
		email    string
		password string
		code     int
	}{
		{email: "admin@acme.test", password: DefaultPassword, code: 0},
		{email: " User@Globex.test ", password: DefaultPassword, code: 0},
		{email: "admin@acme.test", password: "wrong", code: http.StatusUnauthorized},
		{email: "nobody@acme.test", password: DefaultPassword, code: http.StatusUnauthorized},
		{email: "", password: DefaultPassword, code: http.StatusBadRequest},
		{email: "admin@acme.test", password: "", code: http.StatusBadRequest},
	}

	for _, tt := range tts {
		user, err := b.Authenticate(tt.email, tt.password)
		if tt.code == 0 {
			require.NoError(t, err, tt.email)
			assert.NotEmpty(t, user.ID, tt.email)
			continue
		}
		require.Error(t, err, tt.email)
		errors.AssertCode(t, err, tt.code)
	}

	user, err := b.Authenticate("admin@acme.test", DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, notenet.RoleAdmin, user.Role)
	assert.Equal(t, notenet.Tenant{Slug: "acme", Name: "Acme", SubscriptionPlan: notenet.PlanFree}, user.Tenant)
}

func TestBackend_NotesAreTenantScoped(t *testing.T) {
	b := createBackend(t)

	note, err := b.CreateNote("acme", "Roadmap", "Q3 goals")
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)

	assert.Len(t, b.Notes("acme"), 1)
	assert.Len(t, b.Notes("globex"), 0)

	_, err = b.Note("globex", note.ID)
	errors.AssertCode(t, err, http.StatusNotFound)

	_, err = b.UpdateNote("globex", note.ID, "Hijack", "nope")
	errors.AssertCode(t, err, http.StatusNotFound)

	err = b.DeleteNote("globex", note.ID)
	errors.AssertCode(t, err, http.StatusNotFound)

	updated, err := b.UpdateNote("acme", note.ID, "Roadmap", "Q4 goals")
	require.NoError(t, err)
	assert.Equal(t, "Q4 goals", updated.Content)

	got, err := b.Note("acme", note.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, b.DeleteNote("acme", note.ID))
	assert.Len(t, b.Notes("acme"), 0)
}

func TestBackend_CreateNoteValidation(t *testing.T) {
	b := createBackend(t)

	_, err := b.CreateNote("acme", "", "content")
	errors.AssertCode(t, err, http.StatusBadRequest)

	_, err = b.CreateNote("acme", "title", "  ")
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestBackend_FreePlanLimit(t *testing.T) {
	b := createBackend(t)

	for i := 0; i < FreePlanLimit; i++ {
		_, err := b.CreateNote("acme", "title", "content")
		require.NoError(t, err, "note %d", i)
	}

	_, err := b.CreateNote("acme", "one too many", "content")
	require.Error(t, err)
	assert.True(t, IsLimitReached(err))
	errors.AssertCode(t, err, http.StatusForbidden)
	errors.AssertMessage(t, err, limitReachedMessage)
	assert.Equal(t, limitReachedMessage, err.Error())
	assert.Len(t, b.Notes("acme"), FreePlanLimit)

	// The limit is per tenant
	_, err = b.CreateNote("globex", "title", "content")
	require.NoError(t, err)

	admin, err := b.Authenticate("admin@acme.test", DefaultPassword)
	require.NoError(t, err)
	tenant, err := b.Upgrade(admin, "acme")
	require.NoError(t, err)
	assert.Equal(t, notenet.PlanPro, tenant.SubscriptionPlan)

	_, err = b.CreateNote("acme", "unlimited", "content")
	require.NoError(t, err)
	assert.False(t, IsLimitReached(err))
}

func TestBackend_Upgrade(t *testing.T) {
	b := createBackend(t)

	member, err := b.Authenticate("user@acme.test", DefaultPassword)
	require.NoError(t, err)
	admin, err := b.Authenticate("admin@acme.test", DefaultPassword)
	require.NoError(t, err)

	_, err = b.Upgrade(member, "acme")
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = b.Upgrade(admin, "globex")
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = b.Upgrade(admin, "acme")
	require.NoError(t, err)

	// Users see the new plan
	member, err = b.User(member.ID)
	require.NoError(t, err)
	assert.Equal(t, notenet.PlanPro, member.Tenant.SubscriptionPlan)
}

func TestBackend_Invite(t *testing.T) {
	b := createBackend(t)

	admin, err := b.Authenticate("admin@acme.test", DefaultPassword)
	require.NoError(t, err)
	member, err := b.Authenticate("user@acme.test", DefaultPassword)
	require.NoError(t, err)

	_, err = b.Invite(member, "new@acme.test", notenet.RoleMember)
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = b.Invite(admin, "new@acme.test", notenet.Role("owner"))
	errors.AssertCode(t, err, http.StatusBadRequest)

	_, err = b.Invite(admin, "", notenet.RoleMember)
	errors.AssertCode(t, err, http.StatusBadRequest)

	invited, err := b.Invite(admin, "new@acme.test", "")
	require.NoError(t, err)
	assert.Equal(t, notenet.RoleMember, invited.Role, "role defaults to member")
	assert.Equal(t, "acme", invited.Tenant.Slug)

	_, err = b.Invite(admin, "new@acme.test", notenet.RoleMember)
	errors.AssertCode(t, err, http.StatusConflict)

	_, err = b.Authenticate("new@acme.test", DefaultPassword)
	require.NoError(t, err, "invited user can log in with the default password")
}
