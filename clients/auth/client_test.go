package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/clients"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/inmem"
	"github.com/bobinette/notenet/mock"
	"github.com/bobinette/notenet/testutil"
)

func TestClient_Login(t *testing.T) {
	api, tearDown := testutil.NewAPI(t)
	defer tearDown()

	bearer, store := api.Client()
	client := NewClient(bearer)
	ctx := context.Background()

	// Invalid credentials: no token, server message
	_, err := client.Login(ctx, "admin@acme.test", "wrong")
	require.Error(t, err)
	errors.AssertCode(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Invalid credentials", errors.MessageOf(err))
	token, _ := store.Get()
	assert.Equal(t, "", token)

	// Valid credentials
	user, err := client.Login(ctx, "admin@acme.test", mock.DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, "admin@acme.test", user.Email)
	assert.Equal(t, notenet.RoleAdmin, user.Role)
	assert.Equal(t, "acme", user.Tenant.Slug)

	token, _ = store.Get()
	assert.NotEmpty(t, token, "token is persisted")
	assert.Equal(t, token, bearer.Token(), "token is sent")

	// Logout
	require.NoError(t, client.Logout())
	token, _ = store.Get()
	assert.Equal(t, "", token)
	assert.Equal(t, "", bearer.Token())
}

func TestClient_LoginUnreachable(t *testing.T) {
	bearer := clients.NewClient(http.DefaultClient, "http://127.0.0.1:1/api", inmem.NewTokenStore())
	client := NewClient(bearer)

	_, err := client.Login(context.Background(), "admin@acme.test", mock.DefaultPassword)
	require.Error(t, err)
	assert.Equal(t, "Login failed", errors.MessageOf(err))
	errors.AssertCode(t, err, errors.DefaultCode)
}

func TestClient_Profile(t *testing.T) {
	api, tearDown := testutil.NewAPI(t)
	defer tearDown()

	bearer, store := api.Client()
	client := NewClient(bearer)
	ctx := context.Background()

	_, err := client.Profile(ctx)
	require.Error(t, err, "no token")
	errors.AssertCode(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Authentication required", errors.MessageOf(err))

	_, err = client.Login(ctx, "user@globex.test", mock.DefaultPassword)
	require.NoError(t, err)
	token, _ := store.Get()

	// A new client sharing the store picks the token up
	other := NewClient(clients.NewClient(http.DefaultClient, api.URL(), store))
	user, err := other.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@globex.test", user.Email)
	assert.Equal(t, notenet.RoleMember, user.Role)

	require.NoError(t, store.Set("garbage"))
	_, err = other.Profile(ctx)
	require.Error(t, err)
	assert.Equal(t, "Invalid token", errors.MessageOf(err))

	require.NoError(t, store.Set(token))
}

func TestClient_InviteAndUpgrade(t *testing.T) {
	api, tearDown := testutil.NewAPI(t)
	defer tearDown()

	bearer, _ := api.Client()
	client := NewClient(bearer)
	ctx := context.Background()

	_, err := client.Login(ctx, "user@acme.test", mock.DefaultPassword)
	require.NoError(t, err)

	_, err = client.Invite(ctx, "friend@acme.test", notenet.RoleMember)
	require.Error(t, err)
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = client.Upgrade(ctx, "acme")
	require.Error(t, err)
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = client.Login(ctx, "admin@acme.test", mock.DefaultPassword)
	require.NoError(t, err)

	invited, err := client.Invite(ctx, "friend@acme.test", notenet.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, "friend@acme.test", invited.Email)
	assert.Equal(t, "acme", invited.Tenant.Slug)

	tenant, err := client.Upgrade(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, notenet.PlanPro, tenant.SubscriptionPlan)
}
