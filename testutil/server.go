package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet/clients"
	"github.com/bobinette/notenet/gin"
	"github.com/bobinette/notenet/inmem"
	"github.com/bobinette/notenet/jwt"
	"github.com/bobinette/notenet/mock"
)

// API is a running fake of the notes API, seeded with the acme and globex
// tenants.
type API struct {
	Server  *httptest.Server
	Backend *mock.Backend
}

func NewAPI(t *testing.T) (*API, func()) {
	backend, err := mock.Seeded()
	require.NoError(t, err, "seed backend")

	server := httptest.NewServer(gin.New(backend, jwt.NewEncodeDecoder([]byte("test key")), nil))
	return &API{Server: server, Backend: backend}, server.Close
}

// URL is the base url of the API, to be given to clients.NewClient.
func (a *API) URL() string {
	return a.Server.URL + "/api"
}

// Client returns a bearer client on the API backed by an in-memory store.
func (a *API) Client() (*clients.Client, *inmem.TokenStore) {
	store := inmem.NewTokenStore()
	return clients.NewClient(http.DefaultClient, a.URL(), store), store
}
