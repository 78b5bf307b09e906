package main

import (
	"context"
	"net/http"

	"github.com/bobinette/notenet/app"
	"github.com/bobinette/notenet/bolt"
	"github.com/bobinette/notenet/clients"
	"github.com/bobinette/notenet/clients/auth"
	"github.com/bobinette/notenet/clients/notes"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/session"
)

// services is what a command needs to act on behalf of the signed in user.
type services struct {
	session   *session.Session
	auth      *auth.Client
	notes     *notes.Client
	dashboard *app.Dashboard
}

// openSession opens the local token store and resumes the session from it.
// The returned func closes the store.
func openSession(ctx context.Context) (*services, func(), error) {
	driver := &bolt.Driver{}
	if err := driver.Open(config.Storage.Path); err != nil {
		return nil, func() {}, errors.New("could not open session store", errors.WithCause(err))
	}
	store := bolt.NewTokenStore(driver)

	timeout, err := config.timeout()
	if err != nil {
		driver.Close()
		return nil, func() {}, err
	}

	bearer := clients.NewClient(&http.Client{Timeout: timeout}, config.API.URL, store)
	authClient := auth.NewClient(bearer)
	notesClient := notes.NewClient(bearer)

	s := session.New(authClient, store, logger)
	s.Start(ctx)

	return &services{
		session:   s,
		auth:      authClient,
		notes:     notesClient,
		dashboard: app.NewDashboard(s, notesClient, authClient),
	}, func() { driver.Close() }, nil
}

// requireSession returns an error when the dashboard would send the user to
// the login page.
func (s *services) requireSession() error {
	if s.dashboard.Guard() == app.RouteLogin {
		return errors.New("Not signed in, run `notenet login <email> <password>` first", errors.Unauthorized())
	}
	return nil
}
