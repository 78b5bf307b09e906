// Package session holds the state of the signed in user for the lifetime of
// the process: who is signed in, whether that is still being resolved, and
// the last error met while signing in.
package session

import (
	"context"
	"sync"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/log"
)

type State string

const (
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// AuthClient is the part of the auth API the session depends on.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (notenet.User, error)
	Logout() error
	Profile(ctx context.Context) (notenet.User, error)
}

type Session struct {
	client AuthClient
	tokens notenet.TokenStore
	logger log.Logger

	mu      sync.Locker
	user    *notenet.User
	loading bool
	err     string
}

// New returns a session that is loading until Start returns.
func New(client AuthClient, tokens notenet.TokenStore, logger log.Logger) *Session {
	return &Session{
		client: client,
		tokens: tokens,
		logger: logger,

		mu:      &sync.Mutex{},
		loading: true,
	}
}

// Start resolves the session from the persisted token. A missing token or a
// failed profile fetch leaves the session unauthenticated.
func (s *Session) Start(ctx context.Context) {
	defer s.setLoading(false)

	token, err := s.tokens.Get()
	if err != nil {
		s.logger.Error("Failed to load user:", err)
		return
	}
	if token == "" {
		return
	}

	user, err := s.client.Profile(ctx)
	if err != nil {
		s.logger.Error("Failed to load user:", err)
		return
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.logger.Debugf("session resumed for %s", user.Email)
}

// Login signs the user in. On failure the message is kept as the last error
// and the current user is left untouched.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	defer s.setLoading(false)

	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		err = errors.Fallback(err, "Login failed")
		s.mu.Lock()
		s.err = errors.MessageOf(err)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.logger.Debugf("signed in as %s", user.Email)
	return nil
}

// Logout clears the stored token and the user.
func (s *Session) Logout() error {
	err := s.client.Logout()

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Failed to clear token:", err)
	}
	return err
}

// User returns a copy of the signed in user, nil when signed out.
func (s *Session) User() *notenet.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user != nil
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user != nil && s.user.Role == notenet.RoleAdmin
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Err is the message of the last failed login, empty if none.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.user != nil:
		return StateAuthenticated
	case s.loading:
		return StateLoading
	}
	return StateUnauthenticated
}

// SetPlan updates the plan of the user's tenant after an upgrade went
// through, without fetching the profile again.
func (s *Session) SetPlan(plan notenet.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		s.user.Tenant.SubscriptionPlan = plan
	}
}

func (s *Session) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}
