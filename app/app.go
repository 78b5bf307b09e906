// Package app carries the logic of the pages of notenet, independently of how
// they are rendered: where to route a visitor, what the login form and the
// dashboard show and how they react to user actions.
package app

import (
	"context"

	"github.com/bobinette/notenet"
)

const (
	RouteHome      = "/"
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Session is the part of the session the pages read and act on.
type Session interface {
	Login(ctx context.Context, email, password string) error
	Logout() error
	User() *notenet.User
	IsAuthenticated() bool
	IsAdmin() bool
	Loading() bool
	SetPlan(notenet.Plan)
}

// Home sends authenticated visitors to the dashboard and the others to the
// login page.
func Home(s Session) string {
	if s.IsAuthenticated() {
		return RouteDashboard
	}
	return RouteLogin
}
