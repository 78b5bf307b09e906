package app

import (
	"context"

	"github.com/bobinette/notenet/errors"
)

type LoginForm struct {
	session Session
	err     string
}

func NewLoginForm(s Session) *LoginForm {
	return &LoginForm{session: s}
}

// Submit signs the user in and returns the route to go to on success.
func (f *LoginForm) Submit(ctx context.Context, email, password string) (string, error) {
	f.err = ""

	if email == "" || password == "" {
		f.err = "Please enter both email and password"
		return "", errors.New(f.err, errors.BadRequest())
	}

	if err := f.session.Login(ctx, email, password); err != nil {
		err = errors.Fallback(err, "Login failed")
		f.err = errors.MessageOf(err)
		return "", err
	}

	return RouteDashboard, nil
}

// Err is the message shown above the form.
func (f *LoginForm) Err() string {
	return f.err
}
