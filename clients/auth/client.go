package auth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/clients"
	"github.com/bobinette/notenet/clients/internal"
	"github.com/bobinette/notenet/errors"
)

type Client struct {
	client *clients.Client
}

func NewClient(c *clients.Client) *Client {
	return &Client{
		client: c,
	}
}

// Login exchanges the credentials for a token, which is then sent with every
// request and persisted.
func (c *Client) Login(ctx context.Context, email, password string) (notenet.User, error) {
	var res struct {
		Token string       `json:"token"`
		User  notenet.User `json:"user"`
	}
	err := internal.Call(ctx, c.client, "POST", fmt.Sprintf("%s/login", c.client.BaseURL()), map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return notenet.User{}, errors.Fallback(err, "Login failed")
	}

	if res.Token == "" {
		return notenet.User{}, errors.New("Login failed", errors.WithCode(502))
	}

	if err := c.client.SetToken(res.Token); err != nil {
		return notenet.User{}, errors.New("Login failed", errors.WithCause(err))
	}

	return res.User, nil
}

// Logout forgets the token, in memory and in the store.
func (c *Client) Logout() error {
	return c.client.SetToken("")
}

// Profile returns the user owning the persisted token.
func (c *Client) Profile(ctx context.Context) (notenet.User, error) {
	if _, err := c.client.LoadToken(); err != nil {
		return notenet.User{}, errors.New("Failed to get user profile", errors.WithCause(err))
	}

	var res struct {
		User notenet.User `json:"user"`
	}
	err := internal.Call(ctx, c.client, "GET", fmt.Sprintf("%s/profile", c.client.BaseURL()), nil, &res)
	if err != nil {
		return notenet.User{}, errors.Fallback(err, "Failed to get user profile")
	}

	return res.User, nil
}

// Invite adds a user to the tenant of the caller. Admin only.
func (c *Client) Invite(ctx context.Context, email string, role notenet.Role) (notenet.User, error) {
	var res struct {
		User notenet.User `json:"user"`
	}
	err := internal.Call(ctx, c.client, "POST", fmt.Sprintf("%s/invite", c.client.BaseURL()), map[string]string{
		"email": email,
		"role":  string(role),
	}, &res)
	if err != nil {
		return notenet.User{}, errors.Fallback(err, "Failed to invite user")
	}

	return res.User, nil
}

// Upgrade moves the tenant to the pro plan. Admin only.
func (c *Client) Upgrade(ctx context.Context, slug string) (notenet.Tenant, error) {
	var res struct {
		Tenant notenet.Tenant `json:"tenant"`
	}
	u := fmt.Sprintf("%s/tenants/%s/upgrade", c.client.BaseURL(), url.PathEscape(slug))
	if err := internal.Call(ctx, c.client, "POST", u, nil, &res); err != nil {
		return notenet.Tenant{}, errors.Fallback(err, "Failed to upgrade subscription")
	}

	return res.Tenant, nil
}
