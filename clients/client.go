package clients

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/bobinette/notenet"
)

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client attaches the bearer token of the session to every request it sends,
// and keeps that token in a TokenStore so that it survives restarts.
type Client struct {
	baseURL string
	client  HTTPClient
	store   notenet.TokenStore

	mu    sync.Locker
	token string
}

func NewClient(c HTTPClient, baseURL string, store notenet.TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  c,
		store:   store,

		mu:    &sync.Mutex{},
		token: "",
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}

	return c.client.Do(req)
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

// SetToken sets the token sent with the requests and persists it. An empty
// token removes both.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if token == "" {
		return c.store.Clear()
	}
	return c.store.Set(token)
}

// LoadToken reads the persisted token and starts sending it. It returns an
// empty string when nothing is persisted, in which case the current token is
// kept.
func (c *Client) LoadToken() (string, error) {
	token, err := c.store.Get()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return token, nil
}
