package notes

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/clients"
	"github.com/bobinette/notenet/clients/internal"
	"github.com/bobinette/notenet/errors"
)

// LimitReachedError is returned by Create when the plan of the tenant does
// not allow more notes.
type LimitReachedError struct {
	err errors.Error
}

func (e *LimitReachedError) Error() string   { return e.err.Error() }
func (e *LimitReachedError) Code() int       { return e.err.Code() }
func (e *LimitReachedError) Message() string { return e.err.Message() }
func (e *LimitReachedError) Cause() error    { return e.err.Cause() }

func IsLimitReached(err error) bool {
	_, ok := err.(*LimitReachedError)
	return ok
}

type Client struct {
	client *clients.Client
}

func NewClient(c *clients.Client) *Client {
	return &Client{
		client: c,
	}
}

type noteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// call loads the persisted token before sending the request, and normalizes
// the failures with msg. Errors flagged with limitReached by the API come
// back as *LimitReachedError.
func (c *Client) call(ctx context.Context, method, path string, in, out interface{}, msg string) error {
	if _, err := c.client.LoadToken(); err != nil {
		return errors.New(msg, errors.WithCause(err))
	}

	err := internal.Call(ctx, c.client, method, fmt.Sprintf("%s%s", c.client.BaseURL(), path), in, out)
	if err == nil {
		return nil
	}

	limitReached := internal.LimitReached(err)
	err = errors.Fallback(err, msg)
	if limitReached {
		return &LimitReachedError{err: err.(errors.Error)}
	}
	return err
}

func (c *Client) List(ctx context.Context) (notenet.Notes, error) {
	var res struct {
		Notes notenet.Notes `json:"notes"`
	}
	if err := c.call(ctx, "GET", "/notes", nil, &res, "Failed to get notes"); err != nil {
		return nil, err
	}

	if res.Notes == nil {
		res.Notes = notenet.Notes{}
	}
	return res.Notes, nil
}

func (c *Client) Get(ctx context.Context, id string) (notenet.Note, error) {
	var res struct {
		Note notenet.Note `json:"note"`
	}
	if err := c.call(ctx, "GET", "/notes/"+url.PathEscape(id), nil, &res, "Failed to get note"); err != nil {
		return notenet.Note{}, err
	}

	return res.Note, nil
}

// Create adds a note to the tenant. When the tenant is at the limit of its
// plan the error is a *LimitReachedError.
func (c *Client) Create(ctx context.Context, title, content string) (notenet.Note, error) {
	var res struct {
		Note notenet.Note `json:"note"`
	}
	err := c.call(ctx, "POST", "/notes", noteBody{Title: title, Content: content}, &res, "Failed to create note")
	if err != nil {
		return notenet.Note{}, err
	}

	return res.Note, nil
}

func (c *Client) Update(ctx context.Context, id, title, content string) (notenet.Note, error) {
	var res struct {
		Note notenet.Note `json:"note"`
	}
	err := c.call(ctx, "PUT", "/notes/"+url.PathEscape(id), noteBody{Title: title, Content: content}, &res, "Failed to update note")
	if err != nil {
		return notenet.Note{}, err
	}

	return res.Note, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.call(ctx, "DELETE", "/notes/"+url.PathEscape(id), nil, nil, "Failed to delete note")
}
