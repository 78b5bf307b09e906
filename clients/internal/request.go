package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// ResponseError is returned by Call when the API answers with a non 2xx
// status. It carries the decoded error body.
type ResponseError struct {
	Status       int    `json:"-"`
	Msg          string `json:"message"`
	LimitReached bool   `json:"limitReached"`
}

func (e *ResponseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("error in call: status %d", e.Status)
	}
	return fmt.Sprintf("error in call: %s", e.Msg)
}

func (e *ResponseError) Code() int       { return e.Status }
func (e *ResponseError) Message() string { return e.Msg }
func (e *ResponseError) Cause() error    { return nil }

// LimitReached reports whether err is an API error flagged with limitReached.
func LimitReached(err error) bool {
	resErr, ok := err.(*ResponseError)
	return ok && resErr.LimitReached
}

// Call sends a JSON request and decodes the JSON response in out. in and out
// can be nil.
func Call(ctx context.Context, client HTTPClient, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		callErr := &ResponseError{Status: res.StatusCode}
		// A body that is not JSON leaves the message empty.
		json.NewDecoder(res.Body).Decode(callErr)
		callErr.Status = res.StatusCode
		return callErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response: %v", err)
	}
	return nil
}
