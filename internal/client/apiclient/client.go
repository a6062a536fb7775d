// Package apiclient is the console client's REST client for the workwise API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/client/notify"
)

const (
	MsgAccessDenied   = "Access denied"
	MsgPermission     = "You don't have permission to perform this action."
	MsgServerError    = "Server error"
	MsgServerDetail   = "Something went wrong. Please try again later."
	MsgNetworkError   = "Network error"
	MsgNetworkDetail  = "Unable to connect to the server. Please check your connection."
	MsgRequestFailed  = "Request failed"
	DefaultTimeout    = 15 * time.Second
	maxErrorBodyBytes = 64 * 1024
)

// TokenSource supplies the bearer token of the current session.
type TokenSource interface {
	Token() string
}

// Error is a non-2xx API response. It unwraps to the matching apperr sentinel.
type Error struct {
	Status  int
	Code    string
	Message string
	Kind    error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// Client sends one request per call and never retries. A 401 runs
// OnUnauthorized; other failures are reported once through Notifier.
type Client struct {
	BaseURL        string
	HTTP           *http.Client
	Tokens         TokenSource
	OnUnauthorized func()
	Notifier       notify.Notifier
	Log            zerolog.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Tokens:  tokens,
		Log:     zerolog.Nop(),
	}
}

type requestOptions struct {
	token string
	query url.Values
}

type RequestOption func(*requestOptions)

// WithBearer overrides the session token for one request.
func WithBearer(token string) RequestOption {
	return func(o *requestOptions) { o.token = token }
}

func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) { o.query = q }
}

// Do sends body as JSON and decodes the envelope data into out.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	resp, err := c.send(ctx, method, path, body, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return c.fail(&Error{Status: resp.StatusCode, Message: "malformed response", Kind: apperr.ErrServiceUnavailable})
		}
		if len(env.Data) == 0 {
			return nil
		}
		return json.Unmarshal(env.Data, out)
	}
	return c.fail(c.decodeError(resp))
}

// Download copies a binary response body to w.
func (c *Client) Download(ctx context.Context, path string, w io.Writer, opts ...RequestOption) error {
	resp, err := c.send(ctx, http.MethodGet, path, nil, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.fail(c.decodeError(resp))
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return c.fail(&Error{Status: resp.StatusCode, Message: err.Error(), Kind: apperr.ErrServiceUnavailable})
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any, opts []RequestOption) (*http.Response, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}
	target := c.BaseURL + path
	if len(o.query) > 0 {
		target += "?" + o.query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	token := o.token
	if token == "" && c.Tokens != nil {
		token = c.Tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		c.notify(MsgNetworkError, MsgNetworkDetail)
		return nil, &Error{Message: err.Error(), Kind: apperr.ErrServiceUnavailable}
	}
	return resp, nil
}

func (c *Client) decodeError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}
	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodyBytes)).Decode(&env); err == nil && env.Error != nil {
		e.Code = env.Error.Code
		e.Message = env.Error.Message
		if e.Code == "validation_error" {
			var details struct {
				Fields []apperr.FieldIssue `json:"fields"`
			}
			if json.Unmarshal(env.Error.Details, &details) == nil {
				e.Kind = &apperr.ValidationError{Fields: details.Fields}
			}
		}
	}
	if e.Kind == nil {
		e.Kind = kindFor(resp.StatusCode, e.Code)
	}
	return e
}

func kindFor(status int, code string) error {
	switch code {
	case "invalid_credentials":
		return apperr.ErrInvalidCredentials
	case "mfa_required":
		return apperr.ErrMFARequired
	case "invalid_state":
		return apperr.ErrInvalidState
	}
	switch {
	case status == http.StatusBadRequest:
		return apperr.ErrInvalidInput
	case status == http.StatusUnauthorized:
		return apperr.ErrUnauthorized
	case status == http.StatusForbidden:
		return apperr.ErrForbidden
	case status == http.StatusNotFound:
		return apperr.ErrNotFound
	case status == http.StatusConflict:
		return apperr.ErrConflict
	}
	return apperr.ErrServiceUnavailable
}

// fail applies the global handling of a failed call and returns err.
func (c *Client) fail(e *Error) error {
	c.Log.Warn().Int("status", e.Status).Str("code", e.Code).Str("message", e.Message).Msg("api error")
	switch {
	case apperr.IsValidation(e):
		// reported next to the form fields
	case errors.Is(e, apperr.ErrInvalidCredentials), errors.Is(e, apperr.ErrMFARequired):
		// the authenticator reports login failures
	case errors.Is(e, apperr.ErrUnauthorized):
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	case errors.Is(e, apperr.ErrForbidden):
		c.notify(MsgAccessDenied, MsgPermission)
	case e.Status >= http.StatusInternalServerError:
		c.notify(MsgServerError, MsgServerDetail)
	default:
		msg := e.Message
		if msg == "" {
			msg = "An error occurred"
		}
		c.notify(MsgRequestFailed, msg)
	}
	return e
}

func (c *Client) notify(title, message string) {
	if c.Notifier != nil {
		c.Notifier.Notify(notify.Notice{Level: notify.Error, Title: title, Message: message})
	}
}
