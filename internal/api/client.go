// Package api is the HTTP client for the IDE server. Requests are form
// encoded the way the browser frontend sends them, and every JSON reply is
// wrapped in a {"success": bool, "error": string} envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
)

const (
	defaultHTTPTimeout = 60 * time.Second
	csrfCookie         = "csrftoken"
	csrfHeader         = "X-CSRFToken"
	requestIDHeader    = "X-Request-ID"
	sessionCookie      = "sessionid"
	maxErrorBody       = 512
)

// Client talks to one IDE server and carries its cookies.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	jar        http.CookieJar
	log        *slog.Logger

	pollInterval time.Duration
	pollTimeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Jar is replaced
// by the Client's own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPolling sets the task poll interval and overall timeout.
func WithPolling(interval, timeout time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.pollInterval = interval
		}
		if timeout > 0 {
			c.pollTimeout = timeout
		}
	}
}

// WithCookies seeds the jar, typically from a saved session.
func WithCookies(cookies []*http.Cookie) Option {
	return func(c *Client) {
		if len(cookies) > 0 {
			c.jar.SetCookies(c.base, cookies)
		}
	}
}

// New returns a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Host == "" {
		return nil, errors.E(errors.Op("api.New"), errors.KindConfig, "invalid server URL "+baseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.E(errors.Op("api.New"), errors.KindConfig, err)
	}

	c := &Client{
		base:         u,
		httpClient:   &http.Client{Timeout: defaultHTTPTimeout},
		jar:          jar,
		log:          logger.WithComponent("api"),
		pollInterval: time.Second,
		pollTimeout:  10 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Jar = jar
	return c, nil
}

// BaseURL returns the server root without a trailing slash.
func (c *Client) BaseURL() string { return c.base.String() }

// Cookies returns the cookies currently held for the server.
func (c *Client) Cookies() []*http.Cookie { return c.jar.Cookies(c.base) }

// HasSession reports whether the server has issued a session cookie.
func (c *Client) HasSession() bool {
	return c.cookie(sessionCookie) != ""
}

func (c *Client) cookie(name string) string {
	for _, ck := range c.jar.Cookies(c.base) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

func (c *Client) resolve(path string) string {
	return c.base.String() + path
}

// envelope is the common reply wrapper.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// ensureCSRF fetches the splash page once so the server sets csrftoken.
func (c *Client) ensureCSRF(ctx context.Context) error {
	if c.cookie(csrfCookie) != "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve("/"), nil)
	if err != nil {
		return errors.E(errors.Op("api.ensureCSRF"), errors.KindNetwork, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.E(errors.Op("api.ensureCSRF"), errors.KindNetwork, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", c.resolve("/ide/"))
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if method != http.MethodGet {
		if tok := c.cookie(csrfCookie); tok != "" {
			req.Header.Set(csrfHeader, tok)
		}
	}
	return req, nil
}

// do sends a request and decodes the envelope and payload into out.
func (c *Client) do(ctx context.Context, op errors.Op, method, path string, body []byte, contentType string, out any) error {
	if method != http.MethodGet {
		if err := c.ensureCSRF(ctx); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := c.newRequest(ctx, method, path, reader, contentType)
	if err != nil {
		return errors.E(op, errors.KindNetwork, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.E(op, errors.KindCancelled, ctx.Err())
		}
		return errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"requestID", req.Header.Get(requestIDHeader),
		"elapsed", time.Since(start),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.E(op, errors.KindNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.E(op, errors.KindNotFound, path+" not found")
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return errors.E(op, errors.KindAuth, "not logged in or not permitted")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		// Failures still often carry an envelope with a useful message.
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.Error != "" {
			return errors.ServerError(op, env.Error)
		}
		return errors.HTTPStatus(op, resp.StatusCode, truncate(string(data), maxErrorBody))
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.E(op, errors.KindNetwork, "malformed response", err)
	}
	if env.Success != nil && !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}
		return errors.ServerError(op, msg)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.E(op, errors.KindNetwork, "malformed response", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, op errors.Op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, "", out)
}

func (c *Client) postForm(ctx context.Context, op errors.Op, path string, form url.Values, out any) error {
	return c.do(ctx, op, http.MethodPost, path, []byte(form.Encode()), "application/x-www-form-urlencoded", out)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	return ansi.Truncate(s, n, "...")
}
