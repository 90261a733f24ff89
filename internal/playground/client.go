// Package playground is a thin HTTP client for a remote agent playground:
// listing agents, checking status, and listing, reading and deleting
// sessions.
//
// Listing operations (ListAgents, ListSessions) are best-effort: they never
// return an error and degrade to an empty result. Status, GetSession and
// DeleteSession are strict: every failure reaches the caller unchanged.
package playground

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/soyeahso/playground/internal/logging"
	"github.com/soyeahso/playground/internal/notify"
	"github.com/soyeahso/playground/internal/routes"
	"github.com/soyeahso/playground/internal/version"
)

// Header and query names carrying the caller identity.
const (
	HeaderUserID    = "X-User-ID"
	HeaderRequestID = "X-Request-ID"
	QueryUserID     = "user_id"
)

const (
	opListAgents    = "list agents"
	opStatus        = "status"
	opListSessions  = "list sessions"
	opGetSession    = "get session"
	opDeleteSession = "delete session"
)

// Client issues playground requests. It is safe for concurrent use; the
// user id is fixed at construction.
type Client struct {
	routes   routes.Resolver
	http     *http.Client
	userID   string
	notifier notify.Notifier
	log      *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithUserID attaches id to every request. Empty means no identity.
func WithUserID(id string) Option {
	return func(c *Client) { c.userID = id }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithNotifier sets where user-visible warnings go. Defaults to notify.Discard.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// New creates a Client. A nil resolver uses routes.New("").
// The default http.Client has no timeout; bound calls through ctx.
func New(resolver routes.Resolver, log *logging.Logger, opts ...Option) *Client {
	if resolver == nil {
		resolver = routes.New("")
	}
	if log == nil {
		log = logging.Nop()
	}
	c := &Client{
		routes:   resolver,
		http:     &http.Client{},
		notifier: notify.Discard,
		log:      log.Sub("playground"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserID returns the identity attached to requests, or "".
func (c *Client) UserID() string { return c.userID }

// ListAgents fetches the agents served at endpoint.
// A non-success status produces one warning with the status text; a
// transport or decoding failure is logged and produces one generic warning.
// Both yield an empty slice.
func (c *Client) ListAgents(ctx context.Context, endpoint string) []ComboboxAgent {
	onFail := func(err error) {
		var se *StatusError
		if errors.As(err, &se) {
			notify.Warn(ctx, c.notifier, "Failed to fetch playground agents: %s", se.Status)
			return
		}
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("list agents failed")
		notify.Warn(ctx, c.notifier, "Error fetching playground agents")
	}

	return bestEffort([]ComboboxAgent{}, onFail, func() ([]ComboboxAgent, error) {
		resp, err := c.send(ctx, opListAgents, http.MethodGet, func() (string, error) {
			return c.routes.Agents(endpoint)
		})
		if err != nil {
			return nil, err
		}
		defer drainAndClose(resp.Body)

		if !isSuccess(resp.StatusCode) {
			return nil, newStatusError(opListAgents, resp)
		}

		var raw []*Agent
		if err := decodeJSON(resp.Body, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", opListAgents, err)
		}
		if raw == nil {
			return nil, ErrNullBody
		}

		agents := make([]ComboboxAgent, 0, len(raw))
		for i, a := range raw {
			if a == nil {
				return nil, fmt.Errorf("%s: element %d: %w", opListAgents, i, ErrNullAgent)
			}
			agents = append(agents, ToCombobox(*a))
		}
		return agents, nil
	})
}

// Status returns the HTTP status code of the status endpoint, whatever it is.
// Only transport failures are errors.
func (c *Client) Status(ctx context.Context, base string) (int, error) {
	resp, err := c.send(ctx, opStatus, http.MethodGet, func() (string, error) {
		return c.routes.Status(base)
	})
	if err != nil {
		return 0, err
	}
	drainAndClose(resp.Body)
	return resp.StatusCode, nil
}

// ListSessions fetches the sessions stored for agentID.
// A 404 means storage is not enabled for the agent and yields an empty
// slice. Any other failure is logged at debug level and also yields an
// empty slice; no notification is sent.
func (c *Client) ListSessions(ctx context.Context, base, agentID string) []SessionEntry {
	onFail := func(err error) {
		c.log.Debug().Err(err).Str("agentId", agentID).Msg("list sessions failed")
	}

	return bestEffort([]SessionEntry{}, onFail, func() ([]SessionEntry, error) {
		resp, err := c.send(ctx, opListSessions, http.MethodGet, func() (string, error) {
			return c.routes.Sessions(base, agentID)
		})
		if err != nil {
			return nil, err
		}
		defer drainAndClose(resp.Body)

		if !isSuccess(resp.StatusCode) {
			if resp.StatusCode == http.StatusNotFound {
				return []SessionEntry{}, nil
			}
			return nil, newStatusError(opListSessions, resp)
		}

		var sessions []SessionEntry
		if err := decodeJSON(resp.Body, &sessions); err != nil {
			return nil, fmt.Errorf("%s: %w", opListSessions, err)
		}
		if sessions == nil {
			sessions = []SessionEntry{}
		}
		return sessions, nil
	})
}

// GetSession returns the decoded JSON body of a session. The status code is
// not interpreted; transport and decoding failures are returned.
func (c *Client) GetSession(ctx context.Context, base, agentID, sessionID string) (any, error) {
	resp, err := c.send(ctx, opGetSession, http.MethodGet, func() (string, error) {
		return c.routes.Session(base, agentID, sessionID)
	})
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	var body any
	if err := decodeJSON(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("%s: %w", opGetSession, err)
	}
	return body, nil
}

// DeleteSession issues the delete and hands back the response untouched,
// whatever its status. The caller must close resp.Body.
func (c *Client) DeleteSession(ctx context.Context, base, agentID, sessionID string) (*http.Response, error) {
	return c.send(ctx, opDeleteSession, http.MethodDelete, func() (string, error) {
		return c.routes.DeleteSession(base, agentID, sessionID)
	})
}

// bestEffort runs fn and returns fallback when it fails, handing the error
// to onFail first.
func bestEffort[T any](fallback T, onFail func(error), fn func() (T, error)) T {
	v, err := fn()
	if err != nil {
		if onFail != nil {
			onFail(err)
		}
		return fallback
	}
	return v
}

// send resolves the target URL, attaches identity and issues one request.
// Errors are returned as-is to the caller; nothing is retried.
func (c *Client) send(ctx context.Context, op, method string, resolve func() (string, error)) (*http.Response, error) {
	target, err := resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := c.newRequest(ctx, method, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Err(err).
			Str("op", op).
			Str("method", method).
			Str("url", req.URL.String()).
			Str("requestId", req.Header.Get(HeaderRequestID)).
			Msg("playground request failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("requestId", req.Header.Get(HeaderRequestID)).
		Msg("playground request")
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, target string) (*http.Request, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", target, err)
	}
	if c.userID != "" {
		q := u.Query()
		q.Add(QueryUserID, c.userID)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(HeaderRequestID, uuid.NewString())
	// The header goes on every request, status included, so servers that
	// read identity from either place see the same caller.
	if c.userID != "" {
		req.Header.Set(HeaderUserID, c.userID)
	}
	return req, nil
}

func decodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// drainAndClose lets the transport reuse the connection.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
	_ = body.Close()
}
